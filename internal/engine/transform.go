// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// paragraph is the separator wrapped around every generated fragment.
const paragraph = "\n\n"

// extraNewlines matches blank-line runs wider than one paragraph break.
var extraNewlines = regexp.MustCompile(`\n\n\n+`)

// Transform rewrites a document body for Obsidian. It scans the body one
// line at a time, merging consecutive same-kind lines into runs. Each run
// of numbered list items becomes a Markdown table preceded by a
// paragraph-wrapped roll trigger (`dice: [[title#anchor]]`) and followed by
// the anchor label the trigger points at. The anchor tracks the nearest
// preceding header, starting at the ^START sentinel. Header and vanilla
// lines are copied verbatim. The assembled output has runs of three or
// more newlines collapsed to exactly two.
//
// An empty body yields an empty result. A non-empty body must start with a
// newline, which Segment guarantees; anything else is a contract violation
// reported as ErrMustStartWithNewline.
func Transform(title, body string) (string, error) {
	if body == "" {
		return "", nil
	}
	if body[0] != '\n' {
		return "", fmt.Errorf("transform: %w", ErrMustStartWithNewline)
	}

	ch := &chapter{name: title, anchor: startAnchor}
	prev := kindVanilla

	for kind, line := range lines(body) {
		if kind != prev {
			if err := ch.changeKind(prev, kind); err != nil {
				return "", err
			}
		}
		ch.pushLine(kind, line)
		prev = kind
	}
	// A list run that ends the document still gets its table and label.
	if err := ch.changeKind(prev, kindVanilla); err != nil {
		return "", err
	}

	return ch.render(), nil
}

// chapter accumulates the transformed output of one document body: the
// emitted chunks, the items of the list run in progress, and the anchor of
// the nearest preceding header.
type chapter struct {
	name   string
	parsed []string
	list   []string
	anchor string
}

func (c *chapter) pushLine(kind lineKind, line string) {
	switch kind {
	case kindListItem:
		c.list = append(c.list, line)
	case kindHeader:
		c.anchor = slug(line)
		c.parsed = append(c.parsed, line)
	case kindVanilla:
		c.parsed = append(c.parsed, line)
	}
}

// changeKind reacts to a run boundary. Opening a list run emits the roll
// trigger with the anchor captured before any items are consumed; closing
// one emits the table and then the anchor label the trigger referenced.
func (c *chapter) changeKind(from, to lineKind) error {
	if to == kindListItem {
		c.pushParagraph(diceCode(c.name, c.anchor))
	} else if from == kindListItem {
		table, err := listToTable(c.list)
		if err != nil {
			return err
		}
		c.parsed = append(c.parsed, table)
		c.list = c.list[:0]
		c.pushParagraph(c.anchor)
	}
	return nil
}

func (c *chapter) pushParagraph(s string) {
	c.parsed = append(c.parsed, paragraph, s, paragraph)
}

func (c *chapter) render() string {
	return extraNewlines.ReplaceAllString(strings.Join(c.parsed, ""), paragraph)
}
