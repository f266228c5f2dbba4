// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine converts one tabletop-RPG text article into annotated
// Markdown for an Obsidian vault. Segment splits a raw document into a
// title, a license prologue, and a body; Transform rewrites the body so
// that numbered lists become rollable tables. Both are pure functions over
// the document text and perform no I/O.
package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// Segmented is the three-way split of a raw document.
type Segmented struct {
	// Title is the note name derived from the document's first header.
	Title string
	// Prologue is the license boilerplate kept ahead of the body: every
	// qualifying line between the first header and the first subsection.
	Prologue string
	// Body is everything from the first subsection header onward. It is
	// empty or starts with a newline, as Transform requires.
	Body string
}

var (
	// subhead finds the first subordinate header after the title line.
	subhead = regexp.MustCompile(`\n#+\s`)

	// headerText captures the text of the document's first header line.
	headerText = regexp.MustCompile(`^#+\s+(.*\S)\s*`)

	// numberedPrefix strips the collection numbering that some headers
	// carry ("20 Things #5: Foo", "Monstrous Lair #12: Bar").
	numberedPrefix = regexp.MustCompile(`^(?:20 Things #|Monstrous Lair #)(.*)`)

	// betterTitle finds the real title on a copyright line when the header
	// holds the literal "Name" placeholder.
	betterTitle = regexp.MustCompile(`\n[^#]+#\d\d:\s*([^.]+)\.\s*©`)

	// oglLine matches OGL boilerplate anchored at the start of a line.
	oglLine = regexp.MustCompile(`^(?:Include )?OGL\b`)
)

const copyrightGlyph = "©"

// Segment splits a raw document into title, prologue, and body. The first
// line must be a Markdown header (ErrNotAHeader otherwise). The prologue
// keeps only lines containing the © glyph or starting with OGL boilerplate;
// a document with subsections but no such line is rejected with
// ErrNoLicenseLine, since every article in the corpus carries one.
func Segment(contents string) (Segmented, error) {
	title, err := titleFrom(contents)
	if err != nil {
		return Segmented{}, err
	}

	// Single-line documents have nothing beyond the title.
	newline := strings.IndexByte(contents, '\n')
	if newline < 0 {
		return Segmented{Title: title}, nil
	}

	rest := contents[newline:]
	splitAt := len(rest)
	if loc := subhead.FindStringIndex(rest); loc != nil {
		splitAt = loc[0]
	}
	region, body := rest[:splitAt], rest[splitAt:]

	var prologue strings.Builder
	kept := 0
	for line := range strings.SplitSeq(region, "\n") {
		if strings.Contains(line, copyrightGlyph) || oglLine.MatchString(line) {
			prologue.WriteString(line)
			prologue.WriteByte('\n')
			kept++
		}
	}
	if kept == 0 {
		return Segmented{}, fmt.Errorf("segment: %w", ErrNoLicenseLine)
	}

	return Segmented{Title: title, Prologue: prologue.String(), Body: body}, nil
}

// titleFrom resolves the note title from the document's first header:
// header marker stripped, collection numbering prefixes stripped, colons
// removed. The "Name" placeholder left behind by some source files is
// replaced with the title extracted from the document's copyright line,
// when one matches.
func titleFrom(contents string) (string, error) {
	m := headerText.FindStringSubmatch(contents)
	if m == nil {
		return "", fmt.Errorf("segment: %w", ErrNotAHeader)
	}
	title := strings.TrimSpace(m[1])
	if pm := numberedPrefix.FindStringSubmatch(title); pm != nil {
		title = strings.TrimSpace(pm[1])
	}
	title = strings.ReplaceAll(title, ":", "")
	if title == "Name" {
		if bm := betterTitle.FindStringSubmatch(contents); bm != nil {
			title = strings.ReplaceAll(bm[1], ":", "")
		}
	}
	return title, nil
}
