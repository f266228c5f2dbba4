// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"iter"
	"regexp"
	"strings"
)

// lineKind classifies one line of a document body. Classification looks
// only at the line's own leading characters, never at prior lines.
type lineKind int

const (
	// kindVanilla is any line that is neither a header nor a list item.
	kindVanilla lineKind = iota
	// kindHeader is a Markdown header: one or more '#' then a space.
	kindHeader
	// kindListItem is a numbered list entry: digits, '.', then text.
	kindListItem
)

// Line classification patterns. Each line token carries its leading newline.
var (
	headerLine   = regexp.MustCompile(`^\n#+ `)
	listItemLine = regexp.MustCompile(`^\n\d+\.`)
)

func classify(line string) lineKind {
	switch {
	case listItemLine.MatchString(line):
		return kindListItem
	case headerLine.MatchString(line):
		return kindHeader
	default:
		return kindVanilla
	}
}

// lines yields (kind, line) for each line of contents, where a line spans
// its leading newline up to but not including the next newline. The caller
// guarantees contents starts with '\n'.
func lines(contents string) iter.Seq2[lineKind, string] {
	return func(yield func(lineKind, string) bool) {
		for start := 0; start < len(contents); {
			end := strings.IndexByte(contents[start+1:], '\n')
			if end < 0 {
				end = len(contents)
			} else {
				end += start + 1
			}
			line := contents[start:end]
			if !yield(classify(line), line) {
				return
			}
			start = end
		}
	}
}
