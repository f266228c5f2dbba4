// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"strings"
	"unicode"
)

// startAnchor is the anchor in force before any header has been seen.
const startAnchor = "^START"

// slug derives an Obsidian block anchor from a header line. Maximal runs of
// word characters pass through; every run of non-word characters collapses
// to a single hyphen, with lone leading and trailing hyphens dropped. The
// result is lowercased and prefixed with '^'. slug("") is "^".
func slug(header string) string {
	words := strings.FieldsFunc(header, func(r rune) bool {
		return !isWordRune(r)
	})
	return strings.ToLower("^" + strings.Join(words, "-"))
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// diceCode builds the roll-trigger fragment that links a table back to the
// note and anchor it belongs under.
func diceCode(name, anchor string) string {
	return "\n`dice: [[" + name + "#" + anchor + "]]`\n"
}
