// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "regexp"

// urbanIdeas matches the one malformed "71 Urban" article, whose list
// follows an "#ideas" tag line instead of a subsection header.
var urbanIdeas = regexp.MustCompile(`^#\s+71:? Urban.*\n#ideas\s*(1\.)`)

// urbanIdeasSpecialCase repairs that article: it gets a fixed title and
// its list rehomed under an "## Ideas" subsection. This is a narrow,
// data-driven correction for a specific known input, independent of the
// "Name" placeholder heuristic in the segmenter.
func urbanIdeasSpecialCase(contents string) (title, body string, ok bool) {
	m := urbanIdeas.FindStringSubmatchIndex(contents)
	if m == nil {
		return "", "", false
	}
	return "71 Urban Events", "\n## Ideas\n" + contents[m[2]:], true
}
