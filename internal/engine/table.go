// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// listItemText captures the text after a list marker. Must agree with
// listItemLine in scan.go, which admits every line passed in here.
var listItemText = regexp.MustCompile(`^\n\d+\.\s*(.*)`)

// listToTable renders one run of list items as a Markdown table. The die
// size is the number of items, and rows are renumbered sequentially from 1;
// the digits in the source list markers are deliberately discarded.
func listToTable(items []string) (string, error) {
	n := len(items)
	if n == 0 {
		return "", fmt.Errorf("rendering table: %w", ErrEmptyListRun)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n| d%d | Item |\n| --:| -- |", n)
	for i, item := range items {
		m := listItemText.FindStringSubmatch(item)
		if m == nil {
			return "", fmt.Errorf("internal error: not a list item: %q", item)
		}
		fmt.Fprintf(&b, "\n| %d | %s |", i+1, strings.TrimSpace(m[1]))
	}
	return b.String(), nil
}
