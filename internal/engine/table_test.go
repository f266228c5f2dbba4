// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"errors"
	"testing"
)

func TestListToTableRejectsEmptyRun(t *testing.T) {
	_, err := listToTable(nil)
	if !errors.Is(err, ErrEmptyListRun) {
		t.Fatalf("listToTable(nil) error = %v, want ErrEmptyListRun", err)
	}
}

func TestListToTable(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{
			name:  "two items",
			items: []string{"\n1. Foo", "\n2. Bar"},
			want:  "\n| d2 | Item |\n| --:| -- |\n| 1 | Foo |\n| 2 | Bar |",
		},
		{
			name:  "source numbering is discarded",
			items: []string{"\n7. Foo", "\n3. Bar", "\n3. Baz"},
			want:  "\n| d3 | Item |\n| --:| -- |\n| 1 | Foo |\n| 2 | Bar |\n| 3 | Baz |",
		},
		{
			name:  "item text is trimmed",
			items: []string{"\n1.   padded   "},
			want:  "\n| d1 | Item |\n| --:| -- |\n| 1 | padded |",
		},
		{
			name:  "marker without a space still parses",
			items: []string{"\n2.blah diddy blah"},
			want:  "\n| d1 | Item |\n| --:| -- |\n| 1 | blah diddy blah |",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := listToTable(tt.items)
			if err != nil {
				t.Fatalf("listToTable() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("listToTable() = %q, want %q", got, tt.want)
			}
		})
	}
}
