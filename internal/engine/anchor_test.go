// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "empty input is just the hat", header: "", want: "^"},
		{name: "plain header", header: "\n## Random List", want: "^random-list"},
		{
			name:   "punctuation noise collapses to single hyphens",
			header: "\n@$#$@how%^&^&%NOW-you--------COW-------",
			want:   "^how-now-you-cow",
		},
		{name: "digits and underscores are word characters", header: "## 20_things", want: "^20_things"},
		{name: "lone trailing hyphen is dropped", header: "# End!", want: "^end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slug(tt.header); got != tt.want {
				t.Errorf("slug(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestSlugIsDeterministic(t *testing.T) {
	const header = "\n### Some Heading, With Noise!"
	first := slug(header)
	for range 5 {
		if got := slug(header); got != first {
			t.Fatalf("slug changed between calls: %q vs %q", got, first)
		}
	}
}

func TestDiceCode(t *testing.T) {
	want := "\n`dice: [[A#B]]`\n"
	if got := diceCode("A", "B"); got != want {
		t.Errorf("diceCode() = %q, want %q", got, want)
	}
}
