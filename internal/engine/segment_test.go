// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"errors"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Segmented
		wantErr error
	}{
		{
			name:  "minimal content suffices",
			input: "# H\n©",
			want:  Segmented{Title: "H", Prologue: "©\n"},
		},
		{
			name:    "the word copyright is not the glyph",
			input:   "# H\ncopyright\n## IJK",
			wantErr: ErrNoLicenseLine,
		},
		{
			name:    "copyright is required even without subsections",
			input:   "## 00 Read Me\nblah diddy blah\n",
			wantErr: ErrNoLicenseLine,
		},
		{
			name:  "OGL boilerplate counts as a license line",
			input: "# H\nOGL\nis not copyright\n----\n## Subhead",
			want:  Segmented{Title: "H", Prologue: "OGL\n", Body: "\n## Subhead"},
		},
		{
			name:  "Include OGL counts too",
			input: "# H\nInclude OGL v1.0a\n## Subhead",
			want:  Segmented{Title: "H", Prologue: "Include OGL v1.0a\n", Body: "\n## Subhead"},
		},
		{
			name:  "keeps every license line and splits at the first subsection",
			input: "# Owlbear \nThanks\n©\nfoo\n©\nbar\n## Barred Owl",
			want:  Segmented{Title: "Owlbear", Prologue: "©\n©\n", Body: "\n## Barred Owl"},
		},
		{
			name:  "single line document has no prologue or body",
			input: "# H",
			want:  Segmented{Title: "H"},
		},
		{
			name:    "first line must be a header",
			input:   "not a header\n©",
			wantErr: ErrNotAHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Segment(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Segment() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Segment() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Segment() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestTitleFrom(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:    "leading whitespace disqualifies the header",
			input:   " # Too Late",
			wantErr: true,
		},
		{
			name:  "trims header marker and whitespace",
			input: "#  99 Bottles\t\n",
			want:  "99 Bottles",
		},
		{
			name:  "strips the 20 Things numbering prefix",
			input: "# 20 Things #99: Bottles\n",
			want:  "99 Bottles",
		},
		{
			name:  "strips the Monstrous Lair numbering prefix",
			input: "# Monstrous Lair #3: Owlbear Den\n",
			want:  "3 Owlbear Den",
		},
		{
			name:  "removes colons everywhere",
			input: "# 88: Mottles\n",
			want:  "88 Mottles",
		},
		{
			name:  "replaces the Name placeholder from the copyright line",
			input: "# Name\nWhee!\nStuff#00: Better Name. ©",
			want:  "Better Name",
		},
		{
			name:  "keeps the Name placeholder when nothing better is found",
			input: "# Name\nWhee!\n©",
			want:  "Name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := titleFrom(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrNotAHeader) {
					t.Fatalf("titleFrom() error = %v, want ErrNotAHeader", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("titleFrom() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("titleFrom() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitleFromAcceptsDeeperHeaders(t *testing.T) {
	for _, marker := range []string{"#", "##", "####"} {
		got, err := titleFrom(marker + " 99 Bottles")
		if err != nil {
			t.Fatalf("titleFrom(%q) error = %v", marker, err)
		}
		if got != "99 Bottles" {
			t.Errorf("titleFrom(%q) = %q, want %q", marker, got, "99 Bottles")
		}
	}
}
