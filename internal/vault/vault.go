// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vault writes converted notes into an Obsidian vault directory
// and reads them back for cataloging.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// frontmatter is prepended to every note so Obsidian opens it in preview
// mode, where the dice plugin renders roll triggers as buttons.
const frontmatter = "---\nobsidianUIMode: preview\n---\n\n"

// Prepare ensures the vault directory exists and holds nothing but
// Markdown notes. Dotfiles and subdirectories are tolerated; any other
// non-.md file means the directory is not a vault we should write into.
func Prepare(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return fmt.Errorf("creating vault directory %s: %w", dir, mkErr)
		}
		return nil
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if filepath.Ext(entry.Name()) != ".md" {
			return fmt.Errorf("vault %s should contain only .md files but has %s", dir, entry.Name())
		}
	}
	return nil
}

// WriteNote writes one note, with the standard frontmatter, as
// <dir>/<name>.md.
func WriteNote(dir, name, body string) error {
	path := filepath.Join(dir, name+".md")
	if err := os.WriteFile(path, []byte(frontmatter+body), 0o644); err != nil {
		return fmt.Errorf("writing note %s: %w", path, err)
	}
	return nil
}

// Notes returns the stems of all notes in the vault.
func Notes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading vault %s: %w", dir, err)
	}
	var stems []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || strings.HasPrefix(name, ".") {
			continue
		}
		if filepath.Ext(name) != ".md" {
			continue
		}
		stems = append(stems, strings.TrimSuffix(name, ".md"))
	}
	return stems, nil
}

// ReadNote loads one note's full text by stem.
func ReadNote(dir, stem string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, stem+".md"))
	if err != nil {
		return "", fmt.Errorf("reading note %s: %w", stem, err)
	}
	return string(data), nil
}
