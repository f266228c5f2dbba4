// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source enumerates and loads text articles from a collection,
// either a directory of loose files or a ZIP archive. Articles are
// addressed by their extension-less stem.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Reader is a collection of articles. Both implementations validate the
// collection on enumeration: dotfiles are ignored, and any other file must
// carry the expected extension.
type Reader interface {
	// Location names the collection for error messages.
	Location() string
	// ArticleNames returns the validated article stems.
	ArticleNames() ([]string, error)
	// Article loads one article's full text by stem.
	Article(stem string) (string, error)
	// Close releases the underlying archive, if any.
	Close() error
}

// Open returns a Reader for path: a Directory when path is a directory,
// otherwise a ZIP archive.
func Open(path, extension string) (Reader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	if info.IsDir() {
		return NewDirectory(path, extension), nil
	}
	z, err := OpenZipfile(path, extension)
	if err != nil {
		return nil, fmt.Errorf("source %s is neither a directory nor a valid ZIP archive: %w", path, err)
	}
	return z, nil
}

// articleStems filters raw file names down to validated article stems.
func articleStems(location, extension string, names []string) ([]string, error) {
	var stems []string
	for _, name := range names {
		base := filepath.Base(name)
		if strings.HasPrefix(base, ".") {
			continue
		}
		ext := filepath.Ext(base)
		if ext == "" {
			continue
		}
		if ext != "."+extension {
			return nil, fmt.Errorf("files in %s should end in .%s but found %s",
				location, extension, base)
		}
		stems = append(stems, strings.TrimSuffix(base, ext))
	}
	return stems, nil
}

// Directory reads articles from loose files in a single directory.
type Directory struct {
	dir       string
	extension string
}

// NewDirectory creates a Directory reader over dir for files with the
// given extension.
func NewDirectory(dir, extension string) *Directory {
	return &Directory{dir: dir, extension: extension}
}

func (d *Directory) Location() string {
	return d.dir
}

func (d *Directory) ArticleNames() ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", d.dir, err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	return articleStems(d.dir, d.extension, names)
}

func (d *Directory) Article(stem string) (string, error) {
	path := filepath.Join(d.dir, stem+"."+d.extension)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading article %s: %w", stem, err)
	}
	return string(data), nil
}

func (d *Directory) Close() error {
	return nil
}
