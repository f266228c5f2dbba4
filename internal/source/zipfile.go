// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
)

// Zipfile reads articles from entries of a ZIP archive without extracting
// it. Entry paths inside the archive are flattened to their base names.
type Zipfile struct {
	path      string
	extension string
	archive   *zip.ReadCloser
}

// OpenZipfile opens the archive at zipPath for articles with the given
// extension. The caller owns Close.
func OpenZipfile(zipPath, extension string) (*Zipfile, error) {
	archive, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP %s: %w", zipPath, err)
	}
	return &Zipfile{path: zipPath, extension: extension, archive: archive}, nil
}

func (z *Zipfile) Location() string {
	return z.path
}

func (z *Zipfile) ArticleNames() ([]string, error) {
	var names []string
	for _, entry := range z.archive.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		names = append(names, entry.Name)
	}
	return articleStems(z.path, z.extension, names)
}

func (z *Zipfile) Article(stem string) (string, error) {
	want := stem + "." + z.extension
	for _, entry := range z.archive.File {
		if entry.FileInfo().IsDir() || path.Base(entry.Name) != want {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return "", fmt.Errorf("opening %s in %s: %w", want, z.path, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return "", fmt.Errorf("reading %s in %s: %w", want, z.path, err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("article %s not found in %s", want, z.path)
}

func (z *Zipfile) Close() error {
	return z.archive.Close()
}
