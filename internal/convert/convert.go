// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives the batch conversion of a source collection of
// text articles into an Obsidian vault of Markdown notes. It owns article
// naming, the historical special cases, and the generated read-me; the
// per-document text work lives in internal/engine.
package convert

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/calvert-games/dreadmd/internal/engine"
	"github.com/calvert-games/dreadmd/internal/source"
	"github.com/calvert-games/dreadmd/internal/vault"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of articles processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any articles failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Options configures a conversion run.
type Options struct {
	// WriteReadme controls whether a generated "00 - READ ME FIRST" note is
	// added to the vault when enough material was harvested for one.
	WriteReadme bool
}

// Run converts every article in src into Markdown notes under vaultDir,
// printing per-article status to w. Articles that fail segmentation or
// transformation are reported with their identity and counted, and the run
// continues with the rest; enumeration and vault problems abort the run.
func Run(src source.Reader, vaultDir string, opts Options, w io.Writer) (BatchResult, error) {
	location := src.Location()

	names, err := src.ArticleNames()
	if err != nil {
		return BatchResult{}, err
	}
	if len(names) == 0 {
		return BatchResult{}, fmt.Errorf("no articles found in %s", location)
	}
	for _, name := range names {
		if _, _, ok := numberAndTitle(name); !ok {
			return BatchResult{}, fmt.Errorf("all articles must start with a number, but found %s in %s", name, location)
		}
	}

	if err := vault.Prepare(vaultDir); err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	readme := &readmeInfo{}

	for _, externalName := range names {
		// A stray duplicate in the Thingonomicon archive.
		if strings.HasSuffix(externalName, " copy") {
			fmt.Fprintf(w, "skipped:   %s (duplicate)\n", externalName)
			result.Skipped++
			continue
		}

		article, err := src.Article(externalName)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", externalName, err)
			result.Failed++
			continue
		}

		// The Laironomicon intro has no license line; it feeds the
		// generated read-me instead of becoming a note of its own.
		if externalName == "00 Read Me" {
			readme.saveOriginalReadme(article)
			fmt.Fprintf(w, "diverted:  %s (read-me material)\n", externalName)
			result.Skipped++
			continue
		}
		readme.updateFromArticle(article)

		outputName, body, err := convertArticle(externalName, article)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s in %s (%v)\n", externalName, location, err)
			result.Failed++
			continue
		}

		if err := vault.WriteNote(vaultDir, outputName, body); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", externalName, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s -> %s.md\n", externalName, outputName)
		result.Converted++
	}

	if opts.WriteReadme {
		if text, ok := readme.readme(); ok {
			if err := vault.WriteNote(vaultDir, readmeNoteName, text); err != nil {
				return result, err
			}
			fmt.Fprintf(w, "generated: %s.md\n", readmeNoteName)
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result, nil
}

// convertArticle turns one article's text into its output note name and
// body (prologue plus transformed chapter).
func convertArticle(externalName, article string) (string, string, error) {
	var seg engine.Segmented
	if title, body, ok := urbanIdeasSpecialCase(article); ok {
		seg = engine.Segmented{Title: title, Body: body}
	} else {
		var err error
		seg, err = engine.Segment(article)
		if err != nil {
			return "", "", err
		}
	}

	n, externalTitle, _ := numberAndTitle(externalName)
	_, contentTitle, _ := numberAndTitle(seg.Title)

	// The embedded title is the right one for the known 12* files; elsewhere
	// the longer of the two names carries more information.
	description := contentTitle
	if n != 12 && len(externalTitle) > len(contentTitle) {
		description = externalTitle
	}

	// Only one article carries a number >= 100; it sorts to the end
	// unnumbered rather than forcing three-digit prefixes on the rest.
	outputName := description
	if n < 100 {
		outputName = fmt.Sprintf("%02d %s", n, description)
	}

	transformed, err := engine.Transform(outputName, seg.Body)
	if err != nil {
		return "", "", err
	}
	return outputName, seg.Prologue + transformed, nil
}

// nameParts splits an optional leading number from the rest of an article
// name ("12_stuff" -> 12, "stuff").
var nameParts = regexp.MustCompile(`^(\d+)?[\s_]*(.*)$`)

func numberAndTitle(name string) (int, string, bool) {
	m := nameParts.FindStringSubmatch(name)
	if m == nil || m[1] == "" {
		return 0, name, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, m[2], false
	}
	return n, m[2], true
}
