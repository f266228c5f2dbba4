// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import "errors"

// Structural errors report documents that don't follow the corpus
// conventions. They are expected on malformed input and are surfaced
// per-document by the conversion layer.
var (
	// ErrNotAHeader means the document's first line is not a Markdown header.
	ErrNotAHeader = errors.New("document does not start with a Markdown header")

	// ErrNoLicenseLine means no copyright (©) or OGL line was found before
	// the first subsection. Every real article carries a license line.
	ErrNoLicenseLine = errors.New("document contains no copyright (©) or OGL line")
)

// Internal errors indicate a broken contract between Segment and Transform,
// not a data problem. They should never occur on any input that reached
// Transform through Segment.
var (
	// ErrMustStartWithNewline means Transform was handed a non-empty body
	// whose first character is not a newline.
	ErrMustStartWithNewline = errors.New("internal error: transform input must start with a newline")

	// ErrEmptyListRun means the table renderer received a list run with no
	// items collected.
	ErrEmptyListRun = errors.New("internal error: list run contains no items")
)
