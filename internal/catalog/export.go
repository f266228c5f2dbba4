// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// ExportNote holds one note's catalog entry for export.
type ExportNote struct {
	Name     string    `json:"name" yaml:"name"`
	Title    string    `json:"title" yaml:"title"`
	Anchors  []string  `json:"anchors,omitempty" yaml:"anchors,omitempty"`
	Triggers []Trigger `json:"triggers,omitempty" yaml:"triggers,omitempty"`
}

// ExportYAML writes the full catalog to w as YAML, one entry per note.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	notes, err := s.exportNotes(ctx)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(notes)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

func (s *Store) exportNotes(ctx context.Context) ([]ExportNote, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, title FROM notes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var notes []ExportNote
	for rows.Next() {
		var n ExportNote
		if err := rows.Scan(&n.Name, &n.Title); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range notes {
		if notes[i].Anchors, err = s.noteAnchors(ctx, notes[i].Name); err != nil {
			return nil, err
		}
		if notes[i].Triggers, err = s.noteTriggers(ctx, notes[i].Name); err != nil {
			return nil, err
		}
	}
	return notes, nil
}

func (s *Store) noteAnchors(ctx context.Context, name string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT anchor FROM anchors WHERE note = ? ORDER BY anchor`, name)
	if err != nil {
		return nil, fmt.Errorf("querying anchors for %s: %w", name, err)
	}
	defer rows.Close()

	var anchors []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("scanning anchor: %w", err)
		}
		anchors = append(anchors, a)
	}
	return anchors, rows.Err()
}

func (s *Store) noteTriggers(ctx context.Context, name string) ([]Trigger, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT note, target_note, target_anchor FROM triggers WHERE note = ? ORDER BY target_note, target_anchor`, name)
	if err != nil {
		return nil, fmt.Errorf("querying triggers for %s: %w", name, err)
	}
	defer rows.Close()

	var triggers []Trigger
	for rows.Next() {
		var t Trigger
		if err := rows.Scan(&t.Note, &t.TargetNote, &t.TargetAnchor); err != nil {
			return nil, fmt.Errorf("scanning trigger: %w", err)
		}
		triggers = append(triggers, t)
	}
	return triggers, rows.Err()
}
