// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog maintains a SQLite index over a converted vault: which
// notes exist, which ^anchors they define, and which roll triggers they
// contain. The index makes the dice links auditable — a trigger whose
// target note/anchor pair is not defined anywhere is a dangling link.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	_ "github.com/mattn/go-sqlite3"

	"github.com/calvert-games/dreadmd/internal/vault"
)

const (
	// catalogDir is the hidden directory inside the vault that holds the index.
	catalogDir = ".dreadmd"
	dbFile     = "catalog.db"
)

// Note-scanning patterns. Anchor labels stand alone on their own line;
// roll triggers are the inline `dice: [[note#^anchor]]` fragments the
// transformer emits.
var (
	anchorLabel = regexp.MustCompile(`(?m)^\^[\w-]+$`)
	rollTrigger = regexp.MustCompile("`dice: \\[\\[([^#\\]]+)#(\\^[^\\]]+)\\]\\]`")
	noteTitle   = regexp.MustCompile(`(?m)^#+ (.+)$`)
)

// Store manages the catalog SQLite database for one vault.
type Store struct {
	db       *sql.DB
	vaultDir string
}

// NewStore opens or creates the catalog database at
// <vault>/.dreadmd/catalog.db, creating the schema if needed.
func NewStore(vaultDir string) (*Store, error) {
	dbDir := filepath.Join(vaultDir, catalogDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db, vaultDir: vaultDir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS notes (
			name TEXT PRIMARY KEY,
			title TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS anchors (
			note TEXT NOT NULL REFERENCES notes(name) ON DELETE CASCADE,
			anchor TEXT NOT NULL,
			PRIMARY KEY (note, anchor)
		)`,
		`CREATE TABLE IF NOT EXISTS triggers (
			note TEXT NOT NULL REFERENCES notes(name) ON DELETE CASCADE,
			target_note TEXT NOT NULL,
			target_anchor TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_triggers_target ON triggers(target_note, target_anchor)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// BuildSummary holds counts from a catalog indexing run.
type BuildSummary struct {
	Notes    int
	Anchors  int
	Triggers int
}

// Build re-indexes the vault from scratch, printing per-note status to w.
func (s *Store) Build(ctx context.Context, w io.Writer) (BuildSummary, error) {
	stems, err := vault.Notes(s.vaultDir)
	if err != nil {
		return BuildSummary{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BuildSummary{}, fmt.Errorf("starting catalog transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"triggers", "anchors", "notes"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return BuildSummary{}, fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	var summary BuildSummary
	for _, stem := range stems {
		text, err := vault.ReadNote(s.vaultDir, stem)
		if err != nil {
			return BuildSummary{}, err
		}

		title := ""
		if m := noteTitle.FindStringSubmatch(text); m != nil {
			title = m[1]
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notes (name, title) VALUES (?, ?)`, stem, title); err != nil {
			return BuildSummary{}, fmt.Errorf("indexing note %s: %w", stem, err)
		}

		anchors := 0
		seen := map[string]bool{}
		for _, a := range anchorLabel.FindAllString(text, -1) {
			if seen[a] {
				continue
			}
			seen[a] = true
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO anchors (note, anchor) VALUES (?, ?)`, stem, a); err != nil {
				return BuildSummary{}, fmt.Errorf("indexing anchor %s in %s: %w", a, stem, err)
			}
			anchors++
		}

		triggers := 0
		for _, m := range rollTrigger.FindAllStringSubmatch(text, -1) {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO triggers (note, target_note, target_anchor) VALUES (?, ?, ?)`,
				stem, m[1], m[2]); err != nil {
				return BuildSummary{}, fmt.Errorf("indexing trigger in %s: %w", stem, err)
			}
			triggers++
		}

		fmt.Fprintf(w, "indexed: %s (%d anchors, %d triggers)\n", stem, anchors, triggers)
		summary.Notes++
		summary.Anchors += anchors
		summary.Triggers += triggers
	}

	if err := tx.Commit(); err != nil {
		return BuildSummary{}, fmt.Errorf("committing catalog: %w", err)
	}
	return summary, nil
}

// Trigger identifies one roll-trigger link found in a note.
type Trigger struct {
	Note         string `json:"note" yaml:"note"`
	TargetNote   string `json:"target_note" yaml:"target_note"`
	TargetAnchor string `json:"target_anchor" yaml:"target_anchor"`
}

// Dangling returns triggers whose target note/anchor pair is not defined
// in the indexed vault. A positive max caps the number of results; zero or
// negative means no cap.
func (s *Store) Dangling(ctx context.Context, max int) ([]Trigger, error) {
	if max <= 0 {
		max = -1 // SQLite treats a negative LIMIT as unlimited.
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.note, t.target_note, t.target_anchor
		FROM triggers t
		LEFT JOIN anchors a ON a.note = t.target_note AND a.anchor = t.target_anchor
		WHERE a.anchor IS NULL
		ORDER BY t.note, t.target_note, t.target_anchor
		LIMIT ?`, max)
	if err != nil {
		return nil, fmt.Errorf("querying dangling triggers: %w", err)
	}
	defer rows.Close()

	var dangling []Trigger
	for rows.Next() {
		var t Trigger
		if err := rows.Scan(&t.Note, &t.TargetNote, &t.TargetAnchor); err != nil {
			return nil, fmt.Errorf("scanning dangling trigger: %w", err)
		}
		dangling = append(dangling, t)
	}
	return dangling, rows.Err()
}
