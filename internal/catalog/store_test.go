// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goodNote has a trigger that resolves against its own anchor.
const goodNote = "---\nobsidianUIMode: preview\n---\n\n©\n## Sights\n\n" +
	"`dice: [[01 Goblin Warren#^sights]]`\n\n" +
	"| d2 | Item |\n| --:| -- |\n| 1 | Bones |\n| 2 | Mud |\n\n^sights\n"

// badNote has a trigger pointing at a note that was never converted.
const badNote = "---\nobsidianUIMode: preview\n---\n\n©\n## Smells\n\n" +
	"`dice: [[99 Missing#^smells]]`\n\n| d1 | Item |\n| --:| -- |\n| 1 | Rot |\n\n^smells\n"

func buildTestVault(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01 Goblin Warren.md"), []byte(goodNote), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "02 Troll Bridge.md"), []byte(badNote), 0o644))
	return dir
}

func TestBuildIndexesNotesAnchorsAndTriggers(t *testing.T) {
	dir := buildTestVault(t)
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	var log bytes.Buffer
	summary, err := store.Build(context.Background(), &log)
	require.NoError(t, err)

	assert.Equal(t, BuildSummary{Notes: 2, Anchors: 2, Triggers: 2}, summary)
	assert.Contains(t, log.String(), "indexed: 01 Goblin Warren (1 anchors, 1 triggers)")
}

func TestBuildIsIdempotent(t *testing.T) {
	dir := buildTestVault(t)
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	first, err := store.Build(context.Background(), &bytes.Buffer{})
	require.NoError(t, err)
	second, err := store.Build(context.Background(), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDangling(t *testing.T) {
	dir := buildTestVault(t)
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Build(context.Background(), &bytes.Buffer{})
	require.NoError(t, err)

	dangling, err := store.Dangling(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, dangling, 1)
	assert.Equal(t, Trigger{
		Note:         "02 Troll Bridge",
		TargetNote:   "99 Missing",
		TargetAnchor: "^smells",
	}, dangling[0])
}

func TestDanglingMaxResults(t *testing.T) {
	dir := buildTestVault(t)
	extra := "---\nobsidianUIMode: preview\n---\n\n©\n## Sounds\n\n" +
		"`dice: [[98 Gone#^sounds]]`\n\n^sounds\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "03 Empty Keep.md"), []byte(extra), 0o644))

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Build(context.Background(), &bytes.Buffer{})
	require.NoError(t, err)

	all, err := store.Dangling(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	capped, err := store.Dangling(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, capped, 1)
}

func TestExportYAML(t *testing.T) {
	dir := buildTestVault(t)
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Build(context.Background(), &bytes.Buffer{})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, store.ExportYAML(context.Background(), &out))

	text := out.String()
	for _, want := range []string{"01 Goblin Warren", "^sights", "99 Missing"} {
		if !strings.Contains(text, want) {
			t.Errorf("export missing %q:\n%s", want, text)
		}
	}
}
