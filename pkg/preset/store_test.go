// pkg/preset/store_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir), in-memory filesystem
// PURPOSE: Test preset commit, load, list and delete semantics

package preset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/filesystem"
	"github.com/arthur-debert/stamp/pkg/links"
	"github.com/arthur-debert/stamp/pkg/paths"
	"github.com/arthur-debert/stamp/pkg/preset"
	"github.com/arthur-debert/stamp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	paths    paths.Paths
	registry *links.Registry
	store    *preset.Store
}

func setupStore(t *testing.T) *env {
	t.Helper()
	p, err := paths.New(t.TempDir())
	require.NoError(t, err)

	fs := filesystem.NewOS()
	registry := links.New(fs, p)
	return &env{paths: p, registry: registry, store: preset.New(fs, p, registry)}
}

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(f), 0644))
	}
}

func canonical(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}

func TestCommit_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     []types.PresetEntry
	}{
		{
			name: "no patterns",
			want: []types.PresetEntry{
				{Path: "a.rs"},
				{Path: "b.txt"},
				{Path: "dir", IsDir: true},
				{Path: "dir/c.rs"},
			},
		},
		{
			name:     "extension pattern",
			patterns: []string{"*.rs"},
			want: []types.PresetEntry{
				{Path: "a.rs"},
				{Path: "dir/c.rs"},
			},
		},
		{
			name:     "empty pattern set includes everything",
			patterns: []string{},
			want: []types.PresetEntry{
				{Path: "a.rs"},
				{Path: "b.txt"},
				{Path: "dir", IsDir: true},
				{Path: "dir/c.rs"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := setupStore(t)
			source := t.TempDir()
			writeTree(t, source, "a.rs", "b.txt", "dir/c.rs")

			entries, err := e.store.Commit("rust", source, tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, entries)

			loaded, err := e.store.Load("rust")
			require.NoError(t, err)
			assert.Equal(t, "rust", loaded.Name)
			assert.Equal(t, canonical(t, source), loaded.Source)
			assert.Equal(t, tt.want, loaded.Entries)
		})
	}
}

func TestCommit_Idempotent(t *testing.T) {
	e := setupStore(t)
	source := t.TempDir()
	writeTree(t, source, "src/main.rs", "Cargo.toml", ".gitignore")

	_, err := e.store.Commit("rust", source, nil)
	require.NoError(t, err)
	first, err := os.ReadFile(e.paths.PresetPath("rust"))
	require.NoError(t, err)

	_, err = e.store.Commit("rust", source, nil)
	require.NoError(t, err)
	second, err := os.ReadFile(e.paths.PresetPath("rust"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestCommit_Overwrites(t *testing.T) {
	e := setupStore(t)
	source := t.TempDir()
	writeTree(t, source, "a.rs", "b.txt")

	_, err := e.store.Commit("rust", source, nil)
	require.NoError(t, err)
	_, err = e.store.Commit("rust", source, []string{"*.rs"})
	require.NoError(t, err)

	loaded, err := e.store.Load("rust")
	require.NoError(t, err)
	assert.Equal(t, []types.PresetEntry{{Path: "a.rs"}}, loaded.Entries)
}

func TestCommit_Errors(t *testing.T) {
	e := setupStore(t)
	source := t.TempDir()

	_, err := e.store.Commit("rust", filepath.Join(source, "missing"), nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathResolution))

	_, err = e.store.Commit("a/b", source, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = e.store.Commit("rust", source, []string{"[unclosed"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	assert.False(t, e.store.Exists("rust"), "failed commits must not write a document")
}

// writeRawName creates a file whose name is not valid UTF-8, skipping the test
// on filesystems that refuse such names.
func writeRawName(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Skipf("filesystem rejects non UTF-8 names: %v", err)
	}
}

func TestCommit_SkipsNonUTF8Entries(t *testing.T) {
	e := setupStore(t)
	source := t.TempDir()
	writeTree(t, source, "good.rs")
	writeRawName(t, filepath.Join(source, "bad\xff.txt"))

	entries, err := e.store.Commit("rust", source, nil)
	require.NoError(t, err)
	want := []types.PresetEntry{{Path: "good.rs", IsDir: false}}
	assert.Equal(t, want, entries)

	loaded, err := e.store.Load("rust")
	require.NoError(t, err, "committed document must stay loadable")
	assert.Equal(t, want, loaded.Entries)
}

func TestCommit_RejectsNonUTF8Source(t *testing.T) {
	e := setupStore(t)
	good := t.TempDir()
	writeTree(t, good, "a.rs")
	_, err := e.store.Commit("rust", good, nil)
	require.NoError(t, err)

	bad := filepath.Join(t.TempDir(), "src\xff")
	if err := os.Mkdir(bad, 0755); err != nil {
		t.Skipf("filesystem rejects non UTF-8 names: %v", err)
	}

	_, err = e.store.Commit("rust", bad, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	loaded, err := e.store.Load("rust")
	require.NoError(t, err, "previous document is kept")
	assert.Equal(t, canonical(t, good), loaded.Source)
}

func TestDanglingDocumentIsAbsent(t *testing.T) {
	e := setupStore(t)
	require.NoError(t, os.MkdirAll(e.paths.PresetsDir(), 0755))
	require.NoError(t, os.Symlink(filepath.Join(t.TempDir(), "gone.toml"), e.paths.PresetPath("ghost")))

	assert.False(t, e.store.Exists("ghost"))

	_, err := e.store.Load("ghost")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	names, err := e.store.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	err = e.store.Delete("ghost", false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestCommit_ResolvesSymlinkedSource(t *testing.T) {
	e := setupStore(t)
	source := t.TempDir()
	writeTree(t, source, "a.rs")
	alias := filepath.Join(t.TempDir(), "alias")
	require.NoError(t, os.Symlink(source, alias))

	_, err := e.store.Commit("rust", alias, nil)
	require.NoError(t, err)

	loaded, err := e.store.Load("rust")
	require.NoError(t, err)
	assert.Equal(t, canonical(t, source), loaded.Source)
}

func TestList(t *testing.T) {
	e := setupStore(t)

	names, err := e.store.List()
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names, "missing presets dir lists nothing")

	source := t.TempDir()
	for _, name := range []string{"zig", "go", "rust"} {
		_, err := e.store.Commit(name, source, nil)
		require.NoError(t, err)
	}
	// Stray files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(e.paths.PresetsDir(), "notes.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(e.paths.PresetsDir(), ".go.toml.abc.tmp"), nil, 0644))

	names, err = e.store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust", "zig"}, names)
}

func TestLoad_Errors(t *testing.T) {
	p, err := paths.New("/stamp")
	require.NoError(t, err)
	fs := filesystem.NewMemory()
	store := preset.New(fs, p, nil)

	_, err = store.Load("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	require.NoError(t, fs.MkdirAll(p.PresetsDir(), 0755))
	require.NoError(t, fs.WriteFile(p.PresetPath("broken"), []byte("name = \n[[entries"), 0644))

	_, err = store.Load("broken")
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"broken"}, names)
	assert.True(t, store.Exists("broken"))
	assert.False(t, store.Exists("missing"))
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name          string
		removeRecords bool
		wantTargets   int
	}{
		{name: "with link records", removeRecords: true, wantTargets: 0},
		{name: "document only", removeRecords: false, wantTargets: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := setupStore(t)
			source := t.TempDir()
			target := canonical(t, t.TempDir())

			_, err := e.store.Commit("rust", source, nil)
			require.NoError(t, err)
			require.NoError(t, e.registry.AddLink("rust", target))
			require.NoError(t, e.registry.AddLink("go", target))

			require.NoError(t, e.store.Delete("rust", tt.removeRecords))
			assert.False(t, e.store.Exists("rust"))

			targets, err := e.registry.GetLinks("rust")
			require.NoError(t, err)
			assert.Len(t, targets, tt.wantTargets)

			others, err := e.registry.GetLinks("go")
			require.NoError(t, err)
			assert.Equal(t, []string{target}, others, "other presets are untouched")
		})
	}
}

func TestDelete_NotFound(t *testing.T) {
	e := setupStore(t)

	err := e.store.Delete("nope", true)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}
