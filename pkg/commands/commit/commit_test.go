package commit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stamp/pkg/commands/commit"
	"github.com/arthur-debert/stamp/pkg/commands/link"
	"github.com/arthur-debert/stamp/pkg/testutil"
	"github.com/arthur-debert/stamp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitPreset(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.Dir("source")
	testutil.WriteTree(t, source, "a.rs", "b.txt", "dir/c.rs")

	result, err := commit.CommitPreset(commit.CommitOptions{
		Env:      env.Env,
		Name:     "rust",
		Source:   source,
		Patterns: []string{"*.rs"},
	})
	require.NoError(t, err)

	assert.Equal(t, "rust", result.Preset)
	assert.Equal(t, source, result.Source)
	assert.Equal(t, []string{"*.rs"}, result.Patterns)
	assert.Equal(t, []types.PresetEntry{{Path: "a.rs"}, {Path: "dir/c.rs"}}, result.Entries)
	assert.False(t, result.Synced)
	assert.Empty(t, result.Targets)
}

func TestCommitPreset_Sync(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.Dir("source")
	testutil.WriteTree(t, source, "a.rs")

	_, err := commit.CommitPreset(commit.CommitOptions{Env: env.Env, Name: "rust", Source: source})
	require.NoError(t, err)

	good := env.Dir("good")
	gone := env.Dir("gone")
	blocked := env.Dir("blocked")
	for _, target := range []string{good, gone, blocked} {
		_, err := link.LinkPreset(link.LinkOptions{Env: env.Env, Preset: "rust", Target: target, Track: true})
		require.NoError(t, err)
	}
	require.NoError(t, os.RemoveAll(gone))

	// The new file cannot be linked into "blocked": a non-empty directory sits there
	testutil.WriteTree(t, source, "new.rs")
	testutil.WriteTree(t, blocked, "new.rs/keep.txt")

	result, err := commit.CommitPreset(commit.CommitOptions{Env: env.Env, Name: "rust", Source: source, Sync: true})
	require.NoError(t, err)

	assert.True(t, result.Synced)
	assert.Equal(t, 1, result.Cleaned)
	require.Len(t, result.Targets, 2)

	assert.Equal(t, good, result.Targets[0].Target)
	assert.Equal(t, types.StatusSuccess, result.Targets[0].Status)
	assert.Equal(t, 2, result.Targets[0].Count)

	assert.Equal(t, blocked, result.Targets[1].Target)
	assert.Equal(t, types.StatusAlert, result.Targets[1].Status)
	assert.NotEmpty(t, result.Targets[1].Error)
	assert.Equal(t, types.StatusAlert, result.Status())

	assert.Equal(t, map[string]string{
		"a.rs":   filepath.Join(source, "a.rs"),
		"new.rs": filepath.Join(source, "new.rs"),
	}, testutil.Symlinks(t, good), "sync re-applies the new structure")

	targets, err := env.Env.Registry.GetLinks("rust")
	require.NoError(t, err)
	assert.Equal(t, []string{good, blocked}, targets)
}

func TestCommitPreset_SyncWithoutTargets(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.Dir("source")

	result, err := commit.CommitPreset(commit.CommitOptions{Env: env.Env, Name: "rust", Source: source, Sync: true})
	require.NoError(t, err)
	assert.True(t, result.Synced)
	assert.Empty(t, result.Targets)
	assert.Equal(t, types.StatusSkipped, result.Status())
}
