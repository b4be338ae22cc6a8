package show_test

import (
	"testing"

	"github.com/arthur-debert/stamp/pkg/commands/show"
	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/testutil"
	"github.com/arthur-debert/stamp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowPreset(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	source := env.Dir("source")
	testutil.WriteTree(t, source, "a.rs", "dir/")
	_, err := env.Env.Store.Commit("rust", source, nil)
	require.NoError(t, err)

	result, err := show.ShowPreset(show.ShowOptions{Env: env.Env, Name: "rust"})
	require.NoError(t, err)
	assert.Equal(t, source, result.Preset.Source)
	assert.Equal(t, []types.PresetEntry{{Path: "a.rs"}, {Path: "dir", IsDir: true}}, result.Preset.Entries)
	assert.Empty(t, result.Targets)

	_, err = show.ShowPreset(show.ShowOptions{Env: env.Env, Name: "nope"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}
