package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnv(t *testing.T) {
	base := t.TempDir()

	env, err := NewEnv(EnvOptions{
		BaseDir:   base,
		Overrides: map[string]interface{}{"link.rollback": false},
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(base), env.Paths.BaseDir())
	assert.False(t, env.Config.Link.Rollback)
	assert.NotNil(t, env.Store)
	assert.NotNil(t, env.Registry)
	assert.NotNil(t, env.Builder)
	assert.NotNil(t, env.Resolve)
}

func TestNewEnv_StampHome(t *testing.T) {
	base := t.TempDir()
	t.Setenv("STAMP_HOME", base)

	env, err := NewEnv(EnvOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(base), env.Paths.BaseDir())
	assert.Equal(t, filepath.Join(base, "links.toml"), env.Registry.Path())
}
