// pkg/testutil/environment.go
// DEPENDENCIES: pkg/core
// PURPOSE: Orchestrate isolated test environments for command tests

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stamp/pkg/config"
	"github.com/arthur-debert/stamp/pkg/core"
	"github.com/arthur-debert/stamp/pkg/paths"
	"github.com/stretchr/testify/require"
)

// TestEnvironment provides a complete test environment with all dependencies
type TestEnvironment struct {
	// BaseDir holds presets and the registry
	BaseDir string
	// WorkDir is a scratch area for sources and targets, canonicalized
	WorkDir string

	Env *core.Env

	t *testing.T
}

// Option adjusts the configuration used by NewTestEnvironment
type Option func(*config.Config)

// WithRollback sets link.rollback
func WithRollback(enabled bool) Option {
	return func(c *config.Config) { c.Link.Rollback = enabled }
}

// NewTestEnvironment creates a new isolated environment. Rollback defaults to
// off so commands behave like the bare materializer unless a test asks.
func NewTestEnvironment(t *testing.T, opts ...Option) *TestEnvironment {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	env := &TestEnvironment{
		BaseDir: filepath.Join(root, "base"),
		WorkDir: filepath.Join(root, "work"),
		t:       t,
	}
	require.NoError(t, os.MkdirAll(env.WorkDir, 0755))

	p, err := paths.New(env.BaseDir)
	require.NoError(t, err)

	cfg := &config.Config{
		Link:     config.LinkConfig{ConfirmNonEmpty: true},
		Registry: config.RegistryConfig{Lock: true},
		Output:   config.OutputConfig{Format: config.FormatText},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	env.Env = core.NewEnvWith(p, cfg, nil, nil)
	return env
}

// Path joins elements onto WorkDir
func (env *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{env.WorkDir}, elem...)...)
}

// Dir creates a directory under WorkDir and returns its path
func (env *TestEnvironment) Dir(elem ...string) string {
	env.t.Helper()
	dir := env.Path(elem...)
	require.NoError(env.t, os.MkdirAll(dir, 0755))
	return dir
}
