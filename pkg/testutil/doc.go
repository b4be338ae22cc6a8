// Package testutil provides utilities for testing stamp commands.
//
// Key components:
//   - TestEnvironment: an isolated base directory and work area, with a fully
//     wired core.Env pointing at them
//   - WriteTree / Symlinks: declarative tree setup and inspection helpers
//
// Usage guidelines:
//   - Every test gets its own environment; nothing is shared between tests
//   - Environments use the real filesystem under t.TempDir(), since the
//     behaviour under test is symlink handling
//   - All test data should be defined inline, not in external files
package testutil
