package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/testutil"
	"github.com/arthur-debert/stamp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t    *testing.T
	home string
	work string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	h := &harness{t: t, home: filepath.Join(root, "home"), work: filepath.Join(root, "work")}
	require.NoError(t, os.MkdirAll(h.work, 0755))
	return h
}

func (h *harness) path(elem ...string) string {
	return filepath.Join(append([]string{h.work}, elem...)...)
}

// run executes the root command with text output and the given stdin
func (h *harness) run(stdin string, args ...string) (stdout, stderr string, err error) {
	h.t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--home", h.home, "--format", "text"}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func (h *harness) mustRun(stdin string, args ...string) string {
	h.t.Helper()
	out, stderr, err := h.run(stdin, args...)
	require.NoError(h.t, err, "stderr: %s", stderr)
	return out
}

func (h *harness) commitSample(name string) string {
	h.t.Helper()
	src := h.path("src")
	testutil.WriteTree(h.t, src, "Cargo.toml", "src/main.rs", "docs/")
	h.mustRun("", "commit", name, "--source", src)
	return src
}

func TestCommitLinkUnlink(t *testing.T) {
	h := newHarness(t)
	src := h.commitSample("rust")

	out := h.mustRun("", "list")
	assert.Contains(t, out, "Saved presets:")
	assert.Contains(t, out, "rust")

	out = h.mustRun("", "show", "rust")
	assert.Contains(t, out, "Source: "+src)
	assert.Contains(t, out, "docs/")
	assert.Contains(t, out, "src/main.rs")

	dst := h.path("dst")
	out = h.mustRun("", "link", "rust", dst)
	assert.Contains(t, out, "Created symlinks:")
	assert.Contains(t, out, "Applied preset 'rust' to '"+dst+"'. (2 symlinks)")

	assert.Equal(t, map[string]string{
		"Cargo.toml":  filepath.Join(src, "Cargo.toml"),
		"src/main.rs": filepath.Join(src, "src", "main.rs"),
	}, testutil.Symlinks(t, dst))
	assert.DirExists(t, filepath.Join(dst, "docs"))

	out = h.mustRun("", "unlink", dst)
	assert.Contains(t, out, "Removed 2 symlinks from '"+dst+"'.")
	assert.Empty(t, testutil.Symlinks(t, dst))
}

func TestCommitWithPatterns(t *testing.T) {
	h := newHarness(t)
	src := h.path("src")
	testutil.WriteTree(t, src, "Cargo.toml", "src/main.rs", "README.md")

	out := h.mustRun("", "commit", "rust", "--source", src, "-p", "*.rs", "-p", "Cargo.toml")
	assert.Contains(t, out, "filter: *.rs, Cargo.toml")

	out = h.mustRun("", "show", "rust")
	assert.Contains(t, out, "src/main.rs")
	assert.NotContains(t, out, "README.md")
}

func TestLinkConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		args      []string
		wantLinks bool
		wantOut   string
	}{
		{name: "declined", stdin: "n\n", wantOut: "Operation cancelled."},
		{name: "empty answer declines", stdin: "", wantOut: "Operation cancelled."},
		{name: "accepted", stdin: "y\n", wantLinks: true, wantOut: "Applied preset"},
		{name: "yes flag skips prompt", args: []string{"--yes"}, wantLinks: true, wantOut: "Applied preset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.commitSample("rust")
			dst := h.path("dst")
			testutil.WriteTree(t, dst, "existing.txt")

			args := append([]string{"link", "rust", dst}, tt.args...)
			out, stderr, err := h.run(tt.stdin, args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)

			if len(tt.args) == 0 {
				assert.Contains(t, stderr, "is not empty. Do you want to continue? [y/N]: ")
			}
			if tt.wantLinks {
				assert.Len(t, testutil.Symlinks(t, dst), 2)
			} else {
				assert.Empty(t, testutil.Symlinks(t, dst))
			}
		})
	}
}

func TestLinkQuiet(t *testing.T) {
	h := newHarness(t)
	h.commitSample("rust")
	dst := h.path("dst")

	out := h.mustRun("", "link", "rust", dst, "--quiet")
	assert.Empty(t, out)
	assert.Len(t, testutil.Symlinks(t, dst), 2)
}

func TestCommitSync(t *testing.T) {
	h := newHarness(t)
	src := h.commitSample("rust")
	dst := h.path("dst")
	h.mustRun("", "link", "rust", dst, "--sync")

	out := h.mustRun("", "list")
	assert.Contains(t, out, "(linked at 1 location(s))")

	testutil.WriteTree(t, src, "build.rs")
	out = h.mustRun("", "commit", "rust", "--source", src, "--sync")
	assert.Contains(t, out, "Synced locations:")
	assert.Contains(t, out, dst)

	assert.Equal(t, filepath.Join(src, "build.rs"), testutil.Symlinks(t, dst)["build.rs"])
}

func TestDelete(t *testing.T) {
	t.Run("keeps symlinks without unlink", func(t *testing.T) {
		h := newHarness(t)
		h.commitSample("rust")
		dst := h.path("dst")
		h.mustRun("", "link", "rust", dst, "--sync")

		out, stderr, err := h.run("y\n", "delete", "rust")
		require.NoError(t, err)
		assert.Contains(t, stderr, "Preset 'rust' is linked to:")
		assert.Contains(t, stderr, "lose their preset reference")
		assert.Contains(t, stderr, "Delete 1 preset(s)? [y/N]: ")
		assert.Contains(t, out, "Deleted preset: rust")
		assert.Contains(t, out, "1 preset(s) deleted.")

		assert.Len(t, testutil.Symlinks(t, dst), 2)
		assert.Contains(t, h.mustRun("", "list"), "No saved presets.")
	})

	t.Run("unlink removes symlinks", func(t *testing.T) {
		h := newHarness(t)
		h.commitSample("rust")
		dst := h.path("dst")
		h.mustRun("", "link", "rust", dst, "--sync")

		out := h.mustRun("", "delete", "rust", "--unlink", "--yes")
		assert.Contains(t, out, "Unlinked locations:")
		assert.Empty(t, testutil.Symlinks(t, dst))
	})

	t.Run("declined", func(t *testing.T) {
		h := newHarness(t)
		h.commitSample("rust")

		out := h.mustRun("no\n", "delete", "rust")
		assert.Contains(t, out, "Operation cancelled.")
		assert.Contains(t, h.mustRun("", "list"), "rust")
	})

	t.Run("missing preset", func(t *testing.T) {
		h := newHarness(t)
		h.commitSample("rust")

		_, _, err := h.run("", "delete", "rust", "ghost", "--yes")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		assert.Contains(t, err.Error(), "ghost")
		assert.Contains(t, h.mustRun("", "list"), "rust")
	})
}

func TestShowMissingPreset(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run("", "show", "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestJSONOutput(t *testing.T) {
	h := newHarness(t)
	h.commitSample("rust")

	out := h.mustRun("", "--format", "json", "list")

	var result types.ListResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Presets, 1)
	assert.Equal(t, "rust", result.Presets[0].Name)
}

func TestFormatFromEnvironment(t *testing.T) {
	h := newHarness(t)
	h.commitSample("rust")
	t.Setenv("STAMP_OUTPUT_FORMAT", "yaml")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--home", h.home, "list"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "presets:")
	assert.Contains(t, out.String(), "- name: rust")
}

func TestInvalidFormat(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run("", "--format", "xml", "list")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestVersionCmd(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("", "version")
	assert.True(t, strings.HasPrefix(out, "stamp version "))
}

func TestArgumentValidation(t *testing.T) {
	h := newHarness(t)
	for _, args := range [][]string{
		{"link"},
		{"commit"},
		{"show"},
		{"delete"},
		{"list", "extra"},
	} {
		_, _, err := h.run("", args...)
		assert.Error(t, err, "args: %v", args)
	}
}
