package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTree creates files under root. Entries ending in "/" are created as
// directories; every other entry is a file whose content is its own path.
func WriteTree(t *testing.T, root string, entries ...string) {
	t.Helper()
	for _, e := range entries {
		p := filepath.Join(root, filepath.FromSlash(e))
		if strings.HasSuffix(e, "/") {
			require.NoError(t, os.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(e), 0644))
	}
}

// Symlinks maps every symlink beneath root, by slash-separated relative path,
// to its destination. Symlinks are not followed.
func Symlinks(t *testing.T, root string) map[string]string {
	t.Helper()
	links := map[string]string{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return nil
		}
		dest, err := os.Readlink(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		links[filepath.ToSlash(rel)] = dest
		return nil
	})
	require.NoError(t, err)
	return links
}
