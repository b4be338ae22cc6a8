package filesystem

import (
	"errors"
	"io/fs"

	"github.com/arthur-debert/stamp/pkg/types"
)

// KindOf classifies path by its own metadata, so a dangling symlink is
// PathSymlink rather than PathMissing. Errors other than non-existence are
// returned as-is.
func KindOf(fsys types.FS, path string) (types.PathKind, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.PathMissing, nil
		}
		return types.PathMissing, err
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return types.PathSymlink, nil
	case info.IsDir():
		return types.PathDirectory, nil
	default:
		return types.PathFile, nil
	}
}

// Exists reports whether path resolves to something on disk. Unlike KindOf it
// follows symlinks, so a dangling symlink does not exist.
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// IsDir reports whether path resolves to a directory, following symlinks.
func IsDir(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// IsDirEmpty reports whether path is an empty directory. A missing path counts
// as empty; a path that is not a directory does not.
func IsDirEmpty(fsys types.FS, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return false, nil
	}

	entries, err := fsys.ReadDir(path)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}
