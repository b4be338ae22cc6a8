package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/stamp/pkg/types"
	"github.com/google/uuid"
)

// TempSuffix marks in-flight document writes.
const TempSuffix = ".tmp"

// WriteFileAtomic replaces path with data by writing a sibling temp file and
// renaming it over the destination, so readers never observe a partial
// document. The parent directory is created if needed.
func WriteFileAtomic(fsys types.FS, path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+TempSuffix)
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}

	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}

	return nil
}
