package paths

import (
	"path/filepath"

	"github.com/arthur-debert/stamp/pkg/errors"
)

// Resolver canonicalizes a path. Components take one so tests can substitute it.
type Resolver func(path string) (string, error)

// Resolve returns the absolute, symlink-free form of path. The path must
// exist: a missing path, a dangling component, or a permission failure is
// reported as ErrPathResolution with the offending path attached.
func Resolve(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.PathError(err, errors.ErrPathResolution, "resolve", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.PathError(err, errors.ErrPathResolution, "resolve", path)
	}

	return filepath.Clean(resolved), nil
}
