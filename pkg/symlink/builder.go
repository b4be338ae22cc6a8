package symlink

import (
	"path/filepath"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/filesystem"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/scanner"
	"github.com/arthur-debert/stamp/pkg/types"
	"github.com/rs/zerolog"
)

// Builder creates and removes symlink sets
type Builder struct {
	fs       types.FS
	scanner  *scanner.Scanner
	rollback bool
	logger   zerolog.Logger
}

// Option configures a Builder
type Option func(*Builder)

// WithRollback makes Apply undo its own creations when it fails midway
func WithRollback(enabled bool) Option {
	return func(b *Builder) { b.rollback = enabled }
}

// NewBuilder creates a Builder operating on fs
func NewBuilder(fs types.FS, opts ...Option) *Builder {
	b := &Builder{
		fs:      fs,
		scanner: scanner.New(fs),
		logger:  logging.GetLogger("symlink"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Apply materializes preset beneath targetDir and returns the symlinks it
// created, in entry order. Directories are created but not reported.
func (b *Builder) Apply(preset *types.Preset, targetDir string) ([]string, error) {
	logger := b.logger.With().
		Str("preset", preset.Name).
		Str("target", targetDir).
		Logger()
	done := logging.LogOperationStart(logger, "apply")
	defer done()

	j := &journal{}
	created := []string{}

	for _, entry := range preset.Entries {
		rel := filepath.FromSlash(entry.Path)
		source := filepath.Join(preset.Source, rel)
		dest := filepath.Join(targetDir, rel)

		if entry.IsDir {
			if err := b.mkdirAll(dest, j); err != nil {
				return created, b.fail(err, "create directory", dest, j)
			}
			continue
		}

		if err := b.mkdirAll(filepath.Dir(dest), j); err != nil {
			return created, b.fail(err, "create directory", filepath.Dir(dest), j)
		}

		if err := b.clear(dest); err != nil {
			return created, b.fail(err, "remove existing", dest, j)
		}

		if err := b.fs.Symlink(source, dest); err != nil {
			return created, b.fail(err, "create symlink", dest, j)
		}
		j.links = append(j.links, dest)
		created = append(created, dest)

		logger.Debug().Str("source", source).Str("dest", dest).Msg("Symlink created")
	}

	logger.Info().Int("links", len(created)).Msg("Preset applied")
	return created, nil
}

// clear removes whatever occupies dest. The check uses the entry's own
// metadata so dangling symlinks are found too. Files, symlinks and empty
// directories are replaced. A non-empty directory is never removed
// recursively, so Apply stops there with an IO error.
func (b *Builder) clear(dest string) error {
	kind, err := filesystem.KindOf(b.fs, dest)
	if err != nil {
		return err
	}
	if !kind.Exists() {
		return nil
	}

	b.logger.Debug().Str("dest", dest).Stringer("kind", kind).Msg("Replacing existing entry")
	return b.fs.Remove(dest)
}

// mkdirAll creates dir and its missing parents, journaling the directories
// that did not exist before so a rollback can remove them.
func (b *Builder) mkdirAll(dir string, j *journal) error {
	if !b.rollback {
		return b.fs.MkdirAll(dir, 0755)
	}

	var missing []string
	for p := dir; ; p = filepath.Dir(p) {
		kind, err := filesystem.KindOf(b.fs, p)
		if err != nil {
			return err
		}
		if kind.Exists() {
			break
		}
		missing = append(missing, p)
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}

	if err := b.fs.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Shallowest first, so reverse replay removes children before parents
	for i := len(missing) - 1; i >= 0; i-- {
		j.dirs = append(j.dirs, missing[i])
	}
	return nil
}

func (b *Builder) fail(err error, op, path string, j *journal) error {
	wrapped := errors.PathError(err, errors.ErrIO, op, path)
	b.logger.Error().Err(err).Str("op", op).Str("path", path).Msg("Apply failed")

	if b.rollback {
		b.undo(j)
	}
	return wrapped
}

func (b *Builder) undo(j *journal) {
	for i := len(j.links) - 1; i >= 0; i-- {
		if err := b.fs.Remove(j.links[i]); err != nil {
			b.logger.Warn().Err(err).Str("path", j.links[i]).Msg("Rollback could not remove symlink")
		}
	}
	for i := len(j.dirs) - 1; i >= 0; i-- {
		if err := b.fs.Remove(j.dirs[i]); err != nil {
			b.logger.Warn().Err(err).Str("path", j.dirs[i]).Msg("Rollback could not remove directory")
		}
	}
	b.logger.Info().
		Int("links", len(j.links)).
		Int("dirs", len(j.dirs)).
		Msg("Apply rolled back")
}

// Unlink removes every symlink beneath targetDir and returns the removed
// paths. A missing target has nothing to remove.
func (b *Builder) Unlink(targetDir string) ([]string, error) {
	removed := []string{}

	kind, err := filesystem.KindOf(b.fs, targetDir)
	if err != nil {
		return nil, errors.PathError(err, errors.ErrIO, "stat", targetDir)
	}
	if !kind.Exists() {
		b.logger.Debug().Str("target", targetDir).Msg("Unlink target missing, nothing to do")
		return removed, nil
	}

	items, err := b.scanner.Walk(targetDir)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.Kind != types.PathSymlink {
			continue
		}
		path := filepath.Join(targetDir, filepath.FromSlash(item.Path))
		if err := b.fs.Remove(path); err != nil {
			return removed, errors.PathError(err, errors.ErrIO, "remove symlink", path)
		}
		removed = append(removed, path)
	}

	b.logger.Info().
		Str("target", targetDir).
		Int("removed", len(removed)).
		Msg("Symlinks removed")
	return removed, nil
}
