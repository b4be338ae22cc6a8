package links

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/filesystem"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/paths"
	"github.com/arthur-debert/stamp/pkg/types"
	"github.com/gofrs/flock"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Registry manages the links document
type Registry struct {
	fs       types.FS
	path     string
	lockPath string
	useLock  bool
	resolve  paths.Resolver
	now      func() time.Time
	logger   zerolog.Logger
}

// Option configures a Registry
type Option func(*Registry)

// WithClock sets the timestamp source for linked_at
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithResolver replaces the path resolver applied to targets
func WithResolver(resolve paths.Resolver) Option {
	return func(r *Registry) { r.resolve = resolve }
}

// WithLock enables or disables the exclusive file lock around mutations.
// The lock always uses the real filesystem.
func WithLock(enabled bool) Option {
	return func(r *Registry) { r.useLock = enabled }
}

// New creates a Registry storing its document at p.LinksFile()
func New(fs types.FS, p paths.Paths, opts ...Option) *Registry {
	r := &Registry{
		fs:       fs,
		path:     p.LinksFile(),
		lockPath: p.LockFile(),
		useLock:  true,
		resolve:  paths.Resolve,
		now:      time.Now,
		logger:   logging.GetLogger("links.registry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the registry document path
func (r *Registry) Path() string {
	return r.path
}

// Load reads the registry. A missing document yields an empty registry.
func (r *Registry) Load() (*types.LinksRegistry, error) {
	kind, err := filesystem.KindOf(r.fs, r.path)
	if err != nil {
		return nil, errors.PathError(err, errors.ErrIO, "stat links registry", r.path)
	}
	if kind == types.PathMissing {
		r.logger.Debug().Str("path", r.path).Msg("No links registry, starting empty")
		return &types.LinksRegistry{Links: []types.LinkRecord{}}, nil
	}

	data, err := r.fs.ReadFile(r.path)
	if err != nil {
		return nil, errors.PathError(err, errors.ErrIO, "read links registry", r.path)
	}

	var registry types.LinksRegistry
	if err := toml.Unmarshal(data, &registry); err != nil {
		return nil, errors.PathError(err, errors.ErrParse, "parse links registry", r.path)
	}
	if registry.Links == nil {
		registry.Links = []types.LinkRecord{}
	}

	return &registry, nil
}

// Save serializes registry and replaces the document in full.
func (r *Registry) Save(registry *types.LinksRegistry) error {
	data, err := toml.Marshal(registry)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "could not serialize links registry")
	}

	if err := filesystem.WriteFileAtomic(r.fs, r.path, data, 0644); err != nil {
		return errors.PathError(err, errors.ErrIO, "save links registry", r.path)
	}

	r.logger.Debug().
		Str("path", r.path).
		Int("records", len(registry.Links)).
		Msg("Links registry saved")
	return nil
}

// update runs a read-modify-write cycle under the lock. mutate reports
// whether anything changed; the document is only rewritten if so.
func (r *Registry) update(mutate func(*types.LinksRegistry) (bool, error)) error {
	unlock, err := r.lock()
	if err != nil {
		return err
	}
	defer unlock()

	registry, err := r.Load()
	if err != nil {
		return err
	}

	changed, err := mutate(registry)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return r.Save(registry)
}

func (r *Registry) lock() (func(), error) {
	if !r.useLock {
		return func() {}, nil
	}

	if err := r.fs.MkdirAll(filepath.Dir(r.lockPath), 0755); err != nil {
		return nil, errors.PathError(err, errors.ErrIO, "create registry directory", r.lockPath)
	}

	fl := flock.New(r.lockPath)
	if err := fl.Lock(); err != nil {
		return nil, errors.PathError(err, errors.ErrIO, "lock links registry", r.lockPath)
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			r.logger.Warn().Err(err).Str("path", r.lockPath).Msg("Failed to release registry lock")
		}
	}, nil
}

func (r *Registry) timestamp() string {
	return r.now().UTC().Format(time.RFC3339Nano)
}

// AddLink records that preset was applied to target. An existing record for
// the same (preset, target) pair only has its timestamp refreshed.
func (r *Registry) AddLink(preset, target string) error {
	resolved, err := r.resolve(target)
	if err != nil {
		return err
	}
	if err := paths.ValidateEncoding(resolved); err != nil {
		return err
	}

	return r.update(func(registry *types.LinksRegistry) (bool, error) {
		now := r.timestamp()
		if existing := registry.Find(preset, resolved); existing != nil {
			existing.LinkedAt = now
			r.logger.Debug().Str("preset", preset).Str("target", resolved).Msg("Link refreshed")
			return true, nil
		}

		registry.Links = append(registry.Links, types.LinkRecord{
			Preset:   preset,
			Target:   resolved,
			LinkedAt: now,
		})
		r.logger.Info().Str("preset", preset).Str("target", resolved).Msg("Link recorded")
		return true, nil
	})
}

// RemoveLink deletes every record whose target is target, whichever preset it
// belongs to. It returns the preset of the first such record, if any.
func (r *Registry) RemoveLink(target string) (preset string, found bool, err error) {
	resolved, err := r.resolve(target)
	if err != nil {
		return "", false, err
	}

	err = r.update(func(registry *types.LinksRegistry) (bool, error) {
		for _, l := range registry.Links {
			if l.Target == resolved {
				preset, found = l.Preset, true
				break
			}
		}

		removed := registry.RemoveWhere(func(l types.LinkRecord) bool {
			return l.Target == resolved
		})
		if removed > 0 {
			r.logger.Info().Str("target", resolved).Int("removed", removed).Msg("Link records removed")
		}
		return removed > 0, nil
	})
	if err != nil {
		return "", false, err
	}

	return preset, found, nil
}

// GetLinks returns every target recorded for preset, in registry order.
func (r *Registry) GetLinks(preset string) ([]string, error) {
	registry, err := r.Load()
	if err != nil {
		return nil, err
	}
	return registry.TargetsFor(preset), nil
}

// CleanupBrokenLinks drops records whose target no longer exists on disk and
// returns how many were dropped.
func (r *Registry) CleanupBrokenLinks() (int, error) {
	removed := 0
	err := r.update(func(registry *types.LinksRegistry) (bool, error) {
		removed = registry.RemoveWhere(func(l types.LinkRecord) bool {
			if filesystem.Exists(r.fs, l.Target) {
				return false
			}
			r.logger.Info().Str("preset", l.Preset).Str("target", l.Target).Msg("Dropping broken link")
			return true
		})
		return removed > 0, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// RemoveLinksForPreset drops every record for preset and returns how many
// were dropped.
func (r *Registry) RemoveLinksForPreset(preset string) (int, error) {
	removed := 0
	err := r.update(func(registry *types.LinksRegistry) (bool, error) {
		removed = registry.RemoveWhere(func(l types.LinkRecord) bool {
			return l.Preset == preset
		})
		return removed > 0, nil
	})
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		r.logger.Info().Str("preset", preset).Int("removed", removed).Msg("Preset link records removed")
	}
	return removed, nil
}
