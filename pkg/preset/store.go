package preset

import (
	"sort"
	"strings"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/filesystem"
	"github.com/arthur-debert/stamp/pkg/links"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/paths"
	"github.com/arthur-debert/stamp/pkg/scanner"
	"github.com/arthur-debert/stamp/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Store persists preset documents
type Store struct {
	fs       types.FS
	paths    paths.Paths
	registry *links.Registry
	scanner  *scanner.Scanner
	resolve  paths.Resolver
	logger   zerolog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithResolver replaces the resolver applied to commit sources
func WithResolver(resolve paths.Resolver) Option {
	return func(s *Store) { s.resolve = resolve }
}

// New creates a Store. registry receives record purges on Delete.
func New(fs types.FS, p paths.Paths, registry *links.Registry, opts ...Option) *Store {
	s := &Store{
		fs:       fs,
		paths:    p,
		registry: registry,
		scanner:  scanner.New(fs),
		resolve:  paths.Resolve,
		logger:   logging.GetLogger("preset.store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the names of all stored presets, sorted. A missing presets
// directory yields an empty list.
func (s *Store) List() ([]string, error) {
	dir := s.paths.PresetsDir()
	if !filesystem.IsDir(s.fs, dir) {
		return []string{}, nil
	}

	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.PathError(err, errors.ErrIO, "list presets", dir)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		name, ok := strings.CutSuffix(e.Name(), paths.PresetExt)
		if !ok || !s.Exists(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether a loadable document for name is present. It follows
// symlinks, so a dangling link in the presets directory does not count.
func (s *Store) Exists(name string) bool {
	if paths.ValidatePresetName(name) != nil {
		return false
	}
	return filesystem.Exists(s.fs, s.paths.PresetPath(name))
}

// Load reads the named preset
func (s *Store) Load(name string) (*types.Preset, error) {
	if err := paths.ValidatePresetName(name); err != nil {
		return nil, err
	}

	path := s.paths.PresetPath(name)
	if !filesystem.Exists(s.fs, path) {
		return nil, errors.Newf(errors.ErrNotFound, "preset '%s' not found", name).
			WithDetail("preset", name).
			WithDetail(errors.DetailPath, path)
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, errors.PathError(err, errors.ErrIO, "read preset", path)
	}

	var preset types.Preset
	if err := toml.Unmarshal(data, &preset); err != nil {
		return nil, errors.PathError(err, errors.ErrParse, "parse preset", path).
			WithDetail("preset", name)
	}
	if preset.Entries == nil {
		preset.Entries = []types.PresetEntry{}
	}

	return &preset, nil
}

// Commit snapshots source under name, overwriting any previous document of
// the same name. When patterns is non-empty only entries whose relative path
// matches at least one pattern are kept. The captured entries are returned.
func (s *Store) Commit(name, source string, patterns []string) ([]types.PresetEntry, error) {
	logger := s.logger.With().Str("preset", name).Logger()
	done := logging.LogOperationStart(logger, "commit")
	defer done()

	if err := paths.ValidatePresetName(name); err != nil {
		return nil, err
	}

	resolved, err := s.resolve(source)
	if err != nil {
		return nil, err
	}
	if err := paths.ValidateEncoding(resolved); err != nil {
		return nil, err
	}

	matcher, err := scanner.NewMatcher(patterns)
	if err != nil {
		return nil, err
	}

	entries, err := s.scanner.Scan(resolved, matcher)
	if err != nil {
		return nil, err
	}

	preset := types.Preset{
		Name:    name,
		Source:  resolved,
		Entries: entries,
	}
	if err := s.save(&preset); err != nil {
		return nil, err
	}

	logger.Info().
		Str("source", resolved).
		Int("entries", len(entries)).
		Strs("patterns", matcher.Patterns()).
		Msg("Preset committed")
	return entries, nil
}

func (s *Store) save(preset *types.Preset) error {
	data, err := toml.Marshal(preset)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "could not serialize preset").
			WithDetail("preset", preset.Name)
	}

	path := s.paths.PresetPath(preset.Name)
	if err := filesystem.WriteFileAtomic(s.fs, path, data, 0644); err != nil {
		return errors.PathError(err, errors.ErrIO, "write preset", path)
	}
	return nil
}

// Delete removes the named document. With removeLinkRecords every registry
// record for the preset is purged as well; otherwise records are left pointing
// at a preset that no longer exists.
func (s *Store) Delete(name string, removeLinkRecords bool) error {
	if !s.Exists(name) {
		return errors.Newf(errors.ErrNotFound, "preset '%s' not found", name).
			WithDetail("preset", name)
	}

	path := s.paths.PresetPath(name)
	if err := s.fs.Remove(path); err != nil {
		return errors.PathError(err, errors.ErrIO, "delete preset", path)
	}
	s.logger.Info().Str("preset", name).Msg("Preset deleted")

	if !removeLinkRecords || s.registry == nil {
		return nil
	}

	if _, err := s.registry.RemoveLinksForPreset(name); err != nil {
		return err
	}
	return nil
}
