package scanner

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/filesystem"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/types"
	"github.com/rs/zerolog"
)

// Item is one descendant found by Walk
type Item struct {
	// Path is relative to the walk root, slash-separated
	Path string
	// IsDir follows symlinks: a link to a directory reports true
	IsDir bool
	// Kind is the entry's own kind; symlinks report PathSymlink
	Kind types.PathKind
}

// Scanner walks directory trees through a types.FS
type Scanner struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a new scanner
func New(fs types.FS) *Scanner {
	return &Scanner{
		fs:     fs,
		logger: logging.GetLogger("scanner"),
	}
}

// Walk returns every descendant of root in pre-order. The root itself must be
// a readable directory; unreadable subdirectories are logged and skipped.
func (s *Scanner) Walk(root string) ([]Item, error) {
	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, errors.PathError(err, errors.ErrIO, "read directory", root)
	}

	items := []Item{}
	s.walkEntries(root, "", entries, &items)

	s.logger.Debug().
		Str("root", root).
		Int("items", len(items)).
		Msg("Walk complete")

	return items, nil
}

func (s *Scanner) walkEntries(root, rel string, entries []fs.DirEntry, items *[]Item) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		childRel := path.Join(rel, entry.Name())
		abs := filepath.Join(root, filepath.FromSlash(childRel))

		kind, err := filesystem.KindOf(s.fs, abs)
		if err != nil {
			s.logger.Warn().Err(err).Str("path", abs).Msg("Skipping unreadable entry")
			continue
		}

		isDir := kind == types.PathDirectory
		if kind == types.PathSymlink {
			isDir = filesystem.IsDir(s.fs, abs)
		}

		*items = append(*items, Item{Path: childRel, IsDir: isDir, Kind: kind})

		if kind != types.PathDirectory {
			continue
		}

		children, err := s.fs.ReadDir(abs)
		if err != nil {
			s.logger.Warn().Err(err).Str("path", abs).Msg("Skipping unreadable directory")
			continue
		}
		s.walkEntries(root, childRel, children, items)
	}
}

// Scan walks root and returns the entries accepted by matcher, in walk order.
// Entries whose relative path is not valid UTF-8 are logged and skipped.
func (s *Scanner) Scan(root string, matcher *Matcher) ([]types.PresetEntry, error) {
	items, err := s.Walk(root)
	if err != nil {
		return nil, err
	}

	entries := []types.PresetEntry{}
	for _, item := range items {
		if !utf8.ValidString(item.Path) {
			s.logger.Warn().
				Str("path", strconv.Quote(filepath.Join(root, filepath.FromSlash(item.Path)))).
				Msg("Skipping entry with a non UTF-8 name")
			continue
		}
		if !matcher.Match(item.Path) {
			continue
		}
		entries = append(entries, types.PresetEntry{Path: item.Path, IsDir: item.IsDir})
	}

	s.logger.Debug().
		Str("root", root).
		Strs("patterns", matcher.Patterns()).
		Int("walked", len(items)).
		Int("included", len(entries)).
		Msg("Scan complete")

	return entries, nil
}
