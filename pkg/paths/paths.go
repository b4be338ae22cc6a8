package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/stamp/pkg/errors"
)

// Environment variable names
const (
	// EnvStampHome overrides the base directory for presets and the registry
	EnvStampHome = "STAMP_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Layout of the base directory. These names define the on-disk contract and
// are not user-configurable.
const (
	// BaseDirName is the directory created under the XDG config home
	BaseDirName = "stamp.env"

	// PresetsDirName holds one document per preset
	PresetsDirName = "presets"

	// PresetExt is the extension of preset documents
	PresetExt = ".toml"

	// LinksFileName is the registry document, a sibling of the presets dir
	LinksFileName = "links.toml"

	// LockFileName guards registry read-modify-write cycles
	LockFileName = "links.toml.lock"

	// ConfigFileName holds optional user settings
	ConfigFileName = "config.toml"
)

// Paths provides centralized path management for stamp
type Paths interface {
	BaseDir() string
	PresetsDir() string
	PresetPath(name string) string
	LinksFile() string
	LockFile() string
	ConfigFile() string
}

type paths struct {
	baseDir string
}

// New creates a Paths rooted at baseDir. If baseDir is empty it is taken from
// STAMP_HOME, then from the XDG config home. Failure to determine any of them
// is reported as ErrConfigDirUnavailable.
func New(baseDir string) (Paths, error) {
	if baseDir == "" {
		baseDir = os.Getenv(EnvStampHome)
	}
	if baseDir == "" {
		if xdg.ConfigHome == "" {
			return nil, errors.New(errors.ErrConfigDirUnavailable,
				"could not determine the user config directory")
		}
		baseDir = filepath.Join(xdg.ConfigHome, BaseDirName)
	}

	abs, err := filepath.Abs(expandHome(baseDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigDirUnavailable,
			"failed to get absolute path for base directory %s", baseDir).
			WithDetail(errors.DetailPath, baseDir)
	}

	return &paths{baseDir: filepath.Clean(abs)}, nil
}

// BaseDir returns the per-user storage root
func (p *paths) BaseDir() string {
	return p.baseDir
}

// PresetsDir returns the directory holding preset documents
func (p *paths) PresetsDir() string {
	return filepath.Join(p.baseDir, PresetsDirName)
}

// PresetPath returns the document path for a preset name
func (p *paths) PresetPath(name string) string {
	return filepath.Join(p.PresetsDir(), name+PresetExt)
}

// LinksFile returns the registry document path
func (p *paths) LinksFile() string {
	return filepath.Join(p.baseDir, LinksFileName)
}

// LockFile returns the registry lock path
func (p *paths) LockFile() string {
	return filepath.Join(p.baseDir, LockFileName)
}

// ConfigFile returns the user settings path
func (p *paths) ConfigFile() string {
	return filepath.Join(p.baseDir, ConfigFileName)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}
