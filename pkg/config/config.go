package config

import (
	"strings"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/filesystem"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. STAMP_LINK_ROLLBACK
const EnvPrefix = "STAMP_"

// Output formats
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Config holds the resolved settings
type Config struct {
	Link     LinkConfig     `koanf:"link"`
	Registry RegistryConfig `koanf:"registry"`
	Output   OutputConfig   `koanf:"output"`
}

// LinkConfig controls materialization
type LinkConfig struct {
	Rollback        bool `koanf:"rollback"`
	ConfirmNonEmpty bool `koanf:"confirm_non_empty"`
}

// RegistryConfig controls the link registry
type RegistryConfig struct {
	Lock bool `koanf:"lock"`
}

// OutputConfig controls command output
type OutputConfig struct {
	Format string `koanf:"format"`
}

// Options tells Load where to look
type Options struct {
	// ConfigFile is the user settings file; a missing file is skipped
	ConfigFile string
	// Overrides are applied last, keyed by dotted path ("link.rollback")
	Overrides map[string]interface{}
}

// Load builds a Config from the layered sources
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	if opts.ConfigFile != "" {
		if filesystem.Exists(filesystem.NewOS(), opts.ConfigFile) {
			if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
				return nil, errors.PathError(err, errors.ErrConfigLoad, "load config", opts.ConfigFile)
			}
			logger.Debug().Str("path", opts.ConfigFile).Msg("Loaded user config")
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps STAMP_LINK_CONFIRM_NON_EMPTY to link.confirm_non_empty. Only the
// first underscore separates section from key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func (c *Config) validate() error {
	switch c.Output.Format {
	case FormatAuto, FormatText, FormatJSON, FormatYAML, FormatTOML:
		return nil
	default:
		return errors.Newf(errors.ErrConfigLoad, "unknown output format %q", c.Output.Format).
			WithDetail("key", "output.format")
	}
}
