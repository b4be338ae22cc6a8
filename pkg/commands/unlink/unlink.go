package unlink

import (
	"path/filepath"

	"github.com/arthur-debert/stamp/pkg/core"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/paths"
	"github.com/arthur-debert/stamp/pkg/types"
)

// UnlinkOptions defines the options for the UnlinkTarget command.
type UnlinkOptions struct {
	Env *core.Env
	// Target is the directory to clear of symlinks.
	Target string
}

// UnlinkTarget removes every symlink beneath the target, then drops the
// target's registry records. A target that cannot be resolved (for example
// because it no longer exists) simply has no records to drop.
func UnlinkTarget(opts UnlinkOptions) (*types.UnlinkResult, error) {
	log := logging.GetLogger("commands.unlink")
	log.Debug().Str("command", "UnlinkTarget").Str("target", opts.Target).Msg("Executing command")

	env := opts.Env
	target := opts.Target
	if resolved, err := env.Resolve(target); err == nil {
		target = resolved
	} else if abs, absErr := filepath.Abs(paths.ExpandHome(target)); absErr == nil {
		target = abs
	}

	removed, err := env.Builder.Unlink(target)
	if err != nil {
		return nil, err
	}

	result := &types.UnlinkResult{Target: target, Removed: removed}

	preset, found, err := env.Registry.RemoveLink(target)
	switch {
	case err != nil:
		log.Debug().Err(err).Str("target", target).Msg("No registry record removed")
	case found:
		result.Preset = preset
	}

	log.Info().
		Str("command", "UnlinkTarget").
		Int("removed", len(removed)).
		Str("preset", result.Preset).
		Msg("Command finished")
	return result, nil
}
