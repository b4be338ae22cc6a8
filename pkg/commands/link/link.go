package link

import (
	"github.com/arthur-debert/stamp/pkg/core"
	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/filesystem"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/paths"
	"github.com/arthur-debert/stamp/pkg/types"
)

// LinkOptions defines the options for the LinkPreset command.
type LinkOptions struct {
	Env *core.Env
	// Preset is the name of the preset to apply.
	Preset string
	// Target is the directory to materialize into; it is created if missing.
	Target string
	// Track records the target in the link registry so commit --sync reaches it.
	Track bool
}

// LinkPreset applies a stored preset to a target directory.
func LinkPreset(opts LinkOptions) (*types.LinkResult, error) {
	log := logging.GetLogger("commands.link")
	log.Debug().Str("command", "LinkPreset").Str("preset", opts.Preset).Msg("Executing command")

	env := opts.Env
	preset, err := env.Store.Load(opts.Preset)
	if err != nil {
		return nil, err
	}

	dir := paths.ExpandHome(opts.Target)
	if err := env.FS.MkdirAll(dir, 0755); err != nil {
		return nil, errors.PathError(err, errors.ErrIO, "create target", opts.Target)
	}
	target, err := env.Resolve(dir)
	if err != nil {
		return nil, err
	}

	created, err := env.Builder.Apply(preset, target)
	if err != nil {
		return nil, err
	}

	if opts.Track {
		if err := env.Registry.AddLink(preset.Name, target); err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("command", "LinkPreset").
		Str("target", target).
		Int("created", len(created)).
		Bool("tracked", opts.Track).
		Msg("Command finished")

	return &types.LinkResult{
		Preset:  preset.Name,
		Target:  target,
		Created: created,
		Tracked: opts.Track,
	}, nil
}

// TargetNeedsConfirmation reports whether target already has content. Missing
// targets and empty directories do not need confirmation.
func TargetNeedsConfirmation(env *core.Env, target string) (bool, error) {
	empty, err := filesystem.IsDirEmpty(env.FS, paths.ExpandHome(target))
	if err != nil {
		return false, errors.PathError(err, errors.ErrIO, "inspect target", target)
	}
	return !empty, nil
}
