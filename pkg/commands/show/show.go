package show

import (
	"github.com/arthur-debert/stamp/pkg/core"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/types"
)

// ShowOptions defines the options for the ShowPreset command.
type ShowOptions struct {
	Env  *core.Env
	Name string
}

// ShowPreset loads a preset document along with its tracked targets.
func ShowPreset(opts ShowOptions) (*types.ShowResult, error) {
	log := logging.GetLogger("commands.show")
	log.Debug().Str("command", "ShowPreset").Str("preset", opts.Name).Msg("Executing command")

	preset, err := opts.Env.Store.Load(opts.Name)
	if err != nil {
		return nil, err
	}

	targets, err := opts.Env.Registry.GetLinks(opts.Name)
	if err != nil {
		return nil, err
	}

	return &types.ShowResult{Preset: preset, Targets: targets}, nil
}
