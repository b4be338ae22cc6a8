package list

import (
	"github.com/arthur-debert/stamp/pkg/core"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/types"
)

// ListOptions defines the options for the ListPresets command.
type ListOptions struct {
	Env *core.Env
}

// ListPresets returns every stored preset, sorted by name, with the targets
// each is tracked at.
func ListPresets(opts ListOptions) (*types.ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListPresets").Msg("Executing command")

	env := opts.Env
	names, err := env.Store.List()
	if err != nil {
		return nil, err
	}

	registry, err := env.Registry.Load()
	if err != nil {
		return nil, err
	}

	result := &types.ListResult{Presets: make([]types.PresetSummary, len(names))}
	for i, name := range names {
		result.Presets[i] = types.PresetSummary{
			Name:    name,
			Targets: registry.TargetsFor(name),
		}
	}

	log.Info().Str("command", "ListPresets").Int("presetCount", len(names)).Msg("Command finished")
	return result, nil
}
