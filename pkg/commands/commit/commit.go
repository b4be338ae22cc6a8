package commit

import (
	"github.com/arthur-debert/stamp/pkg/core"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/types"
)

// CommitOptions defines the options for the CommitPreset command.
type CommitOptions struct {
	Env *core.Env
	// Name is the preset to create or overwrite.
	Name string
	// Source is the directory to snapshot.
	Source string
	// Patterns restrict entries to those matching at least one glob. Empty keeps all.
	Patterns []string
	// Sync re-applies the new preset to every target it is tracked at.
	Sync bool
}

// CommitPreset saves the structure of Source as a preset. With Sync, broken
// registry records are pruned first and the preset is then re-applied to each
// remaining tracked target; a failing target is reported in the result and
// does not stop the others.
func CommitPreset(opts CommitOptions) (*types.CommitResult, error) {
	log := logging.GetLogger("commands.commit")
	log.Debug().Str("command", "CommitPreset").Str("preset", opts.Name).Msg("Executing command")

	env := opts.Env
	entries, err := env.Store.Commit(opts.Name, opts.Source, opts.Patterns)
	if err != nil {
		return nil, err
	}

	preset, err := env.Store.Load(opts.Name)
	if err != nil {
		return nil, err
	}

	result := &types.CommitResult{
		Preset:   preset.Name,
		Source:   preset.Source,
		Patterns: opts.Patterns,
		Entries:  entries,
		Targets:  []types.TargetOutcome{},
	}

	if !opts.Sync {
		log.Info().Str("command", "CommitPreset").Int("entries", len(entries)).Msg("Command finished")
		return result, nil
	}

	result.Synced = true
	if result.Cleaned, err = env.Registry.CleanupBrokenLinks(); err != nil {
		return nil, err
	}

	targets, err := env.Registry.GetLinks(preset.Name)
	if err != nil {
		return nil, err
	}

	for _, target := range targets {
		result.Targets = append(result.Targets, syncTarget(env, preset, target))
	}

	log.Info().
		Str("command", "CommitPreset").
		Int("entries", len(entries)).
		Int("cleaned", result.Cleaned).
		Int("targets", len(result.Targets)).
		Str("status", result.Status()).
		Msg("Command finished")
	return result, nil
}

func syncTarget(env *core.Env, preset *types.Preset, target string) types.TargetOutcome {
	log := logging.GetLogger("commands.commit")
	outcome := types.TargetOutcome{Preset: preset.Name, Target: target}

	created, err := env.Builder.Apply(preset, target)
	if err == nil {
		err = env.Registry.AddLink(preset.Name, target)
	}
	if err != nil {
		log.Warn().Err(err).Str("target", target).Msg("Sync failed for target")
		outcome.Status = types.StatusAlert
		outcome.Error = err.Error()
		outcome.Count = len(created)
		return outcome
	}

	outcome.Status = types.StatusSuccess
	outcome.Count = len(created)
	return outcome
}
