package deletepresets

import (
	"strings"

	"github.com/arthur-debert/stamp/pkg/core"
	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/filesystem"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/types"
)

// PlanOptions defines the options for the PlanDelete command.
type PlanOptions struct {
	Env   *core.Env
	Names []string
}

// PlanDelete checks that every named preset exists and collects the targets
// each is tracked at, so the caller can warn and confirm before deleting.
// All missing names are reported together.
func PlanDelete(opts PlanOptions) (*types.DeletePlan, error) {
	log := logging.GetLogger("commands.delete")
	log.Debug().Str("command", "PlanDelete").Strs("presets", opts.Names).Msg("Executing command")

	if len(opts.Names) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no presets given")
	}

	env := opts.Env
	var missing []string
	for _, name := range opts.Names {
		if !env.Store.Exists(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Newf(errors.ErrNotFound, "preset(s) not found: %s", strings.Join(missing, ", ")).
			WithDetail("presets", missing)
	}

	registry, err := env.Registry.Load()
	if err != nil {
		return nil, err
	}

	plan := &types.DeletePlan{Presets: make([]types.PresetSummary, len(opts.Names))}
	for i, name := range opts.Names {
		plan.Presets[i] = types.PresetSummary{Name: name, Targets: registry.TargetsFor(name)}
	}
	return plan, nil
}

// DeleteOptions defines the options for the DeletePresets command.
type DeleteOptions struct {
	Env  *core.Env
	Plan *types.DeletePlan
	// Unlink removes symlinks at every tracked target before deleting.
	Unlink bool
}

// DeletePresets executes a plan. With Unlink, each existing tracked target is
// cleared of symlinks (missing targets are skipped and failures recorded, not
// fatal) and the preset's registry records are dropped. Without it, the
// records are dropped by the store and the symlinks stay where they are.
func DeletePresets(opts DeleteOptions) (*types.DeleteResult, error) {
	log := logging.GetLogger("commands.delete")
	log.Debug().Str("command", "DeletePresets").Bool("unlink", opts.Unlink).Msg("Executing command")

	env := opts.Env
	result := &types.DeleteResult{Deleted: []string{}, Unlinked: []types.TargetOutcome{}}

	if opts.Unlink {
		for _, ps := range opts.Plan.Presets {
			for _, target := range ps.Targets {
				result.Unlinked = append(result.Unlinked, unlinkTarget(env, ps.Name, target))
			}
			if _, err := env.Registry.RemoveLinksForPreset(ps.Name); err != nil {
				return result, err
			}
		}
	}

	for _, name := range opts.Plan.Names() {
		if err := env.Store.Delete(name, !opts.Unlink); err != nil {
			return result, errors.Wrapf(err, errors.GetErrorCode(err), "failed to delete preset '%s'", name).
				WithDetail("preset", name)
		}
		result.Deleted = append(result.Deleted, name)
	}

	log.Info().
		Str("command", "DeletePresets").
		Int("deleted", len(result.Deleted)).
		Str("status", result.Status()).
		Msg("Command finished")
	return result, nil
}

func unlinkTarget(env *core.Env, preset, target string) types.TargetOutcome {
	outcome := types.TargetOutcome{Preset: preset, Target: target}

	if !filesystem.Exists(env.FS, target) {
		outcome.Status = types.StatusSkipped
		outcome.Error = "path not found"
		return outcome
	}

	removed, err := env.Builder.Unlink(target)
	outcome.Count = len(removed)
	if err != nil {
		log := logging.GetLogger("commands.delete")
		log.Warn().Err(err).Str("target", target).Msg("Unlink failed")
		outcome.Status = types.StatusAlert
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Status = types.StatusSuccess
	return outcome
}
