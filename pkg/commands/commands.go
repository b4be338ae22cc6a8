// Package commands provides the command implementations for stamp.
//
// Each command lives in its own subdirectory and returns a result struct from
// pkg/types; rendering and confirmation prompts belong to the CLI.
//   - link/          - LinkPreset
//   - unlink/        - UnlinkTarget
//   - commit/        - CommitPreset, with optional sync to tracked targets
//   - list/          - ListPresets
//   - show/          - ShowPreset
//   - deletepresets/ - PlanDelete and DeletePresets
//
// This file re-exports the command functions so callers need one import.
package commands

import (
	"github.com/arthur-debert/stamp/pkg/commands/commit"
	"github.com/arthur-debert/stamp/pkg/commands/deletepresets"
	"github.com/arthur-debert/stamp/pkg/commands/link"
	"github.com/arthur-debert/stamp/pkg/commands/list"
	"github.com/arthur-debert/stamp/pkg/commands/show"
	"github.com/arthur-debert/stamp/pkg/commands/unlink"
	"github.com/arthur-debert/stamp/pkg/types"
)

// LinkPreset materializes a preset at a target directory.
type LinkOptions = link.LinkOptions

func LinkPreset(opts LinkOptions) (*types.LinkResult, error) {
	return link.LinkPreset(opts)
}

// TargetNeedsConfirmation reports whether linking into target should be confirmed.
var TargetNeedsConfirmation = link.TargetNeedsConfirmation

// UnlinkTarget removes symlinks beneath a target and stops tracking it.
type UnlinkOptions = unlink.UnlinkOptions

func UnlinkTarget(opts UnlinkOptions) (*types.UnlinkResult, error) {
	return unlink.UnlinkTarget(opts)
}

// CommitPreset snapshots a directory into a preset.
type CommitOptions = commit.CommitOptions

func CommitPreset(opts CommitOptions) (*types.CommitResult, error) {
	return commit.CommitPreset(opts)
}

// ListPresets lists stored presets with their tracked targets.
type ListOptions = list.ListOptions

func ListPresets(opts ListOptions) (*types.ListResult, error) {
	return list.ListPresets(opts)
}

// ShowPreset loads one preset with its tracked targets.
type ShowOptions = show.ShowOptions

func ShowPreset(opts ShowOptions) (*types.ShowResult, error) {
	return show.ShowPreset(opts)
}

// PlanDelete validates preset names and collects their tracked targets.
type PlanDeleteOptions = deletepresets.PlanOptions

func PlanDelete(opts PlanDeleteOptions) (*types.DeletePlan, error) {
	return deletepresets.PlanDelete(opts)
}

// DeletePresets deletes presets, optionally unlinking their targets first.
type DeleteOptions = deletepresets.DeleteOptions

func DeletePresets(opts DeleteOptions) (*types.DeleteResult, error) {
	return deletepresets.DeletePresets(opts)
}
