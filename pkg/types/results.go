package types

// Outcome status values used when a command fans out over several targets.
// A fan-out is "success" when every target succeeded, "alert" when any failed
// and "skipped" when nothing was attempted.
const (
	StatusSuccess = "success"
	StatusAlert   = "alert"
	StatusSkipped = "skipped"
)

// LinkResult holds the result of the 'link' command.
type LinkResult struct {
	Preset  string   `json:"preset" yaml:"preset" toml:"preset"`
	Target  string   `json:"target" yaml:"target" toml:"target"`
	Created []string `json:"created" yaml:"created" toml:"created"`
	Tracked bool     `json:"tracked" yaml:"tracked" toml:"tracked"`
}

// UnlinkResult holds the result of the 'unlink' command. Preset is empty when
// the target was not tracked.
type UnlinkResult struct {
	Target  string   `json:"target" yaml:"target" toml:"target"`
	Removed []string `json:"removed" yaml:"removed" toml:"removed"`
	Preset  string   `json:"preset,omitempty" yaml:"preset,omitempty" toml:"preset,omitempty"`
}

// TargetOutcome reports what happened at one tracked target during a fan-out.
type TargetOutcome struct {
	Preset string `json:"preset" yaml:"preset" toml:"preset"`
	Target string `json:"target" yaml:"target" toml:"target"`
	// Count is links created (sync) or removed (delete --unlink)
	Count  int    `json:"count" yaml:"count" toml:"count"`
	Status string `json:"status" yaml:"status" toml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

// Failed reports whether the target produced an error
func (o TargetOutcome) Failed() bool {
	return o.Status == StatusAlert
}

// CommitResult holds the result of the 'commit' command.
type CommitResult struct {
	Preset   string          `json:"preset" yaml:"preset" toml:"preset"`
	Source   string          `json:"source" yaml:"source" toml:"source"`
	Patterns []string        `json:"patterns,omitempty" yaml:"patterns,omitempty" toml:"patterns,omitempty"`
	Entries  []PresetEntry   `json:"entries" yaml:"entries" toml:"entries"`
	Synced   bool            `json:"synced" yaml:"synced" toml:"synced"`
	Cleaned  int             `json:"cleaned" yaml:"cleaned" toml:"cleaned"`
	Targets  []TargetOutcome `json:"targets" yaml:"targets" toml:"targets"`
}

// Status aggregates the sync outcomes
func (r *CommitResult) Status() string {
	return aggregateStatus(r.Targets)
}

// PresetSummary describes one stored preset in a listing.
type PresetSummary struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Targets []string `json:"targets" yaml:"targets" toml:"targets"`
}

// ListResult holds the result of the 'list' command.
type ListResult struct {
	Presets []PresetSummary `json:"presets" yaml:"presets" toml:"presets"`
}

// ShowResult holds the result of the 'show' command.
type ShowResult struct {
	Preset  *Preset  `json:"preset" yaml:"preset" toml:"preset"`
	Targets []string `json:"targets" yaml:"targets" toml:"targets"`
}

// DeletePlan lists, per preset about to be deleted, the targets it is tracked at.
type DeletePlan struct {
	Presets []PresetSummary `json:"presets" yaml:"presets" toml:"presets"`
}

// HasLinks reports whether any preset in the plan is tracked anywhere
func (p *DeletePlan) HasLinks() bool {
	for _, ps := range p.Presets {
		if len(ps.Targets) > 0 {
			return true
		}
	}
	return false
}

// Names returns the preset names in plan order
func (p *DeletePlan) Names() []string {
	names := make([]string, len(p.Presets))
	for i, ps := range p.Presets {
		names[i] = ps.Name
	}
	return names
}

// DeleteResult holds the result of the 'delete' command.
type DeleteResult struct {
	Deleted  []string        `json:"deleted" yaml:"deleted" toml:"deleted"`
	Unlinked []TargetOutcome `json:"unlinked" yaml:"unlinked" toml:"unlinked"`
}

// Status aggregates the unlink outcomes
func (r *DeleteResult) Status() string {
	return aggregateStatus(r.Unlinked)
}

// aggregateStatus follows these rules:
// - No targets, or every target skipped → "skipped"
// - ANY target failed → "alert"
// - Otherwise → "success"
func aggregateStatus(outcomes []TargetOutcome) string {
	attempted := false
	for _, o := range outcomes {
		if o.Failed() {
			return StatusAlert
		}
		if o.Status != StatusSkipped {
			attempted = true
		}
	}
	if !attempted {
		return StatusSkipped
	}
	return StatusSuccess
}
