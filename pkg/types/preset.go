package types

// PresetEntry is one file or directory captured under a preset's source root.
// Path is relative to the source and always uses forward slashes.
type PresetEntry struct {
	Path  string `toml:"path" json:"path" yaml:"path"`
	IsDir bool   `toml:"is_dir" json:"is_dir" yaml:"is_dir"`
}

// Preset is a named snapshot of a directory's structure. Name is the identity
// key; Source is the canonical absolute path captured at commit time.
type Preset struct {
	Name    string        `toml:"name" json:"name" yaml:"name"`
	Source  string        `toml:"source" json:"source" yaml:"source"`
	Entries []PresetEntry `toml:"entries" json:"entries" yaml:"entries"`
}

// FileCount returns the number of non-directory entries.
func (p *Preset) FileCount() int {
	n := 0
	for _, e := range p.Entries {
		if !e.IsDir {
			n++
		}
	}
	return n
}

// LinkRecord records that Preset was materialized at Target with tracking.
// LinkedAt is an RFC3339 timestamp.
type LinkRecord struct {
	Preset   string `toml:"preset" json:"preset" yaml:"preset"`
	Target   string `toml:"target" json:"target" yaml:"target"`
	LinkedAt string `toml:"linked_at" json:"linked_at" yaml:"linked_at"`
}

// LinksRegistry is the single document holding every LinkRecord.
// (preset, target) pairs are kept unique by upsert logic only.
type LinksRegistry struct {
	Links []LinkRecord `toml:"links" json:"links" yaml:"links"`
}

// TargetsFor returns the targets recorded for preset, in registry order.
func (r *LinksRegistry) TargetsFor(preset string) []string {
	targets := []string{}
	for _, l := range r.Links {
		if l.Preset == preset {
			targets = append(targets, l.Target)
		}
	}
	return targets
}

// Find returns the record for the (preset, target) pair, or nil.
func (r *LinksRegistry) Find(preset, target string) *LinkRecord {
	for i := range r.Links {
		if r.Links[i].Preset == preset && r.Links[i].Target == target {
			return &r.Links[i]
		}
	}
	return nil
}

// RemoveWhere drops every record for which match returns true and reports how
// many were dropped. Order of the remaining records is preserved.
func (r *LinksRegistry) RemoveWhere(match func(LinkRecord) bool) int {
	kept := r.Links[:0]
	for _, l := range r.Links {
		if !match(l) {
			kept = append(kept, l)
		}
	}
	removed := len(r.Links) - len(kept)
	r.Links = kept
	return removed
}
