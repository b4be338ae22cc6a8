// Package preset implements the preset store: named snapshots of a source
// directory's relative structure, persisted one TOML document per preset under
// the presets directory of the base dir.
package preset
