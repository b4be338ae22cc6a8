// Package config loads stamp settings.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user's config.toml in the base directory, when present
//  3. STAMP_<SECTION>_<KEY> environment variables
//  4. explicit overrides, usually from command-line flags
//
// The base directory layout itself is not configurable here; see package paths.
package config
