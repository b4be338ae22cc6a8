package core

import (
	"github.com/arthur-debert/stamp/pkg/config"
	"github.com/arthur-debert/stamp/pkg/filesystem"
	"github.com/arthur-debert/stamp/pkg/links"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/paths"
	"github.com/arthur-debert/stamp/pkg/preset"
	"github.com/arthur-debert/stamp/pkg/symlink"
	"github.com/arthur-debert/stamp/pkg/types"
)

// Env bundles the components a command needs
type Env struct {
	FS       types.FS
	Paths    paths.Paths
	Config   *config.Config
	Store    *preset.Store
	Registry *links.Registry
	Builder  *symlink.Builder
	// Resolve canonicalizes user-supplied paths
	Resolve paths.Resolver
}

// EnvOptions configures NewEnv
type EnvOptions struct {
	// BaseDir overrides the storage root; empty means STAMP_HOME or XDG
	BaseDir string
	// Overrides are passed to config.Load
	Overrides map[string]interface{}
	// FS defaults to the OS filesystem
	FS types.FS
	// Resolver defaults to paths.Resolve
	Resolver paths.Resolver
}

// NewEnv resolves the base directory, loads settings and builds components
func NewEnv(opts EnvOptions) (*Env, error) {
	p, err := paths.New(opts.BaseDir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(config.Options{
		ConfigFile: p.ConfigFile(),
		Overrides:  opts.Overrides,
	})
	if err != nil {
		return nil, err
	}

	return NewEnvWith(p, cfg, opts.FS, opts.Resolver), nil
}

// NewEnvWith builds an Env from already resolved paths and config
func NewEnvWith(p paths.Paths, cfg *config.Config, fs types.FS, resolve paths.Resolver) *Env {
	if fs == nil {
		fs = filesystem.NewOS()
	}
	if resolve == nil {
		resolve = paths.Resolve
	}

	registry := links.New(fs, p,
		links.WithLock(cfg.Registry.Lock),
		links.WithResolver(resolve),
	)

	log := logging.GetLogger("core.env")
	log.Debug().
		Str("base_dir", p.BaseDir()).
		Bool("rollback", cfg.Link.Rollback).
		Bool("registry_lock", cfg.Registry.Lock).
		Msg("Environment ready")

	return &Env{
		FS:       fs,
		Paths:    p,
		Config:   cfg,
		Store:    preset.New(fs, p, registry, preset.WithResolver(resolve)),
		Registry: registry,
		Builder:  symlink.NewBuilder(fs, symlink.WithRollback(cfg.Link.Rollback)),
		Resolve:  resolve,
	}
}
