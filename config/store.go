package config

import (
	"context"
	"fmt"
	"time"
)

// Keys recognized at the top of the merged tree. Everything under
// "modules" is opaque per-module configuration; "settings" is the
// free-form blob snapshotted per module at init time.
const (
	modulesKey  = "modules"
	settingsKey = "settings"
)

// AppInfo identifies the host application.
type AppInfo struct {
	Name    string `config:"name"`
	Version string `config:"version"`
}

type LoggingConfig struct {
	Level string `config:"level"`
}

type BootstrapConfig struct {
	// Delay is the warm-up pause inserted between the init and bootstrap
	// phases.
	Delay time.Duration `config:"delay"`
}

// Runtime is the host-level slice of the configuration tree. Module
// sections are not bound here; each module binds its own.
type Runtime struct {
	App       AppInfo         `config:"app"`
	Debug     bool            `config:"debug"`
	Logging   LoggingConfig   `config:"logging"`
	Bootstrap BootstrapConfig `config:"bootstrap"`
}

// Store holds the merged configuration tree and resolves named module
// sections for the registry. It is read-only after Load.
type Store struct {
	tree    map[string]any
	runtime Runtime
}

// Load reads every source in order, merges the layers (later sources win)
// and binds the host-level runtime config.
func Load(ctx context.Context, sources ...Source) (*Store, error) {
	tree := map[string]any{}
	for _, src := range sources {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		layer, err := src.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load config from %s: %w", src.Name(), err)
		}
		mergeTrees(tree, layer)
	}

	s := &Store{tree: tree}
	s.runtime.Logging.Level = "info"
	if err := NewBinder().Bind(tree, &s.runtime); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the named module section as an independent copy, or false
// when the tree has no such section.
func (s *Store) Get(name string) (map[string]any, bool) {
	mods, ok := s.tree[modulesKey].(map[string]any)
	if !ok {
		return nil, false
	}
	section, ok := mods[name].(map[string]any)
	if !ok {
		return nil, false
	}
	return copyTree(section), true
}

// Settings returns a copy of the free-form settings blob, nil when absent.
func (s *Store) Settings() map[string]any {
	blob, ok := s.tree[settingsKey].(map[string]any)
	if !ok {
		return nil
	}
	return copyTree(blob)
}

// Runtime returns the bound host-level configuration.
func (s *Store) Runtime() Runtime { return s.runtime }
