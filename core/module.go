package core

import "context"

// Module is a named unit of application functionality driven through the
// lifecycle phases: init, bootstrap, after-bootstrap, shutdown.
type Module interface {
	Name() string
	// Init receives the module's isolated settings snapshot, resolved
	// configuration and dependencies. Called sequentially in dependency
	// order before any module bootstraps.
	Init(opts InitOptions) error
	// OnBootstrap begins any long-running work or servers. All modules
	// bootstrap concurrently once every module has finished Init.
	OnBootstrap(ctx context.Context) error
	// OnShutdown gracefully stops the module.
	OnShutdown(ctx context.Context) error
}

// DependencyAware is implemented by modules that depend on other modules.
type DependencyAware interface {
	// DependentModuleNames declares hard dependencies by module name.
	DependentModuleNames() []string
	// IgnoreMissingDependencies reports whether unresolved dependency
	// names are tolerated. When true, missing entries are simply absent
	// from the dependency list handed to Init.
	IgnoreMissingDependencies() bool
}

// Configurable is implemented by modules that consume a named section of
// the application configuration.
type Configurable interface {
	// ConfigurationName is the key the registry looks up in the
	// configuration store.
	ConfigurationName() string
	// IsConfigurationRequired reports whether a missing section is a
	// bootstrap failure.
	IsConfigurationRequired() bool
}

// PostBootstrapper is implemented by modules that need a hook after the
// whole bootstrap phase has settled.
type PostBootstrapper interface {
	AfterBootstrap(ctx context.Context) error
}

// ConfigStore resolves a module's named configuration section.
type ConfigStore interface {
	Get(name string) (map[string]any, bool)
}

func dependentModuleNames(m Module) []string {
	if d, ok := m.(DependencyAware); ok {
		return d.DependentModuleNames()
	}
	return nil
}
