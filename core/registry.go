package core

import (
	"log/slog"
	"time"
)

// Registry owns the module set. It validates registrations, resolves the
// dependency order and drives every module through the lifecycle phases.
type Registry struct {
	modules   []Module
	container Container
	logger    *slog.Logger

	store          ConfigStore
	settings       Settings
	debug          bool
	host           any
	bootstrapDelay time.Duration
}

// Option customizes a Registry at construction time.
type Option func(*Registry)

// WithConfigStore sets the collaborator that resolves named module
// configuration sections.
func WithConfigStore(s ConfigStore) Option {
	return func(r *Registry) { r.store = s }
}

// WithSettings sets the process-wide settings. Each module receives its own
// deep copy at init time.
func WithSettings(s Settings) Option {
	return func(r *Registry) { r.settings = s }
}

// WithDebug sets the debug-mode flag passed to every module.
func WithDebug(debug bool) Option {
	return func(r *Registry) { r.debug = debug }
}

// WithHost sets the opaque host handle passed through to every module's
// Init.
func WithHost(h any) Option {
	return func(r *Registry) { r.host = h }
}

// WithBootstrapDelay inserts a warm-up pause between the init and bootstrap
// phases. Zero or negative means no delay.
func WithBootstrapDelay(d time.Duration) Option {
	return func(r *Registry) { r.bootstrapDelay = d }
}

func NewRegistry(logger *slog.Logger, opts ...Option) *Registry {
	r := &Registry{
		container: NewContainer(),
		logger:    logger,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Container returns the shared service container handed to every module.
func (r *Registry) Container() Container { return r.container }

// RegisterModule appends m to the module set. It fails without mutating the
// set when m has an empty name or the name is already taken.
func (r *Registry) RegisterModule(m Module) error {
	if m.Name() == "" {
		return ErrModuleWithoutName
	}
	if _, ok := r.FindModuleByName(m.Name()); ok {
		return errAlreadyRegistered(m.Name())
	}
	r.modules = append(r.modules, m)
	return nil
}

// RegisterModules registers each module in sequence. The first failure
// aborts the remaining registrations; modules registered before the failure
// stay registered.
func (r *Registry) RegisterModules(mods ...Module) error {
	for _, m := range mods {
		if err := r.RegisterModule(m); err != nil {
			return err
		}
	}
	return nil
}

// FindModuleByName returns the registered module with the given name.
func (r *Registry) FindModuleByName(name string) (Module, bool) {
	for _, m := range r.modules {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// FindModule returns the first registered module of concrete type T.
func FindModule[T Module](r *Registry) (T, bool) {
	for _, m := range r.modules {
		if t, ok := m.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Modules returns the registered modules in registration order.
func (r *Registry) Modules() []Module {
	out := make([]Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// initOptionsFor builds the per-module init value: an isolated settings
// snapshot plus the module's resolved configuration and dependencies.
func (r *Registry) initOptionsFor(m Module) (InitOptions, error) {
	opts := InitOptions{
		Settings:  r.settings.Clone(),
		Debug:     r.debug,
		Container: r.container,
		Host:      r.host,
	}

	cfg, err := r.resolveConfiguration(m)
	if err != nil {
		return InitOptions{}, err
	}
	opts.Config = cfg

	deps, err := r.resolveDependencies(m)
	if err != nil {
		return InitOptions{}, err
	}
	opts.Dependencies = deps

	return opts, nil
}

func (r *Registry) resolveConfiguration(m Module) (map[string]any, error) {
	c, ok := m.(Configurable)
	if !ok || c.ConfigurationName() == "" {
		return nil, nil
	}
	if r.store != nil {
		if section, found := r.store.Get(c.ConfigurationName()); found {
			return section, nil
		}
	}
	if c.IsConfigurationRequired() {
		return nil, errConfigurationMissing(m.Name(), c.ConfigurationName())
	}
	return nil, nil
}

func (r *Registry) resolveDependencies(m Module) ([]Module, error) {
	d, ok := m.(DependencyAware)
	if !ok {
		return nil, nil
	}
	names := d.DependentModuleNames()
	if len(names) == 0 {
		return nil, nil
	}

	deps := make([]Module, 0, len(names))
	var missing []string
	for _, name := range names {
		dep, found := r.FindModuleByName(name)
		if !found {
			missing = append(missing, name)
			continue
		}
		deps = append(deps, dep)
	}
	if len(missing) > 0 && !d.IgnoreMissingDependencies() {
		return nil, errDependenciesMissing(m.Name(), missing)
	}
	return deps, nil
}
