package core

import (
	"errors"
	"fmt"
)

// Registration and bootstrap failures. All are terminal for the call that
// raised them, not for the process. Match with errors.Is.
var (
	// ErrModuleWithoutName is returned when a module with an empty name
	// is registered.
	ErrModuleWithoutName = errors.New("module has no name")

	// ErrModuleAlreadyRegistered is returned on a name collision at
	// registration.
	ErrModuleAlreadyRegistered = errors.New("module already registered")

	// ErrNoModulesLoaded is returned when bootstrap is attempted with
	// zero registered modules.
	ErrNoModulesLoaded = errors.New("no modules loaded")

	// ErrModuleProblems is returned when the dependency graph has a
	// cycle or an unresolved reference during ordering.
	ErrModuleProblems = errors.New("module dependency problems")

	// ErrModuleConfigurationMissing is returned when a module's required
	// configuration section is not found.
	ErrModuleConfigurationMissing = errors.New("module configuration missing")

	// ErrDependenciesMissing is returned when a non-ignorable declared
	// dependency cannot be resolved to a registered module.
	ErrDependenciesMissing = errors.New("module dependencies missing")
)

func errAlreadyRegistered(name string) error {
	return fmt.Errorf("%w: %s", ErrModuleAlreadyRegistered, name)
}

func errModuleProblems(cause error) error {
	return fmt.Errorf("%w: %v", ErrModuleProblems, cause)
}

func errConfigurationMissing(module, section string) error {
	return fmt.Errorf("%w: module %s requires configuration %q", ErrModuleConfigurationMissing, module, section)
}

func errDependenciesMissing(module string, missing []string) error {
	return fmt.Errorf("%w: module %s declares unresolved dependencies %v", ErrDependenciesMissing, module, missing)
}
