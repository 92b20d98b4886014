package core

// Settings is the process-wide settings blob handed to every module. Each
// module receives its own deep copy so no settings are aliased across
// modules.
type Settings map[string]any

// Clone returns a deep copy of the settings. Nested maps and slices are
// copied recursively; all other values are copied as-is.
func (s Settings) Clone() Settings {
	if s == nil {
		return nil
	}
	return Settings(cloneTree(map[string]any(s)))
}

func cloneTree(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneTree(t)
	case []any:
		cp := make([]any, len(t))
		for i, e := range t {
			cp[i] = cloneValue(e)
		}
		return cp
	default:
		return v
	}
}

// InitOptions carries everything a module may need during Init. A fresh
// value is built per module; Settings is an isolated snapshot owned by the
// receiving module alone.
type InitOptions struct {
	// Settings is the module's private copy of the process settings.
	Settings Settings
	// Debug mirrors the host's debug-mode flag.
	Debug bool
	// Container is the shared service container. Read-only from the
	// module's perspective once handed over.
	Container Container
	// Config is the module's resolved configuration section, nil when the
	// module declares none or an optional section was not found.
	Config map[string]any
	// Dependencies holds the resolved dependency modules in declaration
	// order. Missing, ignored dependencies are absent, so the list may be
	// shorter than the declared names. Nil when none were declared.
	Dependencies []Module
	// Host is an opaque handle supplied by the embedding process, passed
	// through unmodified.
	Host any
}
