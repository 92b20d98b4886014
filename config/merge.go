package config

// mergeTrees merges src into dst recursively. Nested maps merge key by key;
// anything else in src replaces the dst value.
func mergeTrees(dst, src map[string]any) {
	for k, v := range src {
		if sv, ok := v.(map[string]any); ok {
			if dv, ok := dst[k].(map[string]any); ok {
				mergeTrees(dv, sv)
				continue
			}
		}
		dst[k] = v
	}
}

// copyTree returns a deep copy of m so callers can hand out sections
// without aliasing the store's own tree.
func copyTree(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyTree(t)
	case []any:
		cp := make([]any, len(t))
		for i, e := range t {
			cp[i] = copyValue(e)
		}
		return cp
	default:
		return v
	}
}
