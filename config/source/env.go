package source

import (
	"context"
	"os"
	"strings"
)

// EnvPrefix filters which environment variables are loaded.
const EnvPrefix = "STAGEHAND_"

// EnvSource loads configuration from environment variables. Variables must
// carry the STAGEHAND_ prefix; the remainder is lowercased and split on
// underscores into a nested path:
//
//	STAGEHAND_MODULES_WEB_ADDR=:9090  ->  {modules: {web: {addr: ":9090"}}}
//	STAGEHAND_DEBUG=true              ->  {debug: "true"}
//
// Values stay strings; type conversion happens during binding. When a leaf
// already occupies a path, deeper entries for that path are skipped rather
// than overwriting it.
type EnvSource struct{}

func (e *EnvSource) Name() string { return "env" }

func (e *EnvSource) Load(ctx context.Context) (map[string]any, error) {
	tree := make(map[string]any)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		path := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		segments := strings.Split(path, "_")
		setPath(tree, segments, value)
	}
	return tree, nil
}

func setPath(m map[string]any, segments []string, value string) {
	current := m
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if i == len(segments)-1 {
			current[seg] = value
			return
		}
		next, exists := current[seg]
		if !exists {
			child := make(map[string]any)
			current[seg] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return
		}
		current = child
	}
}
