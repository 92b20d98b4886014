package source

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileSource loads YAML configuration from a directory: a base
// application.yaml (or .yml) plus an optional profile overlay
// application.<profile>.yaml whose values win over the base.
//
//	configs/
//	  application.yaml
//	  application.dev.yaml
//	  application.prod.yaml
type FileSource struct {
	// BasePath is the directory holding the configuration files. The
	// base file must exist there.
	BasePath string

	// Profile selects an optional overlay. A missing overlay file is
	// silently ignored.
	Profile string
}

func (f *FileSource) Name() string { return "file" }

// Load reads the base file and, when a profile is set, deep-merges the
// overlay on top. Returns os.ErrNotExist when the base file is absent.
func (f *FileSource) Load(ctx context.Context) (map[string]any, error) {
	base := findYAML(f.BasePath, "application")
	if base == "" {
		return nil, os.ErrNotExist
	}

	tree := map[string]any{}
	if err := readYAML(base, tree); err != nil {
		return nil, err
	}

	if f.Profile != "" {
		if overlay := findYAML(f.BasePath, "application."+f.Profile); overlay != "" {
			layer := map[string]any{}
			if err := readYAML(overlay, layer); err != nil {
				return nil, err
			}
			deepMerge(tree, layer)
		}
	}
	return tree, nil
}

func findYAML(dir, stem string) string {
	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(dir, stem+ext)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func readYAML(path string, into map[string]any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, &into)
}

func deepMerge(dst, src map[string]any) {
	for k, v := range src {
		if sv, ok := v.(map[string]any); ok {
			if dv, ok := dst[k].(map[string]any); ok {
				deepMerge(dv, sv)
				continue
			}
		}
		dst[k] = v
	}
}
