package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeTrees(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dst  map[string]any
		src  map[string]any
		want map[string]any
	}{
		{
			name: "empty src leaves dst unchanged",
			dst:  map[string]any{"k": "v"},
			src:  map[string]any{},
			want: map[string]any{"k": "v"},
		},
		{
			name: "src overrides scalar",
			dst:  map[string]any{"k": "old"},
			src:  map[string]any{"k": "new"},
			want: map[string]any{"k": "new"},
		},
		{
			name: "nested maps merge key by key",
			dst: map[string]any{
				"modules": map[string]any{
					"web": map[string]any{"addr": ":8080", "readTimeout": "5s"},
				},
			},
			src: map[string]any{
				"modules": map[string]any{
					"web": map[string]any{"addr": ":9090"},
				},
			},
			want: map[string]any{
				"modules": map[string]any{
					"web": map[string]any{"addr": ":9090", "readTimeout": "5s"},
				},
			},
		},
		{
			name: "map replaces scalar",
			dst:  map[string]any{"k": "scalar"},
			src:  map[string]any{"k": map[string]any{"nested": 1}},
			want: map[string]any{"k": map[string]any{"nested": 1}},
		},
		{
			name: "scalar replaces map",
			dst:  map[string]any{"k": map[string]any{"nested": 1}},
			src:  map[string]any{"k": "scalar"},
			want: map[string]any{"k": "scalar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mergeTrees(tt.dst, tt.src)
			assert.Equal(t, tt.want, tt.dst)
		})
	}
}

func TestCopyTree_Isolation(t *testing.T) {
	t.Parallel()

	original := map[string]any{
		"nested": map[string]any{"k": "v"},
		"list":   []any{1, 2, 3},
	}

	cp := copyTree(original)
	cp["nested"].(map[string]any)["k"] = "mutated"
	cp["list"].([]any)[0] = 99

	assert.Equal(t, "v", original["nested"].(map[string]any)["k"])
	assert.Equal(t, 1, original["list"].([]any)[0])
}
