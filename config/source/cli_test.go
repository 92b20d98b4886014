package source

import (
	"context"
	"testing"
)

func TestCLISource_Name(t *testing.T) {
	src := &CLISource{}
	if got := src.Name(); got != "cli" {
		t.Errorf("Name() = %v, want cli", got)
	}
}

func TestCLISource_Load(t *testing.T) {
	tests := []struct {
		name string
		args []string
		path []string
		want string
	}{
		{
			name: "equals form",
			args: []string{"--modules.web.addr=:9090"},
			path: []string{"modules", "web", "addr"},
			want: ":9090",
		},
		{
			name: "space form",
			args: []string{"--debug", "true"},
			path: []string{"debug"},
			want: "true",
		},
		{
			name: "top level",
			args: []string{"--logging.level=warn"},
			path: []string{"logging", "level"},
			want: "warn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &CLISource{Args: tt.args}
			got, err := src.Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			current := got
			for i, seg := range tt.path {
				if i == len(tt.path)-1 {
					if current[seg] != tt.want {
						t.Errorf("%v = %v, want %v", tt.path, current[seg], tt.want)
					}
					return
				}
				next, ok := current[seg].(map[string]any)
				if !ok {
					t.Fatalf("missing %v in %v", tt.path[:i+1], got)
				}
				current = next
			}
		})
	}
}

func TestCLISource_Load_IgnoresNonFlags(t *testing.T) {
	src := &CLISource{Args: []string{"serve", "--debug=true", "positional"}}
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 || got["debug"] != "true" {
		t.Errorf("Load() = %v, want only debug", got)
	}
}

func TestCLISource_Load_EmptyValueSkipped(t *testing.T) {
	src := &CLISource{Args: []string{"--modules.web.addr="}}
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() = %v, want empty", got)
	}
}
