package source

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// CLISource loads configuration from command-line flags. Flag names use
// dot notation for nesting and values stay strings until binding:
//
//	--modules.web.addr=:9090 --debug=true
//	  -> {modules: {web: {addr: ":9090"}}, debug: "true"}
//
// Both --flag=value and --flag value forms are accepted. Flags the process
// does not recognize are simply treated as configuration; non-flag
// arguments are ignored. CLISource should come last in the source chain so
// flags override files and the environment.
type CLISource struct {
	// Args overrides os.Args[1:], mainly for tests. Nil means the real
	// process arguments.
	Args []string
}

func (c *CLISource) Name() string { return "cli" }

func (c *CLISource) Load(ctx context.Context) (map[string]any, error) {
	args := c.Args
	if args == nil {
		args = os.Args[1:]
	}
	return parseFlags(args), nil
}

// parseFlags registers every flag-shaped argument as a string flag, then
// parses. pflag needs flags declared before Parse, hence the two passes.
func parseFlags(args []string) map[string]any {
	tree := make(map[string]any)
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	seen := make(map[string]bool)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		name := flagName(arg)
		if name == "" {
			continue
		}
		if !seen[name] {
			fs.String(name, "", "config value for "+name)
			seen[name] = true
		}
		// --flag value form consumes the next argument.
		if !strings.Contains(arg, "=") && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
		}
	}

	_ = fs.Parse(args)

	fs.VisitAll(func(f *pflag.Flag) {
		if !f.Changed || f.Value.String() == "" {
			return
		}
		setPath(tree, strings.Split(f.Name, "."), f.Value.String())
	})
	return tree
}

func flagName(arg string) string {
	name := strings.TrimLeft(arg, "-")
	if idx := strings.Index(name, "="); idx != -1 {
		name = name[:idx]
	}
	return name
}
