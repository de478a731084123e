package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/dsh2dsh/actionlog/internal/cli"
)

var configcheckArgs struct {
	format string
}

var ConfigcheckCmd = &cli.Subcommand{
	Use:   "configcheck",
	Short: "check if config can be parsed without errors",

	SetupFlags: func(f *pflag.FlagSet) {
		f.StringVar(&configcheckArgs.format, "format", "",
			"dump parsed config object [yaml|json]")
	},

	Run: func(_ context.Context, subcommand *cli.Subcommand, _ []string,
	) error {
		return checkConfig(subcommand)
	},
}

func checkConfig(subcommand *cli.Subcommand) error {
	c := subcommand.Config()
	// Parsing already validated the file. What remains is building the
	// handler the way the emitting subcommands do.
	if _, err := c.Handler(os.Stdout); err != nil {
		return fmt.Errorf("cannot build handler from config: %w", err)
	}

	switch configcheckArgs.format {
	case "":
	case "json":
		if err := json.NewEncoder(os.Stdout).Encode(c); err != nil {
			return fmt.Errorf("failed encode to json: %w", err)
		}
	case "yaml":
		if err := yaml.NewEncoder(os.Stdout).Encode(c); err != nil {
			return fmt.Errorf("failed encode to yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported --format %q", configcheckArgs.format)
	}
	return nil
}
