package client

import (
	"context"
	"fmt"

	"github.com/dsh2dsh/actionlog/internal/cli"
	"github.com/dsh2dsh/actionlog/internal/version"
)

var VersionCmd = &cli.Subcommand{
	Use:             "version",
	Short:           "print version of the actionlog binary",
	NoRequireConfig: true,

	Run: func(_ context.Context, _ *cli.Subcommand, _ []string) error {
		fmt.Println(version.New().String())
		return nil
	},
}
