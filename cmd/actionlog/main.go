// The actionlog command emits workflow command lines from shell steps.
package main

import (
	"github.com/dsh2dsh/actionlog/internal/cli"
	"github.com/dsh2dsh/actionlog/internal/client"
)

func init() {
	cli.AddSubcommand(client.LogCmd)
	cli.AddSubcommand(client.MaskCmd)
	cli.AddSubcommand(client.SetEnvCmd)
	cli.AddSubcommand(client.SetOutputCmd)
	cli.AddSubcommand(client.AddPathCmd)
	cli.AddSubcommand(client.RunCmd)
	cli.AddSubcommand(client.ConfigcheckCmd)
	cli.AddSubcommand(client.VersionCmd)
}

func main() {
	cli.Run()
}
