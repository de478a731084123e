package client

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/dsh2dsh/actionlog"
	"github.com/dsh2dsh/actionlog/internal/cli"
)

var RunCmd = &cli.Subcommand{
	Use:   "run [--] PROG [ARG]...",
	Short: "run a program with command processing suspended",
	Long: `Run PROG with workflow command processing suspended.

A stop-commands marker goes out before PROG starts and the matching resume
marker after it exits, so output PROG does not control cannot smuggle
commands into the job. The resume marker goes out even when PROG fails.
`,

	SetupCobra: func(cmd *cobra.Command) {
		cmd.Args = cobra.MinimumNArgs(1)
		// Everything after the program name belongs to the program.
		cmd.Flags().SetInterspersed(false)
	},

	Run: func(ctx context.Context, subcommand *cli.Subcommand,
		args []string,
	) error {
		h, closeFn, err := newHandler(subcommand)
		if err != nil {
			return err
		}
		defer func() { _ = closeFn() }()
		return runRunCmd(ctx, h, args)
	},
}

func runRunCmd(ctx context.Context, h *actionlog.Handler, args []string,
) error {
	return h.WithoutCommands(func() error {
		cmd := exec.CommandContext(ctx, args[0], args[1:]...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("run %q: %w", args[0], err)
		}
		return nil
	})
}
