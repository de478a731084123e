package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dsh2dsh/actionlog/internal/cli"
)

// The one-shot commands share a shape: build the handler from config and
// environment, emit exactly one line, close the output.
func oneshot(s *cli.Subcommand,
	fn func(h oneshotHandler) error,
) error {
	h, closeFn, err := newHandler(s)
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()
	return fn(h)
}

type oneshotHandler interface {
	AddMask(value string) error
	SetEnv(name, value string) error
	SetOutput(name, value string) error
	AddPath(dir string) error
}

var MaskCmd = &cli.Subcommand{
	Use:   "mask VALUE",
	Short: "tell the runner to redact VALUE in all later output",

	SetupCobra: func(cmd *cobra.Command) {
		cmd.Args = cobra.ExactArgs(1)
	},

	Run: func(_ context.Context, subcommand *cli.Subcommand,
		args []string,
	) error {
		return oneshot(subcommand, func(h oneshotHandler) error {
			return h.AddMask(args[0])
		})
	},
}

var SetEnvCmd = &cli.Subcommand{
	Use:   "set-env NAME VALUE",
	Short: "export an environment variable to the following steps",

	SetupCobra: func(cmd *cobra.Command) {
		cmd.Args = cobra.ExactArgs(2)
	},

	Run: func(_ context.Context, subcommand *cli.Subcommand,
		args []string,
	) error {
		return oneshot(subcommand, func(h oneshotHandler) error {
			return h.SetEnv(args[0], args[1])
		})
	},
}

var SetOutputCmd = &cli.Subcommand{
	Use:   "set-output NAME VALUE",
	Short: "publish VALUE as the step output NAME",

	SetupCobra: func(cmd *cobra.Command) {
		cmd.Args = cobra.ExactArgs(2)
	},

	Run: func(_ context.Context, subcommand *cli.Subcommand,
		args []string,
	) error {
		return oneshot(subcommand, func(h oneshotHandler) error {
			return h.SetOutput(args[0], args[1])
		})
	},
}

var AddPathCmd = &cli.Subcommand{
	Use:   "add-path DIR",
	Short: "prepend DIR to the PATH of the following steps",

	SetupCobra: func(cmd *cobra.Command) {
		cmd.Args = cobra.ExactArgs(1)
	},

	Run: func(_ context.Context, subcommand *cli.Subcommand,
		args []string,
	) error {
		return oneshot(subcommand, func(h oneshotHandler) error {
			return h.AddPath(args[0])
		})
	},
}
