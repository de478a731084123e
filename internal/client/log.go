package client

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dsh2dsh/actionlog"
	"github.com/dsh2dsh/actionlog/internal/cli"
)

var logArgs struct {
	level string
	meta  []string
}

var LogCmd = &cli.Subcommand{
	Use:   "log [--level LEVEL] [--meta key=value]... MESSAGE...",
	Short: "emit a log annotation for the runner",
	Long: `Emit MESSAGE as a workflow command annotation.

The severity decides which annotation the runner shows: error and critical
become error annotations, warning a warning annotation, everything below a
debug annotation. Messages below the configured threshold emit nothing.
`,

	SetupFlags: func(f *pflag.FlagSet) {
		f.StringVar(&logArgs.level, "level", "info",
			"severity (trace|debug|info|notice|warning|error|critical)")
		f.StringArrayVar(&logArgs.meta, "meta", nil,
			"extra key=value parameter, repeatable")
	},

	SetupCobra: func(cmd *cobra.Command) {
		cmd.Args = cobra.MinimumNArgs(1)
	},

	Run: func(ctx context.Context, subcommand *cli.Subcommand,
		args []string,
	) error {
		h, closeFn, err := newHandler(subcommand)
		if err != nil {
			return err
		}
		defer func() { _ = closeFn() }()
		return runLogCmd(ctx, h, args)
	},
}

func runLogCmd(ctx context.Context, h *actionlog.Handler, args []string,
) error {
	level, err := actionlog.ParseLevel(logArgs.level)
	if err != nil {
		return err
	}

	attrs, err := metaAttrs(logArgs.meta)
	if err != nil {
		return err
	}

	if !h.Enabled(ctx, level) {
		return nil
	}

	var pcs [1]uintptr
	runtime.Callers(1, pcs[:])
	r := slog.NewRecord(time.Now(), level, strings.Join(args, " "), pcs[0])
	r.AddAttrs(attrs...)
	return h.Handle(ctx, r)
}
