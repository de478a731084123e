package client

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dsh2dsh/actionlog"
	"github.com/dsh2dsh/actionlog/internal/cli"
)

// newHandler builds the emitting handler from the subcommand's config and
// returns it together with a close function for the output stream.
func newHandler(s *cli.Subcommand) (*actionlog.Handler, func() error, error) {
	cfg := s.Config()
	w, closeFn, err := cfg.OpenOutput()
	if err != nil {
		return nil, nil, err
	}

	h, err := cfg.Handler(w)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return h, closeFn, nil
}

// metaAttrs splits repeated "key=value" flag values into attrs.
func metaAttrs(pairs []string) ([]slog.Attr, error) {
	attrs := make([]slog.Attr, 0, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("meta %q: want key=value", p)
		}
		attrs = append(attrs, slog.String(k, v))
	}
	return attrs, nil
}
