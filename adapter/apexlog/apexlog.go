// Package apexlog emits workflow command lines for log events of the
// github.com/apex/log facade.
package apexlog

import (
	"context"
	"log/slog"

	"github.com/apex/log"

	"github.com/dsh2dsh/actionlog"
)

// Handler delivers apex log entries through an actionlog handler. Apex
// entries carry no call site, so the file and line parameters render empty.
type Handler struct {
	h *actionlog.Handler
}

var _ log.Handler = (*Handler)(nil)

func New(h *actionlog.Handler) *Handler { return &Handler{h: h} }

func (self *Handler) HandleLog(e *log.Entry) error {
	ctx := context.Background()
	level := slogLevel(e.Level)
	if !self.h.Enabled(ctx, level) {
		return nil
	}

	r := slog.NewRecord(e.Timestamp, level, e.Message, 0)
	for _, name := range e.Fields.Names() {
		r.AddAttrs(slog.Any(name, e.Fields.Get(name)))
	}
	return self.h.Handle(ctx, r)
}

func slogLevel(l log.Level) slog.Level {
	switch l {
	case log.DebugLevel:
		return actionlog.LevelDebug
	case log.InfoLevel:
		return actionlog.LevelInfo
	case log.WarnLevel:
		return actionlog.LevelWarning
	case log.ErrorLevel:
		return actionlog.LevelError
	case log.FatalLevel:
		return actionlog.LevelCritical
	}
	return actionlog.LevelInfo
}
