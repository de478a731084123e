// Package logrushook emits workflow command lines for log events of
// github.com/sirupsen/logrus.
package logrushook

import (
	"context"
	"log/slog"

	"github.com/sirupsen/logrus"

	"github.com/dsh2dsh/actionlog"
)

// Hook mirrors logrus entries to an actionlog handler. Install it with
// AddHook. With SetReportCaller enabled on the logrus logger the annotations
// carry the file and line of the logging call, without it they render empty.
type Hook struct {
	h      *actionlog.Handler
	levels []logrus.Level
}

var _ logrus.Hook = (*Hook)(nil)

func New(h *actionlog.Handler) *Hook {
	return &Hook{h: h, levels: logrus.AllLevels}
}

// WithLevels narrows the hook to fire on levels only.
func (self *Hook) WithLevels(levels ...logrus.Level) *Hook {
	self.levels = levels
	return self
}

func (self *Hook) Levels() []logrus.Level { return self.levels }

func (self *Hook) Fire(e *logrus.Entry) error {
	ctx := context.Background()
	level := slogLevel(e.Level)
	if !self.h.Enabled(ctx, level) {
		return nil
	}

	var pc uintptr
	if e.Caller != nil {
		pc = e.Caller.PC
	}
	r := slog.NewRecord(e.Time, level, e.Message, pc)
	for k, v := range e.Data {
		r.AddAttrs(slog.Any(k, v))
	}
	return self.h.Handle(ctx, r)
}

func slogLevel(l logrus.Level) slog.Level {
	switch l {
	case logrus.TraceLevel:
		return actionlog.LevelTrace
	case logrus.DebugLevel:
		return actionlog.LevelDebug
	case logrus.InfoLevel:
		return actionlog.LevelInfo
	case logrus.WarnLevel:
		return actionlog.LevelWarning
	case logrus.ErrorLevel:
		return actionlog.LevelError
	case logrus.FatalLevel, logrus.PanicLevel:
		return actionlog.LevelCritical
	}
	return actionlog.LevelInfo
}
