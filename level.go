package actionlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// The severity scale, expressed as slog levels. The gaps slog leaves between
// its named levels hold the three extra severities: trace below debug, notice
// between info and warn, critical above error.
const (
	LevelTrace    slog.Level = slog.LevelDebug - 4
	LevelDebug    slog.Level = slog.LevelDebug
	LevelInfo     slog.Level = slog.LevelInfo
	LevelNotice   slog.Level = slog.LevelInfo + 2
	LevelWarning  slog.Level = slog.LevelWarn
	LevelError    slog.Level = slog.LevelError
	LevelCritical slog.Level = slog.LevelError + 4
)

var levelNames = map[slog.Level]string{
	LevelTrace:    "trace",
	LevelDebug:    "debug",
	LevelInfo:     "info",
	LevelNotice:   "notice",
	LevelWarning:  "warning",
	LevelError:    "error",
	LevelCritical: "critical",
}

// LevelString returns the lower-case name of l. Levels between two named
// severities render the way slog renders them, lower-cased.
func LevelString(l slog.Level) string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return strings.ToLower(l.String())
}

// ParseLevel returns the level named by s. It accepts the seven names from
// the severity scale and falls back to slog's own notation ("WARN+2").
func ParseLevel(s string) (slog.Level, error) {
	for l, name := range levelNames {
		if name == s {
			return l, nil
		}
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unparseable level '%s': %w", s, err)
	}
	return l, nil
}

// commandForLevel maps a severity to the command name carrying it on the
// wire. The runner annotates natively only at error, warning and debug, so
// the scale folds into three buckets: error and above, warning up to error,
// and everything below warning.
func commandForLevel(l slog.Level) string {
	switch {
	case l >= LevelError:
		return cmdError
	case l >= LevelWarning:
		return cmdWarning
	default:
		return cmdDebug
	}
}
