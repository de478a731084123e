package actionlog

import "github.com/dsh2dsh/actionlog/internal/env"

// FromEnv applies the runner controlled environment to the handler: with the
// job or step switched into debug logging the threshold drops to LevelDebug,
// so debug annotations reach the job log. An environment that fails to parse
// leaves the handler as it was, a log handler comes up regardless.
func FromEnv() Option {
	return func(h *Handler) {
		if err := env.Parse(); err != nil {
			return
		}
		if env.StepDebug() {
			h.minLevel.Set(LevelDebug)
		}
	}
}

// InActions reports whether the Actions runner drives this process. Callers
// embedding the handler into a larger logging setup can fall back to their
// plain handler outside the runner.
func InActions() bool {
	if err := env.Parse(); err != nil {
		return false
	}
	return env.InActions()
}
