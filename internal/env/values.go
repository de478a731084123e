package env

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Values mirrors the part of the process environment the Actions runner
// controls. GithubActions says whether a runner drives this process at all,
// the two debug knobs are how a user asks for debug annotations in the job
// log.
var Values = struct {
	GithubActions    bool `env:"GITHUB_ACTIONS"`
	RunnerDebug      bool `env:"RUNNER_DEBUG"`
	ActionsStepDebug bool `env:"ACTIONS_STEP_DEBUG"`
}{}

func Parse() error {
	if err := env.Parse(&Values); err != nil {
		return fmt.Errorf("failed parse env vars: %w", err)
	}
	return nil
}

// InActions reports whether the Actions runner drives this process.
func InActions() bool { return Values.GithubActions }

// StepDebug reports whether the user switched the job or the step into debug
// logging.
func StepDebug() bool { return Values.RunnerDebug || Values.ActionsStepDebug }
