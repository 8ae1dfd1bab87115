package types

// TimeLimit wraps an environment and truncates episodes after a
// maximum number of steps.
type TimeLimit struct {
	Environment
	maxEpisodeSteps int
	elapsed         int
}

var _ Environment = &TimeLimit{}

func NewTimeLimit(env Environment, maxEpisodeSteps int) *TimeLimit {
	return &TimeLimit{
		Environment:     env,
		maxEpisodeSteps: maxEpisodeSteps,
	}
}

func (t *TimeLimit) MaxEpisodeSteps() int {
	return t.maxEpisodeSteps
}

func (t *TimeLimit) Reset(opts *ResetOptions) (Observation, Info, error) {
	t.elapsed = 0
	return t.Environment.Reset(opts)
}

func (t *TimeLimit) Step(action Action) (*StepResult, error) {
	result, err := t.Environment.Step(action)
	if err != nil {
		return result, err
	}
	t.elapsed++
	if t.elapsed >= t.maxEpisodeSteps {
		result.Truncated = true
	}
	return result, nil
}

// Unwrap returns the environment under the time limit.
func (t *TimeLimit) Unwrap() Environment {
	return t.Environment
}
