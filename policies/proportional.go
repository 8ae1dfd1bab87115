package policies

import "github.com/stable-rl/simzoo/types"

// ProportionalPolicy applies a feedback action proportional to a
// single error component of the observation. Every action dimension
// gets the same correction, clipped to the action space.
type ProportionalPolicy struct {
	space *types.Box
	// Gain of the feedback loop
	gain float64
	// Index of the error component in the observation vector
	errIndex int
}

var _ types.Policy = &ProportionalPolicy{}

func NewProportionalPolicy(space *types.Box, gain float64, errIndex int) *ProportionalPolicy {
	return &ProportionalPolicy{
		space:    space,
		gain:     gain,
		errIndex: errIndex,
	}
}

func (p *ProportionalPolicy) NextAction(_ int, obs types.Observation) types.Action {
	action := make(types.Action, p.space.Dim())
	if p.errIndex < 0 || p.errIndex >= len(obs) {
		return action
	}
	correction := -p.gain * obs[p.errIndex]
	for i := range action {
		action[i] = correction
	}
	return types.Action(p.space.Clip(action))
}

func (p *ProportionalPolicy) Update(_ int, _ types.Observation, _ types.Action, _ *types.StepResult) {
}

func (p *ProportionalPolicy) UpdateEpisode(_ int, _ *types.Trace) {}

func (p *ProportionalPolicy) Reset() {}
