package types

import (
	"time"

	"golang.org/x/exp/rand"
)

type Policy interface {
	// NextAction picks the action for the given step
	NextAction(step int, obs Observation) Action
	// Update feeds the outcome of a step back to the policy
	Update(step int, obs Observation, action Action, result *StepResult)
	// UpdateEpisode is called once at the end of each episode
	UpdateEpisode(episode int, trace *Trace)
	Reset()
}

// RandomPolicy samples the action space uniformly
type RandomPolicy struct {
	space *Box
	src   rand.Source
}

var _ Policy = &RandomPolicy{}

func NewRandomPolicy(space *Box) *RandomPolicy {
	return &RandomPolicy{
		space: space,
		src:   rand.NewSource(uint64(time.Now().UnixNano())),
	}
}

// NewSeededRandomPolicy returns a random policy with deterministic sampling
func NewSeededRandomPolicy(space *Box, seed uint64) *RandomPolicy {
	return &RandomPolicy{
		space: space,
		src:   rand.NewSource(seed),
	}
}

func (r *RandomPolicy) NextAction(_ int, _ Observation) Action {
	return Action(r.space.Sample(r.src))
}

func (r *RandomPolicy) Update(_ int, _ Observation, _ Action, _ *StepResult) {}

func (r *RandomPolicy) UpdateEpisode(_ int, _ *Trace) {}

func (r *RandomPolicy) Reset() {}
