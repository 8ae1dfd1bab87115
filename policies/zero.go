// Package policies holds baseline policies to compare environments
// and controllers against.
package policies

import "github.com/stable-rl/simzoo/types"

// ZeroPolicy always applies the null action
type ZeroPolicy struct {
	dim int
}

var _ types.Policy = &ZeroPolicy{}

func NewZeroPolicy(space *types.Box) *ZeroPolicy {
	return &ZeroPolicy{dim: space.Dim()}
}

func (z *ZeroPolicy) NextAction(_ int, _ types.Observation) types.Action {
	return make(types.Action, z.dim)
}

func (z *ZeroPolicy) Update(_ int, _ types.Observation, _ types.Action, _ *types.StepResult) {}

func (z *ZeroPolicy) UpdateEpisode(_ int, _ *types.Trace) {}

func (z *ZeroPolicy) Reset() {}
