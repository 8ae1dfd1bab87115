package envs

import (
	"github.com/stable-rl/simzoo/cartpole"
	"github.com/stable-rl/simzoo/oscillator"
	"github.com/stable-rl/simzoo/types"
)

// MaxEpisodeSteps after which episodes of the built-in environments
// are truncated.
const MaxEpisodeSteps = 800

func init() {
	builtin := []Spec{
		{
			ID: "Oscillator-v1",
			Entry: func() (types.Environment, error) {
				return oscillator.New(oscillator.DefaultConfig())
			},
			MaxEpisodeSteps: MaxEpisodeSteps,
		},
		{
			ID: "CartPoleCost-v1",
			Entry: func() (types.Environment, error) {
				return cartpole.New(cartpole.DefaultConfig())
			},
			MaxEpisodeSteps: MaxEpisodeSteps,
		},
	}
	for _, spec := range builtin {
		if err := Register(spec); err != nil {
			panic(err)
		}
	}
}
