package oscillator

import (
	"errors"
	"math"
	"testing"

	"github.com/stable-rl/simzoo/types"
)

func newTestEnv(t *testing.T, config Config) *Oscillator {
	t.Helper()
	env, err := New(config)
	if err != nil {
		t.Fatalf("failed to create environment: %v", err)
	}
	return env
}

func deterministicReset(t *testing.T, env *Oscillator) types.Observation {
	t.Helper()
	obs, _, err := env.Reset(&types.ResetOptions{Deterministic: true})
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	return obs
}

func TestBothReferenceObservationsExcluded(t *testing.T) {
	config := DefaultConfig()
	config.ExcludeReferenceFromObservation = true
	config.ExcludeReferenceErrorFromObservation = true
	if _, err := New(config); !errors.Is(err, ErrNoReferenceObservation) {
		t.Errorf("expected ErrNoReferenceObservation, got %v", err)
	}
}

func TestUnknownReferenceType(t *testing.T) {
	config := DefaultConfig()
	config.ReferenceType = "sawtooth"
	if _, err := New(config); err == nil {
		t.Errorf("expected an error for an unknown reference type")
	}
}

func TestObservationDimensions(t *testing.T) {
	testCases := []struct {
		name       string
		excludeRef bool
		excludeErr bool
		dim        int
	}{
		{"full", false, false, 8},
		{"no reference", true, false, 7},
		{"no reference error", false, true, 7},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			config.ExcludeReferenceFromObservation = tc.excludeRef
			config.ExcludeReferenceErrorFromObservation = tc.excludeErr
			env := newTestEnv(t, config)
			if env.ObservationSpace().Dim() != tc.dim {
				t.Errorf("incorrect observation space dimension: %d", env.ObservationSpace().Dim())
			}
			obs := deterministicReset(t, env)
			if len(obs) != tc.dim {
				t.Errorf("incorrect observation length: %d", len(obs))
			}
		})
	}
}

func TestObservationLayout(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())
	obs := deterministicReset(t, env)

	// state, reference, reference error
	p1 := obs[3]
	r := obs[6]
	if r != env.Reference(0) {
		t.Errorf("incorrect reference in observation: %g", r)
	}
	if obs[7] != p1-r {
		t.Errorf("incorrect reference error in observation: %g", obs[7])
	}

	config := DefaultConfig()
	config.ExcludeReferenceFromObservation = true
	env = newTestEnv(t, config)
	obs = deterministicReset(t, env)
	if obs[6] != obs[3]-env.Reference(0) {
		t.Errorf("observation without reference should end with the reference error")
	}
}

func TestReference(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())
	if env.Reference(0) != 8 {
		t.Errorf("periodic reference at t=0 should be 8, got %g", env.Reference(0))
	}
	if math.Abs(env.Reference(50)-15) > 1e-9 {
		t.Errorf("periodic reference at t=50 should be 15, got %g", env.Reference(50))
	}

	config := DefaultConfig()
	config.ReferenceType = ReferenceConstant
	env = newTestEnv(t, config)
	if env.Reference(0) != 8 || env.Reference(123) != 8 {
		t.Errorf("constant reference should always be 8")
	}
}

func TestStepBeforeReset(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())
	if _, err := env.Step(types.Action{0, 0, 0}); err == nil {
		t.Errorf("stepping before reset should fail")
	}
}

func TestDeterministicDynamics(t *testing.T) {
	first := newTestEnv(t, DefaultConfig())
	second := newTestEnv(t, DefaultConfig())
	deterministicReset(t, first)
	deterministicReset(t, second)

	actions := []types.Action{
		{1, -1, 0.5},
		{0, 0, 0},
		{-5, 5, 2},
	}
	for _, action := range actions {
		r1, err := first.Step(action)
		if err != nil {
			t.Fatalf("step failed: %v", err)
		}
		r2, err := second.Step(action)
		if err != nil {
			t.Fatalf("step failed: %v", err)
		}
		for i := range r1.Observation {
			if r1.Observation[i] != r2.Observation[i] {
				t.Fatalf("noise-free dynamics should be deterministic: %v != %v",
					r1.Observation, r2.Observation)
			}
		}
	}
}

func TestSeededResetReproducible(t *testing.T) {
	first := newTestEnv(t, DefaultConfig())
	second := newTestEnv(t, DefaultConfig())

	obs1, _, err := first.Reset(&types.ResetOptions{Seed: types.Seed(42)})
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	obs2, _, err := second.Reset(&types.ResetOptions{Seed: types.Seed(42)})
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	for i := range obs1 {
		if obs1[i] != obs2[i] {
			t.Fatalf("seeded resets should agree: %v != %v", obs1, obs2)
		}
	}
}

func TestCostIsSquaredReferenceError(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())
	deterministicReset(t, env)

	result, err := env.Step(types.Action{0, 0, 0})
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	refErr := result.Observation[7]
	if math.Abs(result.Cost-refErr*refErr) > 1e-12 {
		t.Errorf("cost %g does not match squared reference error %g", result.Cost, refErr*refErr)
	}
	soi, ok := result.Info["state_of_interest"].(float64)
	if !ok || soi != refErr {
		t.Errorf("state_of_interest should be the reference error")
	}
}

func TestConcentrationsStayNonNegative(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())
	deterministicReset(t, env)

	for i := 0; i < 100; i++ {
		result, err := env.Step(types.Action{-5, -5, -5})
		if err != nil {
			t.Fatalf("step failed: %v", err)
		}
		for j := 0; j < 6; j++ {
			if result.Observation[j] < 0 {
				t.Fatalf("concentration %d went negative: %g", j, result.Observation[j])
			}
		}
		if result.Terminated {
			break
		}
	}
}

func TestTerminatesWhenCostExceedsRange(t *testing.T) {
	config := DefaultConfig()
	config.ReferenceType = ReferenceConstant
	env := newTestEnv(t, config)
	deterministicReset(t, env)

	// Saturating the production rates drives p1 far beyond the
	// constant reference, so the cost must leave the [0, 100] range.
	terminated := false
	var lastCost float64
	for i := 0; i < 800; i++ {
		result, err := env.Step(types.Action{5, 5, 5})
		if err != nil {
			t.Fatalf("step failed: %v", err)
		}
		lastCost = result.Cost
		if result.Terminated {
			terminated = true
			break
		}
	}
	if !terminated {
		t.Fatalf("episode should terminate once the cost leaves the valid range")
	}
	if lastCost <= 100 {
		t.Errorf("terminal cost should exceed 100, got %g", lastCost)
	}
}

func TestActionClipping(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())
	deterministicReset(t, env)
	if _, err := env.Step(types.Action{10, 0, 0}); err != nil {
		t.Errorf("out of range action should be clipped, got error: %v", err)
	}

	config := DefaultConfig()
	config.ClipAction = false
	env = newTestEnv(t, config)
	deterministicReset(t, env)
	if _, err := env.Step(types.Action{10, 0, 0}); err == nil {
		t.Errorf("out of range action should be rejected when clipping is off")
	}
}

func TestDisturber(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())
	d := NewDisturber(env, []float64{0, 0.1, 0.5})

	if d.Current() != 0 {
		t.Errorf("disturber should start at the first magnitude")
	}
	if !d.Next() || d.Current() != 0.1 {
		t.Errorf("disturber should advance to the second magnitude")
	}
	if !d.Next() || d.Current() != 0.5 {
		t.Errorf("disturber should advance to the third magnitude")
	}
	if d.Next() {
		t.Errorf("disturber should stop after the last magnitude")
	}
	d.Reset()
	if d.Current() != 0 {
		t.Errorf("disturber reset should return to the first magnitude")
	}
}
