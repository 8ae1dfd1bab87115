package types

// Observation of the system state that policies act on
type Observation []float64

// Action that a policy applies to the environment
type Action []float64

// Info carries additional, environment specific values for a step
type Info map[string]interface{}

// StepResult is everything an environment returns for a single step
type StepResult struct {
	Observation Observation
	Cost        float64
	Terminated  bool
	Truncated   bool
	Info        Info
}

// ResetOptions control how an environment is re-initialized.
// The zero value asks for a random initial state with the
// environment default bounds.
type ResetOptions struct {
	// Seed re-seeds the environment randomness when non-nil
	Seed *uint64
	// Deterministic selects the fixed initial state instead of a random one
	Deterministic bool
	// InitLow and InitHigh override the random initial state bounds
	// for environments that support custom reset bounds
	InitLow  []float64
	InitHigh []float64
}

// Environment is a simulation with continuous observation and action
// vectors and a scalar cost to minimize.
type Environment interface {
	// Reset called at the start of each episode
	Reset(*ResetOptions) (Observation, Info, error)
	// Step advances the simulation by one time step
	Step(Action) (*StepResult, error)
	ObservationSpace() *Box
	ActionSpace() *Box
}

func Seed(s uint64) *uint64 {
	return &s
}
