// Package oscillator implements a synthetic oscillatory network of
// transcriptional regulators (a repressilator): a three-gene regulatory
// network where the mRNA and protein concentrations follow an
// oscillatory behavior. The agent has to steer the first protein
// concentration onto a supplied reference signal.
package oscillator

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/stable-rl/simzoo/types"
)

// ReferenceType selects the reference signal the first protein tracks
type ReferenceType string

const (
	ReferencePeriodic ReferenceType = "periodic"
	ReferenceConstant ReferenceType = "constant"
)

// ErrNoReferenceObservation is returned when both the reference value
// and the reference error are excluded from the observation. At least
// one of them is needed for the environment to be solvable.
var ErrNoReferenceObservation = errors.New(
	"you cannot exclude both the reference and the reference error from the observation",
)

// Config holds the construction options of the oscillator environment
type Config struct {
	// ReferenceType selects a periodic or constant reference,
	// periodic when empty
	ReferenceType ReferenceType
	// ClipAction clamps out-of-range actions instead of rejecting them
	ClipAction bool
	// ExcludeReferenceFromObservation drops the reference value from
	// the observation vector
	ExcludeReferenceFromObservation bool
	// ExcludeReferenceErrorFromObservation drops the reference error
	// from the observation vector
	ExcludeReferenceErrorFromObservation bool
	// Sigma is the half-width of the uniform system noise
	Sigma float64
}

// DefaultConfig mirrors the environment defaults: a periodic
// reference, clipped actions and the full observation vector.
func DefaultConfig() Config {
	return Config{
		ReferenceType: ReferencePeriodic,
		ClipAction:    true,
	}
}

// Oscillator simulates the repressilator dynamics with an Euler
// integration step.
//
// State: (m1, m2, m3, p1, p2, p3), the three mRNA and the three
// protein concentrations. Each protein inhibits transcription of the
// next gene in the cycle. Concentrations never go negative.
//
// Action: the three protein production rates under repressor
// saturation (leakiness), each in [-5, 5].
//
// Cost: squared error between the first protein concentration and the
// reference, (p1 - r)^2. The episode terminates when the cost leaves
// the [0, 100] range.
type Oscillator struct {
	config Config

	// oscillator network parameters
	K  float64
	c1 float64
	c2 float64
	c3 float64
	c4 float64
	b1 float64
	b2 float64
	b3 float64

	dt    float64
	sigma float64

	t     float64
	state []float64

	initState []float64

	observationSpace *types.Box
	actionSpace      *types.Box

	src               rand.Source
	actionClipWarning bool
}

var _ types.Environment = &Oscillator{}

// New constructs an oscillator environment. Excluding both the
// reference and the reference error from the observation is a
// configuration error.
func New(config Config) (*Oscillator, error) {
	if config.ExcludeReferenceFromObservation && config.ExcludeReferenceErrorFromObservation {
		return nil, ErrNoReferenceObservation
	}
	if config.ReferenceType == "" {
		config.ReferenceType = ReferencePeriodic
	}
	if config.ReferenceType != ReferencePeriodic && config.ReferenceType != ReferenceConstant {
		return nil, fmt.Errorf("unknown reference type %q (valid types are %q and %q)",
			config.ReferenceType, ReferencePeriodic, ReferenceConstant)
	}

	obsDim := 8
	if config.ExcludeReferenceFromObservation {
		obsDim--
	}
	if config.ExcludeReferenceErrorFromObservation {
		obsDim--
	}

	return &Oscillator{
		config: config,

		K:  1.0,
		c1: 1.6,
		c2: 0.16,
		c3: 0.16,
		c4: 0.06,
		b1: 1.0,
		b2: 1.0,
		b3: 1.0,

		dt:    1.0,
		sigma: config.Sigma,

		initState: []float64{0.1, 0.2, 0.3, 0.1, 0.2, 0.3},

		observationSpace: types.UniformBox(-100, 100, obsDim),
		actionSpace:      types.UniformBox(-5, 5, 3),

		src: rand.NewSource(uint64(time.Now().UnixNano())),
	}, nil
}

func (o *Oscillator) ObservationSpace() *types.Box {
	return o.observationSpace
}

func (o *Oscillator) ActionSpace() *types.Box {
	return o.actionSpace
}

// Reference returns the value of the reference signal at time t
func (o *Oscillator) Reference(t float64) float64 {
	if o.config.ReferenceType == ReferencePeriodic {
		return 8 + 7*math.Sin((2*math.Pi)*t/200)
	}
	return 8
}

// SetNoise adjusts the half-width of the uniform system noise. Used
// by disturbers for robustness evaluation.
func (o *Oscillator) SetNoise(sigma float64) {
	o.sigma = sigma
}

func (o *Oscillator) Reset(opts *types.ResetOptions) (types.Observation, types.Info, error) {
	if opts == nil {
		opts = &types.ResetOptions{}
	}
	if opts.Seed != nil {
		o.src = rand.NewSource(*opts.Seed)
	}
	if opts.InitLow != nil || opts.InitHigh != nil {
		return nil, nil, errors.New("the oscillator environment does not support custom reset bounds")
	}

	if opts.Deterministic {
		o.state = append([]float64(nil), o.initState...)
	} else {
		u := distuv.Uniform{Min: 0, Max: 1, Src: o.src}
		o.state = make([]float64, 6)
		for i := range o.state {
			o.state[i] = u.Rand()
		}
	}
	o.t = 0

	r := o.Reference(o.t)
	return o.observation(r), o.info(r), nil
}

func (o *Oscillator) Step(action types.Action) (*types.StepResult, error) {
	if o.state == nil {
		return nil, errors.New("call Reset before using the Step method")
	}
	if len(action) != 3 {
		return nil, fmt.Errorf("action has dimension %d, expected 3", len(action))
	}
	if !o.actionSpace.Contains(action) {
		if !o.config.ClipAction {
			return nil, fmt.Errorf("action %v is not in the action space (low: %v, high: %v)",
				action, o.actionSpace.Low, o.actionSpace.High)
		}
		if !o.actionClipWarning {
			fmt.Printf("WARNING: Action %v was clipped as it is not in the action space (low: %v, high: %v).\n",
				action, o.actionSpace.Low, o.actionSpace.High)
			o.actionClipWarning = true
		}
		action = o.actionSpace.Clip(action)
	}
	u1, u2, u3 := action[0], action[1], action[2]

	// The new state is found by solving 6 first-order differential
	// equations with a forward Euler step.
	m1, m2, m3 := o.state[0], o.state[1], o.state[2]
	p1, p2, p3 := o.state[3], o.state[4], o.state[5]
	m1Dot := o.c1/(o.K+p3*p3) - o.c2*m1 + o.b1*u1
	p1Dot := o.c3*m1 - o.c4*p1
	m2Dot := o.c1/(o.K+p1*p1) - o.c2*m2 + o.b2*u2
	p2Dot := o.c3*m2 - o.c4*p2
	m3Dot := o.c1/(o.K+p2*p2) - o.c2*m3 + o.b3*u3
	p3Dot := o.c3*m3 - o.c4*p3

	// Concentrations can not be negative.
	m1 = math.Max(m1+m1Dot*o.dt+o.noise(), 0)
	m2 = math.Max(m2+m2Dot*o.dt+o.noise(), 0)
	m3 = math.Max(m3+m3Dot*o.dt+o.noise(), 0)
	p1 = math.Max(p1+p1Dot*o.dt+o.noise(), 0)
	p2 = math.Max(p2+p2Dot*o.dt+o.noise(), 0)
	p3 = math.Max(p3+p3Dot*o.dt+o.noise(), 0)

	o.state = []float64{m1, m2, m3, p1, p2, p3}
	o.t += o.dt

	r := o.Reference(o.t)
	cost := (p1 - r) * (p1 - r)

	terminated := cost > 100 || cost < 0

	return &types.StepResult{
		Observation: o.observation(r),
		Cost:        cost,
		Terminated:  terminated,
		Info:        o.info(r),
	}, nil
}

func (o *Oscillator) noise() float64 {
	if o.sigma == 0 {
		return 0
	}
	u := distuv.Uniform{Min: -o.sigma, Max: o.sigma, Src: o.src}
	return u.Rand()
}

func (o *Oscillator) observation(r float64) types.Observation {
	obs := make(types.Observation, 0, o.observationSpace.Dim())
	obs = append(obs, o.state...)
	if !o.config.ExcludeReferenceFromObservation {
		obs = append(obs, r)
	}
	if !o.config.ExcludeReferenceErrorFromObservation {
		obs = append(obs, o.state[3]-r)
	}
	return obs
}

func (o *Oscillator) info(r float64) types.Info {
	return types.Info{
		"reference":         r,
		"state_of_interest": o.state[3] - r,
	}
}
