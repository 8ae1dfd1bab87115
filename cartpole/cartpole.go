// Package cartpole implements a continuous, cost-based variant of the
// classic cart-pole control problem. A pole is attached by an
// un-actuated joint to a cart moving along a frictionless track; the
// agent applies a horizontal force on the cart. Instead of a reward,
// every step yields a cost computed from the cart position and the
// pole angle.
package cartpole

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/stable-rl/simzoo/types"
)

// TaskType selects what the agent is asked to do
type TaskType string

const (
	TaskStabilization     TaskType = "stabilization"
	TaskReferenceTracking TaskType = "reference_tracking"
)

// ReferenceType selects the reference signal used by the reference
// tracking task
type ReferenceType string

const (
	ReferencePeriodic ReferenceType = "periodic"
	ReferenceConstant ReferenceType = "constant"
)

// Integrator selects the kinematics integration scheme
type Integrator string

const (
	IntegratorEuler             Integrator = "euler"
	IntegratorSemiImplicitEuler Integrator = "semi-implicit euler"
)

// Config holds the construction options of the cart-pole environment
type Config struct {
	TaskType      TaskType
	ReferenceType ReferenceType
	ClipAction    bool
	Integrator    Integrator
}

// DefaultConfig mirrors the environment defaults: a stabilization
// task with a constant reference, clipped actions and Euler
// integration.
func DefaultConfig() Config {
	return Config{
		TaskType:      TaskStabilization,
		ReferenceType: ReferenceConstant,
		ClipAction:    true,
		Integrator:    IntegratorEuler,
	}
}

// CartPole is the cost-based continuous cart-pole environment.
//
// State: (x, xDot, theta, thetaDot). The episode terminates when the
// cart position or the pole angle leaves its threshold, or when the
// cost leaves the [0, 100] range. The terminal step always costs 100.
type CartPole struct {
	config Config

	gravity  float64
	massCart float64
	massPole float64
	length   float64

	gravityInit  float64
	massCartInit float64
	massPoleInit float64
	lengthInit   float64

	forceMag float64
	tau      float64

	thetaThresholdRadians float64
	xThreshold            float64
	maxV                  float64
	maxW                  float64

	constraintPos float64
	targetPos     float64

	t     float64
	state []float64

	initState     []float64
	initStateLow  []float64
	initStateHigh []float64

	observationSpace *types.Box
	actionSpace      *types.Box

	src                   rand.Source
	actionClipWarning     bool
	stepsBeyondTerminated int
	terminatedWarning     bool
}

var _ types.Environment = &CartPole{}

// New constructs a cart-pole environment.
func New(config Config) (*CartPole, error) {
	if config.TaskType == "" {
		config.TaskType = TaskStabilization
	}
	if config.TaskType != TaskStabilization && config.TaskType != TaskReferenceTracking {
		return nil, fmt.Errorf("unknown task type %q (valid types are %q and %q)",
			config.TaskType, TaskStabilization, TaskReferenceTracking)
	}
	if config.ReferenceType == "" {
		config.ReferenceType = ReferenceConstant
	}
	if config.ReferenceType != ReferencePeriodic && config.ReferenceType != ReferenceConstant {
		return nil, fmt.Errorf("unknown reference type %q (valid types are %q and %q)",
			config.ReferenceType, ReferencePeriodic, ReferenceConstant)
	}
	if config.Integrator == "" {
		config.Integrator = IntegratorEuler
	}
	if config.Integrator != IntegratorEuler && config.Integrator != IntegratorSemiImplicitEuler {
		return nil, fmt.Errorf("unknown integrator %q (valid integrators are %q and %q)",
			config.Integrator, IntegratorEuler, IntegratorSemiImplicitEuler)
	}

	thetaThreshold := 20 * 2 * math.Pi / 360
	xThreshold := 10.0
	maxV := 50.0
	maxW := 50.0

	// Limits are twice the termination thresholds so the failing
	// observation is still within bounds.
	high := []float64{xThreshold * 2, maxV, thetaThreshold * 2, maxW}
	low := []float64{-high[0], -high[1], -high[2], -high[3]}
	observationSpace, err := types.NewBox(low, high)
	if err != nil {
		return nil, err
	}

	return &CartPole{
		config: config,

		gravity:  9.8,
		massCart: 1.0,
		massPole: 0.1,
		length:   1.0,

		gravityInit:  9.8,
		massCartInit: 1.0,
		massPoleInit: 0.1,
		lengthInit:   1.0,

		forceMag: 20,
		tau:      0.02,

		thetaThresholdRadians: thetaThreshold,
		xThreshold:            xThreshold,
		maxV:                  maxV,
		maxW:                  maxW,

		constraintPos: 4.0,
		targetPos:     0.0,

		initState:     []float64{0.1, 0.2, 0.3, 0.1},
		initStateLow:  []float64{-2, -0.2, -0.2, -0.2},
		initStateHigh: []float64{2, 0.2, 0.2, 0.2},

		observationSpace: observationSpace,
		actionSpace:      types.UniformBox(-20, 20, 1),

		src:                   rand.NewSource(uint64(time.Now().UnixNano())),
		stepsBeyondTerminated: -1,
	}, nil
}

func (c *CartPole) ObservationSpace() *types.Box {
	return c.observationSpace
}

func (c *CartPole) ActionSpace() *types.Box {
	return c.actionSpace
}

// Dt returns the seconds between state updates
func (c *CartPole) Dt() float64 {
	return c.tau
}

// SetParams sets the most important system parameters
func (c *CartPole) SetParams(length, massCart, massPole, gravity float64) {
	c.length = length
	c.massCart = massCart
	c.massPole = massPole
	c.gravity = gravity
}

// Params retrieves the most important system parameters
func (c *CartPole) Params() (length, massCart, massPole, gravity float64) {
	return c.length, c.massCart, c.massPole, c.gravity
}

// ResetParams restores the initial system parameters
func (c *CartPole) ResetParams() {
	c.length = c.lengthInit
	c.massCart = c.massCartInit
	c.massPole = c.massPoleInit
	c.gravity = c.gravityInit
}

// Reference returns the value of the reference signal at time t
func (c *CartPole) Reference(t float64) float64 {
	if c.config.ReferenceType == ReferencePeriodic {
		return c.targetPos + 7*math.Sin((2*math.Pi)*t/200)
	}
	return c.targetPos
}

// Cost returns the cost for a given cart position and pole angle,
// together with the active reference.
func (c *CartPole) Cost(x, theta float64) (float64, float64) {
	stabCost := x*x/100 + 20*math.Pow(theta/c.thetaThresholdRadians, 2)
	if c.config.TaskType == TaskReferenceTracking {
		ref := c.Reference(c.t)
		return stabCost + math.Abs(x-ref), ref
	}
	return stabCost, 0.0
}

func (c *CartPole) totalMass() float64 {
	return c.massPole + c.massCart
}

// comLength is the position of the pole center of mass
func (c *CartPole) comLength() float64 {
	return c.length * 0.5
}

func (c *CartPole) poleMassLength() float64 {
	return c.massPole * c.comLength()
}

func (c *CartPole) Reset(opts *types.ResetOptions) (types.Observation, types.Info, error) {
	if opts == nil {
		opts = &types.ResetOptions{}
	}
	if opts.Seed != nil {
		c.src = rand.NewSource(*opts.Seed)
	}

	low := c.initStateLow
	high := c.initStateHigh
	if opts.InitLow != nil {
		low = opts.InitLow
	}
	if opts.InitHigh != nil {
		high = opts.InitHigh
	}
	if !c.observationSpace.Contains(low) || !c.observationSpace.Contains(high) {
		return nil, nil, fmt.Errorf("reset bounds must be within the observation space bounds (low: %v, high: %v)",
			c.observationSpace.Low, c.observationSpace.High)
	}

	if opts.Deterministic {
		c.state = append([]float64(nil), c.initState...)
	} else {
		c.state = make([]float64, 4)
		for i := range c.state {
			u := distuv.Uniform{Min: low[i], Max: high[i], Src: c.src}
			c.state[i] = u.Rand()
		}
	}
	c.stepsBeyondTerminated = -1
	c.terminatedWarning = false
	c.t = 0

	_, ref := c.Cost(c.state[0], c.state[2])
	return append(types.Observation(nil), c.state...), c.info(ref), nil
}

func (c *CartPole) Step(action types.Action) (*types.StepResult, error) {
	if c.state == nil {
		return nil, errors.New("call Reset before using the Step method")
	}
	if len(action) != 1 {
		return nil, fmt.Errorf("action has dimension %d, expected 1", len(action))
	}
	if !c.actionSpace.Contains(action) {
		if !c.config.ClipAction {
			return nil, fmt.Errorf("action %v is not in the action space (low: %v, high: %v)",
				action, c.actionSpace.Low, c.actionSpace.High)
		}
		if !c.actionClipWarning {
			fmt.Printf("WARNING: Action %v was clipped as it is not in the action space (low: %v, high: %v).\n",
				action, c.actionSpace.Low, c.actionSpace.High)
			c.actionClipWarning = true
		}
		action = c.actionSpace.Clip(action)
	}
	force := action[0]

	// Cart-pole dynamics, see Florian (2005), "Correct equations for
	// the dynamics of the cart-pole system".
	x, xDot, theta, thetaDot := c.state[0], c.state[1], c.state[2], c.state[3]
	cosTheta := math.Cos(theta)
	sinTheta := math.Sin(theta)
	temp := (force + c.poleMassLength()*thetaDot*thetaDot*sinTheta) / c.totalMass()
	thetaAcc := (c.gravity*sinTheta - cosTheta*temp) /
		(c.comLength() * (4.0/3.0 - c.massPole*cosTheta*cosTheta/c.totalMass()))
	xAcc := temp - c.poleMassLength()*thetaAcc*cosTheta/c.totalMass()

	if c.config.Integrator == IntegratorEuler {
		x = x + c.tau*xDot
		xDot = xDot + c.tau*xAcc
		theta = theta + c.tau*thetaDot
		thetaDot = thetaDot + c.tau*thetaAcc
	} else { // semi-implicit euler
		xDot = xDot + c.tau*xAcc
		x = x + c.tau*xDot
		thetaDot = thetaDot + c.tau*thetaAcc
		theta = theta + c.tau*thetaDot
	}

	c.state = []float64{x, xDot, theta, thetaDot}
	c.t += c.tau

	cost, ref := c.Cost(x, theta)

	terminated := math.Abs(x) > c.xThreshold ||
		math.Abs(theta) > c.thetaThresholdRadians ||
		cost > 100 || cost < 0

	if terminated {
		cost = 100.0

		if c.stepsBeyondTerminated < 0 {
			// Pole just fell.
			c.stepsBeyondTerminated = 0
		} else {
			if c.stepsBeyondTerminated == 0 && !c.terminatedWarning {
				fmt.Println("WARNING: You are calling Step even though this environment " +
					"has already returned terminated = true. You should always call " +
					"Reset once you receive terminated = true.")
				c.terminatedWarning = true
			}
			c.stepsBeyondTerminated++
		}
	}

	return &types.StepResult{
		Observation: append(types.Observation(nil), c.state...),
		Cost:        cost,
		Terminated:  terminated,
		Info:        c.info(ref),
	}, nil
}

func (c *CartPole) info(ref float64) types.Info {
	x, theta := c.state[0], c.state[2]
	return types.Info{
		"cons_pos":                 c.constraintPos,
		"cons_theta":               c.thetaThresholdRadians,
		"target":                   c.targetPos,
		"violation_of_constraint":  math.Abs(x) > c.constraintPos,
		"violation_of_x_threshold": math.Abs(x) > c.xThreshold,
		"reference":                ref,
		"state_of_interest":        theta,
	}
}
