package types

import "gonum.org/v1/gonum/stat"

// TraceStep records a single transition of an episode
type TraceStep struct {
	Observation     Observation `json:"obs"`
	Action          Action      `json:"action"`
	NextObservation Observation `json:"next_obs"`
	Cost            float64     `json:"cost"`
	Terminated      bool        `json:"terminated"`
	Truncated       bool        `json:"truncated"`
	Info            Info        `json:"info,omitempty"`
}

// Trace of an episode as a sequence of transitions
type Trace struct {
	Steps []TraceStep `json:"steps"`
}

func NewTrace() *Trace {
	return &Trace{
		Steps: make([]TraceStep, 0),
	}
}

func (t *Trace) Append(step TraceStep) {
	t.Steps = append(t.Steps, step)
}

func (t *Trace) Len() int {
	return len(t.Steps)
}

func (t *Trace) Get(i int) (TraceStep, bool) {
	if i < 0 || i >= len(t.Steps) {
		return TraceStep{}, false
	}
	return t.Steps[i], true
}

func (t *Trace) Last() (TraceStep, bool) {
	if len(t.Steps) < 1 {
		return TraceStep{}, false
	}
	return t.Steps[len(t.Steps)-1], true
}

// Costs returns the cost of every step in order
func (t *Trace) Costs() []float64 {
	costs := make([]float64, len(t.Steps))
	for i, s := range t.Steps {
		costs[i] = s.Cost
	}
	return costs
}

func (t *Trace) TotalCost() float64 {
	total := 0.0
	for _, s := range t.Steps {
		total += s.Cost
	}
	return total
}

func (t *Trace) MeanCost() float64 {
	if len(t.Steps) == 0 {
		return 0
	}
	return stat.Mean(t.Costs(), nil)
}
