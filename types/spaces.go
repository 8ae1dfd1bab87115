package types

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Box is a continuous space bounded element-wise by Low and High.
type Box struct {
	Low  []float64
	High []float64
}

func NewBox(low, high []float64) (*Box, error) {
	if len(low) != len(high) {
		return nil, fmt.Errorf("box bounds have different lengths: %d and %d", len(low), len(high))
	}
	for i := range low {
		if low[i] > high[i] {
			return nil, fmt.Errorf("box lower bound %g exceeds upper bound %g at index %d", low[i], high[i], i)
		}
	}
	return &Box{Low: low, High: high}, nil
}

// UniformBox returns a box with the same bounds on every dimension.
func UniformBox(low, high float64, dim int) *Box {
	l := make([]float64, dim)
	h := make([]float64, dim)
	for i := 0; i < dim; i++ {
		l[i] = low
		h[i] = high
	}
	return &Box{Low: l, High: h}
}

func (b *Box) Dim() int {
	return len(b.Low)
}

func (b *Box) Contains(v []float64) bool {
	if len(v) != len(b.Low) {
		return false
	}
	for i, val := range v {
		if val < b.Low[i] || val > b.High[i] {
			return false
		}
	}
	return true
}

// Clip returns a copy of v with every component clamped to the box bounds.
func (b *Box) Clip(v []float64) []float64 {
	clipped := make([]float64, len(v))
	for i, val := range v {
		switch {
		case i >= len(b.Low):
			clipped[i] = val
		case val < b.Low[i]:
			clipped[i] = b.Low[i]
		case val > b.High[i]:
			clipped[i] = b.High[i]
		default:
			clipped[i] = val
		}
	}
	return clipped
}

// Sample draws a uniform random element of the box.
func (b *Box) Sample(src rand.Source) []float64 {
	sample := make([]float64, len(b.Low))
	for i := range sample {
		u := distuv.Uniform{Min: b.Low[i], Max: b.High[i], Src: src}
		sample[i] = u.Rand()
	}
	return sample
}
