package types

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestNewBoxMismatchedBounds(t *testing.T) {
	if _, err := NewBox([]float64{0, 0}, []float64{1}); err == nil {
		t.Errorf("expected an error for mismatched bound lengths")
	}
	if _, err := NewBox([]float64{2}, []float64{1}); err == nil {
		t.Errorf("expected an error for a lower bound above the upper bound")
	}
}

func TestBoxContains(t *testing.T) {
	box := UniformBox(-5, 5, 3)
	if !box.Contains([]float64{0, -5, 5}) {
		t.Errorf("boundary values should be contained")
	}
	if box.Contains([]float64{0, 0, 5.1}) {
		t.Errorf("out of range value should not be contained")
	}
	if box.Contains([]float64{0, 0}) {
		t.Errorf("wrong dimension should not be contained")
	}
}

func TestBoxClip(t *testing.T) {
	box := UniformBox(-5, 5, 3)
	clipped := box.Clip([]float64{-10, 2, 7})
	expected := []float64{-5, 2, 5}
	for i := range expected {
		if clipped[i] != expected[i] {
			t.Errorf("incorrect clipped value at %d: got %g, expected %g", i, clipped[i], expected[i])
		}
	}
}

func TestBoxSampleWithinBounds(t *testing.T) {
	box := UniformBox(-5, 5, 3)
	src := rand.NewSource(42)
	for i := 0; i < 100; i++ {
		sample := box.Sample(src)
		if !box.Contains(sample) {
			t.Fatalf("sample %v is not within the box bounds", sample)
		}
	}
}

func TestBoxSampleDeterministic(t *testing.T) {
	box := UniformBox(-5, 5, 3)
	first := box.Sample(rand.NewSource(42))
	second := box.Sample(rand.NewSource(42))
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("samples with the same seed differ at %d: %g != %g", i, first[i], second[i])
		}
	}
}
