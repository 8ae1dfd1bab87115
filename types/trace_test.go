package types

import (
	"testing"
)

func TestTraceAppendAndGet(t *testing.T) {
	trace := NewTrace()
	if trace.Len() != 0 {
		t.Errorf("new trace should be empty")
	}
	if _, ok := trace.Last(); ok {
		t.Errorf("empty trace should have no last step")
	}

	trace.Append(TraceStep{Cost: 1})
	trace.Append(TraceStep{Cost: 2, Terminated: true})

	if trace.Len() != 2 {
		t.Errorf("incorrect trace length: %d", trace.Len())
	}
	step, ok := trace.Get(1)
	if !ok || step.Cost != 2 {
		t.Errorf("incorrect step at index 1")
	}
	if _, ok := trace.Get(2); ok {
		t.Errorf("out of range index should not return a step")
	}
	last, ok := trace.Last()
	if !ok || !last.Terminated {
		t.Errorf("incorrect last step")
	}
}

func TestTraceCosts(t *testing.T) {
	trace := NewTrace()
	trace.Append(TraceStep{Cost: 1})
	trace.Append(TraceStep{Cost: 2})
	trace.Append(TraceStep{Cost: 3})

	if trace.TotalCost() != 6 {
		t.Errorf("incorrect total cost: %g", trace.TotalCost())
	}
	if trace.MeanCost() != 2 {
		t.Errorf("incorrect mean cost: %g", trace.MeanCost())
	}

	empty := NewTrace()
	if empty.MeanCost() != 0 {
		t.Errorf("mean cost of an empty trace should be zero")
	}
}
