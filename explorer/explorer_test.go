package explorer

import (
	"path"
	"testing"

	"github.com/stable-rl/simzoo/types"
)

func recordTestTraces(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	recorder, err := types.NewFileTraceRecorder(dir)
	if err != nil {
		t.Fatalf("failed to create recorder: %v", err)
	}

	first := types.NewTrace()
	first.Append(types.TraceStep{Cost: 1})
	first.Append(types.TraceStep{Cost: 3, Truncated: true})

	second := types.NewTrace()
	second.Append(types.TraceStep{Cost: 100, Terminated: true})

	for _, trace := range []*types.Trace{first, second} {
		if err := recorder.Record("test", 0, trace); err != nil {
			t.Fatalf("failed to record trace: %v", err)
		}
	}
	return path.Join(dir, "traces", "test_0.jsonl")
}

func TestExplorerLoadsTraces(t *testing.T) {
	e, err := NewExplorer(recordTestTraces(t))
	if err != nil {
		t.Fatalf("failed to create explorer: %v", err)
	}
	if len(e.Traces) != 2 {
		t.Fatalf("incorrect number of traces: %d", len(e.Traces))
	}

	summaries := e.Summaries()
	if summaries[0].Steps != 2 || summaries[0].TotalCost != 4 || !summaries[0].Truncated {
		t.Errorf("incorrect first summary: %+v", summaries[0])
	}
	if summaries[1].Steps != 1 || !summaries[1].Terminated {
		t.Errorf("incorrect second summary: %+v", summaries[1])
	}

	trace, ok := e.Trace(1)
	if !ok || trace.Len() != 1 {
		t.Errorf("incorrect trace for episode 1")
	}
	if _, ok := e.Trace(5); ok {
		t.Errorf("out of range episode should not return a trace")
	}
}

func TestExplorerMissingFile(t *testing.T) {
	if _, err := NewExplorer("does-not-exist.jsonl"); err == nil {
		t.Errorf("expected an error for a missing traces file")
	}
}
