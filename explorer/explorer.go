// Package explorer serves recorded episode traces over HTTP so the
// outcome of a benchmark run can be inspected after the fact.
package explorer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/stable-rl/simzoo/types"
)

// Explorer loads recorded traces from a jsonl file and answers
// queries about them.
type Explorer struct {
	TracesFile string
	Traces     []*types.Trace
}

// NewExplorer creates an explorer of recorded traces
func NewExplorer(tracesFile string) (*Explorer, error) {
	traces, err := readTraces(tracesFile)
	if err != nil {
		return nil, err
	}
	return &Explorer{
		TracesFile: tracesFile,
		Traces:     traces,
	}, nil
}

func readTraces(path string) ([]*types.Trace, error) {
	traces := make([]*types.Trace, 0)
	file, err := os.Open(path)
	if err != nil {
		return traces, fmt.Errorf("error reading file: %s", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	maxTraceSize := 5 * 1024 * 1024
	scanner.Buffer(make([]byte, maxTraceSize), maxTraceSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		t := types.NewTrace()
		if err := json.Unmarshal(line, t); err != nil {
			return traces, fmt.Errorf("error parsing file: %s", err)
		}
		traces = append(traces, t)
	}
	if err := scanner.Err(); err != nil {
		return traces, fmt.Errorf("error reading file: %s", err)
	}
	return traces, nil
}

// Summary of a single recorded episode
type Summary struct {
	Episode    int     `json:"episode"`
	Steps      int     `json:"steps"`
	TotalCost  float64 `json:"total_cost"`
	MeanCost   float64 `json:"mean_cost"`
	Terminated bool    `json:"terminated"`
	Truncated  bool    `json:"truncated"`
}

// Summaries returns one summary per recorded episode
func (e *Explorer) Summaries() []Summary {
	summaries := make([]Summary, len(e.Traces))
	for i, t := range e.Traces {
		s := Summary{
			Episode:   i,
			Steps:     t.Len(),
			TotalCost: t.TotalCost(),
			MeanCost:  t.MeanCost(),
		}
		if last, ok := t.Last(); ok {
			s.Terminated = last.Terminated
			s.Truncated = last.Truncated
		}
		summaries[i] = s
	}
	return summaries
}

// Trace returns the full trace of the given episode
func (e *Explorer) Trace(episode int) (*types.Trace, bool) {
	if episode < 0 || episode >= len(e.Traces) {
		return nil, false
	}
	return e.Traces[episode], true
}
