package types

import (
	"fmt"
	"math"
	"os"
	"path"
	"strconv"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// CostAnalyzer collects the mean step cost of every episode
type CostAnalyzer struct {
	episodeCosts []float64
}

var _ Analyzer = &CostAnalyzer{}

func NewCostAnalyzer() *CostAnalyzer {
	return &CostAnalyzer{
		episodeCosts: make([]float64, 0),
	}
}

func (c *CostAnalyzer) Analyze(_ int, _ int, _ string, trace *Trace) {
	c.episodeCosts = append(c.episodeCosts, trace.MeanCost())
}

func (c *CostAnalyzer) DataSet() DataSet {
	out := make([]float64, len(c.episodeCosts))
	copy(out, c.episodeCosts)
	return out
}

func (c *CostAnalyzer) Reset() {
	c.episodeCosts = make([]float64, 0)
}

// TrackingAnalyzer collects the mean absolute reference error of
// every episode, read from the state_of_interest info value
type TrackingAnalyzer struct {
	episodeErrors []float64
}

var _ Analyzer = &TrackingAnalyzer{}

func NewTrackingAnalyzer() *TrackingAnalyzer {
	return &TrackingAnalyzer{
		episodeErrors: make([]float64, 0),
	}
}

func (t *TrackingAnalyzer) Analyze(_ int, _ int, _ string, trace *Trace) {
	errors := make([]float64, 0, trace.Len())
	for _, s := range trace.Steps {
		if s.Info == nil {
			continue
		}
		if soi, ok := s.Info["state_of_interest"].(float64); ok {
			errors = append(errors, math.Abs(soi))
		}
	}
	if len(errors) == 0 {
		t.episodeErrors = append(t.episodeErrors, 0)
		return
	}
	t.episodeErrors = append(t.episodeErrors, stat.Mean(errors, nil))
}

func (t *TrackingAnalyzer) DataSet() DataSet {
	out := make([]float64, len(t.episodeErrors))
	copy(out, t.episodeErrors)
	return out
}

func (t *TrackingAnalyzer) Reset() {
	t.episodeErrors = make([]float64, 0)
}

// CostPlotter plots the per-episode cost curve of every experiment
func CostPlotter(plotPath string) Comparator {
	return curvePlotter(plotPath, "cost", "Mean step cost")
}

// TrackingPlotter plots the per-episode reference error of every experiment
func TrackingPlotter(plotPath string) Comparator {
	return curvePlotter(plotPath, "tracking", "Mean reference error")
}

func curvePlotter(plotPath, suffix, yLabel string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, s []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = yLabel
		for i := 0; i < len(s); i++ {
			values := ds[i].([]float64)
			points := make(plotter.XYs, len(values))
			for j, v := range values {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(s[i], line)
			fmt.Printf("Mean over episodes: %.3f (%s) for benchmark: %s\n", stat.Mean(values, nil), suffix, s[i])
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_"+suffix+".png"))
	}
}
