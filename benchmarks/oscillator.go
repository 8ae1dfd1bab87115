package benchmarks

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stable-rl/simzoo/oscillator"
	"github.com/stable-rl/simzoo/policies"
	"github.com/stable-rl/simzoo/types"
)

func OscillatorBenchmark(episodes, horizon, runs int, saveFile string, referenceType string, gain float64, ctx context.Context) error {
	recorder, err := traceRecorder()
	if err != nil {
		return err
	}

	c := types.NewComparison(&types.ComparisonConfig{
		Runs:       runs,
		Episodes:   episodes,
		Horizon:    horizon,
		RecordPath: saveFile,
		Recorder:   recorder,
	})
	c.AddAnalysis("Cost", types.NewCostAnalyzer(), types.CostPlotter(saveFile))
	c.AddAnalysis("Tracking", types.NewTrackingAnalyzer(), types.TrackingPlotter(saveFile))

	newEnv := func() (*oscillator.Oscillator, error) {
		config := oscillator.DefaultConfig()
		config.ReferenceType = oscillator.ReferenceType(referenceType)
		return oscillator.New(config)
	}

	randomEnv, err := newEnv()
	if err != nil {
		return err
	}
	c.AddExperiment(types.NewExperiment(
		"Random",
		types.NewRandomPolicy(randomEnv.ActionSpace()),
		types.NewTimeLimit(randomEnv, horizon),
	))

	zeroEnv, err := newEnv()
	if err != nil {
		return err
	}
	c.AddExperiment(types.NewExperiment(
		"Zero",
		policies.NewZeroPolicy(zeroEnv.ActionSpace()),
		types.NewTimeLimit(zeroEnv, horizon),
	))

	propEnv, err := newEnv()
	if err != nil {
		return err
	}
	// The reference error is the last observation component.
	errIndex := propEnv.ObservationSpace().Dim() - 1
	c.AddExperiment(types.NewExperiment(
		"Proportional",
		policies.NewProportionalPolicy(propEnv.ActionSpace(), gain, errIndex),
		types.NewTimeLimit(propEnv, horizon),
	))

	c.Run(ctx)
	return nil
}

func OscillatorCommand() *cobra.Command {
	var referenceType string
	var gain float64

	cmd := &cobra.Command{
		Use:   "oscillator",
		Short: "Compare baseline policies on the synthetic gene oscillator",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := OscillatorBenchmark(episodes, horizon, runs, saveFile, referenceType, gain, context.Background()); err != nil {
				return fmt.Errorf("oscillator benchmark failed: %w", err)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&referenceType, "reference", "periodic", "Reference type (periodic or constant)")
	cmd.PersistentFlags().Float64Var(&gain, "gain", 0.5, "Gain of the proportional baseline policy")
	return cmd
}
