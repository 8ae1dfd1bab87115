package benchmarks

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stable-rl/simzoo/cartpole"
	"github.com/stable-rl/simzoo/policies"
	"github.com/stable-rl/simzoo/types"
)

func CartPoleBenchmark(episodes, horizon, runs int, saveFile string, taskType, referenceType string, gain float64, ctx context.Context) error {
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

	newEnv := func() (*cartpole.CartPole, error) {
		config := cartpole.DefaultConfig()
		config.TaskType = cartpole.TaskType(taskType)
		config.ReferenceType = cartpole.ReferenceType(referenceType)
		return cartpole.New(config)
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
	// Feedback on the pole angle.
	c.AddExperiment(types.NewExperiment(
		"Proportional",
		policies.NewProportionalPolicy(propEnv.ActionSpace(), gain, 2),
		types.NewTimeLimit(propEnv, horizon),
	))

	c.Run(ctx)
	return nil
}

func CartPoleCommand() *cobra.Command {
	var taskType string
	var referenceType string
	var gain float64

	cmd := &cobra.Command{
		Use:   "cartpole",
		Short: "Compare baseline policies on the cost-based cart-pole",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := CartPoleBenchmark(episodes, horizon, runs, saveFile, taskType, referenceType, gain, context.Background()); err != nil {
				return fmt.Errorf("cartpole benchmark failed: %w", err)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&taskType, "task", "stabilization", "Task type (stabilization or reference_tracking)")
	cmd.PersistentFlags().StringVar(&referenceType, "reference", "constant", "Reference type (periodic or constant)")
	cmd.PersistentFlags().Float64Var(&gain, "gain", 20, "Gain of the proportional baseline policy")
	return cmd
}
