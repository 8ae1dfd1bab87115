package benchmarks

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stable-rl/simzoo/types"
)

var (
	episodes  int
	horizon   int
	saveFile  string
	runs      int
	redisAddr string
	record    bool
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "simzoo",
		Short: "Run cost-based simulation environment benchmarks",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 100, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 800, "Horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	rootCommand.PersistentFlags().BoolVar(&record, "record-traces", false, "Record the episode traces")
	rootCommand.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "Record traces to the redis instance at this address instead of files")
	// adding the subcommands here
	rootCommand.AddCommand(OscillatorCommand())
	rootCommand.AddCommand(CartPoleCommand())
	rootCommand.AddCommand(ListCommand())
	return rootCommand
}

// traceRecorder builds the configured trace recorder, nil when trace
// recording is off
func traceRecorder() (types.TraceRecorder, error) {
	if !record {
		return nil, nil
	}
	if redisAddr != "" {
		return types.NewRedisTraceRecorder(redisAddr, "simzoo"), nil
	}
	recorder, err := types.NewFileTraceRecorder(saveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to set up trace recording: %w", err)
	}
	return recorder, nil
}
