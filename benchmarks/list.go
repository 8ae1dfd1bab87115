package benchmarks

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stable-rl/simzoo/envs"
)

func ListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered environments",
		Run: func(cmd *cobra.Command, args []string) {
			for _, id := range envs.Registered() {
				spec, err := envs.Lookup(id)
				if err != nil {
					continue
				}
				fmt.Printf("%s:%s (max episode steps: %d)\n", envs.Namespace, spec.ID, spec.MaxEpisodeSteps)
			}
		},
	}
}
