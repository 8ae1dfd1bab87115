package main

import (
	"fmt"

	"github.com/stable-rl/simzoo/benchmarks"
	"github.com/stable-rl/simzoo/explorer"
)

// main entry point to all the benchmarks
func main() {
	rootCommand := benchmarks.GetRootCommand()
	rootCommand.AddCommand(explorer.ExplorerCommand())
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
