// SPDX-License-Identifier: MIT

// Command lvcover solves, generates and benchmarks minimum vertex cover
// instances.
//
//	lvcover solve graph.txt --algo tabu --seed 42 --render cover.png
//	lvcover generate --model barabasi-albert --n 30 --seed 42 --out g.txt
//	lvcover experiment --config experiment.yaml
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
