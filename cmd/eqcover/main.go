package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/eqcover/logger"
)

func main() {
	app := &cli.App{
		Name:     "eqcover",
		HelpName: "eqcover",
		Usage:    "cover the edges of a synthetic graph with rounds of disjoint cliques",
		Flags: []cli.Flag{
			&TopologyFlag,
			&SizeFlag,
			&SecondSizeFlag,
			&ProbabilityFlag,
			&SeedFlag,
			&IDSchemeFlag,
			&MaxCliqueFlag,
			&WorkersFlag,
			&TimeoutFlag,
			&logger.LogLevelFlag,
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
