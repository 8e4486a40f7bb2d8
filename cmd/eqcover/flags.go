package main

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/eqcover/builder"
)

var (
	TopologyFlag = cli.StringFlag{
		Name:    "topology",
		Aliases: []string{"t"},
		Usage:   "graph family to generate (" + strings.Join(builder.Topologies(), ", ") + ")",
		Value:   "complete",
	}
	SizeFlag = cli.IntFlag{
		Name:  "n",
		Usage: "primary size of the topology (vertices, rows, left side)",
		Value: 4,
	}
	SecondSizeFlag = cli.IntFlag{
		Name:  "m",
		Usage: "secondary size (bipartite right side, grid columns, regular degree)",
		Value: 2,
	}
	ProbabilityFlag = cli.Float64Flag{
		Name:  "p",
		Usage: "edge probability of the random topology",
		Value: 0.5,
	}
	SeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the random topologies",
		Value: 1,
	}
	IDSchemeFlag = cli.StringFlag{
		Name:  "ids",
		Usage: "vertex naming scheme (decimal, letters, symbols, alnum, hex)",
		Value: "decimal",
	}
	MaxCliqueFlag = cli.IntFlag{
		Name:  "max-clique",
		Usage: "refuse maximal cliques larger than this (0: library default)",
	}
	WorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "catalog expansion workers (0: GOMAXPROCS)",
	}
	TimeoutFlag = cli.DurationFlag{
		Name:  "timeout",
		Usage: "overall timeout of the covering run (0: none)",
	}
)
