package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/eqcover/builder"
	"github.com/katalvlaran/eqcover/clique"
	"github.com/katalvlaran/eqcover/core"
	"github.com/katalvlaran/eqcover/cover"
	"github.com/katalvlaran/eqcover/logger"
)

// config is the parsed command line.
type config struct {
	topology  string
	params    builder.Params
	seed      int64
	ids       string
	maxClique int
	workers   int
	timeout   time.Duration
	logLevel  string
}

func newConfig(c *cli.Context) config {
	return config{
		topology: c.String(TopologyFlag.Name),
		params: builder.Params{
			N: c.Int(SizeFlag.Name),
			M: c.Int(SecondSizeFlag.Name),
			P: c.Float64(ProbabilityFlag.Name),
		},
		seed:      c.Int64(SeedFlag.Name),
		ids:       c.String(IDSchemeFlag.Name),
		maxClique: c.Int(MaxCliqueFlag.Name),
		workers:   c.Int(WorkersFlag.Name),
		timeout:   c.Duration(TimeoutFlag.Name),
		logLevel:  c.String(logger.LogLevelFlag.Name),
	}
}

func (cfg config) catalogOptions() []clique.Option {
	var opts []clique.Option
	if cfg.workers > 0 {
		opts = append(opts, clique.WithParallelism(cfg.workers))
	}
	if cfg.maxClique > 0 {
		opts = append(opts, clique.WithMaxCliqueSize(cfg.maxClique))
	}
	return opts
}

func run(c *cli.Context) error {
	cfg := newConfig(c)
	log := logger.NewLogger(cfg.logLevel, "eqcover")

	g, err := buildGraph(cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}
	log.Infof("generated %s graph: %d vertices, %d edges", cfg.topology, g.VertexCount(), g.EdgeCount())

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	start := time.Now()
	cov, err := cover.Find(g,
		cover.WithContext(ctx),
		cover.WithLogger(log),
		cover.WithCatalogOptions(cfg.catalogOptions()...),
	)
	if err != nil {
		return cli.Exit(fmt.Sprintf("covering failed: %v", err), 1)
	}
	elapsed := time.Since(start)

	if !cover.Verify(cov, g) {
		return cli.Exit("covering failed verification", 1)
	}
	if err := cover.VerifyPartition(cov, g); err != nil {
		return cli.Exit(fmt.Sprintf("covering is not a partition: %v", err), 1)
	}

	w := c.App.Writer
	printCovering(w, cov)
	printSummary(w, g, cover.Summarize(cov), elapsed)

	return nil
}

func buildGraph(cfg config) (*core.Graph, error) {
	idFn, err := builder.IDScheme(cfg.ids)
	if err != nil {
		return nil, err
	}
	cons, err := builder.ByName(cfg.topology, cfg.params)
	if err != nil {
		return nil, err
	}

	return builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(idFn), builder.WithSeed(cfg.seed)},
		cons,
	)
}

func printCovering(w io.Writer, cov cover.Covering) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Round", "Groups", "Cliques"})
	for i, r := range cov {
		t.AppendRow(table.Row{i + 1, len(r), r.String()})
	}
	t.Render()
}

func printSummary(w io.Writer, g *core.Graph, s cover.Stats, elapsed time.Duration) {
	h, m, sec := logger.ParseTime(elapsed)
	fmt.Fprintf(w, "%d vertices, %d edges: %d rounds, %d groups (largest %d, %d singletons) in %02d:%02d:%02d\n",
		g.VertexCount(), g.EdgeCount(), s.Rounds, s.Groups, s.LargestGroup, s.Singletons, h, m, sec)
}
