package cover

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"

	"github.com/katalvlaran/eqcover/clique"
)

// Sentinel errors for covering construction and verification.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("cover: graph is nil")

	// ErrCatalogNil is returned if a nil catalog is passed.
	ErrCatalogNil = errors.New("cover: catalog is nil")

	// ErrCatalogMismatch is returned when the catalog was indexed over a
	// different vertex or edge set than the graph.
	ErrCatalogMismatch = errors.New("cover: catalog does not match graph")

	// ErrNoSuitableClique signals that neither a priority nor a filler clique
	// exists while the round still misses vertices. It is always raised as an
	// assertion failure.
	ErrNoSuitableClique = errors.New("cover: no suitable clique")

	// ErrNotPartition is returned by VerifyPartition for a defective round.
	ErrNotPartition = errors.New("cover: round is not a vertex partition")
)

// Round is one vertex partition into cliques, in selection order.
type Round []clique.Clique

// String renders the round as "[{A,B} {C}]".
func (r Round) String() string {
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Covering is the ordered list of rounds.
type Covering []Round

// Stats summarizes a Covering.
type Stats struct {
	Rounds       int // number of rounds
	Groups       int // total number of cliques over all rounds
	LargestGroup int // size of the largest clique
	Singletons   int // cliques of size 1
}

// Option configures BuildRounds and Find via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for the round builder.
type Options struct {
	// Ctx allows cancellation; checked once per pick.
	Ctx context.Context

	// OnPick is called after each selection with the round index, the
	// clique taken and whether it was a priority pick.
	OnPick func(round int, c clique.Clique, priority bool)

	// OnRound is called after each completed round.
	OnRound func(i int, r Round)

	// Logger receives progress messages; nil keeps the builder silent.
	Logger *logging.Logger

	// CatalogOptions are forwarded to clique.Build by Find.
	CatalogOptions []clique.Option
}

// DefaultOptions returns Options with a background context, no-op hooks,
// no logger and default catalog options.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnPick:  func(int, clique.Clique, bool) {},
		OnRound: func(int, Round) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPick registers a callback run after every selection.
func WithOnPick(fn func(round int, c clique.Clique, priority bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPick = fn
		}
	}
}

// WithOnRound registers a callback run after every completed round.
func WithOnRound(fn func(i int, r Round)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithLogger routes progress messages to l.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithCatalogOptions forwards options to clique.Build when used with Find.
func WithCatalogOptions(opts ...clique.Option) Option {
	return func(o *Options) {
		o.CatalogOptions = append(o.CatalogOptions, opts...)
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
