package clique

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/eqcover/subset"
)

// Sentinel errors for catalog construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrCliqueTooLarge is returned when a maximal clique exceeds MaxCliqueSize.
	ErrCliqueTooLarge = errors.New("clique: maximal clique too large")

	// ErrUnknownVertex is returned when a clique names a vertex not in the graph.
	ErrUnknownVertex = errors.New("clique: unknown vertex")

	// ErrNotClique is returned when a group contains a non-adjacent pair.
	ErrNotClique = errors.New("clique: vertices are not pairwise adjacent")

	// ErrEmptyClique is returned when an explicit clique list contains an empty group.
	ErrEmptyClique = errors.New("clique: empty clique")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("clique: invalid option supplied")
)

// Option configures catalog construction via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// Options holds the parameters of Build.
type Options struct {
	// Ctx allows cancellation of the exponential expansion.
	Ctx context.Context

	// Parallelism bounds the number of concurrent expansion workers.
	Parallelism int

	// MaxCliqueSize rejects graphs whose largest maximal clique is bigger.
	MaxCliqueSize int

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Parallelism = runtime.GOMAXPROCS(0)
//   - MaxCliqueSize = subset.MaxItems
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Parallelism:   runtime.GOMAXPROCS(0),
		MaxCliqueSize: subset.MaxItems,
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

// WithParallelism sets the number of expansion workers (n ≥ 1).
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = errors.Wrapf(ErrOptionViolation, "parallelism must be ≥ 1 (got %d)", n)
			return
		}
		o.Parallelism = n
	}
}

// WithMaxCliqueSize bounds the size of maximal cliques accepted by Build.
// Values above subset.MaxItems are clamped to it.
func WithMaxCliqueSize(k int) Option {
	return func(o *Options) {
		switch {
		case k < 1:
			o.err = errors.Wrapf(ErrOptionViolation, "max clique size must be ≥ 1 (got %d)", k)
		case k > subset.MaxItems:
			o.MaxCliqueSize = subset.MaxItems
		default:
			o.MaxCliqueSize = k
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.err
}
