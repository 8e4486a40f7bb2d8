// File: api.go
// Role: the public entry point (BuildGraph) and the Constructor contract.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...) creates g, resolves
//     cfg and runs cons in order.
//   - Functional options resolve into an immutable builderConfig.
//   - Same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/eqcover/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first, return wrapped
// sentinel errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts and applies all constructors in order.
// The first constructor error is returned wrapped with "BuildGraph"; the
// partially built graph is discarded.
//
// Complexity: O(len(bopts)) plus the sum of constructor costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return g, nil
}
