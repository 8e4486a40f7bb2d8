// File: impl_random_sparse.go
// Role: RandomSparse(n, p), an Erdős–Rényi G(n,p) fixture.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource);
//     p = 0 and p = 1 are deterministic without it.
//   - Each unordered pair {i,j}, i<j, is kept independently with probability p.
//
// Complexity: O(n²) pair checks.
// Determinism: pairs are visited in (i,j) order, one draw per pair.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/eqcover/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that builds G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, "n", n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return errors.Wrapf(ErrInvalidProbability, "%s: p=%.6f not in [%.1f,%.1f]",
				methodRandomSparse, p, probMin, probMax)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return errors.Wrapf(ErrNeedRandSource, "%s", methodRandomSparse)
		}

		ids, err := addVertices(g, methodRandomSparse, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case rng == nil:
					keep = p == probMax
				default:
					keep = rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
