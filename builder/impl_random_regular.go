// File: impl_random_regular.go
// Role: RandomRegular(n, d), a random d-regular simple graph.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   - cfg.rng is required (else ErrNeedRandSource).
//   - Stub matching with bounded retries; ErrConstructFailed when every
//     attempt produced a loop or a parallel edge.
//
// Complexity: O(n·d) per attempt, at most maxStubMatchingAttempts attempts.
// Determinism: one shuffle per attempt from cfg.rng.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/eqcover/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 64
)

// RandomRegular returns a Constructor that builds a d-regular graph on n vertices.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRRVertices {
			return tooFew(methodRandomRegular, "n", n, minRRVertices)
		}
		if d < 0 || d >= n {
			return errors.Wrapf(ErrTooFewVertices, "%s: degree must be in [0,%d), got %d", methodRandomRegular, n, d)
		}
		if (n*d)%2 != 0 {
			return errors.Wrapf(ErrTooFewVertices, "%s: n*d must be even (n=%d, d=%d)", methodRandomRegular, n, d)
		}
		if cfg.rng == nil {
			return errors.Wrapf(ErrNeedRandSource, "%s", methodRandomRegular)
		}

		ids, err := addVertices(g, methodRandomRegular, n, cfg.idFn)
		if err != nil {
			return err
		}
		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simpleMatching(stubs) {
				continue
			}
			for i := 0; i < stubCount; i += 2 {
				if err = addEdge(g, methodRandomRegular, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
					return err
				}
			}
			return nil
		}

		return errors.Wrapf(ErrConstructFailed, "%s: no simple matching after %d attempts",
			methodRandomRegular, maxStubMatchingAttempts)
	}
}

// simpleMatching reports whether consecutive stub pairs form no loop and no
// repeated pair.
func simpleMatching(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
