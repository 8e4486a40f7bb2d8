// File: errors.go
// Role: sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context by wrapping ("<Method>: <detail>: <sentinel>").
//   - Validation order: sizes, then probabilities, then RNG presence, then
//     construction attempts.

package builder

import "github.com/cockroachdb/errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is below the minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder exhausted its attempts or was
// handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates ByName received a name it does not know.
var ErrUnknownTopology = errors.New("builder: unknown topology")

// ErrOptionViolation indicates an invalid enum-like argument (e.g. an
// unknown PlatonicName) that must surface as an error rather than a panic.
var ErrOptionViolation = errors.New("builder: invalid option value")
