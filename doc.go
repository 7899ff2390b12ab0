// Package mac computes the Modal Assurance Criterion (MAC), the standard
// similarity measure between mode shapes in structural dynamics.
//
// The MAC between two mode shapes is the squared cosine of the angle between
// them: 1 means the shapes are perfectly correlated, 0 means they are
// orthogonal. Computing it across every pair of modes from two sets (for
// example, experimental vs. numerical modal analyses) yields a correlation
// matrix used to validate models and pair modes.
//
// Basic usage:
//
//	exp, err := mac.ModeSetFromColumns(experimentalModes)
//	num, err := mac.ModeSetFromColumns(numericalModes)
//	result, err := mac.Compute(exp, num, mac.DefaultConfig())
//	// result.At(i, j) is the MAC between experimental mode i and numerical mode j
//	// result.BestMatches() pairs each experimental mode with its closest numerical one
//
// Mode sets load from gonum matrices with [ModeSetFromDense], and results
// export back with [Matrix.Dense].
//
// # Degenerate modes
//
// The MAC formula is undefined for an all-zero mode shape (0/0). By default
// Compute rejects such inputs with [ErrDegenerateMode]; set
// Config.DegeneratePolicy to emit NaN or 0 instead. A true zero in the
// result always means orthogonality, never a degenerate input.
//
// # Rendering
//
// Computation and display are independent: [Render] consumes a computed
// matrix read-only and produces a raster heatmap and an annotated text
// table. Invalid display options fall back to documented defaults instead of
// failing, and are reported on the returned Figure.
package mac
