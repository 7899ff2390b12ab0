package mac

import (
	"fmt"
	"math"
	"runtime"

	"gonum.org/v1/gonum/floats"
)

// DegeneratePolicy selects how zero-norm mode shapes are handled. The MAC
// formula divides by the product of the two squared norms, so any pairing
// that involves an all-zero mode is undefined (0/0).
type DegeneratePolicy string

const (
	// DegenerateError rejects the computation with ErrDegenerateMode,
	// identifying the offending set and mode index. This is the default:
	// an all-zero mode shape is a data-quality problem worth surfacing,
	// distinct from a true zero MAC value (which means orthogonality).
	DegenerateError DegeneratePolicy = "error"

	// DegenerateNaN emits NaN for every pairing that involves a zero-norm
	// mode, leaving all other entries intact.
	DegenerateNaN DegeneratePolicy = "nan"

	// DegenerateZero emits 0 for every pairing that involves a zero-norm
	// mode. Note that this makes degenerate pairings indistinguishable from
	// genuinely orthogonal ones.
	DegenerateZero DegeneratePolicy = "zero"
)

// Config controls MAC computation behavior.
// The zero value is usable; start with [DefaultConfig] to be explicit.
type Config struct {
	// DegeneratePolicy selects the handling of zero-norm mode shapes.
	// Default: DegenerateError.
	DegeneratePolicy DegeneratePolicy

	// Workers controls the number of goroutines used for the pairwise loop.
	// Every (i, j) pair is independent, so the loop parallelizes without
	// synchronization; the parallel result is bitwise identical to the
	// sequential one. 1 forces sequential computation. 0 means
	// runtime.NumCPU(). Default: 0 (auto).
	Workers int
}

// DefaultConfig returns a Config with the default policies.
func DefaultConfig() Config {
	return Config{DegeneratePolicy: DegenerateError}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.DegeneratePolicy == "" {
		cfg.DegeneratePolicy = DegenerateError
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	switch cfg.DegeneratePolicy {
	case DegenerateError, DegenerateNaN, DegenerateZero:
		// valid
	default:
		return fmt.Errorf("mac: invalid DegeneratePolicy %q", cfg.DegeneratePolicy)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("mac: Workers must be >= 0, got %d", cfg.Workers)
	}
	return nil
}

// Compute computes the Modal Assurance Criterion between every mode of a and
// every mode of b:
//
//	MAC(i,j) = <a_i, b_j>² / (<a_i, a_i> · <b_j, b_j>)
//
// the squared cosine of the angle between the two shapes. The result is an
// a.Count()×b.Count() matrix whose entries lie in [0, 1] for finite,
// non-zero inputs: 1 means the shapes are collinear, 0 means orthogonal.
//
// Both sets must have the same vector length; otherwise Compute fails with
// ErrShapeMismatch. Zero-norm modes are handled per cfg.DegeneratePolicy.
// Compute is a pure function: it never mutates its inputs and identical
// inputs always produce identical output, regardless of cfg.Workers.
func Compute(a, b *ModeSet, cfg Config) (*Matrix, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("mac: nil mode set")
	}
	if a.length != b.length {
		return nil, fmt.Errorf("mac: cannot compare mode shapes of length %d with length %d: %w",
			a.length, b.length, ErrShapeMismatch)
	}

	normsA, err := squaredNorms(a, 1, cfg.DegeneratePolicy)
	if err != nil {
		return nil, err
	}
	normsB, err := squaredNorms(b, 2, cfg.DegeneratePolicy)
	if err != nil {
		return nil, err
	}

	sentinel := 0.0
	if cfg.DegeneratePolicy == DegenerateNaN {
		sentinel = math.NaN()
	}

	result := newMatrix(a.count, b.count)
	if cfg.Workers > 1 {
		computeRowsParallel(result, a, b, normsA, normsB, sentinel, cfg.Workers)
	} else {
		computeRows(result, a, b, normsA, normsB, sentinel, 0, result.rows)
	}
	return result, nil
}

// SelfCompare computes the MAC of a mode set against itself (AutoMAC). The
// result is square with a diagonal of exactly 1 for non-degenerate modes;
// large off-diagonal values flag modes that are not spatially distinct.
func SelfCompare(a *ModeSet, cfg Config) (*Matrix, error) {
	return Compute(a, a, cfg)
}

// squaredNorms computes <v, v> for every mode of s. Under DegenerateError
// policy, a zero squared norm fails with ErrDegenerateMode identifying the
// set (1 or 2) and the mode index.
func squaredNorms(s *ModeSet, set int, policy DegeneratePolicy) ([]float64, error) {
	norms := make([]float64, s.count)
	for j := 0; j < s.count; j++ {
		v := s.Mode(j)
		norms[j] = floats.Dot(v, v)
		if norms[j] == 0 && policy == DegenerateError {
			return nil, fmt.Errorf("mac: mode %d of set %d: %w", j, set, ErrDegenerateMode)
		}
	}
	return norms, nil
}

// computeRows fills result rows [start, end). Pairings involving a zero-norm
// mode get the sentinel value; everything else follows the MAC formula.
func computeRows(dst *Matrix, a, b *ModeSet, normsA, normsB []float64, sentinel float64, start, end int) {
	for i := start; i < end; i++ {
		ai := a.Mode(i)
		na := normsA[i]
		row := dst.data[i*dst.cols : (i+1)*dst.cols]
		for j := 0; j < dst.cols; j++ {
			if na == 0 || normsB[j] == 0 {
				row[j] = sentinel
				continue
			}
			d := floats.Dot(ai, b.Mode(j))
			row[j] = d * d / (na * normsB[j])
		}
	}
}
