package mac

import "errors"

// Sentinel errors returned by the engine. Callers match them with errors.Is;
// returned values carry additional context (dimensions, mode indices) via
// wrapping.
var (
	// ErrShapeMismatch indicates the two mode sets have different vector
	// lengths and their modes cannot be compared.
	ErrShapeMismatch = errors.New("mac: mode sets have different vector lengths")

	// ErrDegenerateMode indicates a mode shape with zero norm, for which the
	// MAC value is mathematically undefined (0/0). Returned only under
	// DegenerateError policy; see Config.DegeneratePolicy.
	ErrDegenerateMode = errors.New("mac: zero-norm mode shape")
)
