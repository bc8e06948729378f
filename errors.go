package qcircuit

import "errors"

/*
Errors returned by gate and state operations. They are always returned
wrapped with the offending values, so match them with errors.Is.
*/
var (
	// ErrDimension is returned when a supplied vector is not rank one, or
	// its length is not 2^qubits for the requested qubit count.
	ErrDimension = errors.New("qcircuit: invalid state dimension")

	// ErrZeroNorm is returned when normalizing a vector whose L2 norm is 0.
	ErrZeroNorm = errors.New("qcircuit: state vector has zero norm")

	// ErrDimensionMismatch is returned when two operands have incompatible
	// lengths or shapes.
	ErrDimensionMismatch = errors.New("qcircuit: dimension mismatch")

	// ErrInvalidParameter is returned when a gate parameter is NaN or ±Inf.
	ErrInvalidParameter = errors.New("qcircuit: invalid gate parameter")
)
