package qcircuit

/*
NewQubit returns the single-qubit state alpha|0⟩ + beta|1⟩, normalized.
*/
func NewQubit(alpha, beta complex128, opts ...StateOption) (*QuantumState, error) {
	return NewQuantumState([]complex128{alpha, beta}, 1, opts...)
}
