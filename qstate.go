package qcircuit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/theapemachine/errnie"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// maxQubits bounds the state vectors a caller can ask for directly.
const maxQubits = 30

/*
QuantumState is a state vector over 2^n computational basis states for n
qubits. Index i of the vector holds the amplitude of the basis state whose
big-endian binary form, zero padded to n bits, is i.

The vector is normalized after construction and after every successful call
to Normalize. Reset is the one exception: it replaces the vector without
normalizing, and the state stays un-normalized (IsNormalized reports false)
until the caller normalizes it again.

Each QuantumState owns its vector; slices passed in or handed out are
copies. Reads are mutually exclusive with Reset and Normalize.
*/
type QuantumState struct {
	mu         sync.RWMutex
	qubits     int
	vector     []complex128
	normalized bool
	cfg        *Config
}

// StateOption configures a QuantumState at construction.
type StateOption func(*QuantumState)

// WithConfig replaces the whole configuration of the state.
func WithConfig(cfg *Config) StateOption {
	return func(qs *QuantumState) {
		if cfg != nil {
			copied := *cfg
			qs.cfg = &copied
		}
	}
}

func WithTolerance(tolerance float64) StateOption {
	return func(qs *QuantumState) {
		qs.cfg.Tolerance = tolerance
	}
}

func WithPrecision(precision int) StateOption {
	return func(qs *QuantumState) {
		qs.cfg.Precision = precision
	}
}

/*
NewQuantumState builds a state over qubits qubits. A nil vector yields the
basis state |0...0>. Otherwise the vector must hold exactly 2^qubits
amplitudes; it is copied and normalized, so an all-zero vector fails with
ErrZeroNorm.
*/
func NewQuantumState(
	vector []complex128,
	qubits int,
	opts ...StateOption,
) (*QuantumState, error) {
	errnie.Info("NewQuantumState - qubits %d, amplitudes %d", qubits, len(vector))

	if qubits < 1 || qubits > maxQubits {
		return nil, fmt.Errorf("qubit number %d outside [1, %d]: %w", qubits, maxQubits, ErrDimension)
	}

	qs := &QuantumState{
		qubits: qubits,
		cfg:    NewConfig(),
	}
	for _, opt := range opts {
		opt(qs)
	}

	if vector == nil {
		qs.vector = basisVector(qubits)
	} else {
		if err := checkLength(len(vector), qubits); err != nil {
			return nil, err
		}
		qs.vector = append([]complex128(nil), vector...)
	}

	if err := qs.normalizeLocked(); err != nil {
		return nil, err
	}
	return qs, nil
}

/*
NewQuantumStateFromMatrix builds a state from a row or column matrix. A
matrix with more than one row and more than one column is not a vector and
fails with ErrDimension.
*/
func NewQuantumStateFromMatrix(
	m mat.CMatrix,
	qubits int,
	opts ...StateOption,
) (*QuantumState, error) {
	r, c := m.Dims()
	if r > 1 && c > 1 {
		return nil, fmt.Errorf("%dx%d matrix is not a vector: %w", r, c, ErrDimension)
	}

	vector := make([]complex128, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			vector = append(vector, m.At(i, j))
		}
	}
	return NewQuantumState(vector, qubits, opts...)
}

/*
Reset replaces the amplitudes while keeping the qubit number. A nil vector
resets to |0...0>. The new vector is committed as given, without
normalization; call Normalize to restore the unit norm.
*/
func (qs *QuantumState) Reset(vector []complex128) error {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	errnie.Info("Reset - qubits %d, amplitudes %d", qs.qubits, len(vector))

	if vector == nil {
		qs.vector = basisVector(qs.qubits)
		qs.normalized = true
		return nil
	}

	if err := checkLength(len(vector), qs.qubits); err != nil {
		return err
	}

	qs.vector = append([]complex128(nil), vector...)
	qs.normalized = math.Abs(cmplxs.Norm(qs.vector, 2)-1) <= qs.cfg.Tolerance
	return nil
}

/*
Normalize divides every amplitude by the L2 norm of the vector. A zero
vector fails with ErrZeroNorm and is left untouched.
*/
func (qs *QuantumState) Normalize() error {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	return qs.normalizeLocked()
}

func (qs *QuantumState) normalizeLocked() error {
	norm := cmplxs.Norm(qs.vector, 2)
	if norm == 0 {
		return fmt.Errorf("normalize %d amplitudes: %w", len(qs.vector), ErrZeroNorm)
	}

	cmplxs.Scale(complex(1/norm, 0), qs.vector)
	qs.normalized = true
	return nil
}

/*
IsNormalized reports whether the unit-norm invariant currently holds. It is
false only between a Reset with an un-normalized vector and the next
successful Normalize.
*/
func (qs *QuantumState) IsNormalized() bool {
	qs.mu.RLock()
	defer qs.mu.RUnlock()

	return qs.normalized
}

/*
InnerProduct returns ⟨qs|other⟩ = Σ conj(aᵢ)·bᵢ, conjugating the receiver.
States with different vector lengths fail with ErrDimensionMismatch.
*/
func (qs *QuantumState) InnerProduct(other *QuantumState) (complex128, error) {
	b := other.Amplitudes()

	qs.mu.RLock()
	defer qs.mu.RUnlock()

	if len(qs.vector) != len(b) {
		return 0, fmt.Errorf(
			"inner product of %d and %d amplitudes: %w",
			len(qs.vector), len(b), ErrDimensionMismatch,
		)
	}

	return cmplxs.Dot(qs.vector, b), nil
}

/*
TensorProduct returns the composite state qs ⊗ other. The receiver's qubits
become the most significant bits of the result, which is normalized like any
constructed state. It fails with ErrDimension when the combined qubit count
exceeds the constructor bound, and with ErrZeroNorm when an operand was
Reset to the zero vector.
*/
func (qs *QuantumState) TensorProduct(other *QuantumState) (*QuantumState, error) {
	b := other.Amplitudes()
	bQubits := other.QubitNumber()

	qs.mu.RLock()
	defer qs.mu.RUnlock()

	errnie.Info("TensorProduct - qubits %d x %d", qs.qubits, bQubits)

	qubits := qs.qubits + bQubits
	if qubits > maxQubits {
		return nil, fmt.Errorf(
			"tensor product of %d and %d qubits exceeds %d: %w",
			qs.qubits, bQubits, maxQubits, ErrDimension,
		)
	}

	vector := make([]complex128, 0, len(qs.vector)*len(b))
	for _, a := range qs.vector {
		for _, amp := range b {
			vector = append(vector, a*amp)
		}
	}

	cfg := *qs.cfg
	out := &QuantumState{
		qubits: qubits,
		vector: vector,
		cfg:    &cfg,
	}
	if err := out.normalizeLocked(); err != nil {
		return nil, fmt.Errorf("tensor product: %w", err)
	}
	return out, nil
}

// Clone returns an independent copy of the state.
func (qs *QuantumState) Clone() *QuantumState {
	qs.mu.RLock()
	defer qs.mu.RUnlock()

	cfg := *qs.cfg
	return &QuantumState{
		qubits:     qs.qubits,
		vector:     append([]complex128(nil), qs.vector...),
		normalized: qs.normalized,
		cfg:        &cfg,
	}
}

func (qs *QuantumState) QubitNumber() int {
	qs.mu.RLock()
	defer qs.mu.RUnlock()

	return qs.qubits
}

// Amplitudes returns a copy of the state vector.
func (qs *QuantumState) Amplitudes() []complex128 {
	qs.mu.RLock()
	defer qs.mu.RUnlock()

	return append([]complex128(nil), qs.vector...)
}

// Amplitude returns the amplitude of basis state i.
func (qs *QuantumState) Amplitude(i int) complex128 {
	qs.mu.RLock()
	defer qs.mu.RUnlock()

	return qs.vector[i]
}

// Norm returns the L2 norm of the state vector.
func (qs *QuantumState) Norm() float64 {
	qs.mu.RLock()
	defer qs.mu.RUnlock()

	return cmplxs.Norm(qs.vector, 2)
}

/*
Dirac renders the state in bra-ket form, e.g. "(0.7+0i)|00>+(0.7+0i)|11>".
Only basis states with a non-zero amplitude are listed.
*/
func (qs *QuantumState) Dirac() string {
	qs.mu.RLock()
	defer qs.mu.RUnlock()

	terms := make([]string, 0, len(qs.vector))
	for i, amp := range qs.vector {
		if amp == 0 {
			continue
		}
		terms = append(terms, qs.formatAmplitude(amp)+"|"+BasisLabel(i, qs.qubits)+">")
	}
	return strings.Join(terms, "+")
}

// String renders the raw amplitude vector.
func (qs *QuantumState) String() string {
	qs.mu.RLock()
	defer qs.mu.RUnlock()

	amps := make([]string, len(qs.vector))
	for i, amp := range qs.vector {
		amps[i] = qs.formatAmplitude(amp)
	}
	return "[" + strings.Join(amps, " ") + "]"
}

func (qs *QuantumState) formatAmplitude(amp complex128) string {
	return strconv.FormatComplex(amp, 'g', qs.cfg.Precision, 128)
}

// BasisLabel returns the big-endian bitstring of basis index i, zero padded
// to qubits bits.
func BasisLabel(i, qubits int) string {
	return fmt.Sprintf("%0*b", qubits, i)
}

func basisVector(qubits int) []complex128 {
	vector := make([]complex128, 1<<qubits)
	vector[0] = 1
	return vector
}

func checkLength(length, qubits int) error {
	if want := 1 << qubits; length != want {
		return fmt.Errorf(
			"%d amplitudes for %d qubits, want %d: %w",
			length, qubits, want, ErrDimension,
		)
	}
	return nil
}
