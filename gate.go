package qcircuit

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// GateKind identifies one of the gates in the catalog.
type GateKind int

const (
	IdentityGate GateKind = iota
	HadamardGate
	PauliXGate
	PauliYGate
	PauliZGate
	RotateXGate
	RotateYGate
	RotateZGate
	PhaseGate
	TGate
	CNOTGate
	SWAPGate
	ControlledRotateZGate
)

func (k GateKind) String() string {
	switch k {
	case IdentityGate:
		return "Identity"
	case HadamardGate:
		return "Hadamard"
	case PauliXGate:
		return "PauliX"
	case PauliYGate:
		return "PauliY"
	case PauliZGate:
		return "PauliZ"
	case RotateXGate:
		return "RotateX"
	case RotateYGate:
		return "RotateY"
	case RotateZGate:
		return "RotateZ"
	case PhaseGate:
		return "Phase"
	case TGate:
		return "TGate"
	case CNOTGate:
		return "CNOT"
	case SWAPGate:
		return "SWAP"
	case ControlledRotateZGate:
		return "ControlledRotateZ"
	default:
		return "Unknown"
	}
}

// qubits returns the fixed number of qubits a gate of this kind acts on.
func (k GateKind) qubits() int {
	switch k {
	case CNOTGate, SWAPGate, ControlledRotateZGate:
		return 2
	default:
		return 1
	}
}

/*
Gate is a unitary operator from the catalog. Every kind shares the same
representation; the kind and its parameter select the base matrix, and the
adjoint flag is applied uniformly when the matrix is built.

A Gate is owned by its caller and is not safe for concurrent mutation.
*/
type Gate struct {
	kind    GateKind
	qubits  int
	theta   float64
	k       int
	adjoint bool
}

func newGate(kind GateKind) *Gate {
	return &Gate{
		kind:   kind,
		qubits: kind.qubits(),
	}
}

// NewIdentity returns the single-qubit identity.
func NewIdentity() *Gate { return newGate(IdentityGate) }

// NewHadamard returns the single-qubit Hadamard gate.
func NewHadamard() *Gate { return newGate(HadamardGate) }

// NewPauliX returns the bit flip X.
func NewPauliX() *Gate { return newGate(PauliXGate) }

// NewPauliY returns the Pauli Y gate.
func NewPauliY() *Gate { return newGate(PauliYGate) }

// NewPauliZ returns the phase flip Z.
func NewPauliZ() *Gate { return newGate(PauliZGate) }

// NewPhase returns the S gate, diag(1, i).
func NewPhase() *Gate { return newGate(PhaseGate) }

// NewTGate returns the T gate, diag(1, e^{iπ/4}).
func NewTGate() *Gate { return newGate(TGate) }

// NewCNOT returns the two-qubit controlled NOT with the control on the
// most significant qubit.
func NewCNOT() *Gate { return newGate(CNOTGate) }

// NewSWAP returns the two-qubit gate exchanging |01> and |10>.
func NewSWAP() *Gate { return newGate(SWAPGate) }

// NewRotateX returns the rotation about the X axis by theta radians.
func NewRotateX(theta float64) (*Gate, error) {
	return newRotation(RotateXGate, theta)
}

// NewRotateY returns the rotation about the Y axis by theta radians.
func NewRotateY(theta float64) (*Gate, error) {
	return newRotation(RotateYGate, theta)
}

// NewRotateZ returns the rotation about the Z axis by theta radians.
func NewRotateZ(theta float64) (*Gate, error) {
	return newRotation(RotateZGate, theta)
}

func newRotation(kind GateKind, theta float64) (*Gate, error) {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return nil, fmt.Errorf("%s(%v): %w", kind, theta, ErrInvalidParameter)
	}

	g := newGate(kind)
	g.theta = theta
	return g, nil
}

/*
NewControlledRotateZ returns the two-qubit controlled phase gate that puts
exp(i·2π/2^k) on |11>. Any integer k yields a finite phase.
*/
func NewControlledRotateZ(k int) *Gate {
	g := newGate(ControlledRotateZGate)
	g.k = k
	return g
}

// Kind reports which catalog entry the gate is.
func (g *Gate) Kind() GateKind { return g.kind }

// QubitCount is 1 for single-qubit gates and 2 for CNOT, SWAP and CRz.
func (g *Gate) QubitCount() int { return g.qubits }

// Theta is the rotation angle; zero for gates without one.
func (g *Gate) Theta() float64 { return g.theta }

// K is the exponent index of a controlled Rz; zero for other gates.
func (g *Gate) K() int { return g.k }

/*
SetAdjoint marks the gate so that Matrix returns its conjugate transpose
from now on. The flag only ever moves to true; calling SetAdjoint on a gate
that is already adjoint leaves it adjoint. Use Adjoint to get a gate with
the flag flipped.
*/
func (g *Gate) SetAdjoint() {
	g.adjoint = true
}

// IsAdjoint reports whether Matrix returns the conjugate transpose.
func (g *Gate) IsAdjoint() bool {
	return g.adjoint
}

// Adjoint returns a copy of the gate with the adjoint flag inverted.
func (g *Gate) Adjoint() *Gate {
	dagger := *g
	dagger.adjoint = !g.adjoint
	return &dagger
}

/*
Matrix returns a freshly allocated 2^n x 2^n unitary for the gate, where n is
its qubit count. When the adjoint flag is set the conjugate transpose of the
base matrix is returned instead.
*/
func (g *Gate) Matrix() *mat.CDense {
	m := baseMatrix(g.kind, g.theta, g.k)
	if g.adjoint {
		return ConjugateTranspose(m)
	}
	return m
}

func (g *Gate) String() string {
	var name string

	switch g.kind {
	case IdentityGate:
		name = "I"
	case HadamardGate:
		name = "H"
	case PauliXGate:
		name = "X"
	case PauliYGate:
		name = "Y"
	case PauliZGate:
		name = "Z"
	case RotateXGate:
		name = "Rx(" + formatAngle(g.theta) + ")"
	case RotateYGate:
		name = "Ry(" + formatAngle(g.theta) + ")"
	case RotateZGate:
		name = "Rz(" + formatAngle(g.theta) + ")"
	case PhaseGate:
		name = "S"
	case TGate:
		name = "T"
	case CNOTGate:
		name = "CNOT"
	case SWAPGate:
		name = "SWAP"
	case ControlledRotateZGate:
		name = "CRz(" + strconv.Itoa(g.k) + ")"
	default:
		name = g.kind.String()
	}

	if g.adjoint {
		name += "†"
	}
	return name
}

func formatAngle(theta float64) string {
	return strconv.FormatFloat(theta, 'g', -1, 64)
}

// baseMatrix builds the matrix of a gate kind before any adjoint transform.
func baseMatrix(kind GateKind, theta float64, k int) *mat.CDense {
	switch kind {
	case IdentityGate:
		return mat.NewCDense(2, 2, []complex128{
			1, 0,
			0, 1,
		})
	case HadamardGate:
		h := complex(1/math.Sqrt2, 0)
		return mat.NewCDense(2, 2, []complex128{
			h, h,
			h, -h,
		})
	case PauliXGate:
		return mat.NewCDense(2, 2, []complex128{
			0, 1,
			1, 0,
		})
	case PauliYGate:
		return mat.NewCDense(2, 2, []complex128{
			0, -1i,
			1i, 0,
		})
	case PauliZGate:
		return mat.NewCDense(2, 2, []complex128{
			1, 0,
			0, -1,
		})
	case RotateXGate:
		c := complex(math.Cos(theta/2), 0)
		s := complex(0, -math.Sin(theta/2))
		return mat.NewCDense(2, 2, []complex128{
			c, s,
			s, c,
		})
	case RotateYGate:
		c := complex(math.Cos(theta/2), 0)
		s := complex(math.Sin(theta/2), 0)
		return mat.NewCDense(2, 2, []complex128{
			c, -s,
			s, c,
		})
	case RotateZGate:
		return mat.NewCDense(2, 2, []complex128{
			cmplx.Exp(complex(0, -theta/2)), 0,
			0, cmplx.Exp(complex(0, theta/2)),
		})
	case PhaseGate:
		return mat.NewCDense(2, 2, []complex128{
			1, 0,
			0, 1i,
		})
	case TGate:
		return mat.NewCDense(2, 2, []complex128{
			1, 0,
			0, cmplx.Exp(complex(0, math.Pi/4)),
		})
	case CNOTGate:
		return mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
			0, 0, 1, 0,
		})
	case SWAPGate:
		return mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 0, 1, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
		})
	case ControlledRotateZGate:
		// For k <= 0 the angle 2π·2^-k is a whole number of turns.
		var phase float64
		if k > 0 {
			phase = math.Ldexp(2*math.Pi, -k)
		}
		return mat.NewCDense(4, 4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, cmplx.Exp(complex(0, phase)),
		})
	default:
		return Identity(1 << kind.qubits())
	}
}
