package qcircuit

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Identity returns the n x n complex identity matrix.
func Identity(n int) *mat.CDense {
	id := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}
	return id
}

/*
ConjugateTranspose materializes the adjoint (dagger) of m into a new dense
matrix: rows and columns swapped, imaginary parts negated.
*/
func ConjugateTranspose(m mat.CMatrix) *mat.CDense {
	h := m.H()
	r, c := h.Dims()

	out := mat.NewCDense(r, c, nil)
	out.Copy(h)
	return out
}

// Mul returns the dense product a·b.
func Mul(a, b mat.CMatrix) (*mat.CDense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, fmt.Errorf("mul %dx%d by %dx%d: %w", ar, ac, br, bc, ErrDimensionMismatch)
	}

	out := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			var sum complex128
			for k := 0; k < ac; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out, nil
}

// IsUnitary reports whether m·m† equals the identity within tol.
func IsUnitary(m mat.CMatrix, tol float64) bool {
	r, c := m.Dims()
	if r != c {
		return false
	}

	product, err := Mul(m, m.H())
	if err != nil {
		return false
	}
	return mat.CEqualApprox(product, Identity(r), tol)
}

/*
EqualUpToGlobalPhase reports whether a = e^{iφ}·b for some real φ, within
tol. The phase is taken from the largest entry of b.
*/
func EqualUpToGlobalPhase(a, b mat.CMatrix, tol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}

	var pi, pj int
	var best float64
	for i := 0; i < br; i++ {
		for j := 0; j < bc; j++ {
			if abs := cmplx.Abs(b.At(i, j)); abs > best {
				best, pi, pj = abs, i, j
			}
		}
	}
	if best == 0 {
		return mat.CEqualApprox(a, b, tol)
	}

	phase := a.At(pi, pj) / b.At(pi, pj)
	abs := cmplx.Abs(phase)
	if abs == 0 {
		return false
	}
	phase /= complex(abs, 0)

	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if cmplx.Abs(a.At(i, j)-phase*b.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}
