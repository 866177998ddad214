package zoom

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrDimensionMismatch is returned by Multiply when two adjacent operands
	// are not composable (the left column count differs from the right row count).
	ErrDimensionMismatch = errors.New("zoom: matrices are not composable")

	// ErrInvalidShape is returned when a flat array does not fill a rows x cols matrix.
	ErrInvalidShape = errors.New("zoom: invalid matrix shape")

	// ErrNotAffine is returned when a matrix is not a 3x3 homogeneous affine matrix.
	ErrNotAffine = errors.New("zoom: matrix is not a 3x3 affine transform")

	// ErrNoOperands is returned by Multiply when called without matrices.
	ErrNoOperands = errors.New("zoom: no matrices to multiply")
)

// Matrix is a dense Row x Col matrix of float64 values.
//
// Value holds exactly Row rows, each of length Col. A Matrix is treated as
// immutable: every operation in this package returns a new Matrix and never
// writes into its operands.
type Matrix struct {
	Row, Col int
	Value    [][]float64
}

// MakeMatrix builds a rows x cols matrix from a flat array consumed column by
// column, so Value[i][j] = flat[j*rows+i].
//
//	MakeMatrix([]float64{1, 2, 3, 4}, 2, 2) // [[1 3] [2 4]]
func MakeMatrix(flat []float64, rows, cols int) (Matrix, error) {
	if rows <= 0 || cols <= 0 || len(flat) != rows*cols {
		return Matrix{}, fmt.Errorf("%w: %d values for %dx%d", ErrInvalidShape, len(flat), rows, cols)
	}

	m := newMatrix(rows, cols)
	for idx, v := range flat {
		m.Value[idx%rows][idx/rows] = v
	}
	return m, nil
}

func newMatrix(rows, cols int) Matrix {
	backing := make([]float64, rows*cols)
	value := make([][]float64, rows)
	for i := range value {
		value[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return Matrix{Row: rows, Col: cols, Value: value}
}

// Multiply composes matrices left to right: Multiply(A, B, C) = (A*B)*C.
//
// Each adjacent pair must satisfy left.Col == right.Row, otherwise an error
// wrapping ErrDimensionMismatch is returned together with a zero Matrix.
// A single operand is returned unchanged.
func Multiply(ms ...Matrix) (Matrix, error) {
	if len(ms) == 0 {
		return Matrix{}, ErrNoOperands
	}

	acc := ms[0]
	for i, m := range ms[1:] {
		if acc.Col != m.Row {
			return Matrix{}, fmt.Errorf("%w: operand %d is %dx%d, operand %d is %dx%d",
				ErrDimensionMismatch, i, acc.Row, acc.Col, i+1, m.Row, m.Col)
		}
		acc = mul(acc, m)
	}
	return acc, nil
}

// mul returns a*b. Callers guarantee a.Col == b.Row.
func mul(a, b Matrix) Matrix {
	res := newMatrix(a.Row, b.Col)
	for i := 0; i < a.Row; i++ {
		for j := 0; j < b.Col; j++ {
			var sum float64
			for k := 0; k < a.Col; k++ {
				sum += a.Value[i][k] * b.Value[k][j]
			}
			res.Value[i][j] = sum
		}
	}
	return res
}

// MakeTransformMatrix embeds the 2D transform parameters [a b c d e f] into the
// homogeneous matrix
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
func MakeTransformMatrix(p Params) Matrix {
	expanded := []float64{
		p[0], p[1], 0,
		p[2], p[3], 0,
		p[4], p[5], 1,
	}
	m, _ := MakeMatrix(expanded, 3, 3) // shape is fixed
	return m
}

// ResolveTransformMatrix extracts [a b c d e f] from a homogeneous affine matrix.
// It returns ErrNotAffine unless m is 3x3 with bottom row [0 0 1].
func ResolveTransformMatrix(m Matrix) (Params, error) {
	if !m.IsAffine() {
		return Params{}, fmt.Errorf("%w: got %dx%d", ErrNotAffine, m.Row, m.Col)
	}
	v := m.Value
	return Params{v[0][0], v[1][0], v[0][1], v[1][1], v[0][2], v[1][2]}, nil
}

// IsAffine reports whether m is a well-formed 3x3 matrix with bottom row [0 0 1].
func (m Matrix) IsAffine() bool {
	if m.Row != 3 || m.Col != 3 || !m.wellFormed() {
		return false
	}
	last := m.Value[2]
	return last[0] == 0 && last[1] == 0 && last[2] == 1
}

func (m Matrix) wellFormed() bool {
	if len(m.Value) != m.Row {
		return false
	}
	for _, row := range m.Value {
		if len(row) != m.Col {
			return false
		}
	}
	return true
}

// TransformPoint applies a 3x3 affine matrix to a coordinate.
// The result is undefined for matrices that are not affine.
func (m Matrix) TransformPoint(c Coordinate) Coordinate {
	v := m.Value
	return Coordinate{
		X: v[0][0]*c.X + v[0][1]*c.Y + v[0][2],
		Y: v[1][0]*c.X + v[1][1]*c.Y + v[1][2],
	}
}

// Equal reports whether m and o have the same shape and every element
// differs by at most eps.
func (m Matrix) Equal(o Matrix, eps float64) bool {
	if m.Row != o.Row || m.Col != o.Col || !m.wellFormed() || !o.wellFormed() {
		return false
	}
	for i := range m.Value {
		for j := range m.Value[i] {
			if math.Abs(m.Value[i][j]-o.Value[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// String formats the matrix one row per line.
func (m Matrix) String() string {
	var sb strings.Builder
	for i, row := range m.Value {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprint(&sb, row)
	}
	return sb.String()
}
