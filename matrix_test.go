package zoom

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

// rowsOf builds a matrix from row-major literals.
func rowsOf(rows ...[]float64) Matrix {
	m := Matrix{Row: len(rows), Value: rows}
	if len(rows) > 0 {
		m.Col = len(rows[0])
	}
	return m
}

func mustMatrix(t *testing.T, flat []float64, rows, cols int) Matrix {
	t.Helper()
	m, err := MakeMatrix(flat, rows, cols)
	if err != nil {
		t.Fatalf("MakeMatrix(%v, %d, %d) error: %v", flat, rows, cols, err)
	}
	return m
}

func TestMakeMatrix_ColumnMajor(t *testing.T) {
	tests := []struct {
		name       string
		flat       []float64
		rows, cols int
		want       Matrix
	}{
		{"2x2", []float64{1, 2, 3, 4}, 2, 2, rowsOf([]float64{1, 3}, []float64{2, 4})},
		{"2x3", []float64{1, 2, 3, 4, 5, 6}, 2, 3, rowsOf([]float64{1, 3, 5}, []float64{2, 4, 6})},
		{"3x1 column", []float64{7, 8, 9}, 3, 1, rowsOf([]float64{7}, []float64{8}, []float64{9})},
		{"1x3 row", []float64{7, 8, 9}, 1, 3, rowsOf([]float64{7, 8, 9})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustMatrix(t, tt.flat, tt.rows, tt.cols)
			if got.Row != tt.rows || got.Col != tt.cols {
				t.Fatalf("shape = %dx%d, want %dx%d", got.Row, got.Col, tt.rows, tt.cols)
			}
			if !got.Equal(tt.want, 0) {
				t.Errorf("MakeMatrix(%v) =\n%v\nwant\n%v", tt.flat, got, tt.want)
			}
		})
	}
}

func TestMakeMatrix_InvalidShape(t *testing.T) {
	tests := []struct {
		name       string
		flat       []float64
		rows, cols int
	}{
		{"too short", []float64{1, 2, 3}, 2, 2},
		{"too long", []float64{1, 2, 3, 4, 5}, 2, 2},
		{"zero rows", nil, 0, 2},
		{"negative cols", []float64{1}, 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MakeMatrix(tt.flat, tt.rows, tt.cols)
			if !errors.Is(err, ErrInvalidShape) {
				t.Errorf("MakeMatrix error = %v, want ErrInvalidShape", err)
			}
		})
	}
}

func TestMultiply_Product(t *testing.T) {
	a := rowsOf([]float64{1, 2, 3}, []float64{4, 5, 6})
	b := rowsOf([]float64{7, 8}, []float64{9, 10}, []float64{11, 12})

	got, err := Multiply(a, b)
	if err != nil {
		t.Fatalf("Multiply error: %v", err)
	}
	want := rowsOf([]float64{58, 64}, []float64{139, 154})
	if !got.Equal(want, eps) {
		t.Errorf("Multiply =\n%v\nwant\n%v", got, want)
	}
}

func TestMultiply_Single(t *testing.T) {
	a := rowsOf([]float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	got, err := Multiply(a)
	if err != nil {
		t.Fatalf("Multiply error: %v", err)
	}
	if !got.Equal(a, 0) {
		t.Errorf("Multiply(a) =\n%v\nwant\n%v", got, a)
	}
}

func TestMultiply_NoOperands(t *testing.T) {
	if _, err := Multiply(); !errors.Is(err, ErrNoOperands) {
		t.Errorf("Multiply() error = %v, want ErrNoOperands", err)
	}
}

func TestMultiply_DimensionMismatch(t *testing.T) {
	a := rowsOf([]float64{1, 2}, []float64{3, 4})
	b := rowsOf([]float64{1, 2, 3})
	c := rowsOf([]float64{1}, []float64{2})

	tests := []struct {
		name string
		ms   []Matrix
	}{
		{"first pair", []Matrix{a, b}},
		{"second pair", []Matrix{a, c, c}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Multiply(tt.ms...)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Fatalf("Multiply error = %v, want ErrDimensionMismatch", err)
			}
			if got.Row != 0 || got.Col != 0 || got.Value != nil {
				t.Errorf("Multiply returned partial result %+v", got)
			}
		})
	}
}

func TestMultiply_Associative(t *testing.T) {
	a := MakeTransformMatrix(Params{2, 0.5, -1, 3, 10, -4})
	b := MakeTransformMatrix(Rotate(math.Pi / 3))
	c := MakeTransformMatrix(Params{0.25, 0, 0, 4, 7, 9})

	abc, err := Multiply(a, b, c)
	if err != nil {
		t.Fatal(err)
	}
	ab, _ := Multiply(a, b)
	abThenC, _ := Multiply(ab, c)
	bc, _ := Multiply(b, c)
	aThenBC, _ := Multiply(a, bc)

	if !abc.Equal(abThenC, eps) {
		t.Errorf("Multiply(a,b,c) != Multiply(Multiply(a,b),c)\n%v\n%v", abc, abThenC)
	}
	if !abc.Equal(aThenBC, eps) {
		t.Errorf("Multiply(a,b,c) != Multiply(a,Multiply(b,c))\n%v\n%v", abc, aThenBC)
	}
}

func TestMultiply_DoesNotMutateOperands(t *testing.T) {
	a := rowsOf([]float64{1, 2}, []float64{3, 4})
	b := rowsOf([]float64{5, 6}, []float64{7, 8})
	if _, err := Multiply(a, b); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(rowsOf([]float64{1, 2}, []float64{3, 4}), 0) {
		t.Errorf("left operand changed: %v", a)
	}
	if !b.Equal(rowsOf([]float64{5, 6}, []float64{7, 8}), 0) {
		t.Errorf("right operand changed: %v", b)
	}
}

func TestMakeTransformMatrix_Layout(t *testing.T) {
	got := MakeTransformMatrix(Params{1, 2, 3, 4, 5, 6})
	want := rowsOf(
		[]float64{1, 3, 5},
		[]float64{2, 4, 6},
		[]float64{0, 0, 1},
	)
	if !got.Equal(want, 0) {
		t.Errorf("MakeTransformMatrix =\n%v\nwant\n%v", got, want)
	}
}

func TestResolveTransformMatrix_RoundTrip(t *testing.T) {
	tests := []Params{
		Identity(),
		{1, 2, 3, 4, 5, 6},
		{-0.5, 1e6, 3.25, -7, 0, 1e-9},
		Rotate(1.2),
		ScaleAbout(3, Pt(40, -20)),
	}
	for _, p := range tests {
		t.Run(p.CSS(), func(t *testing.T) {
			got, err := ResolveTransformMatrix(MakeTransformMatrix(p))
			if err != nil {
				t.Fatalf("ResolveTransformMatrix error: %v", err)
			}
			if got != p {
				t.Errorf("round trip = %v, want %v", got, p)
			}
		})
	}
}

func TestResolveTransformMatrix_NotAffine(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"2x2", rowsOf([]float64{1, 0}, []float64{0, 1})},
		{"bottom row", rowsOf([]float64{1, 0, 0}, []float64{0, 1, 0}, []float64{0, 1, 1})},
		{"projective", rowsOf([]float64{1, 0, 0}, []float64{0, 1, 0}, []float64{0, 0, 2})},
		{"ragged", Matrix{Row: 3, Col: 3, Value: [][]float64{{1, 0, 0}, {0, 1}, {0, 0, 1}}}},
		{"zero", Matrix{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ResolveTransformMatrix(tt.m); !errors.Is(err, ErrNotAffine) {
				t.Errorf("ResolveTransformMatrix error = %v, want ErrNotAffine", err)
			}
		})
	}
}

func TestMatrix_TransformPoint(t *testing.T) {
	m := MakeTransformMatrix(Translate(10, 20))
	got := m.TransformPoint(Pt(1, 2))
	if !got.Approx(Pt(11, 22), eps) {
		t.Errorf("TransformPoint = %+v, want (11, 22)", got)
	}
}
