package zoom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/math/f64"
)

// ErrBadCSS is returned by ParseCSS for strings that are not a matrix() transform.
var ErrBadCSS = errors.New("zoom: not a CSS matrix() transform")

// Params holds a 2D affine transform in the canvas/CSS parameter order
// [a, b, c, d, e, f]:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Params [6]float64

// Identity returns the identity transform.
func Identity() Params {
	return Params{1, 0, 0, 1, 0, 0}
}

// Translate creates a translation transform.
func Translate(x, y float64) Params {
	return Params{1, 0, 0, 1, x, y}
}

// Scale creates a scaling transform about the coordinate origin.
func Scale(sx, sy float64) Params {
	return Params{sx, 0, 0, sy, 0, 0}
}

// Rotate creates a rotation transform (angle in radians, clockwise on a
// y-down screen).
func Rotate(angle float64) Params {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Params{cos, sin, -sin, cos, 0, 0}
}

// ScaleAbout creates a uniform scale by k that keeps pivot fixed.
func ScaleAbout(k float64, pivot Coordinate) Params {
	return Params{k, 0, 0, k, pivot.X * (1 - k), pivot.Y * (1 - k)}
}

// RotateAbout creates a rotation that keeps pivot fixed.
func RotateAbout(angle float64, pivot Coordinate) Params {
	r := Rotate(angle)
	r[4] = pivot.X - (r[0]*pivot.X + r[2]*pivot.Y)
	r[5] = pivot.Y - (r[1]*pivot.X + r[3]*pivot.Y)
	return r
}

// Compose multiplies the transforms left to right, so Compose(T, S, P)
// applies P first and T last. It is the product of the homogeneous matrices
// computed on the six parameters directly, so non-finite values propagate
// into the result instead of being dropped.
func Compose(ps ...Params) Params {
	if len(ps) == 0 {
		return Identity()
	}
	out := ps[0]
	for _, p := range ps[1:] {
		out = out.mul(p)
	}
	return out
}

// mul returns p * q, the transform applying q first.
func (p Params) mul(q Params) Params {
	return Params{
		p[0]*q[0] + p[2]*q[1],
		p[1]*q[0] + p[3]*q[1],
		p[0]*q[2] + p[2]*q[3],
		p[1]*q[2] + p[3]*q[3],
		p[0]*q[4] + p[2]*q[5] + p[4],
		p[1]*q[4] + p[3]*q[5] + p[5],
	}
}

// Matrix returns the homogeneous 3x3 form of p.
func (p Params) Matrix() Matrix {
	return MakeTransformMatrix(p)
}

// Apply transforms a coordinate.
func (p Params) Apply(c Coordinate) Coordinate {
	return Coordinate{
		X: p[0]*c.X + p[2]*c.Y + p[4],
		Y: p[1]*c.X + p[3]*c.Y + p[5],
	}
}

// Det returns the determinant of the linear part.
func (p Params) Det() float64 {
	return p[0]*p[3] - p[1]*p[2]
}

// Zoom returns the geometric mean scale factor of the linear part.
func (p Params) Zoom() float64 {
	return math.Sqrt(math.Abs(p.Det()))
}

// Invert returns the inverse transform.
// Returns the identity transform if p is not invertible.
func (p Params) Invert() Params {
	det := p.Det()
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	inv := 1 / det
	a, b, c, d, e, f := p[0], p[1], p[2], p[3], p[4], p[5]
	return Params{
		d * inv,
		-b * inv,
		-c * inv,
		a * inv,
		(c*f - d*e) * inv,
		(b*e - a*f) * inv,
	}
}

// IsFinite reports whether every parameter is a finite number.
func (p Params) IsFinite() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Approx reports whether every parameter differs by at most eps.
func (p Params) Approx(o Params, eps float64) bool {
	for i := range p {
		if math.Abs(p[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

// Aff3 returns p in the row-major layout used by golang.org/x/image:
// [a c e b d f].
func (p Params) Aff3() f64.Aff3 {
	return f64.Aff3{p[0], p[2], p[4], p[1], p[3], p[5]}
}

// CSS formats p as a CSS transform value, e.g. "matrix(1, 0, 0, 1, 10, 20)".
func (p Params) CSS() string {
	parts := make([]string, len(p))
	for i, v := range p {
		if v == 0 {
			v = 0 // no "-0"
		}
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return "matrix(" + strings.Join(parts, ", ") + ")"
}

// String implements fmt.Stringer.
func (p Params) String() string {
	return p.CSS()
}

// ParseCSS parses the output of Params.CSS. Both comma and whitespace
// separators are accepted.
func ParseCSS(s string) (Params, error) {
	s = strings.TrimSpace(s)
	inner, ok := strings.CutPrefix(s, "matrix(")
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrBadCSS, s)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrBadCSS, s)
	}
	fields := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 6 {
		return Params{}, fmt.Errorf("%w: want 6 values, got %d", ErrBadCSS, len(fields))
	}
	var p Params
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Params{}, fmt.Errorf("%w: %v", ErrBadCSS, err)
		}
		p[i] = v
	}
	return p, nil
}
