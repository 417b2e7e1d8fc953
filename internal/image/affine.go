package image

import "math"

// Affine is a 2D affine map in pixel space:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Pixel space has y pointing down, so a positive rotation angle turns the
// image clockwise on screen.
type Affine struct {
	a, b, c float64
	d, e, f float64
}

// Translate returns a map that shifts points by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{a: 1, c: tx, e: 1, f: ty}
}

// Rotate returns a rotation by angle radians around the origin.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{
		a: cos, b: -sin,
		d: sin, e: cos,
	}
}

// Multiply returns m * other: the result applies other first, then m.
func (m Affine) Multiply(other Affine) Affine {
	return Affine{
		a: m.a*other.a + m.b*other.d,
		b: m.a*other.b + m.b*other.e,
		c: m.a*other.c + m.b*other.f + m.c,
		d: m.d*other.a + m.e*other.d,
		e: m.d*other.b + m.e*other.e,
		f: m.d*other.c + m.e*other.f + m.f,
	}
}

// Invert returns the inverse map, or false if m is singular.
func (m Affine) Invert() (Affine, bool) {
	det := m.a*m.e - m.b*m.d
	if math.Abs(det) < 1e-10 {
		return Affine{}, false
	}
	inv := 1.0 / det
	return Affine{
		a: m.e * inv,
		b: -m.b * inv,
		c: (m.b*m.f - m.c*m.e) * inv,
		d: -m.d * inv,
		e: m.a * inv,
		f: (m.c*m.d - m.a*m.f) * inv,
	}, true
}

// TransformPoint applies m to (x, y).
func (m Affine) TransformPoint(x, y float64) (float64, float64) {
	return m.a*x + m.b*y + m.c, m.d*x + m.e*y + m.f
}

// RotateAt returns a rotation by angle radians around (cx, cy).
func RotateAt(angle, cx, cy float64) Affine {
	return Translate(cx, cy).Multiply(Rotate(angle)).Multiply(Translate(-cx, -cy))
}
