package math3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func vecNear(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), V3(5, -3, 9)},
		{"sub", a.Sub(b), V3(-3, 7, -3)},
		{"negate", a.Negate(), V3(-1, -2, -3)},
		{"scale", a.Scale(2), V3(2, 4, 6)},
		{"mul", a.Mul(b), V3(4, -10, 18)},
		{"cross", a.Cross(b), V3(27, 6, -13)},
		{"min", a.Min(b), V3(1, -5, 3)},
		{"max", a.Max(b), V3(4, 2, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}

	if d := a.Dot(b); d != 12 {
		t.Errorf("dot = %v, want 12", d)
	}
}

func TestVec3CrossIsOrthogonal(t *testing.T) {
	a := V3(0.3, -1.2, 2.5)
	b := V3(-4, 0.5, 1)
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > eps || math.Abs(c.Dot(b)) > eps {
		t.Errorf("cross %v not orthogonal to inputs", c)
	}
	if c != b.Cross(a).Negate() {
		t.Errorf("cross product should be anti-commutative")
	}
}

func TestVec3Normalize(t *testing.T) {
	n := V3(0, 3, 4).Normalize()
	if !vecNear(n, V3(0, 0.6, 0.8), eps) {
		t.Errorf("normalize = %v, want (0, 0.6, 0.8)", n)
	}
	if z := Zero3().Normalize(); z != Zero3() {
		t.Errorf("normalize of zero vector = %v, want zero", z)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	v := V3(1.5, -2, 0.75)
	angles := []float64{0.1, 1, -2.3, math.Pi / 2, 7}

	for _, theta := range angles {
		c, s := math.Cos(theta), math.Sin(theta)
		ci, si := math.Cos(-theta), math.Sin(-theta)

		x := v.Rotate(c, s, 1, 0, 1, 0).Rotate(ci, si, 1, 0, 1, 0)
		y := v.Rotate(1, 0, c, s, 1, 0).Rotate(1, 0, ci, si, 1, 0)
		z := v.Rotate(1, 0, 1, 0, c, s).Rotate(1, 0, 1, 0, ci, si)

		for axis, got := range map[string]Vec3{"x": x, "y": y, "z": z} {
			if !vecNear(got, v, 1e-9) {
				t.Errorf("axis %s, theta %v: round trip = %v, want %v", axis, theta, got, v)
			}
		}
	}
}

func TestRotateOrderMatchesMatrices(t *testing.T) {
	v := V3(0.4, -1.1, 2.2)
	rx, ry, rz := 0.7, -1.3, 2.1

	got := v.Rotate(math.Cos(rx), math.Sin(rx), math.Cos(ry), math.Sin(ry), math.Cos(rz), math.Sin(rz))

	// Y is applied first, so it sits rightmost in the product.
	m := mgl64.Rotate3DZ(rz).Mul3(mgl64.Rotate3DX(rx)).Mul3(mgl64.Rotate3DY(ry))
	w := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	want := V3(w[0], w[1], w[2])

	if !vecNear(got, want, 1e-9) {
		t.Errorf("Rotate = %v, matrix product = %v", got, want)
	}

	// A different order must give a different answer for generic angles.
	alt := mgl64.Rotate3DY(ry).Mul3(mgl64.Rotate3DX(rx)).Mul3(mgl64.Rotate3DZ(rz)).Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	if vecNear(got, V3(alt[0], alt[1], alt[2]), 1e-6) {
		t.Error("rotation order should not be interchangeable")
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := V3(3, -4, 12)
	r := v.Rotate(math.Cos(0.3), math.Sin(0.3), math.Cos(1.9), math.Sin(1.9), math.Cos(-0.8), math.Sin(-0.8))
	if math.Abs(r.Len()-v.Len()) > eps {
		t.Errorf("rotated length = %v, want %v", r.Len(), v.Len())
	}
}
