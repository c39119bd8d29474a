package math3d

import "math"

// Transform is a position, scale and rotation. The rotation angles are only
// reachable through the setters, which keep the cached cosine and sine of each
// axis in step with its angle. The zero value is a transform with zero scale
// and no rotation; prefer NewTransform.
type Transform struct {
	Pos   Vec3
	Scale Vec3

	rot        Vec3
	cached     bool
	cosX, sinX float64
	cosY, sinY float64
	cosZ, sinZ float64
}

// NewTransform returns a transform at the origin with unit scale and no rotation.
func NewTransform() Transform {
	return NewTransformWith(Zero3(), One3(), Zero3())
}

// NewTransformWith returns a transform with the given position, scale and
// rotation (radians per axis).
func NewTransformWith(pos, scale, rot Vec3) Transform {
	t := Transform{Pos: pos, Scale: scale}
	t.SetRot(rot.X, rot.Y, rot.Z)
	return t
}

// Rot returns the rotation angles in radians.
func (t Transform) Rot() Vec3 {
	return t.rot
}

// fill derives the trig cache of a zero-value transform from its angles.
func (t *Transform) fill() {
	if t.cached {
		return
	}
	t.cached = true
	t.cosX, t.sinX = math.Cos(t.rot.X), math.Sin(t.rot.X)
	t.cosY, t.sinY = math.Cos(t.rot.Y), math.Sin(t.rot.Y)
	t.cosZ, t.sinZ = math.Cos(t.rot.Z), math.Sin(t.rot.Z)
}

// SetRotX sets the rotation about the X axis.
func (t *Transform) SetRotX(angle float64) {
	t.fill()
	t.rot.X = angle
	t.cosX, t.sinX = math.Cos(angle), math.Sin(angle)
}

// SetRotY sets the rotation about the Y axis.
func (t *Transform) SetRotY(angle float64) {
	t.fill()
	t.rot.Y = angle
	t.cosY, t.sinY = math.Cos(angle), math.Sin(angle)
}

// SetRotZ sets the rotation about the Z axis.
func (t *Transform) SetRotZ(angle float64) {
	t.fill()
	t.rot.Z = angle
	t.cosZ, t.sinZ = math.Cos(angle), math.Sin(angle)
}

// SetRot sets all three rotation angles.
func (t *Transform) SetRot(x, y, z float64) {
	t.SetRotX(x)
	t.SetRotY(y)
	t.SetRotZ(z)
}

// ChangeRotX adds delta to the rotation about the X axis.
func (t *Transform) ChangeRotX(delta float64) {
	t.SetRotX(t.rot.X + delta)
}

// ChangeRotY adds delta to the rotation about the Y axis.
func (t *Transform) ChangeRotY(delta float64) {
	t.SetRotY(t.rot.Y + delta)
}

// ChangeRotZ adds delta to the rotation about the Z axis.
func (t *Transform) ChangeRotZ(delta float64) {
	t.SetRotZ(t.rot.Z + delta)
}

// Rotate applies the transform's rotation (Y, then X, then Z) to v.
func (t Transform) Rotate(v Vec3) Vec3 {
	t.fill()
	return v.Rotate(t.cosX, t.sinX, t.cosY, t.sinY, t.cosZ, t.sinZ)
}

// Apply maps v through the transform. With rotateFirst the vertex is scaled,
// rotated about the origin and then moved to Pos; this is how an object's local
// pose is applied. Without it the scaled vertex is moved by Pos first and then
// rotated, which is how world space is brought into a camera's view.
func (t Transform) Apply(v Vec3, rotateFirst bool) Vec3 {
	s := v.Mul(t.Scale)
	if rotateFirst {
		return t.Rotate(s).Add(t.Pos)
	}
	return t.Rotate(s.Add(t.Pos))
}
