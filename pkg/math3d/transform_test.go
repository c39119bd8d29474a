package math3d

import (
	"math"
	"testing"
)

func checkTrig(t *testing.T, tr Transform) {
	t.Helper()
	rot := tr.Rot()
	pairs := []struct {
		name        string
		angle, c, s float64
	}{
		{"x", rot.X, tr.cosX, tr.sinX},
		{"y", rot.Y, tr.cosY, tr.sinY},
		{"z", rot.Z, tr.cosZ, tr.sinZ},
	}
	for _, p := range pairs {
		if math.Abs(p.c-math.Cos(p.angle)) > eps || math.Abs(p.s-math.Sin(p.angle)) > eps {
			t.Errorf("axis %s: cached (%v, %v) does not match angle %v", p.name, p.c, p.s, p.angle)
		}
	}
}

func TestNewTransformDefaults(t *testing.T) {
	tr := NewTransform()
	if tr.Pos != Zero3() || tr.Scale != One3() || tr.Rot() != Zero3() {
		t.Errorf("defaults = pos %v scale %v rot %v", tr.Pos, tr.Scale, tr.Rot())
	}
	checkTrig(t, tr)
}

func TestTransformSettersKeepTrigInStep(t *testing.T) {
	tr := NewTransformWith(V3(1, 2, 3), One3(), V3(0.5, -0.25, 2))
	checkTrig(t, tr)

	tr.SetRotX(1.2)
	checkTrig(t, tr)
	tr.SetRotY(-3)
	checkTrig(t, tr)
	tr.SetRotZ(0.01)
	checkTrig(t, tr)
	tr.ChangeRotX(0.4)
	tr.ChangeRotY(0.4)
	tr.ChangeRotZ(-10)
	checkTrig(t, tr)

	if got := tr.Rot(); math.Abs(got.X-1.6) > eps || math.Abs(got.Y+2.6) > eps || math.Abs(got.Z+9.99) > eps {
		t.Errorf("Rot() = %v after changes", got)
	}
}

func TestTransformZeroValueRotation(t *testing.T) {
	var tr Transform
	tr.SetRotY(math.Pi)
	checkTrig(t, tr)

	// X and Z were never set; they must behave as zero rotation.
	got := tr.Rotate(V3(1, 2, 3))
	if !vecNear(got, V3(-1, 2, -3), 1e-9) {
		t.Errorf("Rotate = %v, want (-1, 2, -3)", got)
	}
}

func TestTransformApplyOrder(t *testing.T) {
	tr := NewTransformWith(V3(0, 0, 5), V3(2, 2, 2), V3(0, math.Pi/2, 0))
	v := V3(1, 0, 0)

	// scale -> (2,0,0), rotate about y by 90 degrees -> (0,0,-2), translate -> (0,0,3)
	if got := tr.Apply(v, true); !vecNear(got, V3(0, 0, 3), 1e-9) {
		t.Errorf("rotate first = %v, want (0, 0, 3)", got)
	}

	// scale -> (2,0,0), translate -> (2,0,5), rotate -> (5,0,-2)
	if got := tr.Apply(v, false); !vecNear(got, V3(5, 0, -2), 1e-9) {
		t.Errorf("translate first = %v, want (5, 0, -2)", got)
	}
}
