package vector_test

import (
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_fieldcalc/bmath/vector"
)

func TestVectorCreation(t *testing.T) {
	var v, c vector.Vector

	if v.X != 0 || v.Y != 0 || v.Z != 0 {
		t.Error("Zero value failed")
	}

	v = vector.Create(1, 2, 3)
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Error("Creation failed")
	}

	c = v.Copy()
	if c.X != 1 || c.Y != 2 || c.Z != 3 {
		t.Error("Copy failed")
	}

	c.X = 10
	if v.X != 1 {
		t.Error("Copy shares storage with the source")
	}
}

func TestUnary(t *testing.T) {
	var v1, v2 vector.Vector

	v1 = vector.Create(1, 2, 3)
	if math.Abs(v1.Magnitude()-3.74165738677) > 1e-7 {
		t.Error("Magnitude failed")
	}

	v2 = v1.Negate()
	if v2.X != -1 || v2.Y != -2 || v2.Z != -3 {
		t.Error("Negate failed")
	}

	v2 = v1.Normalize()
	if math.Abs(v2.Magnitude()-1) > 1e-9 {
		t.Error("Normalize failed")
	}

	v1 = vector.Create(0, 0, 0)
	v2 = v1.Normalize()
	if v2.X != 0 || v2.Y != 0 || v2.Z != 0 {
		t.Error("Normalize failed")
	}
}

func TestBinary(t *testing.T) {
	var v1, v2 vector.Vector
	v1 = vector.Create(1, 2, 3)
	v2 = v1.Add(v1.Copy())
	if v2.X != 2 || v2.Y != 4 || v2.Z != 6 {
		t.Error("Add failed")
	}
	if v1.X != 1 || v1.Y != 2 || v1.Z != 3 {
		t.Error("Add mutated its operand")
	}

	v2 = v1.Subtract(v2)
	if v2.X != -1 || v2.Y != -2 || v2.Z != -3 {
		t.Error("Subtract failed")
	}

	if v1.MultiplyByVector(vector.Create(2, 1, 1)) != (2 + 2 + 3) {
		t.Error("MultiplyByVector failed")
	}

	v2 = v1.MultiplyByConst(3)
	if v2.X != 3 || v2.Y != 6 || v2.Z != 9 {
		t.Error("MultiplyByConst failed")
	}
}

func TestAddCommutes(t *testing.T) {
	pairs := [][2]vector.Vector{
		{vector.Create(0, 1e5, 1e3), vector.Create(1, 2, 3)},
		{vector.Create(0.1, 0.2, 0.3), vector.Create(0.5, 0.5, 0.5)},
		{vector.Create(-1.5, 0, 7e-9), vector.Create(2.25, -3, 1e12)},
	}
	for _, p := range pairs {
		if p[0].Add(p[1]) != p[1].Add(p[0]) {
			t.Errorf("Add is not commutative for %s and %s", p[0], p[1])
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		v    vector.Vector
		want string
	}{
		{vector.Vector{}, "(0, 0, 0)"},
		{vector.Create(0, 1e5, 1e3), "(0, 100000, 1000)"},
		{vector.Create(1, 100002, 1003), "(1, 100002, 1003)"},
		{vector.Create(0.1, 0.2, 0.3).Add(vector.Create(0.5, 0.5, 0.5)), "(0.6, 0.7, 0.8)"},
		{vector.Create(-2.5, 1e6, 3594.5), "(-2.5, 1e+06, 3594.5)"},
	}
	for _, c := range cases {
		if c.v.String() != c.want {
			t.Errorf("To string failed: %s, expected %s", c.v.String(), c.want)
		}
	}
}
