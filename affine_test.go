/*
Copyright (C) 2019 the GeoGrid authors.
This file is part of GeoGrid.

GeoGrid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GeoGrid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GeoGrid.  If not, see <http://www.gnu.org/licenses/>.
*/

package geogrid

import (
	"testing"

	"github.com/gonum/floats"
)

func TestAffineApply(t *testing.T) {
	a := Translation(10, 20).Mul(NewScale(2, -2))
	x, y := a.Apply(3, 4)
	if x != 16 || y != 12 {
		t.Errorf("got (%g, %g), want (16, 12)", x, y)
	}
}

func TestAffineIdentity(t *testing.T) {
	id := IdentityTransform()
	x, y := id.Apply(3.5, -7)
	if x != 3.5 || y != -7 {
		t.Errorf("identity moved the point to (%g, %g)", x, y)
	}
}

func TestAffineMulOrder(t *testing.T) {
	// Scaling then translating differs from translating then scaling.
	ts := Translation(10, 10).Mul(NewScale(2, 2))
	st := NewScale(2, 2).Mul(Translation(10, 10))
	x1, y1 := ts.Apply(1, 1)
	x2, y2 := st.Apply(1, 1)
	if x1 != 12 || y1 != 12 {
		t.Errorf("translate then scale: got (%g, %g), want (12, 12)", x1, y1)
	}
	if x2 != 22 || y2 != 22 {
		t.Errorf("scale then translate: got (%g, %g), want (22, 22)", x2, y2)
	}
}

func TestAffineInvert(t *testing.T) {
	a := Translation(151.2, -29.4).Mul(NewScale(0.00025, -0.00025))
	inv, err := a.Invert()
	if err != nil {
		t.Fatal(err)
	}
	x, y := a.Apply(17, 923)
	x2, y2 := inv.Apply(x, y)
	if !floats.EqualWithinAbs(x2, 17, 1e-6) || !floats.EqualWithinAbs(y2, 923, 1e-6) {
		t.Errorf("round trip gave (%g, %g), want (17, 923)", x2, y2)
	}

	if _, err := (Affine{}).Invert(); err == nil {
		t.Error("inverting a singular transform should fail")
	}
}

func TestAffineIsAxisAligned(t *testing.T) {
	if !Translation(1, 2).Mul(NewScale(3, 4)).IsAxisAligned() {
		t.Error("translation and scale should be axis-aligned")
	}
	if (Affine{A: 1, B: 0.5, D: 0, E: 1}).IsAxisAligned() {
		t.Error("sheared transform should not be axis-aligned")
	}
}
