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

import "fmt"

// Affine is a 2D affine transform in row-major order:
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
// It maps pixel (column, row) coordinates to coordinates in a
// coordinate reference system. Most of this package only supports
// axis-aligned transforms (B == 0 and D == 0).
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// IdentityTransform returns the identity transform.
func IdentityTransform() Affine {
	return Affine{A: 1, E: 1}
}

// Translation returns a transform that shifts coordinates by tx and ty.
func Translation(tx, ty float64) Affine {
	return Affine{A: 1, C: tx, E: 1, F: ty}
}

// NewScale returns a transform that scales coordinates by sx and sy.
func NewScale(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Mul composes t with o so that the result applies o first and
// then t, matching matrix multiplication t×o.
func (t Affine) Mul(o Affine) Affine {
	return Affine{
		A: t.A*o.A + t.B*o.D,
		B: t.A*o.B + t.B*o.E,
		C: t.A*o.C + t.B*o.F + t.C,
		D: t.D*o.A + t.E*o.D,
		E: t.D*o.B + t.E*o.E,
		F: t.D*o.C + t.E*o.F + t.F,
	}
}

// Apply maps the point (x, y) through t.
func (t Affine) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.B*y + t.C, t.D*x + t.E*y + t.F
}

// Invert returns the inverse of t. It returns an error if t is
// singular.
func (t Affine) Invert() (Affine, error) {
	det := t.A*t.E - t.B*t.D
	if det == 0 {
		return Affine{}, fmt.Errorf("geogrid: transform %+v is not invertible", t)
	}
	idet := 1 / det
	a := t.E * idet
	b := -t.B * idet
	d := -t.D * idet
	e := t.A * idet
	return Affine{
		A: a, B: b, C: -(a*t.C + b*t.F),
		D: d, E: e, F: -(d*t.C + e*t.F),
	}, nil
}

// IsAxisAligned reports whether t contains no shear or rotation
// terms, i.e. whether it is a combination of scaling and translation
// only.
func (t Affine) IsAxisAligned() bool {
	return t.B == 0 && t.D == 0
}
