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
	"fmt"
	"math"

	"github.com/gonum/floats"
)

// pixelGridTolerance bounds how far two grids' transforms may drift
// while still being treated as the same pixel lattice.
const pixelGridTolerance = 1e-8

func isAlmostInt(x, tol float64) bool {
	x = math.Abs(x)
	frac := x - math.Floor(x)
	if frac > 0.5 {
		frac = 1 - frac
	}
	return frac < tol
}

// BoundingBoxInPixelDomain expresses gb's extent in the pixel
// coordinates of ref. The two boxes must share a CRS, resolution and
// pixel alignment; otherwise the result fails with an
// *IncompatibleGridError.
func BoundingBoxInPixelDomain(gb, ref GeoBox) (BoundingBox, error) {
	if !crsEqual(gb.CRS(), ref.CRS()) {
		return BoundingBox{}, &IncompatibleGridError{Reason: "coordinate systems differ"}
	}
	inv, err := ref.Affine.Invert()
	if err != nil {
		return BoundingBox{}, fmt.Errorf("geogrid: inverting reference transform: %v", err)
	}
	t := inv.Mul(gb.Affine)
	if !(floats.EqualWithinAbs(t.A, 1, pixelGridTolerance) &&
		floats.EqualWithinAbs(t.E, 1, pixelGridTolerance) &&
		floats.EqualWithinAbs(t.B, 0, pixelGridTolerance) &&
		floats.EqualWithinAbs(t.D, 0, pixelGridTolerance) &&
		isAlmostInt(t.C, pixelGridTolerance) &&
		isAlmostInt(t.F, pixelGridTolerance)) {
		return BoundingBox{}, &IncompatibleGridError{Reason: "pixel grids are not aligned"}
	}
	tx := math.Round(t.C)
	ty := math.Round(t.F)
	return BBoxFromXY(tx, tx+float64(gb.Width), ty, ty+float64(gb.Height)), nil
}

// GeoBoxUnionConservative returns the smallest GeoBox that covers
// all the given boxes. The boxes must lie on the same pixel lattice;
// the first box serves as the reference grid.
func GeoBoxUnionConservative(boxes []GeoBox) (GeoBox, error) {
	if len(boxes) == 0 {
		return GeoBox{}, &EmptyInputError{Op: "geobox union"}
	}
	ref := boxes[0]
	bboxes := make([]BoundingBox, len(boxes))
	for i, gb := range boxes {
		bb, err := BoundingBoxInPixelDomain(gb, ref)
		if err != nil {
			return GeoBox{}, err
		}
		bboxes[i] = bb
	}
	bbox := BBoxUnion(bboxes)
	affine := ref.Affine.Mul(Translation(bbox.Left, bbox.Bottom))
	return NewGeoBox(bbox.Width(), bbox.Height(), affine, ref.CRS())
}

// GeoBoxIntersectionConservative returns the common area of the
// given boxes as a GeoBox on the same pixel lattice. A result with
// no overlap comes back as an empty box rather than an error.
func GeoBoxIntersectionConservative(boxes []GeoBox) (GeoBox, error) {
	if len(boxes) == 0 {
		return GeoBox{}, &EmptyInputError{Op: "geobox intersection"}
	}
	ref := boxes[0]
	bboxes := make([]BoundingBox, len(boxes))
	for i, gb := range boxes {
		bb, err := BoundingBoxInPixelDomain(gb, ref)
		if err != nil {
			return GeoBox{}, err
		}
		bboxes[i] = bb
	}
	bbox := BBoxIntersection(bboxes)
	// No overlap leaves inverted edges; collapse them to an empty
	// box anchored at the fold.
	if bbox.Right < bbox.Left {
		bbox.Right = bbox.Left
	}
	if bbox.Top < bbox.Bottom {
		bbox.Top = bbox.Bottom
	}
	affine := ref.Affine.Mul(Translation(bbox.Left, bbox.Bottom))
	return NewGeoBox(bbox.Width(), bbox.Height(), affine, ref.CRS())
}

// ScaledDownGeoBox shrinks src by an integer factor, rounding the
// shape up so the result still covers the source footprint.
func ScaledDownGeoBox(src GeoBox, factor int) (GeoBox, error) {
	if factor < 2 {
		return GeoBox{}, fmt.Errorf("geogrid: scale factor must be at least 2, got %d", factor)
	}
	width := (src.Width + factor - 1) / factor
	height := (src.Height + factor - 1) / factor
	affine := src.Affine.Mul(NewScale(float64(factor), float64(factor)))
	return NewGeoBox(width, height, affine, src.CRS())
}
