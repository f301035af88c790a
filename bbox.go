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
	"math"

	"github.com/ctessum/geom"
)

// BoundingBox is an axis-aligned extent in cartesian coordinates.
// Left > Right (or Bottom > Top) represents an empty box; the
// constructor does not force-validate ordering.
type BoundingBox struct {
	Left, Bottom, Right, Top float64
}

// BBoxFromXY creates a BoundingBox from an x range (left, right) and
// a y range (bottom, top), sorting each range.
func BBoxFromXY(x1, x2, y1, y2 float64) BoundingBox {
	return BoundingBox{
		Left:   math.Min(x1, x2),
		Right:  math.Max(x1, x2),
		Bottom: math.Min(y1, y2),
		Top:    math.Max(y1, y2),
	}
}

// BBoxFromPoints creates a BoundingBox from two corner points.
func BBoxFromPoints(p1, p2 geom.Point) BoundingBox {
	return BBoxFromXY(p1.X, p2.X, p1.Y, p2.Y)
}

// Buffered returns a new box expanded by ybuff in the y dimension and
// xbuff in the x dimension.
func (b BoundingBox) Buffered(ybuff, xbuff float64) BoundingBox {
	return BoundingBox{
		Left:   b.Left - xbuff,
		Bottom: b.Bottom - ybuff,
		Right:  b.Right + xbuff,
		Top:    b.Top + ybuff,
	}
}

// SpanX returns the horizontal extent of b.
func (b BoundingBox) SpanX() float64 { return b.Right - b.Left }

// SpanY returns the vertical extent of b.
func (b BoundingBox) SpanY() float64 { return b.Top - b.Bottom }

// Width returns the horizontal extent of b truncated to an integer.
func (b BoundingBox) Width() int { return int(b.Right - b.Left) }

// Height returns the vertical extent of b truncated to an integer.
func (b BoundingBox) Height() int { return int(b.Top - b.Bottom) }

// Points returns the four corners of b.
func (b BoundingBox) Points() []geom.Point {
	return []geom.Point{
		{X: b.Left, Y: b.Bottom},
		{X: b.Left, Y: b.Top},
		{X: b.Right, Y: b.Bottom},
		{X: b.Right, Y: b.Top},
	}
}

// Transform maps the four corners of b through t and returns the
// axis-aligned bounding box of the result. This is not equivalent to
// transforming a rotated box; only axis-aligned transforms are
// supported elsewhere in this package.
func (b BoundingBox) Transform(t Affine) BoundingBox {
	o := BoundingBox{
		Left:   math.Inf(1),
		Bottom: math.Inf(1),
		Right:  math.Inf(-1),
		Top:    math.Inf(-1),
	}
	for _, p := range b.Points() {
		x, y := t.Apply(p.X, p.Y)
		o.Left = math.Min(o.Left, x)
		o.Bottom = math.Min(o.Bottom, y)
		o.Right = math.Max(o.Right, x)
		o.Top = math.Max(o.Top, y)
	}
	return o
}

// BBoxUnion returns the smallest box enclosing all the given boxes.
// The union of no boxes is the neutral element, a fully inverted box.
func BBoxUnion(bbs []BoundingBox) BoundingBox {
	o := BoundingBox{
		Left:   math.Inf(1),
		Bottom: math.Inf(1),
		Right:  math.Inf(-1),
		Top:    math.Inf(-1),
	}
	for _, b := range bbs {
		o.Left = math.Min(o.Left, b.Left)
		o.Bottom = math.Min(o.Bottom, b.Bottom)
		o.Right = math.Max(o.Right, b.Right)
		o.Top = math.Max(o.Top, b.Top)
	}
	return o
}

// BBoxIntersection returns the overlap of all the given boxes. Boxes
// that do not overlap produce an inverted (empty) box.
func BBoxIntersection(bbs []BoundingBox) BoundingBox {
	o := BoundingBox{
		Left:   math.Inf(-1),
		Bottom: math.Inf(-1),
		Right:  math.Inf(1),
		Top:    math.Inf(1),
	}
	for _, b := range bbs {
		o.Left = math.Max(o.Left, b.Left)
		o.Bottom = math.Max(o.Bottom, b.Bottom)
		o.Right = math.Min(o.Right, b.Right)
		o.Top = math.Min(o.Top, b.Top)
	}
	return o
}
