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

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/op"
)

// Geometry is a 2D shape paired with an optional coordinate reference
// system. The zero value is an empty geometry without a CRS.
//
// Geometry values are immutable: operations return new values.
// Operations combining two geometries require their CRS values to be
// equal (nil counts as a distinct "no CRS" value) and fail with a
// *CRSMismatchError otherwise.
type Geometry struct {
	Geom geom.Geom
	CRS  *CRS
}

// NewGeometry wraps a geometry-engine shape with a CRS.
func NewGeometry(g geom.Geom, crs *CRS) Geometry {
	return Geometry{Geom: g, CRS: crs}
}

// NewPoint creates a point geometry.
func NewPoint(x, y float64, crs *CRS) Geometry {
	return Geometry{Geom: geom.Point{X: x, Y: y}, CRS: crs}
}

// NewMultiPoint creates a multi-point geometry.
func NewMultiPoint(points []geom.Point, crs *CRS) Geometry {
	return Geometry{Geom: geom.MultiPoint(points), CRS: crs}
}

// NewLine creates a line geometry connecting the given points.
func NewLine(points []geom.Point, crs *CRS) Geometry {
	return Geometry{Geom: geom.LineString(points), CRS: crs}
}

// NewMultiLine creates a geometry of multiple disconnected lines.
func NewMultiLine(lines [][]geom.Point, crs *CRS) Geometry {
	ml := make(geom.MultiLineString, len(lines))
	for i, l := range lines {
		ml[i] = geom.LineString(l)
	}
	return Geometry{Geom: ml, CRS: crs}
}

// NewPolygon creates a polygon geometry from an outer ring and zero
// or more inner rings.
func NewPolygon(outer []geom.Point, crs *CRS, inners ...[]geom.Point) Geometry {
	p := make(geom.Polygon, 0, len(inners)+1)
	p = append(p, outer)
	for _, ring := range inners {
		p = append(p, ring)
	}
	return Geometry{Geom: p, CRS: crs}
}

// NewMultiPolygon creates a multi-polygon geometry.
func NewMultiPolygon(polys []geom.Polygon, crs *CRS) Geometry {
	return Geometry{Geom: geom.MultiPolygon(polys), CRS: crs}
}

// NewBox creates a rectangular polygon from its extent.
func NewBox(left, bottom, right, top float64, crs *CRS) Geometry {
	return NewPolygon([]geom.Point{
		{X: left, Y: bottom},
		{X: left, Y: top},
		{X: right, Y: top},
		{X: right, Y: bottom},
		{X: left, Y: bottom},
	}, crs)
}

// PolygonFromTransform creates the polygon swept by mapping the
// rectangle [0,width]×[0,height] through t.
func PolygonFromTransform(width, height float64, t Affine, crs *CRS) Geometry {
	corners := [][2]float64{{0, 0}, {0, height}, {width, height}, {width, 0}, {0, 0}}
	ring := make([]geom.Point, len(corners))
	for i, c := range corners {
		x, y := t.Apply(c[0], c[1])
		ring[i] = geom.Point{X: x, Y: y}
	}
	return NewPolygon(ring, crs)
}

// Sides returns one line geometry for each side of the exterior ring
// of the given polygon.
func Sides(poly Geometry) []Geometry {
	p, ok := poly.Geom.(geom.Polygonal)
	if !ok {
		return nil
	}
	polys := p.Polygons()
	if len(polys) == 0 || len(polys[0]) == 0 {
		return nil
	}
	ring := polys[0][0]
	sides := make([]Geometry, 0, len(ring))
	for i := 1; i < len(ring); i++ {
		sides = append(sides, NewLine([]geom.Point{ring[i-1], ring[i]}, poly.CRS))
	}
	return sides
}

// IsEmpty reports whether g contains no coordinates.
func (g Geometry) IsEmpty() bool {
	return geomIsEmpty(g.Geom)
}

func geomIsEmpty(g geom.Geom) bool {
	switch t := g.(type) {
	case nil:
		return true
	case geom.Point:
		return false
	case geom.MultiPoint:
		return len(t) == 0
	case geom.LineString:
		return len(t) == 0
	case geom.MultiLineString:
		for _, l := range t {
			if len(l) > 0 {
				return false
			}
		}
		return true
	case geom.Polygon:
		for _, r := range t {
			if len(r) > 0 {
				return false
			}
		}
		return true
	case geom.MultiPolygon:
		for _, p := range t {
			if !geomIsEmpty(p) {
				return false
			}
		}
		return true
	case geom.GeometryCollection:
		for _, m := range t {
			if !geomIsEmpty(m) {
				return false
			}
		}
		return true
	}
	return false
}

// BoundingBox returns the axis-aligned extent of g.
func (g Geometry) BoundingBox() BoundingBox {
	b := g.Geom.Bounds()
	return BoundingBox{Left: b.Min.X, Bottom: b.Min.Y, Right: b.Max.X, Top: b.Max.Y}
}

// Area returns the area of g.
func (g Geometry) Area() float64 { return op.Area(g.Geom) }

// Length returns the length of g.
func (g Geometry) Length() float64 { return op.Length(g.Geom) }

// Centroid returns the centroid of g.
func (g Geometry) Centroid() (Geometry, error) {
	c, err := op.Centroid(g.Geom)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{Geom: c, CRS: g.CRS}, nil
}

// Simplify returns a simplified copy of g. Shapes the geometry engine
// cannot simplify (points) are returned unchanged.
func (g Geometry) Simplify(tolerance float64) Geometry {
	if s, ok := g.Geom.(geom.Simplifier); ok {
		return Geometry{Geom: s.Simplify(tolerance), CRS: g.CRS}
	}
	return g
}

// Similar reports whether g and o have the same CRS and shapes that
// match within tolerance.
func (g Geometry) Similar(o Geometry, tolerance float64) bool {
	if !crsEqual(g.CRS, o.CRS) {
		return false
	}
	if g.Geom == nil || o.Geom == nil {
		return g.Geom == nil && o.Geom == nil
	}
	return g.Geom.Similar(o.Geom, tolerance)
}

func (g Geometry) checkCRS(o Geometry) error {
	if !crsEqual(g.CRS, o.CRS) {
		return &CRSMismatchError{A: g.CRS, B: o.CRS}
	}
	return nil
}

// Intersection returns the area shared by g and o, tagged with the
// CRS of g.
func (g Geometry) Intersection(o Geometry) (Geometry, error) {
	return g.construct(o, op.INTERSECTION)
}

// Union returns the combination of g and o, tagged with the CRS of g.
func (g Geometry) Union(o Geometry) (Geometry, error) {
	return g.construct(o, op.UNION)
}

// Difference subtracts o from g.
func (g Geometry) Difference(o Geometry) (Geometry, error) {
	return g.construct(o, op.DIFFERENCE)
}

// SymmetricDifference returns the parts of g and o not shared by
// both.
func (g Geometry) SymmetricDifference(o Geometry) (Geometry, error) {
	return g.construct(o, op.XOR)
}

func (g Geometry) construct(o Geometry, operation op.Op) (Geometry, error) {
	if err := g.checkCRS(o); err != nil {
		return Geometry{}, err
	}
	a, b, err := polygonalPair(g.Geom, o.Geom)
	if err != nil {
		return Geometry{}, err
	}
	var result geom.Polygonal
	switch operation {
	case op.INTERSECTION:
		result = a.Intersection(b)
	case op.UNION:
		result = a.Union(b)
	case op.DIFFERENCE:
		result = a.Difference(b)
	case op.XOR:
		result = a.XOr(b)
	default:
		return Geometry{}, fmt.Errorf("geogrid: unknown overlay operation %d", operation)
	}
	return Geometry{Geom: result, CRS: g.CRS}, nil
}

// polygonalPair narrows two shapes to the engine's polygon-clipping
// interface. Overlay operations are only defined for polygonal
// operands.
func polygonalPair(a, b geom.Geom) (geom.Polygonal, geom.Polygonal, error) {
	pa, ok := a.(geom.Polygonal)
	if !ok {
		return nil, nil, op.UnsupportedGeometryError{G: a}
	}
	pb, ok := b.(geom.Polygonal)
	if !ok {
		return nil, nil, op.UnsupportedGeometryError{G: b}
	}
	return pa, pb, nil
}

// Intersects reports whether the interiors of g and o overlap.
func (g Geometry) Intersects(o Geometry) (bool, error) {
	if err := g.checkCRS(o); err != nil {
		return false, err
	}
	if g.Geom == nil || o.Geom == nil {
		return false, nil
	}
	if !g.Geom.Bounds().Overlaps(o.Geom.Bounds()) {
		return false, nil
	}
	if p, ok := g.Geom.(geom.PointLike); ok {
		if poly, ok := o.Geom.(geom.Polygonal); ok {
			return p.Within(poly) != geom.Outside, nil
		}
	}
	if p, ok := o.Geom.(geom.PointLike); ok {
		if poly, ok := g.Geom.(geom.Polygonal); ok {
			return p.Within(poly) != geom.Outside, nil
		}
	}
	a, b, err := polygonalPair(g.Geom, o.Geom)
	if err != nil {
		return false, err
	}
	isect := a.Intersection(b)
	return isect != nil && isect.Area() > 0, nil
}

// Contains reports whether o lies within g.
func (g Geometry) Contains(o Geometry) (bool, error) {
	if err := g.checkCRS(o); err != nil {
		return false, err
	}
	return op.Within(o.Geom, g.Geom)
}

// UnaryUnion computes the union of the given geometries. The second
// return value is false when geoms is empty; a CRS disagreement fails
// with a *CRSMismatchError.
func UnaryUnion(geoms []Geometry) (Geometry, bool, error) {
	if len(geoms) == 0 {
		return Geometry{}, false, nil
	}
	crs := geoms[0].CRS
	for _, g := range geoms[1:] {
		if !crsEqual(crs, g.CRS) {
			return Geometry{}, false, &CRSMismatchError{A: crs, B: g.CRS}
		}
	}
	u, ok := geoms[0].Geom.(geom.Polygonal)
	if !ok {
		return Geometry{}, false, op.UnsupportedGeometryError{G: geoms[0].Geom}
	}
	for _, g := range geoms[1:] {
		p, ok := g.Geom.(geom.Polygonal)
		if !ok {
			return Geometry{}, false, op.UnsupportedGeometryError{G: g.Geom}
		}
		u = u.Union(p)
	}
	return Geometry{Geom: u, CRS: crs}, true, nil
}

// UnaryIntersection computes the intersection of the given
// geometries by a left fold. The second return value is false when
// geoms is empty.
func UnaryIntersection(geoms []Geometry) (Geometry, bool, error) {
	if len(geoms) == 0 {
		return Geometry{}, false, nil
	}
	acc := geoms[0]
	for _, g := range geoms[1:] {
		var err error
		acc, err = acc.Intersection(g)
		if err != nil {
			return Geometry{}, false, err
		}
	}
	return acc, true, nil
}
