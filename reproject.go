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
	"github.com/ctessum/geom/proj"
)

// Default segmentation resolutions used by ToCRS when the caller
// passes zero: one degree for geographic sources and 100 km for
// projected ones.
const (
	defaultGeographicResolution = 1
	defaultProjectedResolution  = 100000
)

// ToCRS converts g to a different coordinate reference system.
//
// resolution bounds the edge length of the geometry before the
// conversion: the geometry is subdivided so that no segment is longer
// than the given distance in source units. Zero selects the default
// (1 degree for geographic sources, 100000 units otherwise);
// math.Inf(1) disables subdivision entirely.
//
// When wrapDateline is true and dst is geographic, the geometry is
// split at the antimeridian before conversion when the source
// projection is smooth across it, avoiding wrap-around artifacts.
// Splitting applies to polygonal geometries.
//
// Converting to the CRS the geometry already has returns g unchanged.
// A geometry without a CRS cannot be converted and fails with a
// *MissingCRSError.
func (g Geometry) ToCRS(dst *CRS, resolution float64, wrapDateline bool) (Geometry, error) {
	if crsEqual(g.CRS, dst) {
		return g, nil
	}
	if g.CRS == nil {
		return Geometry{}, &MissingCRSError{}
	}
	if dst == nil {
		return Geometry{}, &InvalidCRSError{Input: "<nil>"}
	}
	if resolution == 0 {
		if g.CRS.Geographic() {
			resolution = defaultGeographicResolution
		} else {
			resolution = defaultProjectedResolution
		}
	}

	forward, err := g.CRS.TransformerTo(dst)
	if err != nil {
		return Geometry{}, err
	}

	shape := g.Geom
	if !math.IsInf(resolution, 1) {
		shape, err = segmentize(shape, resolution)
		if err != nil {
			return Geometry{}, err
		}
	}

	if wrapDateline && dst.Geographic() {
		reverse, err := dst.TransformerTo(g.CRS)
		if err != nil {
			return Geometry{}, err
		}
		shape = chopAlongAntimeridian(shape, forward, reverse)
	}

	out, err := shape.Transform(forward)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{Geom: out, CRS: dst}, nil
}

// CRSUnitsPerDegree computes the number of CRS units per degree of
// longitude for a projected CRS at the given lon/lat location: a
// scale S such that S*degrees yields CRS units.
func CRSUnitsPerDegree(crs *CRS, lon, lat float64) (float64, error) {
	const step = 0.1
	lon2 := lon + step
	if lon2 > 180 {
		lon2 = lon - step
	}
	wgs84, err := ParseCRS("EPSG:4326")
	if err != nil {
		return 0, err
	}
	ll := NewLine([]geom.Point{{X: lon, Y: lat}, {X: lon2, Y: lat}}, wgs84)
	xy, err := ll.ToCRS(crs, math.Inf(1), false)
	if err != nil {
		return 0, err
	}
	return xy.Length() / step, nil
}

// datelineEps is the probe offset, in degrees, used when testing
// whether a projection wraps smoothly across the antimeridian.
const datelineEps = 1.0e-9

// chopAlongAntimeridian splits a polygonal geometry at the dateline
// when the source projection is smooth across it, so that the
// subsequent conversion to a geographic CRS does not produce spurious
// edges spanning the full longitude range. Geometries the chop does
// not apply to are returned unchanged; the heuristic never fails.
func chopAlongAntimeridian(g geom.Geom, forward, reverse proj.Transformer) geom.Geom {
	poly, ok := g.(geom.Polygonal)
	if !ok {
		return g
	}
	b := g.Bounds()
	midx := (b.Min.X + b.Max.X) / 2
	midy := (b.Min.Y + b.Max.Y) / 2
	_, midLat, err := forward(midx, midy)
	if err != nil || math.IsNaN(midLat) {
		return g
	}
	if !isSmoothAcrossDateline(midLat, forward, reverse, datelineEps) {
		return g
	}

	leftOfDT := transformProbeLine(geom.LineString(Densify([]geom.Point{
		{X: 180 - datelineEps, Y: -90},
		{X: 180 - datelineEps, Y: 90},
	}, 1)), reverse)
	if len(leftOfDT) < 2 || !lineIntersectsPolygonal(leftOfDT, poly) {
		return g
	}

	rightOfDT := transformProbeLine(geom.LineString(Densify([]geom.Point{
		{X: -180 + datelineEps, Y: -90},
		{X: -180 + datelineEps, Y: 90},
	}, 1)), reverse)
	if len(rightOfDT) < 2 {
		return g
	}

	ring1 := make([]geom.Point, 0, len(leftOfDT)+3)
	ring1 = append(ring1, geom.Point{X: b.Min.X, Y: b.Max.Y}, geom.Point{X: b.Min.X, Y: b.Min.Y})
	ring1 = append(ring1, leftOfDT...)
	ring1 = append(ring1, geom.Point{X: b.Min.X, Y: b.Max.Y})

	ring2 := make([]geom.Point, 0, len(rightOfDT)+3)
	ring2 = append(ring2, geom.Point{X: b.Max.X, Y: b.Max.Y}, geom.Point{X: b.Max.X, Y: b.Min.Y})
	ring2 = append(ring2, rightOfDT...)
	ring2 = append(ring2, geom.Point{X: b.Max.X, Y: b.Max.Y})

	// Clip against each side separately: the engine flattens the
	// contours of a single clip into one polygon, which would stitch
	// both sides of the dateline back together.
	chopped := make(geom.MultiPolygon, 0, 2)
	for _, side := range []geom.Polygon{{ring1}, {ring2}} {
		part := poly.Intersection(side)
		if part == nil {
			continue
		}
		for _, p := range part.Polygons() {
			if p.Area() > 0 {
				chopped = append(chopped, p)
			}
		}
	}
	if len(chopped) == 0 {
		return g
	}
	return chopped
}

// isSmoothAcrossDateline probes the projection immediately either
// side of the antimeridian at the given latitude. The distance
// threshold of 1 and the angular threshold of 2*eps are empirically
// tuned constants.
func isSmoothAcrossDateline(midLat float64, forward, reverse proj.Transformer, eps float64) bool {
	leftX, leftY, err := reverse(180-eps, midLat)
	if err != nil {
		return false
	}
	rightX, rightY, err := reverse(-180+eps, midLat)
	if err != nil {
		return false
	}
	if dist2(rightX-leftX, rightY-leftY) > 1 {
		return false
	}

	leftLon, leftLat, err := forward(leftX, leftY)
	if err != nil {
		return false
	}
	rightLon, rightLat, err := forward(rightX, rightY)
	if err != nil {
		return false
	}
	if dist2(leftLon-180+eps, leftLat-midLat) > 2*eps ||
		dist2(rightLon+180-eps, rightLat-midLat) > 2*eps {
		return false
	}
	return true
}

func dist2(x, y float64) float64 { return x*x + y*y }

// transformProbeLine maps a probe line through t pointwise, dropping
// points that fail to convert or fall outside the projection's
// domain (the poles, for many projections).
func transformProbeLine(l geom.LineString, t proj.Transformer) geom.LineString {
	out := make(geom.LineString, 0, len(l))
	for _, p := range l {
		x, y, err := t(p.X, p.Y)
		if err != nil || math.IsNaN(x) || math.IsNaN(y) ||
			math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		out = append(out, geom.Point{X: x, Y: y})
	}
	return out
}

// lineIntersectsPolygonal reports whether l touches or crosses p.
// The geometry engine keeps its segment-intersection routines
// private, so the crossing test is done against the polygon rings
// directly.
func lineIntersectsPolygonal(l geom.LineString, p geom.Polygonal) bool {
	if !l.Bounds().Overlaps(p.Bounds()) {
		return false
	}
	for _, pt := range l {
		if pt.Within(p) != geom.Outside {
			return true
		}
	}
	for i := 1; i < len(l); i++ {
		for _, poly := range p.Polygons() {
			for _, ring := range poly {
				for j := range ring {
					k := (j + 1) % len(ring)
					if segmentsCross(l[i-1], l[i], ring[j], ring[k]) {
						return true
					}
				}
			}
		}
	}
	return false
}

// segmentsCross reports whether segments ab and cd properly
// intersect.
func segmentsCross(a, b, c, d geom.Point) bool {
	d1 := crossProduct(c, d, a)
	d2 := crossProduct(c, d, b)
	d3 := crossProduct(a, b, c)
	d4 := crossProduct(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func crossProduct(o, a, p geom.Point) float64 {
	return (a.X-o.X)*(p.Y-o.Y) - (a.Y-o.Y)*(p.X-o.X)
}
