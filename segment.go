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

// Densify adds points to a coordinate sequence so that consecutive
// points are at most resolution apart. Segments longer than the
// resolution get interpolated points every resolution units before
// the original endpoint. A resolution of +Inf is a no-op. The input
// is not modified.
func Densify(coords []geom.Point, resolution float64) []geom.Point {
	if len(coords) == 0 {
		return nil
	}
	out := make([]geom.Point, 1, len(coords))
	out[0] = coords[0]
	if math.IsInf(resolution, 1) {
		return append(out, coords[1:]...)
	}
	for i := 1; i < len(coords); i++ {
		p1, p2 := coords[i-1], coords[i]
		length := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
		if length > resolution {
			for d := resolution; d < length; d += resolution {
				f := d / length
				out = append(out, geom.Point{
					X: p1.X + f*(p2.X-p1.X),
					Y: p1.Y + f*(p2.Y-p1.Y),
				})
			}
		}
		out = append(out, p2)
	}
	return out
}

// Segmented adds points to g so that no edge is longer than
// resolution. Edges that are straight in one CRS become curves in
// another, so geometries should be segmented before reprojecting.
func (g Geometry) Segmented(resolution float64) (Geometry, error) {
	gg, err := segmentize(g.Geom, resolution)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{Geom: gg, CRS: g.CRS}, nil
}

// segmentize recurses into g by shape kind. The type switch is
// exhaustive over the supported geometry set; anything else fails
// with an *UnknownGeometryTypeError.
func segmentize(g geom.Geom, resolution float64) (geom.Geom, error) {
	switch t := g.(type) {
	case geom.Point:
		return t, nil
	case geom.MultiPoint:
		return append(geom.MultiPoint{}, t...), nil
	case geom.LineString:
		return geom.LineString(Densify(t, resolution)), nil
	case geom.MultiLineString:
		ml := make(geom.MultiLineString, len(t))
		for i, l := range t {
			ml[i] = geom.LineString(Densify(l, resolution))
		}
		return ml, nil
	case geom.Polygon:
		return segmentizePolygon(t, resolution), nil
	case geom.MultiPolygon:
		mp := make(geom.MultiPolygon, len(t))
		for i, p := range t {
			mp[i] = segmentizePolygon(p, resolution)
		}
		return mp, nil
	case geom.GeometryCollection:
		gc := make(geom.GeometryCollection, len(t))
		for i, m := range t {
			var err error
			gc[i], err = segmentize(m, resolution)
			if err != nil {
				return nil, err
			}
		}
		return gc, nil
	default:
		return nil, &UnknownGeometryTypeError{Geom: g}
	}
}

func segmentizePolygon(p geom.Polygon, resolution float64) geom.Polygon {
	o := make(geom.Polygon, len(p))
	for i, ring := range p {
		o[i] = Densify(ring, resolution)
	}
	return o
}
