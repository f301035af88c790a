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
	"encoding/json"
	"fmt"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
)

// FromGeoJSON converts a GeoJSON geometry to a Geometry tagged with
// crs. All six geometry types are supported. Coordinates with more
// than two ordinates are truncated to 2D; geometries are always
// exactly two-dimensional.
func FromGeoJSON(gj *geojson.Geometry, crs *CRS) (Geometry, error) {
	g, err := decodeGeoJSONShape(gj.Type, gj.Coordinates)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{Geom: g, CRS: crs}, nil
}

// DecodeGeoJSON parses GeoJSON geometry data (including
// GeometryCollection) into a Geometry tagged with crs.
func DecodeGeoJSON(data []byte, crs *CRS) (Geometry, error) {
	var raw struct {
		Type        string            `json:"type"`
		Coordinates interface{}       `json:"coordinates"`
		Geometries  []json.RawMessage `json:"geometries"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Geometry{}, err
	}
	if raw.Type == "GeometryCollection" {
		gc := make(geom.GeometryCollection, len(raw.Geometries))
		for i, member := range raw.Geometries {
			g, err := DecodeGeoJSON(member, nil)
			if err != nil {
				return Geometry{}, err
			}
			gc[i] = g.Geom
		}
		return Geometry{Geom: gc, CRS: crs}, nil
	}
	return FromGeoJSON(&geojson.Geometry{Type: raw.Type, Coordinates: raw.Coordinates}, crs)
}

func decodeGeoJSONShape(typ string, coordinates interface{}) (geom.Geom, error) {
	switch typ {
	case "Point":
		p, err := decodePosition(coordinates)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "MultiPoint":
		pts, err := decodePositions(coordinates)
		if err != nil {
			return nil, err
		}
		return geom.MultiPoint(pts), nil
	case "LineString":
		pts, err := decodePositions(coordinates)
		if err != nil {
			return nil, err
		}
		return geom.LineString(pts), nil
	case "MultiLineString":
		rings, err := decodeRings(coordinates)
		if err != nil {
			return nil, err
		}
		ml := make(geom.MultiLineString, len(rings))
		for i, r := range rings {
			ml[i] = geom.LineString(r)
		}
		return ml, nil
	case "Polygon":
		rings, err := decodeRings(coordinates)
		if err != nil {
			return nil, err
		}
		return rings, nil
	case "MultiPolygon":
		array, ok := coordinates.([]interface{})
		if !ok {
			return nil, &geojson.InvalidGeometryError{}
		}
		mp := make(geom.MultiPolygon, len(array))
		for i, element := range array {
			rings, err := decodeRings(element)
			if err != nil {
				return nil, err
			}
			mp[i] = rings
		}
		return mp, nil
	default:
		return nil, &geojson.UnsupportedGeometryError{Type: typ}
	}
}

// decodePosition converts a GeoJSON position to a point, dropping
// any Z ordinate.
func decodePosition(v interface{}) (geom.Point, error) {
	switch t := v.(type) {
	case []interface{}:
		if len(t) < 2 {
			return geom.Point{}, &geojson.InvalidGeometryError{}
		}
		x, xok := toFloat(t[0])
		y, yok := toFloat(t[1])
		if !xok || !yok {
			return geom.Point{}, &geojson.InvalidGeometryError{}
		}
		return geom.Point{X: x, Y: y}, nil
	case []float64:
		if len(t) < 2 {
			return geom.Point{}, &geojson.InvalidGeometryError{}
		}
		return geom.Point{X: t[0], Y: t[1]}, nil
	}
	return geom.Point{}, &geojson.InvalidGeometryError{}
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	}
	return 0, false
}

func decodePositions(v interface{}) ([]geom.Point, error) {
	array, ok := v.([]interface{})
	if !ok {
		return nil, &geojson.InvalidGeometryError{}
	}
	points := make([]geom.Point, len(array))
	for i, element := range array {
		p, err := decodePosition(element)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

func decodeRings(v interface{}) (geom.Polygon, error) {
	array, ok := v.([]interface{})
	if !ok {
		return nil, &geojson.InvalidGeometryError{}
	}
	rings := make(geom.Polygon, len(array))
	for i, element := range array {
		r, err := decodePositions(element)
		if err != nil {
			return nil, err
		}
		rings[i] = r
	}
	return rings, nil
}

// ToGeoJSON converts g to a GeoJSON interchange value. Geometry
// collections cannot be expressed by the interchange type; use
// EncodeGeoJSON for those.
func ToGeoJSON(g Geometry) (*geojson.Geometry, error) {
	switch t := g.Geom.(type) {
	case geom.Point:
		return &geojson.Geometry{Type: "Point", Coordinates: positionCoords(t)}, nil
	case geom.MultiPoint:
		return &geojson.Geometry{Type: "MultiPoint", Coordinates: positionsCoords(t)}, nil
	case geom.LineString:
		return &geojson.Geometry{Type: "LineString", Coordinates: positionsCoords(t)}, nil
	case geom.MultiLineString:
		coords := make([][][]float64, len(t))
		for i, l := range t {
			coords[i] = positionsCoords(l)
		}
		return &geojson.Geometry{Type: "MultiLineString", Coordinates: coords}, nil
	case geom.Polygon:
		return &geojson.Geometry{Type: "Polygon", Coordinates: ringsCoords(t)}, nil
	case geom.MultiPolygon:
		coords := make([][][][]float64, len(t))
		for i, p := range t {
			coords[i] = ringsCoords(p)
		}
		return &geojson.Geometry{Type: "MultiPolygon", Coordinates: coords}, nil
	default:
		return nil, &UnknownGeometryTypeError{Geom: g.Geom}
	}
}

// EncodeGeoJSON marshals g as GeoJSON geometry data.
func EncodeGeoJSON(g Geometry) ([]byte, error) {
	if gc, ok := g.Geom.(geom.GeometryCollection); ok {
		members := make([]json.RawMessage, len(gc))
		for i, m := range gc {
			data, err := EncodeGeoJSON(Geometry{Geom: m})
			if err != nil {
				return nil, err
			}
			members[i] = data
		}
		return json.Marshal(struct {
			Type       string            `json:"type"`
			Geometries []json.RawMessage `json:"geometries"`
		}{Type: "GeometryCollection", Geometries: members})
	}
	gj, err := ToGeoJSON(g)
	if err != nil {
		return nil, fmt.Errorf("geogrid: encoding GeoJSON: %v", err)
	}
	return json.Marshal(gj)
}

func positionCoords(p geom.Point) []float64 {
	return []float64{p.X, p.Y}
}

func positionsCoords(points []geom.Point) [][]float64 {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = positionCoords(p)
	}
	return coords
}

func ringsCoords(rings geom.Polygon) [][][]float64 {
	coords := make([][][]float64, len(rings))
	for i, r := range rings {
		coords[i] = positionsCoords(r)
	}
	return coords
}
