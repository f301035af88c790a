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
	"testing"

	"github.com/ctessum/geom"
)

func TestNewBox(t *testing.T) {
	crs := MustParseCRS("EPSG:3577")
	b := NewBox(0, 0, 10, 20, crs)
	if a := b.Area(); a != 200 {
		t.Errorf("area = %g, want 200", a)
	}
	bb := b.BoundingBox()
	want := BoundingBox{Left: 0, Bottom: 0, Right: 10, Top: 20}
	if bb != want {
		t.Errorf("bounding box = %+v, want %+v", bb, want)
	}
	if n := len(Sides(b)); n != 4 {
		t.Errorf("sides = %d, want 4", n)
	}

	c, err := b.Centroid()
	if err != nil {
		t.Fatal(err)
	}
	p, ok := c.Geom.(geom.Point)
	if !ok {
		t.Fatalf("centroid type = %T", c.Geom)
	}
	if p.X != 5 || p.Y != 10 {
		t.Errorf("centroid = (%g, %g), want (5, 10)", p.X, p.Y)
	}
}

func TestIsEmpty(t *testing.T) {
	if (Geometry{}).IsEmpty() != true {
		t.Error("zero geometry should be empty")
	}
	if NewPoint(1, 2, nil).IsEmpty() {
		t.Error("a point is never empty")
	}
	if !NewMultiPolygon(nil, nil).IsEmpty() {
		t.Error("an empty multi-polygon should be empty")
	}
	if NewBox(0, 0, 1, 1, nil).IsEmpty() {
		t.Error("a box should not be empty")
	}
}

func TestIntersection(t *testing.T) {
	crs := MustParseCRS("EPSG:3577")
	a := NewBox(0, 0, 10, 10, crs)
	b := NewBox(5, 5, 15, 15, crs)

	i, err := a.Intersection(b)
	if err != nil {
		t.Fatal(err)
	}
	if area := i.Area(); math.Abs(area-25) > 1e-9 {
		t.Errorf("intersection area = %g, want 25", area)
	}
	if i.CRS != crs {
		t.Error("result should carry the CRS of the receiver")
	}

	u, err := a.Union(b)
	if err != nil {
		t.Fatal(err)
	}
	if area := u.Area(); math.Abs(area-175) > 1e-9 {
		t.Errorf("union area = %g, want 175", area)
	}

	d, err := a.Difference(b)
	if err != nil {
		t.Fatal(err)
	}
	if area := d.Area(); math.Abs(area-75) > 1e-9 {
		t.Errorf("difference area = %g, want 75", area)
	}

	x, err := a.SymmetricDifference(b)
	if err != nil {
		t.Fatal(err)
	}
	if area := x.Area(); math.Abs(area-150) > 1e-9 {
		t.Errorf("symmetric difference area = %g, want 150", area)
	}
}

func TestCRSMismatch(t *testing.T) {
	a := NewBox(0, 0, 10, 10, MustParseCRS("EPSG:3577"))
	b := NewBox(5, 5, 15, 15, MustParseCRS("EPSG:4326"))
	_, err := a.Intersection(b)
	if _, ok := err.(*CRSMismatchError); !ok {
		t.Errorf("error = %v (%T), want *CRSMismatchError", err, err)
	}

	// nil CRS is a distinct value, not a wildcard.
	c := NewBox(5, 5, 15, 15, nil)
	if _, err := a.Union(c); err == nil {
		t.Error("operating across nil and non-nil CRS should fail")
	}
}

func TestIntersectsContains(t *testing.T) {
	crs := MustParseCRS("EPSG:3577")
	box := NewBox(0, 0, 10, 10, crs)

	in := NewPoint(5, 5, crs)
	ok, err := box.Intersects(in)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("interior point should intersect the box")
	}

	out := NewPoint(50, 50, crs)
	ok, err = box.Intersects(out)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("distant point should not intersect the box")
	}

	inner := NewBox(2, 2, 8, 8, crs)
	ok, err = box.Contains(inner)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("box should contain a box inside it")
	}
	ok, err = inner.Contains(box)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("a box does not contain a bigger box")
	}
}

func TestOverlayRequiresPolygons(t *testing.T) {
	crs := MustParseCRS("EPSG:3577")
	box := NewBox(0, 0, 10, 10, crs)
	line := NewLine([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, crs)
	if _, err := box.Union(line); err == nil {
		t.Error("union with a line should fail")
	}
	if _, err := line.Difference(box); err == nil {
		t.Error("difference starting from a line should fail")
	}
	if _, _, err := UnaryUnion([]Geometry{line}); err == nil {
		t.Error("unary union of a line should fail")
	}
}

func TestUnaryUnion(t *testing.T) {
	crs := MustParseCRS("EPSG:3577")
	boxes := []Geometry{
		NewBox(0, 0, 10, 10, crs),
		NewBox(10, 0, 20, 10, crs),
		NewBox(0, 10, 10, 20, crs),
	}
	u, ok, err := UnaryUnion(boxes)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("union of three boxes should exist")
	}
	if area := u.Area(); math.Abs(area-300) > 1e-9 {
		t.Errorf("area = %g, want 300", area)
	}

	if _, ok, err := UnaryUnion(nil); err != nil || ok {
		t.Errorf("union of nothing: ok = %v, err = %v", ok, err)
	}

	mixed := []Geometry{
		NewBox(0, 0, 1, 1, crs),
		NewBox(0, 0, 1, 1, MustParseCRS("EPSG:4326")),
	}
	if _, _, err := UnaryUnion(mixed); err == nil {
		t.Error("mixed CRS values should fail")
	}
}

func TestUnaryIntersection(t *testing.T) {
	crs := MustParseCRS("EPSG:3577")
	boxes := []Geometry{
		NewBox(0, 0, 10, 10, crs),
		NewBox(2, 2, 12, 12, crs),
		NewBox(4, 4, 14, 14, crs),
	}
	i, ok, err := UnaryIntersection(boxes)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("intersection of three boxes should exist")
	}
	if area := i.Area(); math.Abs(area-36) > 1e-9 {
		t.Errorf("area = %g, want 36", area)
	}

	if _, ok, err := UnaryIntersection(nil); err != nil || ok {
		t.Errorf("intersection of nothing: ok = %v, err = %v", ok, err)
	}
}

func TestSimilar(t *testing.T) {
	crs := MustParseCRS("EPSG:3577")
	a := NewBox(0, 0, 10, 10, crs)
	b := NewBox(0, 0, 10, 10.0000001, crs)
	if !a.Similar(b, 1e-3) {
		t.Error("nearly identical boxes should be similar")
	}
	if a.Similar(NewBox(0, 0, 10, 10, MustParseCRS("EPSG:4326")), 1e-3) {
		t.Error("geometries in different CRSs are never similar")
	}
}

func TestSimplify(t *testing.T) {
	crs := MustParseCRS("EPSG:3577")
	// A box with a redundant midpoint on one edge.
	p := NewPolygon([]geom.Point{
		{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 5, Y: 10}, {X: 10, Y: 10},
		{X: 10, Y: 0}, {X: 0, Y: 0},
	}, crs)
	s := p.Simplify(0.01)
	if area := s.Area(); math.Abs(area-100) > 1e-9 {
		t.Errorf("simplified area = %g, want 100", area)
	}

	pt := NewPoint(1, 2, crs)
	if got := pt.Simplify(0.01); got.Geom != pt.Geom {
		t.Error("simplifying a point should return it unchanged")
	}
}
