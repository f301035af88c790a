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
	"github.com/ctessum/geom/proj"
	"github.com/kr/pretty"
)

func TestDensify(t *testing.T) {
	line := []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 0}}
	got := Densify(line, 1)
	want := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	if diff := pretty.Diff(got, want); len(diff) != 0 {
		t.Error(diff)
	}

	// Segments already short enough are untouched.
	got = Densify(line, 5)
	if diff := pretty.Diff(got, line); len(diff) != 0 {
		t.Error(diff)
	}

	// Infinite resolution is a no-op copy.
	got = Densify(line, math.Inf(1))
	if diff := pretty.Diff(got, line); len(diff) != 0 {
		t.Error(diff)
	}
	got[0].X = 99
	if line[0].X == 99 {
		t.Error("densify should not alias its input")
	}
}

func TestDensifyKeepsOriginalPoints(t *testing.T) {
	line := []geom.Point{{X: 0, Y: 0}, {X: 2.5, Y: 0}, {X: 2.5, Y: 7}}
	got := Densify(line, 1)
	j := 0
	for _, p := range got {
		if j < len(line) && p == line[j] {
			j++
		}
	}
	if j != len(line) {
		t.Errorf("only %d of %d original points survived", j, len(line))
	}
	for i := 1; i < len(got); i++ {
		d := math.Hypot(got[i].X-got[i-1].X, got[i].Y-got[i-1].Y)
		if d > 1+1e-9 {
			t.Errorf("segment %d has length %g, want <= 1", i, d)
		}
	}
}

func TestSegmented(t *testing.T) {
	crs := MustParseCRS("EPSG:3577")
	box := NewBox(0, 0, 2, 2, crs)

	seg, err := box.Segmented(1)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := seg.Geom.(geom.Polygon)
	if !ok {
		t.Fatalf("segmented type = %T", seg.Geom)
	}
	// Each 2-unit side gains one midpoint: 5 ring points become 9.
	if len(p[0]) != 9 {
		t.Errorf("ring has %d points, want 9", len(p[0]))
	}
	if area := seg.Area(); math.Abs(area-4) > 1e-12 {
		t.Errorf("segmentation changed the area to %g", area)
	}

	// Exact-arithmetic subdivision is idempotent.
	again, err := seg.Segmented(1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(seg.Geom, again.Geom); len(diff) != 0 {
		t.Error(diff)
	}
}

// opaqueShape implements geom.Geom without being any of the shape
// kinds segmentation understands.
type opaqueShape struct{}

func (opaqueShape) Bounds() *geom.Bounds                          { return geom.NewBounds() }
func (opaqueShape) Similar(geom.Geom, float64) bool               { return false }
func (opaqueShape) Transform(proj.Transformer) (geom.Geom, error) { return opaqueShape{}, nil }
func (opaqueShape) Len() int                                      { return 0 }
func (opaqueShape) Points() func() geom.Point                     { return func() geom.Point { return geom.Point{} } }

func TestSegmentedUnknownType(t *testing.T) {
	g := Geometry{Geom: opaqueShape{}}
	_, err := g.Segmented(1)
	if _, ok := err.(*UnknownGeometryTypeError); !ok {
		t.Errorf("error = %v (%T), want *UnknownGeometryTypeError", err, err)
	}
}
