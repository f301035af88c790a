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

	"github.com/ctessum/geom"
	"github.com/kr/pretty"
)

func TestBoundingBoxAccessors(t *testing.T) {
	bb := BoundingBox{Left: 0, Bottom: 1, Right: 10, Top: 20}
	if bb.SpanX() != 10 || bb.SpanY() != 19 {
		t.Errorf("spans = (%g, %g), want (10, 19)", bb.SpanX(), bb.SpanY())
	}
	if bb.Width() != 10 || bb.Height() != 19 {
		t.Errorf("shape = (%d, %d), want (10, 19)", bb.Width(), bb.Height())
	}

	buf := bb.Buffered(2, 3)
	want := BoundingBox{Left: -3, Bottom: -1, Right: 13, Top: 22}
	if buf != want {
		t.Errorf("buffered = %+v, want %+v", buf, want)
	}
}

func TestBBoxFromPoints(t *testing.T) {
	bb := BBoxFromPoints(geom.Point{X: 5, Y: -2}, geom.Point{X: -1, Y: 10})
	want := BoundingBox{Left: -1, Bottom: -2, Right: 5, Top: 10}
	if bb != want {
		t.Errorf("got %+v, want %+v", bb, want)
	}
}

func TestBBoxUnion(t *testing.T) {
	b1 := BBoxFromXY(0, 10, 1, 20)
	b2 := BBoxFromXY(5, 11, 6, 22)

	u := BBoxUnion([]BoundingBox{b1, b2})
	want := BoundingBox{Left: 0, Bottom: 1, Right: 11, Top: 22}
	if diff := pretty.Diff(u, want); len(diff) != 0 {
		t.Error(diff)
	}

	// Union is commutative and self-union is the identity.
	if BBoxUnion([]BoundingBox{b2, b1}) != u {
		t.Error("union should not depend on input order")
	}
	if BBoxUnion([]BoundingBox{b1, b1}) != b1 {
		t.Error("self-union should return the same box")
	}
}

func TestBBoxIntersection(t *testing.T) {
	b1 := BBoxFromXY(0, 10, 1, 20)
	b2 := BBoxFromXY(5, 11, 6, 22)

	i := BBoxIntersection([]BoundingBox{b1, b2})
	want := BoundingBox{Left: 5, Bottom: 6, Right: 10, Top: 20}
	if i != want {
		t.Errorf("got %+v, want %+v", i, want)
	}

	// Disjoint boxes yield inverted edges rather than a valid box.
	b3 := BBoxFromXY(100, 110, 100, 110)
	d := BBoxIntersection([]BoundingBox{b1, b3})
	if d.Right >= d.Left || d.Top >= d.Bottom {
		t.Errorf("disjoint intersection should be inverted, got %+v", d)
	}
}

func TestBoundingBoxTransform(t *testing.T) {
	// North-up transform flips rows, so the corner order changes but
	// the bounds stay well-formed.
	a := Translation(100, 200).Mul(NewScale(1, -1))
	bb := BBoxFromXY(0, 10, 0, 5).Transform(a)
	want := BoundingBox{Left: 100, Bottom: 195, Right: 110, Top: 200}
	if bb != want {
		t.Errorf("got %+v, want %+v", bb, want)
	}
}
