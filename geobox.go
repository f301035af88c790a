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
)

// Coordinate holds the labels along one axis of a GeoBox: the
// coordinates of the center of every pixel in that dimension.
type Coordinate struct {
	Values     []float64
	Units      string
	Resolution float64
}

// GeoBox is a bounded, gridded region of space: a pixel grid of the
// given width and height whose placement on the Earth is defined by
// an affine transform from pixel coordinates to CRS coordinates.
type GeoBox struct {
	// Width and Height are the grid dimensions in pixels: columns
	// and rows respectively.
	Width, Height int

	// Affine maps pixel coordinates (column, row) to CRS
	// coordinates. It must be axis aligned.
	Affine Affine

	crs *CRS
}

// NewGeoBox creates a GeoBox from grid dimensions, a pixel-to-CRS
// affine transform, and a CRS. The transform must be axis aligned:
// rotation and shear are not representable on a GeoBox.
func NewGeoBox(width, height int, affine Affine, crs *CRS) (GeoBox, error) {
	if !affine.IsAxisAligned() {
		return GeoBox{}, fmt.Errorf("geogrid: affine transform %+v is not axis-aligned", affine)
	}
	return GeoBox{Width: width, Height: height, Affine: affine, crs: crs}, nil
}

// GeoBoxFromGeoPolygon computes the smallest GeoBox at the given
// resolution that covers poly. resY and resX are the pixel sizes in
// CRS units; resY is normally negative so that rows run north to
// south. If crs is non-nil and differs from the polygon's CRS, the
// polygon is converted first. align, when non-nil, fixes the
// sub-pixel offset of pixel edges; each alignment value must lie in
// [0, |res|).
func GeoBoxFromGeoPolygon(poly Geometry, resY, resX float64, crs *CRS, align *[2]float64) (GeoBox, error) {
	if align != nil {
		if align[0] < 0 || align[0] >= math.Abs(resY) {
			return GeoBox{}, &InvalidAlignmentError{Align: align[0], Resolution: resY}
		}
		if align[1] < 0 || align[1] >= math.Abs(resX) {
			return GeoBox{}, &InvalidAlignmentError{Align: align[1], Resolution: resX}
		}
	}
	if crs == nil {
		crs = poly.CRS
	} else if !crsEqual(crs, poly.CRS) {
		var err error
		poly, err = poly.ToCRS(crs, 0, false)
		if err != nil {
			return GeoBox{}, err
		}
	}

	bb := poly.BoundingBox()
	var offy, offx float64
	if align != nil {
		offy, offx = align[0], align[1]
	}
	offx, width := alignPix(bb.Left, bb.Right, resX, offx)
	offy, height := alignPix(bb.Bottom, bb.Top, resY, offy)
	affine := Translation(offx, offy).Mul(NewScale(resX, resY))
	return NewGeoBox(width, height, affine, crs)
}

// alignPix snaps the [left, right] extent onto a grid with the given
// pixel size and edge offset, returning the grid origin and the
// number of pixels needed to cover the extent. A slop of a tenth of
// a pixel is absorbed rather than growing the grid by a full pixel.
func alignPix(left, right, res, off float64) (float64, int) {
	if res < 0 {
		res = -res
		val := math.Ceil((right-off)/res)*res + off
		width := int(math.Max(1, math.Ceil((val-left-0.1*res)/res)))
		return val, width
	}
	val := math.Floor((left-off)/res)*res + off
	width := int(math.Max(1, math.Ceil((right-val-0.1*res)/res)))
	return val, width
}

// CRS returns the box's coordinate reference system.
func (gb GeoBox) CRS() *CRS { return gb.crs }

// Shape returns the grid dimensions as (rows, columns).
func (gb GeoBox) Shape() (int, int) { return gb.Height, gb.Width }

// IsEmpty reports whether the box contains no pixels.
func (gb GeoBox) IsEmpty() bool { return gb.Width == 0 || gb.Height == 0 }

// Resolution returns the pixel size as (yres, xres) in CRS units.
// yres is negative for north-up grids.
func (gb GeoBox) Resolution() (float64, float64) {
	return gb.Affine.E, gb.Affine.A
}

// Alignment returns the sub-pixel offset of pixel edges from the CRS
// origin as (y, x), each in [0, |res|).
func (gb GeoBox) Alignment() (float64, float64) {
	y := math.Mod(gb.Affine.F, math.Abs(gb.Affine.E))
	if y < 0 {
		y += math.Abs(gb.Affine.E)
	}
	x := math.Mod(gb.Affine.C, math.Abs(gb.Affine.A))
	if x < 0 {
		x += math.Abs(gb.Affine.A)
	}
	return y, x
}

// Extent returns the footprint of the box as a polygon in the box's
// CRS.
func (gb GeoBox) Extent() Geometry {
	return PolygonFromTransform(float64(gb.Width), float64(gb.Height), gb.Affine, gb.crs)
}

// GeographicExtent returns the footprint converted to EPSG:4326. A
// box already in a geographic CRS is returned as-is.
func (gb GeoBox) GeographicExtent() (Geometry, error) {
	if gb.crs != nil && gb.crs.Geographic() {
		return gb.Extent(), nil
	}
	wgs84, err := ParseCRS("EPSG:4326")
	if err != nil {
		return Geometry{}, err
	}
	return gb.Extent().ToCRS(wgs84, 0, false)
}

// BoundingBox returns the axis-aligned bounds of the box in its CRS.
func (gb GeoBox) BoundingBox() BoundingBox {
	return BBoxFromXY(0, float64(gb.Width), 0, float64(gb.Height)).Transform(gb.Affine)
}

// Dimensions returns the axis names in row-major order: ("latitude",
// "longitude") for geographic boxes, ("y", "x") otherwise.
func (gb GeoBox) Dimensions() (string, string) {
	if gb.crs != nil {
		return gb.crs.Dimensions()
	}
	return "y", "x"
}

// Coordinates returns pixel-center labels for both axes, keyed by
// dimension name.
func (gb GeoBox) Coordinates() map[string]Coordinate {
	yres, xres := gb.Resolution()
	yoff, xoff := gb.Affine.F, gb.Affine.C

	ys := make([]float64, gb.Height)
	for i := range ys {
		ys[i] = yoff + yres/2 + float64(i)*yres
	}
	xs := make([]float64, gb.Width)
	for i := range xs {
		xs[i] = xoff + xres/2 + float64(i)*xres
	}

	yunits, xunits := "1", "1"
	if gb.crs != nil {
		yunits, xunits = gb.crs.Units()
	}
	ydim, xdim := gb.Dimensions()
	return map[string]Coordinate{
		ydim: {Values: ys, Units: yunits, Resolution: yres},
		xdim: {Values: xs, Units: xunits, Resolution: xres},
	}
}

// Equal reports whether two boxes have the same shape, transform and
// CRS.
func (gb GeoBox) Equal(o GeoBox) bool {
	return gb.Width == o.Width && gb.Height == o.Height &&
		gb.Affine == o.Affine && crsEqual(gb.crs, o.crs)
}

// Buffered expands the box by the given distances, in CRS units, on
// every side. The buffers are rounded up to whole pixels.
func (gb GeoBox) Buffered(ybuff, xbuff float64) GeoBox {
	yres, xres := gb.Resolution()
	by := roundToRes(ybuff, yres)
	bx := roundToRes(xbuff, xres)
	return GeoBox{
		Width:  gb.Width + 2*bx,
		Height: gb.Height + 2*by,
		Affine: gb.Affine.Mul(Translation(float64(-bx), float64(-by))),
		crs:    gb.crs,
	}
}

// roundToRes converts a distance in CRS units to a whole number of
// pixels, absorbing a tenth of a pixel of slop.
func roundToRes(value, res float64) int {
	res = math.Abs(res)
	return int(math.Ceil((value - 0.1*res) / res))
}

// Slice selects a range of pixels along one axis. Stop may exceed
// the axis length; negative values index from the end.
type Slice struct {
	Start, Stop int
	// Step must be 1.
	Step int
}

// All returns a slice covering an entire axis.
func All() Slice { return Slice{Start: 0, Stop: math.MaxInt32, Step: 1} }

// Slice returns the sub-grid selected by row and column ranges. Only
// unit steps are supported; any other step fails with an
// *UnsupportedSliceError.
func (gb GeoBox) Slice(rows, cols Slice) (GeoBox, error) {
	rowStart, rowStop, err := normalizeSlice(rows, gb.Height)
	if err != nil {
		return GeoBox{}, err
	}
	colStart, colStop, err := normalizeSlice(cols, gb.Width)
	if err != nil {
		return GeoBox{}, err
	}
	return GeoBox{
		Width:  colStop - colStart,
		Height: rowStop - rowStart,
		Affine: gb.Affine.Mul(Translation(float64(colStart), float64(rowStart))),
		crs:    gb.crs,
	}, nil
}

func normalizeSlice(s Slice, n int) (int, int, error) {
	if s.Step != 1 {
		return 0, 0, &UnsupportedSliceError{Step: s.Step}
	}
	start, stop := s.Start, s.Stop
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop > n {
		stop = n
	}
	if stop < start {
		stop = start
	}
	return start, stop, nil
}
