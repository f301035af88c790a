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
	"reflect"

	"github.com/ctessum/geom"
)

// InvalidCRSError is returned when an input cannot be resolved to a
// coordinate reference system.
type InvalidCRSError struct {
	Input string
	Err   error
}

func (e *InvalidCRSError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geogrid: invalid CRS %#v: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("geogrid: invalid CRS %#v", e.Input)
}

// CRSMismatchError is returned when two geometries with different
// coordinate reference systems (including one missing a CRS) are
// combined in an operation that requires them to be equal.
type CRSMismatchError struct {
	A, B *CRS
}

func (e *CRSMismatchError) Error() string {
	return fmt.Sprintf("geogrid: CRS mismatch: %s != %s", crsLabel(e.A), crsLabel(e.B))
}

func crsLabel(c *CRS) string {
	if c == nil {
		return "none"
	}
	return c.String()
}

// MissingCRSError is returned when reprojection is attempted on a
// geometry that has no coordinate reference system.
type MissingCRSError struct{}

func (e *MissingCRSError) Error() string {
	return "geogrid: cannot project a geometry without a CRS"
}

// InvalidAlignmentError is returned when a grid alignment value lies
// outside the half-open interval [0, |resolution|).
type InvalidAlignmentError struct {
	Align, Resolution float64
}

func (e *InvalidAlignmentError) Error() string {
	return fmt.Sprintf("geogrid: alignment %g is outside [0, %g)",
		e.Align, math.Abs(e.Resolution))
}

// IncompatibleGridError is returned when two GeoBoxes' pixel lattices
// are not related by a whole-pixel, unit-scale translation, or when
// they differ in CRS.
type IncompatibleGridError struct {
	Reason string
}

func (e *IncompatibleGridError) Error() string {
	return "geogrid: incompatible grids: " + e.Reason
}

// EmptyInputError is returned when a combining operation receives no
// inputs.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return "geogrid: no inputs supplied to " + e.Op
}

// UnsupportedSliceError is returned for GeoBox slices with a step
// other than one.
type UnsupportedSliceError struct {
	Step int
}

func (e *UnsupportedSliceError) Error() string {
	return fmt.Sprintf("geogrid: slice step %d is not supported; only unit steps are", e.Step)
}

// UnknownGeometryTypeError is returned when a geometry outside the
// supported type set reaches an operation that recurses by shape kind.
type UnknownGeometryTypeError struct {
	Geom geom.Geom
}

func (e *UnknownGeometryTypeError) Error() string {
	return fmt.Sprintf("geogrid: unknown geometry type %v", reflect.TypeOf(e.Geom))
}
