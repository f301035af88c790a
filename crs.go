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
	"strconv"
	"strings"

	"github.com/ctessum/geom/proj"
)

// srUlpTolerance is the floating-point tolerance used when comparing
// two spatial references for equality.
const srUlpTolerance = 3

// epsgDefs maps EPSG codes to PROJ.4 definitions for the projections
// the projection engine implements (longlat, merc, aea, lcc, tmerc,
// utm). The engine has no EPSG database of its own, so EPSG-style
// inputs are resolved through this table.
var epsgDefs = map[int]string{
	4326:  "+proj=longlat +datum=WGS84 +no_defs",
	4283:  "+proj=longlat +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +no_defs",
	3395:  "+proj=merc +lon_0=0 +k=1 +x_0=0 +y_0=0 +datum=WGS84 +units=m +no_defs",
	3577:  "+proj=aea +lat_1=-18 +lat_2=-36 +lat_0=0 +lon_0=132 +x_0=0 +y_0=0 +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs",
	3112:  "+proj=lcc +lat_1=-18 +lat_2=-36 +lat_0=0 +lon_0=134 +x_0=0 +y_0=0 +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs",
	3857:  "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +no_defs",
	28355: "+proj=utm +zone=55 +south +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs",
	32633: "+proj=utm +zone=33 +datum=WGS84 +units=m +no_defs",
	32660: "+proj=utm +zone=60 +datum=WGS84 +units=m +no_defs",
}

// CRS is an immutable coordinate reference system: a spatial
// reference handle plus the canonical string it was parsed from and,
// when known, its EPSG code.
//
// CRS values are created by ParseCRS (or Resolver.CRS) and must not
// be constructed directly.
type CRS struct {
	sr   *proj.SR
	str  string
	epsg int
}

// ParseCRS resolves s to a CRS using the package-level Resolver.
// s may be an EPSG identifier such as "EPSG:4326", a PROJ.4 string,
// or a WKT string. Parsing a given string is cached process-wide, so
// repeated calls with the same input return the identical value.
func ParseCRS(s string) (*CRS, error) {
	return DefaultResolver.CRS(s)
}

// MustParseCRS is like ParseCRS but panics on error. It simplifies
// initialization of well-known systems.
func MustParseCRS(s string) *CRS {
	c, err := ParseCRS(s)
	if err != nil {
		panic(err)
	}
	return c
}

// A CRSSpec describes a coordinate reference system by accessor
// methods rather than a string. *CRS satisfies it, so CRS values can
// be passed anywhere a spec is accepted.
type CRSSpec interface {
	// EPSG returns the EPSG code, or zero when unknown.
	EPSG() int
	// WKT returns the well-known-text definition, or "" when unknown.
	WKT() string
}

// CRSFromSpec resolves a CRS from the accessors of spec, preferring
// the EPSG code when one is known. Results are cached the same way as
// with ParseCRS.
func CRSFromSpec(spec CRSSpec) (*CRS, error) {
	if code := spec.EPSG(); code != 0 {
		return ParseCRS("EPSG:" + strconv.Itoa(code))
	}
	if wkt := spec.WKT(); wkt != "" {
		return ParseCRS(wkt)
	}
	return nil, &InvalidCRSError{Input: ""}
}

// parseCRS resolves a CRS string without consulting any cache.
func parseCRS(s string) (*CRS, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &InvalidCRSError{Input: s}
	}
	if code, ok := epsgCode(s); ok {
		def, ok := epsgDefs[code]
		if !ok {
			return nil, &InvalidCRSError{Input: s}
		}
		sr, err := proj.Parse(def)
		if err != nil {
			return nil, &InvalidCRSError{Input: s, Err: err}
		}
		return &CRS{sr: sr, str: s, epsg: code}, nil
	}
	sr, err := proj.Parse(s)
	if err != nil {
		return nil, &InvalidCRSError{Input: s, Err: err}
	}
	return &CRS{sr: sr, str: s}, nil
}

// epsgCode extracts the numeric code from an "EPSG:n" identifier.
func epsgCode(s string) (int, bool) {
	if len(s) < 6 || !strings.EqualFold(s[:5], "EPSG:") {
		return 0, false
	}
	code, err := strconv.Atoi(strings.TrimSpace(s[5:]))
	if err != nil {
		return 0, false
	}
	return code, true
}

// String returns the canonical string form of c.
func (c *CRS) String() string { return c.str }

// EPSG returns the EPSG code of c, or zero when the code is unknown.
func (c *CRS) EPSG() int { return c.epsg }

// WKT returns the well-known-text definition of c. The projection
// engine parses WKT but has no serializer for it, so the definition
// is only available when c was parsed from WKT; for any other input
// WKT returns the empty string.
func (c *CRS) WKT() string {
	if isWKT(c.str) {
		return c.str
	}
	return ""
}

// isWKT mirrors the projection engine's WKT detection.
func isWKT(s string) bool {
	for _, kw := range []string{"GEOGCS", "GEOCCS", "PROJCS", "LOCAL_CS"} {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// SR returns the underlying spatial reference.
func (c *CRS) SR() *proj.SR { return c.sr }

// Geographic reports whether c uses longitude/latitude coordinates.
func (c *CRS) Geographic() bool { return c.sr.Name == "longlat" }

// Projected reports whether c uses projected (cartesian) coordinates.
func (c *CRS) Projected() bool { return !c.Geographic() }

// Dimensions returns the dimension names of c in array axis order:
// ("latitude", "longitude") for geographic systems and ("y", "x")
// otherwise.
func (c *CRS) Dimensions() (string, string) {
	if c.Geographic() {
		return "latitude", "longitude"
	}
	return "y", "x"
}

// Units returns the dimension units of c in array axis order.
func (c *CRS) Units() (string, string) {
	if c.Geographic() {
		return "degrees_north", "degrees_east"
	}
	u := c.sr.Units
	if u == "" {
		u = "m"
	}
	return u, u
}

// SemiMajorAxis returns the semi-major axis of the ellipsoid of c in
// meters.
func (c *CRS) SemiMajorAxis() float64 { return c.sr.A }

// SemiMinorAxis returns the semi-minor axis of the ellipsoid of c in
// meters.
func (c *CRS) SemiMinorAxis() float64 { return c.sr.B }

// Equal reports whether c and o reference the same coordinate system:
// the same underlying spatial reference, equal known EPSG codes, or
// definitions that compare equal.
func (c *CRS) Equal(o *CRS) bool {
	return crsEqual(c, o)
}

func crsEqual(a, b *CRS) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.sr == b.sr {
		return true
	}
	if a.epsg != 0 && b.epsg != 0 {
		return a.epsg == b.epsg
	}
	return a.sr.Equal(b.sr, srUlpTolerance)
}

// TransformerTo returns a function converting coordinates in c to
// coordinates in dst. Construction is cached in the package-level
// Resolver keyed by the identity of both spatial references, so
// repeated reprojection between the same two CRS values reuses one
// transform. The returned transformer never produces a NaN in only
// one output axis: a point that fails to convert is NaN in both.
func (c *CRS) TransformerTo(dst *CRS) (proj.Transformer, error) {
	return DefaultResolver.Transformer(c, dst, true)
}

// nanSymmetric wraps t so a NaN in either output ordinate forces both
// to NaN. Downstream consumers assume points are either fully valid
// or fully invalid.
func nanSymmetric(t proj.Transformer) proj.Transformer {
	return func(x, y float64) (float64, float64, error) {
		xo, yo, err := t(x, y)
		if err != nil {
			return xo, yo, err
		}
		if math.IsNaN(xo) || math.IsNaN(yo) {
			return math.NaN(), math.NaN(), nil
		}
		return xo, yo, nil
	}
}
