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

// Package geogrid provides georeferenced geometry and raster-grid
// primitives: geometries tagged with a coordinate reference system,
// resolution-aware reprojection (including splitting at the
// antimeridian), and a pixel-grid type (GeoBox) with alignment,
// buffering, sub-windowing, down-scaling, and conservative
// union/intersection of compatible grids.
//
// Geometry computation is delegated to github.com/ctessum/geom and
// projection handling to github.com/ctessum/geom/proj; this package
// adds the CRS bookkeeping and grid algebra on top.
//
// All types in this package are immutable values: operations return
// new values rather than modifying their receivers, so values can be
// shared freely between goroutines. The only shared mutable state is
// the Resolver caches, which are safe for concurrent use.
package geogrid
