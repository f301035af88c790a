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
	"os"
	"path/filepath"

	"github.com/ctessum/geom/encoding/shp"
	goshp "github.com/jonas-p/go-shp"
)

// WriteGridToShp writes gb's pixel outlines to a shapefile in
// directory outdir, one polygon per pixel with row and col
// attributes. Any existing shapefile with the same name is replaced.
func WriteGridToShp(gb GeoBox, outdir, name string) error {
	for _, ext := range []string{".shp", ".prj", ".dbf", ".shx"} {
		os.Remove(filepath.Join(outdir, name+ext))
	}
	fields := make([]goshp.Field, 2)
	fields[0] = goshp.NumberField("row", 10)
	fields[1] = goshp.NumberField("col", 10)
	shpf, err := shp.NewEncoderFromFields(filepath.Join(outdir, name+".shp"),
		goshp.POLYGON, fields...)
	if err != nil {
		return err
	}
	for row := 0; row < gb.Height; row++ {
		for col := 0; col < gb.Width; col++ {
			cell := PolygonFromTransform(1, 1,
				gb.Affine.Mul(Translation(float64(col), float64(row))), gb.crs)
			data := []interface{}{row, col}
			if err := shpf.EncodeFields(cell.Geom, data...); err != nil {
				return err
			}
		}
	}
	shpf.Close()
	return nil
}
