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

// Command geogrid is a command-line interface for converting
// georeferenced geometries between coordinate systems and for
// computing pixel grids that cover them.
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spatialmodel/geogrid"
)

var log = logrus.StandardLogger()

var root = &cobra.Command{
	Use:          "geogrid",
	Short:        "geogrid works with georeferenced geometries and pixel grids.",
	SilenceUsage: true,
}

var (
	srcCRS  string
	dstCRS  string
	segRes  float64
	wrapDL  bool
	resX    float64
	resY    float64
	shpDir  string
	shpName string
)

var reprojectCmd = &cobra.Command{
	Use:   "reproject geometry.geojson",
	Short: "Convert a GeoJSON geometry to a different coordinate system.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := ioutil.ReadFile(args[0])
		if err != nil {
			return err
		}
		src, err := geogrid.ParseCRS(srcCRS)
		if err != nil {
			return err
		}
		dst, err := geogrid.ParseCRS(dstCRS)
		if err != nil {
			return err
		}
		g, err := geogrid.DecodeGeoJSON(data, src)
		if err != nil {
			return err
		}
		out, err := g.ToCRS(dst, segRes, wrapDL)
		if err != nil {
			return err
		}
		encoded, err := geogrid.EncodeGeoJSON(out)
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	},
}

var geoboxCmd = &cobra.Command{
	Use:   "geobox geometry.geojson",
	Short: "Compute the pixel grid covering a GeoJSON geometry.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := ioutil.ReadFile(args[0])
		if err != nil {
			return err
		}
		src, err := geogrid.ParseCRS(srcCRS)
		if err != nil {
			return err
		}
		g, err := geogrid.DecodeGeoJSON(data, src)
		if err != nil {
			return err
		}
		var crs *geogrid.CRS
		if dstCRS != "" {
			crs, err = geogrid.ParseCRS(dstCRS)
			if err != nil {
				return err
			}
		}
		gb, err := geogrid.GeoBoxFromGeoPolygon(g, resY, resX, crs, nil)
		if err != nil {
			return err
		}
		rows, cols := gb.Shape()
		log.WithFields(logrus.Fields{
			"rows":   rows,
			"cols":   cols,
			"extent": gb.BoundingBox(),
		}).Info("computed geobox")
		if shpDir != "" {
			if err := geogrid.WriteGridToShp(gb, shpDir, shpName); err != nil {
				return err
			}
			log.WithField("dir", shpDir).Info("wrote grid shapefile")
		}
		return nil
	},
}

func init() {
	reprojectCmd.Flags().StringVar(&srcCRS, "from", "EPSG:4326", "CRS of the input geometry")
	reprojectCmd.Flags().StringVar(&dstCRS, "to", "EPSG:4326", "CRS to convert to")
	reprojectCmd.Flags().Float64Var(&segRes, "resolution", 0, "maximum segment length before conversion (0 selects a default)")
	reprojectCmd.Flags().BoolVar(&wrapDL, "wrap-dateline", false, "split polygons at the antimeridian")

	geoboxCmd.Flags().StringVar(&srcCRS, "from", "EPSG:4326", "CRS of the input geometry")
	geoboxCmd.Flags().StringVar(&dstCRS, "crs", "", "CRS of the output grid (default: the input CRS)")
	geoboxCmd.Flags().Float64Var(&resX, "xres", 1, "pixel width in CRS units")
	geoboxCmd.Flags().Float64Var(&resY, "yres", -1, "pixel height in CRS units (negative for north-up)")
	geoboxCmd.Flags().StringVar(&shpDir, "shp-dir", "", "directory to write the grid shapefile to")
	geoboxCmd.Flags().StringVar(&shpName, "shp-name", "grid", "name of the grid shapefile")

	root.AddCommand(reprojectCmd, geoboxCmd)
}

func main() {
	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
