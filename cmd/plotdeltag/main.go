/*
 * main.go, part of gaussian-wranger.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 */

// plotdeltag plots relative free energies from a CSV table. The first
// column holds the x values and the header row names the series:
//
//	T(K),complex,TS,product
//	298.15,0.0,12.3,-4.1
//	310.00,0.0,12.8,-4.6
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/team-mayes/gaussian-wranger/chemplot"
)

var (
	csvFile = flag.String("f", "", "CSV file with an x column and one column per series")
	outFile = flag.String("o", "deltag.png", "output image (.png, .pdf, .svg)")
	title   = flag.String("title", "", "plot title")
	ylabel  = flag.String("ylabel", "ΔG (kcal/mol)", "y axis label")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: plotdeltag -f energies.csv [-o out.png]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *csvFile == "" {
		flag.Usage()
		os.Exit(2)
	}
	series, xlabel, err := readSeries(*csvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plotdeltag: %s: %v\n", *csvFile, err)
		os.Exit(1)
	}
	if err := chemplot.DeltaG(series, *title, xlabel, *ylabel, *outFile); err != nil {
		fmt.Fprintf(os.Stderr, "plotdeltag: %v\n", err)
		os.Exit(1)
	}
}

func readSeries(path string) ([]chemplot.Series, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, "", err
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, "", fmt.Errorf("need a header row and at least one data row with two columns")
	}
	header := records[0]
	series := make([]chemplot.Series, len(header)-1)
	for i := range series {
		series[i].Name = header[i+1]
	}
	for r, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, "", fmt.Errorf("row %d has %d fields, header has %d", r+2, len(rec), len(header))
		}
		x, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, "", fmt.Errorf("row %d: bad x value %q", r+2, rec[0])
		}
		for i := range series {
			y, err := strconv.ParseFloat(rec[i+1], 64)
			if err != nil {
				return nil, "", fmt.Errorf("row %d: bad value %q for %s", r+2, rec[i+1], series[i].Name)
			}
			series[i].X = append(series[i].X, x)
			series[i].Y = append(series[i].Y, y)
		}
	}
	return series, header[0], nil
}
