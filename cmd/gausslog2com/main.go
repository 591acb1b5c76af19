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

// gausslog2com extracts a geometry from one or more Gaussian output
// files and writes a new input file for each, built from a template
// input that provides the route section and trailing options.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chem "github.com/team-mayes/gaussian-wranger"
)

var (
	logFile  = flag.String("f", "", "Gaussian output file to convert")
	listFile = flag.String("l", "", "file listing Gaussian output files, one per line")
	tplFile  = flag.String("t", "", "template .com file providing route and tail sections")
	lowestE  = flag.Bool("e", false, "use the lowest-energy geometry instead of the last one")
	tplCM    = flag.Bool("c", false, "take charge and multiplicity from the template, not the log")
	outDir   = flag.String("o", "", "output directory (default: beside each log)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: gausslog2com -t template.com (-f file.log | -l list)\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *tplFile == "" || (*logFile == "") == (*listFile == "") {
		flag.Usage()
		os.Exit(2)
	}
	tpl, err := chem.ReadComTemplate(*tplFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gausslog2com: %v\n", err)
		os.Exit(1)
	}
	logs, err := inputList(*logFile, *listFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gausslog2com: %v\n", err)
		os.Exit(1)
	}
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "gausslog2com: %v\n", err)
			os.Exit(1)
		}
	}
	failed := false
	for _, path := range logs {
		if err := convert(path, tpl); err != nil {
			fmt.Fprintf(os.Stderr, "gausslog2com: %s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func inputList(single, list string) ([]string, error) {
	if single != "" {
		return []string{single}, nil
	}
	f, err := os.Open(list)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var logs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			logs = append(logs, line)
		}
	}
	return logs, scanner.Err()
}

func convert(path string, tpl *chem.ComTemplate) error {
	glog, err := chem.LogFileRead(path)
	if err != nil {
		return err
	}
	geom := glog.LastGeom()
	if *lowestE {
		if geom, err = glog.LowestEnergyGeom(); err != nil {
			return err
		}
	}
	mol, err := glog.Molecule(geom)
	if err != nil {
		return err
	}
	out, err := os.Create(outName(path))
	if err != nil {
		return err
	}
	defer out.Close()
	return tpl.WriteCom(out, mol, *tplCM)
}

func outName(logPath string) string {
	base := filepath.Base(logPath)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".com"
	if *outDir != "" {
		return filepath.Join(*outDir, base)
	}
	return filepath.Join(filepath.Dir(logPath), base)
}
