/*
 * files.go, part of gaussian-wranger.
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

package chem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// openMaybeGz opens path for reading, decompressing transparently when
// the name ends in .gz. The returned closer releases both the
// decompressor and the file.
func openMaybeGz(path string) (io.Reader, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, CError{err.Error(), []string{"openMaybeGz"}}
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return f, func() { f.Close() }, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, CError{fmt.Sprintf("chem: %s: %v", path, err), []string{"openMaybeGz"}}
	}
	return gz, func() { gz.Close(); f.Close() }, nil
}

// baseExt returns the lower-cased extension of path, looking through a
// trailing .gz: "job.log.gz" gives ".log".
func baseExt(path string) string {
	low := strings.ToLower(path)
	low = strings.TrimSuffix(low, ".gz")
	return filepath.Ext(low)
}

// MoleculeFromFile reads a structure file, choosing the reader from
// the extension: .com/.gjf Gaussian input, .log/.out Gaussian output
// (last geometry), .pdb PDB. A trailing .gz on any of these is
// handled transparently.
func MoleculeFromFile(path string) (*Molecule, error) {
	switch baseExt(path) {
	case ".com", ".gjf":
		return ComFileRead(path)
	case ".log", ".out":
		log, err := LogFileRead(path)
		if err != nil {
			return nil, errDecorate(err, "MoleculeFromFile")
		}
		mol, err := log.Molecule(log.LastGeom())
		return mol, errDecorate(err, "MoleculeFromFile")
	case ".pdb":
		return PDBFileRead(path)
	}
	return nil, CError{fmt.Sprintf("chem: unrecognized structure file extension in %q (want .com, .gjf, .log, .out or .pdb)", path), []string{"MoleculeFromFile"}}
}
