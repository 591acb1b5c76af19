/*
 * doc.go, part of gaussian-wranger.
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

// Package chem provides the atom and molecule structures shared by the
// gaussian-wranger tools, facilities for reading and writing the
// structure files used around Gaussian jobs (Gaussian input and output
// files and PDB files), and simple connectivity assignment.
//
// The numeric core of the repository, the Grimme D3 dispersion
// correction, lives in the disp subpackage and consumes molecules
// produced here.
package chem
