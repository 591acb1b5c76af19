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

// gaussfragment splits a structure into fragments by cutting the bonds
// named in a TOML configuration file, then writes a Gaussian
// counterpoise input with every atom tagged by fragment, plus one
// plain input per fragment. It is driven by a configuration file:
//
//	[fragment]
//	input = "dimer.com"
//	cut_atoms = [[4, 9]]        # 1-based atom pairs whose bond is cut
//	route = "#T M062X/Def2TZVP Counterpoise=2"
//	fragment_route = "#T M062X/Def2TZVP"
//	out_dir = "."
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	chem "github.com/team-mayes/gaussian-wranger"
)

// maxBondDist caps the distance criterion so that loose contacts in
// non-optimized geometries are not mistaken for bonds.
const maxBondDist = 1.9

// Config holds the parameters of the [fragment] table of the
// configuration file.
type Config struct {
	Input     string  `toml:"input"`
	CutAtoms  [][]int `toml:"cut_atoms"`
	Route     string  `toml:"route"`
	FragRoute string  `toml:"fragment_route"`
	OutDir    string  `toml:"out_dir"`
}

// configFile is the full configuration document.
type configFile struct {
	Fragment Config `toml:"fragment"`
}

func readConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var file configFile
	dec := toml.NewDecoder(f)
	if err := dec.Decode(&file); err != nil {
		return nil, err
	}
	cfg := file.Fragment
	if cfg.Input == "" {
		return nil, fmt.Errorf("configuration names no input file")
	}
	if cfg.Route == "" {
		return nil, fmt.Errorf("configuration names no route section")
	}
	if cfg.FragRoute == "" {
		cfg.FragRoute = cfg.Route
	}
	if cfg.OutDir == "" {
		cfg.OutDir = filepath.Dir(cfg.Input)
	}
	return &cfg, nil
}

func main() {
	log := log.New(os.Stderr, "gaussfragment: ", 0)
	if len(os.Args) != 2 {
		log.Fatal("one argument is needed: path of the configuration file")
	}
	cfg, err := readConfig(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *Config) error {
	mol, err := chem.MoleculeFromFile(cfg.Input)
	if err != nil {
		return err
	}
	if err := chem.AssignBonds(mol, maxBondDist); err != nil {
		return err
	}
	for _, pair := range cfg.CutAtoms {
		if len(pair) != 2 {
			return fmt.Errorf("cut_atoms entry %v is not an atom pair", pair)
		}
		// config atoms are 1-based, as in the Gaussian files
		if err := chem.CutBond(mol, pair[0]-1, pair[1]-1); err != nil {
			return err
		}
	}
	nfrag, err := chem.AssignMolIDs(mol)
	if err != nil {
		return err
	}
	if nfrag < 2 {
		return fmt.Errorf("cutting left a single fragment; check cut_atoms")
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(cfg.Input), filepath.Ext(cfg.Input))
	title := fmt.Sprintf("%s counterpoise, %d fragments", base, nfrag)
	// homolytic cuts leave doublet radicals: the counterpoise line is
	// the singlet supermolecule followed by one "0 2" per fragment
	cm := fmt.Sprintf("%d %d", mol.Charge, mol.Multi)
	for i := 0; i < nfrag; i++ {
		cm += "   0 2"
	}
	if err := writeCom(filepath.Join(cfg.OutDir, base+"_cp.com"), cfg.Route, title, cm, mol, mol.MolIDs()); err != nil {
		return err
	}
	frags := chem.FragmentAtoms(mol, nfrag)
	for n := 1; n <= nfrag; n++ {
		frag, err := mol.SomeAtoms(frags[n-1])
		if err != nil {
			return err
		}
		name := fmt.Sprintf("%s_f%d.com", base, n)
		title := fmt.Sprintf("%s radical fragment %d", base, n)
		if err := writeCom(filepath.Join(cfg.OutDir, name), cfg.FragRoute, title, "0 2", frag, nil); err != nil {
			return err
		}
	}
	return nil
}

func writeCom(path, route, title, chargeMult string, mol *chem.Molecule, fragments []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return chem.WriteFragmentCom(f, route, title, chargeMult, mol, fragments)
}
