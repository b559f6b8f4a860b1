/*
 * clean_test.go, part of mol.
 *
 *
 * Copyright 2024 The mol Authors
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
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mol

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// solvated builds a protein residue, a ligand, an ion and two waters, the
// waters on a chain of their own.
func solvated(Te *testing.T) *Structure {
	s := NewStructure()

	a := NewChain("A")
	ala := alaResidue(Te, 1, r3.Vec{})
	if err := ala.AddAtom(NewAtom("HA", Hydrogen, r3.Vec{X: 1.5, Y: -1})); err != nil {
		Te.Fatal(err)
	}
	lig := NewResidue(2, "LIG", Hetero)
	addAtoms(Te, lig, NewAtom("C1", Carbon, r3.Vec{X: 10}))
	ion := NewResidue(3, "NA", Ion)
	addAtoms(Te, ion, NewAtom("NA", Sodium, r3.Vec{X: 12}))
	for _, res := range []*Residue{ala, lig, ion} {
		if err := a.AddResidue(res); err != nil {
			Te.Fatal(err)
		}
	}
	s.AddChain(a)

	w := NewChain("W")
	for i := 0; i < 2; i++ {
		wat := NewResidue(i+1, "HOH", Water)
		addAtoms(Te, wat,
			NewAtom("O", Oxygen, r3.Vec{X: 20 + 3*float64(i)}),
			NewAtom("H1", Hydrogen, r3.Vec{X: 20.8 + 3*float64(i)}),
			NewAtom("H2", Hydrogen, r3.Vec{X: 19.2 + 3*float64(i)}),
		)
		if err := w.AddResidue(wat); err != nil {
			Te.Fatal(err)
		}
	}
	s.AddChain(w)
	return s
}

func residueNames(s *Structure) []string {
	var names []string
	for _, c := range s.Chains() {
		for _, r := range c.Residues() {
			names = append(names, r.Name)
		}
	}
	return names
}

//TestCleanWater removes the waters and expects their now-empty chain to
//be pruned with them.
func TestCleanWater(Te *testing.T) {
	s := solvated(Te)
	Clean(s, WaterOnly())
	if got := residueNames(s); len(got) != 3 {
		Te.Errorf("residues after cleaning: %v", got)
	}
	if s.Chain("W") != nil {
		Te.Error("emptied water chain survived")
	}
	if s.Chain("A") == nil {
		Te.Error("protein chain was pruned")
	}
}

func TestCleanWaterAndIons(Te *testing.T) {
	s := solvated(Te)
	Clean(s, WaterAndIons())
	got := residueNames(s)
	if len(got) != 2 || got[0] != "ALA" || got[1] != "LIG" {
		Te.Errorf("residues after cleaning: %v", got)
	}
}

func TestCleanHetero(Te *testing.T) {
	s := solvated(Te)
	Clean(s, &CleanConfig{RemoveHetero: true})
	for _, name := range residueNames(s) {
		if name == "LIG" {
			Te.Error("hetero residue survived RemoveHetero")
		}
	}
}

func TestCleanHydrogens(Te *testing.T) {
	s := solvated(Te)
	Clean(s, &CleanConfig{RemoveHydrogens: true})
	for _, at := range s.Atoms() {
		if at.Element == Hydrogen {
			Te.Errorf("hydrogen %s survived", at.Name)
		}
	}
	//waters lose their hydrogens but keep their oxygen
	if s.Chain("W") == nil || s.Chain("W").ResidueCount() != 2 {
		Te.Error("dehydrogenated waters were dropped")
	}
}

//TestCleanKeepWins pairs a removal rule with a KeepNames override for the
//same residue.
func TestCleanKeepWins(Te *testing.T) {
	s := solvated(Te)
	Clean(s, &CleanConfig{RemoveWater: true, KeepNames: map[string]bool{"HOH": true}})
	if s.Chain("W") == nil {
		Te.Error("kept waters were removed anyway")
	}
}

func TestCleanByName(Te *testing.T) {
	s := solvated(Te)
	Clean(s, &CleanConfig{RemoveNames: map[string]bool{"NA": true}})
	for _, name := range residueNames(s) {
		if name == "NA" {
			Te.Error("named residue survived RemoveNames")
		}
	}
}
