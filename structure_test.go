/*
 * structure_test.go, part of mol.
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

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestDuplicateAtom(Te *testing.T) {
	res := NewResidue(1, "ALA", Standard)
	if err := res.AddAtom(NewAtom("CA", Carbon, r3.Vec{})); err != nil {
		Te.Fatal(err)
	}
	err := res.AddAtom(NewAtom("CA", Carbon, r3.Vec{X: 1}))
	if err == nil {
		Te.Fatal("duplicate atom name accepted")
	}
	dup, ok := err.(*DuplicateError)
	if !ok {
		Te.Fatalf("got %T, want *DuplicateError", err)
	}
	if dup.Name != "CA" {
		Te.Errorf("error names %q, want CA", dup.Name)
	}
	if res.AtomCount() != 1 {
		Te.Errorf("failed AddAtom changed the residue, %d atoms", res.AtomCount())
	}
}

func TestDuplicateResidue(Te *testing.T) {
	c := NewChain("A")
	if err := c.AddResidue(NewResidue(10, "ALA", Standard)); err != nil {
		Te.Fatal(err)
	}
	err := c.AddResidue(NewResidue(10, "GLY", Standard))
	if err == nil {
		Te.Fatal("duplicate residue id accepted")
	}
	if _, ok := err.(*DuplicateError); !ok {
		Te.Fatalf("got %T, want *DuplicateError", err)
	}
	if c.ResidueCount() != 1 {
		Te.Errorf("failed AddResidue changed the chain, %d residues", c.ResidueCount())
	}
}

//TestFlatOrder checks that Atoms and EachAtom agree on the flat
//traversal order across chains and residues.
func TestFlatOrder(Te *testing.T) {
	s := NewStructure()
	names := []string{"N", "CA", "C", "O", "NB", "CB"}
	for ci, chainID := range []string{"A", "B"} {
		c := NewChain(chainID)
		res := NewResidue(1, "ALA", Standard)
		for i := 0; i < 3; i++ {
			if err := res.AddAtom(NewAtom(names[ci*3+i], Carbon, r3.Vec{X: float64(ci*3 + i)})); err != nil {
				Te.Fatal(err)
			}
		}
		if err := c.AddResidue(res); err != nil {
			Te.Fatal(err)
		}
		s.AddChain(c)
	}
	flat := s.Atoms()
	if len(flat) != 6 || s.AtomCount() != 6 {
		Te.Fatalf("got %d atoms, want 6", len(flat))
	}
	for i, at := range flat {
		if at.Name != names[i] {
			Te.Errorf("flat index %d is %s, want %s", i, at.Name, names[i])
		}
	}
	s.EachAtom(func(_ *Chain, _ *Residue, at *Atom, index int) {
		if flat[index] != at {
			Te.Errorf("EachAtom index %d disagrees with Atoms", index)
		}
	})
}

func TestGeometricCenter(Te *testing.T) {
	res := NewResidue(1, "LIG", Hetero)
	if err := res.AddAtom(NewAtom("C1", Carbon, r3.Vec{X: 2})); err != nil {
		Te.Fatal(err)
	}
	if err := res.AddAtom(NewAtom("C2", Carbon, r3.Vec{X: 4, Y: 2})); err != nil {
		Te.Fatal(err)
	}
	s := singleChain(Te, "A", res)
	center := s.GeometricCenter()
	if !scalar.EqualWithinAbs(center.X, 3, 1e-12) || !scalar.EqualWithinAbs(center.Y, 1, 1e-12) {
		Te.Errorf("geometric center is %v", center)
	}
}

func TestGeometricCenterEmptyPanics(Te *testing.T) {
	defer func() {
		if recover() == nil {
			Te.Error("empty structure did not panic")
		}
	}()
	NewStructure().GeometricCenter()
}

func TestCenterOfMass(Te *testing.T) {
	res := NewResidue(1, "LIG", Hetero)
	//equal masses, so the center of mass is the midpoint
	if err := res.AddAtom(NewAtom("C1", Carbon, r3.Vec{})); err != nil {
		Te.Fatal(err)
	}
	if err := res.AddAtom(NewAtom("C2", Carbon, r3.Vec{X: 2})); err != nil {
		Te.Fatal(err)
	}
	s := singleChain(Te, "A", res)
	com, err := s.CenterOfMass()
	if err != nil {
		Te.Fatal(err)
	}
	if !scalar.EqualWithinAbs(com.X, 1, 1e-12) {
		Te.Errorf("center of mass is %v", com)
	}

	if err := res.AddAtom(NewAtom("X1", Unknown, r3.Vec{})); err != nil {
		Te.Fatal(err)
	}
	if _, err := s.CenterOfMass(); err == nil {
		Te.Error("untabulated element gave no error")
	}
}

func TestBox(Te *testing.T) {
	s := NewStructure()
	if _, ok := s.Box(); ok {
		Te.Error("fresh structure claims a box")
	}
	s.SetBox(r3.Vec{X: 10}, r3.Vec{Y: 10}, r3.Vec{Z: 10})
	box, ok := s.Box()
	if !ok || box[0].X != 10 {
		Te.Errorf("box is %v, %v", box, ok)
	}
	s.ClearBox()
	if _, ok := s.Box(); ok {
		Te.Error("box survived ClearBox")
	}
}

func TestElementSymbols(Te *testing.T) {
	if ElementFromSymbol("C") != Carbon || ElementFromSymbol("Zn") != Zinc {
		Te.Error("symbol lookup broken")
	}
	if ElementFromSymbol("Xx") != Unknown {
		Te.Error("bogus symbol did not map to Unknown")
	}
	if Sulfur.Symbol() != "S" {
		Te.Errorf("sulfur symbol is %q", Sulfur.Symbol())
	}
	if Carbon.Mass() == 0 || Carbon.CovalentRadius() == 0 {
		Te.Error("carbon has no tabulated data")
	}
}
