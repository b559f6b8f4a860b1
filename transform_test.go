/*
 * transform_test.go, part of mol.
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
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func vecNear(a, b r3.Vec, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

func pairStructure(Te *testing.T, p1, p2 r3.Vec) *Structure {
	res := NewResidue(1, "LIG", Hetero)
	addAtoms(Te, res, NewAtom("C1", Carbon, p1), NewAtom("C2", Carbon, p2))
	return singleChain(Te, "A", res)
}

func TestTranslate(Te *testing.T) {
	s := pairStructure(Te, r3.Vec{}, r3.Vec{X: 1})
	Translate(s, 1, 2, 3)
	atoms := s.Atoms()
	if !vecNear(atoms[0].Pos, r3.Vec{X: 1, Y: 2, Z: 3}, 1e-12) {
		Te.Errorf("first atom at %v", atoms[0].Pos)
	}
	if !vecNear(atoms[1].Pos, r3.Vec{X: 2, Y: 2, Z: 3}, 1e-12) {
		Te.Errorf("second atom at %v", atoms[1].Pos)
	}
}

func TestCenterGeometry(Te *testing.T) {
	s := pairStructure(Te, r3.Vec{X: 2}, r3.Vec{X: 4, Y: 2})
	CenterGeometry(s, r3.Vec{})
	if !vecNear(s.GeometricCenter(), r3.Vec{}, 1e-12) {
		Te.Errorf("center landed at %v", s.GeometricCenter())
	}
	CenterGeometry(s, r3.Vec{X: 5, Z: -1})
	if !vecNear(s.GeometricCenter(), r3.Vec{X: 5, Z: -1}, 1e-12) {
		Te.Errorf("center landed at %v", s.GeometricCenter())
	}
}

func TestCenterMass(Te *testing.T) {
	s := pairStructure(Te, r3.Vec{}, r3.Vec{X: 2})
	if err := CenterMass(s, r3.Vec{}); err != nil {
		Te.Fatal(err)
	}
	com, err := s.CenterOfMass()
	if err != nil {
		Te.Fatal(err)
	}
	if !vecNear(com, r3.Vec{}, 1e-12) {
		Te.Errorf("center of mass landed at %v", com)
	}

	bad := pairStructure(Te, r3.Vec{}, r3.Vec{X: 2})
	if err := bad.Chains()[0].Residues()[0].AddAtom(NewAtom("X1", Unknown, r3.Vec{})); err != nil {
		Te.Fatal(err)
	}
	if err := CenterMass(bad, r3.Vec{}); err == nil {
		Te.Error("untabulated element gave no error")
	}
}

//TestRotateZ turns a unit x vector a quarter turn and expects it on y,
//box vectors included.
func TestRotateZ(Te *testing.T) {
	s := pairStructure(Te, r3.Vec{}, r3.Vec{X: 1})
	s.SetBox(r3.Vec{X: 10}, r3.Vec{Y: 10}, r3.Vec{Z: 10})
	RotateZ(s, math.Pi/2)
	if !vecNear(s.Atoms()[1].Pos, r3.Vec{Y: 1}, 1e-9) {
		Te.Errorf("rotated atom at %v", s.Atoms()[1].Pos)
	}
	box, ok := s.Box()
	if !ok || !vecNear(box[0], r3.Vec{Y: 10}, 1e-9) {
		Te.Errorf("rotated box is %v", box)
	}
}

//TestRotationPreservesDistance checks the rigid-body property on an
//arbitrary Euler rotation.
func TestRotationPreservesDistance(Te *testing.T) {
	s := pairStructure(Te, r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: -2, Y: 0.5, Z: 1})
	atoms := s.Atoms()
	before := atoms[0].Distance(atoms[1])
	RotateEuler(s, 0.3, -1.1, 2.5)
	after := atoms[0].Distance(atoms[1])
	if !scalar.EqualWithinAbs(before, after, 1e-9) {
		Te.Errorf("distance changed from %v to %v", before, after)
	}
}
