/*
 * atom.go, part of mol.
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
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Atom is a single atom: a name (unique within its residue), an element and
// a position in Angstrom. An Atom is owned by exactly one Residue.
type Atom struct {
	Name    string
	Element Element
	Pos     r3.Vec
}

// NewAtom returns an atom with the given name, element and position.
func NewAtom(name string, element Element, pos r3.Vec) *Atom {
	return &Atom{Name: name, Element: element, Pos: pos}
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	at := *A
	return &at
}

// Distance returns the Euclidean distance to other.
func (A *Atom) Distance(other *Atom) float64 {
	return r3.Norm(r3.Sub(A.Pos, other.Pos))
}

// Distance2 returns the squared Euclidean distance to other. Prefer this
// over Distance when only comparing against a cutoff.
func (A *Atom) Distance2(other *Atom) float64 {
	return r3.Norm2(r3.Sub(A.Pos, other.Pos))
}

// Translate displaces the atom by v.
func (A *Atom) Translate(v r3.Vec) {
	A.Pos = r3.Add(A.Pos, v)
}

func (A *Atom) String() string {
	return fmt.Sprintf("Atom{%s %s [%.3f %.3f %.3f]}",
		A.Name, A.Element.Symbol(), A.Pos.X, A.Pos.Y, A.Pos.Z)
}
