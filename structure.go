/*
 * structure.go, part of mol.
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

// Structure is an ordered list of chains plus an optional periodic box
// given as three lattice vectors. The chain->residue->atom traversal order
// is the single source of truth for flat atom indices: every element of the
// slice returned by Atoms, and every Bond index in a Topology, refers to
// this order. Any mutation that removes or reorders atoms invalidates
// previously assigned flat indices.
type Structure struct {
	chains []*Chain
	box    [3]r3.Vec
	hasBox bool
}

// NewStructure returns an empty structure with no box.
func NewStructure() *Structure {
	return &Structure{}
}

// AddChain appends a chain to the structure.
func (S *Structure) AddChain(c *Chain) {
	S.chains = append(S.chains, c)
}

// Chain returns the chain with the given id, or nil if absent.
func (S *Structure) Chain(id string) *Chain {
	for _, c := range S.chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Chains returns the structure's chains in order.
func (S *Structure) Chains() []*Chain {
	return S.chains
}

// SetBox sets the periodic box as three lattice vectors.
func (S *Structure) SetBox(v1, v2, v3 r3.Vec) {
	S.box = [3]r3.Vec{v1, v2, v3}
	S.hasBox = true
}

// ClearBox removes the periodic box.
func (S *Structure) ClearBox() {
	S.hasBox = false
}

// Box returns the lattice vectors and whether a box is set.
func (S *Structure) Box() ([3]r3.Vec, bool) {
	return S.box, S.hasBox
}

// AtomCount returns the total number of atoms over all chains.
func (S *Structure) AtomCount() int {
	n := 0
	for _, c := range S.chains {
		for _, r := range c.residues {
			n += r.AtomCount()
		}
	}
	return n
}

// Atoms returns every atom in flat traversal order. The returned slice is
// freshly allocated; the atoms themselves are shared with the structure.
func (S *Structure) Atoms() []*Atom {
	ats := make([]*Atom, 0, S.AtomCount())
	for _, c := range S.chains {
		for _, r := range c.residues {
			ats = append(ats, r.atoms...)
		}
	}
	return ats
}

// EachAtom calls f for every atom in flat traversal order, together with
// its owning chain and residue and its flat index.
func (S *Structure) EachAtom(f func(c *Chain, r *Residue, at *Atom, index int)) {
	i := 0
	for _, c := range S.chains {
		for _, r := range c.residues {
			for _, at := range r.atoms {
				f(c, r, at, i)
				i++
			}
		}
	}
}

// GeometricCenter returns the unweighted centroid of all atom positions.
// It panics on an empty structure; asking for the center of nothing is a
// programming error.
func (S *Structure) GeometricCenter() r3.Vec {
	n := S.AtomCount()
	if n == 0 {
		panic("mol: geometric center of an empty structure")
	}
	var sum r3.Vec
	for _, at := range S.Atoms() {
		sum = r3.Add(sum, at.Pos)
	}
	return r3.Scale(1/float64(n), sum)
}

// CenterOfMass returns the mass-weighted centroid of all atom positions.
// It returns an error if any atom's element has no tabulated mass.
func (S *Structure) CenterOfMass() (r3.Vec, error) {
	var sum r3.Vec
	total := 0.0
	for _, at := range S.Atoms() {
		m := at.Element.Mass()
		if m == 0 {
			return r3.Vec{}, &CError{msg: fmt.Sprintf("mol: no mass for element %q (atom %s)", at.Element.Symbol(), at.Name)}
		}
		sum = r3.Add(sum, r3.Scale(m, at.Pos))
		total += m
	}
	if total == 0 {
		panic("mol: center of mass of an empty structure")
	}
	return r3.Scale(1/total, sum), nil
}

// RetainResidues drops every residue for which pred returns false. Flat
// atom indices assigned before the call are invalid afterwards.
func (S *Structure) RetainResidues(pred func(chainID string, r *Residue) bool) {
	for _, c := range S.chains {
		kept := c.residues[:0]
		for _, r := range c.residues {
			if pred(c.ID, r) {
				kept = append(kept, r)
			}
		}
		c.residues = kept
	}
}

// PruneEmptyChains removes chains left without residues.
func (S *Structure) PruneEmptyChains() {
	kept := S.chains[:0]
	for _, c := range S.chains {
		if !c.Empty() {
			kept = append(kept, c)
		}
	}
	S.chains = kept
}

func (S *Structure) String() string {
	return fmt.Sprintf("Structure{chains:%d atoms:%d}", len(S.chains), S.AtomCount())
}
