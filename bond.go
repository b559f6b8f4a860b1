/*
 * bond.go, part of mol.
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

import "fmt"

// BondOrder is the order of a chemical bond.
type BondOrder int

const (
	Single BondOrder = iota
	Double
	Triple
	Aromatic
)

func (o BondOrder) String() string {
	switch o {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Aromatic:
		return "aromatic"
	}
	return "unknown"
}

// Bond connects two atoms, identified by their flat indices in a
// Structure's traversal order. A1 <= A2 always holds, so a bond and its
// reverse compare equal and hash identically.
type Bond struct {
	A1    int
	A2    int
	Order BondOrder
}

// NewBond returns the canonical bond between flat indices i and j: the
// lower index always goes first.
func NewBond(i, j int, order BondOrder) Bond {
	if i > j {
		i, j = j, i
	}
	return Bond{A1: i, A2: j, Order: order}
}

// Topology owns a Structure and the bonds inferred over it. It is produced
// once and never mutated in place; if the structure changes, the bond list
// must be regenerated.
type Topology struct {
	structure *Structure
	bonds     []Bond
}

// NewTopology pairs a structure with a bond list. Every bond index must
// resolve to an atom of the structure; an out-of-range index yields an
// error.
func NewTopology(s *Structure, bonds []Bond) (*Topology, error) {
	n := s.AtomCount()
	for _, b := range bonds {
		if b.A1 < 0 || b.A2 >= n {
			return nil, &CError{msg: fmt.Sprintf("mol: bond %d-%d out of range for %d atoms", b.A1, b.A2, n)}
		}
	}
	return &Topology{structure: s, bonds: bonds}, nil
}

// Structure returns the structure the topology was built over. The caller
// must not remove or reorder atoms while the topology is in use.
func (T *Topology) Structure() *Structure {
	return T.structure
}

// Bonds returns the bond list. Order is not significant.
func (T *Topology) Bonds() []Bond {
	return T.bonds
}

// BondCount returns the number of bonds.
func (T *Topology) BondCount() int {
	return len(T.bonds)
}

// AtomCount returns the number of atoms in the underlying structure.
func (T *Topology) AtomCount() int {
	return T.structure.AtomCount()
}

// BondsOf returns every bond involving the atom at flat index i.
func (T *Topology) BondsOf(i int) []Bond {
	var ret []Bond
	for _, b := range T.bonds {
		if b.A1 == i || b.A2 == i {
			ret = append(ret, b)
		}
	}
	return ret
}

// NeighborsOf returns the flat indices of every atom bonded to the atom at
// flat index i.
func (T *Topology) NeighborsOf(i int) []int {
	var ret []int
	for _, b := range T.bonds {
		switch i {
		case b.A1:
			ret = append(ret, b.A2)
		case b.A2:
			ret = append(ret, b.A1)
		}
	}
	return ret
}

func (T *Topology) String() string {
	return fmt.Sprintf("Topology{atoms:%d bonds:%d}", T.AtomCount(), T.BondCount())
}
