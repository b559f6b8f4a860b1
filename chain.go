/*
 * chain.go, part of mol.
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

// Chain is an ordered list of residues under a string id. Residue ids must
// be unique within the chain.
type Chain struct {
	ID       string
	residues []*Residue
}

// NewChain returns an empty chain.
func NewChain(id string) *Chain {
	return &Chain{ID: id}
}

// AddResidue appends a residue to the chain. A duplicate residue id yields
// an error and leaves the chain untouched.
func (C *Chain) AddResidue(r *Residue) error {
	if C.Residue(r.ID) != nil {
		return &DuplicateError{Container: "chain", Owner: C.ID, Name: fmt.Sprintf("residue %d", r.ID)}
	}
	C.residues = append(C.residues, r)
	return nil
}

// Residue returns the residue with the given id, or nil if absent.
func (C *Chain) Residue(id int) *Residue {
	for _, r := range C.residues {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Residues returns the chain's residues in order. The slice is the chain's
// own storage; callers must not reorder it.
func (C *Chain) Residues() []*Residue {
	return C.residues
}

// ResidueCount returns the number of residues in the chain.
func (C *Chain) ResidueCount() int {
	return len(C.residues)
}

// Empty reports whether the chain has no residues.
func (C *Chain) Empty() bool {
	return len(C.residues) == 0
}

func (C *Chain) String() string {
	return fmt.Sprintf("Chain{%s residues:%d}", C.ID, C.ResidueCount())
}
