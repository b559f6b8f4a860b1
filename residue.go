/*
 * residue.go, part of mol.
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

// ResidueCategory classifies a residue for bonding and cleaning purposes.
type ResidueCategory int

const (
	Standard ResidueCategory = iota //a standard amino acid or nucleotide
	Hetero                          //anything needing a user-supplied template
	Ion                             //monoatomic, never bonded
	Water
)

func (c ResidueCategory) String() string {
	switch c {
	case Standard:
		return "Standard"
	case Hetero:
		return "Hetero"
	case Ion:
		return "Ion"
	case Water:
		return "Water"
	}
	return "Unknown"
}

// ResiduePosition tags a residue's role at the boundaries of a polymer
// chain. It changes which atoms are expected and which are optional.
type ResiduePosition int

const (
	None ResiduePosition = iota
	NTerminal
	CTerminal
	Internal
	FivePrime
	ThreePrime
)

func (p ResiduePosition) String() string {
	switch p {
	case NTerminal:
		return "N-terminal"
	case CTerminal:
		return "C-terminal"
	case Internal:
		return "internal"
	case FivePrime:
		return "5'"
	case ThreePrime:
		return "3'"
	}
	return "none"
}

// Residue is an ordered set of atoms with an id (unique within its chain),
// a name, a category and a position tag. Atoms keep insertion order; they
// are never reordered.
type Residue struct {
	ID       int
	Name     string
	Category ResidueCategory
	Position ResiduePosition
	atoms    []*Atom
}

// NewResidue returns an empty residue with position None.
func NewResidue(id int, name string, category ResidueCategory) *Residue {
	return &Residue{ID: id, Name: name, Category: category, Position: None}
}

// AddAtom appends an atom to the residue. Atom names must be unique within
// a residue; a duplicate yields an error and leaves the residue untouched.
func (R *Residue) AddAtom(at *Atom) error {
	if R.HasAtom(at.Name) {
		return &DuplicateError{Container: "residue", Owner: R.Name, Name: at.Name}
	}
	R.atoms = append(R.atoms, at)
	return nil
}

// RemoveAtom removes and returns the named atom, or nil if absent.
func (R *Residue) RemoveAtom(name string) *Atom {
	for i, at := range R.atoms {
		if at.Name == name {
			R.atoms = append(R.atoms[:i], R.atoms[i+1:]...)
			return at
		}
	}
	return nil
}

// Atom returns the named atom, or nil if the residue doesn't contain it.
func (R *Residue) Atom(name string) *Atom {
	for _, at := range R.atoms {
		if at.Name == name {
			return at
		}
	}
	return nil
}

// AtomIndex returns the position of the named atom in the residue's atom
// list, or -1 if absent. This local index plus the residue's flat offset is
// the atom's flat index in the structure.
func (R *Residue) AtomIndex(name string) int {
	for i, at := range R.atoms {
		if at.Name == name {
			return i
		}
	}
	return -1
}

// HasAtom reports whether the residue contains an atom with the given name.
func (R *Residue) HasAtom(name string) bool {
	return R.AtomIndex(name) >= 0
}

// Atoms returns the residue's atoms in insertion order. The slice is the
// residue's own storage; callers must not reorder it.
func (R *Residue) Atoms() []*Atom {
	return R.atoms
}

// AtomCount returns the number of atoms in the residue.
func (R *Residue) AtomCount() int {
	return len(R.atoms)
}

// Empty reports whether the residue has no atoms.
func (R *Residue) Empty() bool {
	return len(R.atoms) == 0
}

// StripHydrogens removes every hydrogen atom from the residue.
func (R *Residue) StripHydrogens() {
	kept := R.atoms[:0]
	for _, at := range R.atoms {
		if at.Element != Hydrogen {
			kept = append(kept, at)
		}
	}
	R.atoms = kept
}

// IsProtein reports whether the residue's name is a recognized standard
// amino acid (including protonation and cystine variants).
func (R *Residue) IsProtein() bool {
	return IsProteinResidue(R.Name)
}

// IsNucleic reports whether the residue's name is a recognized standard
// nucleotide.
func (R *Residue) IsNucleic() bool {
	return IsNucleicResidue(R.Name)
}

func (R *Residue) String() string {
	return fmt.Sprintf("Residue{%d %s %s atoms:%d}", R.ID, R.Name, R.Category, R.AtomCount())
}
