/*
 * template.go, part of mol.
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

// TemplateBond is an internal bond of a template, given by atom names.
type TemplateBond struct {
	A1    string
	A2    string
	Order BondOrder
}

// TemplateHydrogen associates a hydrogen name with the heavy atoms it may
// anchor to, in preference order. The topology engine bonds a present
// hydrogen to the first anchor only.
type TemplateHydrogen struct {
	Name    string
	Anchors []string
}

// Template is an immutable chemistry-authored prototype for a residue: its
// expected heavy-atom names, internal bonds, and hydrogen-anchor
// associations. Standard residues get templates from the built-in registry;
// hetero residues need user-authored ones registered on the builder.
type Template struct {
	Name      string
	atomNames []string
	bonds     []TemplateBond
	hydrogens []TemplateHydrogen
}

// NewTemplate builds a template. Every bond and every hydrogen anchor must
// reference a declared atom name; a dangling reference yields an error.
func NewTemplate(name string, atomNames []string, bonds []TemplateBond, hydrogens []TemplateHydrogen) (*Template, error) {
	declared := make(map[string]bool, len(atomNames))
	for _, n := range atomNames {
		declared[n] = true
	}
	for _, b := range bonds {
		if !declared[b.A1] || !declared[b.A2] {
			return nil, &CError{msg: fmt.Sprintf("mol: template %q: bond %s-%s references an undeclared atom", name, b.A1, b.A2)}
		}
	}
	for _, h := range hydrogens {
		for _, a := range h.Anchors {
			if !declared[a] {
				return nil, &CError{msg: fmt.Sprintf("mol: template %q: hydrogen %s anchored to undeclared atom %s", name, h.Name, a)}
			}
		}
	}
	return &Template{Name: name, atomNames: atomNames, bonds: bonds, hydrogens: hydrogens}, nil
}

// mustTemplate is for the built-in registry, where a validation failure is
// a programming error.
func mustTemplate(name string, atomNames []string, bonds []TemplateBond, hydrogens []TemplateHydrogen) *Template {
	t, err := NewTemplate(name, atomNames, bonds, hydrogens)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// AtomNames returns the declared heavy-atom names.
func (T *Template) AtomNames() []string {
	return T.atomNames
}

// Bonds returns the template's internal bonds.
func (T *Template) Bonds() []TemplateBond {
	return T.bonds
}

// Hydrogens returns the hydrogen-anchor associations.
func (T *Template) Hydrogens() []TemplateHydrogen {
	return T.hydrogens
}

// HasAtom reports whether name is among the declared atom names.
func (T *Template) HasAtom(name string) bool {
	for _, n := range T.atomNames {
		if n == name {
			return true
		}
	}
	return false
}

// HasBond reports whether the template bonds the two named atoms, in either
// order.
func (T *Template) HasBond(name1, name2 string) bool {
	for _, b := range T.bonds {
		if (b.A1 == name1 && b.A2 == name2) || (b.A1 == name2 && b.A2 == name1) {
			return true
		}
	}
	return false
}

// AtomCount returns the number of declared atom names.
func (T *Template) AtomCount() int {
	return len(T.atomNames)
}

// BondCount returns the number of internal bonds.
func (T *Template) BondCount() int {
	return len(T.bonds)
}

func (T *Template) String() string {
	return fmt.Sprintf("Template{%s atoms:%d bonds:%d}", T.Name, T.AtomCount(), T.BondCount())
}
