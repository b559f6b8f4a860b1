/*
 * template_test.go, part of mol.
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

import "testing"

func TestTemplateValidation(Te *testing.T) {
	_, err := NewTemplate("BAD", []string{"C1"},
		[]TemplateBond{tb("C1", "C2", Single)}, nil)
	if err == nil {
		Te.Error("bond to an undeclared atom accepted")
	}
	_, err = NewTemplate("BAD", []string{"C1"},
		nil, []TemplateHydrogen{th("H1", "C9")})
	if err == nil {
		Te.Error("hydrogen anchored to an undeclared atom accepted")
	}
	tm, err := NewTemplate("OK", []string{"C1", "C2"},
		[]TemplateBond{tb("C1", "C2", Single)},
		[]TemplateHydrogen{th("H1", "C1")})
	if err != nil {
		Te.Fatal(err)
	}
	if !tm.HasBond("C2", "C1") {
		Te.Error("HasBond is not symmetric")
	}
	if tm.HasBond("C1", "C1") {
		Te.Error("HasBond invented a self bond")
	}
}

//TestDefaultRegistry spot-checks the built-in template database.
func TestDefaultRegistry(Te *testing.T) {
	reg := DefaultRegistry()
	for _, name := range []string{
		"GLY", "ALA", "VAL", "LEU", "ILE", "PRO", "PHE", "TYR", "TRP",
		"SER", "THR", "ASN", "GLN", "ASP", "GLU", "LYS", "ARG", "MET",
		"CYS", "CYX", "CYM", "HIS", "HID", "HIE", "HIP",
		"A", "G", "C", "U", "DA", "DG", "DC", "DT", "HOH",
	} {
		if reg.Get(name) == nil {
			Te.Errorf("registry is missing %s", name)
		}
	}

	gly := reg.Get("GLY")
	found := map[string]bool{}
	for _, h := range gly.Hydrogens() {
		found[h.Name] = true
	}
	if !found["HA2"] || !found["HA3"] || found["HA"] {
		Te.Errorf("glycine hydrogens are %v", found)
	}

	//proline has no amide hydrogen and closes its ring onto N
	pro := reg.Get("PRO")
	for _, h := range pro.Hydrogens() {
		if h.Name == "H" {
			Te.Error("proline template carries an amide hydrogen")
		}
	}
	if !pro.HasBond("CD", "N") {
		Te.Error("proline ring is open")
	}

	//deoxyribose has no O2'
	if reg.Get("DT").HasAtom("O2'") {
		Te.Error("thymidine template carries O2'")
	}
	if !reg.Get("U").HasAtom("O2'") {
		Te.Error("uridine template lacks O2'")
	}

	hasHydro := func(name, h string) bool {
		for _, hy := range reg.Get(name).Hydrogens() {
			if hy.Name == h {
				return true
			}
		}
		return false
	}
	if !hasHydro("CYS", "HG") {
		Te.Error("cysteine template lacks its thiol hydrogen")
	}
	if hasHydro("CYX", "HG") || hasHydro("CYM", "HG") {
		Te.Error("cystine or thiolate template carries a thiol hydrogen")
	}
}
