/*
 * nucleotides.go, part of mol.
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

//Nucleotide templates. The phosphate and sugar are shared; deoxyribose
//(DNA) lacks O2' and carries H2'' instead of HO2'. Glycosidic attachment is
//N9 for purines and N1 for pyrimidines. The 5'/3' terminal hydroxyl
//hydrogens (HO5', HO3') are handled by the terminal bonding rules, not by
//these templates.

// nucleotideTemplate assembles a template from the base layout.
func nucleotideTemplate(name string, deoxy bool, baseAtoms []string, baseBonds []TemplateBond, baseHydrogens []TemplateHydrogen, glycosidicN string) *Template {
	atoms := []string{"P", "OP1", "OP2", "O5'", "C5'", "C4'", "O4'", "C3'", "O3'", "C2'", "C1'"}
	if !deoxy {
		atoms = append(atoms, "O2'")
	}
	atoms = append(atoms, baseAtoms...)

	bonds := []TemplateBond{
		tb("P", "OP1", Double),
		tb("P", "OP2", Single),
		tb("P", "O5'", Single),
		tb("O5'", "C5'", Single),
		tb("C5'", "C4'", Single),
		tb("C4'", "O4'", Single),
		tb("C4'", "C3'", Single),
		tb("C3'", "O3'", Single),
		tb("C3'", "C2'", Single),
		tb("C2'", "C1'", Single),
		tb("C1'", "O4'", Single),
		tb("C1'", glycosidicN, Single),
	}
	if !deoxy {
		bonds = append(bonds, tb("C2'", "O2'", Single))
	}
	bonds = append(bonds, baseBonds...)

	hydrogens := []TemplateHydrogen{
		th("H5'", "C5'"), th("H5''", "C5'"),
		th("H4'", "C4'"), th("H3'", "C3'"),
		th("H1'", "C1'"),
	}
	if deoxy {
		hydrogens = append(hydrogens, th("H2'", "C2'"), th("H2''", "C2'"))
	} else {
		hydrogens = append(hydrogens, th("H2'", "C2'"), th("HO2'", "O2'"))
	}
	hydrogens = append(hydrogens, baseHydrogens...)

	return mustTemplate(name, atoms, bonds, hydrogens)
}

func nucleotideTemplates() []*Template {
	adenineAtoms := []string{"N9", "C8", "N7", "C5", "C6", "N6", "N1", "C2", "N3", "C4"}
	adenineBonds := []TemplateBond{
		tb("N9", "C8", Aromatic), tb("C8", "N7", Aromatic), tb("N7", "C5", Aromatic),
		tb("C5", "C4", Aromatic), tb("C4", "N9", Aromatic),
		tb("C5", "C6", Aromatic), tb("C6", "N1", Aromatic), tb("N1", "C2", Aromatic),
		tb("C2", "N3", Aromatic), tb("N3", "C4", Aromatic),
		tb("C6", "N6", Single),
	}
	adenineHydro := []TemplateHydrogen{
		th("H8", "C8"), th("H2", "C2"), th("H61", "N6"), th("H62", "N6"),
	}

	guanineAtoms := []string{"N9", "C8", "N7", "C5", "C6", "O6", "N1", "C2", "N2", "N3", "C4"}
	guanineBonds := []TemplateBond{
		tb("N9", "C8", Aromatic), tb("C8", "N7", Aromatic), tb("N7", "C5", Aromatic),
		tb("C5", "C4", Aromatic), tb("C4", "N9", Aromatic),
		tb("C5", "C6", Single), tb("C6", "O6", Double),
		tb("C6", "N1", Single), tb("N1", "C2", Single),
		tb("C2", "N3", Double), tb("N3", "C4", Single),
		tb("C2", "N2", Single),
	}
	guanineHydro := []TemplateHydrogen{
		th("H8", "C8"), th("H1", "N1"), th("H21", "N2"), th("H22", "N2"),
	}

	cytosineAtoms := []string{"N1", "C2", "O2", "N3", "C4", "N4", "C5", "C6"}
	cytosineBonds := []TemplateBond{
		tb("N1", "C2", Single), tb("C2", "O2", Double),
		tb("C2", "N3", Single), tb("N3", "C4", Double),
		tb("C4", "N4", Single), tb("C4", "C5", Single),
		tb("C5", "C6", Double), tb("C6", "N1", Single),
	}
	cytosineHydro := []TemplateHydrogen{
		th("H41", "N4"), th("H42", "N4"), th("H5", "C5"), th("H6", "C6"),
	}

	uracilAtoms := []string{"N1", "C2", "O2", "N3", "C4", "O4", "C5", "C6"}
	uracilBonds := []TemplateBond{
		tb("N1", "C2", Single), tb("C2", "O2", Double),
		tb("C2", "N3", Single), tb("N3", "C4", Single),
		tb("C4", "O4", Double), tb("C4", "C5", Single),
		tb("C5", "C6", Double), tb("C6", "N1", Single),
	}
	uracilHydro := []TemplateHydrogen{
		th("H3", "N3"), th("H5", "C5"), th("H6", "C6"),
	}

	thymineAtoms := append(append([]string{}, uracilAtoms...), "C7")
	thymineBonds := append(append([]TemplateBond{}, uracilBonds...), tb("C5", "C7", Single))
	thymineHydro := []TemplateHydrogen{
		th("H3", "N3"), th("H6", "C6"),
		th("H71", "C7"), th("H72", "C7"), th("H73", "C7"),
	}

	return []*Template{
		nucleotideTemplate("A", false, adenineAtoms, adenineBonds, adenineHydro, "N9"),
		nucleotideTemplate("G", false, guanineAtoms, guanineBonds, guanineHydro, "N9"),
		nucleotideTemplate("C", false, cytosineAtoms, cytosineBonds, cytosineHydro, "N1"),
		nucleotideTemplate("U", false, uracilAtoms, uracilBonds, uracilHydro, "N1"),
		nucleotideTemplate("DA", true, adenineAtoms, adenineBonds, adenineHydro, "N9"),
		nucleotideTemplate("DG", true, guanineAtoms, guanineBonds, guanineHydro, "N9"),
		nucleotideTemplate("DC", true, cytosineAtoms, cytosineBonds, cytosineHydro, "N1"),
		nucleotideTemplate("DT", true, thymineAtoms, thymineBonds, thymineHydro, "N1"),
	}
}
