/*
 * aminoacids.go, part of mol.
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

//Atom and hydrogen names follow PDB chemical-component conventions
//(version 3 naming, e.g. HB2/HB3 rather than 1HB/2HB).

func tb(a1, a2 string, order BondOrder) TemplateBond {
	return TemplateBond{A1: a1, A2: a2, Order: order}
}

func th(name string, anchors ...string) TemplateHydrogen {
	return TemplateHydrogen{Name: name, Anchors: anchors}
}

// aminoTemplate assembles a standard amino-acid template from its side
// chain. The backbone (N, CA, C, O and their hydrogens) is shared by all of
// them; proline contributes no backbone amide hydrogen and closes its ring
// onto N itself.
func aminoTemplate(name string, sideAtoms []string, sideBonds []TemplateBond, sideHydrogens []TemplateHydrogen, backboneH bool) *Template {
	atoms := append([]string{"N", "CA", "C", "O"}, sideAtoms...)
	bonds := []TemplateBond{
		tb("N", "CA", Single),
		tb("CA", "C", Single),
		tb("C", "O", Double),
	}
	bonds = append(bonds, sideBonds...)
	var hydrogens []TemplateHydrogen
	if backboneH {
		hydrogens = append(hydrogens, th("H", "N"))
	}
	if name == "GLY" {
		hydrogens = append(hydrogens, th("HA2", "CA"), th("HA3", "CA"))
	} else {
		hydrogens = append(hydrogens, th("HA", "CA"))
	}
	hydrogens = append(hydrogens, sideHydrogens...)
	return mustTemplate(name, atoms, bonds, hydrogens)
}

func aminoAcidTemplates() []*Template {
	ts := []*Template{
		aminoTemplate("GLY", nil, nil, nil, true),

		aminoTemplate("ALA",
			[]string{"CB"},
			[]TemplateBond{tb("CA", "CB", Single)},
			[]TemplateHydrogen{th("HB1", "CB"), th("HB2", "CB"), th("HB3", "CB")},
			true),

		aminoTemplate("VAL",
			[]string{"CB", "CG1", "CG2"},
			[]TemplateBond{tb("CA", "CB", Single), tb("CB", "CG1", Single), tb("CB", "CG2", Single)},
			[]TemplateHydrogen{
				th("HB", "CB"),
				th("HG11", "CG1"), th("HG12", "CG1"), th("HG13", "CG1"),
				th("HG21", "CG2"), th("HG22", "CG2"), th("HG23", "CG2"),
			},
			true),

		aminoTemplate("LEU",
			[]string{"CB", "CG", "CD1", "CD2"},
			[]TemplateBond{tb("CA", "CB", Single), tb("CB", "CG", Single), tb("CG", "CD1", Single), tb("CG", "CD2", Single)},
			[]TemplateHydrogen{
				th("HB2", "CB"), th("HB3", "CB"), th("HG", "CG"),
				th("HD11", "CD1"), th("HD12", "CD1"), th("HD13", "CD1"),
				th("HD21", "CD2"), th("HD22", "CD2"), th("HD23", "CD2"),
			},
			true),

		aminoTemplate("ILE",
			[]string{"CB", "CG1", "CG2", "CD1"},
			[]TemplateBond{tb("CA", "CB", Single), tb("CB", "CG1", Single), tb("CB", "CG2", Single), tb("CG1", "CD1", Single)},
			[]TemplateHydrogen{
				th("HB", "CB"),
				th("HG12", "CG1"), th("HG13", "CG1"),
				th("HG21", "CG2"), th("HG22", "CG2"), th("HG23", "CG2"),
				th("HD11", "CD1"), th("HD12", "CD1"), th("HD13", "CD1"),
			},
			true),

		aminoTemplate("PRO",
			[]string{"CB", "CG", "CD"},
			[]TemplateBond{tb("CA", "CB", Single), tb("CB", "CG", Single), tb("CG", "CD", Single), tb("CD", "N", Single)},
			[]TemplateHydrogen{
				th("HB2", "CB"), th("HB3", "CB"),
				th("HG2", "CG"), th("HG3", "CG"),
				th("HD2", "CD"), th("HD3", "CD"),
			},
			false), //the ring nitrogen carries no amide hydrogen

		aminoTemplate("PHE",
			[]string{"CB", "CG", "CD1", "CD2", "CE1", "CE2", "CZ"},
			[]TemplateBond{
				tb("CA", "CB", Single), tb("CB", "CG", Single),
				tb("CG", "CD1", Aromatic), tb("CD1", "CE1", Aromatic), tb("CE1", "CZ", Aromatic),
				tb("CZ", "CE2", Aromatic), tb("CE2", "CD2", Aromatic), tb("CD2", "CG", Aromatic),
			},
			[]TemplateHydrogen{
				th("HB2", "CB"), th("HB3", "CB"),
				th("HD1", "CD1"), th("HD2", "CD2"),
				th("HE1", "CE1"), th("HE2", "CE2"),
				th("HZ", "CZ"),
			},
			true),

		aminoTemplate("TYR",
			[]string{"CB", "CG", "CD1", "CD2", "CE1", "CE2", "CZ", "OH"},
			[]TemplateBond{
				tb("CA", "CB", Single), tb("CB", "CG", Single),
				tb("CG", "CD1", Aromatic), tb("CD1", "CE1", Aromatic), tb("CE1", "CZ", Aromatic),
				tb("CZ", "CE2", Aromatic), tb("CE2", "CD2", Aromatic), tb("CD2", "CG", Aromatic),
				tb("CZ", "OH", Single),
			},
			[]TemplateHydrogen{
				th("HB2", "CB"), th("HB3", "CB"),
				th("HD1", "CD1"), th("HD2", "CD2"),
				th("HE1", "CE1"), th("HE2", "CE2"),
				th("HH", "OH"),
			},
			true),

		aminoTemplate("TRP",
			[]string{"CB", "CG", "CD1", "CD2", "NE1", "CE2", "CE3", "CZ2", "CZ3", "CH2"},
			[]TemplateBond{
				tb("CA", "CB", Single), tb("CB", "CG", Single),
				tb("CG", "CD1", Aromatic), tb("CD1", "NE1", Aromatic), tb("NE1", "CE2", Aromatic),
				tb("CE2", "CD2", Aromatic), tb("CD2", "CG", Aromatic),
				tb("CD2", "CE3", Aromatic), tb("CE3", "CZ3", Aromatic), tb("CZ3", "CH2", Aromatic),
				tb("CH2", "CZ2", Aromatic), tb("CZ2", "CE2", Aromatic),
			},
			[]TemplateHydrogen{
				th("HB2", "CB"), th("HB3", "CB"),
				th("HD1", "CD1"), th("HE1", "NE1"), th("HE3", "CE3"),
				th("HZ2", "CZ2"), th("HZ3", "CZ3"), th("HH2", "CH2"),
			},
			true),

		aminoTemplate("SER",
			[]string{"CB", "OG"},
			[]TemplateBond{tb("CA", "CB", Single), tb("CB", "OG", Single)},
			[]TemplateHydrogen{th("HB2", "CB"), th("HB3", "CB"), th("HG", "OG")},
			true),

		aminoTemplate("THR",
			[]string{"CB", "OG1", "CG2"},
			[]TemplateBond{tb("CA", "CB", Single), tb("CB", "OG1", Single), tb("CB", "CG2", Single)},
			[]TemplateHydrogen{
				th("HB", "CB"), th("HG1", "OG1"),
				th("HG21", "CG2"), th("HG22", "CG2"), th("HG23", "CG2"),
			},
			true),

		aminoTemplate("ASN",
			[]string{"CB", "CG", "OD1", "ND2"},
			[]TemplateBond{tb("CA", "CB", Single), tb("CB", "CG", Single), tb("CG", "OD1", Double), tb("CG", "ND2", Single)},
			[]TemplateHydrogen{th("HB2", "CB"), th("HB3", "CB"), th("HD21", "ND2"), th("HD22", "ND2")},
			true),

		aminoTemplate("GLN",
			[]string{"CB", "CG", "CD", "OE1", "NE2"},
			[]TemplateBond{
				tb("CA", "CB", Single), tb("CB", "CG", Single), tb("CG", "CD", Single),
				tb("CD", "OE1", Double), tb("CD", "NE2", Single),
			},
			[]TemplateHydrogen{
				th("HB2", "CB"), th("HB3", "CB"),
				th("HG2", "CG"), th("HG3", "CG"),
				th("HE21", "NE2"), th("HE22", "NE2"),
			},
			true),

		aminoTemplate("ASP",
			[]string{"CB", "CG", "OD1", "OD2"},
			[]TemplateBond{tb("CA", "CB", Single), tb("CB", "CG", Single), tb("CG", "OD1", Double), tb("CG", "OD2", Single)},
			[]TemplateHydrogen{th("HB2", "CB"), th("HB3", "CB"), th("HD2", "OD2")},
			true),

		aminoTemplate("GLU",
			[]string{"CB", "CG", "CD", "OE1", "OE2"},
			[]TemplateBond{
				tb("CA", "CB", Single), tb("CB", "CG", Single), tb("CG", "CD", Single),
				tb("CD", "OE1", Double), tb("CD", "OE2", Single),
			},
			[]TemplateHydrogen{
				th("HB2", "CB"), th("HB3", "CB"),
				th("HG2", "CG"), th("HG3", "CG"),
				th("HE2", "OE2"),
			},
			true),

		aminoTemplate("LYS",
			[]string{"CB", "CG", "CD", "CE", "NZ"},
			[]TemplateBond{
				tb("CA", "CB", Single), tb("CB", "CG", Single), tb("CG", "CD", Single),
				tb("CD", "CE", Single), tb("CE", "NZ", Single),
			},
			[]TemplateHydrogen{
				th("HB2", "CB"), th("HB3", "CB"),
				th("HG2", "CG"), th("HG3", "CG"),
				th("HD2", "CD"), th("HD3", "CD"),
				th("HE2", "CE"), th("HE3", "CE"),
				th("HZ1", "NZ"), th("HZ2", "NZ"), th("HZ3", "NZ"),
			},
			true),

		aminoTemplate("ARG",
			[]string{"CB", "CG", "CD", "NE", "CZ", "NH1", "NH2"},
			[]TemplateBond{
				tb("CA", "CB", Single), tb("CB", "CG", Single), tb("CG", "CD", Single),
				tb("CD", "NE", Single), tb("NE", "CZ", Single),
				tb("CZ", "NH1", Double), tb("CZ", "NH2", Single),
			},
			[]TemplateHydrogen{
				th("HB2", "CB"), th("HB3", "CB"),
				th("HG2", "CG"), th("HG3", "CG"),
				th("HD2", "CD"), th("HD3", "CD"),
				th("HE", "NE"),
				th("HH11", "NH1"), th("HH12", "NH1"),
				th("HH21", "NH2"), th("HH22", "NH2"),
			},
			true),

		aminoTemplate("MET",
			[]string{"CB", "CG", "SD", "CE"},
			[]TemplateBond{tb("CA", "CB", Single), tb("CB", "CG", Single), tb("CG", "SD", Single), tb("SD", "CE", Single)},
			[]TemplateHydrogen{
				th("HB2", "CB"), th("HB3", "CB"),
				th("HG2", "CG"), th("HG3", "CG"),
				th("HE1", "CE"), th("HE2", "CE"), th("HE3", "CE"),
			},
			true),
	}

	//Cysteine comes in three flavors: the free thiol (CYS, with HG),
	//the cystine half taking part in a disulfide bridge (CYX, no HG),
	//and the deprotonated thiolate (CYM, no HG either).
	cysSide := []string{"CB", "SG"}
	cysBonds := []TemplateBond{tb("CA", "CB", Single), tb("CB", "SG", Single)}
	ts = append(ts,
		aminoTemplate("CYS", cysSide, cysBonds,
			[]TemplateHydrogen{th("HB2", "CB"), th("HB3", "CB"), th("HG", "SG")}, true),
		aminoTemplate("CYX", cysSide, cysBonds,
			[]TemplateHydrogen{th("HB2", "CB"), th("HB3", "CB")}, true),
		aminoTemplate("CYM", cysSide, cysBonds,
			[]TemplateHydrogen{th("HB2", "CB"), th("HB3", "CB")}, true),
	)

	//Histidine and its explicit protonation variants share one connectivity;
	//the engine only bonds the ring hydrogens actually present, so a single
	//atom/bond layout serves all four names.
	hisSide := []string{"CB", "CG", "ND1", "CD2", "CE1", "NE2"}
	hisBonds := []TemplateBond{
		tb("CA", "CB", Single), tb("CB", "CG", Single),
		tb("CG", "ND1", Aromatic), tb("ND1", "CE1", Aromatic), tb("CE1", "NE2", Aromatic),
		tb("NE2", "CD2", Aromatic), tb("CD2", "CG", Aromatic),
	}
	hisHydro := []TemplateHydrogen{
		th("HB2", "CB"), th("HB3", "CB"),
		th("HD1", "ND1"), th("HD2", "CD2"),
		th("HE1", "CE1"), th("HE2", "NE2"),
	}
	for _, name := range []string{"HIS", "HID", "HIE", "HIP"} {
		ts = append(ts, aminoTemplate(name, hisSide, hisBonds, hisHydro, true))
	}

	return ts
}

func waterTemplate() *Template {
	return mustTemplate("HOH",
		[]string{"O"},
		nil,
		[]TemplateHydrogen{th("H1", "O"), th("H2", "O")},
	)
}
