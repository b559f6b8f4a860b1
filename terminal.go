/*
 * terminal.go, part of mol.
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

//The polymer ends change which hydrogens a residue is expected to carry: a
//charged N-terminus trades the amide H for H1/H2/H3, a C-terminus may or
//may not have its carboxyl proton, and nucleic 5'/3' hydroxyls may come
//with or without HO5'/HO3'. A structure lacking one of these is not
//malformed, so a template bond referencing one is silently skipped rather
//than treated as an error. The whole policy lives in this one table.

var optionalTerminalAtoms = map[ResiduePosition]map[string]bool{
	NTerminal:  {"H": true, "H1": true, "H2": true, "H3": true},
	CTerminal:  {"HXT": true, "HOXT": true},
	FivePrime:  {"HO5'": true},
	ThreePrime: {"HO3'": true},
}

// isOptionalTerminalAtom reports whether atomName may be absent from the
// residue without invalidating a template bond that references it, given
// the residue's terminal position and polymer class.
func isOptionalTerminalAtom(r *Residue, atomName string) bool {
	switch r.Position {
	case NTerminal, CTerminal:
		if !r.IsProtein() {
			return false
		}
	case FivePrime, ThreePrime:
		if !r.IsNucleic() {
			return false
		}
	default:
		return false
	}
	return optionalTerminalAtoms[r.Position][atomName]
}
