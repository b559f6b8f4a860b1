/*
 * clean.go, part of mol.
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

// CleanConfig selects what Clean removes from a structure. KeepNames wins
// over every removal rule.
type CleanConfig struct {
	RemoveWater     bool
	RemoveIons      bool
	RemoveHydrogens bool
	RemoveHetero    bool
	RemoveNames     map[string]bool
	KeepNames       map[string]bool
}

// WaterOnly returns a config that removes just water residues.
func WaterOnly() *CleanConfig {
	return &CleanConfig{RemoveWater: true}
}

// WaterAndIons returns a config that removes water and ion residues.
func WaterAndIons() *CleanConfig {
	return &CleanConfig{RemoveWater: true, RemoveIons: true}
}

// Clean removes atoms and residues from s according to config and prunes
// chains left empty. Flat atom indices assigned before the call - and any
// Topology built over s - are invalid afterwards.
func Clean(s *Structure, config *CleanConfig) {
	if config.RemoveHydrogens {
		for _, chain := range s.Chains() {
			for _, res := range chain.Residues() {
				res.StripHydrogens()
			}
		}
	}
	s.RetainResidues(func(_ string, res *Residue) bool {
		switch {
		case config.KeepNames[res.Name]:
			return true
		case config.RemoveNames[res.Name]:
			return false
		case config.RemoveWater && (res.Category == Water || IsWaterResidue(res.Name)):
			return false
		case config.RemoveIons && res.Category == Ion:
			return false
		case config.RemoveHetero && res.Category == Hetero:
			return false
		}
		return true
	})
	s.PruneEmptyChains()
}
