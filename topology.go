/*
 * topology.go, part of mol.
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
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/structbio/mol/grid"
)

// Default distance cutoffs, in Angstrom. A peptide C-N bond measures about
// 1.33 A and a phosphodiester O3'-P about 1.6 A; disulfide S-S runs around
// 2.05 A. The defaults leave room for imperfect geometry without reaching
// into nonbonded distances.
const (
	DefaultDisulfideCutoff = 2.2
	DefaultPeptideCutoff   = 1.5
	DefaultNucleicCutoff   = 1.8
)

// TopologyBuilder infers a bond list for a structure from residue
// templates and geometry. Configure it with the chained setters, then call
// Build. The zero configuration (NewTopologyBuilder) uses the built-in
// template registry and the default cutoffs.
type TopologyBuilder struct {
	registry      *Registry
	userTemplates map[string]*Template
	disulfide     float64
	peptide       float64
	nucleic       float64
}

// NewTopologyBuilder returns a builder with default configuration.
func NewTopologyBuilder() *TopologyBuilder {
	return &TopologyBuilder{
		registry:      DefaultRegistry(),
		userTemplates: make(map[string]*Template),
		disulfide:     DefaultDisulfideCutoff,
		peptide:       DefaultPeptideCutoff,
		nucleic:       DefaultNucleicCutoff,
	}
}

// Registry replaces the built-in standard-residue registry, mainly for
// tests. It returns the builder for chaining.
func (B *TopologyBuilder) Registry(r *Registry) *TopologyBuilder {
	B.registry = r
	return B
}

// AddTemplate registers a user template for a hetero residue, keyed by the
// template's name. It returns the builder for chaining.
func (B *TopologyBuilder) AddTemplate(t *Template) *TopologyBuilder {
	B.userTemplates[t.Name] = t
	return B
}

// DisulfideCutoff sets the SG-SG distance cutoff in Angstrom.
func (B *TopologyBuilder) DisulfideCutoff(c float64) *TopologyBuilder {
	B.disulfide = c
	return B
}

// PeptideCutoff sets the C-N distance cutoff in Angstrom.
func (B *TopologyBuilder) PeptideCutoff(c float64) *TopologyBuilder {
	B.peptide = c
	return B
}

// NucleicCutoff sets the O3'-P distance cutoff in Angstrom.
func (B *TopologyBuilder) NucleicCutoff(c float64) *TopologyBuilder {
	B.nucleic = c
	return B
}

// Build infers the full bond list for s and returns it embedded in a
// Topology together with s itself. The caller hands the structure over:
// mutating it after a successful Build invalidates the topology's flat
// indices. On error no Topology is returned; the input should be fixed
// (e.g. a missing template supplied) and Build called again. Two builds
// over the same input yield the same bonds as a set.
func (B *TopologyBuilder) Build(s *Structure) (*Topology, error) {
	var bonds []Bond

	bonds, err := B.intraResidue(s, bonds)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	bonds = B.interResidue(s, bonds)
	bonds = B.disulfideBridges(s, bonds)

	return NewTopology(s, bonds)
}

// intraResidue emits every within-residue bond, walking residues in
// structure order and keeping a running flat-index offset.
func (B *TopologyBuilder) intraResidue(s *Structure, bonds []Bond) ([]Bond, error) {
	offset := 0
	var err error
	for _, chain := range s.Chains() {
		for _, res := range chain.Residues() {
			switch res.Category {
			case Ion:
				//monoatomic, nothing to bond
			case Standard:
				tmpl := B.registry.Get(res.Name)
				if tmpl == nil {
					return nil, &MissingInternalTemplateError{ResName: res.Name}
				}
				for _, tb := range tmpl.Bonds() {
					bonds, err = B.tryAddBond(res, offset, tb.A1, tb.A2, tb.Order, bonds)
					if err != nil {
						return nil, err
					}
				}
				//a hydrogen bonds to the first listed anchor only; later
				//anchors are fallbacks for placement, not extra bonds
				for _, h := range tmpl.Hydrogens() {
					if len(h.Anchors) == 0 || !res.HasAtom(h.Name) {
						continue
					}
					bonds, err = B.tryAddBond(res, offset, h.Name, h.Anchors[0], Single, bonds)
					if err != nil {
						return nil, err
					}
				}
				bonds = B.terminalBonds(res, offset, bonds)
			case Hetero:
				tmpl := B.userTemplates[res.Name]
				if tmpl == nil {
					return nil, &MissingUserTemplateError{ResName: res.Name}
				}
				for _, tb := range tmpl.Bonds() {
					bonds, err = B.tryAddBond(res, offset, tb.A1, tb.A2, tb.Order, bonds)
					if err != nil {
						return nil, err
					}
				}
			}
			offset += res.AtomCount()
		}
	}
	return bonds, nil
}

// tryAddBond resolves two atom names within res and appends the bond at
// the residue's flat offset. A missing atom is an error unless the
// terminal-atom policy marks it optional, in which case the bond is
// silently skipped.
func (B *TopologyBuilder) tryAddBond(res *Residue, offset int, name1, name2 string, order BondOrder, bonds []Bond) ([]Bond, error) {
	i1 := res.AtomIndex(name1)
	i2 := res.AtomIndex(name2)
	if i1 >= 0 && i2 >= 0 {
		return append(bonds, NewBond(offset+i1, offset+i2, order)), nil
	}
	if i1 < 0 && isOptionalTerminalAtom(res, name1) {
		return bonds, nil
	}
	if i2 < 0 && isOptionalTerminalAtom(res, name2) {
		return bonds, nil
	}
	missing := name1
	if i1 >= 0 {
		missing = name2
	}
	return nil, &AtomMissingError{ResName: res.Name, ResID: res.ID, AtomName: missing}
}

// terminalBonds emits the bonds specific to chain ends. Every bond here is
// conditional on all its atoms being present.
func (B *TopologyBuilder) terminalBonds(res *Residue, offset int, bonds []Bond) []Bond {
	switch {
	case res.Position == NTerminal && res.IsProtein():
		//the charged N-terminus carries up to three hydrogens
		if n := res.AtomIndex("N"); n >= 0 {
			for _, hname := range []string{"H1", "H2", "H3"} {
				if h := res.AtomIndex(hname); h >= 0 {
					bonds = append(bonds, NewBond(offset+h, offset+n, Single))
				}
			}
		}
	case res.Position == CTerminal && res.IsProtein():
		c := res.AtomIndex("C")
		oxt := res.AtomIndex("OXT")
		if c >= 0 && oxt >= 0 {
			bonds = append(bonds, NewBond(offset+c, offset+oxt, Single))
			for _, hname := range []string{"HXT", "HOXT"} {
				if h := res.AtomIndex(hname); h >= 0 {
					bonds = append(bonds, NewBond(offset+oxt, offset+h, Single))
				}
			}
		}
	case res.Position == FivePrime && res.IsNucleic():
		h := res.AtomIndex("HO5'")
		o := res.AtomIndex("O5'")
		if h >= 0 && o >= 0 {
			bonds = append(bonds, NewBond(offset+h, offset+o, Single))
		}
	case res.Position == ThreePrime && res.IsNucleic():
		h := res.AtomIndex("HO3'")
		o := res.AtomIndex("O3'")
		if h >= 0 && o >= 0 {
			bonds = append(bonds, NewBond(offset+h, offset+o, Single))
		}
	}
	return bonds
}

// residueOffsets returns, per chain, the flat-index offset of each residue.
func residueOffsets(s *Structure) [][]int {
	offsets := make([][]int, 0, len(s.Chains()))
	cur := 0
	for _, chain := range s.Chains() {
		co := make([]int, 0, chain.ResidueCount())
		for _, res := range chain.Residues() {
			co = append(co, cur)
			cur += res.AtomCount()
		}
		offsets = append(offsets, co)
	}
	return offsets
}

// interResidue links consecutive standard residues within each chain:
// peptide C-N for proteins, phosphodiester O3'-P for nucleic acids. The
// bonds are geometry-gated, so chain breaks simply produce no bond.
func (B *TopologyBuilder) interResidue(s *Structure, bonds []Bond) []Bond {
	offsets := residueOffsets(s)
	for ci, chain := range s.Chains() {
		residues := chain.Residues()
		for i := 0; i+1 < len(residues); i++ {
			cur, next := residues[i], residues[i+1]
			if cur.Category != Standard || next.Category != Standard {
				continue
			}
			switch {
			case cur.IsProtein() && next.IsProtein():
				bonds = B.connectIfClose(cur, offsets[ci][i], "C",
					next, offsets[ci][i+1], "N", B.peptide, bonds)
			case cur.IsNucleic() && next.IsNucleic():
				bonds = B.connectIfClose(cur, offsets[ci][i], "O3'",
					next, offsets[ci][i+1], "P", B.nucleic, bonds)
			}
		}
	}
	return bonds
}

// connectIfClose bonds the two named atoms when both exist and lie within
// the cutoff.
func (B *TopologyBuilder) connectIfClose(res1 *Residue, off1 int, name1 string, res2 *Residue, off2 int, name2 string, cutoff float64, bonds []Bond) []Bond {
	i1 := res1.AtomIndex(name1)
	i2 := res2.AtomIndex(name2)
	if i1 < 0 || i2 < 0 {
		return bonds
	}
	p1 := res1.Atoms()[i1].Pos
	p2 := res2.Atoms()[i2].Pos
	if r3.Norm2(r3.Sub(p1, p2)) <= cutoff*cutoff {
		bonds = append(bonds, NewBond(off1+i1, off2+i2, Single))
	}
	return bonds
}

// disulfideBridges bonds the SG sulfurs of cystine residues (CYX/CYM)
// lying within the disulfide cutoff. The candidate sulfurs go into a
// spatial grid keyed on the cutoff, so the search stays near-linear in the
// cystine count instead of scanning all pairs.
func (B *TopologyBuilder) disulfideBridges(s *Structure, bonds []Bond) []Bond {
	//a non-positive cutoff disables the search; it is also no valid
	//grid cell size
	if B.disulfide <= 0 {
		return bonds
	}
	offsets := residueOffsets(s)
	var sulfurs []grid.Item[int]
	for ci, chain := range s.Chains() {
		for ri, res := range chain.Residues() {
			if res.Name != "CYX" && res.Name != "CYM" {
				continue
			}
			if sg := res.AtomIndex("SG"); sg >= 0 {
				sulfurs = append(sulfurs, grid.Item[int]{
					Pos:     res.Atoms()[sg].Pos,
					Payload: offsets[ci][ri] + sg,
				})
			}
		}
	}
	if len(sulfurs) < 2 {
		return bonds
	}
	g := grid.New(sulfurs, B.disulfide)
	for _, sulfur := range sulfurs {
		n := g.Neighbors(sulfur.Pos, B.disulfide).Exact()
		for other, ok := n.Next(); ok; other, ok = n.Next() {
			//count each unordered pair once, and skip the sulfur itself
			if other > sulfur.Payload {
				bonds = append(bonds, NewBond(sulfur.Payload, other, Single))
			}
		}
	}
	return bonds
}
