/*
 * mmcif.go, part of mol.
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
	"fmt"
	"io"
)

//mmCIF output: a data block with the cell (when a box is set), an
//atom_site loop with one row per atom in traversal order, and, for
//topologies, a struct_conn loop with one row per bond. Bond orders render
//to the mmCIF value_order tokens.

// WriteMMCIF writes s as an mmCIF data block.
func WriteMMCIF(w io.Writer, s *Structure) error {
	cw := &cifWriter{w: w, id: 1, idxID: make(map[int]int)}
	if err := cw.header(); err != nil {
		return errDecorate(err, "WriteMMCIF")
	}
	if err := cw.cell(s); err != nil {
		return errDecorate(err, "WriteMMCIF")
	}
	return cw.atoms(s)
}

// WriteMMCIFTopology writes the topology's structure as an mmCIF data
// block, followed by its bonds as struct_conn records.
func WriteMMCIFTopology(w io.Writer, t *Topology) error {
	cw := &cifWriter{w: w, id: 1, idxID: make(map[int]int)}
	if err := cw.header(); err != nil {
		return errDecorate(err, "WriteMMCIFTopology")
	}
	if err := cw.cell(t.Structure()); err != nil {
		return errDecorate(err, "WriteMMCIFTopology")
	}
	if err := cw.atoms(t.Structure()); err != nil {
		return errDecorate(err, "WriteMMCIFTopology")
	}
	return cw.connections(t)
}

// MMCIFFileWrite writes s to the named file, gzip-compressing when the
// name ends in ".gz".
func MMCIFFileWrite(name string, s *Structure) error {
	return fileWrite(name, func(w io.Writer) error { return WriteMMCIF(w, s) })
}

// MMCIFTopologyFileWrite writes t to the named file, gzip-compressing
// when the name ends in ".gz".
func MMCIFTopologyFileWrite(name string, t *Topology) error {
	return fileWrite(name, func(w io.Writer) error { return WriteMMCIFTopology(w, t) })
}

type cifWriter struct {
	w     io.Writer
	id    int
	idxID map[int]int //flat atom index -> atom_site id
}

func (cw *cifWriter) printf(format string, args ...interface{}) error {
	if _, err := fmt.Fprintf(cw.w, format, args...); err != nil {
		return &CError{msg: "mol: " + err.Error()}
	}
	return nil
}

func (cw *cifWriter) header() error {
	return cw.printf("data_mol_export\n#\n")
}

func (cw *cifWriter) cell(s *Structure) error {
	box, ok := s.Box()
	if !ok {
		return nil
	}
	a, b, c, alpha, beta, gamma := latticeParams(box)
	err := cw.printf("_cell.entry_id           mol_export\n")
	if err != nil {
		return err
	}
	for _, line := range []struct {
		tag  string
		val  float64
		prec int
	}{
		{"_cell.length_a", a, 3},
		{"_cell.length_b", b, 3},
		{"_cell.length_c", c, 3},
		{"_cell.angle_alpha", alpha, 2},
		{"_cell.angle_beta", beta, 2},
		{"_cell.angle_gamma", gamma, 2},
	} {
		if err := cw.printf("%-24s %.*f\n", line.tag, line.prec, line.val); err != nil {
			return err
		}
	}
	return cw.printf("#\n")
}

func (cw *cifWriter) atoms(s *Structure) error {
	err := cw.printf("loop_\n" +
		"_atom_site.group_PDB\n" +
		"_atom_site.id\n" +
		"_atom_site.type_symbol\n" +
		"_atom_site.label_atom_id\n" +
		"_atom_site.label_comp_id\n" +
		"_atom_site.label_asym_id\n" +
		"_atom_site.label_seq_id\n" +
		"_atom_site.Cartn_x\n" +
		"_atom_site.Cartn_y\n" +
		"_atom_site.Cartn_z\n")
	if err != nil {
		return err
	}
	idx := 0
	for _, chain := range s.Chains() {
		for _, res := range chain.Residues() {
			group := "HETATM"
			if res.Category == Standard && IsStandardResidue(res.Name) {
				group = "ATOM"
			}
			for _, at := range res.Atoms() {
				cw.idxID[idx] = cw.id
				err := cw.printf("%-6s %d %s %s %s %s %d %.3f %.3f %.3f\n",
					group, cw.id, at.Element.Symbol(), cifQuote(at.Name), res.Name,
					chain.ID, res.ID, at.Pos.X, at.Pos.Y, at.Pos.Z)
				if err != nil {
					return err
				}
				cw.id++
				idx++
			}
		}
	}
	return cw.printf("#\n")
}

func (cw *cifWriter) connections(t *Topology) error {
	if t.BondCount() == 0 {
		return nil
	}
	err := cw.printf("loop_\n" +
		"_struct_conn.id\n" +
		"_struct_conn.conn_type_id\n" +
		"_struct_conn.ptnr1_atom_site_id\n" +
		"_struct_conn.ptnr2_atom_site_id\n" +
		"_struct_conn.value_order\n")
	if err != nil {
		return err
	}
	for i, b := range t.Bonds() {
		err := cw.printf("bond%d covale %d %d %s\n",
			i+1, cw.idxID[b.A1], cw.idxID[b.A2], cifBondOrder(b.Order))
		if err != nil {
			return err
		}
	}
	return cw.printf("#\n")
}

// cifBondOrder renders a bond order as the mmCIF value_order token.
func cifBondOrder(o BondOrder) string {
	switch o {
	case Double:
		return "doub"
	case Triple:
		return "trip"
	case Aromatic:
		return "arom"
	}
	return "sing"
}

// cifQuote protects atom names containing primes (O5', HO3') from being
// read as CIF quotes.
func cifQuote(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] == '\'' {
			return `"` + name + `"`
		}
	}
	return name
}
