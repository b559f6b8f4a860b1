/*
 * pdb.go, part of mol.
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
	"math"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/spatial/r3"
)

//PDB output. Atoms are emitted one record per atom in the structure's
//traversal order; standard polymer residues go out as ATOM, everything
//else as HETATM, and a TER closes each chain after its last standard
//residue. Topology output additionally emits one CONECT per bond, using
//the serials assigned during atom emission.

// WritePDB writes s in PDB format.
func WritePDB(w io.Writer, s *Structure) error {
	pw := &pdbWriter{w: w, serial: 1, idxSerial: make(map[int]int)}
	if err := pw.cryst1(s); err != nil {
		return errDecorate(err, "WritePDB")
	}
	if err := pw.atoms(s); err != nil {
		return errDecorate(err, "WritePDB")
	}
	return pw.end()
}

// WritePDBTopology writes the topology's structure in PDB format, followed
// by one CONECT record per bond.
func WritePDBTopology(w io.Writer, t *Topology) error {
	pw := &pdbWriter{w: w, serial: 1, idxSerial: make(map[int]int)}
	if err := pw.cryst1(t.Structure()); err != nil {
		return errDecorate(err, "WritePDBTopology")
	}
	if err := pw.atoms(t.Structure()); err != nil {
		return errDecorate(err, "WritePDBTopology")
	}
	if err := pw.conects(t); err != nil {
		return errDecorate(err, "WritePDBTopology")
	}
	return pw.end()
}

// PDBFileWrite writes s to the named file, gzip-compressing when the name
// ends in ".gz".
func PDBFileWrite(name string, s *Structure) error {
	return fileWrite(name, func(w io.Writer) error { return WritePDB(w, s) })
}

// PDBTopologyFileWrite writes t to the named file, gzip-compressing when
// the name ends in ".gz".
func PDBTopologyFileWrite(name string, t *Topology) error {
	return fileWrite(name, func(w io.Writer) error { return WritePDBTopology(w, t) })
}

// fileWrite opens name and runs emit over it, interposing a gzip layer for
// ".gz" names.
func fileWrite(name string, emit func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return &CError{msg: "mol: " + err.Error()}
	}
	defer f.Close()
	var w io.Writer = f
	if strings.HasSuffix(name, ".gz") {
		zw := gzip.NewWriter(f)
		defer zw.Close()
		w = zw
	}
	return emit(w)
}

type pdbWriter struct {
	w         io.Writer
	serial    int
	idxSerial map[int]int //flat atom index -> PDB serial
}

func (pw *pdbWriter) printf(format string, args ...interface{}) error {
	if _, err := fmt.Fprintf(pw.w, format, args...); err != nil {
		return &CError{msg: "mol: " + err.Error()}
	}
	return nil
}

// cryst1 writes the periodic box, if any, as a CRYST1 record with lattice
// lengths and angles.
func (pw *pdbWriter) cryst1(s *Structure) error {
	box, ok := s.Box()
	if !ok {
		return nil
	}
	a, b, c, alpha, beta, gamma := latticeParams(box)
	return pw.printf("CRYST1%9.3f%9.3f%9.3f%7.2f%7.2f%7.2f P 1           1\n",
		a, b, c, alpha, beta, gamma)
}

// latticeParams converts three lattice vectors to cell lengths in Angstrom
// and angles in degrees.
func latticeParams(box [3]r3.Vec) (a, b, c, alpha, beta, gamma float64) {
	a = r3.Norm(box[0])
	b = r3.Norm(box[1])
	c = r3.Norm(box[2])
	alpha = vecAngle(box[1], box[2])
	beta = vecAngle(box[0], box[2])
	gamma = vecAngle(box[0], box[1])
	return a, b, c, alpha, beta, gamma
}

func vecAngle(v, w r3.Vec) float64 {
	cos := r3.Cos(v, w)
	//guard against rounding pushing the cosine out of [-1,1]
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

func (pw *pdbWriter) atoms(s *Structure) error {
	idx := 0
	for _, chain := range s.Chains() {
		chainID := pdbChainID(chain.ID)
		for _, res := range chain.Residues() {
			record := "HETATM"
			if res.Category == Standard && IsStandardResidue(res.Name) {
				record = "ATOM  "
			}
			for _, at := range res.Atoms() {
				pw.idxSerial[idx] = pw.serial
				err := pw.printf("%s%5d %s %-3s %s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
					record, pw.serial, pdbAtomName(at.Name), res.Name, chainID, res.ID,
					at.Pos.X, at.Pos.Y, at.Pos.Z, 1.0, 0.0, at.Element.Symbol())
				if err != nil {
					return err
				}
				pw.serial++
				idx++
			}
		}
		if last := lastStandardResidue(chain); last != nil {
			err := pw.printf("TER   %5d      %-3s %s%4d\n",
				pw.serial, last.Name, chainID, last.ID)
			if err != nil {
				return err
			}
			pw.serial++
		}
	}
	return nil
}

func lastStandardResidue(chain *Chain) *Residue {
	residues := chain.Residues()
	for i := len(residues) - 1; i >= 0; i-- {
		if residues[i].Category == Standard {
			return residues[i]
		}
	}
	return nil
}

// conects writes one CONECT record per bond, referencing the serials
// assigned while writing the atoms.
func (pw *pdbWriter) conects(t *Topology) error {
	for _, b := range t.Bonds() {
		err := pw.printf("CONECT%5d%5d\n", pw.idxSerial[b.A1], pw.idxSerial[b.A2])
		if err != nil {
			return err
		}
	}
	return nil
}

func (pw *pdbWriter) end() error {
	return pw.printf("END\n")
}

// pdbAtomName formats an atom name into the 4-column PDB name field: names
// of four or more characters fill the field, shorter ones are indented by
// one.
func pdbAtomName(name string) string {
	if len(name) >= 4 {
		return name[:4]
	}
	return fmt.Sprintf(" %-3s", name)
}

// pdbChainID reduces a chain id to the single column the format allows.
func pdbChainID(id string) string {
	if id == "" {
		return " "
	}
	return id[:1]
}
