/*
 * templatedb.go, part of mol.
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

import "sync"

// Registry is a read-only lookup from residue name to template. The
// built-in one (DefaultRegistry) covers the standard amino acids and
// nucleotides; tests and special applications can construct and inject
// their own.
type Registry struct {
	templates map[string]*Template
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*Template)}
}

// Add registers a template under its name, replacing any previous entry.
// A Registry must not be mutated once it is visible to concurrent readers.
func (R *Registry) Add(t *Template) {
	R.templates[t.Name] = t
}

// Get returns the template for name, or nil if the registry has none.
func (R *Registry) Get(name string) *Template {
	return R.templates[name]
}

// Len returns the number of registered templates.
func (R *Registry) Len() int {
	return len(R.templates)
}

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// DefaultRegistry returns the process-wide built-in template registry. It
// is built on first use and read-only afterwards, so it is safe to share
// between concurrent topology builds.
func DefaultRegistry() *Registry {
	builtinOnce.Do(func() {
		builtin = NewRegistry()
		for _, t := range aminoAcidTemplates() {
			builtin.Add(t)
		}
		for _, t := range nucleotideTemplates() {
			builtin.Add(t)
		}
		builtin.Add(waterTemplate())
	})
	return builtin
}

// proteinResidues holds all standard amino-acid names the library
// recognizes, including Amber-style protonation and cystine variants.
var proteinResidues = map[string]bool{
	"ALA": true, "ARG": true, "ASN": true, "ASP": true, "CYS": true,
	"GLN": true, "GLU": true, "GLY": true, "HIS": true, "ILE": true,
	"LEU": true, "LYS": true, "MET": true, "PHE": true, "PRO": true,
	"SER": true, "THR": true, "TRP": true, "TYR": true, "VAL": true,
	"CYX": true, "CYM": true, "HID": true, "HIE": true, "HIP": true,
}

// nucleicResidues holds the standard RNA and DNA residue names.
var nucleicResidues = map[string]bool{
	"A": true, "C": true, "G": true, "U": true,
	"DA": true, "DC": true, "DG": true, "DT": true,
}

// IsProteinResidue reports whether name is a standard amino acid.
func IsProteinResidue(name string) bool {
	return proteinResidues[name]
}

// IsNucleicResidue reports whether name is a standard nucleotide.
func IsNucleicResidue(name string) bool {
	return nucleicResidues[name]
}

// IsStandardResidue reports whether name belongs to either standard set.
func IsStandardResidue(name string) bool {
	return proteinResidues[name] || nucleicResidues[name]
}

// IsWaterResidue reports whether name is a water residue name.
func IsWaterResidue(name string) bool {
	return name == "HOH" || name == "WAT"
}
