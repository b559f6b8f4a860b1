/*
 * elements.go, part of mol.
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

// Element identifies a chemical element. Just common "bio-elements" are
// present; everything else is Unknown.
type Element int

const (
	Unknown Element = iota
	Hydrogen
	Carbon
	Nitrogen
	Oxygen
	Phosphorus
	Sulfur
	Selenium
	Sodium
	Potassium
	Calcium
	Magnesium
	Chlorine
	Fluorine
	Bromine
	Iodine
	Iron
	Zinc
	Copper
	Manganese
	Cobalt
	Chromium
	Silicon
	Beryllium
)

var elementSymbol = map[Element]string{
	Hydrogen:   "H",
	Carbon:     "C",
	Nitrogen:   "N",
	Oxygen:     "O",
	Phosphorus: "P",
	Sulfur:     "S",
	Selenium:   "Se",
	Sodium:     "Na",
	Potassium:  "K",
	Calcium:    "Ca",
	Magnesium:  "Mg",
	Chlorine:   "Cl",
	Fluorine:   "F",
	Bromine:    "Br",
	Iodine:     "I",
	Iron:       "Fe",
	Zinc:       "Zn",
	Copper:     "Cu",
	Manganese:  "Mn",
	Cobalt:     "Co",
	Chromium:   "Cr",
	Silicon:    "Si",
	Beryllium:  "Be",
}

var symbolElement = func() map[string]Element {
	m := make(map[string]Element, len(elementSymbol))
	for k, v := range elementSymbol {
		m[v] = k
	}
	return m
}()

// Symbol returns the display symbol for the element, or "X" for Unknown.
func (E Element) Symbol() string {
	if s, ok := elementSymbol[E]; ok {
		return s
	}
	return "X"
}

func (E Element) String() string { return E.Symbol() }

// ElementFromSymbol returns the Element for a symbol like "C" or "Na".
// Unrecognized symbols yield Unknown.
func ElementFromSymbol(s string) Element {
	return symbolElement[s]
}

// A map for assigning mass to elements.
var elementMass = map[Element]float64{
	Hydrogen:   1.0,
	Carbon:     12.01,
	Oxygen:     16.00,
	Nitrogen:   14.01,
	Phosphorus: 30.97,
	Sulfur:     32.06,
	Selenium:   78.96,
	Potassium:  39.1,
	Calcium:    40.08,
	Magnesium:  24.30,
	Chlorine:   35.45,
	Sodium:     22.99,
	Copper:     63.55,
	Zinc:       65.38,
	Cobalt:     58.93,
	Iron:       55.84,
	Manganese:  54.94,
	Chromium:   51.996,
	Silicon:    28.08,
	Beryllium:  9.012,
	Fluorine:   18.998,
	Bromine:    79.904,
	Iodine:     126.90,
}

// A map for assigning covalent radii to elements.
// Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var elementCovrad = map[Element]float64{
	Hydrogen:   0.31,
	Carbon:     0.76, //the sp3 radius
	Oxygen:     0.66,
	Nitrogen:   0.71,
	Phosphorus: 1.07,
	Sulfur:     1.05,
	Selenium:   1.2,
	Potassium:  2.03,
	Calcium:    1.76,
	Magnesium:  1.41,
	Chlorine:   1.02,
	Sodium:     1.66,
	Copper:     1.32,
	Zinc:       1.22,
	Cobalt:     1.5,  // hs
	Iron:       1.52, //hs
	Manganese:  1.61, //hs
	Chromium:   1.39,
	Silicon:    1.11,
	Beryllium:  0.96,
	Fluorine:   0.57,
	Bromine:    1.2,
	Iodine:     1.39,
}

// Mass returns the atomic mass of the element, or 0 if it is not tabulated.
func (E Element) Mass() float64 { return elementMass[E] }

// CovalentRadius returns the covalent radius of the element in Angstrom,
// or 0 if it is not tabulated.
func (E Element) CovalentRadius() float64 { return elementCovrad[E] }
