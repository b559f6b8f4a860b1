/*
 * doc.go, part of mol.
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

/*Package mol is the main package of the mol library. It provides atom,
residue, chain and structure types, a template database of the standard
amino acids and nucleotides, and a topology builder that infers covalent
bonds from them.


	**mol Capabilities**

    Builds hierarchical structures (chain > residue > atom) with
	duplicate-id checking, and flattens them to a stable atom order
	for indexing.

    Infers covalent topology: intra-residue bonds from templates,
	hydrogen attachment, terminal-cap bonds, geometry-gated peptide
	and phosphodiester links, and disulfide bridges.

    Maintains a built-in template registry for the 20 standard amino
	acids (plus protonation variants), the common nucleotides and
	water; user templates cover hetero residues.

    Cleans structures (water, ions, hydrogens, hetero groups, or
	arbitrary name sets) and prunes emptied chains.

    Translates and rotates whole structures, including any periodic
	box vectors, and centers them on the geometric center or on the
	center of mass.

    Writes PDB and mmCIF files, with bond records and optional gzip
	compression.

The subpackage grid holds the uniform spatial hash grid used to
accelerate the distance searches; the subpackage molplot plots bond
length distributions.

Errors implement the Error interface of this package, which decorates
errors with the call stack on their way up. Functions panic only on
fundamental misuse, such as a non-positive grid cell size; everything
recoverable comes back as an error.
*/
package mol
