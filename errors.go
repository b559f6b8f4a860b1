/*
 * errors.go, part of mol.
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

import "fmt"

// Error is the interface implemented by every error type in this library.
// The Decorate method allows adding information when an error is passed up
// the call stack, without changing its type or wrapping it. Each call returns
// the current "decoration" slice; passing an empty string only queries it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// errDecorate calls Decorate on err if it is a mol Error, and returns err
// unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

// CError is the general-purpose error for conditions that don't carry
// structured data of their own.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// MissingInternalTemplateError reports that a Standard-category residue has
// no template in the built-in registry. The structure is likely mislabeled;
// the residue should probably be Hetero with a user-supplied template.
type MissingInternalTemplateError struct {
	ResName string
	deco    []string
}

func (err *MissingInternalTemplateError) Error() string {
	return fmt.Sprintf("mol: no built-in template for standard residue %q", err.ResName)
}

func (err *MissingInternalTemplateError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// MissingUserTemplateError reports that a Hetero-category residue has no
// matching template among those registered on the TopologyBuilder.
type MissingUserTemplateError struct {
	ResName string
	deco    []string
}

func (err *MissingUserTemplateError) Error() string {
	return fmt.Sprintf("mol: no user template registered for hetero residue %q", err.ResName)
}

func (err *MissingUserTemplateError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// AtomMissingError reports a template bond that references an atom not
// present in the actual residue, when that atom is not an optional terminal
// hydrogen.
type AtomMissingError struct {
	ResName  string
	ResID    int
	AtomName string
	deco     []string
}

func (err *AtomMissingError) Error() string {
	return fmt.Sprintf("mol: residue %s %d lacks atom %q required by its template",
		err.ResName, err.ResID, err.AtomName)
}

func (err *AtomMissingError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// DuplicateError reports an attempt to add an atom or residue under an
// identifier that is already taken within its container.
type DuplicateError struct {
	Container string //"residue" or "chain"
	Owner     string
	Name      string
	deco      []string
}

func (err *DuplicateError) Error() string {
	return fmt.Sprintf("mol: %s %q already contains %q", err.Container, err.Owner, err.Name)
}

func (err *DuplicateError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
