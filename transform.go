/*
 * transform.go, part of mol.
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

import "gonum.org/v1/gonum/spatial/r3"

//Rigid-body transformations over a whole structure. Rotations go through
//gonum's quaternion-backed r3.Rotation and are applied to the periodic box
//vectors as well, so the box stays consistent with the coordinates.

// Translate displaces every atom by (x, y, z).
func Translate(s *Structure, x, y, z float64) {
	v := r3.Vec{X: x, Y: y, Z: z}
	for _, at := range s.Atoms() {
		at.Translate(v)
	}
}

// CenterGeometry translates the structure so its geometric center lands on
// target.
func CenterGeometry(s *Structure, target r3.Vec) {
	shift := r3.Sub(target, s.GeometricCenter())
	for _, at := range s.Atoms() {
		at.Translate(shift)
	}
}

// CenterMass translates the structure so its center of mass lands on
// target. It fails if any element has no tabulated mass.
func CenterMass(s *Structure, target r3.Vec) error {
	com, err := s.CenterOfMass()
	if err != nil {
		return errDecorate(err, "CenterMass")
	}
	shift := r3.Sub(target, com)
	for _, at := range s.Atoms() {
		at.Translate(shift)
	}
	return nil
}

// RotateX rotates the structure about the x axis by the given angle in
// radians.
func RotateX(s *Structure, radians float64) {
	applyRotation(s, r3.NewRotation(radians, r3.Vec{X: 1}))
}

// RotateY rotates the structure about the y axis by the given angle in
// radians.
func RotateY(s *Structure, radians float64) {
	applyRotation(s, r3.NewRotation(radians, r3.Vec{Y: 1}))
}

// RotateZ rotates the structure about the z axis by the given angle in
// radians.
func RotateZ(s *Structure, radians float64) {
	applyRotation(s, r3.NewRotation(radians, r3.Vec{Z: 1}))
}

// RotateEuler applies successive rotations about the x, y and z axes, in
// that order.
func RotateEuler(s *Structure, xRad, yRad, zRad float64) {
	applyRotation(s, r3.NewRotation(xRad, r3.Vec{X: 1}))
	applyRotation(s, r3.NewRotation(yRad, r3.Vec{Y: 1}))
	applyRotation(s, r3.NewRotation(zRad, r3.Vec{Z: 1}))
}

func applyRotation(s *Structure, rot r3.Rotation) {
	for _, at := range s.Atoms() {
		at.Pos = rot.Rotate(at.Pos)
	}
	if box, ok := s.Box(); ok {
		s.SetBox(rot.Rotate(box[0]), rot.Rotate(box[1]), rot.Rotate(box[2]))
	}
}
