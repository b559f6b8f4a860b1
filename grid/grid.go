/*
 * grid.go, part of mol.
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

package grid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// sentinel marks the end of a cell's linked list.
const sentinel = ^uint32(0)

// padding added to the bounding box so items sitting exactly on the
// maximum face still fall inside the last cell.
const epsilon = 1e-6

// Item is a payload together with the position it is indexed under.
type Item[T any] struct {
	Pos     r3.Vec
	Payload T
}

// Grid bins items into uniform cubic cells for fixed-radius neighbor
// queries: construction is O(N) and a query touches only the cells
// overlapping the search sphere, so the average cost per query is constant
// for well-distributed items. A Grid is immutable after construction and
// safe for concurrent readers.
//
// Each cell holds the index of its first item and every item holds the
// index of the next one in its cell, so buckets cost no allocation beyond
// the two flat slices.
type Grid[T any] struct {
	cellSize float64
	origin   r3.Vec
	nx       int
	ny       int
	nz       int
	head     []uint32
	next     []uint32
	items    []Item[T]
}

// New builds a grid enclosing all the given items, with cubic cells of
// side cellSize. The bounding box is derived from the items and padded by
// a small epsilon. An empty input yields a degenerate grid that answers
// every query with no results.
//
// New panics if cellSize is not positive; there is no sensible recovery
// from that, the caller is simply wrong.
func New[T any](items []Item[T], cellSize float64) *Grid[T] {
	if cellSize <= 0 {
		panic("grid: cell size must be positive")
	}
	g := &Grid[T]{cellSize: cellSize}
	if len(items) == 0 {
		return g
	}

	min := items[0].Pos
	max := items[0].Pos
	for _, it := range items[1:] {
		min.X = math.Min(min.X, it.Pos.X)
		min.Y = math.Min(min.Y, it.Pos.Y)
		min.Z = math.Min(min.Z, it.Pos.Z)
		max.X = math.Max(max.X, it.Pos.X)
		max.Y = math.Max(max.Y, it.Pos.Y)
		max.Z = math.Max(max.Z, it.Pos.Z)
	}
	max = r3.Add(max, r3.Vec{X: epsilon, Y: epsilon, Z: epsilon})

	extent := r3.Sub(max, min)
	g.origin = min
	g.nx = int(math.Ceil(extent.X / cellSize))
	g.ny = int(math.Ceil(extent.Y / cellSize))
	g.nz = int(math.Ceil(extent.Z / cellSize))

	g.head = make([]uint32, g.nx*g.ny*g.nz)
	for i := range g.head {
		g.head[i] = sentinel
	}
	g.next = make([]uint32, len(items))
	g.items = make([]Item[T], len(items))

	for i, it := range items {
		g.items[i] = it
		cell := g.cellIndex(it.Pos)
		g.next[i] = g.head[cell]
		g.head[cell] = uint32(i)
	}
	return g
}

// Len returns the number of stored items.
func (g *Grid[T]) Len() int {
	return len(g.items)
}

// CellSize returns the side length of the grid's cells.
func (g *Grid[T]) CellSize() float64 {
	return g.cellSize
}

// cellIndex maps a position inside the (padded) bounding box to its flat
// cell index. Positions of stored items are always inside by construction.
func (g *Grid[T]) cellIndex(p r3.Vec) int {
	x, y, z := g.cellCoords(p)
	return x + y*g.nx + z*g.nx*g.ny
}

// cellCoords returns per-axis cell coordinates clamped to the grid, so
// query boxes sticking out of the bounding box fold onto the border cells.
func (g *Grid[T]) cellCoords(p r3.Vec) (int, int, int) {
	off := r3.Sub(p, g.origin)
	x := clamp(int(math.Floor(off.X/g.cellSize)), g.nx-1)
	y := clamp(int(math.Floor(off.Y/g.cellSize)), g.ny-1)
	z := clamp(int(math.Floor(off.Z/g.cellSize)), g.nz-1)
	return x, y, z
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// Neighbors returns a fresh iterator over every item stored in a cell
// intersecting the box [center-radius, center+radius]. This candidate set
// is a superset of the true neighbors; call Exact on the result for a hard
// sphere test.
func (g *Grid[T]) Neighbors(center r3.Vec, radius float64) *Neighborhood[T] {
	n := &Neighborhood[T]{
		g:       g,
		center:  center,
		radius2: radius * radius,
		cur:     sentinel,
	}
	if len(g.items) == 0 {
		n.maxZ = -1 //exhausted before the first Next
		return n
	}
	r := r3.Vec{X: radius, Y: radius, Z: radius}
	n.minX, n.minY, n.minZ = g.cellCoords(r3.Sub(center, r))
	n.maxX, n.maxY, n.maxZ = g.cellCoords(r3.Add(center, r))
	n.curX, n.curY, n.curZ = n.minX, n.minY, n.minZ
	return n
}

// HasNeighbor reports whether any candidate near point satisfies pred,
// short-circuiting on the first hit. The predicate sees cell-granular
// candidates, not exact neighbors; filter on distance inside pred if exact
// containment matters.
func (g *Grid[T]) HasNeighbor(point r3.Vec, radius float64, pred func(T) bool) bool {
	n := g.Neighbors(point, radius)
	for it, ok := n.Next(); ok; it, ok = n.Next() {
		if pred(it) {
			return true
		}
	}
	return false
}

// Neighborhood walks the cells of one query and their linked lists. Each
// call to Grid.Neighbors starts a new, independent traversal.
type Neighborhood[T any] struct {
	g                      *Grid[T]
	minX, maxX, minY, maxY int
	minZ, maxZ             int
	curX, curY, curZ       int
	cur                    uint32
	center                 r3.Vec
	radius2                float64
}

// next advances to the next stored item in the candidate cells, returning
// its index into the grid's storage.
func (n *Neighborhood[T]) next() (int, bool) {
	for {
		if n.cur != sentinel {
			i := n.cur
			n.cur = n.g.next[i]
			return int(i), true
		}
		if n.curX > n.maxX {
			n.curX = n.minX
			n.curY++
		}
		if n.curY > n.maxY {
			n.curY = n.minY
			n.curZ++
		}
		if n.curZ > n.maxZ {
			return 0, false
		}
		cell := n.curX + n.curY*n.g.nx + n.curZ*n.g.nx*n.g.ny
		n.curX++
		n.cur = n.g.head[cell]
	}
}

// Next returns the next candidate payload, and false when the candidate
// set is exhausted.
func (n *Neighborhood[T]) Next() (T, bool) {
	i, ok := n.next()
	if !ok {
		var zero T
		return zero, false
	}
	return n.g.items[i].Payload, true
}

// Exact wraps the remaining candidates in a filter that only passes items
// whose true distance to the query center is within the radius. The
// comparison uses squared distances.
func (n *Neighborhood[T]) Exact() *ExactNeighborhood[T] {
	return &ExactNeighborhood[T]{inner: n}
}

// ExactNeighborhood yields only items strictly within the query radius.
type ExactNeighborhood[T any] struct {
	inner *Neighborhood[T]
}

// Next returns the next in-radius payload, and false when exhausted.
func (e *ExactNeighborhood[T]) Next() (T, bool) {
	for {
		i, ok := e.inner.next()
		if !ok {
			var zero T
			return zero, false
		}
		d2 := r3.Norm2(r3.Sub(e.inner.g.items[i].Pos, e.inner.center))
		if d2 <= e.inner.radius2 {
			return e.inner.g.items[i].Payload, true
		}
	}
}
