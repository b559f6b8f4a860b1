/*
 * grid_test.go, part of mol.
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
	"math/rand"
	"sort"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func randomItems(n int, span float64, src *rand.Rand) []Item[int] {
	items := make([]Item[int], n)
	for i := range items {
		items[i] = Item[int]{
			Pos: r3.Vec{
				X: src.Float64() * span,
				Y: src.Float64() * span,
				Z: src.Float64() * span,
			},
			Payload: i,
		}
	}
	return items
}

// bruteNeighbors is the reference answer: a linear scan over all items.
func bruteNeighbors(items []Item[int], center r3.Vec, radius float64) []int {
	var ret []int
	for _, it := range items {
		if r3.Norm2(r3.Sub(it.Pos, center)) <= radius*radius {
			ret = append(ret, it.Payload)
		}
	}
	return ret
}

func collect[T any](n interface{ Next() (T, bool) }) []T {
	var ret []T
	for v, ok := n.Next(); ok; v, ok = n.Next() {
		ret = append(ret, v)
	}
	return ret
}

//TestExactMatchesBruteForce checks, over many random queries, that the
//exact iterator returns precisely the items a linear scan finds.
func TestExactMatchesBruteForce(Te *testing.T) {
	src := rand.New(rand.NewSource(42))
	items := randomItems(500, 30, src)
	for _, radius := range []float64{0.5, 2.0, 5.0, 40.0} {
		g := New(items, radius)
		for q := 0; q < 50; q++ {
			center := r3.Vec{
				X: src.Float64()*40 - 5,
				Y: src.Float64()*40 - 5,
				Z: src.Float64()*40 - 5,
			}
			got := collect[int](g.Neighbors(center, radius).Exact())
			want := bruteNeighbors(items, center, radius)
			sort.Ints(got)
			sort.Ints(want)
			if len(got) != len(want) {
				Te.Fatalf("radius %v query %d: got %d neighbors, want %d", radius, q, len(got), len(want))
			}
			for i := range got {
				if got[i] != want[i] {
					Te.Fatalf("radius %v query %d: neighbor sets differ at %d: %d vs %d", radius, q, i, got[i], want[i])
				}
			}
		}
	}
}

//TestCandidatesAreSuperset checks that the raw candidate set always
//contains every true neighbor, without requiring exactness.
func TestCandidatesAreSuperset(Te *testing.T) {
	src := rand.New(rand.NewSource(7))
	items := randomItems(200, 20, src)
	g := New(items, 3.0)
	for q := 0; q < 30; q++ {
		center := r3.Vec{X: src.Float64() * 20, Y: src.Float64() * 20, Z: src.Float64() * 20}
		candidates := make(map[int]bool)
		for _, c := range collect[int](g.Neighbors(center, 3.0)) {
			candidates[c] = true
		}
		for _, w := range bruteNeighbors(items, center, 3.0) {
			if !candidates[w] {
				Te.Errorf("query %d: true neighbor %d missing from candidate set", q, w)
			}
		}
	}
}

func TestEmptyGrid(Te *testing.T) {
	g := New[string](nil, 1.0)
	if g.Len() != 0 {
		Te.Errorf("empty grid has Len %d", g.Len())
	}
	if _, ok := g.Neighbors(r3.Vec{}, 100).Next(); ok {
		Te.Error("empty grid returned a candidate")
	}
	if _, ok := g.Neighbors(r3.Vec{X: 1}, 5).Exact().Next(); ok {
		Te.Error("empty grid returned an exact neighbor")
	}
	if g.HasNeighbor(r3.Vec{}, 10, func(string) bool { return true }) {
		Te.Error("empty grid HasNeighbor returned true")
	}
}

func TestSingleItem(Te *testing.T) {
	items := []Item[string]{{Pos: r3.Vec{X: 1, Y: 2, Z: 3}, Payload: "only"}}
	g := New(items, 2.5)
	got := collect[string](g.Neighbors(r3.Vec{X: 1, Y: 2, Z: 3}, 0.1).Exact())
	if len(got) != 1 || got[0] != "only" {
		Te.Errorf("self query got %v", got)
	}
	if ns := collect[string](g.Neighbors(r3.Vec{X: 50, Y: 50, Z: 50}, 1).Exact()); len(ns) != 0 {
		Te.Errorf("distant query got %v", ns)
	}
}

//TestBoundaryItem puts an item exactly on the bounding box maximum, which
//must still land inside the last cell.
func TestBoundaryItem(Te *testing.T) {
	items := []Item[int]{
		{Pos: r3.Vec{X: 0, Y: 0, Z: 0}, Payload: 0},
		{Pos: r3.Vec{X: 10, Y: 10, Z: 10}, Payload: 1},
	}
	g := New(items, 1.0)
	got := collect[int](g.Neighbors(r3.Vec{X: 10, Y: 10, Z: 10}, 0.5).Exact())
	if len(got) != 1 || got[0] != 1 {
		Te.Errorf("corner query got %v", got)
	}
}

func TestHasNeighborShortCircuit(Te *testing.T) {
	src := rand.New(rand.NewSource(3))
	items := randomItems(100, 10, src)
	g := New(items, 2.0)
	calls := 0
	found := g.HasNeighbor(items[0].Pos, 2.0, func(int) bool {
		calls++
		return true
	})
	if !found {
		Te.Error("HasNeighbor missed an item at the query point")
	}
	if calls != 1 {
		Te.Errorf("predicate called %d times, want 1", calls)
	}
	if g.HasNeighbor(items[0].Pos, 2.0, func(int) bool { return false }) {
		Te.Error("HasNeighbor found something with an always-false predicate")
	}
}

func TestBadCellSizePanics(Te *testing.T) {
	for _, size := range []float64{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					Te.Errorf("cell size %v did not panic", size)
				}
			}()
			New[int](nil, size)
		}()
	}
}
