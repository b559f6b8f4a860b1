/*
 * molplot.go, part of mol.
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

//Package molplot plots simple geometric summaries of topologies. It is
//kept separate from the main package so programs that never plot do not
//pull in the plotting stack.
package molplot

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/structbio/mol"
)

// BondLengths returns the length, in the structure's distance unit, of
// every bond in t, in bond-list order.
func BondLengths(t *mol.Topology) []float64 {
	atoms := t.Structure().Atoms()
	ret := make([]float64, 0, t.BondCount())
	for _, b := range t.Bonds() {
		ret = append(ret, atoms[b.A1].Distance(atoms[b.A2]))
	}
	return ret
}

// BondLengthStats returns the mean and standard deviation of the bond
// lengths in t. An empty bond list yields an error, as no statistic is
// defined over it.
func BondLengthStats(t *mol.Topology) (mean, stdev float64, err error) {
	lengths := BondLengths(t)
	if len(lengths) == 0 {
		return 0, 0, fmt.Errorf("BondLengthStats: topology has no bonds")
	}
	mean, stdev = stat.MeanStdDev(lengths, nil)
	return mean, stdev, nil
}

func basicPlot(title, xlabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Count"
	p.Add(plotter.NewGrid())
	return p
}

// BondLengthHistogram plots a histogram of the bond lengths in t with the
// given number of bins, and saves it as a PNG under plotname (the ".png"
// extension is appended).
func BondLengthHistogram(t *mol.Topology, bins int, title, plotname string) error {
	lengths := BondLengths(t)
	if len(lengths) == 0 {
		return fmt.Errorf("BondLengthHistogram: topology has no bonds")
	}
	if bins <= 0 {
		return fmt.Errorf("BondLengthHistogram: need a positive bin count, got %d", bins)
	}
	p := basicPlot(title, "Bond length")
	h, err := plotter.NewHist(plotter.Values(lengths), bins)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(5*vg.Inch, 4*vg.Inch, fmt.Sprintf("%s.png", plotname))
}

// DistanceScatter plots the pairwise distances among the selected flat
// atom indices of s, pair ordinal against distance, and saves the scatter
// as a PNG under plotname (the ".png" extension is appended). At least two
// indices are needed for a pair to exist.
func DistanceScatter(s *mol.Structure, selection []int, title, plotname string) error {
	if len(selection) < 2 {
		return fmt.Errorf("DistanceScatter: need at least 2 atoms, got %d", len(selection))
	}
	atoms := s.Atoms()
	for _, i := range selection {
		if i < 0 || i >= len(atoms) {
			return fmt.Errorf("DistanceScatter: index %d out of range for %d atoms", i, len(atoms))
		}
	}
	var pts plotter.XYs
	for i := 0; i < len(selection); i++ {
		for j := i + 1; j < len(selection); j++ {
			pts = append(pts, plotter.XY{
				X: float64(len(pts)),
				Y: atoms[selection[i]].Distance(atoms[selection[j]]),
			})
		}
	}
	p := basicPlot(title, "Pair")
	p.Y.Label.Text = "Distance"
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(sc)
	return p.Save(5*vg.Inch, 4*vg.Inch, fmt.Sprintf("%s.png", plotname))
}
