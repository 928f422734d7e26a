/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dataset

import (
	"math"
	"sort"
)

// CorrelationPair is a correlated column pair.
type CorrelationPair struct {
	X string
	Y string
	R float64
}

// CorrelationMatrix computes pairwise Pearson correlations over the
// numeric columns. It returns the column names and a square matrix
// in the same order.
func (d *Dataset) CorrelationMatrix() ([]string, [][]float64, error) {
	names := d.NumericColumns()
	if len(names) < 2 {
		return nil, nil, ErrTooFewNumericColumns
	}

	cols := make([]*Column, len(names))
	for i, name := range names {
		c, _ := d.Column(name)
		cols[i] = c
	}

	matrix := make([][]float64, len(names))
	for i := range matrix {
		matrix[i] = make([]float64, len(names))
		matrix[i][i] = 1
	}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			r := Pearson(cols[i].Values, cols[j].Values)
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}

	return names, matrix, nil
}

// StrongPairs lists column pairs whose correlation magnitude exceeds
// the threshold, strongest first.
func (d *Dataset) StrongPairs(threshold float64) []CorrelationPair {
	names, matrix, err := d.CorrelationMatrix()
	if err != nil {
		return nil
	}

	var out []CorrelationPair
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if math.Abs(matrix[i][j]) > threshold {
				out = append(out, CorrelationPair{X: names[i], Y: names[j], R: matrix[i][j]})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].R) > math.Abs(out[j].R)
	})
	return out
}

// Pearson computes the correlation over pairwise present values.
// NaN entries on either side drop the pair. Returns NaN when fewer
// than two pairs remain or a side has zero spread.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}

	var xs, ys []float64
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}

	mx := meanOf(xs)
	my := meanOf(ys)

	var cov, vx, vy float64
	for i := range xs {
		dx := xs[i] - mx
		dy := ys[i] - my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(vx*vy)
}

// ScatterData holds paired points with their least-squares fit.
type ScatterData struct {
	X           []float64
	Y           []float64
	Slope       float64
	Intercept   float64
	Correlation float64
}

// Scatter pairs two numeric columns, dropping rows where either side
// is missing, and fits a least-squares trend line.
func (d *Dataset) Scatter(xName, yName string) (*ScatterData, error) {
	xCol, ok := d.Column(xName)
	if !ok {
		return nil, ErrColumnNotFound
	}
	yCol, ok := d.Column(yName)
	if !ok {
		return nil, ErrColumnNotFound
	}
	if !xCol.Numeric || !yCol.Numeric {
		return nil, ErrColumnNotNumeric
	}

	sd := &ScatterData{}
	for i := 0; i < len(xCol.Values) && i < len(yCol.Values); i++ {
		if math.IsNaN(xCol.Values[i]) || math.IsNaN(yCol.Values[i]) {
			continue
		}
		sd.X = append(sd.X, xCol.Values[i])
		sd.Y = append(sd.Y, yCol.Values[i])
	}
	if len(sd.X) < 2 {
		return nil, ErrNoValues
	}

	mx := meanOf(sd.X)
	my := meanOf(sd.Y)

	var cov, vx float64
	for i := range sd.X {
		dx := sd.X[i] - mx
		cov += dx * (sd.Y[i] - my)
		vx += dx * dx
	}
	if vx != 0 {
		sd.Slope = cov / vx
		sd.Intercept = my - sd.Slope*mx
	}
	sd.Correlation = Pearson(sd.X, sd.Y)

	return sd, nil
}
