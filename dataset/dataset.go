/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package dataset loads CSV health datasets and computes the
// descriptive statistics behind the explore and visualize pages.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Column holds one parsed CSV column. Cells carries the raw values
// with empty string meaning missing. Values is the aligned float
// parse for numeric columns, NaN at missing cells, and nil for
// categorical columns.
type Column struct {
	Name    string
	Numeric bool
	Cells   []string
	Values  []float64
}

// Dataset is a loaded CSV table.
type Dataset struct {
	Columns []Column
	Rows    int
}

// Load parses CSV data from a reader. The first record is the
// header. Columns with an empty header name are dropped.
func Load(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &Dataset{Rows: len(records)}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		col := Column{Name: name, Cells: make([]string, len(records))}
		for j, rec := range records {
			col.Cells[j] = strings.TrimSpace(rec[i])
		}
		typeColumn(&col)
		ds.Columns = append(ds.Columns, col)
	}

	if len(ds.Columns) == 0 {
		return nil, ErrEmptyDataset
	}

	return ds, nil
}

// LoadFile loads a CSV dataset from disk.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// typeColumn marks a column numeric when every present cell parses
// as a float and at least one cell is present.
func typeColumn(col *Column) {
	values := make([]float64, len(col.Cells))
	present := 0
	for i, cell := range col.Cells {
		if cell == "" {
			values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return
		}
		values[i] = v
		present++
	}

	if present == 0 {
		return
	}

	col.Numeric = true
	col.Values = values
}

// Column returns the named column.
func (d *Dataset) Column(name string) (*Column, bool) {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i], true
		}
	}
	return nil, false
}

// ColumnNames returns all column names in declared order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// NumericColumns returns the names of numeric columns in declared
// order.
func (d *Dataset) NumericColumns() []string {
	var names []string
	for _, c := range d.Columns {
		if c.Numeric {
			names = append(names, c.Name)
		}
	}
	return names
}

// CategoricalColumns returns the names of non-numeric columns in
// declared order.
func (d *Dataset) CategoricalColumns() []string {
	var names []string
	for _, c := range d.Columns {
		if !c.Numeric {
			names = append(names, c.Name)
		}
	}
	return names
}

// Preview returns up to n data rows as strings, in column order.
func (d *Dataset) Preview(n int) [][]string {
	if n > d.Rows {
		n = d.Rows
	}
	if n < 0 {
		n = 0
	}

	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(d.Columns))
		for j, c := range d.Columns {
			row[j] = c.Cells[i]
		}
		rows[i] = row
	}
	return rows
}

// MissingCount returns the number of missing cells in the column.
func (c *Column) MissingCount() int {
	count := 0
	for _, cell := range c.Cells {
		if cell == "" {
			count++
		}
	}
	return count
}

// present returns the non-missing numeric values of the column.
func (c *Column) present() []float64 {
	var out []float64
	for _, v := range c.Values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// MissingColumn reports missing cells for one column.
type MissingColumn struct {
	Name    string
	Count   int
	Percent float64
}

// MissingValues lists columns with missing cells, most affected
// first.
func (d *Dataset) MissingValues() []MissingColumn {
	var out []MissingColumn
	for _, c := range d.Columns {
		count := c.MissingCount()
		if count == 0 {
			continue
		}
		out = append(out, MissingColumn{
			Name:    c.Name,
			Count:   count,
			Percent: float64(count) / float64(d.Rows) * 100,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
