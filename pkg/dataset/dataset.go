package dataset

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// ErrDataUnavailable signals that the dataset source could not be obtained
// or parsed. The pipeline aborts when it sees this error.
var ErrDataUnavailable = errors.New("dataset unavailable")

// Column describes one column of a dataset.
type Column struct {
	Name string
	Kind string // "float" or "category"
}

// Schema describes the structure of a dataset.
type Schema struct {
	Columns []Column
}

// Dataset is an immutable table of flower measurements. Features is row-major:
// Features[i][j] is the j-th numeric attribute of record i. Species holds the
// categorical label of each record.
type Dataset struct {
	FeatureNames []string
	Features     [][]float64
	Species      []string
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.Features) }

// NumFeatures returns the number of numeric attributes.
func (d *Dataset) NumFeatures() int { return len(d.FeatureNames) }

// Schema reports the column layout: all numeric attributes followed by the
// species label.
func (d *Dataset) Schema() Schema {
	cols := make([]Column, 0, len(d.FeatureNames)+1)
	for _, name := range d.FeatureNames {
		cols = append(cols, Column{Name: name, Kind: "float"})
	}
	cols = append(cols, Column{Name: "species", Kind: "category"})
	return Schema{Columns: cols}
}

// Column extracts attribute j as a fresh slice.
func (d *Dataset) Column(j int) []float64 {
	col := make([]float64, len(d.Features))
	for i, row := range d.Features {
		col[i] = row[j]
	}
	return col
}

// CountBySpecies counts records per species label.
func (d *Dataset) CountBySpecies() map[string]int {
	counts := make(map[string]int)
	for _, s := range d.Species {
		counts[s]++
	}
	return counts
}

// SpeciesSet returns the distinct species labels in sorted order.
func (d *Dataset) SpeciesSet() []string {
	set := d.CountBySpecies()
	names := make([]string, 0, len(set))
	for s := range set {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}

// Head formats the first n records (fewer if the dataset is smaller) as rows
// of strings, one cell per column, for preview tables.
func (d *Dataset) Head(n int) [][]string {
	if n > d.Len() {
		n = d.Len()
	}
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, 0, d.NumFeatures()+1)
		for _, v := range d.Features[i] {
			if math.IsNaN(v) {
				row = append(row, "NaN")
			} else {
				row = append(row, strconv.FormatFloat(v, 'f', 1, 64))
			}
		}
		row = append(row, d.Species[i])
		rows[i] = row
	}
	return rows
}

// validate checks the structural invariants every loaded dataset must hold.
func (d *Dataset) validate() error {
	if d.Len() == 0 {
		return fmt.Errorf("%w: no records", ErrDataUnavailable)
	}
	if len(d.Species) != d.Len() {
		return fmt.Errorf("%w: %d labels for %d records", ErrDataUnavailable, len(d.Species), d.Len())
	}
	for i, row := range d.Features {
		if len(row) != d.NumFeatures() {
			return fmt.Errorf("%w: record %d has %d attributes, want %d",
				ErrDataUnavailable, i, len(row), d.NumFeatures())
		}
	}
	return nil
}
