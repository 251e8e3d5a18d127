package dataset

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"strings"
)

// irisCSV is the canonical 150-record Iris table (Fisher, 1936), bundled so
// the tool needs no external data provider.
//
//go:embed iris.csv
var irisCSV string

const (
	irisRecords    = 150
	irisPerSpecies = 50
)

// Load returns the bundled Iris dataset: 150 records, four measurements in cm
// plus a species label, 50 records per species. The returned dataset is fully
// populated; any defect in the bundled table surfaces as ErrDataUnavailable.
func Load() (*Dataset, error) {
	ds, err := parse(csv.NewReader(strings.NewReader(irisCSV)), false)
	if err != nil {
		return nil, err
	}
	if ds.Len() != irisRecords {
		return nil, fmt.Errorf("%w: expected %d records, got %d", ErrDataUnavailable, irisRecords, ds.Len())
	}
	for species, n := range ds.CountBySpecies() {
		if n != irisPerSpecies {
			return nil, fmt.Errorf("%w: species %q has %d records, want %d",
				ErrDataUnavailable, species, n, irisPerSpecies)
		}
	}
	return ds, nil
}
