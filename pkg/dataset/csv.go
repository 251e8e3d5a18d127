package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
)

// LoadCSV reads a dataset from a CSV file with the same shape as the Iris
// table: a header row naming the columns, then one record per line with the
// numeric attributes first and the categorical label last. Empty, "NA" and
// "NaN" cells are loaded as NaN so a cleaning pass can deal with them.
// A missing or unreadable file reports ErrDataUnavailable.
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer file.Close()
	return parse(csv.NewReader(bufio.NewReader(file)), true)
}

// parse decodes header + records. With allowMissing, blank numeric cells
// become NaN; otherwise any unparsable cell fails the whole load.
func parse(reader *csv.Reader, allowMissing bool) (*Dataset, error) {
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: no data rows", ErrDataUnavailable)
	}

	header := records[0]
	labelCol := len(header) - 1
	if labelCol < 1 {
		return nil, fmt.Errorf("%w: need at least one attribute column and a label column", ErrDataUnavailable)
	}

	ds := &Dataset{
		FeatureNames: append([]string(nil), header[:labelCol]...),
		Features:     make([][]float64, 0, len(records)-1),
		Species:      make([]string, 0, len(records)-1),
	}

	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrDataUnavailable, i+1, len(rec), len(header))
		}
		row := make([]float64, labelCol)
		for j := 0; j < labelCol; j++ {
			cell := rec[j]
			if isMissing(cell) {
				if !allowMissing {
					return nil, fmt.Errorf("%w: row %d column %q is empty",
						ErrDataUnavailable, i+1, header[j])
				}
				row[j] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %q: %v",
					ErrDataUnavailable, i+1, header[j], err)
			}
			row[j] = v
		}
		ds.Features = append(ds.Features, row)
		ds.Species = append(ds.Species, rec[labelCol])
	}

	if err := ds.validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// isMissing recognises the usual placeholders for an absent value.
func isMissing(cell string) bool {
	return cell == "" || cell == "NA" || cell == "NaN"
}
