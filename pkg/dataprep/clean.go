package dataprep

import (
	"math"

	"irislab/pkg/dataset"
	"irislab/pkg/stats"
)

// MissingCensus counts missing values per column, in schema order: NaN for
// numeric attributes, empty string for the species label. The bundled Iris
// table yields an all-zero census; CSV sources may not.
func MissingCensus(ds *dataset.Dataset) map[string]int {
	census := make(map[string]int, ds.NumFeatures()+1)
	for j, name := range ds.FeatureNames {
		n := 0
		for _, row := range ds.Features {
			if math.IsNaN(row[j]) {
				n++
			}
		}
		census[name] = n
	}
	n := 0
	for _, s := range ds.Species {
		if s == "" {
			n++
		}
	}
	census["species"] = n
	return census
}

// TotalMissing sums a census.
func TotalMissing(census map[string]int) int {
	total := 0
	for _, n := range census {
		total += n
	}
	return total
}

// ImputeMean returns a copy of the dataset with every NaN attribute replaced
// by the mean of the remaining values in its column, and the number of cells
// filled. A dataset without gaps is returned unchanged (filled == 0).
func ImputeMean(ds *dataset.Dataset) (*dataset.Dataset, int) {
	means := make([]float64, ds.NumFeatures())
	for j := range ds.FeatureNames {
		present := make([]float64, 0, ds.Len())
		for _, row := range ds.Features {
			if !math.IsNaN(row[j]) {
				present = append(present, row[j])
			}
		}
		means[j] = stats.Mean(present)
	}

	filled := 0
	features := make([][]float64, ds.Len())
	for i, row := range ds.Features {
		out := make([]float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				out[j] = means[j]
				filled++
			} else {
				out[j] = v
			}
		}
		features[i] = out
	}

	return &dataset.Dataset{
		FeatureNames: ds.FeatureNames,
		Features:     features,
		Species:      ds.Species,
	}, filled
}
