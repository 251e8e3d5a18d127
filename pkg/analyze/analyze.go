package analyze

import (
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"irislab/pkg/dataset"
	"irislab/pkg/stats"
)

// Summary holds the descriptive statistics of one numeric attribute.
type Summary struct {
	Attribute string
	Count     int
	Mean      float64
	Std       float64
	Min       float64
	Q25       float64
	Median    float64
	Q75       float64
	Max       float64
}

// Describe computes a Summary for every numeric attribute. The result is a
// pure function of the dataset: recomputing it yields identical values.
func Describe(ds *dataset.Dataset) []Summary {
	summaries := make([]Summary, ds.NumFeatures())
	for j, name := range ds.FeatureNames {
		col := ds.Column(j)
		min, max := stats.MinMax(col)
		summaries[j] = Summary{
			Attribute: name,
			Count:     len(col),
			Mean:      stats.Mean(col),
			Std:       stats.Std(col),
			Min:       min,
			Q25:       stats.Percentile(col, 25),
			Median:    stats.Percentile(col, 50),
			Q75:       stats.Percentile(col, 75),
			Max:       max,
		}
	}
	return summaries
}

// GroupMeans is the per-species arithmetic mean of each numeric attribute.
// Species are sorted; Means[s][j] pairs Species[s] with Attributes[j].
type GroupMeans struct {
	Species    []string
	Attributes []string
	Means      [][]float64
}

// MeansBySpecies partitions the dataset by species label and averages each
// attribute over every partition.
func MeansBySpecies(ds *dataset.Dataset) *GroupMeans {
	groups := make(map[string][][]float64)
	for i, s := range ds.Species {
		groups[s] = append(groups[s], ds.Features[i])
	}

	species := make([]string, 0, len(groups))
	for s := range groups {
		species = append(species, s)
	}
	sort.Strings(species)

	means := make([][]float64, len(species))
	for si, s := range species {
		rows := groups[s]
		m := make([]float64, ds.NumFeatures())
		for _, row := range rows {
			for j, v := range row {
				m[j] += v
			}
		}
		for j := range m {
			m[j] /= float64(len(rows))
		}
		means[si] = m
	}

	return &GroupMeans{
		Species:    species,
		Attributes: append([]string(nil), ds.FeatureNames...),
		Means:      means,
	}
}

// Correlations computes the pairwise Pearson correlation matrix over the four
// numeric attributes of the full dataset. The result is symmetric with a unit
// diagonal.
func Correlations(ds *dataset.Dataset) *mat.SymDense {
	n, p := ds.Len(), ds.NumFeatures()
	flat := make([]float64, 0, n*p)
	for _, row := range ds.Features {
		flat = append(flat, row...)
	}
	corr := mat.NewSymDense(p, nil)
	stat.CorrelationMatrix(corr, mat.NewDense(n, p, flat), nil)
	return corr
}
