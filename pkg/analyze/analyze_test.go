package analyze

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irislab/pkg/dataset"
)

func load(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load()
	require.NoError(t, err)
	return ds
}

func TestDescribe(t *testing.T) {
	ds := load(t)
	summaries := Describe(ds)
	require.Len(t, summaries, 4)

	for _, s := range summaries {
		assert.Equal(t, 150, s.Count)
		assert.Greater(t, s.Std, 0.0)
		assert.LessOrEqual(t, s.Min, s.Q25)
		assert.LessOrEqual(t, s.Q25, s.Median)
		assert.LessOrEqual(t, s.Median, s.Q75)
		assert.LessOrEqual(t, s.Q75, s.Max)
	}

	// Spot checks against the well-known Iris describe() values.
	sepalLength := summaries[0]
	assert.InDelta(t, 5.843, sepalLength.Mean, 1e-3)
	assert.InDelta(t, 0.828, sepalLength.Std, 1e-3)
	assert.InDelta(t, 4.3, sepalLength.Min, 1e-12)
	assert.InDelta(t, 5.8, sepalLength.Median, 1e-12)
	assert.InDelta(t, 7.9, sepalLength.Max, 1e-12)
}

func TestDescribeDeterministic(t *testing.T) {
	ds := load(t)
	assert.Equal(t, Describe(ds), Describe(ds))
}

func TestMeansBySpecies(t *testing.T) {
	ds := load(t)
	gm := MeansBySpecies(ds)

	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, gm.Species)
	assert.Equal(t, ds.FeatureNames, gm.Attributes)
	require.Len(t, gm.Means, 3)

	// Every group mean falls inside the attribute's global range.
	summaries := Describe(ds)
	for s, species := range gm.Species {
		for j := range gm.Attributes {
			v := gm.Means[s][j]
			assert.GreaterOrEqualf(t, v, summaries[j].Min, "%s/%s", species, gm.Attributes[j])
			assert.LessOrEqualf(t, v, summaries[j].Max, "%s/%s", species, gm.Attributes[j])
		}
	}

	// Petal length separates the species: setosa smallest, virginica largest.
	petal := 2
	assert.InDelta(t, 1.462, gm.Means[0][petal], 1e-3)
	assert.InDelta(t, 5.552, gm.Means[2][petal], 1e-3)
}

func TestCorrelations(t *testing.T) {
	ds := load(t)
	corr := Correlations(ds)

	n := corr.SymmetricDim()
	require.Equal(t, 4, n)
	for i := 0; i < n; i++ {
		assert.InDelta(t, 1.0, corr.At(i, i), 1e-12)
		for j := 0; j < n; j++ {
			assert.InDelta(t, corr.At(j, i), corr.At(i, j), 1e-12)
			assert.LessOrEqual(t, corr.At(i, j), 1.0+1e-12)
			assert.GreaterOrEqual(t, corr.At(i, j), -1.0-1e-12)
		}
	}

	// Petal length vs petal width is the famously strong pair.
	assert.InDelta(t, 0.963, corr.At(2, 3), 1e-3)
}

func TestFindings(t *testing.T) {
	ds := load(t)
	gm := MeansBySpecies(ds)
	corr := Correlations(ds)

	findings := Findings(gm, corr)
	require.Len(t, findings, 3)
	assert.Contains(t, findings[0], "setosa")
	assert.Contains(t, findings[0], "petal_length")
	assert.Contains(t, findings[1], "virginica")
	assert.Contains(t, findings[2], "petal_length")
	assert.Contains(t, findings[2], "petal_width")
}

func TestWriteReport(t *testing.T) {
	ds := load(t)
	var buf bytes.Buffer
	WriteReport(&buf, Describe(ds), MeansBySpecies(ds), Correlations(ds))

	out := buf.String()
	assert.Contains(t, out, "Descriptive statistics")
	assert.Contains(t, out, "Mean measurements by species")
	assert.Contains(t, out, "Findings")
	assert.Contains(t, out, "150")
	assert.Contains(t, out, "setosa")
}
