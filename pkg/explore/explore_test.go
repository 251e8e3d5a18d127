package explore

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irislab/pkg/dataset"
)

func TestWriteReport(t *testing.T) {
	ds, err := dataset.Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteReport(&buf, ds)
	out := buf.String()

	assert.Contains(t, out, "150 samples x 5 columns")
	assert.Contains(t, out, "sepal_length")
	assert.Contains(t, out, "petal_width")
	assert.Contains(t, out, "species")
	// No gaps in the bundled table.
	assert.Contains(t, out, "none")
	// Preview and species distribution.
	assert.Contains(t, out, "setosa")
	assert.Contains(t, out, "versicolor")
	assert.Contains(t, out, "virginica")
	assert.Contains(t, out, "50")
}

func TestWriteReportShowsCensus(t *testing.T) {
	ds := &dataset.Dataset{
		FeatureNames: []string{"a"},
		Features:     [][]float64{{1}, {2}},
		Species:      []string{"x", ""},
	}

	var buf bytes.Buffer
	WriteReport(&buf, ds)
	assert.Contains(t, buf.String(), "1 missing values in total")
}
