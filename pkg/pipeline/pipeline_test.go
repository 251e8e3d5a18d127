package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irislab/pkg/dataset"
	"irislab/pkg/visualize"
)

func TestRunEndToEnd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "iris_analysis.png")
	var buf bytes.Buffer

	require.NoError(t, Run(Config{OutputPath: out, LogLevel: "ERROR", Out: &buf}))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	report := buf.String()
	assert.Contains(t, report, "150")
	assert.Contains(t, report, "Descriptive statistics")
	assert.Contains(t, report, "Findings")
}

func TestRunMissingCSV(t *testing.T) {
	err := Run(Config{
		CSVPath:    filepath.Join(t.TempDir(), "nope.csv"),
		OutputPath: filepath.Join(t.TempDir(), "out.png"),
		LogLevel:   "ERROR",
		Out:        &bytes.Buffer{},
	})
	assert.ErrorIs(t, err, dataset.ErrDataUnavailable)
}

func TestRunCSVWithGapsIsCleaned(t *testing.T) {
	content := "sepal_length,sepal_width,petal_length,petal_width,species\n" +
		"5.1,3.5,1.4,0.2,setosa\n" +
		"4.9,,1.4,0.2,setosa\n" +
		"7.0,3.2,4.7,1.4,versicolor\n" +
		"6.3,3.3,6.0,NaN,virginica\n"
	csvPath := filepath.Join(t.TempDir(), "gaps.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	out := filepath.Join(t.TempDir(), "out.png")
	var buf bytes.Buffer
	require.NoError(t, Run(Config{CSVPath: csvPath, OutputPath: out, LogLevel: "ERROR", Out: &buf}))

	_, err := os.Stat(out)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "missing values in total")
}

func TestRunUnwritableOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing-dir", "out.png")

	err := Run(Config{OutputPath: out, LogLevel: "ERROR", Out: &bytes.Buffer{}})
	assert.ErrorIs(t, err, visualize.ErrRenderFailure)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
