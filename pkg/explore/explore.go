// Package explore reports the structure of a loaded dataset: its dimensions,
// column types, missing-value census and a preview of the first records. It
// only reads the dataset.
package explore

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"irislab/pkg/dataprep"
	"irislab/pkg/dataset"
)

// HeadRows is how many records the preview table shows.
const HeadRows = 5

// WriteReport sends the exploration report into the output writer.
func WriteReport(w io.Writer, ds *dataset.Dataset) {
	heading := color.New(color.FgCyan, color.Bold)

	schema := ds.Schema()
	fmt.Fprintf(w, "Dimensions: %d samples x %d columns\n\n", ds.Len(), len(schema.Columns))

	heading.Fprintln(w, "Columns")
	writeSchema(w, schema)

	heading.Fprintln(w, "\nMissing values")
	writeCensus(w, schema, dataprep.MissingCensus(ds))

	heading.Fprintf(w, "\nFirst %d records\n", HeadRows)
	writeHead(w, ds)

	heading.Fprintln(w, "\nRecords per species")
	for _, s := range ds.SpeciesSet() {
		fmt.Fprintf(w, "  %-12s %d\n", s, ds.CountBySpecies()[s])
	}
}

func writeSchema(w io.Writer, schema dataset.Schema) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Column", "Type"})
	tbl.SetBorder(true)

	for _, col := range schema.Columns {
		tbl.Append([]string{col.Name, col.Kind})
	}
	tbl.Render()
}

func writeCensus(w io.Writer, schema dataset.Schema, census map[string]int) {
	total := dataprep.TotalMissing(census)
	if total == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Column", "Missing"})
	tbl.SetBorder(true)
	for _, col := range schema.Columns {
		tbl.Append([]string{col.Name, strconv.Itoa(census[col.Name])})
	}
	tbl.Render()
	fmt.Fprintf(w, "  %d missing values in total\n", total)
}

func writeHead(w io.Writer, ds *dataset.Dataset) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(append(append([]string{}, ds.FeatureNames...), "species"))
	tbl.SetBorder(true)

	for _, row := range ds.Head(HeadRows) {
		tbl.Append(row)
	}
	tbl.Render()
}
