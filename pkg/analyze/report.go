package analyze

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/mat"
)

// WriteReport sends the formatted analysis tables and derived findings into
// the output writer.
func WriteReport(w io.Writer, summaries []Summary, gm *GroupMeans, corr *mat.SymDense) {
	heading := color.New(color.FgCyan, color.Bold)

	heading.Fprintln(w, "Descriptive statistics")
	writeSummaries(w, summaries)

	heading.Fprintln(w, "\nMean measurements by species")
	writeGroupMeans(w, gm)

	heading.Fprintln(w, "\nAttribute correlations (Pearson)")
	writeCorrelations(w, gm.Attributes, corr)

	heading.Fprintln(w, "\nFindings")
	for _, f := range Findings(gm, corr) {
		fmt.Fprintf(w, "  - %s\n", f)
	}
}

func writeSummaries(w io.Writer, summaries []Summary) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Attribute", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"})
	tbl.SetBorder(true)

	for _, s := range summaries {
		tbl.Append([]string{
			s.Attribute,
			strconv.Itoa(s.Count),
			fmtF(s.Mean), fmtF(s.Std), fmtF(s.Min),
			fmtF(s.Q25), fmtF(s.Median), fmtF(s.Q75), fmtF(s.Max),
		})
	}
	tbl.Render()
}

func writeGroupMeans(w io.Writer, gm *GroupMeans) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(append([]string{"Species"}, gm.Attributes...))
	tbl.SetBorder(true)

	for s, species := range gm.Species {
		row := []string{species}
		for j := range gm.Attributes {
			row = append(row, fmtF(gm.Means[s][j]))
		}
		tbl.Append(row)
	}
	tbl.Render()
}

func writeCorrelations(w io.Writer, attributes []string, corr *mat.SymDense) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(append([]string{""}, attributes...))
	tbl.SetBorder(true)

	for i, name := range attributes {
		row := []string{name}
		for j := range attributes {
			row = append(row, fmtF(corr.At(i, j)))
		}
		tbl.Append(row)
	}
	tbl.Render()
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
