package lca

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
)

const (
	// ReportFilename is the download name of a CSV report.
	ReportFilename = "lca_report.csv"
	// ReportContentType is the media type of a CSV report.
	ReportContentType = "text/csv"
)

var reportHeader = []string{"Metric", "Value (kg CO2)"}

// WriteCSV writes r as a two-column CSV report with values rounded to 4 decimals.
func WriteCSV(w io.Writer, r Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, m := range r.Metrics() {
		if err := cw.Write([]string{m.Label, strconv.FormatFloat(m.Value, 'f', 4, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// RenderCSV returns the CSV report of r.
func RenderCSV(r Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
