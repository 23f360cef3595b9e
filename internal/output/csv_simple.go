package output

import (
	"bytes"
	"encoding/csv"
)

// CSVSummarizer writes one row per node in input order. Labels keep their
// line breaks inside quoted fields.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(r *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Value", "Formatted", "YoYGrowth", "Label", "Complete"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range r.Entries {
		row := []string{
			e.Name,
			e.Value.StringFixed(2),
			e.Formatted,
			e.YoYGrowth,
			e.Label,
			boolToString(e.Complete),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
