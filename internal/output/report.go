package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/flowlabel/internal/label"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedFormat is returned when no formatter matches a requested name.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Entry is one labelled node in a report.
type Entry struct {
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	Formatted string          `json:"formatted"`
	YoYGrowth string          `json:"yoyGrowth,omitempty"`
	Label     string          `json:"label"`
	Complete  bool            `json:"complete"`
}

// Report is the formatter input: labelled nodes in input order.
type Report struct {
	Title   string  `json:"title,omitempty"`
	Entries []Entry `json:"entries"`
}

// Total sums the node values.
func (r *Report) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range r.Entries {
		total = total.Add(e.Value)
	}
	return total
}

// BuildReport labels nodes with g and records whether each label passes the
// completeness check.
func BuildReport(title string, nodes []*label.Node, g *label.Generator) (*Report, error) {
	if g == nil {
		g = label.NewGenerator()
	}
	labels, err := g.Generate(nodes)
	if err != nil {
		return nil, err
	}
	r := &Report{Title: title, Entries: make([]Entry, 0, len(nodes))}
	for i, n := range nodes {
		formatted, err := label.FormatValue(n.Value)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		r.Entries = append(r.Entries, Entry{
			Name:      strings.TrimSpace(n.Name),
			Value:     decimal.NewFromFloat(n.Value),
			Formatted: formatted,
			YoYGrowth: strings.TrimSpace(n.YoYGrowth),
			Label:     labels[i],
			Complete:  label.ValidateLabelCompleteness(labels[i], strings.TrimSpace(n.Name), n.Value, n.YoYGrowth),
		})
	}
	return r, nil
}

// GenerateReport renders the report with the named formatter and writes it to w.
func GenerateReport(w io.Writer, r *Report, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(r)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
