package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/flowlabel/pkg/decimal"
)

// ConsoleFormatter provides a tabular console summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	title := r.Title
	if title == "" {
		title = "NODE LABELS"
	}
	fmt.Fprintln(&buf, strings.ToUpper(title))
	fmt.Fprintln(&buf, "================================")
	incomplete := 0
	for _, e := range r.Entries {
		mark := ""
		if !e.Complete {
			mark = " (incomplete)"
			incomplete++
		}
		fmt.Fprintf(&buf, "%-24s %16s  %s%s\n", e.Name, FormatCurrency(e.Value), InlineLabel(e.Label), mark)
	}
	fmt.Fprintln(&buf)
	total := decimal.NewMoneyFromDecimal(r.Total())
	fmt.Fprintf(&buf, "Nodes: %d  Total: %s (%s)\n", len(r.Entries), total.Format(), total.Compact())
	if incomplete > 0 {
		fmt.Fprintf(&buf, "Incomplete labels: %d\n", incomplete)
	}
	return buf.Bytes(), nil
}
