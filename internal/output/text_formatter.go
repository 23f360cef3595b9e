package output

import "strings"

// TextFormatter prints the labels exactly as a diagram would draw them,
// separated by blank lines.
type TextFormatter struct{}

func (t TextFormatter) Name() string { return "text" }

func (t TextFormatter) Format(r *Report) ([]byte, error) {
	labels := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		labels = append(labels, e.Label)
	}
	if len(labels) == 0 {
		return nil, nil
	}
	return []byte(strings.Join(labels, "\n\n") + "\n"), nil
}
