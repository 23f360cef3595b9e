// Package label builds the multi-line text shown on diagram nodes: a name,
// a short-scale currency amount and an optional year-over-year growth note.
package label

import (
	"fmt"
	"math"
	"strings"

	"github.com/rpgo/flowlabel/pkg/decimal"
)

// Node is the input for one diagram node label.
type Node struct {
	Name      string  `yaml:"name" json:"name"`
	Value     float64 `yaml:"value" json:"value"`
	YoYGrowth string  `yaml:"yoyGrowth,omitempty" json:"yoyGrowth,omitempty"`
}

// Generator turns nodes into labels. The zero value is ready to use.
type Generator struct {
	Logger Logger
}

// NewGenerator creates a generator with a no-op logger.
func NewGenerator() *Generator {
	return &Generator{Logger: NopLogger{}}
}

var defaultGenerator = NewGenerator()

func (g *Generator) logger() Logger {
	if g.Logger == nil {
		return NopLogger{}
	}
	return g.Logger
}

// FormatValue renders the magnitude of value on the short scale with a
// currency prefix, e.g. "$1.5M".
func FormatValue(value float64) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", errNonFiniteValue
	}
	return decimal.NewMoney(value).Compact(), nil
}

// GenerateLabel returns "<name>\n<value>" with "\n(<growth>)" appended when
// yoyGrowth is not blank. Name and growth are trimmed.
func GenerateLabel(name string, value float64, yoyGrowth string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errEmptyName
	}
	formatted, err := FormatValue(value)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('\n')
	b.WriteString(formatted)
	if growth := strings.TrimSpace(yoyGrowth); growth != "" {
		b.WriteString("\n(")
		b.WriteString(growth)
		b.WriteByte(')')
	}
	return b.String(), nil
}

// Label formats a single node.
func (n Node) Label() (string, error) {
	return GenerateLabel(n.Name, n.Value, n.YoYGrowth)
}

// Generate labels every node in order and stops at the first invalid one.
func (g *Generator) Generate(nodes []*Node) ([]string, error) {
	log := g.logger()
	labels := make([]string, 0, len(nodes))
	for i, n := range nodes {
		if n == nil {
			log.Warnf("node %d is nil", i)
			return nil, fmt.Errorf("node %d: %w", i, errNotRecord)
		}
		l, err := n.Label()
		if err != nil {
			log.Warnf("node %d (%q) rejected: %v", i, n.Name, err)
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		log.Debugf("node %d labelled %q", i, l)
		labels = append(labels, l)
	}
	log.Infof("generated %d labels", len(labels))
	return labels, nil
}

// GenerateMultipleLabels labels nodes with the default generator.
func GenerateMultipleLabels(nodes []*Node) ([]string, error) {
	return defaultGenerator.Generate(nodes)
}
