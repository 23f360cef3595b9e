package config

import (
	"fmt"
	"os"

	"github.com/rpgo/flowlabel/internal/label"
	"gopkg.in/yaml.v3"
)

// Document is a set of diagram nodes loaded from an input file.
type Document struct {
	Title string        `yaml:"title,omitempty" json:"title,omitempty"`
	Nodes []*label.Node `yaml:"nodes" json:"nodes"`
}

// InputParser handles parsing of node input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads nodes from a YAML or JSON file. The file holds either a
// bare list of nodes or a mapping with "title" and "nodes" keys.
func (ip *InputParser) LoadFromFile(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates an in-memory document.
func (ip *InputParser) Parse(data []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	doc := &Document{}
	nodesRaw := raw
	if m, ok := raw.(map[string]any); ok {
		if title, ok := m["title"]; ok {
			s, ok := title.(string)
			if !ok {
				return nil, fmt.Errorf("title must be a string")
			}
			doc.Title = s
		}
		nodesRaw = m["nodes"]
	}

	nodes, err := label.DecodeNodes(nodesRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode nodes: %w", err)
	}
	doc.Nodes = nodes

	if err := ip.ValidateDocument(doc); err != nil {
		return nil, fmt.Errorf("document validation failed: %w", err)
	}
	return doc, nil
}

// ValidateDocument checks that every node can be labelled.
func (ip *InputParser) ValidateDocument(doc *Document) error {
	if len(doc.Nodes) == 0 {
		return fmt.Errorf("no nodes provided")
	}
	for i, n := range doc.Nodes {
		if n == nil {
			return fmt.Errorf("node %d is missing", i)
		}
		if _, err := n.Label(); err != nil {
			return fmt.Errorf("node %d (%s) validation failed: %w", i, n.Name, err)
		}
	}
	return nil
}
