package label

import "fmt"

// DecodeNodes converts loosely typed data, as produced by decoding YAML or
// JSON into an interface value, into nodes. Shape and type violations are
// reported as ErrInvalidArgument; finiteness and blank names are left to
// GenerateLabel.
func DecodeNodes(raw any) ([]*Node, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, errNotSequence
	}
	nodes := make([]*Node, 0, len(items))
	for i, item := range items {
		n, err := decodeNode(item)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeNode(item any) (*Node, error) {
	fields, ok := asRecord(item)
	if !ok {
		return nil, errNotRecord
	}

	name, ok := fields["name"].(string)
	if !ok {
		return nil, errEmptyName
	}
	value, ok := asFloat(fields["value"])
	if !ok {
		return nil, errNonFiniteValue
	}

	n := &Node{Name: name, Value: value}
	switch g := fields["yoyGrowth"].(type) {
	case nil:
	case string:
		n.YoYGrowth = g
	default:
		return nil, errGrowthNotString
	}
	return n, nil
}

func asRecord(item any) (map[string]any, bool) {
	switch m := item.(type) {
	case map[string]any:
		return m, m != nil
	case map[any]any:
		if m == nil {
			return nil, false
		}
		out := make(map[string]any, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				out[ks] = v
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}
