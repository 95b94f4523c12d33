package provider

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkgraph/core"
)

// DecodeYAML reads the mapping stored under field of a YAML document, in
// document key order. Field semantics match DecodeJSON.
func DecodeYAML(data []byte, field string) (*core.AdjacencyMap, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}

	root := resolve(doc.Content[0])
	if field != "" {
		if root.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: document is not a mapping", ErrMalformed)
		}
		root = lookup(root, field)
		if root == nil {
			return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, field)
		}
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: mapping is %s, want mapping", ErrMalformed, root.ShortTag())
	}

	m := core.NewAdjacencyMap(len(root.Content) / 2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		entry := resolve(root.Content[i+1])
		switch {
		case entry.Kind == yaml.ScalarNode && entry.ShortTag() == "!!null":
			m.Set(name)
		case entry.Kind == yaml.SequenceNode:
			neighbors := make([]string, 0, len(entry.Content))
			for _, item := range entry.Content {
				item = resolve(item)
				if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
					return nil, fmt.Errorf("%w: entry %q holds a %s, want string", ErrMalformed, name, item.ShortTag())
				}
				neighbors = append(neighbors, item.Value)
			}
			m.Set(name, neighbors...)
		default:
			return nil, fmt.Errorf("%w: entry %q is %s, want sequence", ErrMalformed, name, entry.ShortTag())
		}
	}

	return m, nil
}

// lookup returns the value node for key in a mapping node, or nil.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return resolve(mapping.Content[i+1])
		}
	}

	return nil
}

// resolve follows an alias to its anchor.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}
