// Package yamlconv bridges YAML documents and jx Node trees. It
// covers the JSON data model only: mappings must have string keys and
// anchors are resolved before conversion.
package yamlconv

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/jx/gomap"
	"github.com/signadot/jx/ir"
)

// Parse decodes a YAML document into a Node tree.
func Parse(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("yamlconv: %w", err)
	}
	return gomap.FromGo(v)
}

// Encode renders a Node tree as YAML.
func Encode(node *ir.Node) ([]byte, error) {
	d, err := yaml.Marshal(gomap.ToGo(node))
	if err != nil {
		return nil, fmt.Errorf("yamlconv: %w", err)
	}
	return d, nil
}
