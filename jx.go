// Package jx is a JSON document model: a dynamically-typed tree of
// ir.Node values, a recursive-descent parser, and a pretty/minimized
// serializer. This package is the thin user-facing surface; the work
// happens in ir, parse and encode.
package jx

import (
	"fmt"
	"os"

	"github.com/signadot/jx/encode"
	"github.com/signadot/jx/ir"
	"github.com/signadot/jx/parse"
)

// Parse converts a complete JSON text into a Node tree.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse([]byte(s), opts...)
}

// String renders node as text, pretty by default; pass
// encode.Wire(true) for minimized output. It never fails for
// well-formed trees.
func String(node *ir.Node, opts ...encode.EncodeOption) string {
	return encode.ToString(node, opts...)
}

// Load reads the whole file at path into memory and parses it.
func Load(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return node, nil
}

// Save serializes node and writes the whole buffer to path in one
// write.
func Save(path string, node *ir.Node, opts ...encode.EncodeOption) error {
	d := encode.AppendNode(nil, node, opts...)
	d = append(d, '\n')
	if err := os.WriteFile(path, d, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
