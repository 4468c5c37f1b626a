package encode

import "github.com/signadot/jx/ir"

// ToString renders node as a string.
func ToString(node *ir.Node, opts ...EncodeOption) string {
	return string(AppendNode(nil, node, opts...))
}
