package gomap

import "github.com/signadot/jx/ir"

// ToGo converts a Node tree into plain Go values: nil, bool, float64,
// string, []any and map[string]any.
func ToGo(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		return node.Number
	case ir.StringType:
		return node.String
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToGo(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f] = ToGo(node.Values[i])
		}
		return res
	default:
		return nil
	}
}
