package ir

import (
	"strconv"
	"strings"
)

// Path returns a JSONPath-style location of n within its tree, e.g.
// "$.foo.bar[0]". It is meant for error messages, not for lookup.
func (n *Node) Path() string {
	if n.Parent == nil {
		return "$"
	}
	switch n.Parent.Type {
	case ObjectType:
		f := n.ParentField
		prefix := n.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"
	case ArrayType:
		return n.Parent.Path() + "[" + strconv.Itoa(n.ParentIndex) + "]"
	default:
		return "$"
	}
}
