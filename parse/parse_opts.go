package parse

import (
	"github.com/signadot/jx/ir"
	"github.com/signadot/jx/token"
)

// DefaultMaxDepth bounds container nesting so hostile input fails
// with a parse error instead of exhausting the call stack.
const DefaultMaxDepth = 10000

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
	maxDepth  int
}

type ParseOption func(*parseOpts)

// Positions records the start position of every parsed node in m.
func Positions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// MaxDepth overrides DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
