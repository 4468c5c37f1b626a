// Package query evaluates expressions against jx document trees.
//
// Expressions use the expr language (expr-lang.org). The document is
// bound to "doc"; when the root is an object each top-level key is
// also bound directly, so `users[0].name` and `doc.users[0].name`
// both work.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/jx/debug"
	"github.com/signadot/jx/gomap"
	"github.com/signadot/jx/ir"
)

// Eval compiles and runs src against node and converts the result
// back into a Node.
func Eval(node *ir.Node, src string) (*ir.Node, error) {
	env := Env(node)
	program, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	if debug.Query() {
		debug.Logf("query: compiled %q\n", src)
	}
	out, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	return gomap.FromGo(out)
}

// Env builds the evaluation environment for node. The "doc" binding
// always wins over a top-level key of the same name.
func Env(node *ir.Node) map[string]any {
	env := map[string]any{}
	if node.Type == ir.ObjectType {
		for i, f := range node.Fields {
			env[f] = gomap.ToGo(node.Values[i])
		}
	}
	env["doc"] = gomap.ToGo(node)
	return env
}
