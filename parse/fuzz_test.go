package parse

import (
	"testing"

	"github.com/signadot/jx/encode"
	"github.com/signadot/jx/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		"null",
		"true",
		"-0.5e3",
		`""`,
		`"a\tb"`,
		"[]",
		"{}",
		`[1, [2, [3]], {"a": null}]`,
		`{"b": 2, "a": [true, false, "x"]}`,
		`{ "k" : -1e-7 }`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		node, err := Parse(d)
		if err != nil {
			// invalid input is fine; it just must not crash
			return
		}
		wire := encode.AppendNode(nil, node, encode.Wire(true))
		again, err := Parse(wire)
		if err != nil {
			t.Fatalf("reparsing own output %q: %v", wire, err)
		}
		if !ir.Equal(node, again) {
			t.Fatalf("round trip changed the document: %q", wire)
		}
	})
}
