package query

import (
	"testing"

	"github.com/signadot/jx/encode"
	"github.com/signadot/jx/ir"
	"github.com/signadot/jx/parse"
)

const doc = `{
	"users": [
		{"name": "ana", "age": 31},
		{"name": "bo", "age": 19}
	],
	"limit": 2,
	"doc": "shadowed"
}`

func evalWire(t *testing.T, src string) string {
	t.Helper()
	node, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	res, err := Eval(node, src)
	if err != nil {
		t.Fatalf("Eval(%q): %v", src, err)
	}
	return encode.ToString(res, encode.Wire(true))
}

func TestEval(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{src: "users[0].name", want: `"ana"`},
		{src: "doc.users[1].age", want: "19"},
		{src: "limit * 10", want: "20"},
		{src: "len(users)", want: "2"},
		{src: `map(users, .name)`, want: `["ana","bo"]`},
		{src: `filter(users, .age > 21)[0].name`, want: `"ana"`},
		{src: "users[0].age > limit", want: "true"},
		{src: "missing == nil", want: "true"},
	}
	for _, c := range cases {
		if got := evalWire(t, c.src); got != c.want {
			t.Errorf("Eval(%q) = %s, want %s", c.src, got, c.want)
		}
	}
}

func TestDocBindingWins(t *testing.T) {
	// the root itself shadows any top-level key named "doc"
	got := evalWire(t, `doc.limit`)
	if got != "2" {
		t.Errorf("doc.limit = %s, want 2", got)
	}
}

func TestEvalNonObjectRoot(t *testing.T) {
	res, err := Eval(ir.FromSlice([]*ir.Node{ir.FromFloat(1), ir.FromFloat(2)}), "doc[1]")
	if err != nil {
		t.Fatal(err)
	}
	if res.Number != 2 {
		t.Errorf("doc[1] = %v, want 2", res.Number)
	}
}

func TestEvalErrs(t *testing.T) {
	node := ir.Null()
	if _, err := Eval(node, "1 +"); err == nil {
		t.Error("malformed expression compiled")
	}
}
