package parse

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/signadot/jx/ir"
	"github.com/signadot/jx/token"
)

func TestParseOK(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want *ir.Node
	}{
		{name: "null", in: "null", want: ir.Null()},
		{name: "true", in: "true", want: ir.FromBool(true)},
		{name: "false", in: "false", want: ir.FromBool(false)},
		{name: "int", in: "42", want: ir.FromFloat(42)},
		{name: "negative", in: "-17", want: ir.FromFloat(-17)},
		{name: "fraction", in: "2.5", want: ir.FromFloat(2.5)},
		{name: "exponent", in: "1e14", want: ir.FromFloat(1e14)},
		{name: "string", in: `"hello"`, want: ir.FromString("hello")},
		{name: "escapes", in: `"a\tb\nc"`, want: ir.FromString("a\tb\nc")},
		{name: "empty-object", in: "{}", want: &ir.Node{Type: ir.ObjectType}},
		{name: "empty-array", in: "[]", want: &ir.Node{Type: ir.ArrayType}},
		{
			name: "array",
			in:   `[1, "two", true, null]`,
			want: ir.FromSlice([]*ir.Node{
				ir.FromFloat(1), ir.FromString("two"), ir.FromBool(true), ir.Null(),
			}),
		},
		{
			name: "object",
			in:   `{"b": 2, "a": 1}`,
			want: ir.FromMap(map[string]*ir.Node{
				"a": ir.FromFloat(1),
				"b": ir.FromFloat(2),
			}),
		},
		{
			name: "nested",
			in:   `{"xs": [{"y": null}], "n": -0.5}`,
			want: ir.FromMap(map[string]*ir.Node{
				"xs": ir.FromSlice([]*ir.Node{
					ir.FromMap(map[string]*ir.Node{"y": ir.Null()}),
				}),
				"n": ir.FromFloat(-0.5),
			}),
		},
		{
			name: "whitespace-insensitive",
			in:   " {\n\t\"a\" :\r [ 1 , 2 ]\n} ",
			want: ir.FromMap(map[string]*ir.Node{
				"a": ir.FromSlice([]*ir.Node{ir.FromFloat(1), ir.FromFloat(2)}),
			}),
		},
		{
			name: "duplicate-keys-last-wins",
			in:   `{"a": 1, "a": 2}`,
			want: ir.FromMap(map[string]*ir.Node{"a": ir.FromFloat(2)}),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse([]byte(c.in))
			if err != nil {
				t.Fatalf("Parse(%q): %v", c.in, err)
			}
			if !ir.Equal(got, c.want) {
				t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestParseErrs(t *testing.T) {
	cases := []struct {
		name string
		in   string
		// a fragment the error message must carry, usually the
		// reported offset
		frag string
	}{
		{name: "empty", in: "", frag: "end of input"},
		{name: "blank", in: "   ", frag: "end of input"},
		{name: "missing-value", in: `{ "a": }`, frag: "offset 7"},
		{name: "unterminated-array", in: `[1, 2`, frag: "end of input in array"},
		{name: "unterminated-object", in: `{"a": 1`, frag: "end of input in object"},
		{name: "short-literal", in: "tru", frag: `malformed "true"`},
		{name: "bad-literal", in: "nil", frag: `malformed "null"`},
		{name: "unsupported-escape", in: `"\u0041"`, frag: `\u`},
		{name: "bare-escape", in: `"a\q"`, frag: "escape"},
		{name: "unterminated-string", in: `"abc`, frag: "end of input in string"},
		{name: "missing-colon", in: `{"a" 1}`, frag: "missing ':'"},
		{name: "bad-key", in: `{a: 1}`, frag: "expected object key"},
		{name: "missing-comma", in: `[1 2]`, frag: "expected ',' or ']'"},
		{name: "trailing-garbage", in: `{} x`, frag: "trailing"},
		{name: "leading-zero", in: "017", frag: "leading zero"},
		{name: "lone-minus", in: "-", frag: "number"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.in))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded", c.in)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) err = %v, not an ErrParse", c.in, err)
			}
			if !strings.Contains(err.Error(), c.frag) {
				t.Errorf("Parse(%q) err = %q, want fragment %q", c.in, err, c.frag)
			}
		})
	}
}

func TestParseErrUnwraps(t *testing.T) {
	_, err := Parse([]byte(`"\u0041"`))
	if !errors.Is(err, token.ErrEscapeU) {
		t.Errorf("err = %v, want token.ErrEscapeU in chain", err)
	}
}

func TestParseOutOfRangeNumber(t *testing.T) {
	_, err := Parse([]byte("1e400"))
	if !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want ErrParse for a value outside float64 range", err)
	}
}

func TestParseMaxDepth(t *testing.T) {
	in := strings.Repeat("[", 40) + strings.Repeat("]", 40)
	if _, err := Parse([]byte(in)); err != nil {
		t.Fatalf("depth 40 within default limit: %v", err)
	}
	_, err := Parse([]byte(in), MaxDepth(10))
	if !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want ErrParse past MaxDepth", err)
	}
}

func TestParsePositions(t *testing.T) {
	in := []byte(`{"a": [1, true]}`)
	pos := map[*ir.Node]*token.Pos{}
	node, err := Parse(in, Positions(pos))
	if err != nil {
		t.Fatal(err)
	}
	arr := node.Get("a")
	p, ok := pos[arr]
	if !ok {
		t.Fatal("no position recorded for the array")
	}
	if p.I != 6 {
		t.Errorf("array offset = %d, want 6", p.I)
	}
	if p, ok := pos[arr.Values[1]]; !ok || p.I != 10 {
		t.Errorf("true offset = %v, want 10", p)
	}
}

func TestParsedNumbersAreFloat64(t *testing.T) {
	node, err := Parse([]byte("9007199254740993")) // 2^53 + 1
	if err != nil {
		t.Fatal(err)
	}
	if node.Number != math.Trunc(node.Number) {
		t.Fatalf("unexpected fraction: %v", node.Number)
	}
	// float64 cannot hold 2^53+1 exactly; the nearest value is 2^53.
	if node.Number != 9007199254740992 {
		t.Errorf("Number = %v, want rounded 9007199254740992", node.Number)
	}
}
