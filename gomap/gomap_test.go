package gomap

import (
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jx/encode"
	"github.com/signadot/jx/ir"
)

func wire(n *ir.Node) string {
	return encode.ToString(n, encode.Wire(true))
}

func TestFromGo(t *testing.T) {
	type Inner struct {
		Z string `json:"z"`
	}
	type tagged struct {
		Inner
		A       int     `json:"a"`
		B       string  `json:"b,omitempty"`
		Skipped string  `json:"-"`
		Pf      *f64ptr `json:"pf,omitempty"`
	}

	cases := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: "null"},
		{name: "bool", in: true, want: "true"},
		{name: "int", in: 42, want: "42"},
		{name: "uint", in: uint8(7), want: "7"},
		{name: "float", in: 2.5, want: "2.5"},
		{name: "string", in: "hi", want: `"hi"`},
		// string-like beats array-like
		{name: "bytes", in: []byte("raw"), want: `"raw"`},
		{name: "runes", in: []rune("héllo"), want: `"héllo"`},
		{name: "text-marshaler", in: net.IPv4(10, 0, 0, 1), want: `"10.0.0.1"`},
		{name: "nil-slice", in: []int(nil), want: "null"},
		{name: "nil-map", in: map[string]int(nil), want: "null"},
		{name: "nil-pointer", in: (*int)(nil), want: "null"},
		{name: "slice", in: []any{1, "a", nil}, want: `[1,"a",null]`},
		{name: "array", in: [2]bool{true, false}, want: "[true,false]"},
		{
			name: "map-keys-sorted",
			in:   map[string]int{"b": 2, "a": 1, "c": 3},
			want: `{"a":1,"b":2,"c":3}`,
		},
		{
			name: "struct-tags-and-embedding",
			in:   tagged{Inner: Inner{Z: "deep"}, A: 1, Skipped: "x"},
			want: `{"a":1,"z":"deep"}`,
		},
		{
			name: "omitempty-set",
			in:   tagged{A: 1, B: "b"},
			want: `{"a":1,"b":"b","z":""}`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			node, err := FromGo(c.in)
			if err != nil {
				t.Fatalf("FromGo(%v): %v", c.in, err)
			}
			if got := wire(node); got != c.want {
				t.Errorf("FromGo(%v) = %s, want %s", c.in, got, c.want)
			}
		})
	}
}

// f64ptr exercises TextMarshaler with a pointer receiver.
type f64ptr struct{ v float64 }

func (f *f64ptr) MarshalText() ([]byte, error) {
	return []byte("ptr-text"), nil
}

func TestFromGoPointerTextMarshaler(t *testing.T) {
	node, err := FromGo(&f64ptr{v: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := wire(node); got != `"ptr-text"` {
		t.Errorf("got %s, want %q", got, `"ptr-text"`)
	}
}

func TestFromGoNodePassThrough(t *testing.T) {
	orig := ir.FromMap(map[string]*ir.Node{"a": ir.FromFloat(1)})
	node, err := FromGo(orig)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(orig, node) {
		t.Fatal("pass-through changed the tree")
	}
	node.Child("a").SetFloat(2)
	if orig.Get("a").Number != 1 {
		t.Error("result aliases the input")
	}
}

func TestFromGoErrs(t *testing.T) {
	if _, err := FromGo(map[int]string{1: "a"}); err == nil {
		t.Error("non-string map key accepted")
	}
	if _, err := FromGo(make(chan int)); err == nil {
		t.Error("channel accepted")
	}
	_, err := FromGo(struct {
		Deep map[string]any `json:"deep"`
	}{Deep: map[string]any{"c": make(chan int)}})
	me, ok := err.(*MarshalError)
	if !ok {
		t.Fatalf("err = %v, want *MarshalError", err)
	}
	if me.FieldPath != "deep.c" {
		t.Errorf("FieldPath = %q, want deep.c", me.FieldPath)
	}
}

func TestToGo(t *testing.T) {
	node := ir.FromMap(map[string]*ir.Node{
		"xs": ir.FromSlice([]*ir.Node{ir.FromFloat(1), ir.FromString("a")}),
		"ok": ir.FromBool(true),
		"no": ir.Null(),
	})
	want := map[string]any{
		"xs": []any{1.0, "a"},
		"ok": true,
		"no": nil,
	}
	got := ToGo(node)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToGo mismatch (-want +got):\n%s", diff)
	}
	if ToGo(nil) != nil {
		t.Error("ToGo(nil) != nil")
	}
}
