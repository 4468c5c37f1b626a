package ir

import (
	"fmt"
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	// Fields and Values hold object members, parallel and sorted by
	// key. Arrays use Values alone.
	Fields []string
	Values []*Node

	String string
	Number float64
	Bool   bool
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Number: f}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
		v.ParentField = ""
		res.Values[i] = v
	}
	return res
}

func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = slices.Sorted(maps.Keys(m))
	res.Values = make([]*Node, len(res.Fields))
	for i, key := range res.Fields {
		v := m[key]
		v.Parent = res
		v.ParentIndex = i
		v.ParentField = key
		res.Values[i] = v
	}
	return res
}

// Is reports whether t is the active variant. It never fails.
func (n *Node) Is(t Type) bool {
	return n.Type == t
}

// reset discards the current payload; the caller sets the new variant.
func (n *Node) reset() {
	n.Fields = nil
	n.Values = nil
	n.String = ""
	n.Number = 0
	n.Bool = false
}

func (n *Node) SetNull() *Node {
	n.reset()
	n.Type = NullType
	return n
}

func (n *Node) SetBool(v bool) *Node {
	n.reset()
	n.Type = BoolType
	n.Bool = v
	return n
}

func (n *Node) SetFloat(f float64) *Node {
	n.reset()
	n.Type = NumberType
	n.Number = f
	return n
}

func (n *Node) SetString(v string) *Node {
	n.reset()
	n.Type = StringType
	n.String = v
	return n
}

func (n *Node) SetObject() *Node {
	n.reset()
	n.Type = ObjectType
	return n
}

func (n *Node) SetArray() *Node {
	n.reset()
	n.Type = ArrayType
	return n
}

// Text returns the string payload or ErrTypeMismatch.
func (n *Node) Text() (string, error) {
	if n.Type != StringType {
		return "", typeErr(n, StringType)
	}
	return n.String, nil
}

// Float returns the number payload or ErrTypeMismatch.
func (n *Node) Float() (float64, error) {
	if n.Type != NumberType {
		return 0, typeErr(n, NumberType)
	}
	return n.Number, nil
}

// Truth returns the bool payload or ErrTypeMismatch.
func (n *Node) Truth() (bool, error) {
	if n.Type != BoolType {
		return false, typeErr(n, BoolType)
	}
	return n.Bool, nil
}

// Items returns the array elements or ErrTypeMismatch.
func (n *Node) Items() ([]*Node, error) {
	if n.Type != ArrayType {
		return nil, typeErr(n, ArrayType)
	}
	return n.Values, nil
}

// Entries returns the object keys and values or ErrTypeMismatch.
func (n *Node) Entries() ([]string, []*Node, error) {
	if n.Type != ObjectType {
		return nil, nil, typeErr(n, ObjectType)
	}
	return n.Fields, n.Values, nil
}

func typeErr(n *Node, want Type) error {
	return fmt.Errorf("%w: have %s, want %s at %s", ErrTypeMismatch, n.Type, want, n.Path())
}

// Get returns the value under key, or nil when the key is absent or
// the receiver is not an object.
func (n *Node) Get(key string) *Node {
	if n.Type != ObjectType {
		return nil
	}
	i, ok := slices.BinarySearch(n.Fields, key)
	if !ok {
		return nil
	}
	return n.Values[i]
}

// At returns the value under key. Unlike Child it never inserts:
// a non-object receiver is ErrTypeMismatch and an absent key is
// ErrMissingKey.
func (n *Node) At(key string) (*Node, error) {
	if n.Type != ObjectType {
		return nil, typeErr(n, ObjectType)
	}
	i, ok := slices.BinarySearch(n.Fields, key)
	if !ok {
		return nil, fmt.Errorf("%w: %q at %s", ErrMissingKey, key, n.Path())
	}
	return n.Values[i], nil
}

// Contains reports whether the receiver is an object holding key.
// It is meaningful on objects only; any other receiver reports false.
func (n *Node) Contains(key string) bool {
	if n.Type != ObjectType {
		return false
	}
	_, ok := slices.BinarySearch(n.Fields, key)
	return ok
}

// Child is the mutable object subscript. A Null receiver becomes an
// empty object first; a missing key inserts a Null child. The
// receiver must be Null or Object; anything else panics.
func (n *Node) Child(key string) *Node {
	switch n.Type {
	case NullType:
		n.SetObject()
	case ObjectType:
	default:
		panic(fmt.Sprintf("ir: Child on %s node at %s", n.Type, n.Path()))
	}
	i, ok := slices.BinarySearch(n.Fields, key)
	if ok {
		return n.Values[i]
	}
	v := Null()
	n.insert(i, key, v)
	return v
}

// Set places v under key, replacing any existing value. The receiver
// must be Null or Object.
func (n *Node) Set(key string, v *Node) *Node {
	switch n.Type {
	case NullType:
		n.SetObject()
	case ObjectType:
	default:
		panic(fmt.Sprintf("ir: Set on %s node at %s", n.Type, n.Path()))
	}
	i, ok := slices.BinarySearch(n.Fields, key)
	if ok {
		v.Parent = n
		v.ParentIndex = i
		v.ParentField = key
		n.Values[i] = v
		return n
	}
	n.insert(i, key, v)
	return n
}

func (n *Node) insert(i int, key string, v *Node) {
	v.Parent = n
	v.ParentIndex = i
	v.ParentField = key
	n.Fields = slices.Insert(n.Fields, i, key)
	n.Values = slices.Insert(n.Values, i, v)
	for j := i + 1; j < len(n.Values); j++ {
		n.Values[j].ParentIndex = j
	}
}

// Append adds v to the end of an array. A Null receiver becomes an
// empty array first.
func (n *Node) Append(v *Node) *Node {
	switch n.Type {
	case NullType:
		n.SetArray()
	case ArrayType:
	default:
		panic(fmt.Sprintf("ir: Append on %s node at %s", n.Type, n.Path()))
	}
	v.Parent = n
	v.ParentIndex = len(n.Values)
	v.ParentField = ""
	n.Values = append(n.Values, v)
	return n
}

// ValueOr returns the value under key cast to T when present and of
// the matching kind, else def. It never inserts.
func ValueOr[T string | float64 | bool](n *Node, key string, def T) T {
	c := n.Get(key)
	if c == nil {
		return def
	}
	var out T
	switch p := any(&out).(type) {
	case *string:
		if c.Type != StringType {
			return def
		}
		*p = c.String
	case *float64:
		if c.Type != NumberType {
			return def
		}
		*p = c.Number
	case *bool:
		if c.Type != BoolType {
			return def
		}
		*p = c.Bool
	}
	return out
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.ParentField = n.ParentField
	dst.Type = n.Type
	dst.String = n.String
	dst.Number = n.Number
	dst.Bool = n.Bool
	dst.Fields = slices.Clone(n.Fields)
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dstI := &Node{}
			v.CloneTo(dstI)
			dstI.Parent = dst
			dstI.ParentIndex = i
			dst.Values[i] = dstI
		}
	}
	return dst
}

// Visit walks the tree calling f twice per node, pre- and post-order.
// Returning false from the pre-order call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Values {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
