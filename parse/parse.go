package parse

import (
	"fmt"
	"strconv"

	"github.com/signadot/jx/debug"
	"github.com/signadot/jx/ir"
	"github.com/signadot/jx/token"
)

// Parse converts a complete JSON text buffer into an ir.Node tree in
// one pass. Input after the top-level value must be whitespace.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	doc := token.NewPosDoc(d)
	off := 0
	res, err := parseValue(d, doc, &off, 0, pOpts)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse: %d bytes: %v\n", len(d), err)
		}
		return nil, err
	}
	skipSpace(d, &off)
	if off != len(d) {
		return nil, fmt.Errorf("%w: trailing %q %s", ErrParse, d[off], doc.Pos(off))
	}
	return res, nil
}

func skipSpace(d []byte, pi *int) {
	for *pi < len(d) && token.IsSpace(d[*pi]) {
		*pi++
	}
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

func parseValue(d []byte, doc *token.PosDoc, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	if depth > opts.maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d %s", ErrParse, opts.maxDepth, doc.Pos(*pi))
	}
	skipSpace(d, pi)
	if *pi == len(d) {
		return nil, fmt.Errorf("%w: unexpected end of input %s", ErrParse, doc.End())
	}
	c := d[*pi]
	switch token.StartOf(c) {
	case token.KObject:
		pos := doc.Pos(*pi)
		*pi++
		obj := &ir.Node{Type: ir.ObjectType}
		trackPos(obj, pos, opts)
		return parseObj(d, doc, obj, pi, depth, opts)
	case token.KArray:
		pos := doc.Pos(*pi)
		*pi++
		arr := &ir.Node{Type: ir.ArrayType}
		trackPos(arr, pos, opts)
		return parseArr(d, doc, arr, pi, depth, opts)
	case token.KString:
		pos := doc.Pos(*pi)
		s, err := parseString(d, doc, pi)
		if err != nil {
			return nil, err
		}
		sy := ir.FromString(s)
		trackPos(sy, pos, opts)
		return sy, nil
	case token.KNumber:
		pos := doc.Pos(*pi)
		n, err := token.ScanNumber(d[*pi:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w %s", ErrParse, err, pos)
		}
		f, err := strconv.ParseFloat(string(d[*pi:*pi+n]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w %s", ErrParse, err, pos)
		}
		*pi += n
		fy := ir.FromFloat(f)
		trackPos(fy, pos, opts)
		return fy, nil
	case token.KTrue:
		pos := doc.Pos(*pi)
		if err := literal(d, doc, pi, "true"); err != nil {
			return nil, err
		}
		b := ir.FromBool(true)
		trackPos(b, pos, opts)
		return b, nil
	case token.KFalse:
		pos := doc.Pos(*pi)
		if err := literal(d, doc, pi, "false"); err != nil {
			return nil, err
		}
		b := ir.FromBool(false)
		trackPos(b, pos, opts)
		return b, nil
	case token.KNull:
		pos := doc.Pos(*pi)
		if err := literal(d, doc, pi, "null"); err != nil {
			return nil, err
		}
		res := ir.Null()
		trackPos(res, pos, opts)
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %q %s", ErrParse, c, doc.Pos(*pi))
	}
}

// literal verifies an exact fixed-length byte sequence at the cursor.
func literal(d []byte, doc *token.PosDoc, pi *int, want string) error {
	for j := 0; j < len(want); j++ {
		if *pi+j == len(d) || d[*pi+j] != want[j] {
			return fmt.Errorf("%w: malformed %q literal %s", ErrParse, want, doc.Pos(*pi))
		}
	}
	*pi += len(want)
	return nil
}

func parseString(d []byte, doc *token.PosDoc, pi *int) (string, error) {
	s, n, err := token.Unquote(d[*pi:])
	if err != nil {
		return "", fmt.Errorf("%w: %w %s", ErrParse, err, doc.Pos(*pi+n))
	}
	*pi += n
	return s, nil
}

func parseObj(d []byte, doc *token.PosDoc, p *ir.Node, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	skipSpace(d, pi)
	if *pi == len(d) {
		return nil, fmt.Errorf("%w: unexpected end of input in object %s", ErrParse, doc.End())
	}
	if d[*pi] == '}' {
		*pi++
		return p, nil
	}
	for {
		skipSpace(d, pi)
		if *pi == len(d) {
			return nil, fmt.Errorf("%w: unexpected end of input in object %s", ErrParse, doc.End())
		}
		if d[*pi] != '"' {
			return nil, fmt.Errorf("%w: expected object key, got %q %s", ErrParse, d[*pi], doc.Pos(*pi))
		}
		key, err := parseString(d, doc, pi)
		if err != nil {
			return nil, err
		}
		skipSpace(d, pi)
		if *pi == len(d) {
			return nil, fmt.Errorf("%w: unexpected end of input in object %s", ErrParse, doc.End())
		}
		if d[*pi] != ':' {
			return nil, fmt.Errorf("%w: missing ':' after key %q, got %q %s",
				ErrParse, key, d[*pi], doc.Pos(*pi))
		}
		*pi++
		val, err := parseValue(d, doc, pi, depth+1, opts)
		if err != nil {
			return nil, err
		}
		// duplicate keys: last one wins
		p.Set(key, val)
		skipSpace(d, pi)
		if *pi == len(d) {
			return nil, fmt.Errorf("%w: unexpected end of input in object %s", ErrParse, doc.End())
		}
		switch d[*pi] {
		case ',':
			*pi++
		case '}':
			*pi++
			return p, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or '}', got %q %s", ErrParse, d[*pi], doc.Pos(*pi))
		}
	}
}

func parseArr(d []byte, doc *token.PosDoc, p *ir.Node, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	skipSpace(d, pi)
	if *pi == len(d) {
		return nil, fmt.Errorf("%w: unexpected end of input in array %s", ErrParse, doc.End())
	}
	if d[*pi] == ']' {
		*pi++
		return p, nil
	}
	for {
		elt, err := parseValue(d, doc, pi, depth+1, opts)
		if err != nil {
			return nil, err
		}
		p.Append(elt)
		skipSpace(d, pi)
		if *pi == len(d) {
			return nil, fmt.Errorf("%w: unexpected end of input in array %s", ErrParse, doc.End())
		}
		switch d[*pi] {
		case ',':
			*pi++
		case ']':
			*pi++
			return p, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or ']', got %q %s", ErrParse, d[*pi], doc.Pos(*pi))
		}
	}
}
