package encode

import (
	"io"
	"math"
	"strconv"

	"github.com/signadot/jx/ir"
	"github.com/signadot/jx/token"
)

type EncState struct {
	depth  int
	indent int
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders node to w. The only failure paths are writer errors;
// any well-formed tree encodes.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	_, err := w.Write(AppendNode(nil, node, opts...))
	return err
}

// AppendNode appends the rendering of node to dst.
func AppendNode(dst []byte, node *ir.Node, opts ...EncodeOption) []byte {
	es := &EncState{indent: 4}
	for _, opt := range opts {
		opt(es)
	}
	return appendValue(dst, node, es, false)
}

// appendValue writes one value. skipIndent is true only when the
// value follows its object key on the same line; array elements and
// the top-level document write their own leading indentation.
func appendValue(dst []byte, node *ir.Node, es *EncState, skipIndent bool) []byte {
	if !es.wire && !skipIndent {
		dst = appendIndentation(dst, es)
	}
	switch node.Type {
	case ir.ObjectType:
		return appendObject(dst, node, es)
	case ir.ArrayType:
		return appendArray(dst, node, es)
	case ir.StringType:
		return appendQuoted(dst, node.String, ir.StringType, ValueColor, es)
	case ir.NumberType:
		return appendNumber(dst, node.Number, es)
	case ir.BoolType:
		return appendPainted(dst, strconv.FormatBool(node.Bool), ir.BoolType, ValueColor, es)
	case ir.NullType:
		return appendPainted(dst, "null", ir.NullType, ValueColor, es)
	default:
		panic("type")
	}
}

func appendObject(dst []byte, node *ir.Node, es *EncState) []byte {
	dst = appendPainted(dst, "{", ir.ObjectType, SepColor, es)
	if len(node.Fields) == 0 {
		// empty containers stay on one line in both modes
		return appendPainted(dst, "}", ir.ObjectType, SepColor, es)
	}
	es.depth++
	for i, field := range node.Fields {
		if !es.wire {
			dst = append(dst, '\n')
			dst = appendIndentation(dst, es)
		}
		dst = appendQuoted(dst, field, ir.ObjectType, FieldColor, es)
		dst = appendPainted(dst, ":", ir.ObjectType, SepColor, es)
		if !es.wire {
			dst = append(dst, ' ')
		}
		dst = appendValue(dst, node.Values[i], es, true)
		if i < len(node.Fields)-1 {
			dst = appendPainted(dst, ",", ir.ObjectType, SepColor, es)
		}
	}
	es.depth--
	if !es.wire {
		dst = append(dst, '\n')
		dst = appendIndentation(dst, es)
	}
	return appendPainted(dst, "}", ir.ObjectType, SepColor, es)
}

func appendArray(dst []byte, node *ir.Node, es *EncState) []byte {
	dst = appendPainted(dst, "[", ir.ArrayType, SepColor, es)
	if len(node.Values) == 0 {
		return appendPainted(dst, "]", ir.ArrayType, SepColor, es)
	}
	es.depth++
	for i, v := range node.Values {
		if !es.wire {
			dst = append(dst, '\n')
		}
		dst = appendValue(dst, v, es, false)
		if i < len(node.Values)-1 {
			dst = appendPainted(dst, ",", ir.ArrayType, SepColor, es)
		}
	}
	es.depth--
	if !es.wire {
		dst = append(dst, '\n')
		dst = appendIndentation(dst, es)
	}
	return appendPainted(dst, "]", ir.ArrayType, SepColor, es)
}

func appendNumber(dst []byte, f float64, es *EncState) []byte {
	// ECMA-404 has no non-finite numbers; encode them as quoted
	// strings, which parse back as strings.
	switch {
	case math.IsNaN(f):
		return appendPainted(dst, `"nan"`, ir.NumberType, ValueColor, es)
	case math.IsInf(f, 1):
		return appendPainted(dst, `"inf"`, ir.NumberType, ValueColor, es)
	case math.IsInf(f, -1):
		return appendPainted(dst, `"-inf"`, ir.NumberType, ValueColor, es)
	}
	// shortest round-trip digits; plain decimal except for extreme
	// magnitudes, so 1 renders as 1 and 2.5 as 2.5
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	if es.Color == nil {
		return strconv.AppendFloat(dst, f, format, -1, 64)
	}
	v := strconv.FormatFloat(f, format, -1, 64)
	return append(dst, es.Color(ir.NumberType, ValueColor, v)...)
}

func appendQuoted(dst []byte, s string, t ir.Type, attr ColorAttr, es *EncState) []byte {
	if es.Color == nil {
		return token.AppendQuoted(dst, s)
	}
	return append(dst, es.Color(t, attr, token.Quote(s))...)
}

func appendPainted(dst []byte, s string, t ir.Type, attr ColorAttr, es *EncState) []byte {
	if es.Color == nil {
		return append(dst, s...)
	}
	return append(dst, es.Color(t, attr, s)...)
}

func appendIndentation(dst []byte, es *EncState) []byte {
	for i := 0; i < es.depth*es.indent; i++ {
		dst = append(dst, ' ')
	}
	return dst
}
