// Package encode renders ir.Node trees as JSON text in one of two
// modes: pretty (4-space indentation, one member per line) or wire
// (minimized, no insignificant whitespace). Optional terminal colors
// decorate the pretty output; colored output is not parseable JSON.
//
// Non-finite numbers have no ECMA-404 representation and encode as
// the quoted strings "nan", "inf" and "-inf". This is deliberate and
// lossy: such values round-trip as strings.
package encode
