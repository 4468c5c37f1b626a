// Package ir defines the jx document model: a recursive tagged union
// representing any JSON value.
//
// # Node Structure
//
// A Node holds exactly one of six kinds at a time, selected by its
// Type field:
//
//   - NullType: null (the zero Node)
//   - BoolType: true/false in Bool
//   - NumberType: a float64 in Number. JSON makes no integer/float
//     distinction and neither does jx; integers beyond 2^53 lose
//     precision. This is a deliberate, documented simplification.
//   - StringType: owned text in String
//   - ArrayType: ordered children in Values
//   - ObjectType: parallel Fields/Values slices kept sorted by key
//
// Switching a node to another kind (SetString, SetFloat, ...) fully
// discards the previous payload.
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key of Values[i]. The slices
// are maintained in ascending key order, so lookups are binary
// searches on the borrowed key string with no allocation, and keys
// are unique: Set on an existing key replaces its value.
//
// # Ownership
//
// Children are owned exclusively by their parent; destroying a tree
// is ordinary garbage collection. Clone is the only way to share
// content between trees, and it copies. Nodes are not safe for
// concurrent mutation; callers synchronize externally.
//
// # Accessors
//
// Is reports the active kind. The checked accessors (Text, Float,
// Truth, Items, Entries) return ErrTypeMismatch on the wrong kind.
// Because the payload fields are exported, the "check and read"
// optional form needs no helper:
//
//	if n.Type == ir.StringType {
//	    use(n.String)
//	}
//
// Child is the mutable object subscript and auto-vivifies: on a Null
// receiver it first turns the node into an empty object, and a
// missing key inserts a Null child. Get is the read-only lookup and
// returns nil when absent. At never inserts and errors when absent.
//
// # Related Packages
//
//   - github.com/signadot/jx/parse - parses text into Node trees
//   - github.com/signadot/jx/encode - encodes Node trees to text
//   - github.com/signadot/jx/gomap - converts Go values to and from Nodes
package ir
