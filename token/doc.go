// Package token provides the byte-level primitives shared by the jx
// parser and encoder: position tracking, the escape and dispatch
// lookup tables, string quoting, and numeric prefix scanning.
package token
