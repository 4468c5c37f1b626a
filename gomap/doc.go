// Package gomap converts between native Go values and ir.Node trees
// by reflection.
//
// When a source type plausibly fits several JSON categories, the
// dispatch priority is fixed and documented rather than left to
// accident:
//
//	string-like > object-like > array-like > bool-like > null-like > numeric-like
//
// Concretely: strings, []byte, []rune and encoding.TextMarshaler
// convert as strings (so a byte slice is never an array of numbers);
// maps and structs as objects; other slices and arrays as arrays;
// bools as bools; nil pointers, nil interfaces and nil maps/slices as
// null; all numeric kinds as float64 numbers.
package gomap
