// Package parse provides jx parsing support: a recursive-descent
// reader over a complete in-memory buffer, dispatching on the first
// significant byte and threading an explicit cursor.
//
// Every failure wraps ErrParse and carries a token.Pos naming the
// byte offset (and where relevant the offending byte), and aborts the
// whole parse; there is no recovery and no partial tree.
//
// Two deliberate deviations from strict ECMA-404 are contractual:
// \uXXXX escapes are not decoded (they are a parse error), and the
// encoder's quoted non-finite numbers ("nan", "inf", "-inf") parse
// back as plain strings.
package parse
