// Package textdiff renders line-oriented diffs between two document
// encodings.
package textdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the cleaned-up edit script from from to to.
func Diff(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// Pretty renders the diff with terminal colors (insertions green,
// deletions red).
func Pretty(from, to string) string {
	diffCfg := diffpatch.New()
	return diffCfg.DiffPrettyText(Diff(from, to))
}