package encode

type EncodeOption func(*EncState)

// Wire selects minimized output: no insignificant whitespace at all.
func Wire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// Indent sets the spaces per nesting level in pretty mode (default 4).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting nesting depth, for embedding output in
// already-indented surroundings.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// WithColors turns on terminal colors. Colored output is for humans;
// it is not valid parser input.
func WithColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
