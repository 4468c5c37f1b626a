package token

// Kind classifies a value-start byte for parser dispatch.
type Kind int

const (
	KInvalid Kind = iota
	KObject
	KArray
	KString
	KNumber
	KTrue
	KFalse
	KNull
)

func (k Kind) String() string {
	return map[Kind]string{
		KInvalid: "KInvalid",
		KObject:  "KObject",
		KArray:   "KArray",
		KString:  "KString",
		KNumber:  "KNumber",
		KTrue:    "KTrue",
		KFalse:   "KFalse",
		KNull:    "KNull",
	}[k]
}

// escapeOf maps a raw byte to the escape letter it must be written
// with, or 0 when the byte passes through unescaped. The forward
// slash is absent on purpose: the grammar permits escaping it but the
// output stays more compact without.
var escapeOf = func() [256]byte {
	var t [256]byte
	t['"'] = '"'
	t['\\'] = '\\'
	t['\b'] = 'b'
	t['\f'] = 'f'
	t['\n'] = 'n'
	t['\r'] = 'r'
	t['\t'] = 't'
	return t
}()

// unescapeOf maps the letter after a backslash to its replacement
// byte, or 0 when the escape is invalid. 'u' stays 0: unicode escape
// sequences are not supported and must fail the parse.
var unescapeOf = func() [256]byte {
	var t [256]byte
	t['"'] = '"'
	t['\\'] = '\\'
	t['/'] = '/'
	t['b'] = '\b'
	t['f'] = '\f'
	t['n'] = '\n'
	t['r'] = '\r'
	t['t'] = '\t'
	return t
}()

// startOf maps a value-start byte to its parse branch.
var startOf = func() [256]Kind {
	var t [256]Kind
	t['{'] = KObject
	t['['] = KArray
	t['"'] = KString
	for c := '0'; c <= '9'; c++ {
		t[c] = KNumber
	}
	t['-'] = KNumber
	t['t'] = KTrue
	t['f'] = KFalse
	t['n'] = KNull
	return t
}()

// spaceOf marks the insignificant whitespace bytes.
var spaceOf = func() [256]bool {
	var t [256]bool
	t[' '] = true
	t['\t'] = true
	t['\r'] = true
	t['\n'] = true
	return t
}()

func StartOf(c byte) Kind { return startOf[c] }

func IsSpace(c byte) bool { return spaceOf[c] }

// EscapeOf returns the escape letter for c, or 0 when c needs none.
func EscapeOf(c byte) byte { return escapeOf[c] }

// UnescapeOf returns the byte an escape letter stands for, or 0 when
// the letter is not a supported escape.
func UnescapeOf(c byte) byte { return unescapeOf[c] }
