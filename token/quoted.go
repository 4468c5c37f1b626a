package token

// AppendQuoted appends s to dst as a quoted JSON string. Runs of
// bytes that need no escape are appended in one copy rather than byte
// by byte.
func AppendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		esc := escapeOf[s[i]]
		if esc == 0 {
			continue
		}
		dst = append(dst, s[start:i]...)
		dst = append(dst, '\\', esc)
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

// Quote returns s as a quoted JSON string.
func Quote(s string) string {
	return string(AppendQuoted(make([]byte, 0, len(s)+2), s))
}

// Unquote reads a quoted string at the start of d (d[0] must be '"')
// and returns its value together with the number of bytes consumed,
// including both quotes. On failure the returned int is the offset of
// the offending byte within d.
func Unquote(d []byte) (string, int, error) {
	buf := []byte{}
	i := 1
	start := i
	for i < len(d) {
		switch d[i] {
		case '"':
			if len(buf) == 0 {
				return string(d[start:i]), i + 1, nil
			}
			buf = append(buf, d[start:i]...)
			return string(buf), i + 1, nil
		case '\\':
			buf = append(buf, d[start:i]...)
			i++
			if i == len(d) {
				return "", i, ErrEscapeEnd
			}
			if d[i] == 'u' {
				return "", i, ErrEscapeU
			}
			r := unescapeOf[d[i]]
			if r == 0 {
				return "", i, ErrEscape
			}
			buf = append(buf, r)
			i++
			start = i
		default:
			i++
		}
	}
	return "", i, ErrStringEnd
}
