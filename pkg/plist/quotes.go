package plist

// isSafeUnquoted reports whether s can be written without surrounding
// quotes: non-empty and every byte in [A-Za-z0-9_$/:.]. Note this is
// stricter than the lexer's unquoted-literal charset: the writer
// deliberately excludes the hyphen so that values like "foo-bar" always
// round-trip through an explicitly quoted token.
func isSafeUnquoted(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isWriterSafeByte(s[i]) {
			return false
		}
	}
	return true
}

func isWriterSafeByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '$' || c == '/' || c == ':' || c == '.':
		return true
	default:
		return false
	}
}

// ensureQuotes escapes s and wraps it in double quotes unless the escaped
// form is safe to emit bare.
func ensureQuotes(s string) string {
	escaped := escapeString(s)
	if isSafeUnquoted(escaped) {
		return escaped
	}
	return `"` + escaped + `"`
}

// formatData renders a Data literal as uppercase hex wrapped in angle
// brackets, with no intra-literal whitespace.
func formatData(data []byte) string {
	const hexDigits = "0123456789ABCDEF"
	buf := make([]byte, 0, len(data)*2+2)
	buf = append(buf, '<')
	for _, b := range data {
		buf = append(buf, hexDigits[b>>4], hexDigits[b&0xf])
	}
	buf = append(buf, '>')
	return string(buf)
}

func needsEscaping(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c == '"' || c == '\\' || c == 0x7F {
			return true
		}
	}
	return false
}

// writeEnsureQuotesTo appends value to buf, quoting it only when the raw
// bytes are not already safe-unquoted.
func writeEnsureQuotesTo(buf *[]byte, value string) {
	if isSafeUnquoted(value) && !needsEscaping(value) {
		*buf = append(*buf, value...)
		return
	}
	if isSafeUnquoted(value) {
		*buf = append(*buf, escapeString(value)...)
		return
	}
	*buf = append(*buf, '"')
	*buf = append(*buf, escapeString(value)...)
	*buf = append(*buf, '"')
}
