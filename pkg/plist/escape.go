package plist

import (
	"strings"
	"unicode/utf8"
)

// nextStepMappings maps NeXTSTEP extended-ASCII bytes (0x80-0xFF) to their
// Unicode code points. Old-Style Plist files occasionally encode non-ASCII
// text as \NNN octal escapes of the original NeXTSTEP-encoded byte rather
// than as UTF-8, so the decoder remaps any octal escape >= 0x80 through
// this table.
var nextStepMappings = map[byte]rune{
	0x80: 0x00a0, 0x81: 0x00c0, 0x82: 0x00c1, 0x83: 0x00c2,
	0x84: 0x00c3, 0x85: 0x00c4, 0x86: 0x00c5, 0x87: 0x00c7,
	0x88: 0x00c8, 0x89: 0x00c9, 0x8a: 0x00ca, 0x8b: 0x00cb,
	0x8c: 0x00cc, 0x8d: 0x00cd, 0x8e: 0x00ce, 0x8f: 0x00cf,
	0x90: 0x00d0, 0x91: 0x00d1, 0x92: 0x00d2, 0x93: 0x00d3,
	0x94: 0x00d4, 0x95: 0x00d5, 0x96: 0x00d6, 0x97: 0x00d9,
	0x98: 0x00da, 0x99: 0x00db, 0x9a: 0x00dc, 0x9b: 0x00dd,
	0x9c: 0x00de, 0x9d: 0x00b5, 0x9e: 0x00d7, 0x9f: 0x00f7,
	0xa0: 0x00a9, 0xa1: 0x00a1, 0xa2: 0x00a2, 0xa3: 0x00a3,
	0xa4: 0x2044, 0xa5: 0x00a5, 0xa6: 0x0192, 0xa7: 0x00a7,
	0xa8: 0x00a4, 0xa9: 0x2019, 0xaa: 0x201c, 0xab: 0x00ab,
	0xac: 0x2039, 0xad: 0x203a, 0xae: 0xfb01, 0xaf: 0xfb02,
	0xb0: 0x00ae, 0xb1: 0x2013, 0xb2: 0x2020, 0xb3: 0x2021,
	0xb4: 0x00b7, 0xb5: 0x00a6, 0xb6: 0x00b6, 0xb7: 0x2022,
	0xb8: 0x201a, 0xb9: 0x201e, 0xba: 0x201d, 0xbb: 0x00bb,
	0xbc: 0x2026, 0xbd: 0x2030, 0xbe: 0x00ac, 0xbf: 0x00bf,
	0xc0: 0x00b9, 0xc1: 0x02cb, 0xc2: 0x00b4, 0xc3: 0x02c6,
	0xc4: 0x02dc, 0xc5: 0x00af, 0xc6: 0x02d8, 0xc7: 0x02d9,
	0xc8: 0x00a8, 0xc9: 0x00b2, 0xca: 0x02da, 0xcb: 0x00b8,
	0xcc: 0x00b3, 0xcd: 0x02dd, 0xce: 0x02db, 0xcf: 0x02c7,
	0xd0: 0x2014, 0xd1: 0x00b1, 0xd2: 0x00bc, 0xd3: 0x00bd,
	0xd4: 0x00be, 0xd5: 0x00e0, 0xd6: 0x00e1, 0xd7: 0x00e2,
	0xd8: 0x00e3, 0xd9: 0x00e4, 0xda: 0x00e5, 0xdb: 0x00e7,
	0xdc: 0x00e8, 0xdd: 0x00e9, 0xde: 0x00ea, 0xdf: 0x00eb,
	0xe0: 0x00ec, 0xe1: 0x00c6, 0xe2: 0x00ed, 0xe3: 0x00aa,
	0xe4: 0x00ee, 0xe5: 0x00ef, 0xe6: 0x00f0, 0xe7: 0x00f1,
	0xe8: 0x0141, 0xe9: 0x00d8, 0xea: 0x0152, 0xeb: 0x00ba,
	0xec: 0x00f2, 0xed: 0x00f3, 0xee: 0x00f4, 0xef: 0x00f5,
	0xf0: 0x00f6, 0xf1: 0x00e6, 0xf2: 0x00f9, 0xf3: 0x00fa,
	0xf4: 0x00fb, 0xf5: 0x0131, 0xf6: 0x00fc, 0xf7: 0x00fd,
	0xf8: 0x0142, 0xf9: 0x00f8, 0xfa: 0x0153, 0xfb: 0x00df,
	0xfc: 0x00fe, 0xfd: 0x00ff, 0xfe: 0xfffd, 0xff: 0xfffd,
}

func nextStepToUnicode(code rune) rune {
	if code < 0x80 || code > 0xff {
		return code
	}
	if r, ok := nextStepMappings[byte(code)]; ok {
		return r
	}
	return code
}

// unescapeString decodes the inner text of a quoted string literal,
// resolving \a\b\f\n\r\t\v\"\'\\, \<newline>, \Uxxxx (4 hex digits), and
// \NNN (1-3 octal digits, NeXTSTEP-remapped when >= 0x80). An unrecognized
// escape passes both the backslash and the following byte through
// unchanged.
func unescapeString(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	i := 0
	for i < len(input) {
		c := input[i]
		if c != '\\' {
			r, size := utf8.DecodeRuneInString(input[i:])
			b.WriteRune(r)
			i += size
			continue
		}
		if i+1 >= len(input) {
			b.WriteByte('\\')
			i++
			continue
		}
		next := input[i+1]
		switch next {
		case 'a':
			b.WriteByte(0x07)
			i += 2
		case 'b':
			b.WriteByte(0x08)
			i += 2
		case 'f':
			b.WriteByte(0x0C)
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'v':
			b.WriteByte(0x0B)
			i += 2
		case '"':
			b.WriteByte('"')
			i += 2
		case '\'':
			b.WriteByte('\'')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '\n':
			b.WriteByte('\n')
			i += 2
		case 'U':
			if i+5 < len(input) && isHex4(input[i+2:i+6]) {
				code := parseHex(input[i+2 : i+6])
				b.WriteRune(rune(code))
				i += 6
			} else {
				b.WriteByte('\\')
				i++
			}
		default:
			if next >= '0' && next <= '7' {
				j := i + 1
				limit := i + 4
				if limit > len(input) {
					limit = len(input)
				}
				for j < limit && input[j] >= '0' && input[j] <= '7' {
					j++
				}
				octal := input[i+1 : j]
				code := parseOctal(octal)
				if code >= 0x80 {
					code = int(nextStepToUnicode(rune(code)))
				}
				b.WriteRune(rune(code))
				i = j
			} else {
				b.WriteByte('\\')
				b.WriteByte(next)
				i += 2
			}
		}
	}
	return b.String()
}

func isHex4(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if !isHexByte(byte(c)) {
			return false
		}
	}
	return true
}

func isHexByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}

func parseHex(s string) int {
	n := 0
	for _, c := range []byte(s) {
		n *= 16
		switch {
		case c >= '0' && c <= '9':
			n += int(c - '0')
		case c >= 'a' && c <= 'f':
			n += int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			n += int(c-'A') + 10
		}
	}
	return n
}

func parseOctal(s string) int {
	n := 0
	for _, c := range []byte(s) {
		n = n*8 + int(c-'0')
	}
	return n
}

// escapeString applies the minimal escape set the writer emits: named
// single-character escapes, \Uxxxx (lowercase hex) for control characters
// below 0x20 other than the literal newline, and everything else verbatim
// (including high-bit UTF-8 text, which is never re-encoded to octal).
func escapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case 0x07:
			b.WriteString(`\a`)
		case 0x08:
			b.WriteString(`\b`)
		case 0x0C:
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0x0B:
			b.WriteString(`\v`)
		case '\n':
			b.WriteByte('\n')
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if r < 0x20 {
				b.WriteString(formatUEscape(r))
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func formatUEscape(r rune) string {
	const hexDigits = "0123456789abcdef"
	buf := [6]byte{'\\', 'U', '0', '0', '0', '0'}
	v := uint16(r)
	for i := 5; i >= 2; i-- {
		buf[i] = hexDigits[v&0xf]
		v >>= 4
	}
	return string(buf[:])
}
