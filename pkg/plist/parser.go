package plist

import (
	"strconv"
	"strings"

	"github.com/mozharovsky/xcode/types"
)

// MaxSafeInteger is the largest integer value the parser will classify as
// Integer rather than falling back to String; it matches the 53-bit safe
// integer bound of a common host numeric runtime (2^53 - 1).
const MaxSafeInteger = 9007199254740991

// Parse reads Old-Style Plist text and returns the root value, which is
// always an Object or an Array.
func Parse(text string) (types.PlistValue, error) {
	tokens, err := tokenizeAll([]byte(text))
	if err != nil {
		return types.PlistValue{}, err
	}
	p := &parser{tokens: tokens}
	return p.parseHead()
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) advance() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) expect(kind TokenKind, what string) (Token, error) {
	tok, ok := p.advance()
	if !ok {
		return Token{}, errAt(p.eofOffset(), "expected %s, found end of input", what)
	}
	if tok.Kind != kind {
		return Token{}, errAt(tok.Offset, "expected %s", what)
	}
	return tok, nil
}

func (p *parser) eofOffset() int {
	if len(p.tokens) == 0 {
		return 0
	}
	return p.tokens[len(p.tokens)-1].Offset
}

func (p *parser) parseHead() (types.PlistValue, error) {
	tok, ok := p.peek()
	if !ok {
		return types.PlistValue{}, errAt(0, "empty input")
	}
	switch tok.Kind {
	case TokenOpenBrace:
		return p.parseObject()
	case TokenOpenParen:
		return p.parseArray()
	default:
		return types.PlistValue{}, errAt(tok.Offset, "expected object or array at top level")
	}
}

func (p *parser) parseObject() (types.PlistValue, error) {
	if _, err := p.expect(TokenOpenBrace, "'{'"); err != nil {
		return types.PlistValue{}, err
	}
	m := types.NewOrderedMap()
	for {
		tok, ok := p.peek()
		if !ok {
			return types.PlistValue{}, errAt(p.eofOffset(), "unterminated object")
		}
		if tok.Kind == TokenCloseBrace {
			p.pos++
			break
		}
		key, value, err := p.parseObjectItem()
		if err != nil {
			return types.PlistValue{}, err
		}
		m.Set(key, value)
	}
	return types.Object(m), nil
}

func (p *parser) parseObjectItem() (string, types.PlistValue, error) {
	key, err := p.parseIdentifierAsString()
	if err != nil {
		return "", types.PlistValue{}, err
	}
	if _, err := p.expect(TokenEquals, "'='"); err != nil {
		return "", types.PlistValue{}, err
	}
	value, err := p.parseValue()
	if err != nil {
		return "", types.PlistValue{}, err
	}
	if _, err := p.expect(TokenSemicolon, "';'"); err != nil {
		return "", types.PlistValue{}, err
	}
	return key, value, nil
}

func (p *parser) parseIdentifierAsString() (string, error) {
	tok, ok := p.advance()
	if !ok {
		return "", errAt(p.eofOffset(), "expected key, found end of input")
	}
	switch tok.Kind {
	case TokenQuotedString, TokenStringLiteral:
		return tok.Text, nil
	default:
		return "", errAt(tok.Offset, "expected key")
	}
}

func (p *parser) parseArray() (types.PlistValue, error) {
	if _, err := p.expect(TokenOpenParen, "'('"); err != nil {
		return types.PlistValue{}, err
	}
	var items []types.PlistValue
	for {
		tok, ok := p.peek()
		if !ok {
			return types.PlistValue{}, errAt(p.eofOffset(), "unterminated array")
		}
		if tok.Kind == TokenCloseParen {
			p.pos++
			break
		}
		value, err := p.parseValue()
		if err != nil {
			return types.PlistValue{}, err
		}
		items = append(items, value)
		if next, ok := p.peek(); ok && next.Kind == TokenComma {
			p.pos++
		}
	}
	return types.Array(items), nil
}

func (p *parser) parseValue() (types.PlistValue, error) {
	tok, ok := p.peek()
	if !ok {
		return types.PlistValue{}, errAt(p.eofOffset(), "expected value, found end of input")
	}
	switch tok.Kind {
	case TokenOpenBrace:
		return p.parseObject()
	case TokenOpenParen:
		return p.parseArray()
	case TokenDataLiteral:
		p.pos++
		return types.Data(tok.Data), nil
	case TokenQuotedString:
		p.pos++
		return types.String(tok.Text), nil
	case TokenStringLiteral:
		p.pos++
		return parseType(tok.Text), nil
	default:
		return types.PlistValue{}, errAt(tok.Offset, "expected value")
	}
}

// parseType applies the parser's atom type-inference rules to an unquoted
// literal: leading-zero digit strings and trailing-zero decimals stay
// String; all-digit strings within the safe-integer bound become Integer;
// other decimal-shaped literals become Float.
func parseType(literal string) types.PlistValue {
	if len(literal) > 1 && literal[0] == '0' && isAllDigits(literal) {
		return types.String(literal)
	}
	if literal != "" && isAllDigits(literal) {
		if n, err := strconv.ParseInt(literal, 10, 64); err == nil && n <= MaxSafeInteger {
			return types.Integer(n)
		}
		return types.String(literal)
	}
	if isNumericShaped(literal) {
		if strings.HasSuffix(literal, "0") && strings.Contains(literal, ".") {
			return types.String(literal)
		}
		if f, err := strconv.ParseFloat(literal, 64); err == nil && !isNaN(f) {
			return types.Float(f)
		}
	}
	return types.String(literal)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isNumericShaped(literal string) bool {
	s := literal
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" || !strings.Contains(s, ".") {
		return false
	}
	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], ""
	if len(parts) > 1 {
		fracPart = parts[1]
	}
	intOK := intPart == "" || isAllDigitsLoose(intPart)
	fracOK := fracPart == "" || isAllDigitsLoose(fracPart)
	if intPart == "" && fracPart == "" {
		return false
	}
	return intOK && fracOK
}

func isAllDigitsLoose(s string) bool {
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isNaN(f float64) bool {
	return f != f
}
