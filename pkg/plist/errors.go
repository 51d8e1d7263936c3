package plist

import "fmt"

// SyntaxError reports a lex or parse failure at a specific byte offset (or
// token position) within the source text.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("plist: %s at offset %d", e.Message, e.Offset)
}

func errAt(offset int, format string, args ...any) error {
	return &SyntaxError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}
