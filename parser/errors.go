/*
File    : ego/parser/errors.go
*/
package parser

import "fmt"

// ParseError is raised by the scanner or parser for any malformed input:
// unexpected tokens, unexpected end of input, a missing delimiter, or a
// missing identifier. It propagates to the caller without local recovery,
// matching spec.md §7's "no try/catch surface" policy — Go expresses this
// as a returned error rather than the source's thrown C++ exception.
type ParseError struct {
	msg string
}

func newParseError(format string, a ...interface{}) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, a...)}
}

func (e *ParseError) Error() string {
	return "error while parsing: " + e.msg
}
