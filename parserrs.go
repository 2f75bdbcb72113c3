package crunch

import "strconv"

// ParseErrorCode classifies parse errors.
type ParseErrorCode int

const (
	// UnexpectedToken indicates a token that cannot appear at its position.
	UnexpectedToken ParseErrorCode = iota + 1
	// UnexpectedEOF indicates input that ended where a term was required.
	UnexpectedEOF
	// ExpectedClosingDelimiter indicates an unmatched '(' or '|'.
	ExpectedClosingDelimiter
)

func (c ParseErrorCode) String() string {
	switch c {
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEOF:
		return "unexpected end of input"
	case ExpectedClosingDelimiter:
		return "expected closing delimiter"
	}
	return "ParseErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// ParseError indicates malformed input to the parser. It implements
// InputError.
type ParseError struct {
	Code ParseErrorCode
	// Text is the offending token's text, if any.
	Text string
	// At is the byte span of the offending token. For UnexpectedEOF it is a
	// synthetic span one past the end of the input.
	At Span
}

func (err *ParseError) Error() string {
	if err.Text == "" {
		return errspan(err.At, err.Code.String())
	}
	return errspan(err.At, err.Code.String()+": "+strconv.Quote(err.Text))
}

func (err *ParseError) Span() Span {
	return err.At
}

// errspan is a shortcut to create an error message with a source range.
func errspan(at Span, msg string) string {
	return strconv.Itoa(at.Start) + ".." + strconv.Itoa(at.End) + ": " + msg
}

// InputError is an error with source position information. Every error
// resulting from invalid input text implements InputError.
type InputError interface {
	error
	// Span returns the byte range of the offending input.
	Span() Span
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
)
