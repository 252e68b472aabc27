package font

import (
	"errors"
	"fmt"

	"github.com/npillmayer/figtype/core"
)

// ErrorKind classifies font parsing errors.
type ErrorKind int

// Kinds of errors the FIGfont parser reports.
const (
	MalformedHeader ErrorKind = iota + 1
	UnexpectedEndOfInput
	InvalidGlyphRowCount
	UnknownLayoutCode
	InvalidCodeTag
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedHeader:
		return "malformed header"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case InvalidGlyphRowCount:
		return "invalid glyph row count"
	case UnknownLayoutCode:
		return "unknown layout code"
	case InvalidCodeTag:
		return "invalid code tag"
	}
	return "unknown font error"
}

// ParseError is returned for malformed font data.
// Line is 1-based; it is 0 for fonts constructed with NewFont.
type ParseError struct {
	Kind ErrorKind
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("FIGfont %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("FIGfont %s in line %d: %s", e.Kind, e.Line, e.Msg)
}

// ErrorCode is part of interface core.AppError.
func (e *ParseError) ErrorCode() int {
	return core.EFORMAT
}

// UserMessage is part of interface core.AppError.
func (e *ParseError) UserMessage() string {
	return e.Error()
}

var _ core.AppError = &ParseError{}

func parseErr(kind ErrorKind, line int, format string, v ...interface{}) *ParseError {
	err := &ParseError{
		Kind: kind,
		Line: line,
		Msg:  fmt.Sprintf(format, v...),
	}
	tracer().Errorf("%s", err.Error())
	return err
}

// IsKind is a predicate: is err a font parsing error of the given kind?
func IsKind(err error, kind ErrorKind) bool {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Kind == kind
	}
	return false
}
