package compose

import (
	"errors"
	"fmt"

	"github.com/npillmayer/figtype/core"
)

// ErrorKind classifies rendering errors.
type ErrorKind int

// Kinds of errors reported by Render.
const (
	UnknownCharacterNoFallback ErrorKind = iota + 1
	InputTooLong
	EmptyFont
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownCharacterNoFallback:
		return "unknown character"
	case InputTooLong:
		return "input too long"
	case EmptyFont:
		return "empty font or input"
	}
	return "unknown render error"
}

// RenderError is returned by Render. Position is the index of the offending
// code point within the input, CodePoint its value. For InputTooLong,
// Position is the length of the input and Limit the configured maximum.
type RenderError struct {
	Kind      ErrorKind
	Position  int
	CodePoint rune
	Limit     int
}

func (e *RenderError) Error() string {
	switch e.Kind {
	case UnknownCharacterNoFallback:
		return fmt.Sprintf("render: %s %U at position %d", e.Kind, e.CodePoint, e.Position)
	case InputTooLong:
		return fmt.Sprintf("render: %s: %d code points exceed limit of %d", e.Kind,
			e.Position, e.Limit)
	}
	return "render: " + e.Kind.String()
}

// ErrorCode is part of interface core.AppError.
func (e *RenderError) ErrorCode() int {
	switch e.Kind {
	case UnknownCharacterNoFallback:
		return core.EMISSING
	case InputTooLong:
		return core.ELIMIT
	}
	return core.EINVALID
}

// UserMessage is part of interface core.AppError.
func (e *RenderError) UserMessage() string {
	switch e.Kind {
	case UnknownCharacterNoFallback:
		return fmt.Sprintf("font has no glyph for %q", e.CodePoint)
	case InputTooLong:
		return fmt.Sprintf("text is too long (max. %d characters)", e.Limit)
	}
	return "nothing to render"
}

var _ core.AppError = &RenderError{}

// IsKind is a predicate: is err a rendering error of the given kind?
func IsKind(err error, kind ErrorKind) bool {
	var rerr *RenderError
	if errors.As(err, &rerr) {
		return rerr.Kind == kind
	}
	return false
}
