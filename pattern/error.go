package pattern

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is the single parse failure kind. Every *Error unwraps
// to it, so callers can test with errors.Is.
var ErrInvalidPattern = errors.New("invalid pattern")

// ErrorCode says which grammar rule a pattern broke.
type ErrorCode uint8

const (
	// CodeEmpty: the pattern has no atom at all.
	CodeEmpty ErrorCode = iota + 1

	// CodeLeadingOperator: the pattern starts with '*', '+' or '|',
	// leaving nothing to repeat or alternate from.
	CodeLeadingOperator

	// CodeUnbalanced: the net count of '[', '(', '{' against ']', ')', '}'
	// does not return to zero.
	CodeUnbalanced

	// CodeUnexpectedMeta: a metacharacter (or the end of the pattern) sits
	// where an atomic pattern is expected.
	CodeUnexpectedMeta

	// CodeTrailing: input is left over after the top-level production.
	CodeTrailing
)

// String returns a short description of the code.
func (c ErrorCode) String() string {
	switch c {
	case CodeEmpty:
		return "empty pattern"
	case CodeLeadingOperator:
		return "missing operand for leading operator"
	case CodeUnbalanced:
		return "unbalanced brackets"
	case CodeUnexpectedMeta:
		return "unexpected metacharacter"
	case CodeTrailing:
		return "unexpected trailing input"
	default:
		return fmt.Sprintf("ErrorCode(%d)", uint8(c))
	}
}

// Error describes where and why a pattern failed to parse.
type Error struct {
	Code    ErrorCode
	Pattern string
	Offset  int // byte offset of the offending position
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s at offset %d", e.Pattern, e.Code, e.Offset)
}

// Unwrap returns ErrInvalidPattern
func (e *Error) Unwrap() error {
	return ErrInvalidPattern
}
