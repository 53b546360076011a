// SPDX-License-Identifier: MIT
// Package matrixmarket: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the ParseError
// context wrapper. All parsing and serialization paths MUST return these
// sentinels and tests MUST check them via errors.Is. No code path panics
// on malformed input; panics are reserved for programmer errors in option
// constructors.

package matrixmarket

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrixmarket: ..." for consistency and
// to allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with a *ParseError or
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will still
// use errors.Is to match.

var (
	// ErrInvalidHeader is returned when the banner line is missing, has the
	// wrong token count, or carries an unrecognized format/field/symmetry
	// token. The header is never silently defaulted.
	ErrInvalidHeader = errors.New("matrixmarket: invalid header")

	// ErrInvalidDimensions is returned when the dimension line has the wrong
	// token count for the declared format, a non-integer token, or a
	// negative value.
	ErrInvalidDimensions = errors.New("matrixmarket: invalid dimensions")

	// ErrDimensionMismatch indicates dimensions that conflict with the rest
	// of the file or value: nnz exceeding rows*cols, a non-square shape
	// under a non-general symmetry class, or a value sequence whose length
	// disagrees with the declared shape at construction time.
	ErrDimensionMismatch = errors.New("matrixmarket: dimension mismatch")

	// ErrMalformedNumber indicates a token that failed numeric parsing where
	// an integer or floating value was required.
	ErrMalformedNumber = errors.New("matrixmarket: malformed number")

	// ErrValueOutOfRange indicates a numeric token that parsed but does not
	// fit the caller's element type (e.g. an integer literal overflowing
	// int32).
	ErrValueOutOfRange = errors.New("matrixmarket: value out of range")

	// ErrKindMismatch indicates an element-kind conflict: parsing a file
	// into an element type narrower than its declared field, or serializing
	// stored values that cannot be rendered under the declared field
	// (nonzero imaginary part under a real field, fractional value under an
	// integer field).
	ErrKindMismatch = errors.New("matrixmarket: element kind mismatch")

	// ErrIndexOutOfBounds indicates a coordinate entry whose 1-based row or
	// column lies outside the declared shape.
	ErrIndexOutOfBounds = errors.New("matrixmarket: index out of bounds")

	// ErrUnexpectedEOF indicates input that ended before the declared entry
	// count was satisfied (or contained no logical lines at all).
	ErrUnexpectedEOF = errors.New("matrixmarket: unexpected end of input")

	// ErrInvalidFormat indicates a structurally malformed data section: a
	// data line with the wrong token count for the declared field, or
	// logical lines beyond the declared entry count.
	ErrInvalidFormat = errors.New("matrixmarket: invalid format")

	// ErrUnsupportedLayout marks an accessor that is not defined for the
	// matrix layout at hand (e.g. At on a coordinate or reduced-triangle
	// matrix).
	ErrUnsupportedLayout = errors.New("matrixmarket: unsupported layout")

	// ErrNilMatrix indicates that a nil *Matrix was passed to Serialize or
	// another consumer.
	ErrNilMatrix = errors.New("matrixmarket: nil matrix")
)

// ParseError carries the source context of a parse failure: the 1-based
// physical line number and the offending token (or the whole line when no
// single token is at fault). It unwraps to one of the package sentinels,
// so both errors.Is and errors.As work:
//
//	var perr *matrixmarket.ParseError
//	if errors.As(err, &perr) {
//	    log.Printf("line %d: %q", perr.Line, perr.Token)
//	}
type ParseError struct {
	Line  int    // 1-based physical line number in the input
	Token string // offending token or line; may be empty (e.g. EOF)
	Err   error  // one of the package sentinels
}

// Error renders the full context in one line.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("line %d: token %q: %v", e.Line, e.Token, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is matching.
func (e *ParseError) Unwrap() error { return e.Err }

// parseErrf builds a *ParseError around a sentinel. Internal call sites
// use it instead of fmt.Errorf so every parse failure carries uniform
// line/token context.
func parseErrf(line int, token string, err error) error {
	return &ParseError{Line: line, Token: token, Err: err}
}

// opErrorf wraps an underlying error with the given operation tag.
// Used for non-positional failures (construction, serialization, IO) to
// maintain consistent labeling of sentinel violations.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
