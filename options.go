// SPDX-License-Identifier: MIT

// Package matrixmarket: functional configuration for serialization.
// This file defines:
//   - WriteOption / WriteOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical
//     values — programmer error, not data error),
//   - NewWriteOptions helper that gathers options and enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, options are per-call.
//   - No dead switches: each knob impacts output and is covered by tests.
//   - Parsing takes no options on purpose: the format fully determines
//     how input must be read, so there is nothing to configure.
package matrixmarket

import "strings"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultPrecision is the strconv.FormatFloat precision used for real
	// and complex tokens. -1 selects the smallest number of digits that
	// parses back to the same value, which is what the round-trip
	// guarantee relies on.
	DefaultPrecision = -1
)

// WriteOptions carries the gathered serialization knobs. Fields are
// unexported; public APIs consume ...WriteOption.
type WriteOptions struct {
	precision int
	comments  []string
	field     FieldKind
	fieldSet  bool
}

// WriteOption mutates WriteOptions during gathering.
type WriteOption func(*WriteOptions)

// NewWriteOptions applies opts over the documented defaults.
// Exported so callers can pre-build and reuse an option set.
func NewWriteOptions(opts ...WriteOption) WriteOptions {
	o := WriteOptions{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithPrecision fixes the digit count of floating tokens (the prec
// argument of strconv.FormatFloat). p must be -1 (shortest
// round-trip) or non-negative; anything else panics.
//
// Note: a fixed precision below the type's round-trip digit count
// weakens the parse∘serialize identity — keep DefaultPrecision when
// exact round trips matter.
func WithPrecision(p int) WriteOption {
	if p < -1 {
		panic("matrixmarket: WithPrecision: precision must be -1 or >= 0")
	}

	return func(o *WriteOptions) { o.precision = p }
}

// WithComment appends one %-comment line emitted between the banner and
// the dimension line. The marker and separating space are added by the
// writer; line must not contain a line break (panics — a multi-line
// comment is two WithComment options).
func WithComment(line string) WriteOption {
	if strings.ContainsAny(line, "\r\n") {
		panic("matrixmarket: WithComment: comment must be a single line")
	}

	return func(o *WriteOptions) { o.comments = append(o.comments, line) }
}

// WithField serializes under the given field instead of the matrix's
// own. The stored values must be representable under it: a fractional
// value under FieldInteger or a nonzero imaginary part under
// FieldReal/FieldInteger fails with ErrKindMismatch, as does
// FieldPattern on an array matrix (the layout has no value-less form).
// Downgrading a coordinate matrix to FieldPattern drops the magnitudes
// and keeps the positions.
func WithField(f FieldKind) WriteOption {
	return func(o *WriteOptions) {
		o.field = f
		o.fieldSet = true
	}
}
