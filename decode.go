// SPDX-License-Identifier: MIT

// Package matrixmarket: per-kind element decoding.
// decodeValue turns one value token group (zero tokens for pattern, one
// for integer/real, two for complex) into the caller's element type T,
// after fieldAssignable has admitted the field/T pairing once per parse.
// Numeric failures map onto two sentinels: syntax → ErrMalformedNumber,
// range relative to T → ErrValueOutOfRange.
package matrixmarket

import (
	"errors"
	"strconv"
)

// unitValue returns the implicit stored magnitude for pattern entries:
// one, in the caller's element type.
func unitValue[T Element]() T {
	var v T
	switch p := any(&v).(type) {
	case *int:
		*p = 1
	case *int32:
		*p = 1
	case *int64:
		*p = 1
	case *float32:
		*p = 1
	case *float64:
		*p = 1
	case *complex64:
		*p = 1
	case *complex128:
		*p = 1
	}

	return v
}

// decodeValue decodes one value token group under the declared field.
// toks holds exactly tokensPerValue(field) tokens; the caller has
// already enforced the count.
func decodeValue[T Element](field FieldKind, toks []string, line int) (T, error) {
	var zero T
	switch field {
	case FieldPattern:
		return unitValue[T](), nil
	case FieldInteger:
		return decodeInteger[T](toks[0], line)
	case FieldReal:
		return decodeReal[T](toks[0], line)
	case FieldComplex:
		return decodeComplex[T](toks[0], toks[1], line)
	default:
		return zero, parseErrf(line, "", ErrKindMismatch)
	}
}

// numberErr classifies a strconv failure: out-of-range values parsed but
// do not fit, everything else is a syntax failure.
func numberErr(tok string, line int, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return parseErrf(line, tok, ErrValueOutOfRange)
	}

	return parseErrf(line, tok, ErrMalformedNumber)
}

// decodeInteger parses a signed decimal token into T. Integer targets
// take their own width as the overflow bound; floating and complex
// targets widen, so a literal beyond int64 still succeeds there as long
// as it fits the target's floating range.
func decodeInteger[T Element](tok string, line int) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *int:
		n, err := strconv.ParseInt(tok, 10, strconv.IntSize)
		if err != nil {
			return v, numberErr(tok, line, err)
		}
		*p = int(n)
	case *int32:
		n, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return v, numberErr(tok, line, err)
		}
		*p = int32(n)
	case *int64:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return v, numberErr(tok, line, err)
		}
		*p = n
	default:
		// Widening targets: validate integer syntax first, then parse
		// the magnitude on the floating path so huge literals survive.
		if _, err := strconv.ParseInt(tok, 10, 64); err != nil && !errors.Is(err, strconv.ErrRange) {
			return v, numberErr(tok, line, err)
		}
		return decodeReal[T](tok, line)
	}

	return v, nil
}

// decodeReal parses one floating token (decimal or exponential notation)
// into T. float32/complex64 parse at 32-bit precision so overflow is
// judged against the target's own range; integer targets are unreachable
// here because fieldAssignable rejects real→integer before data parsing.
func decodeReal[T Element](tok string, line int) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *float32:
		f, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return v, numberErr(tok, line, err)
		}
		*p = float32(f)
	case *float64:
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return v, numberErr(tok, line, err)
		}
		*p = f
	case *complex64:
		f, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return v, numberErr(tok, line, err)
		}
		*p = complex(float32(f), 0)
	case *complex128:
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return v, numberErr(tok, line, err)
		}
		*p = complex(f, 0)
	default:
		return v, parseErrf(line, tok, ErrKindMismatch)
	}

	return v, nil
}

// decodeComplex parses the (real, imaginary) token pair into a complex
// T. Only complex targets are assignable from a complex field.
func decodeComplex[T Element](reTok, imTok string, line int) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *complex64:
		re, err := strconv.ParseFloat(reTok, 32)
		if err != nil {
			return v, numberErr(reTok, line, err)
		}
		im, err := strconv.ParseFloat(imTok, 32)
		if err != nil {
			return v, numberErr(imTok, line, err)
		}
		*p = complex(float32(re), float32(im))
	case *complex128:
		re, err := strconv.ParseFloat(reTok, 64)
		if err != nil {
			return v, numberErr(reTok, line, err)
		}
		im, err := strconv.ParseFloat(imTok, 64)
		if err != nil {
			return v, numberErr(imTok, line, err)
		}
		*p = complex(re, im)
	default:
		return v, parseErrf(line, reTok, ErrKindMismatch)
	}

	return v, nil
}
