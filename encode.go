// SPDX-License-Identifier: MIT

// Package matrixmarket: per-kind element encoding.
// encodeValue renders one stored value as the minimal correct token
// group for the declared field — the exact inverse of decodeValue. A
// value the field cannot represent losslessly (fractional magnitude
// under integer, nonzero imaginary part under a non-complex field)
// fails with ErrKindMismatch rather than being coerced.
package matrixmarket

import (
	"math"
	"strconv"
)

// encodeValue renders v under field as a data-line fragment: "" for
// pattern, one token for integer/real, two space-separated tokens for
// complex. prec is the strconv.FormatFloat precision (DefaultPrecision
// means shortest round-trip).
func encodeValue[T Element](field FieldKind, v T, prec int) (string, error) {
	switch field {
	case FieldPattern:
		return "", nil
	case FieldInteger:
		n, err := asInt64(v)
		if err != nil {
			return "", err
		}

		return strconv.FormatInt(n, 10), nil
	case FieldReal:
		re, im, bits := parts(v)
		if im != 0 {
			return "", ErrKindMismatch
		}

		return strconv.FormatFloat(re, 'g', prec, bits), nil
	case FieldComplex:
		re, im, bits := parts(v)
		reTok := strconv.FormatFloat(re, 'g', prec, bits)
		imTok := strconv.FormatFloat(im, 'g', prec, bits)

		return reTok + " " + imTok, nil
	default:
		return "", ErrKindMismatch
	}
}

// parts splits any element into (real, imaginary, float bit width).
// Integer values widen to float64 exactly within 2^53; the bit width
// keeps float32-backed types formatting at their own precision so the
// rendering round-trips.
func parts[T Element](v T) (re, im float64, bits int) {
	switch x := any(v).(type) {
	case int:
		return float64(x), 0, 64
	case int32:
		return float64(x), 0, 64
	case int64:
		return float64(x), 0, 64
	case float32:
		return float64(x), 0, 32
	case float64:
		return x, 0, 64
	case complex64:
		return float64(real(x)), float64(imag(x)), 32
	default:
		c := any(v).(complex128)

		return real(c), imag(c), 64
	}
}

// asInt64 extracts an exact integer magnitude from v for the integer
// field. Floating values must be integral and within int64; complex
// values must additionally carry a zero imaginary part.
func asInt64[T Element](v T) (int64, error) {
	toInt := func(f float64) (int64, error) {
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
			return 0, ErrKindMismatch
		}
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, ErrValueOutOfRange
		}

		return int64(f), nil
	}

	switch x := any(v).(type) {
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case float32:
		return toInt(float64(x))
	case float64:
		return toInt(x)
	case complex64:
		if imag(x) != 0 {
			return 0, ErrKindMismatch
		}

		return toInt(float64(real(x)))
	default:
		c := any(v).(complex128)
		if imag(c) != 0 {
			return 0, ErrKindMismatch
		}

		return toInt(real(c))
	}
}
