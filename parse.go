// SPDX-License-Identifier: MIT

// Package matrixmarket: the parse engine.
// Parse drives the pipeline banner → dimensions → element loop →
// assembled Matrix, failing fast on the first violation. The operation
// is all-or-nothing: no partial matrix is ever returned, and no state
// survives the call.
package matrixmarket

import (
	"io"
	"strconv"
	"strings"
)

// Parse reads one Matrix Market document from r into a Matrix with
// element type T.
//
// The file's declared field must be assignable to T under the widening
// rule (pattern → anything, integer → integer/real/complex, real →
// real/complex, complex → complex); a narrowing request fails with
// ErrKindMismatch before any data line is consumed. The returned matrix
// preserves exactly what the file states: entry order, stored-triangle
// layout and the symmetry tag — implied mirror entries are never
// synthesized.
//
// Stage 1 (Header): mandatory banner, classified case-insensitively.
// Stage 2 (Dimensions): 2 integers for array, 3 for coordinate.
// Stage 3 (Data): per-format element loop with 1-based → 0-based index
// conversion and per-kind token decoding.
// Complexity: O(L) over input length; memory O(n) for the result.
func Parse[T Element](r io.Reader) (*Matrix[T], error) {
	lr := newLineReader(r)

	text, line, ok, err := lr.banner()
	if err != nil {
		return nil, opErrorf("Parse", err)
	}
	if !ok {
		// Empty input, or nothing but comments and blank lines.
		return nil, parseErrf(line, "", ErrUnexpectedEOF)
	}
	h, err := parseBanner(text, line)
	if err != nil {
		return nil, err
	}
	if !fieldAssignable(h.Field, fieldOf[T]()) {
		return nil, parseErrf(line, h.Field.String(), ErrKindMismatch)
	}

	rows, cols, nnz, err := parseDimensions(lr, h)
	if err != nil {
		return nil, err
	}

	switch h.Format {
	case FormatCoordinate:
		return parseCoordinate[T](lr, h, rows, cols, nnz)
	default:
		return parseArray[T](lr, h, rows, cols)
	}
}

// ParseString reads one Matrix Market document held in memory.
// Convenience wrapper over Parse.
func ParseString[T Element](s string) (*Matrix[T], error) {
	return Parse[T](strings.NewReader(s))
}

// parseDimensions consumes the first logical line after the banner:
// "rows cols" for array format, "rows cols nnz" for coordinate format.
// All tokens must be non-negative integers; nnz must not exceed
// rows*cols; non-general symmetry requires a square shape.
func parseDimensions(lr *lineReader, h Header) (rows, cols, nnz int, err error) {
	text, line, ok, rerr := lr.next()
	if rerr != nil {
		return 0, 0, 0, opErrorf("Parse", rerr)
	}
	if !ok {
		return 0, 0, 0, parseErrf(line, "", ErrUnexpectedEOF)
	}

	want := 2
	if h.Format == FormatCoordinate {
		want = 3
	}
	fields := strings.Fields(text)
	if len(fields) != want {
		return 0, 0, 0, parseErrf(line, text, ErrInvalidDimensions)
	}

	dims := make([]int, want)
	for i, tok := range fields {
		n, perr := strconv.Atoi(tok)
		if perr != nil || n < 0 {
			return 0, 0, 0, parseErrf(line, tok, ErrInvalidDimensions)
		}
		dims[i] = n
	}

	rows, cols = dims[0], dims[1]
	if h.Format == FormatCoordinate {
		nnz = dims[2]
		if nnz > rows*cols {
			return 0, 0, 0, parseErrf(line, text, ErrDimensionMismatch)
		}
	}
	if verr := validateSymmetryShape(h.Symmetry, rows, cols); verr != nil {
		return 0, 0, 0, parseErrf(line, text, verr)
	}

	return rows, cols, nnz, nil
}

// parseCoordinate reads exactly nnz data lines "row col [values]" with
// 1-based indices, appending entries in file order. No deduplication and
// no symmetric expansion: the stored sequence is exactly what the file
// contains. Trailing tokens on a data line (including anything after the
// index pair of a pattern file) and trailing logical lines both fail
// with ErrInvalidFormat.
func parseCoordinate[T Element](lr *lineReader, h Header, rows, cols, nnz int) (*Matrix[T], error) {
	indices := make([]Index, 0, nnz)
	values := make([]T, 0, nnz)
	want := 2 + tokensPerValue(h.Field)

	for k := 0; k < nnz; k++ {
		text, line, ok, err := lr.next()
		if err != nil {
			return nil, opErrorf("Parse", err)
		}
		if !ok {
			return nil, parseErrf(lr.line, "", ErrUnexpectedEOF)
		}

		fields := strings.Fields(text)
		if len(fields) != want {
			return nil, parseErrf(line, text, ErrInvalidFormat)
		}

		row, err := parseIndexToken(fields[0], line)
		if err != nil {
			return nil, err
		}
		col, err := parseIndexToken(fields[1], line)
		if err != nil {
			return nil, err
		}
		if row < 1 || row > rows || col < 1 || col > cols {
			return nil, parseErrf(line, text, ErrIndexOutOfBounds)
		}

		v, err := decodeValue[T](h.Field, fields[2:], line)
		if err != nil {
			return nil, err
		}

		indices = append(indices, Index{Row: row - 1, Col: col - 1})
		values = append(values, v)
	}

	if text, line, ok, err := lr.next(); err != nil {
		return nil, opErrorf("Parse", err)
	} else if ok {
		return nil, parseErrf(line, text, ErrInvalidFormat)
	}

	return &Matrix[T]{
		rows:     rows,
		cols:     cols,
		format:   FormatCoordinate,
		field:    h.Field,
		symmetry: h.Symmetry,
		indices:  indices,
		values:   values,
	}, nil
}

// parseArray reads the dense value sequence in column-major order:
// rows*cols values for general symmetry, the stored triangle count for
// the symmetric classes. Values may be spread one per line or packed
// several per line; the flat sequence is stored as given, without
// expansion to a full rows*cols buffer.
func parseArray[T Element](lr *lineReader, h Header, rows, cols int) (*Matrix[T], error) {
	need := denseValueCount(rows, cols, h.Symmetry)
	group := tokensPerValue(h.Field) // pattern+array rejected at the banner
	values := make([]T, 0, need)

	for {
		text, line, ok, err := lr.next()
		if err != nil {
			return nil, opErrorf("Parse", err)
		}
		if !ok {
			break
		}

		fields := strings.Fields(text)
		if len(fields)%group != 0 {
			return nil, parseErrf(line, text, ErrInvalidFormat)
		}
		for i := 0; i < len(fields); i += group {
			if len(values) == need {
				return nil, parseErrf(line, text, ErrInvalidFormat)
			}
			v, err := decodeValue[T](h.Field, fields[i:i+group], line)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}

	if len(values) < need {
		return nil, parseErrf(lr.line, "", ErrUnexpectedEOF)
	}

	return &Matrix[T]{
		rows:     rows,
		cols:     cols,
		format:   FormatArray,
		field:    h.Field,
		symmetry: h.Symmetry,
		values:   values,
	}, nil
}

// parseIndexToken parses one 1-based row/col token.
func parseIndexToken(tok string, line int) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, parseErrf(line, tok, ErrMalformedNumber)
	}

	return n, nil
}
