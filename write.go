// SPDX-License-Identifier: MIT

// Package matrixmarket: the serializer.
// Serialize is the exact mirror of Parse: banner line, optional comment
// lines, dimension line, then one data line per stored entry. It
// serializes precisely what is in memory — coordinate entries in stored
// order with 1-based indices, dense values as the stored flat sequence —
// so parse∘serialize is the identity for well-formed matrices.
package matrixmarket

import (
	"bufio"
	"fmt"
	"io"
)

// Serialize writes m to w in Matrix Market text form.
//
// Stage 1 (Validate): non-nil matrix; stored values must be renderable
// under the declared field (ErrKindMismatch otherwise, e.g. a complex
// value with nonzero imaginary part under a real field).
// Stage 2 (Emit): banner, comments, dimension line, data lines through
// one buffered writer.
// Stage 3 (Finalize): flush; the first sink failure is sticky and
// surfaces wrapped from here.
// Complexity: O(n) over stored entries.
func Serialize[T Element](w io.Writer, m *Matrix[T], opts ...WriteOption) error {
	if m == nil {
		return opErrorf("Serialize", ErrNilMatrix)
	}
	o := NewWriteOptions(opts...)
	field := m.field
	if o.fieldSet {
		field = o.field
	}
	if field == FieldPattern && m.format == FormatArray {
		return opErrorf("Serialize", ErrKindMismatch)
	}
	if err := validateSymmetryField(m.symmetry, field); err != nil {
		return opErrorf("Serialize", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %s %s %s %s\n", bannerKeyword, bannerObject, m.format, field, m.symmetry)
	for _, c := range o.comments {
		fmt.Fprintf(bw, "%s %s\n", commentMarker, c)
	}

	var err error
	switch m.format {
	case FormatCoordinate:
		err = writeCoordinate(bw, m, field, o)
	default:
		err = writeArray(bw, m, field, o)
	}
	if err != nil {
		return opErrorf("Serialize", err)
	}

	if ferr := bw.Flush(); ferr != nil {
		return opErrorf("Serialize", ferr)
	}

	return nil
}

// writeCoordinate emits "rows cols nnz" and one "row+1 col+1 [value]"
// line per stored entry, in stored order. Pattern matrices omit the
// value tokens.
func writeCoordinate[T Element](bw *bufio.Writer, m *Matrix[T], field FieldKind, o WriteOptions) error {
	fmt.Fprintf(bw, "%d %d %d\n", m.rows, m.cols, len(m.indices))

	for k, idx := range m.indices {
		tok, err := encodeValue(field, m.values[k], o.precision)
		if err != nil {
			return err
		}
		if tok == "" {
			fmt.Fprintf(bw, "%d %d\n", idx.Row+1, idx.Col+1)
			continue
		}
		fmt.Fprintf(bw, "%d %d %s\n", idx.Row+1, idx.Col+1, tok)
	}

	return nil
}

// writeArray emits "rows cols" and the stored flat value sequence, one
// value group per line, in the column-major order it is held — the
// reduced-triangle convention of symmetric classes is preserved, never
// expanded or contracted.
func writeArray[T Element](bw *bufio.Writer, m *Matrix[T], field FieldKind, o WriteOptions) error {
	fmt.Fprintf(bw, "%d %d\n", m.rows, m.cols)

	for _, v := range m.values {
		tok, err := encodeValue(field, v, o.precision)
		if err != nil {
			return err
		}
		fmt.Fprintln(bw, tok)
	}

	return nil
}
