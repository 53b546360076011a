// SPDX-License-Identifier: MIT
// Package matrixmarket_test contains unit tests for the serializer:
// exact output text, the comment/precision/field options, narrowing
// failures and sink-error propagation.
package matrixmarket_test

import (
	"bytes"
	"errors"
	"testing"

	mm "github.com/katalvlaran/matrixmarket"
	"github.com/stretchr/testify/require"
)

// TestSerialize_Coordinate pins the exact text of a sparse integer
// matrix: banner, dimension line, 1-based entries in stored order.
func TestSerialize_Coordinate(t *testing.T) {
	m, err := mm.NewSparse(2, 2, mm.SymSymmetric,
		[]mm.Index{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, []int64{3, 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mm.Serialize(&buf, m))
	require.Equal(t,
		"%%MatrixMarket matrix coordinate integer symmetric\n2 2 2\n1 1 3\n2 2 4\n",
		buf.String())
}

// TestSerialize_Array pins the exact text of a dense real matrix:
// column-major values, one per line, shortest round-trip rendering.
func TestSerialize_Array(t *testing.T) {
	m, err := mm.NewDense(2, 2, mm.SymGeneral, []float64{1, 0.5, 1.5e-3, -2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mm.Serialize(&buf, m))
	require.Equal(t,
		"%%MatrixMarket matrix array real general\n2 2\n1\n0.5\n0.0015\n-2\n",
		buf.String())
}

// TestSerialize_Pattern omits value tokens entirely.
func TestSerialize_Pattern(t *testing.T) {
	m, err := mm.NewSparsePattern[int](3, 3, mm.SymGeneral,
		[]mm.Index{{Row: 0, Col: 0}, {Row: 2, Col: 1}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mm.Serialize(&buf, m))
	require.Equal(t,
		"%%MatrixMarket matrix coordinate pattern general\n3 3 2\n1 1\n3 2\n",
		buf.String())
}

// TestSerialize_Complex renders two tokens per value.
func TestSerialize_Complex(t *testing.T) {
	m, err := mm.NewSparse(2, 2, mm.SymHermitian,
		[]mm.Index{{Row: 1, Col: 0}}, []complex128{complex(1.5, -2)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mm.Serialize(&buf, m))
	require.Equal(t,
		"%%MatrixMarket matrix coordinate complex hermitian\n2 2 1\n2 1 1.5 -2\n",
		buf.String())
}

// TestSerialize_WithComment places %-comments between banner and
// dimension line.
func TestSerialize_WithComment(t *testing.T) {
	m, err := mm.NewSparse(1, 1, mm.SymGeneral,
		[]mm.Index{{Row: 0, Col: 0}}, []float64{1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mm.Serialize(&buf, m,
		mm.WithComment("generated fixture"), mm.WithComment("do not edit")))
	require.Equal(t,
		"%%MatrixMarket matrix coordinate real general\n"+
			"% generated fixture\n% do not edit\n1 1 1\n1 1 1\n",
		buf.String())

	require.Panics(t, func() { mm.WithComment("two\nlines") })
}

// TestSerialize_WithPrecision fixes the floating digit count.
func TestSerialize_WithPrecision(t *testing.T) {
	m, err := mm.NewDense(1, 1, mm.SymGeneral, []float64{1.0 / 3.0})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mm.Serialize(&buf, m, mm.WithPrecision(3)))
	require.Equal(t,
		"%%MatrixMarket matrix array real general\n1 1\n0.333\n",
		buf.String())

	require.Panics(t, func() { mm.WithPrecision(-2) })
}

// TestSerialize_WithField re-renders under a requested field: integral
// floats downgrade to integer, coordinate magnitudes drop to pattern.
func TestSerialize_WithField(t *testing.T) {
	m, err := mm.NewDense(1, 2, mm.SymGeneral, []float64{3, -4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mm.Serialize(&buf, m, mm.WithField(mm.FieldInteger)))
	require.Equal(t,
		"%%MatrixMarket matrix array integer general\n1 2\n3\n-4\n",
		buf.String())

	sp, err := mm.NewSparse(2, 2, mm.SymGeneral,
		[]mm.Index{{Row: 0, Col: 1}}, []float64{0.7})
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, mm.Serialize(&buf, sp, mm.WithField(mm.FieldPattern)))
	require.Equal(t,
		"%%MatrixMarket matrix coordinate pattern general\n2 2 1\n1 2\n",
		buf.String())
}

// TestSerialize_KindMismatch rejects values the requested field cannot
// represent.
func TestSerialize_KindMismatch(t *testing.T) {
	// fractional value under an integer field
	m, err := mm.NewDense(1, 1, mm.SymGeneral, []float64{0.5})
	require.NoError(t, err)
	var buf bytes.Buffer
	err = mm.Serialize(&buf, m, mm.WithField(mm.FieldInteger))
	require.ErrorIs(t, err, mm.ErrKindMismatch)

	// nonzero imaginary part under a real field
	c, err := mm.NewSparse(1, 1, mm.SymGeneral,
		[]mm.Index{{Row: 0, Col: 0}}, []complex128{complex(1, 2)})
	require.NoError(t, err)
	err = mm.Serialize(&buf, c, mm.WithField(mm.FieldReal))
	require.ErrorIs(t, err, mm.ErrKindMismatch)

	// pattern has no array form
	err = mm.Serialize(&buf, m, mm.WithField(mm.FieldPattern))
	require.ErrorIs(t, err, mm.ErrKindMismatch)
}

// TestSerialize_ComplexWithZeroImag allows a complex-typed matrix whose
// values are all real to downgrade to a real field.
func TestSerialize_ComplexWithZeroImag(t *testing.T) {
	m, err := mm.NewSparse(1, 1, mm.SymGeneral,
		[]mm.Index{{Row: 0, Col: 0}}, []complex128{complex(2.5, 0)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mm.Serialize(&buf, m, mm.WithField(mm.FieldReal)))
	require.Equal(t,
		"%%MatrixMarket matrix coordinate real general\n1 1 1\n1 1 2.5\n",
		buf.String())
}

// TestSerialize_NilMatrix guards the nil receiver.
func TestSerialize_NilMatrix(t *testing.T) {
	var buf bytes.Buffer
	err := mm.Serialize[float64](&buf, nil)
	require.ErrorIs(t, err, mm.ErrNilMatrix)
}

// TestSerialize_SinkFailure surfaces the underlying writer error.
func TestSerialize_SinkFailure(t *testing.T) {
	m, err := mm.NewDense(2, 2, mm.SymGeneral, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	err = mm.Serialize(&failingWriter{}, m)
	require.ErrorIs(t, err, errBoom)
}

// failingWriter fails every write with errBoom.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBoom }

// ensure errors.As reaches ParseError only on the parse side; write
// failures stay plain wrapped errors.
func TestSerialize_NoParseErrorOnWriteSide(t *testing.T) {
	m, _ := mm.NewDense(1, 1, mm.SymGeneral, []float64{1})
	err := mm.Serialize(&failingWriter{}, m)

	var perr *mm.ParseError
	require.False(t, errors.As(err, &perr))
}
