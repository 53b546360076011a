// SPDX-License-Identifier: MIT
// Package matrixmarket_test contains unit tests for the array-format
// parse path: column-major ordering, reduced-triangle counts for the
// symmetric classes, packed value lines and the exact-count policy.
package matrixmarket_test

import (
	"testing"

	mm "github.com/katalvlaran/matrixmarket"
	"github.com/stretchr/testify/require"
)

// TestParse_ArrayColumnMajor verifies that a 2×3 dense file stores its
// six values in column-major order, exactly as listed.
func TestParse_ArrayColumnMajor(t *testing.T) {
	m, err := mm.ParseString[float64](
		"%%MatrixMarket matrix array real general\n2 3\n0.1\n0.2\n0.3\n0.4\n0.5\n0.6\n")
	require.NoError(t, err)

	rows, cols := m.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Nil(t, m.Indices())
	require.Equal(t, []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, m.Values())

	// At addresses the flat sequence column-major: (row, col) = col*rows+row.
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 0.6, v)
}

// TestParse_ArrayPackedLines accepts several whitespace-separated values
// on one line.
func TestParse_ArrayPackedLines(t *testing.T) {
	m, err := mm.ParseString[int](
		"%%MatrixMarket matrix array integer general\n2 2\n1 2\n3 4\n")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, m.Values())
}

// TestParse_ArraySymmetricTriangle ensures a 3×3 symmetric array file
// yields exactly the 6 lower-triangle values — never the expanded 9.
func TestParse_ArraySymmetricTriangle(t *testing.T) {
	m, err := mm.ParseString[float64](
		"%%MatrixMarket matrix array real symmetric\n3 3\n1\n2\n3\n4\n5\n6\n")
	require.NoError(t, err)
	require.Equal(t, 6, m.NNZ())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Values())
	require.Equal(t, mm.SymSymmetric, m.Symmetry())

	// positional reads are undefined on a reduced-triangle layout
	_, err = m.At(0, 0)
	require.ErrorIs(t, err, mm.ErrUnsupportedLayout)
}

// TestParse_ArraySkewTriangle ensures a 3×3 skew-symmetric array file
// stores the strictly-lower triangle: 3 values, no diagonal.
func TestParse_ArraySkewTriangle(t *testing.T) {
	m, err := mm.ParseString[float64](
		"%%MatrixMarket matrix array real skew-symmetric\n3 3\n-1\n-2\n-3\n")
	require.NoError(t, err)
	require.Equal(t, 3, m.NNZ())
	require.Equal(t, []float64{-1, -2, -3}, m.Values())
}

// TestParse_ArrayComplexPairs reads two tokens per value for complex
// array files.
func TestParse_ArrayComplexPairs(t *testing.T) {
	m, err := mm.ParseString[complex64](
		"%%MatrixMarket matrix array complex general\n2 1\n1 -1\n2.5 0\n")
	require.NoError(t, err)
	require.Equal(t, []complex64{complex(1, -1), complex(2.5, 0)}, m.Values())
}

// TestParse_ArrayShortInput fails with ErrUnexpectedEOF when the value
// sequence ends early.
func TestParse_ArrayShortInput(t *testing.T) {
	_, err := mm.ParseString[float64](
		"%%MatrixMarket matrix array real general\n2 2\n1\n2\n3\n")
	require.ErrorIs(t, err, mm.ErrUnexpectedEOF)
}

// TestParse_ArrayExcessValues rejects values beyond the required count.
func TestParse_ArrayExcessValues(t *testing.T) {
	_, err := mm.ParseString[float64](
		"%%MatrixMarket matrix array real general\n2 2\n1\n2\n3\n4\n5\n")
	require.ErrorIs(t, err, mm.ErrInvalidFormat)
}

// TestParse_ArrayMalformedValue maps a garbage token onto
// ErrMalformedNumber, as in a dense file whose tail is corrupt.
func TestParse_ArrayMalformedValue(t *testing.T) {
	_, err := mm.ParseString[float32](
		"%%MatrixMarket matrix array real general\n10 10\n0.0\ngarbage\n")
	require.ErrorIs(t, err, mm.ErrMalformedNumber)
}

// TestParse_ArrayOddComplexTokens rejects a complex line whose token
// count is not a multiple of the pair size.
func TestParse_ArrayOddComplexTokens(t *testing.T) {
	_, err := mm.ParseString[complex128](
		"%%MatrixMarket matrix array complex general\n1 1\n0.5 0.5 0.5\n")
	require.ErrorIs(t, err, mm.ErrInvalidFormat)
}
