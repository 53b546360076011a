// SPDX-License-Identifier: MIT

// Package matrixmarket: the Matrix container.
// Matrix is the single in-memory value both Parse and Serialize operate
// on; it covers the array (dense) and coordinate (sparse) layouts behind
// one generic type, storing values in a flat slice for performance and
// cache friendliness. A Matrix is immutable after construction — the
// constructors and Parse copy their inputs and Clone deep-copies.
package matrixmarket

// Matrix is an immutable Matrix Market value parameterized over the
// caller's element type T.
//
// Layout contract:
//   - FormatArray: indices is nil; values holds the stored entries
//     column-major. For SymGeneral that is all rows*cols entries; for the
//     other symmetry classes it is exactly the stored triangle
//     (n(n+1)/2 for symmetric/hermitian, n(n-1)/2 for skew-symmetric) —
//     the implied mirror entries are NOT materialized.
//   - FormatCoordinate: indices and values are parallel slices in file
//     (insertion) order, one entry per stored nonzero, indices 0-based.
//
// Complexity notes: all accessors are O(1) except Indices/Values/Clone
// (O(n) copy where noted).
type Matrix[T Element] struct {
	rows, cols int
	format     FormatKind
	field      FieldKind
	symmetry   SymmetryKind
	indices    []Index // nil ⇔ FormatArray
	values     []T
}

// Rows returns the declared number of rows.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the declared number of columns.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Dims returns the declared shape as (rows, cols).
// Complexity: O(1).
func (m *Matrix[T]) Dims() (rows, cols int) { return m.rows, m.cols }

// Format reports the storage layout (array or coordinate).
func (m *Matrix[T]) Format() FormatKind { return m.format }

// Field reports the declared element kind. For matrices produced by
// Parse this is the file's field, which may be narrower than T under the
// widening rule (e.g. an integer file parsed into complex128 keeps
// FieldInteger).
func (m *Matrix[T]) Field() FieldKind { return m.field }

// Symmetry reports the symmetry class. Metadata only — see SymmetryKind.
func (m *Matrix[T]) Symmetry() SymmetryKind { return m.symmetry }

// Header returns the banner triple this matrix serializes under.
func (m *Matrix[T]) Header() Header {
	return Header{Format: m.format, Field: m.field, Symmetry: m.symmetry}
}

// NNZ returns the number of stored entries: the entry count for
// coordinate matrices, the stored value count for array matrices.
// Complexity: O(1).
func (m *Matrix[T]) NNZ() int { return len(m.values) }

// Indices returns a copy of the stored positions in file order, or nil
// for array matrices.
// Complexity: O(n).
func (m *Matrix[T]) Indices() []Index {
	if m.indices == nil {
		return nil
	}

	return append([]Index(nil), m.indices...)
}

// Values returns a copy of the stored values in file order (coordinate)
// or column-major order (array).
// Complexity: O(n).
func (m *Matrix[T]) Values() []T {
	return append([]T(nil), m.values...)
}

// At retrieves the element at (row, col) of a general array matrix via
// column-major flat lookup.
//
// Stage 1 (Validate): layout must be FormatArray with SymGeneral —
// coordinate and reduced-triangle layouts have no O(1) positional read
// and return ErrUnsupportedLayout.
// Stage 2 (Execute): bounds check, then read values[col*rows+row].
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if m.format != FormatArray || m.symmetry != SymGeneral {
		return zero, opErrorf("At", ErrUnsupportedLayout)
	}
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return zero, opErrorf("At", ErrIndexOutOfBounds)
	}

	return m.values[col*m.rows+row], nil
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(n) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := *m
	c.values = append([]T(nil), m.values...)
	if m.indices != nil {
		c.indices = append([]Index(nil), m.indices...)
	}

	return &c
}

// denseValueCount returns the number of values an array-format file
// stores for the given shape and symmetry class: the full column-major
// sequence for general, the stored triangle otherwise.
func denseValueCount(rows, cols int, sym SymmetryKind) int {
	switch sym {
	case SymSymmetric, SymHermitian:
		return rows * (rows + 1) / 2
	case SymSkewSymmetric:
		return rows * (rows - 1) / 2
	default:
		return rows * cols
	}
}

// NewDense constructs an array-format matrix from a flat column-major
// value sequence.
//
// Stage 1 (Validate): shape non-negative; non-general symmetry requires
// a square shape and (for hermitian) a complex element type; the value
// count must equal the stored count implied by shape and symmetry —
// rows*cols for general, the triangle count otherwise.
// Stage 2 (Prepare): copy values into fresh backing storage.
// Stage 3 (Finalize): return the matrix; field is inferred from T.
// Complexity: O(n) copy.
func NewDense[T Element](rows, cols int, sym SymmetryKind, values []T) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, opErrorf("NewDense", err)
	}
	if err := validateSymmetryShape(sym, rows, cols); err != nil {
		return nil, opErrorf("NewDense", err)
	}
	field := fieldOf[T]()
	if err := validateSymmetryField(sym, field); err != nil {
		return nil, opErrorf("NewDense", err)
	}
	if len(values) != denseValueCount(rows, cols, sym) {
		return nil, opErrorf("NewDense", ErrDimensionMismatch)
	}

	return &Matrix[T]{
		rows:     rows,
		cols:     cols,
		format:   FormatArray,
		field:    field,
		symmetry: sym,
		values:   append([]T(nil), values...),
	}, nil
}

// NewSparse constructs a coordinate-format matrix from parallel
// indices/values slices in the order they should serialize.
//
// Stage 1 (Validate): shape non-negative; non-general symmetry requires
// a square shape and (for hermitian) a complex element type; indices and
// values must have equal length not exceeding rows*cols; every index
// must lie within [0,rows)×[0,cols).
// Stage 2 (Prepare): copy both slices into fresh backing storage.
// Stage 3 (Finalize): return the matrix; field is inferred from T.
// Complexity: O(n).
func NewSparse[T Element](rows, cols int, sym SymmetryKind, indices []Index, values []T) (*Matrix[T], error) {
	field := fieldOf[T]()
	m, err := newSparse[T](rows, cols, sym, field, indices)
	if err != nil {
		return nil, opErrorf("NewSparse", err)
	}
	if len(values) != len(indices) {
		return nil, opErrorf("NewSparse", ErrDimensionMismatch)
	}
	m.values = append([]T(nil), values...)

	return m, nil
}

// NewSparsePattern constructs a coordinate-format pattern matrix: only
// positions are stored, and each position carries the unit value of T so
// typed consumers see a concrete magnitude. Serializing it emits no
// value tokens.
// Complexity: O(n).
func NewSparsePattern[T Element](rows, cols int, sym SymmetryKind, indices []Index) (*Matrix[T], error) {
	m, err := newSparse[T](rows, cols, sym, FieldPattern, indices)
	if err != nil {
		return nil, opErrorf("NewSparsePattern", err)
	}
	m.values = make([]T, len(indices))
	one := unitValue[T]()
	for i := range m.values {
		m.values[i] = one
	}

	return m, nil
}

// newSparse validates shape/symmetry/bounds and builds the coordinate
// skeleton shared by NewSparse and NewSparsePattern; values are filled
// by the caller. Returns bare sentinels for the call site to wrap.
func newSparse[T Element](rows, cols int, sym SymmetryKind, field FieldKind, indices []Index) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	if err := validateSymmetryShape(sym, rows, cols); err != nil {
		return nil, err
	}
	if field != FieldPattern {
		if err := validateSymmetryField(sym, field); err != nil {
			return nil, err
		}
	}
	if len(indices) > rows*cols {
		return nil, ErrDimensionMismatch
	}
	for _, idx := range indices {
		if idx.Row < 0 || idx.Row >= rows || idx.Col < 0 || idx.Col >= cols {
			return nil, ErrIndexOutOfBounds
		}
	}

	return &Matrix[T]{
		rows:     rows,
		cols:     cols,
		format:   FormatCoordinate,
		field:    field,
		symmetry: sym,
		indices:  append([]Index(nil), indices...),
	}, nil
}
