// SPDX-License-Identifier: MIT

// Package matrixmarket: domain types shared by the parser and serializer.
// This file intentionally contains ONLY the format-level enumerations and
// small value types (kinds, Header, Index) plus the Element constraint.
// The Matrix container lives in matrix.go; errors and options live in
// dedicated files (errors.go, options.go) per the global conventions.
package matrixmarket

// FormatKind classifies the storage layout declared by the banner.
//
//   - FormatArray      — dense: every stored value listed column-major.
//   - FormatCoordinate — sparse: one (row, col, value) entry per nonzero.
type FormatKind uint8

const (
	// FormatArray is the dense layout ("array" banner token).
	FormatArray FormatKind = iota

	// FormatCoordinate is the sparse layout ("coordinate" banner token).
	FormatCoordinate
)

// String returns the canonical lowercase banner token.
func (f FormatKind) String() string {
	switch f {
	case FormatArray:
		return "array"
	case FormatCoordinate:
		return "coordinate"
	default:
		return "unknown"
	}
}

// FieldKind classifies the element kind declared by the banner.
// Pattern stores positions only — no value tokens appear on data lines.
type FieldKind uint8

const (
	// FieldReal holds one floating token per value ("real").
	FieldReal FieldKind = iota

	// FieldComplex holds two floating tokens per value ("complex").
	FieldComplex

	// FieldInteger holds one signed integer token per value ("integer").
	FieldInteger

	// FieldPattern holds no value tokens ("pattern"); only positions are
	// recorded and parsed values take the unit value of the element type.
	FieldPattern
)

// String returns the canonical lowercase banner token.
func (f FieldKind) String() string {
	switch f {
	case FieldReal:
		return "real"
	case FieldComplex:
		return "complex"
	case FieldInteger:
		return "integer"
	case FieldPattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// SymmetryKind classifies the symmetry declared by the banner.
//
// Metadata only: the library preserves exactly the entries the file
// states plus this tag. Mirrored entries implied by a non-general class
// are never synthesized — callers wanting the full matrix perform the
// expansion themselves, consulting this value.
type SymmetryKind uint8

const (
	// SymGeneral stores every entry explicitly ("general").
	SymGeneral SymmetryKind = iota

	// SymSymmetric stores the lower triangle including the diagonal
	// ("symmetric"); a(i,j) == a(j,i) is implied.
	SymSymmetric

	// SymSkewSymmetric stores the strictly lower triangle
	// ("skew-symmetric"); a(i,j) == -a(j,i) is implied and the diagonal
	// is zero by definition.
	SymSkewSymmetric

	// SymHermitian stores the lower triangle including the diagonal
	// ("hermitian"); a(i,j) == conj(a(j,i)) is implied. Only meaningful
	// for complex fields.
	SymHermitian
)

// String returns the canonical lowercase banner token.
func (s SymmetryKind) String() string {
	switch s {
	case SymGeneral:
		return "general"
	case SymSymmetric:
		return "symmetric"
	case SymSkewSymmetric:
		return "skew-symmetric"
	case SymHermitian:
		return "hermitian"
	default:
		return "unknown"
	}
}

// Header is the parsed banner line: layout, element field and symmetry.
// It travels on every Matrix produced by Parse.
type Header struct {
	Format   FormatKind
	Field    FieldKind
	Symmetry SymmetryKind
}

// Index is a stored matrix position. Internal representation is 0-based;
// the file representation is 1-based and converted on read/write.
type Index struct {
	Row int // 0-based row
	Col int // 0-based column
}

// Element is the closed set of element types a caller may parse into or
// serialize from. The set is exact (no ~) so decoding may dispatch on the
// concrete type; it covers the integer, real and complex fields of the
// format at the usual machine widths.
type Element interface {
	int | int32 | int64 | float32 | float64 | complex64 | complex128
}

// fieldOf maps the caller's element type to the widest-fit field kind:
// integer types to FieldInteger, floating types to FieldReal, complex
// types to FieldComplex. Dispatch happens once per Parse/Serialize call.
func fieldOf[T Element]() FieldKind {
	var zero T
	switch any(zero).(type) {
	case int, int32, int64:
		return FieldInteger
	case float32, float64:
		return FieldReal
	default: // complex64, complex128
		return FieldComplex
	}
}

// tokensPerValue returns the number of whitespace-separated tokens one
// value occupies on a data line for the given field.
func tokensPerValue(f FieldKind) int {
	switch f {
	case FieldComplex:
		return 2
	case FieldPattern:
		return 0
	default: // FieldReal, FieldInteger
		return 1
	}
}
