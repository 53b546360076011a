// SPDX-License-Identifier: MIT
// Package: matrixmarket
//
// Purpose:
//  - Provide a single, canonical source of truth for shape / symmetry /
//    element-kind validation shared by Parse, Serialize and the
//    constructors.
//  - Keep the parser loops minimal by delegating guard logic here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with positional or operation context.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// AI-Hints:
//  - Centralizing validators eliminates inconsistent guard logic across
//    the parse and construction paths.
//  - fieldAssignable is the one place the widening lattice
//    (integer ⊂ real ⊂ complex, pattern ⊂ everything) is encoded.

package matrixmarket

// validateShape rejects negative dimensions. Zero is legal: the format
// permits empty matrices.
// Returns ErrInvalidDimensions on violation. Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// validateSymmetryShape enforces that non-general symmetry classes only
// apply to square shapes; the format defines the stored-triangle
// convention for square matrices only.
// Returns ErrDimensionMismatch on violation. Complexity: O(1).
func validateSymmetryShape(sym SymmetryKind, rows, cols int) error {
	if sym != SymGeneral && rows != cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSymmetryField enforces the format's field/symmetry pairing
// rules: hermitian is only meaningful for complex data.
// Returns ErrKindMismatch on violation. Complexity: O(1).
func validateSymmetryField(sym SymmetryKind, field FieldKind) error {
	if sym == SymHermitian && field != FieldComplex {
		return ErrKindMismatch
	}

	return nil
}

// validateHeader enforces the cross-field banner rules after the three
// tokens parse individually: pattern stores positions only, which the
// array layout cannot express, and hermitian requires a complex field.
// Returns ErrInvalidHeader on violation. Complexity: O(1).
func validateHeader(h Header) error {
	if h.Field == FieldPattern && h.Format == FormatArray {
		return ErrInvalidHeader
	}
	if h.Symmetry == SymHermitian && h.Field != FieldComplex {
		return ErrInvalidHeader
	}

	return nil
}

// fieldAssignable reports whether a file declaring `from` may be parsed
// into an element type of kind `to`. Widening only:
//
//	pattern → integer, real, complex (unit value supplied)
//	integer → integer, real, complex
//	real    → real, complex (imaginary part implicitly zero)
//	complex → complex
//
// Anything else is a narrowing request and must fail with
// ErrKindMismatch at the call site. Complexity: O(1).
func fieldAssignable(from, to FieldKind) bool {
	switch from {
	case FieldPattern:
		return true
	case FieldInteger:
		return to == FieldInteger || to == FieldReal || to == FieldComplex
	case FieldReal:
		return to == FieldReal || to == FieldComplex
	case FieldComplex:
		return to == FieldComplex
	default:
		return false
	}
}
