// Package matrixmarket reads and writes the Matrix Market plain-text
// exchange format — dense ("array") and sparse ("coordinate") matrices
// over integer, real, complex and pattern fields, with general,
// symmetric, skew-symmetric and hermitian symmetry classes.
//
// 🚀 What is Matrix Market?
//
//	A plain-text convention for exchanging matrices, identified by a
//	banner line declaring layout, element field and symmetry:
//	  %%MatrixMarket matrix coordinate real general
//	It is the lingua franca of sparse-matrix collections (SuiteSparse,
//	NIST) and a common interchange point between solvers and tools.
//
// ✨ Key guarantees:
//   - Faithful round trip: Parse(Serialize(m)) reproduces m exactly —
//     entry order, stored-triangle layout and symmetry tag included.
//   - No silent expansion: symmetric / skew-symmetric / hermitian files
//     keep only the stored triangle; SymmetryKind travels as metadata
//     and mirrored entries are never synthesized.
//   - Caller-chosen element type: Parse is generic over int, int32,
//     int64, float32, float64, complex64 and complex128, with explicit
//     widening rules (integer→real→complex) and ErrKindMismatch on any
//     narrowing request.
//   - Errors, not panics: every malformed input maps to a sentinel
//     (ErrInvalidHeader, ErrMalformedNumber, ErrIndexOutOfBounds, ...)
//     matched via errors.Is, with line/token context via *ParseError.
//
// ⚙️ Usage:
//
//	m, err := matrixmarket.ParseString[int64](
//	    "%%MatrixMarket matrix coordinate integer symmetric\n" +
//	        "2 2 2\n1 1 3\n2 2 4\n")
//	if err != nil {
//	    // handle via errors.Is(err, matrixmarket.ErrX)
//	}
//	var buf bytes.Buffer
//	err = matrixmarket.Serialize(&buf, m)
//
// Out of scope by design: linear-algebra operations, symmetric
// expansion, compressed/binary Matrix Market variants, and streaming
// of files too large for memory.
//
// See example_test.go for full usage patterns.
package matrixmarket
