// SPDX-License-Identifier: MIT

// Package matrixmarket: banner parsing.
// The banner is the mandatory first logical line of every file:
//
//	%%MatrixMarket matrix <format> <field> <symmetry>
//
// The keyword and all three classification tokens match
// case-insensitively; any missing, extra or unrecognized token fails
// with ErrInvalidHeader carrying the offending token and line number —
// nothing is ever silently defaulted.
package matrixmarket

import "strings"

// bannerKeyword is the fixed first token of the banner line.
const bannerKeyword = "%%MatrixMarket"

// bannerObject is the fixed second token; the format also defines
// "vector" files, which this library does not read.
const bannerObject = "matrix"

// bannerTokens is the exact token count of a well-formed banner.
const bannerTokens = 5

// parseBanner classifies a candidate banner line into a Header.
//
// Stage 1 (Validate): exactly five tokens; first two equal the fixed
// keyword and object (case-insensitive).
// Stage 2 (Classify): match format, field and symmetry against their
// enumerated sets.
// Stage 3 (Cross-check): reject field/format/symmetry pairings the
// format does not define (pattern+array, hermitian+non-complex).
// Complexity: O(1) beyond tokenization.
func parseBanner(text string, line int) (Header, error) {
	var h Header

	fields := strings.Fields(text)
	if len(fields) != bannerTokens {
		return h, parseErrf(line, text, ErrInvalidHeader)
	}
	if !strings.EqualFold(fields[0], bannerKeyword) {
		return h, parseErrf(line, fields[0], ErrInvalidHeader)
	}
	if !strings.EqualFold(fields[1], bannerObject) {
		return h, parseErrf(line, fields[1], ErrInvalidHeader)
	}

	format, ok := formatKindOf(fields[2])
	if !ok {
		return h, parseErrf(line, fields[2], ErrInvalidHeader)
	}
	field, ok := fieldKindOf(fields[3])
	if !ok {
		return h, parseErrf(line, fields[3], ErrInvalidHeader)
	}
	symmetry, ok := symmetryKindOf(fields[4])
	if !ok {
		return h, parseErrf(line, fields[4], ErrInvalidHeader)
	}

	h = Header{Format: format, Field: field, Symmetry: symmetry}
	if err := validateHeader(h); err != nil {
		return Header{}, parseErrf(line, text, err)
	}

	return h, nil
}

// formatKindOf matches a banner token against the format set.
func formatKindOf(tok string) (FormatKind, bool) {
	switch strings.ToLower(tok) {
	case "array":
		return FormatArray, true
	case "coordinate":
		return FormatCoordinate, true
	default:
		return 0, false
	}
}

// fieldKindOf matches a banner token against the field set.
func fieldKindOf(tok string) (FieldKind, bool) {
	switch strings.ToLower(tok) {
	case "real":
		return FieldReal, true
	case "complex":
		return FieldComplex, true
	case "integer":
		return FieldInteger, true
	case "pattern":
		return FieldPattern, true
	default:
		return 0, false
	}
}

// symmetryKindOf matches a banner token against the symmetry set.
func symmetryKindOf(tok string) (SymmetryKind, bool) {
	switch strings.ToLower(tok) {
	case "general":
		return SymGeneral, true
	case "symmetric":
		return SymSymmetric, true
	case "skew-symmetric":
		return SymSkewSymmetric, true
	case "hermitian":
		return SymHermitian, true
	default:
		return 0, false
	}
}
