package matrixmarket_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/katalvlaran/matrixmarket"
)

// ExampleParse demonstrates reading a sparse integer document: indices
// arrive 0-based, values in file order, symmetry as metadata.
func ExampleParse() {
	doc := "%%MatrixMarket matrix coordinate integer symmetric\n" +
		"2 2 2\n" +
		"1 1 3\n" +
		"2 2 4\n"

	m, err := matrixmarket.ParseString[int64](doc)
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}

	rows, cols := m.Dims()
	fmt.Printf("shape    : %dx%d\n", rows, cols)
	fmt.Println("symmetry :", m.Symmetry())
	fmt.Println("indices  :", m.Indices())
	fmt.Println("values   :", m.Values())

	// Output:
	// shape    : 2x2
	// symmetry : symmetric
	// indices  : [{0 0} {1 1}]
	// values   : [3 4]
}

// ExampleSerialize demonstrates writing a matrix back out, including a
// comment line.
func ExampleSerialize() {
	m, err := matrixmarket.NewSparse(2, 2, matrixmarket.SymGeneral,
		[]matrixmarket.Index{{Row: 0, Col: 1}, {Row: 1, Col: 0}},
		[]float64{0.5, -1.25})
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	var buf bytes.Buffer
	if err = matrixmarket.Serialize(&buf, m,
		matrixmarket.WithComment("toy fixture")); err != nil {
		fmt.Println("serialize failed:", err)
		return
	}
	fmt.Print(buf.String())

	// Output:
	// %%MatrixMarket matrix coordinate real general
	// % toy fixture
	// 2 2 2
	// 1 2 0.5
	// 2 1 -1.25
}

// ExampleParseError shows how to recover line/token context from a
// failed parse.
func ExampleParseError() {
	_, err := matrixmarket.ParseString[float64](
		"%%MatrixMarket matrix coordinate bogus general\n1 1 0\n")

	var perr *matrixmarket.ParseError
	if errors.As(err, &perr) {
		fmt.Printf("line %d, token %q\n", perr.Line, perr.Token)
	}
	fmt.Println("invalid header:", errors.Is(err, matrixmarket.ErrInvalidHeader))

	// Output:
	// line 1, token "bogus"
	// invalid header: true
}
