// SPDX-License-Identifier: MIT

// Package matrixmarket: tokenizing line reader.
// lineReader turns raw input into the sequence of logical lines the
// parser consumes: trimmed, with blank lines and %-comment lines
// skipped, and with 1-based physical line numbers preserved for error
// context. The banner is the one wrinkle — it starts with "%%" and would
// be swallowed by naive comment filtering, so the first logical line is
// requested through banner() instead of next().
package matrixmarket

import (
	"bufio"
	"io"
	"strings"
)

// maxLineBytes bounds a single physical line. Matrix Market data lines
// are a handful of tokens; 1 MiB leaves generous headroom for comment
// lines while keeping the scanner buffer finite.
const maxLineBytes = 1 << 20

// commentMarker starts a comment line; the banner doubles it.
const commentMarker = "%"

// bannerMarker introduces the mandatory banner line.
const bannerMarker = "%%"

// lineReader yields logical lines from sequentially-read text.
// Not safe for concurrent use; one instance serves exactly one parse.
type lineReader struct {
	sc   *bufio.Scanner
	line int // physical line number of the last line returned (1-based)
}

// newLineReader wraps r in a scanner with a bounded line buffer.
func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &lineReader{sc: sc}
}

// banner returns the first candidate banner line: the first non-blank
// line that is not a plain %-comment. Lines starting with "%%" are banner
// candidates, not comments, so they are returned rather than skipped.
//
// Returns the trimmed line and its physical line number. A nil-text
// return with io.EOF semantics is reported as (_, _, false, nil); a
// scanner failure surfaces as err.
func (lr *lineReader) banner() (string, int, bool, error) {
	for lr.sc.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.sc.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, commentMarker) && !strings.HasPrefix(text, bannerMarker) {
			continue
		}

		return text, lr.line, true, nil
	}

	return "", lr.line, false, lr.sc.Err()
}

// next returns the next logical line: trimmed, non-blank, non-comment.
// Every %-prefixed line (banner-like or not) is a comment once the
// banner has been consumed.
//
// Returns (text, physical line, true, nil) on success, (_, _, false,
// nil) at end of input, and (_, _, false, err) on a read failure.
func (lr *lineReader) next() (string, int, bool, error) {
	for lr.sc.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.sc.Text())
		if text == "" || strings.HasPrefix(text, commentMarker) {
			continue
		}

		return text, lr.line, true, nil
	}

	return "", lr.line, false, lr.sc.Err()
}
