// SPDX-License-Identifier: MIT

// Package sparse - text codec.
//
// Grammar (blank lines ignored everywhere; lines are trimmed):
//
//	rows=<non-negative integer>
//	cols=<non-negative integer>
//	(<row>, <col>, <value>)      zero or more, value may be negative
//
// The header is detected by position among non-blank lines, not by content.
// Parsing aborts on the first violation with a *FormatError; no partial
// matrix is returned. Output uses a single space after each comma and no
// trailing newline.

package sparse

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Formatting literals shared by encoder and Entry.String.
const (
	_fmtRows  = "rows=%d"
	_fmtCols  = "cols=%d"
	_fmtEntry = "(%d, %d, %d)"
)

// Reasons reported in FormatError.Reason.
const (
	reasonMissingRows = "expected rows=<integer> header"
	reasonMissingCols = "expected cols=<integer> header"
	reasonBadEntry    = "expected (<row>, <col>, <value>)"
	reasonBadInteger  = "integer out of range"
	reasonOutOfBounds = "coordinate outside declared shape"
)

var (
	rowsLine  = regexp.MustCompile(`^rows=(\d+)$`)
	colsLine  = regexp.MustCompile(`^cols=(\d+)$`)
	entryLine = regexp.MustCompile(`^\((\d+),\s*(\d+),\s*(-?\d+)\)$`)
)

// Parse reads one serialized matrix from r.
// Errors: *FormatError (matches ErrFormat) for grammar violations, or the
// reader's own error wrapped with "Parse".
// Complexity: O(bytes).
func Parse(r io.Reader, opts ...ParseOption) (*Matrix, error) {
	o := gatherParseOptions(opts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(bufio.MaxScanTokenSize, o.maxLineBytes)), o.maxLineBytes)

	var (
		m        = New()
		lineNo   int // physical line, 1-based
		nonBlank int // index among non-blank lines
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch nonBlank {
		case 0:
			n, err := headerValue(rowsLine, line, lineNo, reasonMissingRows)
			if err != nil {
				return nil, err
			}
			m.rows = n
		case 1:
			n, err := headerValue(colsLine, line, lineNo, reasonMissingCols)
			if err != nil {
				return nil, err
			}
			m.cols = n
		default:
			e, err := entryValue(line, lineNo)
			if err != nil {
				return nil, err
			}
			if o.strictBounds {
				if err = ValidateInBounds(m, e.Row, e.Col); err != nil {
					return nil, &FormatError{Line: lineNo, Text: line, Reason: reasonOutOfBounds, Err: err}
				}
			}
			m.Set(e.Row, e.Col, e.Value)
		}
		nonBlank++
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &FormatError{Line: lineNo + 1, Reason: "line too long", Err: err}
		}
		return nil, sparseErrorf("Parse", err)
	}

	// Both header lines are mandatory, even for an otherwise empty source.
	switch nonBlank {
	case 0:
		return nil, &FormatError{Line: lineNo + 1, Reason: reasonMissingRows, Err: ErrFormat}
	case 1:
		return nil, &FormatError{Line: lineNo + 1, Reason: reasonMissingCols, Err: ErrFormat}
	}

	return m, nil
}

// ParseString parses a serialized matrix held in s.
func ParseString(s string, opts ...ParseOption) (*Matrix, error) {
	return Parse(strings.NewReader(s), opts...)
}

// headerValue matches a "key=<n>" header line and returns n.
func headerValue(re *regexp.Regexp, line string, lineNo int, reason string) (int, error) {
	sub := re.FindStringSubmatch(line)
	if sub == nil {
		return 0, &FormatError{Line: lineNo, Text: line, Reason: reason, Err: ErrFormat}
	}
	n, err := strconv.Atoi(sub[1])
	if err != nil {
		return 0, &FormatError{Line: lineNo, Text: line, Reason: reasonBadInteger, Err: err}
	}

	return n, nil
}

// entryValue matches a "(r, c, v)" data line.
func entryValue(line string, lineNo int) (Entry, error) {
	sub := entryLine.FindStringSubmatch(line)
	if sub == nil {
		return Entry{}, &FormatError{Line: lineNo, Text: line, Reason: reasonBadEntry, Err: ErrFormat}
	}
	var (
		vals [3]int
		err  error
	)
	for i := range vals {
		if vals[i], err = strconv.Atoi(sub[i+1]); err != nil {
			return Entry{}, &FormatError{Line: lineNo, Text: line, Reason: reasonBadInteger, Err: err}
		}
	}

	return Entry{Row: vals[0], Col: vals[1], Value: vals[2]}, nil
}

// WriteTo serializes m to w: header lines, then one data line per entry in
// insertion order, newline-separated with no trailing newline.
// It implements io.WriterTo.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	writeLine(cw, _fmtRows, m.rows)
	cw.writeString("\n")
	writeLine(cw, _fmtCols, m.cols)
	m.Range(func(e Entry) bool {
		cw.writeString("\n")
		writeLine(cw, _fmtEntry, e.Row, e.Col, e.Value)
		return cw.err == nil
	})
	if cw.err != nil {
		return cw.n, sparseErrorf("WriteTo", cw.err)
	}
	if err := bw.Flush(); err != nil {
		return cw.n, sparseErrorf("WriteTo", err)
	}

	return cw.n, nil
}

// Serialize returns the serialized text of m.
func (m *Matrix) Serialize() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb) // strings.Builder never fails

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (m *Matrix) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with default parse
// options. On error m is left unchanged.
func (m *Matrix) UnmarshalText(text []byte) error {
	parsed, err := Parse(bytes.NewReader(text))
	if err != nil {
		return err
	}
	*m = *parsed

	return nil
}
