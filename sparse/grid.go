// SPDX-License-Identifier: MIT

package sparse

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// WriteGrid writes a dense human-readable dump of m: for each row in
// [0, Rows) the values of columns [0, Cols) separated by single spaces, one
// row per line. Entries outside the declared shape are not shown.
// Diagnostic only; cost is O(Rows*Cols).
func (m *Matrix) WriteGrid(w io.Writer) error {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				cw.writeString(" ")
			}
			cw.writeString(strconv.Itoa(m.At(i, j)))
		}
		cw.writeString("\n")
	}
	if cw.err != nil {
		return sparseErrorf("WriteGrid", cw.err)
	}
	if err := bw.Flush(); err != nil {
		return sparseErrorf("WriteGrid", err)
	}

	return nil
}

// Grid returns the WriteGrid dump as a string.
func (m *Matrix) Grid() string {
	var sb strings.Builder
	_ = m.WriteGrid(&sb)

	return sb.String()
}

// String implements fmt.Stringer with the dense grid dump.
func (m *Matrix) String() string { return m.Grid() }
