// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"io"
)

// countingWriter tracks bytes written and latches the first error, so the
// encoders can write unconditionally and check once.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err

	return n, err
}

func (cw *countingWriter) writeString(s string) {
	_, _ = cw.Write([]byte(s))
}

func writeLine(cw *countingWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(cw, format, args...)
}
