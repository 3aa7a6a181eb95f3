// SPDX-License-Identifier: MIT

// Package sparse: functional options for Parse.
//
// Defaults reproduce the permissive contract: coordinates beyond the declared
// shape are accepted and stored. Options are resolved once per call.
package sparse

// DefaultMaxLineBytes caps a single input line (bufio.Scanner buffer).
const DefaultMaxLineBytes = 1 << 20

// DefaultStrictBounds keeps Parse permissive about out-of-shape coordinates.
const DefaultStrictBounds = false

const panicMaxLineInvalid = "sparse: WithMaxLineBytes: n must be positive"

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	strictBounds bool // reject data lines outside [0,rows)×[0,cols)
	maxLineBytes int  // > 0
}

// WithStrictBounds makes Parse reject any data line whose coordinate lies
// outside the declared rows×cols with a *FormatError wrapping ErrOutOfRange.
func WithStrictBounds() ParseOption {
	return func(o *parseOptions) { o.strictBounds = true }
}

// WithMaxLineBytes sets the longest accepted input line.
// Panics if n <= 0 (programmer error).
func WithMaxLineBytes(n int) ParseOption {
	if n <= 0 {
		panic(panicMaxLineInvalid)
	}
	return func(o *parseOptions) { o.maxLineBytes = n }
}

func gatherParseOptions(user ...ParseOption) parseOptions {
	o := parseOptions{
		strictBounds: DefaultStrictBounds,
		maxLineBytes: DefaultMaxLineBytes,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
