// SPDX-License-Identifier: MIT

// Package sparse: domain types. Coord is the map key, Entry the value-carrying
// view returned by iteration helpers.
package sparse

import "fmt"

// Coord identifies one matrix cell. It is comparable, so it is used directly
// as a map key (no string encoding of the pair).
type Coord struct {
	Row int
	Col int
}

// String renders the coordinate as "(row, col)".
func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.Row, c.Col) }

// Entry is one stored nonzero cell.
type Entry struct {
	Row   int
	Col   int
	Value int
}

// Coord returns the entry's coordinate key.
func (e Entry) Coord() Coord { return Coord{Row: e.Row, Col: e.Col} }

// String renders the entry in the serialized data-line form "(r, c, v)".
func (e Entry) String() string { return fmt.Sprintf(_fmtEntry, e.Row, e.Col, e.Value) }

// slot is one position in the insertion-ordered entry log.
// A dead slot is a tombstone left by deletion; compact drops them.
type slot struct {
	key   Coord
	value int
	live  bool
}
