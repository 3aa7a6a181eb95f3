// SPDX-License-Identifier: MIT

// Package sparse - Matrix storage & accessors.
//
// Purpose:
//   - Store only nonzero values, keyed by Coord.
//   - Keep a deterministic iteration order: insertion order. Overwriting a key
//     keeps its position; deleting and re-inserting moves it to the end.
//   - Never enforce declared bounds on Set; Rows/Cols are metadata.
//
// Complexity quicksheet:
//   - New/NewShape: O(1); At/Set/Has: O(1) expected; Clone: O(nnz);
//     Range/Entries: O(nnz + tombstones).

package sparse

// compactMinDead is the tombstone count below which compaction never runs.
const compactMinDead = 32

// Matrix is a sparse integer matrix backed by a coordinate-keyed map.
// The zero value is a usable empty 0×0 matrix.
type Matrix struct {
	rows, cols int           // declared shape (>= 0)
	index      map[Coord]int // key -> position in slots (live keys only)
	slots      []slot        // insertion-ordered log, may contain tombstones
	dead       int           // tombstone count in slots
}

// New returns an empty 0×0 matrix.
func New() *Matrix {
	return &Matrix{index: make(map[Coord]int)}
}

// NewShape returns an empty matrix with the declared shape rows×cols.
// Zero dimensions are legal; negative ones return ErrBadShape.
func NewShape(rows, cols int) (*Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, sparseErrorf("NewShape", err)
	}
	m := New()
	m.rows, m.cols = rows, cols

	return m, nil
}

// Rows returns the declared row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared column count.
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into one call.
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Nnz returns the number of stored (nonzero) entries.
func (m *Matrix) Nnz() int { return len(m.index) }

// At returns the value at (row, col), or 0 when nothing is stored there.
// No bounds checking is performed and At never fails.
// Complexity: O(1) expected.
func (m *Matrix) At(row, col int) int {
	i, ok := m.index[Coord{Row: row, Col: col}]
	if !ok {
		return 0
	}

	return m.slots[i].value
}

// Has reports whether a nonzero entry is stored at (row, col).
func (m *Matrix) Has(row, col int) bool {
	_, ok := m.index[Coord{Row: row, Col: col}]
	return ok
}

// Set stores value at (row, col). Storing 0 removes the entry (no-op when
// absent), so the matrix never holds an explicit zero. Coordinates are not
// checked against Rows/Cols.
// Complexity: O(1) amortized.
func (m *Matrix) Set(row, col, value int) {
	k := Coord{Row: row, Col: col}
	if value == 0 {
		m.remove(k)
		return
	}
	if m.index == nil {
		m.index = make(map[Coord]int)
	}
	if i, ok := m.index[k]; ok {
		m.slots[i].value = value // overwrite keeps position
		return
	}
	m.index[k] = len(m.slots)
	m.slots = append(m.slots, slot{key: k, value: value, live: true})
}

// remove deletes k and leaves a tombstone.
func (m *Matrix) remove(k Coord) {
	i, ok := m.index[k]
	if !ok {
		return
	}
	delete(m.index, k)
	m.slots[i] = slot{}
	m.dead++
	m.compact()
}

// compact rewrites slots without tombstones once they dominate the log.
func (m *Matrix) compact() {
	if m.dead < compactMinDead || m.dead*2 < len(m.slots) {
		return
	}
	live := make([]slot, 0, len(m.index))
	for _, s := range m.slots {
		if !s.live {
			continue
		}
		m.index[s.key] = len(live)
		live = append(live, s)
	}
	m.slots = live
	m.dead = 0
}

// Range calls fn for every stored entry in insertion order and stops early
// when fn returns false. fn must not mutate m.
func (m *Matrix) Range(fn func(Entry) bool) {
	for _, s := range m.slots {
		if !s.live {
			continue
		}
		if !fn(Entry{Row: s.key.Row, Col: s.key.Col, Value: s.value}) {
			return
		}
	}
}

// Entries returns a copy of the stored entries in insertion order.
// Complexity: O(nnz).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, m.Nnz())
	m.Range(func(e Entry) bool {
		out = append(out, e)
		return true
	})

	return out
}

// Clone returns an independent deep copy with the same shape, entries and
// iteration order. Tombstones are not carried over.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{
		rows:  m.rows,
		cols:  m.cols,
		index: make(map[Coord]int, m.Nnz()),
		slots: make([]slot, 0, m.Nnz()),
	}
	m.Range(func(e Entry) bool {
		cp.Set(e.Row, e.Col, e.Value)
		return true
	})

	return cp
}

// Equal reports whether m and other have the same shape and the same set of
// (coordinate -> value) pairs. Iteration order is ignored.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || m.Nnz() != other.Nnz() {
		return false
	}
	equal := true
	m.Range(func(e Entry) bool {
		i, ok := other.index[e.Coord()]
		if !ok || other.slots[i].value != e.Value {
			equal = false
		}
		return equal
	})

	return equal
}
