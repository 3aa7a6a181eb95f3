// SPDX-License-Identifier: MIT

package sparse

// Test-only bridge: exposes internal storage counters to sparse_test so the
// tombstone/compaction policy can be checked without widening the API.

// SlotsLen_TestOnly returns the length of the insertion log, tombstones included.
func (m *Matrix) SlotsLen_TestOnly() int { return len(m.slots) }

// Dead_TestOnly returns the current tombstone count.
func (m *Matrix) Dead_TestOnly() int { return m.dead }

// CompactMinDead_TestOnly mirrors compactMinDead.
const CompactMinDead_TestOnly = compactMinDead
