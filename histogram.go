package cuckoo

// Histogram tallies displacement chain lengths returned by successful
// inserts, as a bucketed counter array with an overflow slot for anything
// beyond its configured range.
type Histogram struct {
	counts   []uint64
	overflow uint64
}

// newHistogram sizes the histogram to hold one bucket per possible chain
// length in [0, steps], plus an overflow bucket for anything longer (which
// should never happen, since a chain longer than steps is a failed walk).
func newHistogram(steps int) *Histogram {
	return &Histogram{counts: make([]uint64, steps+1)}
}

// record tallies one successful insert's chain length.
func (h *Histogram) record(chainLen int) {
	if chainLen < 0 {
		return
	}
	if chainLen >= len(h.counts) {
		h.overflow++
		return
	}
	h.counts[chainLen]++
}

// Clear resets every counter, including the overflow bucket.
func (h *Histogram) Clear() {
	for i := range h.counts {
		h.counts[i] = 0
	}
	h.overflow = 0
}

// Snapshot returns a copy of the per-chain-length counts; index i holds the
// number of inserts that took exactly i displacements. The last element is
// the overflow bucket.
func (h *Histogram) Snapshot() []uint64 {
	out := make([]uint64, len(h.counts)+1)
	copy(out, h.counts)
	out[len(out)-1] = h.overflow
	return out
}
