package cuckoo

// tableLayout abstracts over three addressing/growth strategies: flat
// (tl=1), homogeneous two-level (tl>1, lockstep growth), and independent
// two-level (tl>1, per-sub-table growth). All three share the
// insert/find/remove shape; they differ only in how a hash maps to a
// physical bucket and in when/how growth happens.
type tableLayout[K comparable, D any] interface {
	// candidateBuckets returns the NH candidate bucket pointers for h.
	candidateBuckets(h hashed) []*bucket[K, D]
	// onInsertSuccess is called after a successful insert, hash h.
	onInsertSuccess(h hashed)
	// onEraseSuccess is called after a successful erase, hash h.
	onEraseSuccess(h hashed)
	// maybeGrow checks the layout's growth trigger(s) and grows if tripped.
	maybeGrow(c *coreHooks[K, D])
	// capacity returns the total slot count across all sub-tables.
	capacity() int
	// subtableCount returns tl.
	subtableCount() int
	// subtableView returns sub-table i's live bucket slice (not a copy) for
	// instrumentation, or (nil, false) if i is out of range.
	subtableView(i int) ([]bucket[K, D], bool)
}

// coreHooks is the narrow surface a layout needs from the Cuckoo core
// during growth: rehashing a key and reinserting a spilled element without
// re-triggering growth recursively.
type coreHooks[K comparable, D any] struct {
	hashOf        func(K) hashed
	spillReinsert func(K, D)
	saveN         func() int
	restoreN      func(int)
	logger        logAdapter
}

// subtable is the flat-array backing store shared by all three layouts: a
// contiguous slice of buckets addressed by floor(loc * factor).
type subtable[K comparable, D any] struct {
	buckets []bucket[K, D]
	llSize  int
	factor  float64
}

func newSubtable[K comparable, D any](llSize, bs int, locWidth uint, empty K) *subtable[K, D] {
	buckets := make([]bucket[K, D], llSize)
	for i := range buckets {
		buckets[i] = newBucket[K, D](bs, empty)
	}
	return &subtable[K, D]{
		buckets: buckets,
		llSize:  llSize,
		factor:  factorFor(llSize, locWidth),
	}
}

func (s *subtable[K, D]) bucketAt(loc uint32) *bucket[K, D] {
	idx := physicalIndex(loc, s.factor)
	if idx >= len(s.buckets) {
		idx = len(s.buckets) - 1
	}
	return &s.buckets[idx]
}
