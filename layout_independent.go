package cuckoo

import "math"

// independentSubtableFloor is the minimum bucket count the independent
// layout allocates per sub-table, avoiding pathological addressing when a
// sub-table starts out tiny.
const independentSubtableFloor = 256

// independentLayout implements the per-sub-table growth variant: every key
// is anchored to subtable[tab(h,0)], which alone holds all of that key's NH
// candidate positions. Anchoring is what makes growing one sub-table safe
// without touching keys that live in another.
type independentLayout[K comparable, D any] struct {
	subtables []*subtable[K, D]
	elemCount []int
	thresh    []int
	tl        int
	bs        int
	locWidth  uint
	alpha     float64
	beta      float64
	empty     K
}

func newIndependentLayout[K comparable, D any](tl, llSizeHint, bs int, locWidth uint, alpha float64, empty K) *independentLayout[K, D] {
	llSize := llSizeHint
	if llSize < independentSubtableFloor {
		llSize = independentSubtableFloor
	}
	subtables := make([]*subtable[K, D], tl)
	elemCount := make([]int, tl)
	thresh := make([]int, tl)
	beta := (alpha + 1) / 2
	for i := range subtables {
		subtables[i] = newSubtable[K, D](llSize, bs, locWidth, empty)
		thresh[i] = int(float64(llSize) / beta)
	}
	return &independentLayout[K, D]{
		subtables: subtables,
		elemCount: elemCount,
		thresh:    thresh,
		tl:        tl,
		bs:        bs,
		locWidth:  locWidth,
		alpha:     alpha,
		beta:      beta,
		empty:     empty,
	}
}

func (l *independentLayout[K, D]) anchor(h hashed) int {
	return int(h.tab(0))
}

func (l *independentLayout[K, D]) candidateBuckets(h hashed) []*bucket[K, D] {
	t := l.anchor(h)
	out := make([]*bucket[K, D], h.nh)
	for i := 0; i < h.nh; i++ {
		out[i] = l.subtables[t].bucketAt(h.loc(i))
	}
	return out
}

func (l *independentLayout[K, D]) onInsertSuccess(h hashed) {
	l.elemCount[l.anchor(h)]++
}

func (l *independentLayout[K, D]) onEraseSuccess(h hashed) {
	l.elemCount[l.anchor(h)]--
}

func (l *independentLayout[K, D]) capacity() int {
	total := 0
	for _, st := range l.subtables {
		total += st.llSize * l.bs
	}
	return total
}

func (l *independentLayout[K, D]) subtableCount() int {
	return l.tl
}

func (l *independentLayout[K, D]) subtableView(i int) ([]bucket[K, D], bool) {
	if i < 0 || i >= l.tl {
		return nil, false
	}
	return l.subtables[i].buckets, true
}

func (l *independentLayout[K, D]) maybeGrow(c *coreHooks[K, D]) {
	for t := 0; t < l.tl; t++ {
		if l.elemCount[t] > l.thresh[t] {
			l.growSubtable(t, c)
		}
	}
}

// growSubtable reallocates sub-table t alone. Only the loc coordinate needs
// to be checked during migration (not tab), because anchoring guarantees
// every one of the element's NH candidates already lives in this same
// sub-table under the old factor.
func (l *independentLayout[K, D]) growSubtable(t int, c *coreHooks[K, D]) {
	old := l.subtables[t]
	oldLLSize := old.llSize
	newLLSize := oldLLSize + 1
	if alt := int(math.Floor(float64(l.elemCount[t]) * l.alpha / float64(l.bs))); alt > newLLSize {
		newLLSize = alt
	}
	next := newSubtable[K, D](newLLSize, l.bs, l.locWidth, l.empty)

	var spill []Slot[K, D]
	for bi := range old.buckets {
		for _, s := range old.buckets[bi].snapshot() {
			h := c.hashOf(s.Key)
			placed := false
			for i := 0; i < h.nh; i++ {
				if physicalIndex(h.loc(i), old.factor) != bi {
					continue
				}
				newIdx := physicalIndex(h.loc(i), next.factor)
				if newIdx >= len(next.buckets) {
					newIdx = len(next.buckets) - 1
				}
				if next.buckets[newIdx].insert(s.Key, s.Data) {
					placed = true
				}
				break
			}
			if !placed {
				spill = append(spill, s)
			}
		}
	}

	l.subtables[t] = next
	l.thresh[t] = int(float64(l.elemCount[t]) * l.beta)

	if c.logger != nil {
		c.logger.Debugf("independent layout grew subtable %d: ll_size %d -> %d, spill=%d", t, oldLLSize, newLLSize, len(spill))
	}

	savedCount := l.elemCount[t]
	savedCoreN := c.saveN()
	drainSpill(spill, c)
	l.elemCount[t] = savedCount
	c.restoreN(savedCoreN)
}
