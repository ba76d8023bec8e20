package cuckoo

import "math"

// homogeneousLayout implements both the flat (tl=1) and homogeneous
// two-level (tl>1) variants: all sub-tables share one ll_size and one
// factor and grow in lockstep. flatLayout (see layout_flat.go) is this
// algorithm instantiated with tl=1 rather than a separate implementation.
type homogeneousLayout[K comparable, D any] struct {
	subtables []*subtable[K, D]
	tl        int
	bs        int
	locWidth  uint
	alpha     float64
	beta      float64
	thresh    int
	empty     K
	n         int // mirrors core.n; kept locally so growth can size without a core reference
}

func newHomogeneousLayout[K comparable, D any](tl, llSize, bs int, locWidth uint, alpha float64, empty K) *homogeneousLayout[K, D] {
	subtables := make([]*subtable[K, D], tl)
	for i := range subtables {
		subtables[i] = newSubtable[K, D](llSize, bs, locWidth, empty)
	}
	beta := (alpha + 1) / 2
	capacity := tl * llSize * bs
	return &homogeneousLayout[K, D]{
		subtables: subtables,
		tl:        tl,
		bs:        bs,
		locWidth:  locWidth,
		alpha:     alpha,
		beta:      beta,
		thresh:    int(float64(capacity) / beta),
		empty:     empty,
	}
}

func (l *homogeneousLayout[K, D]) candidateBuckets(h hashed) []*bucket[K, D] {
	out := make([]*bucket[K, D], h.nh)
	for i := 0; i < h.nh; i++ {
		t := h.tab(i)
		loc := h.loc(i)
		out[i] = l.subtables[t].bucketAt(loc)
	}
	return out
}

func (l *homogeneousLayout[K, D]) onInsertSuccess(h hashed) {
	l.n++
}

func (l *homogeneousLayout[K, D]) onEraseSuccess(h hashed) {
	l.n--
}

func (l *homogeneousLayout[K, D]) capacity() int {
	return l.tl * l.subtables[0].llSize * l.bs
}

func (l *homogeneousLayout[K, D]) subtableCount() int {
	return l.tl
}

func (l *homogeneousLayout[K, D]) subtableView(i int) ([]bucket[K, D], bool) {
	if i < 0 || i >= l.tl {
		return nil, false
	}
	return l.subtables[i].buckets, true
}

func (l *homogeneousLayout[K, D]) maybeGrow(c *coreHooks[K, D]) {
	if l.n <= l.thresh {
		return
	}
	l.grow(c)
}

// grow reallocates every sub-table to a larger ll_size and migrates every
// occupied slot into it, in lockstep across all tl sub-tables. Stragglers
// that cannot be placed directly spill into a deferred buffer that is
// drained through the core's normal insert path once every sub-table has
// been migrated, preserving n as a logical element count throughout.
func (l *homogeneousLayout[K, D]) grow(c *coreHooks[K, D]) {
	oldLLSize := l.subtables[0].llSize
	newLLSize := oldLLSize + 1
	if alt := int(math.Floor(float64(l.n) * l.alpha / float64(l.tl*l.bs))); alt > newLLSize {
		newLLSize = alt
	}

	var spill []Slot[K, D]

	for t := 0; t < l.tl; t++ {
		old := l.subtables[t]
		next := newSubtable[K, D](newLLSize, l.bs, l.locWidth, l.empty)
		migrateHomogeneous(old, next, t, l.locWidth, c.hashOf, &spill)
		l.subtables[t] = next
	}

	capacity := l.tl * newLLSize * l.bs
	l.thresh = int(float64(capacity) / l.beta)

	if c.logger != nil {
		c.logger.Debugf("homogeneous layout grew: ll_size %d -> %d, spill=%d", oldLLSize, newLLSize, len(spill))
	}

	savedN := l.n
	savedCoreN := c.saveN()
	drainSpill(spill, c)
	l.n = savedN
	c.restoreN(savedCoreN)
}

// migrateHomogeneous walks every occupied slot of old, finds the NH
// coordinate that matches the element's current physical position under
// the old factor (checking both tab and loc, since sub-tables grow in
// lockstep and an element may have been placed via any of its candidates
// in any sub-table), and reinserts it into next at the corresponding
// position under the new factor. Unplaceable elements spill.
func migrateHomogeneous[K comparable, D any](old, next *subtable[K, D], tabIdx int, locWidth uint, hashOf func(K) hashed, spill *[]Slot[K, D]) {
	for bi := range old.buckets {
		for _, s := range old.buckets[bi].snapshot() {
			h := hashOf(s.Key)
			placed := false
			for i := 0; i < h.nh; i++ {
				if int(h.tab(i)) != tabIdx {
					continue
				}
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
				*spill = append(*spill, s)
			}
		}
	}
}

// drainSpill reinserts spilled elements through the core's normal insert
// path (which may itself trigger displacement). Its callers save n before
// and restore it afterwards, since migration never changes cardinality.
func drainSpill[K comparable, D any](spill []Slot[K, D], c *coreHooks[K, D]) {
	for _, s := range spill {
		c.spillReinsert(s.Key, s.Data)
	}
}
