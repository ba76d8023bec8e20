package cuckoo

// Cuckoo is an in-memory associative container backed by a cuckoo hash
// table with bucketed cells and multiple hash functions. It supports load
// factors of 0.9 and above at O(1) expected operation cost, at the price of
// occasional displacement walks and, past a load threshold, an incremental
// table growth/migration pass.
//
// Cuckoo is not safe for concurrent use; it has no locking of any kind.
type Cuckoo[K comparable, D any] struct {
	layout     tableLayout[K, D]
	extractor  *extractor
	displacer  *displacer
	histogram  *Histogram
	empty      K
	bs         int
	nh         int
	keyBytes   func(K) []byte
	logger     logAdapter
	n          int
}

// New constructs a Cuckoo container. capacityHint sizes the initial
// sub-table(s); a hint of 0 is legal and starts each sub-table with a single
// bucket (or the independent layout's floor), growing as elements arrive.
func New[K comparable, D any](capacityHint int, opts ...Option[K, D]) *Cuckoo[K, D] {
	cfg := defaultConfig[K, D]()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.numHashes < 2 {
		cfg.numHashes = 2
	}
	if cfg.numSubtables < 1 {
		cfg.numSubtables = 1
	}
	if cfg.layout == LayoutFlat {
		cfg.numSubtables = 1
	}

	keyBytes := cfg.keyBytes
	if keyBytes == nil {
		keyBytes = defaultKeyBytes[K]
	}

	hasher := newHasher(cfg.hasher)
	tabWidth := tabWidthFor(cfg.numSubtables)
	locWidth := 32 - tabWidth
	ext := newExtractor(hasher, uint64(cfg.seed), cfg.numHashes, cfg.numSubtables, cfg.hashMode)

	c := &Cuckoo[K, D]{
		extractor: ext,
		displacer: newDisplacer(cfg.seed, cfg.displacementSteps),
		histogram: newHistogram(cfg.displacementSteps),
		empty:     cfg.emptyKey,
		bs:        cfg.bucketSize,
		nh:        cfg.numHashes,
		keyBytes:  keyBytes,
		logger:    newZerologAdapter(cfg.logger),
	}

	llSizeHint := 0
	if cfg.numSubtables > 0 && cfg.bucketSize > 0 {
		llSizeHint = capacityHint / (cfg.numSubtables * cfg.bucketSize)
	}
	if llSizeHint < 1 {
		llSizeHint = 1
	}

	switch cfg.layout {
	case LayoutIndependent:
		c.layout = newIndependentLayout[K, D](cfg.numSubtables, llSizeHint, cfg.bucketSize, locWidth, cfg.alpha, cfg.emptyKey)
	case LayoutHomogeneous:
		c.layout = newHomogeneousLayout[K, D](cfg.numSubtables, llSizeHint, cfg.bucketSize, locWidth, cfg.alpha, cfg.emptyKey)
	default:
		c.layout = newFlatLayout[K, D](llSizeHint, cfg.bucketSize, cfg.alpha, cfg.emptyKey)
	}

	return c
}

func tabWidthFor(tl int) uint {
	if tl <= 1 {
		return 0
	}
	w := uint(0)
	for (1 << w) < tl {
		w++
	}
	return w
}

func newHasher(kind HasherKind) Hasher {
	switch kind {
	case HasherXXH3:
		return XXH3Hasher{}
	case HasherMurmur3:
		return Murmur3Hasher{}
	default:
		return XXHasher{}
	}
}

func (c *Cuckoo[K, D]) hashOf(k K) hashed {
	return c.extractor.hash(c.keyBytes(k))
}

func (c *Cuckoo[K, D]) hooks() *coreHooks[K, D] {
	return &coreHooks[K, D]{
		hashOf:        c.hashOf,
		spillReinsert: func(k K, d D) { c.insert(k, d, false) },
		saveN:         func() int { return c.n },
		restoreN:      func(v int) { c.n = v },
		logger:        c.logger,
	}
}

// Insert adds (key, data) and returns whether it succeeded. It fails only
// if key is the reserved empty key, if key is already present, or if the
// displacement walk exhausts its step budget — in every case the table is
// left unchanged.
func (c *Cuckoo[K, D]) Insert(key K, data D) bool {
	if key == c.empty {
		return false
	}
	return c.insert(key, data, true)
}

func (c *Cuckoo[K, D]) insert(key K, data D, triggerGrowth bool) bool {
	h := c.hashOf(key)
	candidates := c.layout.candidateBuckets(h)

	freest := -1
	bestFree := -1
	for i, b := range candidates {
		free := b.probe(key)
		if free == -1 {
			return false // duplicate
		}
		if free > bestFree {
			bestFree = free
			freest = i
		}
	}

	chainLen := 0
	if bestFree >= 1 {
		if !candidates[freest].insert(key, data) {
			return false
		}
	} else {
		chainLen = displaceWalk(c.displacer, key, data, func(k K) []*bucket[K, D] {
			return c.layout.candidateBuckets(c.hashOf(k))
		})
		if chainLen < 0 {
			if c.logger != nil {
				c.logger.Warnf("displacement budget exhausted for insert")
			}
			return false
		}
	}

	c.n++
	c.layout.onInsertSuccess(h)
	c.histogram.record(chainLen)

	if triggerGrowth {
		c.layout.maybeGrow(c.hooks())
	}
	return true
}

// Find looks up key and returns its data if present.
func (c *Cuckoo[K, D]) Find(key K) (D, bool) {
	h := c.hashOf(key)
	for _, b := range c.layout.candidateBuckets(h) {
		if d, ok := b.find(key); ok {
			return d, true
		}
	}
	var zero D
	return zero, false
}

// Erase removes key if present, returning the count removed (0 or 1).
func (c *Cuckoo[K, D]) Erase(key K) int {
	h := c.hashOf(key)
	for _, b := range c.layout.candidateBuckets(h) {
		if b.remove(key) {
			c.n--
			c.layout.onEraseSuccess(h)
			return 1
		}
	}
	return 0
}

// Len returns the number of elements currently present.
func (c *Cuckoo[K, D]) Len() int {
	return c.n
}

// Cap returns the total slot count across all sub-tables.
func (c *Cuckoo[K, D]) Cap() int {
	return c.layout.capacity()
}

// GetSubtable returns the bucket count and occupied-slot snapshot of
// sub-table i, for instrumentation only. Returns (0, nil) for out-of-range i.
func (c *Cuckoo[K, D]) GetSubtable(i int) (int, []Slot[K, D]) {
	buckets, ok := c.layout.subtableView(i)
	if !ok {
		return 0, nil
	}
	var out []Slot[K, D]
	for bi := range buckets {
		out = append(out, buckets[bi].snapshot()...)
	}
	return len(buckets), out
}

// SubtableCount returns tl.
func (c *Cuckoo[K, D]) SubtableCount() int {
	return c.layout.subtableCount()
}

// ClearHistogram resets the chain-length instrumentation counters.
func (c *Cuckoo[K, D]) ClearHistogram() {
	c.histogram.Clear()
}

// HistogramSnapshot returns a copy of the chain-length counts.
func (c *Cuckoo[K, D]) HistogramSnapshot() []uint64 {
	return c.histogram.Snapshot()
}
