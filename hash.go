package cuckoo

import (
	"math"
	"math/bits"
)

// Hasher produces a deterministic, seeded 64-bit hash of a byte key. It is
// the core's only dependency on a concrete hash function.
type Hasher interface {
	Sum64(seed uint64, key []byte) uint64
}

// hashMode selects how the NH (tab, loc) coordinate pairs are derived from
// the underlying hash function calls.
type hashMode int

const (
	// modeDoubleHash spends a single 64-bit hash word: the low and high
	// 32-bit halves give two base (tab, loc) pairs, and coordinates beyond
	// i=1 are derived by linear combination modulo 2^width.
	modeDoubleHash hashMode = iota
	// modeMultiWord calls the hasher once per coordinate with a distinct
	// seed, giving NH independent hash words at the cost of NH hash calls.
	modeMultiWord
)

// extractor owns the bit layout math: for a table with tl sub-tables,
// TAB_WIDTH + LOC_WIDTH == 32, and TAB_WIDTH == 0 when tl == 1.
type extractor struct {
	hasher   Hasher
	seed     uint64
	nh       int
	tabWidth uint
	locWidth uint
	tabMask  uint32
	locMask  uint32
	mode     hashMode
}

func newExtractor(hasher Hasher, seed uint64, nh int, tl int, mode hashMode) *extractor {
	tabWidth := uint(0)
	if tl > 1 {
		tabWidth = uint(bits.Len(uint(tl - 1)))
	}
	locWidth := 32 - tabWidth
	e := &extractor{
		hasher:   hasher,
		seed:     seed,
		nh:       nh,
		tabWidth: tabWidth,
		locWidth: locWidth,
		mode:     mode,
	}
	if tabWidth > 0 {
		e.tabMask = uint32((uint64(1) << tabWidth) - 1)
	}
	if locWidth >= 32 {
		e.locMask = math.MaxUint32
	} else {
		e.locMask = uint32((uint64(1) << locWidth) - 1)
	}
	return e
}

// hashed is the tuple of NH independent (tab, loc) coordinates produced for
// one key. It never allocates beyond the multi-word case.
type hashed struct {
	mode     hashMode
	word     uint64
	words    []uint64
	tabWidth uint
	locWidth uint
	tabMask  uint32
	locMask  uint32
	nh       int
}

func (e *extractor) hash(key []byte) hashed {
	h := hashed{
		mode:     e.mode,
		tabWidth: e.tabWidth,
		locWidth: e.locWidth,
		tabMask:  e.tabMask,
		locMask:  e.locMask,
		nh:       e.nh,
	}
	switch e.mode {
	case modeMultiWord:
		words := make([]uint64, e.nh)
		for i := 0; i < e.nh; i++ {
			words[i] = e.hasher.Sum64(e.seed+uint64(i)*0x9E3779B97F4A7C15, key)
		}
		h.words = words
	default:
		h.word = e.hasher.Sum64(e.seed, key)
	}
	return h
}

func (h hashed) baseWords() (t0, l0, t1, l1 uint32) {
	low := uint32(h.word)
	high := uint32(h.word >> 32)
	t0 = (low >> h.locWidth) & h.tabMask
	l0 = low & h.locMask
	t1 = (high >> h.locWidth) & h.tabMask
	l1 = high & h.locMask
	return
}

// tab returns the sub-table coordinate for the i-th candidate, i in [0, NH).
func (h hashed) tab(i int) uint32 {
	if h.tabWidth == 0 {
		return 0
	}
	if h.mode == modeMultiWord {
		w := h.words[i]
		return uint32(w>>h.locWidth) & h.tabMask
	}
	t0, _, t1, _ := h.baseWords()
	if i == 0 {
		return t0
	}
	if i == 1 {
		return t1
	}
	mod := uint32(uint64(1) << h.tabWidth)
	return (t0 + uint32(i)*t1) % mod
}

// loc returns the raw, unscaled location coordinate for the i-th candidate.
func (h hashed) loc(i int) uint32 {
	if h.mode == modeMultiWord {
		w := h.words[i]
		return uint32(w) & h.locMask
	}
	_, l0, _, l1 := h.baseWords()
	if i == 0 {
		return l0
	}
	if i == 1 {
		return l1
	}
	mod := uint64(1) << h.locWidth
	return uint32((uint64(l0) + uint64(i)*uint64(l1)) % mod)
}

// physicalIndex maps a raw loc field to a bucket index using the
// float-scaled addressing scheme: floor(loc * factor). The conversion from
// float64 to int truncates toward zero, which must be used identically
// during placement and during migration's "did this live here" check.
func physicalIndex(loc uint32, factor float64) int {
	return int(float64(loc) * factor)
}

func factorFor(llSize int, locWidth uint) float64 {
	return float64(llSize) / math.Pow(2, float64(locWidth))
}
