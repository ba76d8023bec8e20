package cuckoo

import (
	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
	"github.com/zeebo/xxh3"
)

// XXHasher wraps cespare/xxhash/v2.
type XXHasher struct{}

func (XXHasher) Sum64(seed uint64, key []byte) uint64 {
	d := xxhash.NewWithSeed(seed)
	d.Write(key)
	return d.Sum64()
}

// XXH3Hasher wraps zeebo/xxh3 through its native seeded entry point. Like
// the other hashers, when selected it produces every hash word the
// extractor uses.
type XXH3Hasher struct{}

func (XXH3Hasher) Sum64(seed uint64, key []byte) uint64 {
	return xxh3.HashSeed(key, seed)
}

// Murmur3Hasher wraps twmb/murmur3, pulled in from the sibling match-making
// repo in the corpus as an alternative seedable hash for callers who prefer
// MurmurHash3 semantics.
type Murmur3Hasher struct{}

func (Murmur3Hasher) Sum64(seed uint64, key []byte) uint64 {
	d := murmur3.SeedNew64(seed)
	d.Write(key)
	return d.Sum64()
}
