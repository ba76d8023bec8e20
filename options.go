package cuckoo

import "github.com/rs/zerolog"

// LayoutKind selects one of the three table layout variants. These are
// selected once at construction time via WithLayout.
type LayoutKind int

const (
	// LayoutFlat is tl=1: a single sub-table, tab field ignored.
	LayoutFlat LayoutKind = iota
	// LayoutHomogeneous is tl>1 sub-tables growing in lockstep.
	LayoutHomogeneous
	// LayoutIndependent is tl>1 sub-tables, each sized and grown on its own.
	LayoutIndependent
)

// HasherKind selects one of the three concrete hashers wired in from the
// example corpus.
type HasherKind int

const (
	HasherXXHash HasherKind = iota
	HasherXXH3
	HasherMurmur3
)

type config[K comparable, D any] struct {
	alpha             float64
	displacementSteps int
	seed              int64
	bucketSize        int
	numHashes         int
	numSubtables      int
	layout            LayoutKind
	hasher            HasherKind
	hashMode          hashMode
	emptyKey          K
	keyBytes          func(K) []byte
	logger            zerolog.Logger
}

// Option configures a Cuckoo container at construction time: bucket size,
// number of hash functions, sub-table count, hash-function choice, and
// displacement step budget are all constructor-time functional options
// rather than compile-time template parameters.
type Option[K comparable, D any] func(*config[K, D])

// WithAlpha sets the target capacity inflation factor used when sizing a
// grown table. Defaults to 1.1.
func WithAlpha[K comparable, D any](alpha float64) Option[K, D] {
	return func(c *config[K, D]) { c.alpha = alpha }
}

// WithDisplacementSteps sets the random walk's step budget. Defaults to 256.
func WithDisplacementSteps[K comparable, D any](steps int) Option[K, D] {
	return func(c *config[K, D]) { c.displacementSteps = steps }
}

// WithSeed sets the displacer's PRNG seed. Defaults to 0.
func WithSeed[K comparable, D any](seed int64) Option[K, D] {
	return func(c *config[K, D]) { c.seed = seed }
}

// WithBucketSize sets bs, the fixed slot count per bucket. Defaults to 4.
func WithBucketSize[K comparable, D any](bs int) Option[K, D] {
	return func(c *config[K, D]) { c.bucketSize = bs }
}

// WithNumHashes sets nh, the number of candidate buckets per key. Must be
// >= 2. Defaults to 2.
func WithNumHashes[K comparable, D any](nh int) Option[K, D] {
	return func(c *config[K, D]) { c.numHashes = nh }
}

// WithNumSubtables sets tl, the number of sub-tables. Must be a power of
// two >= 1. Defaults to 1 (flat).
func WithNumSubtables[K comparable, D any](tl int) Option[K, D] {
	return func(c *config[K, D]) { c.numSubtables = tl }
}

// WithLayout selects the table layout variant. Defaults to LayoutFlat.
func WithLayout[K comparable, D any](kind LayoutKind) Option[K, D] {
	return func(c *config[K, D]) { c.layout = kind }
}

// WithHasher selects the concrete hash function. Defaults to HasherXXHash.
func WithHasher[K comparable, D any](kind HasherKind) Option[K, D] {
	return func(c *config[K, D]) { c.hasher = kind }
}

// WithMultiWordHashing switches the extractor from double-hashing (one hash
// word split into two base pairs, the rest derived) to multi-word (one
// independent hash call per NH coordinate). Useful when nh > 2 and stronger
// independence between candidates is wanted at the cost of extra hashing.
func WithMultiWordHashing[K comparable, D any]() Option[K, D] {
	return func(c *config[K, D]) { c.hashMode = modeMultiWord }
}

// WithEmptyKey overrides the reserved "empty" sentinel key, for callers
// whose K's zero value is a legal payload key.
func WithEmptyKey[K comparable, D any](empty K) Option[K, D] {
	return func(c *config[K, D]) { c.emptyKey = empty }
}

// WithKeyBytes supplies the byte serialization used to hash K. Without it,
// any K not covered by the built-in default (string, []byte, and the
// signed/unsigned integer kinds) is hashed through its fmt "%v" form.
func WithKeyBytes[K comparable, D any](fn func(K) []byte) Option[K, D] {
	return func(c *config[K, D]) { c.keyBytes = fn }
}

// WithLogger overrides the zerolog.Logger used for growth/migration/
// displacement diagnostics. Defaults to a disabled logger.
func WithLogger[K comparable, D any](logger zerolog.Logger) Option[K, D] {
	return func(c *config[K, D]) { c.logger = logger }
}

func defaultConfig[K comparable, D any]() config[K, D] {
	var empty K
	return config[K, D]{
		alpha:             1.1,
		displacementSteps: 256,
		seed:              0,
		bucketSize:        4,
		numHashes:         2,
		numSubtables:      1,
		layout:            LayoutFlat,
		hasher:            HasherXXHash,
		hashMode:          modeDoubleHash,
		emptyKey:          empty,
		logger:            zerolog.Nop(),
	}
}
