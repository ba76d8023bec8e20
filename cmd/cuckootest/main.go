// Command cuckootest is a small flag-driven exerciser for the cuckoo
// container: build a container from flags, drive a randomized workload
// through it, and print the resulting histogram and load factor. It is a
// driver/benchmark harness, not part of the core's own test suite.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	cuckoo "github.com/bharatmlstack/cuckoohash"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	bs := flag.Int("bs", 4, "bucket size")
	nh := flag.Int("nh", 2, "number of hash functions")
	tl := flag.Int("tl", 1, "number of sub-tables")
	alpha := flag.Float64("alpha", 1.1, "capacity inflation factor")
	steps := flag.Int("steps", 256, "displacement step budget")
	seed := flag.Int64("seed", 0, "displacer seed")
	capacityHint := flag.Int("capacity", 1024, "initial capacity hint")
	ops := flag.Int("ops", 100000, "number of keys to insert")
	layoutFlag := flag.String("layout", "flat", "flat|homogeneous|independent")
	hasherFlag := flag.String("hasher", "xxhash", "xxhash|xxh3|murmur3")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	logger := log.Logger

	layout := cuckoo.LayoutFlat
	switch *layoutFlag {
	case "homogeneous":
		layout = cuckoo.LayoutHomogeneous
	case "independent":
		layout = cuckoo.LayoutIndependent
	}

	hasher := cuckoo.HasherXXHash
	switch *hasherFlag {
	case "xxh3":
		hasher = cuckoo.HasherXXH3
	case "murmur3":
		hasher = cuckoo.HasherMurmur3
	}

	c := cuckoo.New[uint64, uint64](*capacityHint,
		cuckoo.WithBucketSize[uint64, uint64](*bs),
		cuckoo.WithNumHashes[uint64, uint64](*nh),
		cuckoo.WithNumSubtables[uint64, uint64](*tl),
		cuckoo.WithAlpha[uint64, uint64](*alpha),
		cuckoo.WithDisplacementSteps[uint64, uint64](*steps),
		cuckoo.WithSeed[uint64, uint64](*seed),
		cuckoo.WithLayout[uint64, uint64](layout),
		cuckoo.WithHasher[uint64, uint64](hasher),
		cuckoo.WithLogger[uint64, uint64](logger),
	)

	rng := rand.New(rand.NewSource(*seed))
	inserted := 0
	for i := 0; i < *ops; i++ {
		k := rng.Uint64()
		if k == 0 {
			continue
		}
		if c.Insert(k, k) {
			inserted++
		}
	}

	logger.Info().
		Int("inserted", inserted).
		Int("n", c.Len()).
		Int("capacity", c.Cap()).
		Float64("load_factor", float64(c.Len())/float64(c.Cap())).
		Msg("insert pass complete")

	snapshot := c.HistogramSnapshot()
	fmt.Fprintf(os.Stdout, "chain-length histogram (last bucket is overflow): %v\n", snapshot)
}
