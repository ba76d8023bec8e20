package cuckoo

import "math/rand"

// displacer runs the random-walk eviction chain used when every NH
// candidate bucket for a pending element is full. It owns a per-instance
// PRNG seeded at construction time so that two containers built with the
// same seed and driven through the same operations reproduce the same
// sequence of chain lengths (testable property 8).
type displacer struct {
	rng   *rand.Rand
	steps int
}

func newDisplacer(seed int64, steps int) *displacer {
	return &displacer{rng: rand.New(rand.NewSource(seed)), steps: steps}
}

// displacementStep is one entry in the chain log: which bucket and slot
// were overwritten, and what was there before. Undo replays this log in
// reverse to restore the pre-call state exactly on a failed walk.
type displacementStep[K comparable, D any] struct {
	bucket *bucket[K, D]
	slot   int
	prior  Slot[K, D]
}

// displaceWalk attempts to seat (k, data), whose NH candidate buckets are
// all full, by evicting a chain of incumbents. candidates(key) must return
// that key's NH candidate bucket pointers under the table's current
// addressing. Returns the chain length (>= 0) on success, or -1 if the walk
// exhausts its step budget, in which case every bucket touched during the
// walk is restored to its pre-call contents.
func displaceWalk[K comparable, D any](d *displacer, k K, data D, candidates func(K) []*bucket[K, D]) int {
	cands := candidates(k)
	cur := cands[d.rng.Intn(len(cands))]

	var log []displacementStep[K, D]
	pendingKey, pendingData := k, data

	for step := 0; step < d.steps; step++ {
		if !cur.full() {
			if !cur.insert(pendingKey, pendingData) {
				undoWalk(log)
				return -1
			}
			return len(log)
		}

		r := d.rng.Intn(cur.size())
		evicted := cur.replace(r, pendingKey, pendingData)
		log = append(log, displacementStep[K, D]{bucket: cur, slot: r, prior: evicted})

		evictedCands := candidates(evicted.Key)
		next := pickOtherBucket(evictedCands, cur, d.rng)
		if next == nil {
			// Every candidate of the evicted key is cur itself: keep walking
			// in cur, evicting another random slot on the next step.
			next = cur
		}

		pendingKey, pendingData, cur = evicted.Key, evicted.Data, next
	}

	if !cur.full() {
		if cur.insert(pendingKey, pendingData) {
			return len(log)
		}
	}

	undoWalk(log)
	return -1
}

func undoWalk[K comparable, D any](log []displacementStep[K, D]) {
	for i := len(log) - 1; i >= 0; i-- {
		step := log[i]
		step.bucket.replace(step.slot, step.prior.Key, step.prior.Data)
	}
}

func pickOtherBucket[K comparable, D any](candidates []*bucket[K, D], exclude *bucket[K, D], rng *rand.Rand) *bucket[K, D] {
	others := make([]*bucket[K, D], 0, len(candidates)-1)
	for _, c := range candidates {
		if c != exclude {
			others = append(others, c)
		}
	}
	if len(others) == 0 {
		return nil
	}
	return others[rng.Intn(len(others))]
}
