package cuckoo

import "testing"

func twoBucketCandidates(buckets [][]*bucket[int, string]) func(int) []*bucket[int, string] {
	return func(k int) []*bucket[int, string] {
		return buckets[k%len(buckets)]
	}
}

func TestDisplaceWalk(t *testing.T) {
	t.Run("succeeds into a non-full candidate without eviction", func(t *testing.T) {
		b0 := newBucket[int, string](2, 0)
		b1 := newBucket[int, string](2, 0)
		cands := [][]*bucket[int, string]{{&b0, &b1}}
		d := newDisplacer(1, 16)

		n := displaceWalk(d, 100, "a", twoBucketCandidates(cands))
		if n < 0 {
			t.Fatal("expected displaceWalk to succeed into an empty bucket")
		}

		found := false
		for _, b := range []*bucket[int, string]{&b0, &b1} {
			if data, ok := b.find(100); ok {
				found = true
				if data != "a" {
					t.Errorf("found data %q, want \"a\"", data)
				}
			}
		}
		if !found {
			t.Error("key 100 not found in either candidate bucket after displaceWalk")
		}
	})

	t.Run("evicts an incumbent to make room", func(t *testing.T) {
		// b2 is always empty and reachable only as an alternate candidate of
		// the keys already seated in b0/b1, so a single eviction must chain
		// through it for the walk to terminate successfully.
		b0 := newBucket[int, string](1, -1)
		b1 := newBucket[int, string](1, -1)
		b2 := newBucket[int, string](1, -1)
		b0.insert(1, "one")
		b1.insert(2, "two")
		cands := map[int][]*bucket[int, string]{
			1: {&b0, &b2},
			2: {&b1, &b2},
			3: {&b0, &b1},
		}
		candidates := func(k int) []*bucket[int, string] { return cands[k] }

		d := newDisplacer(7, 32)
		n := displaceWalk(d, 3, "three", candidates)
		if n < 0 {
			t.Fatal("expected displaceWalk to succeed by evicting an incumbent into the empty bucket")
		}

		total := 0
		for _, b := range []*bucket[int, string]{&b0, &b1, &b2} {
			total += len(b.snapshot())
		}
		if total != 3 {
			t.Errorf("expected 3 occupied slots after eviction, got %d", total)
		}
		found3 := false
		for _, b := range []*bucket[int, string]{&b0, &b1} {
			if _, ok := b.find(3); ok {
				found3 = true
			}
		}
		if !found3 {
			t.Error("key 3 not placed into either of its own candidate buckets")
		}
	})

	t.Run("restores all touched buckets on exhausted budget", func(t *testing.T) {
		// Only two candidate buckets exist and both are always full and always
		// contain each other's only eviction target: the walk can never
		// terminate and must undo back to the exact starting state.
		b0 := newBucket[int, string](1, -1)
		b1 := newBucket[int, string](1, -1)
		b0.insert(10, "ten")
		b1.insert(20, "twenty")
		cands := map[int][]*bucket[int, string]{
			10: {&b0, &b1},
			20: {&b0, &b1},
			30: {&b0, &b1},
		}
		candidates := func(k int) []*bucket[int, string] { return cands[k] }

		d := newDisplacer(3, 8)
		n := displaceWalk(d, 30, "thirty", candidates)
		if n != -1 {
			t.Fatalf("expected walk to fail (budget exhausted), got n=%d", n)
		}

		if d0, ok := b0.find(10); !ok || d0 != "ten" {
			t.Errorf("bucket 0 not restored: find(10) = (%q, %v)", d0, ok)
		}
		if d1, ok := b1.find(20); !ok || d1 != "twenty" {
			t.Errorf("bucket 1 not restored: find(20) = (%q, %v)", d1, ok)
		}
		if _, ok := b0.find(30); ok {
			t.Error("key 30 should not have been left behind in bucket 0")
		}
		if _, ok := b1.find(30); ok {
			t.Error("key 30 should not have been left behind in bucket 1")
		}
	})
}

func TestUndoWalkReversesInOrder(t *testing.T) {
	b := newBucket[int, string](2, -1)
	b.insert(1, "a")

	prior := b.replace(0, 2, "b")
	log := []displacementStep[int, string]{{bucket: &b, slot: 0, prior: prior}}

	undoWalk(log)

	if d, ok := b.find(1); !ok || d != "a" {
		t.Errorf("after undo, find(1) = (%q, %v), want (\"a\", true)", d, ok)
	}
	if _, ok := b.find(2); ok {
		t.Error("after undo, key 2 should no longer be present")
	}
}
