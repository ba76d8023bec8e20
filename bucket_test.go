package cuckoo

import "testing"

func TestBucket_InsertFindRemove(t *testing.T) {
	t.Run("basic insert and find", func(t *testing.T) {
		b := newBucket[int, string](4, 0)

		if !b.insert(1, "one") {
			t.Fatal("expected insert to succeed")
		}
		if !b.insert(2, "two") {
			t.Fatal("expected insert to succeed")
		}

		if d, ok := b.find(1); !ok || d != "one" {
			t.Errorf("find(1) = (%q, %v), want (\"one\", true)", d, ok)
		}
		if d, ok := b.find(2); !ok || d != "two" {
			t.Errorf("find(2) = (%q, %v), want (\"two\", true)", d, ok)
		}
		if _, ok := b.find(3); ok {
			t.Error("find(3) should not be found")
		}
	})

	t.Run("duplicate insert rejected", func(t *testing.T) {
		b := newBucket[int, string](4, 0)
		b.insert(5, "a")
		if b.insert(5, "b") {
			t.Error("expected duplicate insert to fail")
		}
	})

	t.Run("full bucket rejects insert", func(t *testing.T) {
		b := newBucket[int, string](2, 0)
		b.insert(1, "a")
		b.insert(2, "b")
		if b.insert(3, "c") {
			t.Error("expected insert into full bucket to fail")
		}
	})

	t.Run("probe reports free slots and duplicates", func(t *testing.T) {
		b := newBucket[int, string](4, 0)
		if free := b.probe(1); free != 4 {
			t.Errorf("probe on empty bucket = %d, want 4", free)
		}
		b.insert(1, "a")
		if free := b.probe(1); free != -1 {
			t.Errorf("probe(1) after insert = %d, want -1", free)
		}
		if free := b.probe(2); free != 3 {
			t.Errorf("probe(2) = %d, want 3", free)
		}
	})

	t.Run("remove preserves left-packing", func(t *testing.T) {
		b := newBucket[int, string](4, 0)
		b.insert(1, "a")
		b.insert(2, "b")
		b.insert(3, "c")

		if !b.remove(2) {
			t.Fatal("expected remove(2) to succeed")
		}
		if b.remove(2) {
			t.Error("expected second remove(2) to fail")
		}

		// B1: all empties trail all occupied slots.
		seenEmpty := false
		for _, s := range b.slots {
			if s.Key == b.empty {
				seenEmpty = true
				continue
			}
			if seenEmpty {
				t.Fatal("occupied slot found after an empty slot, B1 violated")
			}
		}

		if _, ok := b.find(1); !ok {
			t.Error("expected key 1 to remain after removing 2")
		}
		if _, ok := b.find(3); !ok {
			t.Error("expected key 3 to remain after removing 2")
		}
		if _, ok := b.find(2); ok {
			t.Error("expected key 2 to be gone")
		}
	})

	t.Run("remove from empty bucket fails", func(t *testing.T) {
		b := newBucket[int, string](4, 0)
		if b.remove(1) {
			t.Error("expected remove on empty bucket to fail")
		}
	})

	t.Run("replace swaps and returns prior occupant", func(t *testing.T) {
		b := newBucket[int, string](4, 0)
		b.insert(1, "a")
		old := b.replace(0, 2, "b")
		if old.Key != 1 || old.Data != "a" {
			t.Errorf("replace returned %+v, want {1 a}", old)
		}
		if d, ok := b.find(2); !ok || d != "b" {
			t.Errorf("find(2) after replace = (%q, %v)", d, ok)
		}
	})

	t.Run("full reports correctly", func(t *testing.T) {
		b := newBucket[int, string](2, 0)
		if b.full() {
			t.Error("empty bucket should not report full")
		}
		b.insert(1, "a")
		if b.full() {
			t.Error("half-full bucket should not report full")
		}
		b.insert(2, "b")
		if !b.full() {
			t.Error("bucket at capacity should report full")
		}
	})
}
