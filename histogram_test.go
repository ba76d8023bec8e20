package cuckoo

import "testing"

func TestHistogram(t *testing.T) {
	t.Run("records chain lengths at their own index", func(t *testing.T) {
		h := newHistogram(4)
		h.record(0)
		h.record(0)
		h.record(2)
		h.record(4)

		snap := h.Snapshot()
		if snap[0] != 2 {
			t.Errorf("snap[0] = %d, want 2", snap[0])
		}
		if snap[2] != 1 {
			t.Errorf("snap[2] = %d, want 1", snap[2])
		}
		if snap[4] != 1 {
			t.Errorf("snap[4] = %d, want 1", snap[4])
		}
	})

	t.Run("negative chain lengths are ignored", func(t *testing.T) {
		h := newHistogram(4)
		h.record(-1)
		for _, c := range h.Snapshot() {
			if c != 0 {
				t.Fatalf("expected all-zero histogram after recording a negative length, got %v", h.Snapshot())
			}
		}
	})

	t.Run("chain length beyond steps falls into overflow", func(t *testing.T) {
		h := newHistogram(2)
		h.record(5)
		snap := h.Snapshot()
		if snap[len(snap)-1] != 1 {
			t.Errorf("overflow bucket = %d, want 1", snap[len(snap)-1])
		}
	})

	t.Run("clear resets every counter including overflow", func(t *testing.T) {
		h := newHistogram(2)
		h.record(0)
		h.record(100)
		h.Clear()
		for i, c := range h.Snapshot() {
			if c != 0 {
				t.Errorf("snap[%d] = %d after Clear, want 0", i, c)
			}
		}
	})

	t.Run("snapshot is a copy, not a live view", func(t *testing.T) {
		h := newHistogram(2)
		snap := h.Snapshot()
		h.record(0)
		if snap[0] != 0 {
			t.Error("mutating histogram after Snapshot should not affect the earlier snapshot")
		}
	})
}
