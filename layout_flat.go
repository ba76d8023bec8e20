package cuckoo

// flatLayout is the tl=1 specialization: a single sub-table, tab field
// ignored everywhere. Growth for a single sub-table is just the
// homogeneous algorithm instantiated with tl=1, so flatLayout embeds it
// rather than duplicating it.
type flatLayout[K comparable, D any] struct {
	*homogeneousLayout[K, D]
}

func newFlatLayout[K comparable, D any](llSize, bs int, alpha float64, empty K) *flatLayout[K, D] {
	return &flatLayout[K, D]{homogeneousLayout: newHomogeneousLayout[K, D](1, llSize, bs, 32, alpha, empty)}
}
