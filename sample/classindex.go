package sample

// ClassIndex maps the (unordered, possibly sparse) integer class labels
// observed in a training set to a dense [0, C) range, so impurity counts and
// vote tallies can live in plain slices instead of maps. The assignment
// order is first-appearance order over the training set, which is fixed and
// deterministic for a given input — required so that two tree builds over
// the same bootstrap draw the same sequence of tie-break decisions.
type ClassIndex struct {
	labels []int // compact index -> original label
	index  map[int]int
}

// NewClassIndex scans every sample in the set and assigns compact indices in
// first-appearance order.
func NewClassIndex(samples Set) ClassIndex {
	ci := ClassIndex{index: make(map[int]int)}
	for _, s := range samples {
		ci.add(s.Label())
	}
	return ci
}

// FromLabels rebuilds a ClassIndex from an ordered, distinct label list —
// the inverse of walking Counts()/Label() — so a serializer can persist
// just the compact-index-to-label mapping and reconstruct an equivalent
// index without re-scanning a training set.
func FromLabels(labels []int) ClassIndex {
	ci := ClassIndex{index: make(map[int]int, len(labels))}
	for _, label := range labels {
		ci.add(label)
	}
	return ci
}

func (ci *ClassIndex) add(label int) int {
	if idx, ok := ci.index[label]; ok {
		return idx
	}
	idx := len(ci.labels)
	ci.index[label] = idx
	ci.labels = append(ci.labels, label)
	return idx
}

// Size returns the number of distinct classes, C.
func (ci ClassIndex) Size() int {
	return len(ci.labels)
}

// IndexOf returns the compact index for a label. The label must have been
// observed when the index was built; callers only ever look up labels drawn
// from the same training set the index was built from.
func (ci ClassIndex) IndexOf(label int) int {
	return ci.index[label]
}

// Label returns the original label for a compact index.
func (ci ClassIndex) Label(idx int) int {
	return ci.labels[idx]
}

// Counts returns a zeroed per-class count slice sized for this index.
func (ci ClassIndex) Counts() []int {
	return make([]int, len(ci.labels))
}
