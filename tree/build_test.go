package tree

import (
	"math"
	"math/rand"
	"testing"

	"github.com/igarnier/orf/feature"
	"github.com/igarnier/orf/impurity"
	"github.com/igarnier/orf/sample"
)

func TestBestSplitFindsDiscriminatingThreshold(t *testing.T) {
	set := sample.Set{
		sample.New(map[int]int{0: 1}, 0),
		sample.New(map[int]int{0: 2}, 0),
		sample.New(map[int]int{0: 3}, 0),
		sample.New(map[int]int{0: 8}, 1),
		sample.New(map[int]int{0: 9}, 1),
		sample.New(map[int]int{0: 10}, 1),
	}
	classes := sample.NewClassIndex(set)
	rows := []int{0, 1, 2, 3, 4, 5}
	candidates := feature.NonConstant(set, rows)
	parentCounts := countClasses(classes, set, rows)

	rng := rand.New(rand.NewSource(1))
	split, err := bestSplit(rng, impurity.Gini, set, rows, classes, candidates, parentCounts, len(rows))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if split.feature != 0 {
		t.Errorf("expected feature 0, got %d", split.feature)
	}
	if split.threshold < 3 || split.threshold > 7 {
		t.Errorf("expected threshold between 3 and 7, got %d", split.threshold)
	}
	if math.Abs(split.cost) > 1e-9 {
		t.Errorf("expected a pure split (cost 0), got %f", split.cost)
	}
}

func TestBuildPartitionSeparatesByThreshold(t *testing.T) {
	set := sample.Set{
		sample.New(map[int]int{0: 1}, 0),
		sample.New(map[int]int{0: 5}, 1),
		sample.New(map[int]int{0: 2}, 0),
		sample.New(map[int]int{0: 9}, 1),
	}
	rows := []int{0, 1, 2, 3}

	left, right := buildPartition(set, rows, 0, 2)

	for _, r := range left {
		if set[r].ValueOf(0) > 2 {
			t.Errorf("row %d with value %d should not be in left partition", r, set[r].ValueOf(0))
		}
	}
	for _, r := range right {
		if set[r].ValueOf(0) <= 2 {
			t.Errorf("row %d with value %d should not be in right partition", r, set[r].ValueOf(0))
		}
	}
	if len(left)+len(right) != len(rows) {
		t.Errorf("expected partition sizes to sum to %d, got %d", len(rows), len(left)+len(right))
	}
}

func TestBuildGrowsPureLeavesOnSeparableData(t *testing.T) {
	set := sample.Set{
		sample.New(map[int]int{0: 0, 1: 0}, 0),
		sample.New(map[int]int{0: 0, 1: 1}, 1),
		sample.New(map[int]int{0: 1, 1: 0}, 1),
		sample.New(map[int]int{0: 1, 1: 1}, 0),
	}
	classes := sample.NewClassIndex(set)
	rng := rand.New(rand.NewSource(2))

	params := Params{MaxFeatures: 2, MaxSamples: 4, MinNodeSize: 0, Metric: impurity.Gini}
	res, err := Build(rng, params, set, classes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the bootstrap draws MaxSamples rows with replacement, so some rows may
	// be out-of-bag; only the rows the tree was grown on are checked.
	oob := make(map[int]bool)
	for _, r := range res.OOB {
		oob[r] = true
	}
	for i, s := range set {
		if oob[i] {
			continue
		}
		got := Predict(res.Root, s)
		if got != s.Label() {
			t.Errorf("expected prediction %d for sample with features, got %d", s.Label(), got)
		}
	}
}

func TestBuildStopsAtPureSplitWithoutFurtherRecursion(t *testing.T) {
	// feature 0 alone splits this set at cost 0 (rows 0,1 -> label 0;
	// rows 2,3 -> label 1); feature 1 is non-constant on the left side but
	// must not be used to split further.
	set := sample.Set{
		sample.New(map[int]int{0: 0, 1: 0}, 0),
		sample.New(map[int]int{0: 0, 1: 7}, 0),
		sample.New(map[int]int{0: 5, 1: 0}, 1),
		sample.New(map[int]int{0: 5, 1: 7}, 1),
	}
	classes := sample.NewClassIndex(set)
	rng := rand.New(rand.NewSource(5))

	params := Params{MaxFeatures: 2, MaxSamples: 4, MinNodeSize: 1, Metric: impurity.Gini}
	res, err := Build(rng, params, set, classes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root := res.Root
	if root.Leaf {
		t.Fatalf("expected an internal root node")
	}
	if root.Feature != 0 {
		t.Errorf("expected the root to split on feature 0, got %d", root.Feature)
	}
	if !root.Left.Leaf || !root.Right.Leaf {
		t.Errorf("expected both children of a zero-cost split to be leaves, got left.Leaf=%v right.Leaf=%v", root.Left.Leaf, root.Right.Leaf)
	}

	for _, s := range set {
		if got := Predict(root, s); got != s.Label() {
			t.Errorf("expected prediction %d, got %d", s.Label(), got)
		}
	}
}

func TestMajorityClassBreaksTiesUniformly(t *testing.T) {
	set := sample.Set{
		sample.New(nil, 10),
		sample.New(nil, 20),
	}
	classes := sample.NewClassIndex(set)

	rng := rand.New(rand.NewSource(3))
	seen := make(map[int]int)
	for i := 0; i < 200; i++ {
		label := majorityClass(rng, classes, []int{1, 1})
		seen[label]++
	}

	if seen[10] == 0 || seen[20] == 0 {
		t.Errorf("expected both tied labels to be selected at least once over 200 draws, got %v", seen)
	}
}

func TestShuffleIsAPermutation(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	rng := rand.New(rand.NewSource(4))
	shuffled := append([]int(nil), items...)
	shuffle(rng, shuffled)

	seen := make(map[int]bool)
	for _, v := range shuffled {
		seen[v] = true
	}
	for _, v := range items {
		if !seen[v] {
			t.Errorf("shuffle lost element %d", v)
		}
	}
}
