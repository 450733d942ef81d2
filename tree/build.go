package tree

import (
	"math/rand"

	"github.com/igarnier/orf/bootstrap"
	"github.com/igarnier/orf/feature"
	"github.com/igarnier/orf/impurity"
	"github.com/igarnier/orf/sample"
)

// Params bundles the Tree Builder's hyperparameters; callers resolve
// ratio-or-count values to concrete positive integers before reaching this
// package.
type Params struct {
	MaxFeatures int
	MaxSamples  int
	MinNodeSize int
	Metric      impurity.Metric
}

// Result is what one tree build returns: the grown tree, and the row
// indices that never appeared in its bootstrap draw.
type Result struct {
	Root *Node
	OOB  []int
}

// Build runs the bootstrap draw followed by CART induction using rng as the
// tree's sole source of randomness: the bootstrap draw, every per-node
// feature shuffle, every split tie-break, and every majority-class
// tie-break all come from this one *rand.Rand, in that order, so a fixed
// seed always yields the same tree regardless of which goroutine runs it.
func Build(rng *rand.Rand, params Params, samples sample.Set, classes sample.ClassIndex) (Result, error) {
	rows, oob := bootstrap.Sample(rng, params.MaxSamples, len(samples))

	root, err := buildNode(rng, params, samples, classes, rows)
	if err != nil {
		return Result{}, err
	}

	return Result{Root: root, OOB: oob}, nil
}

// work is one pending node on the build stack.
type work struct {
	node *Node
	rows []int
}

// buildNode grows the tree rooted at rows using an explicit LIFO stack
// rather than recursion: the right child is pushed before the left child so
// the left subtree is popped, and its RNG draws consumed, before the right.
func buildNode(rng *rand.Rand, params Params, samples sample.Set, classes sample.ClassIndex, rows []int) (*Node, error) {
	root := &Node{}
	stack := []work{{node: root, rows: rows}}

	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := w.node
		counts := countClasses(classes, samples, w.rows)

		if len(w.rows) <= params.MinNodeSize {
			n.Leaf = true
			n.Label = majorityClass(rng, classes, counts)
			continue
		}

		candidates := feature.NonConstant(samples, w.rows)
		shuffle(rng, candidates)
		if len(candidates) > params.MaxFeatures {
			candidates = candidates[:params.MaxFeatures]
		}

		if len(candidates) == 0 {
			n.Leaf = true
			n.Label = majorityClass(rng, classes, counts)
			continue
		}

		split, err := bestSplit(rng, params.Metric, samples, w.rows, classes, candidates, counts, len(w.rows))
		if err != nil {
			return nil, err
		}

		left, right := buildPartition(samples, w.rows, split.feature, split.threshold)

		switch {
		case len(left) == 0 || len(right) == 0:
			n.Leaf = true
			n.Label = majorityClass(rng, classes, counts)
		case split.cost <= costEpsilon:
			// pure split: both sides already agree on a single class,
			// nothing left to gain by recursing further.
			n.Feature, n.Threshold = split.feature, split.threshold
			n.Left = &Node{Leaf: true, Label: majorityClass(rng, classes, countClasses(classes, samples, left))}
			n.Right = &Node{Leaf: true, Label: majorityClass(rng, classes, countClasses(classes, samples, right))}
		default:
			n.Feature, n.Threshold = split.feature, split.threshold
			n.Left = &Node{}
			n.Right = &Node{}
			stack = append(stack, work{node: n.Right, rows: right})
			stack = append(stack, work{node: n.Left, rows: left})
		}
	}

	return root, nil
}

func countClasses(classes sample.ClassIndex, samples sample.Set, rows []int) []int {
	counts := classes.Counts()
	for _, r := range rows {
		counts[classes.IndexOf(samples[r].Label())]++
	}
	return counts
}

// majorityClass returns the class with the highest count, breaking ties
// uniformly at random via rng. counts is indexed by compact class index,
// which fixes a deterministic scan order (first-appearance order in the
// training set) independent of Go's randomized map iteration.
func majorityClass(rng *rand.Rand, classes sample.ClassIndex, counts []int) int {
	res := newReservoir(rng)
	best := -1
	bestCount := -1

	for idx, c := range counts {
		switch {
		case c > bestCount:
			bestCount = c
			best = idx
			res.reset()
		case c == bestCount:
			if res.tie() {
				best = idx
			}
		}
	}

	return classes.Label(best)
}
