package forest

import (
	"math/rand"
	"sort"

	"github.com/igarnier/orf/sample"
	"github.com/igarnier/orf/tree"
)

// PredictProba gathers the per-tree predicted label for s across every tree
// in f and returns the resulting class probabilities, indexed by compact
// class index, as count(label) / len(f.Trees). Labels never predicted by any
// tree are represented by a 0.0 and need not be inspected by callers that
// only care about the argmax.
func PredictProba(f *Forest, s sample.Sample) []float64 {
	votes := make([]int, f.Classes.Size())
	for _, t := range f.Trees {
		label := tree.Predict(t.Root, s)
		votes[f.Classes.IndexOf(label)]++
	}

	probs := make([]float64, len(votes))
	n := float64(len(f.Trees))
	for i, v := range votes {
		probs[i] = float64(v) / n
	}
	return probs
}

// tiedMax returns the indices achieving the maximum value in probs.
func tiedMax(probs []float64) []int {
	best := -1.0
	var tied []int
	for i, p := range probs {
		switch {
		case p > best:
			best = p
			tied = []int{i}
		case p == best:
			tied = append(tied, i)
		}
	}
	sort.Ints(tied)
	return tied
}

// PredictLabel computes probabilities via PredictProba, then breaks ties at
// the maximum probability uniformly at random via rng.
func PredictLabel(f *Forest, rng *rand.Rand, s sample.Sample) (label int, prob float64) {
	probs := PredictProba(f, s)
	tied := tiedMax(probs)
	idx := tied[rng.Intn(len(tied))]
	return f.Classes.Label(idx), probs[idx]
}

// PredictLabelMargin extends PredictLabel with the margin between the
// chosen label's probability and the runner-up's.
//
// When overAllLabels is false, the runner-up is the maximum probability
// among the OTHER members of the tied-candidate set that produced the
// chosen label — not the full label distribution — so the margin is 0 on a
// tie and the chosen probability otherwise. When true, the runner-up is the
// maximum over every other label, which is the more intuitive reading of
// "margin" but not what the reference behavior computes.
func PredictLabelMargin(f *Forest, rng *rand.Rand, s sample.Sample, overAllLabels bool) (label int, prob float64, margin float64) {
	probs := PredictProba(f, s)
	tied := tiedMax(probs)
	idx := tied[rng.Intn(len(tied))]
	chosen := probs[idx]

	other := 0.0
	if overAllLabels {
		for i, p := range probs {
			if i != idx && p > other {
				other = p
			}
		}
	} else {
		for _, i := range tied {
			if i != idx && probs[i] > other {
				other = probs[i]
			}
		}
	}

	m := chosen - other
	if m < 0 {
		m = 0
	}
	return f.Classes.Label(idx), chosen, m
}

// PredictMany applies PredictLabel to every sample in s, in order.
func PredictMany(f *Forest, rng *rand.Rand, s sample.Set) (labels []int, probs []float64) {
	labels = make([]int, len(s))
	probs = make([]float64, len(s))
	for i, smp := range s {
		labels[i], probs[i] = PredictLabel(f, rng, smp)
	}
	return labels, probs
}

// PredictManyMargin applies PredictLabelMargin to every sample in s, in
// order.
func PredictManyMargin(f *Forest, rng *rand.Rand, s sample.Set, overAllLabels bool) (labels []int, probs []float64, margins []float64) {
	labels = make([]int, len(s))
	probs = make([]float64, len(s))
	margins = make([]float64, len(s))
	for i, smp := range s {
		labels[i], probs[i], margins[i] = PredictLabelMargin(f, rng, smp, overAllLabels)
	}
	return labels, probs, margins
}
