package forest

import (
	"math/rand"
	"sort"

	"github.com/igarnier/orf/sample"
	"github.com/igarnier/orf/tree"
)

// OOBPrediction is one row's out-of-bag evaluation: its true label, the
// majority-vote predicted label among the trees that did not see it during
// training, and the fraction of those trees that agreed with Predicted.
type OOBPrediction struct {
	Row       int
	Truth     int
	Predicted int
	Prob      float64
}

// PredictOOB builds, for every row that was out-of-bag for at least one
// tree, the majority vote across exactly those trees, breaking ties
// uniformly at random via rng. Rows that were in-bag for every tree (never
// OOB) are omitted; this is an expected, not erroneous, outcome for small
// forests or small datasets.
func PredictOOB(f *Forest, rng *rand.Rand, samples sample.Set) []OOBPrediction {
	votes := make(map[int][]int) // row -> vote count per compact class index

	for _, t := range f.Trees {
		for _, row := range t.OOB {
			v, ok := votes[row]
			if !ok {
				v = make([]int, f.Classes.Size())
				votes[row] = v
			}
			label := tree.Predict(t.Root, samples[row])
			v[f.Classes.IndexOf(label)]++
		}
	}

	rows := make([]int, 0, len(votes))
	for row := range votes {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	out := make([]OOBPrediction, 0, len(rows))
	for _, row := range rows {
		counts := votes[row]
		idx, total := majorityVote(rng, counts)
		out = append(out, OOBPrediction{
			Row:       row,
			Truth:     samples[row].Label(),
			Predicted: f.Classes.Label(idx),
			Prob:      float64(counts[idx]) / float64(total),
		})
	}

	return out
}

func majorityVote(rng *rand.Rand, counts []int) (idx int, total int) {
	best, bestCount, nTies := -1, -1, 0
	for i, c := range counts {
		total += c
		switch {
		case c > bestCount:
			best, bestCount, nTies = i, c, 1
		case c == bestCount:
			nTies++
			if rng.Intn(nTies) == 0 {
				best = i
			}
		}
	}
	return best, total
}
