package tree

import (
	"math/rand"
	"sort"

	"github.com/igarnier/orf/feature"
	"github.com/igarnier/orf/impurity"
	"github.com/igarnier/orf/sample"
)

// costEpsilon absorbs floating point noise when comparing split costs for
// exact ties; it is far smaller than any meaningful difference in Gini cost
// between two distinct partitions of integer counts.
const costEpsilon = 1e-9

// splitCandidate is the winning (feature, threshold, cost) triple returned
// by bestSplit, with random tie-breaking already resolved.
type splitCandidate struct {
	feature   int
	threshold int
	cost      float64
}

type rowValue struct {
	row   int
	value int
	class int
}

// bestSplit scans every threshold of every candidate feature (the §4.4
// Splitter) and returns the minimum-cost split, breaking ties uniformly at
// random via rng (the first half of §4.5's "Select" step).
//
// The scan streams prefix/suffix class counts per feature (grounded on
// tree/build.go's bestSplit and tree/valuer.go's giniValuer) rather than
// materializing a left/right sample list per threshold: the logical record
// stream required by §4.4 is preserved, only the physical left/right index
// slices are deferred until the winning (feature, threshold) pair is known
// (see buildPartition below).
func bestSplit(rng *rand.Rand, metric impurity.Metric, samples sample.Set, rows []int,
	classes sample.ClassIndex, candidates []feature.Candidate, parentCounts []int, n int) (splitCandidate, error) {

	res := newReservoir(rng)
	var best splitCandidate

	leftCounts := classes.Counts()
	rightCounts := classes.Counts()
	buf := make([]rowValue, len(rows))

	for _, cand := range candidates {
		for i, r := range rows {
			buf[i] = rowValue{
				row:   r,
				value: samples[r].ValueOf(cand.Index),
				class: classes.IndexOf(samples[r].Label()),
			}
		}
		sort.Slice(buf, func(i, j int) bool { return buf[i].value < buf[j].value })

		for i := range leftCounts {
			leftCounts[i] = 0
		}
		copy(rightCounts, parentCounts)
		nLeft, nRight := 0, n
		pos := 0 // first index in buf not yet moved from right to left

		for _, t := range cand.Values {
			for pos < len(buf) && buf[pos].value <= t {
				leftCounts[buf[pos].class]++
				rightCounts[buf[pos].class]--
				nLeft++
				nRight--
				pos++
			}

			cost, err := impurity.SplitCost(metric, leftCounts, nLeft, rightCounts, nRight)
			if err != nil {
				return splitCandidate{}, err
			}

			switch {
			case !res.hasValue || cost < best.cost-costEpsilon:
				best = splitCandidate{feature: cand.Index, threshold: t, cost: cost}
				res.reset()
			case cost <= best.cost+costEpsilon:
				if res.tie() {
					best = splitCandidate{feature: cand.Index, threshold: t, cost: cost}
				}
			}
		}
	}

	return best, nil
}

// buildPartition physically partitions rows in place into left (value <=
// threshold) and right (value > threshold) for the winning feature, using
// the teacher's two-pointer in-place scheme (tree/build.go), and returns the
// two sub-slices sharing rows' backing array.
func buildPartition(samples sample.Set, rows []int, feat, threshold int) (left, right []int) {
	i, j := 0, len(rows)
	for i < j {
		if samples[rows[i]].ValueOf(feat) <= threshold {
			i++
		} else {
			j--
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	return rows[:i], rows[i:]
}
