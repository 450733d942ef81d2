// Package rocauc computes the area under the ROC curve for a target class
// from (score, is_target) pairs, delegating the curve to gonum's stat
// package and the integration to gonum's integrate package rather than
// reimplementing either.
package rocauc

import (
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// Point is one out-of-bag evaluation's contribution to a class's ROC curve:
// the predicted probability for the row (flipped to 1-prob when the
// prediction missed the target class, per §4.9) and whether the row's true
// label is the target class.
type Point struct {
	Score    float64
	IsTarget bool
}

// AUC sorts points by ascending score, hands the resulting (score, class)
// series to gonum's ROC curve builder, and integrates the curve with
// gonum's trapezoidal AUC. Returns 0.0 when there are no positive or no
// negative examples, since AUC is undefined in either case and gonum
// would otherwise return NaN.
func AUC(points []Point) float64 {
	if len(points) == 0 {
		return 0.0
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Score < sorted[j].Score })

	scores := make([]float64, len(sorted))
	classes := make([]bool, len(sorted))
	nPos, nNeg := 0, 0
	for i, p := range sorted {
		scores[i] = p.Score
		classes[i] = p.IsTarget
		if p.IsTarget {
			nPos++
		} else {
			nNeg++
		}
	}

	if nPos == 0 || nNeg == 0 {
		return 0.0
	}

	tpr, fpr, _ := stat.ROC(nil, scores, classes, nil)
	return integrate.Trapezoidal(fpr, tpr)
}
