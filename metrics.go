package rf

import (
	"math"

	"github.com/igarnier/orf/forest"
	"github.com/igarnier/orf/rocauc"
)

// Accuracy returns the fraction of OOB predictions matching their truth
// label.
func Accuracy(preds []forest.OOBPrediction) float64 {
	if len(preds) == 0 {
		return 0.0
	}
	correct := 0
	for _, p := range preds {
		if p.Predicted == p.Truth {
			correct++
		}
	}
	return float64(correct) / float64(len(preds))
}

// MCC computes the Matthews correlation coefficient for targetClass as a
// one-vs-rest binary classifier over preds. Returns 0.0 when the
// denominator is zero (documented convention: an unscored/degenerate
// confusion matrix is not a "perfectly wrong" one).
func MCC(preds []forest.OOBPrediction, targetClass int) float64 {
	var tp, tn, fp, fn float64
	for _, p := range preds {
		predPos := p.Predicted == targetClass
		truePos := p.Truth == targetClass
		switch {
		case predPos && truePos:
			tp++
		case !predPos && !truePos:
			tn++
		case predPos && !truePos:
			fp++
		default:
			fn++
		}
	}

	denom := math.Sqrt((tp + fp) * (tp + fn) * (tn + fp) * (tn + fn))
	if denom == 0 {
		return 0.0
	}
	return (tp*tn - fp*fn) / denom
}

// ROCAUC computes the area under the ROC curve for targetClass, delegating
// the curve and integration to the rocauc package. score(row) = prob if the
// row's prediction is targetClass, else 1-prob, per spec.md's construction.
func ROCAUC(preds []forest.OOBPrediction, targetClass int) (float64, error) {
	if len(preds) == 0 {
		return 0, invalidArgument("cannot compute ROC AUC over an empty prediction set")
	}

	points := make([]rocauc.Point, len(preds))
	for i, p := range preds {
		score := p.Prob
		if p.Predicted != targetClass {
			score = 1 - p.Prob
		}
		points[i] = rocauc.Point{Score: score, IsTarget: p.Truth == targetClass}
	}
	return rocauc.AUC(points), nil
}
