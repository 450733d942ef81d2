package rf

import (
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/igarnier/orf/forest"
	"github.com/igarnier/orf/sample"
)

// MarginPrediction is one sample's batched predict_label_margin result.
type MarginPrediction struct {
	Label  int
	Prob   float64
	Margin float64
}

// PredictProba returns predict_proba as a sparse label->probability map,
// omitting labels with zero votes, matching spec.md's "labels with zero
// count need not appear". ncores is accepted for interface symmetry with
// Train and batch prediction; a single sample has nothing to parallelize
// over.
func PredictProba(ncores int, f *forest.Forest, s sample.Sample) (map[int]float64, error) {
	if ncores < 1 {
		return nil, invalidArgument("ncores must be at least 1")
	}
	probs := forest.PredictProba(f, s)
	out := make(map[int]float64)
	for idx, p := range probs {
		if p > 0 {
			out[f.Classes.Label(idx)] = p
		}
	}
	return out, nil
}

// PredictLabel returns the forest's hard-label prediction for s.
func PredictLabel(ncores int, rng *rand.Rand, f *forest.Forest, s sample.Sample) (label int, prob float64, err error) {
	if ncores < 1 {
		return 0, 0, invalidArgument("ncores must be at least 1")
	}
	label, prob = forest.PredictLabel(f, rng, s)
	return label, prob, nil
}

// PredictLabelMargin returns the forest's hard-label prediction for s along
// with its margin over the runner-up. See forest.PredictLabelMargin for the
// overAllLabels switch's exact semantics.
func PredictLabelMargin(ncores int, rng *rand.Rand, f *forest.Forest, s sample.Sample, overAllLabels bool) (label int, prob, margin float64, err error) {
	if ncores < 1 {
		return 0, 0, 0, invalidArgument("ncores must be at least 1")
	}
	label, prob, margin = forest.PredictLabelMargin(f, rng, s, overAllLabels)
	return label, prob, margin, nil
}

// PredictMany applies PredictProba to every sample in samples, preserving
// input order. Batch prediction is embarrassingly parallel across samples;
// ncores bounds how many run concurrently.
func PredictMany(ncores int, f *forest.Forest, samples sample.Set) ([]map[int]float64, error) {
	if ncores < 1 {
		return nil, invalidArgument("ncores must be at least 1")
	}

	out := make([]map[int]float64, len(samples))
	g := new(errgroup.Group)
	g.SetLimit(ncores)

	for i, s := range samples {
		i, s := i, s
		g.Go(func() error {
			probs := forest.PredictProba(f, s)
			m := make(map[int]float64)
			for idx, p := range probs {
				if p > 0 {
					m[f.Classes.Label(idx)] = p
				}
			}
			out[i] = m
			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}

// PredictManyMargin applies PredictLabelMargin to every sample in samples,
// preserving input order. Unlike PredictMany, this runs sequentially: margin
// prediction draws from rng for tie-breaking, and *rand.Rand is not safe for
// concurrent use by multiple goroutines.
func PredictManyMargin(ncores int, rng *rand.Rand, f *forest.Forest, samples sample.Set, overAllLabels bool) ([]MarginPrediction, error) {
	if ncores < 1 {
		return nil, invalidArgument("ncores must be at least 1")
	}

	out := make([]MarginPrediction, len(samples))
	for i, s := range samples {
		label, prob, margin := forest.PredictLabelMargin(f, rng, s, overAllLabels)
		out[i] = MarginPrediction{Label: label, Prob: prob, Margin: margin}
	}
	return out, nil
}

// PredictOOB delegates to forest.PredictOOB.
func PredictOOB(rng *rand.Rand, f *forest.Forest, trainingSet sample.Set) []forest.OOBPrediction {
	return forest.PredictOOB(f, rng, trainingSet)
}
