// Package forest implements the Forest Builder: parallel bootstrap tree
// induction with deterministic per-tree seeding, and the Predictor and
// Out-of-Bag Evaluator that consume the resulting trees.
package forest

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/igarnier/orf/impurity"
	"github.com/igarnier/orf/sample"
	"github.com/igarnier/orf/tree"
)

// Config bundles the forest's hyperparameters. MaxFeatures, MaxSamples, and
// MinNodeSize have already been resolved from ratio-or-count form to
// concrete positive integers by the caller.
type Config struct {
	NumTrees    int
	MaxFeatures int
	MaxSamples  int
	MinNodeSize int
	Metric      impurity.Metric
	NumWorkers  int
}

// Forest is a trained ensemble: one tree per bootstrap draw, plus the class
// index shared by every tree (so leaf labels and vote slots line up).
type Forest struct {
	Trees   []tree.Result
	Classes sample.ClassIndex
}

// Build grows Config.NumTrees trees, each from an independent bootstrap
// draw of samples, fanning work out across Config.NumWorkers goroutines via
// an errgroup with a concurrency limit.
//
// Determinism does not depend on worker scheduling: master draws one
// uint32 seed per tree, in order, before any tree build starts (grounded
// on forest.go's per-worker RandState seeding, replacing its
// time.Now()-derived seeds with a reproducible stream drawn from the
// caller's own RNG) and each tree's result is written into result[i] by
// tree position rather than completion order. Workers never touch master.
func Build(log zerolog.Logger, master *rand.Rand, cfg Config, samples sample.Set) (*Forest, error) {
	if len(samples) == 0 {
		return nil, errors.New("forest: cannot build from an empty sample set")
	}

	classes := sample.NewClassIndex(samples)

	seeds := make([]int64, cfg.NumTrees)
	for i := range seeds {
		seeds[i] = int64(master.Uint32())
	}

	results := make([]tree.Result, cfg.NumTrees)
	params := tree.Params{
		MaxFeatures: cfg.MaxFeatures,
		MaxSamples:  cfg.MaxSamples,
		MinNodeSize: cfg.MinNodeSize,
		Metric:      cfg.Metric,
	}

	g := new(errgroup.Group)
	if cfg.NumWorkers > 0 {
		g.SetLimit(cfg.NumWorkers)
	}

	for i := 0; i < cfg.NumTrees; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seeds[i]))
			res, err := tree.Build(rng, params, samples, classes)
			if err != nil {
				return errors.Wrapf(err, "forest: building tree %d", i)
			}
			results[i] = res
			log.Debug().Int("tree", i).Int("oob_size", len(res.OOB)).Msg("tree built")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Int("num_trees", cfg.NumTrees).Int("num_samples", len(samples)).Msg("forest built")

	return &Forest{Trees: results, Classes: classes}, nil
}
