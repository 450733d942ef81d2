package rf

import (
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/igarnier/orf/forest"
	"github.com/igarnier/orf/impurity"
	"github.com/igarnier/orf/sample"
)

// Train validates the supplied hyperparameters, resolves the ratio-or-count
// ones against the training set's size and feature cardinality, and builds
// a forest. Progress is logged through zerolog's global logger at debug
// level, one line per tree, and at info level once the forest is complete.
func Train(ncores int, rng *rand.Rand, metric impurity.Metric, ntrees int,
	maxFeatures, maxSamples RatioOrCount, cardFeatures, minNodeSize int,
	trainingSet sample.Set) (*forest.Forest, error) {

	if ncores < 1 {
		return nil, invalidArgument("ncores must be at least 1")
	}
	if ntrees < 1 {
		return nil, invalidArgument("ntrees must be at least 1")
	}
	n := len(trainingSet)
	if n == 0 {
		return nil, invalidArgument("training set must not be empty")
	}
	if minNodeSize < 1 || minNodeSize >= n {
		return nil, invalidArgument("min_node_size must satisfy 1 <= min_node_size < N")
	}
	switch metric {
	case impurity.Entropy, impurity.MCC:
		return nil, unimplemented("metric " + metric.String())
	case impurity.Gini:
	default:
		return nil, invalidArgument("unknown metric")
	}

	resolvedFeatures, err := maxFeatures.Resolve(cardFeatures)
	if err != nil {
		return nil, err
	}
	resolvedSamples, err := maxSamples.Resolve(n)
	if err != nil {
		return nil, err
	}

	cfg := forest.Config{
		NumTrees:    ntrees,
		MaxFeatures: resolvedFeatures,
		MaxSamples:  resolvedSamples,
		MinNodeSize: minNodeSize,
		Metric:      metric,
		NumWorkers:  ncores,
	}

	f, err := forest.Build(log.Logger, rng, cfg, trainingSet)
	if err != nil {
		return nil, internal("building forest", err)
	}
	return f, nil
}
