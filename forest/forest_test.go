package forest

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igarnier/orf/impurity"
	"github.com/igarnier/orf/sample"
)

func xorSamples(n int, seed int64) sample.Set {
	rng := rand.New(rand.NewSource(seed))
	set := make(sample.Set, n)
	for i := range set {
		a, b := rng.Intn(2), rng.Intn(2)
		label := a ^ b
		set[i] = sample.New(map[int]int{0: a, 1: b}, label)
	}
	return set
}

func testConfig() Config {
	return Config{
		NumTrees:    25,
		MaxFeatures: 2,
		MaxSamples:  200,
		MinNodeSize: 1,
		Metric:      impurity.Gini,
		NumWorkers:  4,
	}
}

func TestBuildDeterministicAcrossWorkerCounts(t *testing.T) {
	samples := xorSamples(200, 7)
	log := zerolog.Nop()

	cfg1 := testConfig()
	cfg1.NumWorkers = 1
	f1, err := Build(log, rand.New(rand.NewSource(42)), cfg1, samples)
	require.NoError(t, err)

	cfg2 := testConfig()
	cfg2.NumWorkers = 8
	f2, err := Build(log, rand.New(rand.NewSource(42)), cfg2, samples)
	require.NoError(t, err)

	require.Equal(t, len(f1.Trees), len(f2.Trees))
	for i := range f1.Trees {
		assert.Equal(t, f1.Trees[i].OOB, f2.Trees[i].OOB, "tree %d OOB set should match regardless of worker count", i)
	}
}

func TestBuildLearnsXOR(t *testing.T) {
	train := xorSamples(300, 11)
	f, err := Build(zerolog.Nop(), rand.New(rand.NewSource(1)), testConfig(), train)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(99))
	test := xorSamples(100, 55)
	correct := 0
	for _, s := range test {
		label, _ := PredictLabel(f, rng, s)
		if label == s.Label() {
			correct++
		}
	}

	assert.GreaterOrEqual(t, correct, 90, "forest should learn a clean XOR boundary")
}

func TestPredictOOBOmitsNeverOOBRows(t *testing.T) {
	train := xorSamples(50, 3)
	cfg := testConfig()
	cfg.NumTrees = 5
	cfg.MaxSamples = 50
	f, err := Build(zerolog.Nop(), rand.New(rand.NewSource(4)), cfg, train)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(2))
	preds := PredictOOB(f, rng, train)

	seen := make(map[int]bool)
	for _, p := range preds {
		assert.False(t, seen[p.Row], "row %d reported twice", p.Row)
		seen[p.Row] = true
		assert.GreaterOrEqual(t, p.Prob, 0.0)
		assert.LessOrEqual(t, p.Prob, 1.0)
	}
}

func TestPredictLabelMarginNonNegative(t *testing.T) {
	train := xorSamples(200, 9)
	f, err := Build(zerolog.Nop(), rand.New(rand.NewSource(3)), testConfig(), train)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for _, s := range train[:20] {
		_, _, margin := PredictLabelMargin(f, rng, s, false)
		assert.GreaterOrEqual(t, margin, 0.0)

		_, _, marginAll := PredictLabelMargin(f, rng, s, true)
		assert.GreaterOrEqual(t, marginAll, 0.0)
	}
}
