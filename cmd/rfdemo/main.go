// rfdemo trains a forest on an embedded toy dataset, reports its OOB
// accuracy, and, when -model is given, saves it in the gob persistence
// format.
package main

import (
	"flag"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/igarnier/orf"
	"github.com/igarnier/orf/impurity"
	"github.com/igarnier/orf/sample"
)

// mflag, the teacher's original flag package, is a vendored fork of an old
// Docker CLI flag parser with no independent releases; a demo binary with
// five plain flags gets nothing from it that the standard library's flag
// package doesn't already provide, so it isn't wired here. See DESIGN.md.
var (
	nTrees     = flag.Int("trees", 100, "number of trees in the forest")
	nWorkers   = flag.Int("workers", 1, "number of workers for fitting trees")
	seed       = flag.Int64("seed", 1, "master RNG seed")
	modelFile  = flag.String("model", "", "path to write the trained model to (gob)")
	verboseLog = flag.Bool("verbose", false, "enable debug-level training logs")
)

func main() {
	flag.Parse()

	if *verboseLog {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	train := ringDataset(600, *seed)
	rng := rand.New(rand.NewSource(*seed))

	f, err := rf.Train(*nWorkers, rng, impurity.Gini, *nTrees,
		rf.Ratio(1.0), rf.Ratio(0.8), 2, 1, train)
	if err != nil {
		log.Fatal().Err(err).Msg("training failed")
	}

	oobRng := rand.New(rand.NewSource(*seed + 1))
	preds := rf.PredictOOB(oobRng, f, train)
	log.Info().
		Float64("accuracy", rf.Accuracy(preds)).
		Int("oob_rows", len(preds)).
		Msg("out-of-bag evaluation")

	if *modelFile != "" {
		out, err := os.Create(*modelFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", *modelFile).Msg("creating model file")
		}
		defer out.Close()

		if err := rf.Save(out, f); err != nil {
			log.Fatal().Err(err).Msg("saving model")
		}
		log.Info().Str("path", *modelFile).Msg("model saved")
	}
}

// ringDataset generates a two-feature dataset where the label is 1 iff the
// point falls within an annulus around the origin, a nonlinear boundary a
// single split can't capture but a forest can approximate.
func ringDataset(n int, seed int64) sample.Set {
	rng := rand.New(rand.NewSource(seed))
	set := make(sample.Set, n)
	for i := range set {
		x, y := rng.Intn(21)-10, rng.Intn(21)-10
		r2 := x*x + y*y
		label := 0
		if r2 >= 16 && r2 <= 64 {
			label = 1
		}
		set[i] = sample.New(map[int]int{0: x, 1: y}, label)
	}
	return set
}
