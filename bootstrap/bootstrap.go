// Package bootstrap implements the Bootstrap/OOB Sampler: drawing a size-k
// multiset with replacement from N rows and returning the complementary
// out-of-bag index set.
package bootstrap

import "math/rand"

// Sample draws k row indices uniformly with replacement from [0, n), and
// returns that multiset alongside the sorted list of row indices in [0, n)
// that were never drawn (the out-of-bag set for this draw). Duplicate rows
// in the returned multiset are expected and preserved.
//
// Grounded on forest/forest.go's bootstrapInx, generalized to hand back the
// OOB index list directly (rather than an in-bag boolean mask) since that is
// what the rest of the pipeline consumes.
func Sample(rng *rand.Rand, k, n int) (rows []int, oob []int) {
	inBag := make([]bool, n)
	rows = make([]int, k)

	for i := 0; i < k; i++ {
		id := rng.Intn(n)
		rows[i] = id
		inBag[id] = true
	}

	oob = make([]int, 0, n)
	for i, in := range inBag {
		if !in {
			oob = append(oob, i)
		}
	}

	return rows, oob
}
