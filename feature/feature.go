// Package feature implements the Feature Analyzer: enumeration of the
// non-constant features observed over a sample set, together with each
// feature's distinct observed values.
package feature

import (
	"sort"

	"github.com/igarnier/orf/sample"
)

// Candidate is a feature together with its sorted, distinct observed
// values (always including 0, the sparse default).
type Candidate struct {
	Index  int
	Values []int
}

// NonConstant enumerates the non-constant features observed across the rows
// of samples named by rows (row indices into samples). A feature whose
// value set, after injecting 0, is a singleton cannot discriminate and is
// dropped.
//
// The returned order is feature-index ascending: unspecified by the spec but
// fixed, so that a caller applying a seeded shuffle on top gets reproducible
// results regardless of map iteration order internally.
func NonConstant(samples sample.Set, rows []int) []Candidate {
	values := make(map[int]map[int]struct{})

	// every feature implicitly carries the value 0, whether or not any row
	// in this subset happens to omit it explicitly.
	touch := func(f int) map[int]struct{} {
		vs, ok := values[f]
		if !ok {
			vs = make(map[int]struct{})
			values[f] = vs
		}
		return vs
	}

	for _, r := range rows {
		samples[r].Range(func(f, v int) {
			vs := touch(f)
			vs[v] = struct{}{}
		})
	}

	for _, vs := range values {
		vs[0] = struct{}{}
	}

	indices := make([]int, 0, len(values))
	for f := range values {
		indices = append(indices, f)
	}
	sort.Ints(indices)

	out := make([]Candidate, 0, len(indices))
	for _, f := range indices {
		vs := values[f]
		if len(vs) < 2 {
			continue // constant feature, can't discriminate
		}
		sorted := make([]int, 0, len(vs))
		for v := range vs {
			sorted = append(sorted, v)
		}
		sort.Ints(sorted)
		out = append(out, Candidate{Index: f, Values: sorted})
	}

	return out
}
