// Package impurity implements node impurity measures and the
// cardinality-weighted split cost that the tree builder minimizes.
package impurity

import (
	"github.com/pkg/errors"
)

// Metric selects the impurity measure used to evaluate candidate splits.
type Metric int

const (
	// Gini is the only metric implemented by this package.
	Gini Metric = iota
	// Entropy is declared for interface completeness but is Unimplemented.
	Entropy
	// MCC is declared for interface completeness but is Unimplemented.
	MCC
)

func (m Metric) String() string {
	switch m {
	case Gini:
		return "gini"
	case Entropy:
		return "entropy"
	case MCC:
		return "mcc"
	default:
		return "unknown"
	}
}

// ErrUnimplemented is returned by Compute for metrics declared in the
// interface but not implemented.
var ErrUnimplemented = errors.New("impurity: metric not implemented")

// Compute returns the impurity of a node with the given per-class counts
// and total size n. Gini impurity is 1 - sum(p_k^2); it is 0.0 for pure
// nodes and for n == 0.
func (m Metric) Compute(counts []int, n int) (float64, error) {
	switch m {
	case Gini:
		return gini(counts, n), nil
	case Entropy, MCC:
		return 0, errors.Wrapf(ErrUnimplemented, "metric %s", m)
	default:
		return 0, errors.Wrapf(ErrUnimplemented, "metric %d", int(m))
	}
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0.0
	}
	g := 0.0
	for _, c := range counts {
		if c > 0 {
			p := float64(c) / float64(n)
			g += p * p
		}
	}
	return 1.0 - g
}

// SplitCost computes the cardinality-weighted cost of a candidate split with
// left/right child counts and sizes. It is undefined (and not called) when
// both sides are empty. When exactly one side is empty, the cost is the
// metric of the non-empty side, which sidesteps a division by zero and
// correctly scores the last threshold in a sweep (where right is always
// empty).
func SplitCost(metric Metric, leftCounts []int, nLeft int, rightCounts []int, nRight int) (float64, error) {
	switch {
	case nLeft == 0 && nRight == 0:
		return 0, errors.New("impurity: split cost undefined for two empty sides")
	case nLeft == 0:
		return metric.Compute(rightCounts, nRight)
	case nRight == 0:
		return metric.Compute(leftCounts, nLeft)
	}

	n := nLeft + nRight
	gl, err := metric.Compute(leftCounts, nLeft)
	if err != nil {
		return 0, err
	}
	gr, err := metric.Compute(rightCounts, nRight)
	if err != nil {
		return 0, err
	}

	return (float64(nLeft)/float64(n))*gl + (float64(nRight)/float64(n))*gr, nil
}
