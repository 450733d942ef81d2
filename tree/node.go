// Package tree implements CART-style tree induction over sparse
// integer-valued features: the Splitter (bucket-scan cost evaluation) and
// the Tree Builder (iterative, explicit-stack induction under bootstrap and
// per-node feature subsampling).
package tree

import "github.com/igarnier/orf/sample"

// Node is a binary tree node: either a Leaf carrying a class label, or an
// Internal node carrying a (feature, threshold, left, right) split. A
// sample routes left iff value_of(sample, Feature) <= Threshold.
type Node struct {
	Leaf  bool
	Label int // valid when Leaf

	Feature   int // valid when !Leaf
	Threshold int // valid when !Leaf
	Left      *Node
	Right     *Node
}

// Predict walks the tree from the root and returns the leaf label reached
// by s. Traversal is iterative; tree depth is bounded by the node count so
// no explicit stack is needed for a single walk.
func Predict(root *Node, s sample.Sample) int {
	n := root
	for !n.Leaf {
		if s.ValueOf(n.Feature) <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Label
}
