// Package persist implements the default forest serializer: a thin
// encoding/gob codec satisfying restore(save(f)) == drop_oob(f).
package persist

import (
	"encoding/gob"
	"io"

	"github.com/igarnier/orf/forest"
	"github.com/igarnier/orf/sample"
	"github.com/igarnier/orf/tree"
)

// document is the on-disk shape of a saved forest: the class index plus,
// per tree, its root and (optionally) its OOB row indices.
type document struct {
	Labels []int
	Trees  []treeDocument
}

type treeDocument struct {
	Root *tree.Node
	OOB  []int
}

// DropOOB returns a copy of f with every tree's OOB index slice cleared.
// Save calls this internally so OOB sets never reach disk; callers that
// want to discard them from an in-memory forest without saving can call it
// directly.
func DropOOB(f *forest.Forest) *forest.Forest {
	trees := make([]tree.Result, len(f.Trees))
	for i, t := range f.Trees {
		trees[i] = tree.Result{Root: t.Root}
	}
	return &forest.Forest{Trees: trees, Classes: f.Classes}
}

// Save gob-encodes f to w, dropping OOB index slices first: they are
// training-time bookkeeping, not part of the model a restored forest needs
// in order to predict.
func Save(w io.Writer, f *forest.Forest) error {
	doc := toDocument(DropOOB(f))
	return gob.NewEncoder(w).Encode(&doc)
}

// Restore decodes a forest previously written by Save. The returned
// forest's trees carry no OOB indices, matching drop_oob(f).
func Restore(r io.Reader) (*forest.Forest, error) {
	var doc document
	if err := gob.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return fromDocument(doc), nil
}

func toDocument(f *forest.Forest) document {
	labels := make([]int, f.Classes.Size())
	for i := range labels {
		labels[i] = f.Classes.Label(i)
	}

	trees := make([]treeDocument, len(f.Trees))
	for i, t := range f.Trees {
		trees[i] = treeDocument{Root: t.Root, OOB: t.OOB}
	}

	return document{Labels: labels, Trees: trees}
}

func fromDocument(doc document) *forest.Forest {
	classes := sample.FromLabels(doc.Labels)

	trees := make([]tree.Result, len(doc.Trees))
	for i, td := range doc.Trees {
		trees[i] = tree.Result{Root: td.Root, OOB: td.OOB}
	}

	return &forest.Forest{Trees: trees, Classes: classes}
}
