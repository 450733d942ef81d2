package rf

import (
	"io"

	"github.com/igarnier/orf/forest"
	"github.com/igarnier/orf/persist"
)

// Save writes f to w via the default gob-based serializer, dropping OOB
// index slices first.
func Save(w io.Writer, f *forest.Forest) error {
	return persist.Save(w, f)
}

// Restore reads a forest previously written by Save.
func Restore(r io.Reader) (*forest.Forest, error) {
	return persist.Restore(r)
}

// DropOOB returns a copy of f with every tree's OOB index slice cleared.
func DropOOB(f *forest.Forest) *forest.Forest {
	return persist.DropOOB(f)
}
