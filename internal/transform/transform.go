// Package transform removes cleanable subtrees from a configuration
// document while leaving preserved subtrees and the overall tree shape
// intact.
package transform

import (
	"slices"
	"strings"

	"github.com/thoreinstein/claude-clear/internal/classify"
	"github.com/thoreinstein/claude-clear/internal/document"
)

// Clean returns a copy of doc with all cleanable fields removed, plus the
// dotted paths of the removed fields in depth-first traversal order.
//
// The input document is never mutated. Cleanable fields are dropped whole,
// including sequence values; history entries are not filtered element by
// element. A project record whose children are all cleanable is kept as an
// empty mapping so the project identity encoded in its key survives.
//
// Clean is idempotent: running it on its own output removes nothing further.
func Clean(doc *document.Object) (*document.Object, []string) {
	removed := make([]string, 0)
	cleaned := cleanObject(doc, nil, &removed)
	return cleaned, removed
}

// cleanObject walks one mapping node top-down. The classification of each
// child gates recursion: cleanable children are dropped without descending,
// preserved children are copied verbatim, and unknown children are kept and
// walked further.
func cleanObject(obj *document.Object, path []string, removed *[]string) *document.Object {
	out := document.NewObject()

	for _, key := range obj.Keys() {
		childPath := append(slices.Clone(path), key)
		v, _ := obj.Get(key)

		switch classify.Classify(childPath) {
		case classify.Cleanable:
			*removed = append(*removed, strings.Join(childPath, "."))

		case classify.Preserved:
			// Preserved scope covers the whole subtree; copy without
			// classifying descendants.
			out.Set(key, document.CloneValue(v))

		default:
			if child, ok := v.(*document.Object); ok {
				out.Set(key, cleanObject(child, childPath, removed))
			} else {
				out.Set(key, document.CloneValue(v))
			}
		}
	}

	return out
}
