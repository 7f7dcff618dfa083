// Package flattree stores an ordered, hierarchical document as two
// parallel arrays: a token per node and a depth per node, in preorder.
// A node is nothing but an index into the pair.
//
// # Usage
//
//	t, err := flattree.Build(src)        // consume a token.Source once
//	p, err := t.Parent(i)                // structural navigation
//	uri, err := t.ResolveNamespace(i, "soap")
//	err = t.MoveSubtree(src, dst, 0)     // invariant-preserving mutation
//
// The layout favors left-to-right scanning and canonicalization rewrites
// over cheap arbitrary-position edits: every insert, delete, and move
// shifts the tail of both arrays.
//
// A Tree is a plain mutable value. Mutations are not synchronized; the
// caller must serialize writers and must not run readers concurrently
// with a mutation.
//
// # Related Packages
//
//   - github.com/canonform/flattree/parse - build trees from XML or YAML text
//   - github.com/canonform/flattree/encode - canonical serialization
package flattree
