package flattree

import (
	"fmt"

	"github.com/canonform/flattree/debug"
	"github.com/canonform/flattree/token"
)

// RootDepth is the depth of top-level nodes. Every root in a tree holding
// multiple top-level nodes sits at this depth.
const RootDepth = 1

// None marks the absence of a node index, e.g. the parent of a root.
const None = -1

// Tree is the token store: two parallel arrays, tokens and depths, in
// preorder. len(tokens) == len(depths) at every observable point, and for
// every i > 0, depths[i] <= depths[i-1]+1.
//
// Tree is not synchronized. One writer at a time; readers must not overlap
// a mutation.
type Tree struct {
	tokens []token.Token
	depths []int

	// Next-sibling skip table: ends[i] is the subtree end of node i.
	// Rebuilt by Reindex, invalidated by any mutation.
	ends    []int
	gen     uint64
	endsGen uint64
}

func New() *Tree {
	return &Tree{}
}

func (t *Tree) Len() int {
	return len(t.tokens)
}

// Get returns the token and depth at i.
func (t *Tree) Get(i int) (token.Token, int, error) {
	if i < 0 || i >= len(t.tokens) {
		return token.Token{}, 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(t.tokens))
	}
	return t.tokens[i], t.depths[i], nil
}

// Depth returns the depth at i.
func (t *Tree) Depth(i int) (int, error) {
	if i < 0 || i >= len(t.depths) {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(t.depths))
	}
	return t.depths[i], nil
}

// Append extends the tree with one node. The first node must sit at
// RootDepth; after that a depth may drop by any amount (closing levels)
// but rise by at most one.
func (t *Tree) Append(tok token.Token, depth int) error {
	if depth < RootDepth {
		return fmt.Errorf("%w: depth %d below root depth %d", ErrInvalidDepth, depth, RootDepth)
	}
	if n := len(t.depths); n > 0 && depth > t.depths[n-1]+1 {
		return fmt.Errorf("%w: depth %d after depth %d", ErrInvalidDepth, depth, t.depths[n-1])
	} else if n == 0 && depth != RootDepth {
		return fmt.Errorf("%w: first node at depth %d, want %d", ErrInvalidDepth, depth, RootDepth)
	}
	if debug.Build() {
		debug.Logf("append %d %s depth=%d", len(t.tokens), tok.Info(), depth)
	}
	t.tokens = append(t.tokens, tok)
	t.depths = append(t.depths, depth)
	t.gen++
	return nil
}

// Depths returns a copy of the depth array. Mostly useful in tests and
// debugging dumps.
func (t *Tree) Depths() []int {
	out := make([]int, len(t.depths))
	copy(out, t.depths)
	return out
}

// Subtree captures the range [i, end) as a relative-depth sequence: the
// node at i comes out at relative depth 0. The result round-trips through
// InsertSubtree.
func (t *Tree) Subtree(i int) ([]token.Positioned, error) {
	start, end, err := t.SubtreeRange(i)
	if err != nil {
		return nil, err
	}
	base := t.depths[start]
	out := make([]token.Positioned, 0, end-start)
	for j := start; j < end; j++ {
		out = append(out, token.Positioned{Token: t.tokens[j], Depth: t.depths[j] - base})
	}
	return out, nil
}

// checkInvariants is the postcondition of every mutation: length equality
// and the preorder depth rule. A violation is a bug in the engine, not a
// caller error.
func (t *Tree) checkInvariants() error {
	if len(t.tokens) != len(t.depths) {
		return fmt.Errorf("%w: %d tokens, %d depths", errInternal, len(t.tokens), len(t.depths))
	}
	for i, d := range t.depths {
		if d < RootDepth {
			return fmt.Errorf("%w: depth %d at %d", errInternal, d, i)
		}
		if i > 0 && d > t.depths[i-1]+1 {
			return fmt.Errorf("%w: depth %d after %d at %d", errInternal, d, t.depths[i-1], i)
		}
	}
	return nil
}
