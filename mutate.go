package flattree

import (
	"fmt"
	"slices"

	"github.com/canonform/flattree/debug"
	"github.com/canonform/flattree/token"
)

// The mutation engine is the only writer. Every operation validates its
// arguments completely before touching either array, so any failure
// leaves the tree exactly as it was, and every operation re-checks the
// store invariants before returning.

// InsertSubtree splices seq under anchor, after anchor's last existing
// child (or as its first child if it has none). Depths in seq are
// relative: 0 is the new direct-child level, and the sequence must itself
// satisfy the preorder rule starting at 0. An empty seq is a no-op.
func (t *Tree) InsertSubtree(anchor int, seq []token.Positioned) error {
	d, err := t.Depth(anchor)
	if err != nil {
		return fmt.Errorf("%w: anchor %v", ErrInvalidInsertion, err)
	}
	if len(seq) == 0 {
		return nil
	}
	if err := validateRelative(seq); err != nil {
		return err
	}
	_, at, err := t.SubtreeRange(anchor)
	if err != nil {
		return err
	}
	t.splice(at, seq, d+1)
	if debug.Mutate() {
		debug.Logf("insert %d nodes under %d at %d", len(seq), anchor, at)
	}
	return t.checkInvariants()
}

// DeleteSubtree removes node i and all its descendants.
func (t *Tree) DeleteSubtree(i int) error {
	if _, err := t.Depth(i); err != nil {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	start, end, err := t.SubtreeRange(i)
	if err != nil {
		return err
	}
	t.tokens = slices.Delete(t.tokens, start, end)
	t.depths = slices.Delete(t.depths, start, end)
	t.gen++
	if debug.Mutate() {
		debug.Logf("delete [%d,%d)", start, end)
	}
	return t.checkInvariants()
}

// MoveSubtree detaches src's subtree and re-attaches it under destParent
// as its destPosition-th child, counted against the children remaining
// after the detach (the count itself means "after the last child").
// Depths are rewritten relative to the new parent. Fails
// ErrCycleDetected, before any state changes, when destParent lies inside
// src's own subtree.
func (t *Tree) MoveSubtree(src, destParent, destPosition int) error {
	if _, err := t.Depth(src); err != nil {
		return fmt.Errorf("%w: source %d", ErrNodeNotFound, src)
	}
	destDepth, err := t.Depth(destParent)
	if err != nil {
		return fmt.Errorf("%w: destination %d", ErrNodeNotFound, destParent)
	}
	start, end, err := t.SubtreeRange(src)
	if err != nil {
		return err
	}
	if destParent >= start && destParent < end {
		return fmt.Errorf("%w: %d is inside subtree [%d,%d)", ErrCycleDetected, destParent, start, end)
	}
	children, err := t.Children(destParent)
	if err != nil {
		return err
	}
	remaining := 0
	for c := range children {
		if c != start {
			remaining++
		}
	}
	if destPosition < 0 || destPosition > remaining {
		return fmt.Errorf("%w: position %d of %d children", ErrInvalidInsertion, destPosition, remaining)
	}

	// All checks passed; no step below can fail.
	block, err := t.Subtree(src)
	if err != nil {
		return err
	}
	t.tokens = slices.Delete(t.tokens, start, end)
	t.depths = slices.Delete(t.depths, start, end)
	t.gen++
	adjParent := destParent
	if adjParent >= end {
		adjParent -= end - start
	}
	at, err := t.childInsertionPoint(adjParent, destPosition)
	if err != nil {
		return err
	}
	t.splice(at, block, destDepth+1)
	if debug.Mutate() {
		debug.Logf("move [%d,%d) under %d at %d", start, end, destParent, at)
	}
	return t.checkInvariants()
}

// ReplaceToken swaps the payload at i, leaving its depth alone.
func (t *Tree) ReplaceToken(i int, tok token.Token) error {
	if _, err := t.Depth(i); err != nil {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	t.tokens[i] = tok
	t.gen++
	return t.checkInvariants()
}

// splice inserts seq at index at, mapping relative depth 0 to base.
// Callers have already validated everything.
func (t *Tree) splice(at int, seq []token.Positioned, base int) {
	toks := make([]token.Token, len(seq))
	deps := make([]int, len(seq))
	for i, it := range seq {
		toks[i] = it.Token
		deps[i] = it.Depth + base
	}
	t.tokens = slices.Insert(t.tokens, at, toks...)
	t.depths = slices.Insert(t.depths, at, deps...)
	t.gen++
}

// childInsertionPoint maps a child ordinal under parent to an array
// index, in current coordinates. Ordinal == child count means after the
// last child.
func (t *Tree) childInsertionPoint(parent, position int) (int, error) {
	if position < 0 {
		return 0, fmt.Errorf("%w: position %d", ErrInvalidInsertion, position)
	}
	children, err := t.Children(parent)
	if err != nil {
		return 0, err
	}
	n := 0
	for c := range children {
		if n == position {
			return c, nil
		}
		n++
	}
	if position == n {
		_, end, err := t.SubtreeRange(parent)
		if err != nil {
			return 0, err
		}
		return end, nil
	}
	return 0, fmt.Errorf("%w: position %d of %d children", ErrInvalidInsertion, position, n)
}

func validateRelative(seq []token.Positioned) error {
	if seq[0].Depth != 0 {
		return fmt.Errorf("%w: sequence starts at relative depth %d", ErrInvalidInsertion, seq[0].Depth)
	}
	for i := 1; i < len(seq); i++ {
		if seq[i].Depth < 0 || seq[i].Depth > seq[i-1].Depth+1 {
			return fmt.Errorf("%w: relative depth %d after %d at offset %d",
				ErrInvalidInsertion, seq[i].Depth, seq[i-1].Depth, i)
		}
	}
	return nil
}
