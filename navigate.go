package flattree

import (
	"fmt"
	"iter"
	"strings"

	"github.com/canonform/flattree/token"
)

// Navigation is derived purely from the depth array; no parent or child
// pointers are stored anywhere.

// Parent scans backward for the nearest node one level shallower.
// Returns None for nodes at RootDepth.
func (t *Tree) Parent(i int) (int, error) {
	d, err := t.Depth(i)
	if err != nil {
		return None, err
	}
	if d == RootDepth {
		return None, nil
	}
	for j := i - 1; j >= 0; j-- {
		if t.depths[j] == d-1 {
			return j, nil
		}
	}
	// Unreachable on a tree that satisfies the preorder invariant.
	return None, fmt.Errorf("%w: no parent above %d", errInternal, i)
}

// SubtreeRange returns [start, end) covering i and exactly its
// descendants. The linear forward scan is O(subtree size); after a call
// to Reindex the answer comes from the skip table instead.
func (t *Tree) SubtreeRange(i int) (start, end int, err error) {
	d, err := t.Depth(i)
	if err != nil {
		return 0, 0, err
	}
	if t.endsGen == t.gen && len(t.ends) == len(t.depths) {
		return i, t.ends[i], nil
	}
	end = i + 1
	for end < len(t.depths) && t.depths[end] > d {
		end++
	}
	return i, end, nil
}

// Reindex rebuilds the next-sibling skip table in one O(n) pass, making
// subsequent range queries O(1) until the next mutation. Rebuilding
// writes to the tree: call it from the writer side, not from concurrent
// readers.
func (t *Tree) Reindex() {
	n := len(t.depths)
	t.ends = make([]int, n)
	var open []int // indices whose end is not yet known
	for i := 0; i < n; i++ {
		for len(open) > 0 && t.depths[open[len(open)-1]] >= t.depths[i] {
			t.ends[open[len(open)-1]] = i
			open = open[:len(open)-1]
		}
		open = append(open, i)
	}
	for _, j := range open {
		t.ends[j] = n
	}
	t.endsGen = t.gen
}

// Children yields the direct children of i in document order: the nodes
// at depth(i)+1 inside i's subtree range. The sequence is lazy, finite,
// and single-pass.
func (t *Tree) Children(i int) (iter.Seq[int], error) {
	d, err := t.Depth(i)
	if err != nil {
		return nil, err
	}
	_, end, err := t.SubtreeRange(i)
	if err != nil {
		return nil, err
	}
	return func(yield func(int) bool) {
		for j := i + 1; j < end; {
			if !yield(j) {
				return
			}
			// Skip j's own subtree.
			k := j + 1
			for k < end && t.depths[k] > d+1 {
				k++
			}
			j = k
		}
	}, nil
}

// Siblings yields i's siblings including i itself: the children of its
// parent, or all top-level nodes when i is a root.
func (t *Tree) Siblings(i int) (iter.Seq[int], error) {
	p, err := t.Parent(i)
	if err != nil {
		return nil, err
	}
	if p != None {
		return t.Children(p)
	}
	return func(yield func(int) bool) {
		for j := 0; j < len(t.depths); {
			if !yield(j) {
				return
			}
			k := j + 1
			for k < len(t.depths) && t.depths[k] > RootDepth {
				k++
			}
			j = k
		}
	}, nil
}

// NextSibling returns the first node after i's subtree at the same depth,
// or None.
func (t *Tree) NextSibling(i int) (int, error) {
	d, err := t.Depth(i)
	if err != nil {
		return None, err
	}
	_, end, err := t.SubtreeRange(i)
	if err != nil {
		return None, err
	}
	if end < len(t.depths) && t.depths[end] == d {
		return end, nil
	}
	return None, nil
}

// PrevSibling scans backward past deeper nodes for the nearest node at
// i's depth, or None if a shallower node intervenes first.
func (t *Tree) PrevSibling(i int) (int, error) {
	d, err := t.Depth(i)
	if err != nil {
		return None, err
	}
	for j := i - 1; j >= 0; j-- {
		if t.depths[j] < d {
			return None, nil
		}
		if t.depths[j] == d {
			return j, nil
		}
	}
	return None, nil
}

// Ancestors yields parent, grandparent, ... up to a root.
func (t *Tree) Ancestors(i int) (iter.Seq[int], error) {
	if _, err := t.Depth(i); err != nil {
		return nil, err
	}
	return func(yield func(int) bool) {
		cur := i
		for {
			p, err := t.Parent(cur)
			if err != nil || p == None {
				return
			}
			if !yield(p) {
				return
			}
			cur = p
		}
	}, nil
}

// Descendants yields every node strictly inside i's subtree range.
func (t *Tree) Descendants(i int) (iter.Seq[int], error) {
	_, end, err := t.SubtreeRange(i)
	if err != nil {
		return nil, err
	}
	return func(yield func(int) bool) {
		for j := i + 1; j < end; j++ {
			if !yield(j) {
				return
			}
		}
	}, nil
}

// FindElement returns the first element whose name matches. A plain name
// matches ignoring any prefix; a "prefix:local" name matches when the
// local part matches and the candidate's prefix resolves to the same URI
// as the given prefix does at the candidate.
func (t *Tree) FindElement(name string) (int, error) {
	wantPrefix, wantLocal, qualified := splitName(name)
	for i, tok := range t.tokens {
		if tok.Type != token.TElement {
			continue
		}
		prefix, local, _ := splitName(tok.Name)
		if local != wantLocal {
			continue
		}
		if !qualified {
			return i, nil
		}
		wantURI, err := t.ResolveNamespace(i, wantPrefix)
		if err != nil {
			continue
		}
		haveURI, err := t.ResolveNamespace(i, prefix)
		if err != nil {
			continue
		}
		if wantURI == haveURI {
			return i, nil
		}
	}
	return None, fmt.Errorf("%w: element %q", ErrNodeNotFound, name)
}

// FindElementNS returns the first element with the given local name whose
// prefix resolves to uri.
func (t *Tree) FindElementNS(uri, local string) (int, error) {
	for i, tok := range t.tokens {
		if tok.Type != token.TElement {
			continue
		}
		prefix, l, _ := splitName(tok.Name)
		if l != local {
			continue
		}
		have, err := t.ResolveNamespace(i, prefix)
		if err != nil {
			continue
		}
		if have == uri {
			return i, nil
		}
	}
	return None, fmt.Errorf("%w: element {%s}%s", ErrNodeNotFound, uri, local)
}

func splitName(name string) (prefix, local string, qualified bool) {
	if p, l, ok := strings.Cut(name, ":"); ok {
		return p, l, true
	}
	return "", name, false
}
