package flattree

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/canonform/flattree/token"
)

func collect(t *testing.T, seq func(int) (iter.Seq[int], error), i int) []int {
	t.Helper()
	it, err := seq(i)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return slices.Collect(it)
}

func TestParent(t *testing.T) {
	tr := sampleTree(t)
	cases := []struct {
		node, want int
	}{
		{0, None},
		{1, 0},
		{2, 0},
		{3, 0},
		{4, 3},
		{5, 0},
	}
	for _, c := range cases {
		got, err := tr.Parent(c.node)
		if err != nil {
			t.Fatalf("Parent(%d): %v", c.node, err)
		}
		if got != c.want {
			t.Errorf("Parent(%d) = %d, want %d", c.node, got, c.want)
		}
	}
	if _, err := tr.Parent(6); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Parent(6): got %v, want ErrIndexOutOfRange", err)
	}
}

func TestChildren(t *testing.T) {
	tr := sampleTree(t)
	if got := collect(t, tr.Children, 0); !slices.Equal(got, []int{1, 2, 3, 5}) {
		t.Errorf("Children(0) = %v, want [1 2 3 5]", got)
	}
	if got := collect(t, tr.Children, 3); !slices.Equal(got, []int{4}) {
		t.Errorf("Children(3) = %v, want [4]", got)
	}
	if got := collect(t, tr.Children, 2); len(got) != 0 {
		t.Errorf("Children(2) = %v, want empty", got)
	}
}

func TestChildrenEarlyStop(t *testing.T) {
	tr := sampleTree(t)
	it, err := tr.Children(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []int
	for c := range it {
		got = append(got, c)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestSubtreeRange(t *testing.T) {
	tr := sampleTree(t)
	cases := []struct {
		node, start, end int
	}{
		{0, 0, 6},
		{1, 1, 2},
		{3, 3, 5},
		{5, 5, 6},
	}
	for _, c := range cases {
		start, end, err := tr.SubtreeRange(c.node)
		if err != nil {
			t.Fatalf("SubtreeRange(%d): %v", c.node, err)
		}
		if start != c.start || end != c.end {
			t.Errorf("SubtreeRange(%d) = (%d,%d), want (%d,%d)", c.node, start, end, c.start, c.end)
		}
	}
}

func TestSubtreeRangeCharacterization(t *testing.T) {
	tr := sampleTree(t)
	for i := 0; i < tr.Len(); i++ {
		d, _ := tr.Depth(i)
		start, end, err := tr.SubtreeRange(i)
		if err != nil {
			t.Fatalf("SubtreeRange(%d): %v", i, err)
		}
		if start != i {
			t.Errorf("SubtreeRange(%d) starts at %d", i, start)
		}
		for j := i + 1; j < end; j++ {
			if dj, _ := tr.Depth(j); dj <= d {
				t.Errorf("node %d inside subtree of %d at depth %d <= %d", j, i, dj, d)
			}
		}
		if end < tr.Len() {
			if de, _ := tr.Depth(end); de > d {
				t.Errorf("subtree of %d ends at %d, still deeper", i, end)
			}
		}
	}
}

func TestReindexMatchesLinearScan(t *testing.T) {
	tr := sampleTree(t)
	type rng struct{ start, end int }
	scan := make([]rng, tr.Len())
	for i := 0; i < tr.Len(); i++ {
		s, e, err := tr.SubtreeRange(i)
		if err != nil {
			t.Fatalf("SubtreeRange(%d): %v", i, err)
		}
		scan[i] = rng{s, e}
	}
	tr.Reindex()
	for i := 0; i < tr.Len(); i++ {
		s, e, err := tr.SubtreeRange(i)
		if err != nil {
			t.Fatalf("indexed SubtreeRange(%d): %v", i, err)
		}
		if (rng{s, e}) != scan[i] {
			t.Errorf("indexed SubtreeRange(%d) = (%d,%d), want (%d,%d)", i, s, e, scan[i].start, scan[i].end)
		}
	}
	// A mutation invalidates the table; answers must stay correct.
	if err := tr.DeleteSubtree(3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, end, _ := tr.SubtreeRange(0); end != 4 {
		t.Errorf("post-mutation SubtreeRange(0) end = %d, want 4", end)
	}
}

func TestSiblings(t *testing.T) {
	tr := sampleTree(t)
	if got := collect(t, tr.Siblings, 2); !slices.Equal(got, []int{1, 2, 3, 5}) {
		t.Errorf("Siblings(2) = %v, want [1 2 3 5]", got)
	}
	if got := collect(t, tr.Siblings, 0); !slices.Equal(got, []int{0}) {
		t.Errorf("Siblings(0) = %v, want [0]", got)
	}

	multi, err := FromSlice([]token.Positioned{
		{Token: token.Element("root1", nil, nil), Depth: 1},
		{Token: token.Text("x"), Depth: 2},
		{Token: token.Element("root2", nil, nil), Depth: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := collect(t, multi.Siblings, 2); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("top-level Siblings = %v, want [0 2]", got)
	}
}

func TestNextPrevSibling(t *testing.T) {
	tr := sampleTree(t)
	cases := []struct {
		node, next, prev int
	}{
		{1, 2, None},
		{2, 3, 1},
		{3, 5, 2},
		{5, None, 3},
		{4, None, None},
		{0, None, None},
	}
	for _, c := range cases {
		next, err := tr.NextSibling(c.node)
		if err != nil {
			t.Fatalf("NextSibling(%d): %v", c.node, err)
		}
		if next != c.next {
			t.Errorf("NextSibling(%d) = %d, want %d", c.node, next, c.next)
		}
		prev, err := tr.PrevSibling(c.node)
		if err != nil {
			t.Fatalf("PrevSibling(%d): %v", c.node, err)
		}
		if prev != c.prev {
			t.Errorf("PrevSibling(%d) = %d, want %d", c.node, prev, c.prev)
		}
	}
}

func TestAncestorsAndDescendants(t *testing.T) {
	tr := sampleTree(t)
	if got := collect(t, tr.Ancestors, 4); !slices.Equal(got, []int{3, 0}) {
		t.Errorf("Ancestors(4) = %v, want [3 0]", got)
	}
	if got := collect(t, tr.Descendants, 0); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("Descendants(0) = %v, want [1 2 3 4 5]", got)
	}
	if got := collect(t, tr.Descendants, 3); !slices.Equal(got, []int{4}) {
		t.Errorf("Descendants(3) = %v, want [4]", got)
	}
}

func TestFindElement(t *testing.T) {
	tr, err := FromSlice([]token.Positioned{
		{Token: token.Element("root", nil, []token.NsDecl{{Prefix: "a", URI: "http://a.example"}}), Depth: 1},
		{Token: token.Element("a:item", nil, nil), Depth: 2},
		{Token: token.Element("item", nil, nil), Depth: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tr.FindElement("item")
	if err != nil {
		t.Fatalf("FindElement: %v", err)
	}
	if got != 1 {
		t.Errorf("FindElement(item) = %d, want 1", got)
	}
	got, err = tr.FindElementNS("http://a.example", "item")
	if err != nil {
		t.Fatalf("FindElementNS: %v", err)
	}
	if got != 1 {
		t.Errorf("FindElementNS = %d, want 1", got)
	}
	if _, err := tr.FindElement("missing"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("got %v, want ErrNodeNotFound", err)
	}
}

func TestNavigationReadsDontMutate(t *testing.T) {
	tr := sampleTree(t)
	before := tr.Depths()
	_ = collect(t, tr.Children, 0)
	_ = collect(t, tr.Ancestors, 4)
	_, _, _ = tr.SubtreeRange(3)
	if diff := cmp.Diff(before, tr.Depths()); diff != "" {
		t.Errorf("navigation changed depths (-want +got):\n%s", diff)
	}
}
