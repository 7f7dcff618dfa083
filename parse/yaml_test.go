package parse

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/canonform/flattree"
	"github.com/canonform/flattree/token"
)

func TestYAMLMappingOrderPreserved(t *testing.T) {
	src, err := YAML(strings.NewReader("b: 1\na: 2\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tr, err := flattree.Build(src)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 1, 2}, tr.Depths()); diff != "" {
		t.Fatalf("depths mismatch (-want +got):\n%s", diff)
	}
	first, _, _ := tr.Get(0)
	second, _, _ := tr.Get(2)
	if first.Name != "b" || second.Name != "a" {
		t.Errorf("keys out of order: %q then %q", first.Name, second.Name)
	}
	v, _, _ := tr.Get(1)
	if v.Type != token.TText || v.Content != "1" {
		t.Errorf("value = %v", v)
	}
}

func TestYAMLNested(t *testing.T) {
	in := strings.Join([]string{
		"root:",
		"  items:",
		"    - x",
		"    - y",
	}, "\n")
	src, err := YAML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tr, err := flattree.Build(src)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// root(1), items(2), x(3), y(3)
	if diff := cmp.Diff([]int{1, 2, 3, 3}, tr.Depths()); diff != "" {
		t.Fatalf("depths mismatch (-want +got):\n%s", diff)
	}
	items, _, _ := tr.Get(1)
	if items.Name != "items" {
		t.Errorf("node 1 = %v", items)
	}
	x, _, _ := tr.Get(2)
	y, _, _ := tr.Get(3)
	if x.Content != "x" || y.Content != "y" {
		t.Errorf("sequence items = %q, %q", x.Content, y.Content)
	}
}

func TestYAMLScalarDocument(t *testing.T) {
	src, err := YAML(strings.NewReader("just a scalar\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tr, err := flattree.Build(src)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if tr.Len() != 1 {
		t.Fatalf("len = %d, want 1", tr.Len())
	}
	tok, depth, _ := tr.Get(0)
	if tok.Type != token.TText || depth != flattree.RootDepth {
		t.Errorf("got %v at depth %d", tok, depth)
	}
}
