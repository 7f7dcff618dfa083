package token

import (
	"errors"
	"io"
	"testing"
)

func TestTypeString(t *testing.T) {
	cases := map[Type]string{
		TElement:  "TElement",
		TText:     "TText",
		TComment:  "TComment",
		TProcInst: "TProcInst",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{
			Element("a:b", []Attr{{Name: "k", Value: "v"}}, []NsDecl{{Prefix: "a", URI: "u"}}),
			`<a:b xmlns:a="u" k="v">`,
		},
		{
			Element("e", nil, []NsDecl{{Prefix: "", URI: "d"}}),
			`<e xmlns="d">`,
		},
		{Text("hi"), "hi"},
		{Comment(" c "), "<!-- c -->"},
		{ProcInst("pi", "data"), "<?pi data?>"},
		{ProcInst("pi", ""), "<?pi?>"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestTokenLookups(t *testing.T) {
	tok := Element("e",
		[]Attr{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}},
		[]NsDecl{{Prefix: "p", URI: "u"}})

	if v, ok := tok.Attr("b"); !ok || v != "2" {
		t.Errorf("Attr(b) = %q, %v", v, ok)
	}
	if _, ok := tok.Attr("missing"); ok {
		t.Error("Attr(missing) found")
	}
	if u, ok := tok.Decl("p"); !ok || u != "u" {
		t.Errorf("Decl(p) = %q, %v", u, ok)
	}
	if _, ok := tok.Decl(""); ok {
		t.Error("Decl(\"\") found")
	}
}

func TestTokenEqual(t *testing.T) {
	a := Element("e", []Attr{{Name: "k", Value: "v"}}, nil)
	if !a.Equal(Element("e", []Attr{{Name: "k", Value: "v"}}, nil)) {
		t.Error("identical tokens not equal")
	}
	if a.Equal(Element("e", []Attr{{Name: "k", Value: "w"}}, nil)) {
		t.Error("different attr values equal")
	}
	if a.Equal(Text("e")) {
		t.Error("different types equal")
	}
}

func TestSliceSource(t *testing.T) {
	src := NewSliceSource([]Positioned{
		{Token: Element("a", nil, nil), Depth: 1},
		{Token: Text("x"), Depth: 2},
	})
	tok, depth, err := src.Next()
	if err != nil || tok.Name != "a" || depth != 1 {
		t.Fatalf("first: %v %d %v", tok, depth, err)
	}
	if _, _, err := src.Next(); err != nil {
		t.Fatalf("second: %v", err)
	}
	if _, _, err := src.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("got %v, want io.EOF", err)
	}
}
