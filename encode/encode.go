package encode

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/canonform/flattree"
	"github.com/canonform/flattree/debug"
	"github.com/canonform/flattree/token"
)

type EncState struct {
	comments bool
	color    bool
	colors   *Colors

	w   io.Writer
	err error
}

// Canonical writes the canonical serialization of t to w in one preorder
// pass. The tree is read, never written: run it inside the caller's
// consistent-snapshot window.
func Canonical(t *flattree.Tree, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{comments: true, w: w}
	for _, opt := range opts {
		opt(es)
	}
	if es.color && es.colors == nil {
		es.colors = NewColors()
	}

	type open struct {
		name  string
		depth int
	}
	var stack []open

	for i := 0; i < t.Len(); i++ {
		tok, depth, err := t.Get(i)
		if err != nil {
			return err
		}
		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			es.writeEndTag(stack[len(stack)-1].name)
			stack = stack[:len(stack)-1]
		}
		switch tok.Type {
		case token.TElement:
			if err := checkPrefixes(t, i, tok); err != nil {
				return err
			}
			es.writeStartTag(tok)
			stack = append(stack, open{name: tok.Name, depth: depth})
		case token.TText:
			es.write(token.TText, ValueColor, escapeText(tok.Content))
		case token.TComment:
			if es.comments {
				es.write(token.TComment, CommentColor, "<!--"+tok.Content+"-->")
			}
		case token.TProcInst:
			es.writeProcInst(tok)
		}
		if es.err != nil {
			return es.err
		}
	}
	for len(stack) > 0 {
		es.writeEndTag(stack[len(stack)-1].name)
		stack = stack[:len(stack)-1]
	}
	if debug.Encode() && es.err == nil {
		debug.Logf("encoded %d nodes", t.Len())
	}
	return es.err
}

// checkPrefixes refuses to serialize an element whose own prefix or
// attribute prefixes have no declaration in scope; canonical output must
// not contain dangling prefixes.
func checkPrefixes(t *flattree.Tree, i int, tok token.Token) error {
	if prefix, _, ok := cutName(tok.Name); ok {
		if _, err := t.ResolveNamespace(i, prefix); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	for _, a := range tok.Attrs {
		if prefix, _, ok := cutName(a.Name); ok {
			if _, err := t.ResolveNamespace(i, prefix); err != nil {
				return fmt.Errorf("element %d attribute %q: %w", i, a.Name, err)
			}
		}
	}
	return nil
}

func (es *EncState) writeStartTag(tok token.Token) {
	es.write(token.TElement, SepColor, "<")
	es.write(token.TElement, TagColor, tok.Name)

	decls := slices.Clone(tok.NsDecls)
	slices.SortFunc(decls, func(a, b token.NsDecl) int {
		return strings.Compare(a.Prefix, b.Prefix)
	})
	for _, d := range decls {
		name := "xmlns"
		if d.Prefix != "" {
			name = "xmlns:" + d.Prefix
		}
		es.write(token.TElement, AttrColor, " "+name)
		es.write(token.TElement, SepColor, `="`)
		es.write(token.TElement, ValueColor, escapeAttr(d.URI))
		es.write(token.TElement, SepColor, `"`)
	}

	attrs := slices.Clone(tok.Attrs)
	slices.SortFunc(attrs, func(a, b token.Attr) int {
		return strings.Compare(a.Name, b.Name)
	})
	for _, a := range attrs {
		es.write(token.TElement, AttrColor, " "+a.Name)
		es.write(token.TElement, SepColor, `="`)
		es.write(token.TElement, ValueColor, escapeAttr(a.Value))
		es.write(token.TElement, SepColor, `"`)
	}
	es.write(token.TElement, SepColor, ">")
}

func (es *EncState) writeEndTag(name string) {
	es.write(token.TElement, SepColor, "</")
	es.write(token.TElement, TagColor, name)
	es.write(token.TElement, SepColor, ">")
}

func (es *EncState) writeProcInst(tok token.Token) {
	es.write(token.TProcInst, SepColor, "<?")
	es.write(token.TProcInst, TagColor, tok.Name)
	if tok.Content != "" {
		es.write(token.TProcInst, ValueColor, " "+tok.Content)
	}
	es.write(token.TProcInst, SepColor, "?>")
}

func (es *EncState) write(t token.Type, attr ColorAttr, s string) {
	if es.err != nil {
		return
	}
	if es.color {
		s = es.colors.Sprint(t, attr, s)
	}
	_, es.err = io.WriteString(es.w, s)
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\r", "&#xD;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	`"`, "&quot;",
	"\t", "&#x9;",
	"\n", "&#xA;",
	"\r", "&#xD;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

func cutName(name string) (prefix, local string, ok bool) {
	return strings.Cut(name, ":")
}
