package token

import (
	"fmt"
	"slices"
	"strings"
)

type Type int

const (
	TElement Type = iota
	TText
	TComment
	TProcInst
)

func (t Type) String() string {
	return map[Type]string{
		TElement:  "TElement",
		TText:     "TText",
		TComment:  "TComment",
		TProcInst: "TProcInst",
	}[t]
}

// Attr is an ordered element attribute. Namespace declarations are not
// attributes; they live in Token.NsDecls.
type Attr struct {
	Name  string
	Value string
}

// NsDecl binds a prefix to a namespace URI on the declaring element.
// The empty prefix denotes the default namespace.
type NsDecl struct {
	Prefix string
	URI    string
}

// Token is the tagged payload stored at each tree index. Name holds the
// element name (possibly prefix-qualified) or the processing-instruction
// target; Content holds text, comment, or processing-instruction data.
type Token struct {
	Type    Type
	Name    string
	Attrs   []Attr
	NsDecls []NsDecl
	Content string
}

func Element(name string, attrs []Attr, decls []NsDecl) Token {
	return Token{Type: TElement, Name: name, Attrs: attrs, NsDecls: decls}
}

func Text(content string) Token {
	return Token{Type: TText, Content: content}
}

func Comment(content string) Token {
	return Token{Type: TComment, Content: content}
}

func ProcInst(target, data string) Token {
	return Token{Type: TProcInst, Name: target, Content: data}
}

// Attr returns the value of the named attribute, if present.
func (t Token) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Decl returns the URI this element declares for prefix, if any.
func (t Token) Decl(prefix string) (string, bool) {
	for _, d := range t.NsDecls {
		if d.Prefix == prefix {
			return d.URI, true
		}
	}
	return "", false
}

func (t Token) Equal(o Token) bool {
	return t.Type == o.Type &&
		t.Name == o.Name &&
		t.Content == o.Content &&
		slices.Equal(t.Attrs, o.Attrs) &&
		slices.Equal(t.NsDecls, o.NsDecls)
}

func (t Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.String())
}

func (t Token) String() string {
	switch t.Type {
	case TElement:
		var b strings.Builder
		b.WriteByte('<')
		b.WriteString(t.Name)
		for _, d := range t.NsDecls {
			if d.Prefix == "" {
				fmt.Fprintf(&b, " xmlns=%q", d.URI)
				continue
			}
			fmt.Fprintf(&b, " xmlns:%s=%q", d.Prefix, d.URI)
		}
		for _, a := range t.Attrs {
			fmt.Fprintf(&b, " %s=%q", a.Name, a.Value)
		}
		b.WriteByte('>')
		return b.String()
	case TText:
		return t.Content
	case TComment:
		return "<!--" + t.Content + "-->"
	case TProcInst:
		if t.Content == "" {
			return "<?" + t.Name + "?>"
		}
		return "<?" + t.Name + " " + t.Content + "?>"
	default:
		return fmt.Sprintf("<err: %d is not a token type>", t.Type)
	}
}
