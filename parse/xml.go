package parse

import (
	"io"
	"strings"

	"github.com/HBTGmbH/gosaxml"

	"github.com/canonform/flattree"
	"github.com/canonform/flattree/token"
)

type saxDecoder interface {
	NextToken(t *gosaxml.Token) error
}

// xmlSource drives a gosaxml decoder and tracks depth from the start/end
// element pairing, the way the original event loop tracked its node
// stack. gosaxml keeps raw prefixes intact, which the resolver needs;
// the stdlib decoder would have collapsed them into URIs.
type xmlSource struct {
	dec   saxDecoder
	depth int
	err   error
}

// XML returns a streaming token source over XML text. xmlns and xmlns:*
// attributes are split out of the attribute list into namespace
// declarations; everything else keeps its prefix-qualified name.
func XML(r io.Reader) token.Source {
	return &xmlSource{
		dec:   gosaxml.NewDecoder(r),
		depth: flattree.RootDepth - 1,
	}
}

func (s *xmlSource) Next() (token.Token, int, error) {
	if s.err != nil {
		return token.Token{}, 0, s.err
	}
	var tk gosaxml.Token
	for {
		if err := s.dec.NextToken(&tk); err != nil {
			s.err = err
			return token.Token{}, 0, err
		}
		switch tk.Kind {
		case gosaxml.TokenTypeStartElement:
			tok := elementToken(&tk)
			s.depth++
			return tok, s.depth, nil
		case gosaxml.TokenTypeEndElement:
			s.depth--
		case gosaxml.TokenTypeTextElement, gosaxml.TokenTypeCharData:
			return token.Text(string(tk.ByteData)), s.depth + 1, nil
		case gosaxml.TokenTypeProcInst:
			data := strings.TrimSpace(string(tk.ByteData))
			return token.ProcInst(joinName(tk.Name), data), s.depth + 1, nil
		default:
			// Directives carry no tree structure.
		}
	}
}

func elementToken(tk *gosaxml.Token) token.Token {
	var attrs []token.Attr
	var decls []token.NsDecl
	for i := range tk.Attr {
		a := &tk.Attr[i]
		prefix := string(a.Name.Prefix)
		local := string(a.Name.Local)
		value := string(a.Value)
		switch {
		case prefix == "xmlns":
			decls = append(decls, token.NsDecl{Prefix: local, URI: value})
		case prefix == "" && local == "xmlns":
			decls = append(decls, token.NsDecl{Prefix: "", URI: value})
		default:
			attrs = append(attrs, token.Attr{Name: joined(prefix, local), Value: value})
		}
	}
	return token.Element(joinName(tk.Name), attrs, decls)
}

func joinName(n gosaxml.Name) string {
	return joined(string(n.Prefix), string(n.Local))
}

func joined(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}
