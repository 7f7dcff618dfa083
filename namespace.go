package flattree

import (
	"fmt"

	"github.com/canonform/flattree/debug"
	"github.com/canonform/flattree/token"
)

// XMLNamespace is the URI bound to the reserved "xml" prefix on every
// node, with no declaration required.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

// ResolveNamespace resolves prefix at node i: the node itself is checked
// first, then each ancestor, and the nearest declaration wins. That walk
// order is what makes shadowing automatic.
//
// The empty prefix means the default namespace; when no default is in
// force it resolves to "" rather than failing. A non-empty prefix with no
// declaration in scope fails ErrUnresolvedPrefix.
func (t *Tree) ResolveNamespace(i int, prefix string) (string, error) {
	if _, err := t.Depth(i); err != nil {
		return "", err
	}
	if prefix == "xml" {
		return XMLNamespace, nil
	}
	for cur := i; cur != None; {
		if tok := t.tokens[cur]; tok.Type == token.TElement {
			if uri, ok := tok.Decl(prefix); ok {
				if debug.Resolve() {
					debug.Logf("resolve %q at %d: %q declared at %d", prefix, i, uri, cur)
				}
				return uri, nil
			}
		}
		p, err := t.Parent(cur)
		if err != nil {
			return "", err
		}
		cur = p
	}
	if prefix == "" {
		return "", nil
	}
	return "", fmt.Errorf("%w: %q at node %d", ErrUnresolvedPrefix, prefix, i)
}

// InScope collects every prefix binding visible at node i, nearest
// declaration winning. A default-namespace binding appears under the
// empty prefix only when one is in force.
func (t *Tree) InScope(i int) (map[string]string, error) {
	if _, err := t.Depth(i); err != nil {
		return nil, err
	}
	scope := map[string]string{}
	for cur := i; cur != None; {
		if tok := t.tokens[cur]; tok.Type == token.TElement {
			for _, d := range tok.NsDecls {
				if _, ok := scope[d.Prefix]; !ok {
					scope[d.Prefix] = d.URI
				}
			}
		}
		p, err := t.Parent(cur)
		if err != nil {
			return nil, err
		}
		cur = p
	}
	// An empty-URI default declaration un-declares the default namespace.
	if uri, ok := scope[""]; ok && uri == "" {
		delete(scope, "")
	}
	return scope, nil
}
