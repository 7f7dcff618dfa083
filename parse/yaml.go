package parse

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/canonform/flattree"
	"github.com/canonform/flattree/token"
)

// YAML parses YAML text into a token source. Mapping keys become
// elements, scalars become text nodes, and sequence items are laid out
// in order under their parent, so document order survives into the tree.
// YAML has no namespaces; the resolver simply never finds declarations.
func YAML(r io.Reader) (token.Source, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := parser.ParseBytes(b, 0)
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	var items []token.Positioned
	for _, doc := range f.Docs {
		items = walkYAML(items, doc.Body, flattree.RootDepth)
	}
	return token.NewSliceSource(items), nil
}

func walkYAML(items []token.Positioned, n ast.Node, depth int) []token.Positioned {
	switch v := n.(type) {
	case nil:
		return items
	case *ast.MappingNode:
		for _, kv := range v.Values {
			items = walkYAML(items, kv, depth)
		}
		return items
	case *ast.MappingValueNode:
		items = append(items, token.Positioned{
			Token: token.Element(keyText(v.Key), nil, nil),
			Depth: depth,
		})
		return walkYAML(items, v.Value, depth+1)
	case *ast.SequenceNode:
		for _, item := range v.Values {
			items = walkYAML(items, item, depth)
		}
		return items
	case *ast.TagNode:
		return walkYAML(items, v.Value, depth)
	case *ast.AnchorNode:
		return walkYAML(items, v.Value, depth)
	case *ast.NullNode:
		return items
	default:
		return append(items, token.Positioned{
			Token: token.Text(scalarText(n)),
			Depth: depth,
		})
	}
}

func keyText(n ast.MapKeyNode) string {
	return scalarText(n)
}

func scalarText(n ast.Node) string {
	if s, ok := n.(*ast.StringNode); ok {
		return s.Value
	}
	if tk := n.GetToken(); tk != nil {
		return tk.Value
	}
	return n.String()
}
