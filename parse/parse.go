package parse

import (
	"fmt"
	"io"

	"github.com/canonform/flattree"
	"github.com/canonform/flattree/format"
	"github.com/canonform/flattree/token"
)

// Reader returns a token source for the given input format.
func Reader(f format.Format, r io.Reader) (token.Source, error) {
	switch f {
	case format.XMLFormat:
		return XML(r), nil
	case format.YAMLFormat:
		return YAML(r)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
}

// Tree parses r and builds the flat tree in one step.
func Tree(f format.Format, r io.Reader) (*flattree.Tree, error) {
	src, err := Reader(f, r)
	if err != nil {
		return nil, err
	}
	return flattree.Build(src)
}
