package flattree

import (
	"errors"
	"fmt"
	"io"

	"github.com/canonform/flattree/token"
)

// Build consumes src once, appending each (token, depth) pair. The stream
// is validated as it arrives: a malformed depth is rejected at the point
// of violation, with the offending stream index in the error.
func Build(src token.Source) (*Tree, error) {
	t := New()
	for i := 0; ; i++ {
		tok, depth, err := src.Next()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		if err := t.Append(tok, depth); err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
	}
}

// FromSlice builds a tree from a materialized sequence of absolute-depth
// pairs. Handy for fixtures and for replaying captured subtrees as whole
// documents.
func FromSlice(items []token.Positioned) (*Tree, error) {
	return Build(token.NewSliceSource(items))
}
