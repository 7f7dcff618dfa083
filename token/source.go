package token

import "io"

// Positioned pairs a token with a depth. Depths are absolute when the pair
// sits in a tree or comes out of a parser, and relative (0 = first node's
// level) when the pair describes a subtree to be inserted.
type Positioned struct {
	Token Token
	Depth int
}

// Source is the input boundary: a one-shot stream of (token, depth) pairs
// in document order. Next returns io.EOF after the last pair.
type Source interface {
	Next() (Token, int, error)
}

// SliceSource replays a materialized token sequence. It is what captured
// subtrees and test fixtures are fed back through.
type SliceSource struct {
	items []Positioned
	pos   int
}

func NewSliceSource(items []Positioned) *SliceSource {
	return &SliceSource{items: items}
}

func (s *SliceSource) Next() (Token, int, error) {
	if s.pos >= len(s.items) {
		return Token{}, 0, io.EOF
	}
	it := s.items[s.pos]
	s.pos++
	return it.Token, it.Depth, nil
}
