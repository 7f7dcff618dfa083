package encode

type EncodeOption func(*EncState)

// WithComments controls whether comment nodes are serialized. Canonical
// XML comes in with-comments and without-comments variants; the default
// here is with.
func WithComments(v bool) EncodeOption {
	return func(es *EncState) {
		es.comments = v
	}
}

// WithColor turns on terminal coloring of the output. Meant for human
// inspection, not for canonical byte comparison.
func WithColor(v bool) EncodeOption {
	return func(es *EncState) {
		es.color = v
	}
}

// WithColors sets the palette and implies WithColor(true).
func WithColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		es.color = true
		es.colors = c
	}
}
