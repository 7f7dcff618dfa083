// Package encode renders a flat tree as canonical markup text: a
// deterministic serialization independent of how the source was
// formatted.
//
// # Usage
//
//	err := encode.Canonical(t, w)
//	err := encode.Canonical(t, w, encode.WithComments(false))
//
// Normalization applied per element: namespace declarations sorted by
// prefix, attributes sorted by name, every prefix in use checked against
// the tree's in-scope declarations, explicit end tags, C14N-style
// escaping of text and attribute values.
package encode
