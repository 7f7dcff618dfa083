// Package parse adapts external parsers to the token.Source boundary.
//
// # Usage
//
//	src := parse.XML(r)                       // streaming, prefix-preserving
//	t, err := flattree.Build(src)
//
//	t, err := parse.Tree(format.YAMLFormat, r) // parse + build in one step
//
// Adapters only tokenize; all structural validation happens in
// flattree.Build.
package parse
