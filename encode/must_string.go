package encode

import (
	"strings"

	"github.com/canonform/flattree"
)

// MustString is Canonical into a string, panicking on error. For tests
// and debugging output.
func MustString(t *flattree.Tree, opts ...EncodeOption) string {
	var b strings.Builder
	if err := Canonical(t, &b, opts...); err != nil {
		panic(err)
	}
	return b.String()
}
