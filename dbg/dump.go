package dbg

import (
	"io"

	"github.com/kr/pretty"
)

// Fdump writes a labelled, pretty-printed dump of v to w.
func Fdump(w io.Writer, label string, v interface{}) {
	pretty.Fprintf(w, "%s %# v\n", label, v)
}
