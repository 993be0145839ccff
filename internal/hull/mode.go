package hull

import (
	"strings"

	"github.com/osuushi/delaunay/advanced"
)

type options struct {
	delaunay bool
	// Qc. Report duplicate points instead of dropping them silently.
	keepCoplanar bool
}

func parseMode(mode string) options {
	var opts options
	fields := strings.Fields(mode)
	if len(fields) > 0 && fields[0] == "qhull" {
		fields = fields[1:]
	}
	for _, f := range fields {
		switch f {
		case "d":
			opts.delaunay = true
		case "Qc":
			opts.keepCoplanar = true
		case "Qt", "Qbb", "Qz":
			// Output is always simplicial, predicates are exact and the point
			// at infinity is always present.
		default:
			fatalf(advanced.ExitInput, "unknown option %q in mode %q", f, mode)
		}
	}
	if !opts.delaunay {
		fatalf(advanced.ExitInput, "mode %q does not request a Delaunay triangulation ('d')", mode)
	}
	return opts
}
