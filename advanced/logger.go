package advanced

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf and
// receives warnings that have no handler of their own.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

func logWarning(w error) {
	Logf("delaunay: warning: %v", w)
}
