package hull

import (
	"runtime"

	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

// Threading exit codes through every step of hull construction would bury the
// geometry. Construction panics with an exitError instead, and Run recovers it
// into an exit code, the same way a C kernel would longjmp back to its entry
// point.

type exitError struct {
	code advanced.ExitCode
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

// Panic with an exitError carrying the given code.
func fatalf(code advanced.ExitCode, format string, args ...interface{}) {
	panic(&exitError{code: code, err: errors.Errorf(format, args...)})
}

// Convert a recovered value into an exitError. Runtime errors become internal
// errors; anything else is not ours and keeps panicking.
func recoverExit(r interface{}) *exitError {
	if r == nil {
		return nil
	}
	switch e := r.(type) {
	case *exitError:
		return e
	case runtime.Error:
		return &exitError{code: advanced.ExitInternal, err: errors.Wrap(e, "hull construction failed")}
	}
	panic(r)
}
