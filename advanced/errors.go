package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Validation and contract errors. Branch on them with errors.Is; context is
// attached by wrapping.
var (
	ErrLengthMismatch      = errors.New("x and y must be 1D arrays of the same length")
	ErrInsufficientPoints  = errors.New("x and y arrays must have a length of at least 3")
	ErrDegenerateInput     = errors.New("x and y arrays must consist of at least 3 unique points")
	ErrResourceAcquisition = errors.New("could not open diagnostic sink")
	ErrNoKernel            = errors.New("no Delaunay kernel configured")
	ErrFacetID             = errors.New("kernel reported a facet id outside its range")
)

// KernelError reports a kernel run that finished with a non-zero exit code.
type KernelError struct {
	Code    ExitCode
	Message string
	cause   error
}

func newKernelError(code ExitCode, suppressed bool, cause error) *KernelError {
	msg := fmt.Sprintf("Error in qhull Delaunay triangulation calculation: %s (exitcode=%d)", code, int(code))
	if cause != nil {
		msg += ": " + cause.Error()
	}
	if suppressed {
		msg += "; use verbose mode to see original qhull error."
	}
	return &KernelError{Code: code, Message: msg, cause: cause}
}

func (e *KernelError) Error() string {
	return e.Message
}

func (e *KernelError) Unwrap() error {
	return e.cause
}

// MemoryLeakWarning is raised when a kernel still holds memory after teardown.
// It is passed to the warning handler and never returned as a failure.
type MemoryLeakWarning struct {
	CurLong, TotLong int
}

func (w *MemoryLeakWarning) Error() string {
	return fmt.Sprintf("qhull could not free all allocated memory (%d blocks, %d bytes outstanding)", w.CurLong, w.TotLong)
}
