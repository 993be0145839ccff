package advanced

import "github.com/pkg/errors"

// Kernels that cannot report failure through an exit code may panic with a
// *KernelPanic instead. The session recovers it into an internal-error
// KernelError; any other panic is left alone.

type KernelPanic struct {
	err error
}

func (p *KernelPanic) Error() string {
	return p.err.Error()
}

func (p *KernelPanic) Unwrap() error {
	return p.err
}

// Fatalf lets a Kernel implementation abort Run with a *KernelPanic. The
// session reports it as an ExitInternal KernelError carrying the message.
func Fatalf(format string, args ...interface{}) {
	panic(&KernelPanic{errors.Errorf(format, args...)})
}

func HandleKernelPanicRecover(r interface{}) error {
	if r != nil {
		if kernelPanic, ok := r.(*KernelPanic); ok {
			return kernelPanic
		}
		panic(r)
	}
	return nil
}
