package advanced

import (
	"io"
	"os"
	"sync"

	"github.com/osuushi/delaunay/dbg"
	"github.com/pkg/errors"
)

// Config controls one triangulation call.
type Config struct {
	// Verbose sends kernel diagnostics to a real sink. Otherwise they are
	// discarded, and kernel errors say how to see them.
	Verbose bool
	// Diagnostics is the verbose sink. Nil means os.Stderr. Shared sinks are
	// never closed.
	Diagnostics io.Writer
	// DiagnosticsPath, when set, is opened (append) as the verbose sink instead
	// and closed after the call.
	DiagnosticsPath string
	// TraceFacets dumps every kernel facet to the sink before extraction.
	TraceFacets bool
	// Warn receives non-fatal warnings such as *MemoryLeakWarning. Nil means
	// Logf.
	Warn func(error)
	// NewKernel creates the kernel for one call.
	NewKernel func() Kernel
}

// Kernels without a Reentrant guarantee run one at a time.
var kernelMu sync.Mutex

// A Session owns one kernel invocation and its diagnostic sink. Close must be
// called on every path; it is safe to call more than once.
type Session struct {
	kernel     Kernel
	sink       io.Writer
	sinkCloser io.Closer
	suppressed bool
	warn       func(error)
	unlock     func()
	closed     bool
}

// OpenSession acquires the diagnostic sink and a fresh kernel.
func OpenSession(cfg Config) (*Session, error) {
	if cfg.NewKernel == nil {
		return nil, ErrNoKernel
	}
	s := &Session{suppressed: !cfg.Verbose, warn: cfg.Warn}
	if s.warn == nil {
		s.warn = logWarning
	}

	switch {
	case !cfg.Verbose:
		s.sink = io.Discard
	case cfg.DiagnosticsPath != "":
		f, err := os.OpenFile(cfg.DiagnosticsPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(ErrResourceAcquisition, "%v", err)
		}
		s.sink = f
		s.sinkCloser = f
	case cfg.Diagnostics != nil:
		s.sink = cfg.Diagnostics
	default:
		s.sink = os.Stderr
	}

	s.kernel = cfg.NewKernel()
	if s.kernel == nil {
		s.closeSink()
		return nil, ErrNoKernel
	}
	if r, ok := s.kernel.(Reentrant); !ok || !r.Reentrant() {
		kernelMu.Lock()
		s.unlock = kernelMu.Unlock
	}
	return s, nil
}

// Invoke runs the kernel on conditioned points and returns its facets. The
// facets stay valid until Close.
func (s *Session) Invoke(coords []float64, npoints int) (facets []Facet, maxFacetID int, err error) {
	defer func() {
		if cause := HandleKernelPanicRecover(recover()); cause != nil {
			facets, maxFacetID = nil, 0
			err = newKernelError(ExitInternal, s.suppressed, cause)
		}
	}()

	code := s.kernel.Run(2, npoints, coords, DelaunayMode, s.sink)
	if code != ExitNone {
		return nil, 0, newKernelError(code, s.suppressed, nil)
	}
	return s.kernel.Facets(), s.kernel.MaxFacetID(), nil
}

func (s *Session) trace(facets []Facet) {
	for _, f := range facets {
		dbg.Fdump(s.sink, dbg.Name(f.ID), f)
	}
}

// Close frees the kernel, warns if it kept memory, and closes the sink unless
// it is shared.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.unlock != nil {
		defer s.unlock()
	}

	s.kernel.Free()
	if curlong, totlong := s.kernel.FreeShort(); curlong != 0 || totlong != 0 {
		s.warn(&MemoryLeakWarning{CurLong: curlong, TotLong: totlong})
	}
	return s.closeSink()
}

func (s *Session) closeSink() error {
	if s.sinkCloser == nil {
		return nil
	}
	err := s.sinkCloser.Close()
	s.sinkCloser = nil
	return errors.Wrap(err, "close diagnostic sink")
}
