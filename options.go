package delaunay

import (
	"io"

	"github.com/osuushi/delaunay/advanced"
)

// Option configures a Triangulate call.
type Option func(*advanced.Config)

// WithVerbose sends kernel diagnostics to os.Stderr (or the sink set by
// WithDiagnostics). By default they are suppressed.
func WithVerbose(verbose bool) Option {
	return func(cfg *advanced.Config) {
		cfg.Verbose = verbose
	}
}

// WithDiagnostics sends kernel diagnostics to w. The writer is not closed.
// Implies WithVerbose(true).
func WithDiagnostics(w io.Writer) Option {
	return func(cfg *advanced.Config) {
		cfg.Verbose = true
		cfg.Diagnostics = w
	}
}

// WithDiagnosticsFile appends kernel diagnostics to the file at path, which
// is opened for the call and closed afterwards. Implies WithVerbose(true).
func WithDiagnosticsFile(path string) Option {
	return func(cfg *advanced.Config) {
		cfg.Verbose = true
		cfg.DiagnosticsPath = path
	}
}

// WithWarningHandler receives non-fatal warnings, such as *MemoryLeakWarning,
// instead of the package logger.
func WithWarningHandler(handler func(error)) Option {
	if handler == nil {
		panic("delaunay: nil warning handler")
	}
	return func(cfg *advanced.Config) {
		cfg.Warn = handler
	}
}

// WithKernel replaces the bundled kernel. newKernel is called once per
// Triangulate call and must return a fresh kernel each time.
func WithKernel(newKernel func() advanced.Kernel) Option {
	if newKernel == nil {
		panic("delaunay: nil kernel constructor")
	}
	return func(cfg *advanced.Config) {
		cfg.NewKernel = newKernel
	}
}

// WithFacetTrace dumps every kernel facet to the diagnostic sink. It has no
// visible effect unless diagnostics are enabled.
func WithFacetTrace(trace bool) Option {
	return func(cfg *advanced.Config) {
		cfg.TraceFacets = trace
	}
}

// SetLogger replaces the logger used for warnings that have no handler.
// Passing nil mutes it.
func SetLogger(f func(format string, v ...interface{})) {
	advanced.SetLogger(f)
}
