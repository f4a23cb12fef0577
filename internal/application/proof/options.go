package proof

// Options controls tableau construction (section 4.5).
type Options struct {
	MaxSteps       int
	BuildTimeoutMs int64
	IsBuildModels  bool
	IsGroupOptim   bool
	IsRankOptim    bool
	// Cancel is polled between applications (section 5's polling-based
	// cancellation); nil means never cancel.
	Cancel <-chan struct{}
}

// DefaultOptions returns the engine's defaults, overridable per call to
// Open (config.Config supplies process-wide defaults via
// internal/config).
func DefaultOptions() Options {
	return Options{
		MaxSteps:       10_000,
		BuildTimeoutMs: 30_000,
		IsBuildModels:  true,
		IsGroupOptim:   true,
		IsRankOptim:    true,
	}
}
