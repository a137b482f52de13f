package typeface

// RenderOption configures a batch render call.
// Use functional options to customize RenderGlyphs behavior.
//
// Example:
//
//	// Default worker count (GOMAXPROCS)
//	results := font.RenderGlyphs(reqs)
//
//	// Explicit worker count
//	results := font.RenderGlyphs(reqs, typeface.WithWorkers(4))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for batch rendering.
type renderOptions struct {
	workers int
}

// defaultRenderOptions returns the default batch render options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		workers: 0, // 0 means GOMAXPROCS
	}
}

// WithWorkers sets the number of worker goroutines used to render a
// batch. Values less than one select GOMAXPROCS workers.
//
// Example:
//
//	results := font.RenderGlyphs(reqs, typeface.WithWorkers(2))
func WithWorkers(n int) RenderOption {
	return func(o *renderOptions) {
		o.workers = n
	}
}
