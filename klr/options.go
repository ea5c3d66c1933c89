package klr

import "io"

// Option mutates the call configuration. Setters never fail; sequence
// content is validated by the entry points, not here.
type Option func(*Options)

// Options stores the effective configuration after applying the setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them through gatherOptions.
type Options struct {
	bj    []int
	base  []int
	trace io.Writer
	latex bool
}

// WithBj sets the right idempotent sequence. It defaults to bi, the
// self-paired weight space.
func WithBj(bj []int) Option {
	return func(o *Options) { o.bj = append([]int(nil), bj...) }
}

// WithBase prepends a fixed prefix to both sequences, enlarging the ambient
// symmetric group by len(base) positions.
func WithBase(base []int) Option {
	return func(o *Options) { o.base = append([]int(nil), base...) }
}

// WithTrace streams a human-readable account of the computation to w:
// generators, per-permutation exponent rows, contributions, cancellations
// and the final sum. The returned values never depend on the writer.
func WithTrace(w io.Writer) Option {
	return func(o *Options) { o.trace = w }
}

// WithLaTeX switches traced idempotent listings to LaTeX rendering.
func WithLaTeX() Option {
	return func(o *Options) { o.latex = true }
}

// gatherOptions applies the setters over the zero configuration.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
