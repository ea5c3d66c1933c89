package klr

import (
	"fmt"
	"io"
)

// tracer is the optional human-readable side channel. A nil writer swallows
// everything; the numeric path never branches on it beyond that.
type tracer struct {
	w io.Writer
}

func newTracer(w io.Writer) *tracer { return &tracer{w: w} }

func (t *tracer) printf(format string, args ...any) {
	if t == nil || t.w == nil {
		return
	}
	fmt.Fprintf(t.w, format, args...)
}
