// Package progrock provides the Progrock implementation of the telemetry
// adapter, rendering per-package resolution progress.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/repin-dev/repin/internal/core/ports"
	"github.com/vito/progrock"
	"github.com/vito/progrock/console"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the progrock library.
type Recorder struct {
	rec *progrock.Recorder
}

// New creates a Recorder that renders progress to out as vertices complete.
func New(out io.Writer) ports.Telemetry {
	return NewRecorder(console.NewWriter(out))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex, one per package lookup.
func (r *Recorder) Record(ctx context.Context, name string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close completes the recording session and closes the underlying writer,
// flushing any remaining progress output.
func (r *Recorder) Close() error {
	r.rec.Complete()
	return r.rec.Close()
}
