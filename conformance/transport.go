// Package conformance supplies the minimal external-collaborator
// stand-ins this module's own tests need to exercise the codec
// end-to-end: an in-memory transport and a tiny session-capabilities
// holder. Neither is meant for production use; a real client or broker
// supplies its own transport and session-state engine.
package conformance

import (
	"context"
	"io"
)

// MemoryTransport is an io.Pipe-backed transport.Reader/Writer pair,
// letting tests drive frame.ExtractStream byte-by-byte without a real
// socket.
type MemoryTransport struct {
	r *io.PipeReader
	w *io.PipeWriter
}

// NewMemoryTransport returns a connected pair: bytes written with Send
// on one end arrive via Recv on the other.
func NewMemoryTransport() (client *MemoryTransport, server *MemoryTransport) {
	r1, w1 := io.Pipe()
	r2, w2 := io.Pipe()
	return &MemoryTransport{r: r1, w: w2}, &MemoryTransport{r: r2, w: w1}
}

// Recv reads whatever is currently available, up to len(buf) bytes.
// Tests exercising byte-by-byte incremental parsing pass a one-byte buf
// so each call hands back exactly one byte.
func (m *MemoryTransport) Recv(ctx context.Context, buf []byte) (int, error) {
	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := m.r.Read(buf)
		done <- result{n, err}
	}()
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-done:
		if res.err == io.EOF {
			return res.n, nil
		}
		return res.n, res.err
	}
}

// Send writes buf in full.
func (m *MemoryTransport) Send(ctx context.Context, buf []byte) (int, error) {
	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := m.w.Write(buf)
		done <- result{n, err}
	}()
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-done:
		return res.n, res.err
	}
}

// Close closes both ends of this side of the pipe.
func (m *MemoryTransport) Close() error {
	werr := m.w.Close()
	rerr := m.r.Close()
	if werr != nil {
		return werr
	}
	return rerr
}
