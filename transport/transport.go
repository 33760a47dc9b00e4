// Package transport declares the byte-stream interfaces this codec reads
// from and writes to. It deliberately carries no implementation: TLS
// setup, socket pooling, and keep-alive timing are a surrounding
// client/broker's job, not this codec's.
package transport

import "context"

// Reader delivers raw bytes to the codec. A call is expected to return
// whatever is currently available, not block for a full packet.
type Reader interface {
	Recv(ctx context.Context, buf []byte) (int, error)
}

// Writer accepts raw bytes from the codec for transmission.
type Writer interface {
	Send(ctx context.Context, buf []byte) (int, error)
}
