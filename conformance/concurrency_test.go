package conformance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/packet"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentPublishRoundTrips drives several independent
// MemoryTransport pairs at once, confirming the codec has no shared
// mutable state that would make concurrent encode/decode calls race.
func TestConcurrentPublishRoundTrips(t *testing.T) {
	const workers = 16

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()

			p := &packet.Publish{
				QoS:      fixedheader.QoS1,
				Topic:    fmt.Sprintf("worker/%d", i),
				PacketID: uint16(i + 1),
				Payload:  []byte(fmt.Sprintf("payload-%d", i)),
			}
			body, err := packet.Serialize(nil, p)
			if err != nil {
				return err
			}
			fh := fixedheader.FixedHeader{Type: fixedheader.PUBLISH, QoS: p.QoS, RemainingLength: uint32(len(body))}
			headerBytes, err := fixedheader.Encode(nil, fh)
			if err != nil {
				return err
			}
			wire := append(headerBytes, body...)

			client, server := NewMemoryTransport()
			defer client.Close()
			defer server.Close()

			go func() {
				_, _ = server.Send(ctx, wire)
			}()

			buf := make([]byte, len(wire))
			total := 0
			for total < len(buf) {
				n, err := client.Recv(ctx, buf[total:])
				if err != nil {
					return err
				}
				if n == 0 {
					return fmt.Errorf("worker %d: zero-length read before completion", i)
				}
				total += n
			}

			parsedHeader, n, err := fixedheader.ParseFromBytes(buf)
			if err != nil {
				return err
			}
			got, err := packet.Deserialize(parsedHeader, buf[n:])
			if err != nil {
				return err
			}
			pub, ok := got.(*packet.Publish)
			if !ok || pub.Topic != p.Topic {
				return fmt.Errorf("round trip mismatch for worker %d", i)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
