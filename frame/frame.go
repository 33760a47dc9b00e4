// Package frame extracts an MQTT v5 fixed header — and therefore the
// length of the packet that follows it — from a byte stream that may
// only offer one byte at a time, or from an already-buffered prefix
// that may not yet hold a complete header.
package frame

import (
	"context"

	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/transport"
	"github.com/axmq/mqttcodec5/wire"
)

// Header is the outcome of a successful extraction: everything needed
// to size and classify the packet body that follows.
type Header struct {
	Type            fixedheader.PacketType
	Dup             bool
	QoS             fixedheader.QoS
	Retain          bool
	RemainingLength uint32
}

// fixedFlags mirrors fixedheader's pinned low-nibble table for every
// type except PUBLISH, whose nibble carries DUP/QoS/RETAIN instead.
var fixedFlags = map[fixedheader.PacketType]byte{
	fixedheader.CONNECT:     0x0,
	fixedheader.CONNACK:     0x0,
	fixedheader.PUBACK:      0x0,
	fixedheader.PUBREC:      0x0,
	fixedheader.PUBREL:      0x2,
	fixedheader.PUBCOMP:     0x0,
	fixedheader.SUBSCRIBE:   0x2,
	fixedheader.SUBACK:      0x0,
	fixedheader.UNSUBSCRIBE: 0x2,
	fixedheader.UNSUBACK:    0x0,
	fixedheader.PINGREQ:     0x0,
	fixedheader.PINGRESP:    0x0,
	fixedheader.DISCONNECT:  0x0,
	fixedheader.AUTH:        0x0,
}

type state int

const (
	awaitingType state = iota
	awaitingVBIByte
	complete
	bad
)

// fsm walks AwaitingType -> AwaitingVbiByte(k) -> Complete|Bad one byte
// at a time, independent of where each byte comes from.
type fsm struct {
	st         state
	typeByte   byte
	rl         uint32
	multiplier uint32
	vbiBytes   int
}

func (m *fsm) feed(b byte) (done bool, err error) {
	switch m.st {
	case awaitingType:
		t := fixedheader.PacketType(b >> 4)
		if t == fixedheader.Reserved {
			m.st = bad
			return true, fixedheader.ErrReservedPacketType
		}
		if t > fixedheader.AUTH {
			m.st = bad
			return true, fixedheader.ErrUnknownPacketType
		}
		m.typeByte = b
		m.multiplier = 1
		m.st = awaitingVBIByte
		return false, nil

	case awaitingVBIByte:
		if m.vbiBytes >= wire.MaxVBIBytes {
			m.st = bad
			return true, wire.ErrMalformedVBI
		}
		m.rl += uint32(b&0x7F) * m.multiplier
		m.vbiBytes++
		if b&0x80 == 0 {
			if m.vbiBytes != wire.SizeVBI(m.rl) {
				m.st = bad
				return true, wire.ErrMalformedVBI
			}
			m.st = complete
			return true, nil
		}
		if m.multiplier > 128*128*128 {
			m.st = bad
			return true, wire.ErrMalformedVBI
		}
		m.multiplier *= 128
		return false, nil

	default:
		return true, wire.ErrMalformedVBI
	}
}

func (m *fsm) header() (Header, error) {
	t := fixedheader.PacketType(m.typeByte >> 4)
	h := Header{Type: t, RemainingLength: m.rl}
	nibble := m.typeByte & 0x0F
	if t == fixedheader.PUBLISH {
		h.Dup = nibble&0x08 != 0
		h.QoS = fixedheader.QoS((nibble >> 1) & 0x03)
		h.Retain = nibble&0x01 != 0
		if !h.QoS.IsValid() {
			return Header{}, fixedheader.ErrInvalidQoS
		}
		if h.Dup && h.QoS == fixedheader.QoS0 {
			return Header{}, fixedheader.ErrDupWithQoS0
		}
		return h, nil
	}
	if want, ok := fixedFlags[t]; ok && nibble != want {
		return Header{}, fixedheader.ErrInvalidFlags
	}
	return h, nil
}

// ExtractStream reads a fixed header from r one byte at a time,
// relinquishing control to the caller between reads rather than
// blocking for the whole header. A zero-length read on the very first
// byte is reported as ErrNoDataAvailable; any other short read is
// ErrRecvFailed.
func ExtractStream(ctx context.Context, r transport.Reader) (Header, error) {
	m := &fsm{}
	var buf [1]byte
	first := true
	for {
		n, err := r.Recv(ctx, buf[:])
		if err != nil {
			return Header{}, wire.ErrRecvFailed
		}
		if n == 0 {
			if first {
				return Header{}, wire.ErrNoDataAvailable
			}
			return Header{}, wire.ErrRecvFailed
		}
		first = false

		done, err := m.feed(buf[0])
		if err != nil {
			return Header{}, err
		}
		if done {
			return m.header()
		}
	}
}

// ExtractBuffered runs the same state machine over buf[:end], an
// already-received prefix that may or may not hold a complete fixed
// header yet. It never blocks: if the header is incomplete it returns
// ErrNeedMoreBytes so the caller can read more and retry.
func ExtractBuffered(buf []byte, end int) (Header, int, error) {
	m := &fsm{}
	for i := 0; i < end; i++ {
		done, err := m.feed(buf[i])
		if err != nil {
			return Header{}, 0, err
		}
		if done {
			h, err := m.header()
			if err != nil {
				return Header{}, 0, err
			}
			return h, i + 1, nil
		}
	}
	return Header{}, 0, wire.ErrNeedMoreBytes
}
