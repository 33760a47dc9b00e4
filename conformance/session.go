package conformance

import "github.com/axmq/mqttcodec5/packet"

// NegotiatedSession is a minimal stand-in for the session-state engine
// that would normally sit on top of this codec: it remembers the
// values a client proposed in CONNECT and the server's CONNACK reply,
// and resolves the two into the values that actually govern the
// connection. It allocates no packet identifiers and does not
// retransmit; a real client does both around this codec's output.
type NegotiatedSession struct {
	proposedReceiveMaximum uint16
	proposedMaxPacketSize  uint32
	capabilities           packet.ConnackCapabilities
}

// NewNegotiatedSession records the values a client proposed in its
// CONNECT before any CONNACK has arrived.
func NewNegotiatedSession(proposedReceiveMaximum uint16, proposedMaxPacketSize uint32) *NegotiatedSession {
	return &NegotiatedSession{
		proposedReceiveMaximum: proposedReceiveMaximum,
		proposedMaxPacketSize:  proposedMaxPacketSize,
		capabilities:           packet.DefaultConnackCapabilities(),
	}
}

// ApplyConnack records the server's negotiated capabilities once a
// CONNACK has been decoded.
func (s *NegotiatedSession) ApplyConnack(caps packet.ConnackCapabilities) {
	s.capabilities = caps
}

// EffectiveReceiveMaximum is the lower of what the client proposed and
// what the server granted.
func (s *NegotiatedSession) EffectiveReceiveMaximum() uint16 {
	if s.capabilities.ReceiveMaximum < s.proposedReceiveMaximum {
		return s.capabilities.ReceiveMaximum
	}
	return s.proposedReceiveMaximum
}

// EffectiveMaxPacketSize is the lower of what the client proposed and
// what the server granted; a zero proposal means "no limit proposed."
func (s *NegotiatedSession) EffectiveMaxPacketSize() uint32 {
	if s.proposedMaxPacketSize == 0 {
		return s.capabilities.MaximumPacketSize
	}
	if s.capabilities.MaximumPacketSize < s.proposedMaxPacketSize {
		return s.capabilities.MaximumPacketSize
	}
	return s.proposedMaxPacketSize
}

// EffectiveMaximumQoS is the highest QoS the server will accept.
func (s *NegotiatedSession) EffectiveMaximumQoS() byte {
	return s.capabilities.MaximumQoS
}

// RetainAvailable reports whether the server accepts retained messages.
func (s *NegotiatedSession) RetainAvailable() bool {
	return s.capabilities.RetainAvailable
}
