package packet

import (
	"testing"

	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, p Packet) Packet {
	t.Helper()
	body, err := Serialize(nil, p)
	require.NoError(t, err)

	fh := fixedheader.FixedHeader{Type: p.Type(), RemainingLength: uint32(len(body))}
	if pub, ok := p.(*Publish); ok {
		fh.Dup, fh.QoS, fh.Retain = pub.Dup, pub.QoS, pub.Retain
	}

	headerBytes, err := fixedheader.Encode(nil, fh)
	require.NoError(t, err)

	parsedHeader, _, err := fixedheader.ParseFromBytes(append(headerBytes, body...))
	require.NoError(t, err)
	require.Equal(t, fh.Type, parsedHeader.Type)

	out, err := Deserialize(fh, body)
	require.NoError(t, err)
	return out
}

func TestDispatchConnectRoundTrip(t *testing.T) {
	c := &Connect{
		CleanStart: true,
		KeepAlive:  30,
		ClientID:   "dispatch-client",
		Properties: nil,
	}
	out := roundTrip(t, c)
	got, ok := out.(*Connect)
	require.True(t, ok)
	require.Equal(t, c.ClientID, got.ClientID)
	require.Equal(t, c.KeepAlive, got.KeepAlive)
	require.True(t, got.CleanStart)
}

func TestDispatchConnackRoundTrip(t *testing.T) {
	c := &Connack{
		SessionPresent: true,
		ReasonCode:     ReasonSuccess,
		Capabilities:   DefaultConnackCapabilities(),
	}
	out := roundTrip(t, c)
	got, ok := out.(*Connack)
	require.True(t, ok)
	require.True(t, got.SessionPresent)
	require.Equal(t, ReasonSuccess, got.ReasonCode)
}

func TestDispatchPublishRoundTrip(t *testing.T) {
	p := &Publish{
		QoS:      fixedheader.QoS1,
		Topic:    "a/b",
		PacketID: 42,
		Payload:  []byte("hello"),
	}
	out := roundTrip(t, p)
	got, ok := out.(*Publish)
	require.True(t, ok)
	require.Equal(t, p.Topic, got.Topic)
	require.Equal(t, p.PacketID, got.PacketID)
	require.Equal(t, p.Payload, got.Payload)
}

func TestDispatchPubackRoundTrip(t *testing.T) {
	p := &Puback{simpleAck{PacketID: 7, ReasonCode: ReasonSuccess}}
	out := roundTrip(t, p)
	got, ok := out.(*Puback)
	require.True(t, ok)
	require.Equal(t, uint16(7), got.PacketID)
}

func TestDispatchSubscribeRoundTrip(t *testing.T) {
	s := &Subscribe{
		PacketID: 5,
		Subscriptions: []Subscription{
			{TopicFilter: "x/#", QoS: fixedheader.QoS1},
		},
	}
	out := roundTrip(t, s)
	got, ok := out.(*Subscribe)
	require.True(t, ok)
	require.Equal(t, s.PacketID, got.PacketID)
	require.Len(t, got.Subscriptions, 1)
	require.Equal(t, "x/#", got.Subscriptions[0].TopicFilter)
}

func TestDispatchSubscribeMultiFilterWithSubscriptionIdentifierRoundTrip(t *testing.T) {
	s := &Subscribe{
		PacketID: 6,
		Subscriptions: []Subscription{
			{TopicFilter: "x/#", QoS: fixedheader.QoS1, SubscriptionIdentifier: 42},
			{TopicFilter: "y/+", QoS: fixedheader.QoS2, SubscriptionIdentifier: 42},
		},
	}
	out := roundTrip(t, s)
	got, ok := out.(*Subscribe)
	require.True(t, ok)
	require.Len(t, got.Subscriptions, 2)
	for _, sub := range got.Subscriptions {
		require.EqualValues(t, 42, sub.SubscriptionIdentifier)
	}
}

func TestDispatchUnsubscribeRoundTrip(t *testing.T) {
	u := &Unsubscribe{PacketID: 9, TopicFilters: []string{"a/b", "c/d"}}
	out := roundTrip(t, u)
	got, ok := out.(*Unsubscribe)
	require.True(t, ok)
	require.Equal(t, u.TopicFilters, got.TopicFilters)
}

func TestDispatchDisconnectRoundTrip(t *testing.T) {
	d := &Disconnect{ReasonCode: ReasonNormalDisconnection}
	out := roundTrip(t, d)
	got, ok := out.(*Disconnect)
	require.True(t, ok)
	require.Equal(t, ReasonNormalDisconnection, got.ReasonCode)
}

func TestDispatchPingRoundTrip(t *testing.T) {
	out := roundTrip(t, &Pingreq{})
	_, ok := out.(*Pingreq)
	require.True(t, ok)

	out = roundTrip(t, &Pingresp{})
	_, ok = out.(*Pingresp)
	require.True(t, ok)
}

func TestDispatchAuthRoundTrip(t *testing.T) {
	method := "SCRAM-SHA-1"
	a := &Auth{ReasonCode: ReasonContinueAuthentication, AuthenticationMethod: &method}
	out := roundTrip(t, a)
	got, ok := out.(*Auth)
	require.True(t, ok)
	require.NotNil(t, got.AuthenticationMethod)
	require.Equal(t, method, *got.AuthenticationMethod)
}

func TestGetSizeMatchesSerializedLength(t *testing.T) {
	p := &Publish{QoS: fixedheader.QoS0, Topic: "t", Payload: []byte("x")}
	remaining, total, err := GetSize(p)
	require.NoError(t, err)

	body, err := Serialize(nil, p)
	require.NoError(t, err)
	require.Equal(t, len(body), remaining)

	fh := fixedheader.FixedHeader{Type: fixedheader.PUBLISH, RemainingLength: uint32(len(body))}
	require.Equal(t, fixedheader.Size(fh)+len(body), total)
}

func TestSerializeUnsupportedPacketType(t *testing.T) {
	_, err := Serialize(nil, unknownPacket{})
	require.ErrorIs(t, err, ErrUnsupportedPacketType)
}

type unknownPacket struct{}

func (unknownPacket) isPacket()                    {}
func (unknownPacket) Type() fixedheader.PacketType { return fixedheader.PacketType(99) }

func TestDeserializeUnsupportedPacketType(t *testing.T) {
	fh := fixedheader.FixedHeader{Type: fixedheader.PacketType(99)}
	_, err := Deserialize(fh, nil)
	require.ErrorIs(t, err, ErrUnsupportedPacketType)
}
