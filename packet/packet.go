// Package packet implements the MQTT v5 control packets as a tagged
// union: one concrete Go type per packet, dispatched through GetSize,
// Serialize, and Deserialize rather than the shared "packet info" struct
// plus output parameters the codec this package descends from used.
package packet

import (
	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/props"
)

// Packet is implemented by every concrete MQTT v5 control packet type.
// The marker method exists only to close the interface to this package's
// types.
type Packet interface {
	isPacket()
	Type() fixedheader.PacketType
}

type Connect struct {
	CleanStart     bool
	KeepAlive      uint16
	ClientID       string
	Username       string
	Password       []byte
	HasUsername    bool
	HasPassword    bool
	Will           *Will
	Properties     []props.Entry
	UserProperties []props.UserProperty

	SessionExpiryInterval      *uint32
	ReceiveMaximum             *uint16
	MaximumPacketSize          *uint32
	TopicAliasMaximum          *uint16
	RequestResponseInformation *byte
	RequestProblemInformation  *byte
	AuthenticationMethod       *string
	AuthenticationData         []byte
}

func (*Connect) isPacket()                        {}
func (*Connect) Type() fixedheader.PacketType      { return fixedheader.CONNECT }

// Will holds the CONNECT packet's optional last-will-and-testament
// payload and its own property set.
type Will struct {
	Topic   string
	Payload []byte
	QoS     fixedheader.QoS
	Retain  bool

	DelayInterval         *uint32
	PayloadFormatIndicator *byte
	MessageExpiryInterval *uint32
	ContentType           *string
	ResponseTopic         *string
	CorrelationData       []byte
	UserProperties        []props.UserProperty
}

// ConnackCapabilities is the negotiated-properties view of a decoded
// CONNACK, seeded with the MQTT v5 defaults before any property is
// examined.
type ConnackCapabilities struct {
	SessionExpiryInterval uint32
	ReceiveMaximum        uint16
	MaximumQoS            byte
	RetainAvailable       bool
	MaximumPacketSize     uint32
	AssignedClientID      string
	TopicAliasMaximum     uint16
	ReasonString          string
	WildcardSubAvailable  bool
	SubIDAvailable        bool
	SharedSubAvailable    bool
	ServerKeepAlive       uint16
	ResponseInformation   string
	ServerReference       string
	AuthenticationMethod  string
	AuthenticationData    []byte
	UserProperties        []props.UserProperty
}

// DefaultConnackCapabilities returns the negotiated-property defaults
// that apply before a CONNACK has been received.
func DefaultConnackCapabilities() ConnackCapabilities {
	return ConnackCapabilities{
		ReceiveMaximum:       65535,
		MaximumQoS:           2,
		RetainAvailable:      true,
		MaximumPacketSize:    0xFFFFFFFF,
		WildcardSubAvailable: true,
		SubIDAvailable:       true,
		SharedSubAvailable:   true,
		ServerKeepAlive:      65535,
	}
}

type Connack struct {
	SessionPresent bool
	ReasonCode     ReasonCode
	Capabilities   ConnackCapabilities
}

func (*Connack) isPacket()                   {}
func (*Connack) Type() fixedheader.PacketType { return fixedheader.CONNACK }

type Publish struct {
	Dup      bool
	QoS      fixedheader.QoS
	Retain   bool
	Topic    string
	PacketID uint16
	Payload  []byte

	PayloadFormatIndicator *byte
	MessageExpiryInterval  *uint32
	ContentType            *string
	ResponseTopic          *string
	CorrelationData        []byte
	TopicAlias             *uint16
	SubscriptionIDs        []uint32
	UserProperties         []props.UserProperty
}

func (*Publish) isPacket()                   {}
func (*Publish) Type() fixedheader.PacketType { return fixedheader.PUBLISH }

// simpleAck is the shared shape of PUBACK, PUBREC, PUBREL, and PUBCOMP:
// a packet identifier, a reason code, and an optional property section
// carrying only Reason String and User Property.
type simpleAck struct {
	PacketID       uint16
	ReasonCode     ReasonCode
	ReasonString   string
	UserProperties []props.UserProperty
}

type Puback struct{ simpleAck }
type Pubrec struct{ simpleAck }
type Pubrel struct{ simpleAck }
type Pubcomp struct{ simpleAck }

func (*Puback) isPacket()                    {}
func (*Puback) Type() fixedheader.PacketType { return fixedheader.PUBACK }
func (*Pubrec) isPacket()                    {}
func (*Pubrec) Type() fixedheader.PacketType { return fixedheader.PUBREC }
func (*Pubrel) isPacket()                    {}
func (*Pubrel) Type() fixedheader.PacketType { return fixedheader.PUBREL }
func (*Pubcomp) isPacket()                   {}
func (*Pubcomp) Type() fixedheader.PacketType { return fixedheader.PUBCOMP }

type Subscription struct {
	TopicFilter       string
	QoS               fixedheader.QoS
	NoLocal           bool
	RetainAsPublished bool
	RetainHandling    byte

	// SubscriptionIdentifier is wire-level a single property shared by
	// every filter in the enclosing SUBSCRIBE, not a per-filter value.
	// Set it the same way on every Subscription in a Subscribe's list;
	// Serialize emits it once and Deserialize copies it onto all of
	// them.
	SubscriptionIdentifier uint32
}

type Subscribe struct {
	PacketID       uint16
	Subscriptions  []Subscription
	UserProperties []props.UserProperty
}

func (*Subscribe) isPacket()                    {}
func (*Subscribe) Type() fixedheader.PacketType { return fixedheader.SUBSCRIBE }

type Suback struct {
	PacketID       uint16
	ReasonCodes    []ReasonCode
	ReasonString   string
	UserProperties []props.UserProperty
}

func (*Suback) isPacket()                    {}
func (*Suback) Type() fixedheader.PacketType { return fixedheader.SUBACK }

type Unsubscribe struct {
	PacketID       uint16
	TopicFilters   []string
	UserProperties []props.UserProperty
}

func (*Unsubscribe) isPacket()                    {}
func (*Unsubscribe) Type() fixedheader.PacketType { return fixedheader.UNSUBSCRIBE }

type Unsuback struct {
	PacketID       uint16
	ReasonCodes    []ReasonCode
	ReasonString   string
	UserProperties []props.UserProperty
}

func (*Unsuback) isPacket()                    {}
func (*Unsuback) Type() fixedheader.PacketType { return fixedheader.UNSUBACK }

type Pingreq struct{}

func (*Pingreq) isPacket()                    {}
func (*Pingreq) Type() fixedheader.PacketType { return fixedheader.PINGREQ }

type Pingresp struct{}

func (*Pingresp) isPacket()                    {}
func (*Pingresp) Type() fixedheader.PacketType { return fixedheader.PINGRESP }

type Disconnect struct {
	ReasonCode            ReasonCode
	SessionExpiryInterval *uint32
	ServerReference       *string
	ReasonString          string
	UserProperties        []props.UserProperty
}

func (*Disconnect) isPacket()                    {}
func (*Disconnect) Type() fixedheader.PacketType { return fixedheader.DISCONNECT }

type Auth struct {
	ReasonCode           ReasonCode
	AuthenticationMethod *string
	AuthenticationData   []byte
	ReasonString         string
	UserProperties       []props.UserProperty
}

func (*Auth) isPacket()                    {}
func (*Auth) Type() fixedheader.PacketType { return fixedheader.AUTH }
