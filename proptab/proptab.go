// Package proptab implements the MQTT v5 property-legality matrix: which
// property identifiers are permitted on which control packet type.
//
// This is deliberately a switch over fixedheader.PacketType rather than a
// runtime bitmask table built from shared constants — the source this
// codec is descended from defined the CONNECT and CONNACK masks twice,
// once per translation unit, and let them drift. One literal set per
// packet type, built once, removes that class of bug.
package proptab

import (
	"sync"

	"github.com/axmq/mqttcodec5/fixedheader"
)

// ID is an MQTT v5 property identifier.
type ID byte

const (
	PayloadFormatIndicator     ID = 0x01
	MessageExpiryInterval      ID = 0x02
	ContentType                ID = 0x03
	ResponseTopic              ID = 0x08
	CorrelationData            ID = 0x09
	SubscriptionIdentifier     ID = 0x0B
	SessionExpiryInterval      ID = 0x11
	AssignedClientIdentifier   ID = 0x12
	ServerKeepAlive            ID = 0x13
	AuthenticationMethod       ID = 0x15
	AuthenticationData         ID = 0x16
	RequestProblemInformation  ID = 0x17
	WillDelayInterval          ID = 0x18
	RequestResponseInformation ID = 0x19
	ResponseInformation        ID = 0x1A
	ServerReference            ID = 0x1C
	ReasonString               ID = 0x1F
	ReceiveMaximum             ID = 0x21
	TopicAliasMaximum          ID = 0x22
	TopicAlias                 ID = 0x23
	MaximumQoS                 ID = 0x24
	RetainAvailable            ID = 0x25
	UserProperty               ID = 0x26
	MaximumPacketSize          ID = 0x27
	WildcardSubscriptionAvail  ID = 0x28
	SubscriptionIdAvailable    ID = 0x29
	SharedSubscriptionAvail    ID = 0x2A
)

var tables = sync.OnceValue(buildTables)

func buildTables() map[fixedheader.PacketType]map[ID]bool {
	connect := map[ID]bool{
		SessionExpiryInterval:      true,
		AuthenticationMethod:       true,
		AuthenticationData:         true,
		RequestProblemInformation:  true,
		RequestResponseInformation: true,
		ReceiveMaximum:             true,
		TopicAliasMaximum:          true,
		MaximumPacketSize:          true,
		UserProperty:               true,
	}
	connack := map[ID]bool{
		SessionExpiryInterval:     true,
		AssignedClientIdentifier:  true,
		ServerKeepAlive:           true,
		AuthenticationMethod:      true,
		AuthenticationData:        true,
		ResponseInformation:       true,
		ServerReference:           true,
		ReasonString:              true,
		ReceiveMaximum:            true,
		TopicAliasMaximum:         true,
		MaximumQoS:                true,
		RetainAvailable:           true,
		UserProperty:              true,
		MaximumPacketSize:         true,
		WildcardSubscriptionAvail: true,
		SubscriptionIdAvailable:   true,
		SharedSubscriptionAvail:   true,
	}
	publish := map[ID]bool{
		PayloadFormatIndicator: true,
		MessageExpiryInterval:  true,
		ContentType:            true,
		ResponseTopic:          true,
		CorrelationData:        true,
		SubscriptionIdentifier: true,
		TopicAlias:             true,
		UserProperty:           true,
	}
	subscribe := map[ID]bool{
		SubscriptionIdentifier: true,
		UserProperty:           true,
	}
	unsubscribe := map[ID]bool{
		UserProperty: true,
	}
	disconnect := map[ID]bool{
		SessionExpiryInterval: true,
		ServerReference:       true,
		ReasonString:          true,
		UserProperty:          true,
	}
	auth := map[ID]bool{
		AuthenticationMethod: true,
		AuthenticationData:   true,
		ReasonString:         true,
		UserProperty:         true,
	}
	// Every remaining ACK type (PUBACK, PUBREC, PUBREL, PUBCOMP, SUBACK,
	// UNSUBACK) permits only Reason String and User Property.
	simpleAck := map[ID]bool{
		ReasonString: true,
		UserProperty: true,
	}
	// PINGREQ/PINGRESP carry no properties at all; omitted from the map
	// means Allowed always returns false for them.

	will := map[ID]bool{
		PayloadFormatIndicator: true,
		MessageExpiryInterval:  true,
		ContentType:            true,
		ResponseTopic:          true,
		CorrelationData:        true,
		WillDelayInterval:      true,
		UserProperty:           true,
	}

	return map[fixedheader.PacketType]map[ID]bool{
		fixedheader.CONNECT:     connect,
		fixedheader.CONNACK:     connack,
		fixedheader.PUBLISH:     publish,
		fixedheader.PUBACK:      simpleAck,
		fixedheader.PUBREC:      simpleAck,
		fixedheader.PUBREL:      simpleAck,
		fixedheader.PUBCOMP:     simpleAck,
		fixedheader.SUBSCRIBE:   subscribe,
		fixedheader.SUBACK:      simpleAck,
		fixedheader.UNSUBSCRIBE: unsubscribe,
		fixedheader.UNSUBACK:    simpleAck,
		fixedheader.DISCONNECT:  disconnect,
		fixedheader.AUTH:        auth,
		fixedheader.Will:        will,
	}
}

func tableFor(pt fixedheader.PacketType) map[ID]bool {
	return tables()[pt]
}

// Allowed reports whether property id may legally appear in a packet of
// type pt. PINGREQ and PINGRESP permit no properties at all. Unknown
// packet types permit none.
func Allowed(pt fixedheader.PacketType, id ID) bool {
	switch pt {
	case fixedheader.CONNECT, fixedheader.CONNACK, fixedheader.PUBLISH,
		fixedheader.PUBACK, fixedheader.PUBREC, fixedheader.PUBREL, fixedheader.PUBCOMP,
		fixedheader.SUBSCRIBE, fixedheader.SUBACK,
		fixedheader.UNSUBSCRIBE, fixedheader.UNSUBACK,
		fixedheader.DISCONNECT, fixedheader.AUTH, fixedheader.Will:
		return tableFor(pt)[id]
	case fixedheader.PINGREQ, fixedheader.PINGRESP:
		return false
	default:
		return false
	}
}
