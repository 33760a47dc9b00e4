package props

import "github.com/axmq/mqttcodec5/proptab"

// kind identifies a property's on-the-wire payload shape, used by the
// bulk decode walker to dispatch without a type switch on the property
// id itself.
type kind byte

const (
	kindByte kind = iota
	kindUint16
	kindUint32
	kindVarInt
	kindString
	kindBinary
	kindUserProperty
)

var propertyKinds = map[proptab.ID]kind{
	proptab.PayloadFormatIndicator:      kindByte,
	proptab.MessageExpiryInterval:       kindUint32,
	proptab.ContentType:                 kindString,
	proptab.ResponseTopic:               kindString,
	proptab.CorrelationData:             kindBinary,
	proptab.SubscriptionIdentifier:      kindVarInt,
	proptab.SessionExpiryInterval:       kindUint32,
	proptab.AssignedClientIdentifier:    kindString,
	proptab.ServerKeepAlive:             kindUint16,
	proptab.AuthenticationMethod:        kindString,
	proptab.AuthenticationData:          kindBinary,
	proptab.RequestProblemInformation:   kindByte,
	proptab.WillDelayInterval:           kindUint32,
	proptab.RequestResponseInformation:  kindByte,
	proptab.ResponseInformation:         kindString,
	proptab.ServerReference:             kindString,
	proptab.ReasonString:                kindString,
	proptab.ReceiveMaximum:              kindUint16,
	proptab.TopicAliasMaximum:           kindUint16,
	proptab.TopicAlias:                  kindUint16,
	proptab.MaximumQoS:                  kindByte,
	proptab.RetainAvailable:             kindByte,
	proptab.UserProperty:                kindUserProperty,
	proptab.MaximumPacketSize:           kindUint32,
	proptab.WildcardSubscriptionAvail:   kindByte,
	proptab.SubscriptionIdAvailable:     kindByte,
	proptab.SharedSubscriptionAvail:     kindByte,
}

func kindOf(id proptab.ID) (kind, bool) {
	k, ok := propertyKinds[id]
	return k, ok
}
