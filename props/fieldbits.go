package props

import "github.com/axmq/mqttcodec5/proptab"

// fieldBit assigns each single-occurrence property a stable bit position
// in a Builder's occurrence bitmap. User Property is the only property
// excluded: it is multi-occurrence and never touches the bitmap.
// DecodeAll does not use these bits; it keeps its own per-call set.
var fieldBit = map[proptab.ID]uint{
	proptab.PayloadFormatIndicator:     0,
	proptab.MessageExpiryInterval:      1,
	proptab.ContentType:                2,
	proptab.ResponseTopic:              3,
	proptab.CorrelationData:            4,
	proptab.SubscriptionIdentifier:     5,
	proptab.SessionExpiryInterval:      6,
	proptab.AssignedClientIdentifier:   7,
	proptab.ServerKeepAlive:            8,
	proptab.AuthenticationMethod:       9,
	proptab.AuthenticationData:         10,
	proptab.RequestProblemInformation:  11,
	proptab.WillDelayInterval:          12,
	proptab.RequestResponseInformation: 13,
	proptab.ResponseInformation:        14,
	proptab.ServerReference:            15,
	proptab.ReasonString:               16,
	proptab.ReceiveMaximum:             17,
	proptab.TopicAliasMaximum:          18,
	proptab.TopicAlias:                 19,
	proptab.MaximumQoS:                 20,
	proptab.RetainAvailable:            21,
	proptab.MaximumPacketSize:          22,
	proptab.WildcardSubscriptionAvail:  23,
	proptab.SubscriptionIdAvailable:    24,
	proptab.SharedSubscriptionAvail:    25,
}

func bitFor(id proptab.ID) (uint, bool) {
	b, ok := fieldBit[id]
	return b, ok
}
