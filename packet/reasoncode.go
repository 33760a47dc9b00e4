package packet

// ReasonCode is an MQTT v5 reason code. The same byte value means
// different things on different packet types; code using it should only
// ever compare it against the named constants for the context it was
// decoded in.
type ReasonCode byte

const (
	ReasonSuccess                   ReasonCode = 0x00
	ReasonNormalDisconnection       ReasonCode = 0x00
	ReasonGrantedQoS0               ReasonCode = 0x00
	ReasonGrantedQoS1               ReasonCode = 0x01
	ReasonGrantedQoS2               ReasonCode = 0x02
	ReasonDisconnectWithWillMessage ReasonCode = 0x04
	ReasonNoMatchingSubscribers     ReasonCode = 0x10
	ReasonNoSubscriptionExisted     ReasonCode = 0x11
	ReasonContinueAuthentication    ReasonCode = 0x18
	ReasonReAuthenticate            ReasonCode = 0x19

	ReasonUnspecifiedError                    ReasonCode = 0x80
	ReasonMalformedPacket                     ReasonCode = 0x81
	ReasonProtocolError                       ReasonCode = 0x82
	ReasonImplementationSpecificError         ReasonCode = 0x83
	ReasonUnsupportedProtocolVersion          ReasonCode = 0x84
	ReasonClientIdentifierNotValid            ReasonCode = 0x85
	ReasonBadUsernameOrPassword               ReasonCode = 0x86
	ReasonNotAuthorized                       ReasonCode = 0x87
	ReasonServerUnavailable                   ReasonCode = 0x88
	ReasonServerBusy                          ReasonCode = 0x89
	ReasonBanned                              ReasonCode = 0x8A
	ReasonServerShuttingDown                  ReasonCode = 0x8B
	ReasonBadAuthenticationMethod             ReasonCode = 0x8C
	ReasonKeepAliveTimeout                    ReasonCode = 0x8D
	ReasonSessionTakenOver                    ReasonCode = 0x8E
	ReasonTopicFilterInvalid                  ReasonCode = 0x8F
	ReasonTopicNameInvalid                    ReasonCode = 0x90
	ReasonPacketIdentifierInUse               ReasonCode = 0x91
	ReasonPacketIdentifierNotFound             ReasonCode = 0x92
	ReasonReceiveMaximumExceeded              ReasonCode = 0x93
	ReasonTopicAliasInvalid                   ReasonCode = 0x94
	ReasonPacketTooLarge                      ReasonCode = 0x95
	ReasonMessageRateTooHigh                  ReasonCode = 0x96
	ReasonQuotaExceeded                       ReasonCode = 0x97
	ReasonAdministrativeAction                ReasonCode = 0x98
	ReasonPayloadFormatInvalid                ReasonCode = 0x99
	ReasonRetainNotSupported                  ReasonCode = 0x9A
	ReasonQoSNotSupported                     ReasonCode = 0x9B
	ReasonUseAnotherServer                    ReasonCode = 0x9C
	ReasonServerMoved                         ReasonCode = 0x9D
	ReasonSharedSubscriptionsNotSupported     ReasonCode = 0x9E
	ReasonConnectionRateExceeded              ReasonCode = 0x9F
	ReasonMaximumConnectTime                  ReasonCode = 0xA0
	ReasonSubscriptionIdentifiersNotSupported ReasonCode = 0xA1
	ReasonWildcardSubscriptionsNotSupported   ReasonCode = 0xA2
)

var reasonNames = map[ReasonCode]string{
	ReasonSuccess:                              "Success",
	ReasonGrantedQoS1:                          "Granted QoS 1",
	ReasonGrantedQoS2:                          "Granted QoS 2",
	ReasonDisconnectWithWillMessage:             "Disconnect With Will Message",
	ReasonNoMatchingSubscribers:                 "No Matching Subscribers",
	ReasonNoSubscriptionExisted:                 "No Subscription Existed",
	ReasonContinueAuthentication:                "Continue Authentication",
	ReasonReAuthenticate:                        "Re-Authenticate",
	ReasonUnspecifiedError:                      "Unspecified Error",
	ReasonMalformedPacket:                       "Malformed Packet",
	ReasonProtocolError:                         "Protocol Error",
	ReasonImplementationSpecificError:           "Implementation Specific Error",
	ReasonUnsupportedProtocolVersion:            "Unsupported Protocol Version",
	ReasonClientIdentifierNotValid:              "Client Identifier Not Valid",
	ReasonBadUsernameOrPassword:                 "Bad User Name Or Password",
	ReasonNotAuthorized:                         "Not Authorized",
	ReasonServerUnavailable:                     "Server Unavailable",
	ReasonServerBusy:                            "Server Busy",
	ReasonBanned:                                "Banned",
	ReasonServerShuttingDown:                    "Server Shutting Down",
	ReasonBadAuthenticationMethod:               "Bad Authentication Method",
	ReasonKeepAliveTimeout:                      "Keep Alive Timeout",
	ReasonSessionTakenOver:                      "Session Taken Over",
	ReasonTopicFilterInvalid:                    "Topic Filter Invalid",
	ReasonTopicNameInvalid:                      "Topic Name Invalid",
	ReasonPacketIdentifierInUse:                 "Packet Identifier In Use",
	ReasonPacketIdentifierNotFound:              "Packet Identifier Not Found",
	ReasonReceiveMaximumExceeded:                "Receive Maximum Exceeded",
	ReasonTopicAliasInvalid:                     "Topic Alias Invalid",
	ReasonPacketTooLarge:                        "Packet Too Large",
	ReasonMessageRateTooHigh:                    "Message Rate Too High",
	ReasonQuotaExceeded:                         "Quota Exceeded",
	ReasonAdministrativeAction:                  "Administrative Action",
	ReasonPayloadFormatInvalid:                  "Payload Format Invalid",
	ReasonRetainNotSupported:                    "Retain Not Supported",
	ReasonQoSNotSupported:                       "QoS Not Supported",
	ReasonUseAnotherServer:                      "Use Another Server",
	ReasonServerMoved:                           "Server Moved",
	ReasonSharedSubscriptionsNotSupported:       "Shared Subscriptions Not Supported",
	ReasonConnectionRateExceeded:                "Connection Rate Exceeded",
	ReasonMaximumConnectTime:                    "Maximum Connect Time",
	ReasonSubscriptionIdentifiersNotSupported:   "Subscription Identifiers Not Supported",
	ReasonWildcardSubscriptionsNotSupported:     "Wildcard Subscriptions Not Supported",
}

func (rc ReasonCode) String() string {
	if name, ok := reasonNames[rc]; ok {
		return name
	}
	return "Unknown Reason Code"
}

// IsFailure reports whether rc is one of the 0x80+ error reason codes.
func (rc ReasonCode) IsFailure() bool {
	return rc >= 0x80
}
