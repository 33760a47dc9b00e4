package packet

// SerializePingreq returns buf unchanged: PINGREQ carries no body.
func SerializePingreq(buf []byte, _ *Pingreq) ([]byte, error) { return buf, nil }

// DeserializePingreq returns an empty Pingreq: its fixed header has
// already been validated to have a zero Remaining Length by the caller.
func DeserializePingreq(_ []byte) (*Pingreq, error) { return &Pingreq{}, nil }

// SerializePingresp returns buf unchanged: PINGRESP carries no body.
func SerializePingresp(buf []byte, _ *Pingresp) ([]byte, error) { return buf, nil }

// DeserializePingresp returns an empty Pingresp.
func DeserializePingresp(_ []byte) (*Pingresp, error) { return &Pingresp{}, nil }
