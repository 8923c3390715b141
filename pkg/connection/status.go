package connection

// Status is the connection status.
type Status uint8

const (
	// StatusDisconnected indicates no usable transport.
	StatusDisconnected Status = iota

	// StatusNew indicates a handshake is in flight.
	StatusNew

	// StatusConnected indicates the handshake was acknowledged.
	StatusConnected
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusDisconnected:
		return "DISCONNECTED"
	case StatusNew:
		return "NEW"
	case StatusConnected:
		return "CONNECTED"
	default:
		return "UNKNOWN"
	}
}

// canTransition reports whether from → to is a valid status change.
// Staying in the same status is always allowed.
func canTransition(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusDisconnected:
		return to == StatusNew
	case StatusNew:
		return to == StatusConnected || to == StatusDisconnected
	case StatusConnected:
		return to == StatusDisconnected
	}
	return false
}
