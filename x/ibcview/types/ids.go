package types

// ClientID, ConnectionID, ChannelID and PortID are opaque ICS-24
// identifiers. They are plain strings rather than validated newtypes:
// validation of identifier syntax happens in the (external) message
// handlers before any of these ever reach the read context.
type (
	ClientID     = string
	ConnectionID = string
	ChannelID    = string
	PortID       = string
)

// Sequence is a monotonically assigned packet sequence number.
type Sequence = uint64
