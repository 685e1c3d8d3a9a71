package types

// PacketCommitment, AcknowledgementCommitment and Receipt are opaque byte
// blobs committed under the ICS-04 packet paths. Receipt only ever stores
// one logical value: its presence in storage means "received", regardless
// of the bytes actually stored.
type (
	PacketCommitment          []byte
	AcknowledgementCommitment []byte
)

// Receipt models the one-value ICS-04 packet receipt. The zero value is
// not a valid Receipt on its own — absence is represented by "not found"
// at the storage layer, not by a Receipt value.
type Receipt struct {
	// ok is unexported: the only way to obtain a Receipt is ReceiptOk(),
	// which keeps the type from ever silently meaning "not received".
	ok bool
}

// ReceiptOk is the sole Receipt value: presence of a receipt key means
// the packet was received.
func ReceiptOk() Receipt { return Receipt{ok: true} }

// IsOk reports whether the receipt is the (only) Ok value.
func (r Receipt) IsOk() bool { return r.ok }
