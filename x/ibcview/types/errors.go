package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// ModuleName defines the module name used for error registration and
// storage key prefixing.
const ModuleName = "ibcview"

// Client-tier errors: decode failures, missing state, chain-ID/version
// mismatches, frozen client, proof-spec mismatch, trust-threshold too low,
// timestamp/header unavailable.
var (
	ErrDecode         = sdkerrors.Register(ModuleName, 2, "failed to decode IBC state")
	ErrClientOther    = sdkerrors.Register(ModuleName, 3, "client validation failed")
	ErrClientFrozen   = sdkerrors.Register(ModuleName, 4, "the client is frozen")
	ErrClientNotTm    = sdkerrors.Register(ModuleName, 5, "the client state is not for Tendermint")
	ErrNoHostHeader   = sdkerrors.Register(ModuleName, 6, "no host header")
	ErrClientSpecific = sdkerrors.Register(ModuleName, 7, "client-specific state not found")
)

// Connection-tier errors wrap a client error with a connection-layer
// description; the cause is preserved via errorsmod.Wrap.
var ErrSelfClientValidation = sdkerrors.Register(ModuleName, 8, "self-client validation failed")

// Channel/packet-tier errors: typed not-found variants, carrying the
// parsed sequence, plus a generic wrapper for store-read failures.
var (
	ErrPacketCommitmentNotFound      = sdkerrors.Register(ModuleName, 9, "packet commitment not found")
	ErrPacketReceiptNotFound         = sdkerrors.Register(ModuleName, 10, "packet receipt not found")
	ErrPacketAcknowledgementNotFound = sdkerrors.Register(ModuleName, 11, "packet acknowledgement not found")
	ErrChannelOther                  = sdkerrors.Register(ModuleName, 12, "channel/packet store read failed")
)
