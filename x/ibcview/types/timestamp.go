package types

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// Timestamp is a point in time encodable in the Tendermint protobuf time
// representation (seconds + nanos).
type Timestamp struct {
	t time.Time
}

// NewTimestamp wraps a time.Time as a Timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.UTC()}
}

// Time returns the underlying time.Time.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// ToProto converts the Timestamp to its protobuf wire representation.
func (ts Timestamp) ToProto() *timestamppb.Timestamp {
	return timestamppb.New(ts.t)
}

// TimestampFromProto converts a protobuf Timestamp into a Timestamp.
func TimestampFromProto(pb *timestamppb.Timestamp) Timestamp {
	if pb == nil {
		return Timestamp{}
	}
	return NewTimestamp(pb.AsTime())
}

// Before reports whether ts happened before other.
func (ts Timestamp) Before(other Timestamp) bool {
	return ts.t.Before(other.t)
}
