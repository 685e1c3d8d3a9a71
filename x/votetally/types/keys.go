package types

import "fmt"

// StoreKeyPrefix namespaces every vote-tally storage key.
const StoreKeyPrefix = "votetally/"

// Keys builds the three storage sub-keys backing one Tally record. It
// is the Go analogue of the Rust source's vote_tallies::Keys<T>: that
// type carries its event kind as a generic type parameter, dispatched
// by the Rust trait system; here the same role is played by a plain
// string discriminator, since a Go generic parameterized only to
// distinguish storage namespaces buys nothing a string tag doesn't.
type Keys struct {
	eventKind string
	eventID   string
}

// NewKeys namespaces a tally record by its event kind (e.g. "bridge_deposit")
// and the specific event's identifier.
func NewKeys(eventKind, eventID string) Keys {
	return Keys{eventKind: eventKind, eventID: eventID}
}

func (k Keys) prefix() string {
	return fmt.Sprintf("%s%s/%s/", StoreKeyPrefix, k.eventKind, k.eventID)
}

// Seen, SeenBy and VotingPower return the three sub-keys validate_update
// records into a ChangedKeys set as each field changes.
func (k Keys) Seen() string        { return k.prefix() + "seen" }
func (k Keys) SeenBy() string      { return k.prefix() + "seen_by" }
func (k Keys) VotingPower() string { return k.prefix() + "voting_power" }

// ChangedKeys is the set of sub-keys validate_update found to have
// changed between a pre- and post-tally.
type ChangedKeys map[string]struct{}

// NewChangedKeys returns an empty set.
func NewChangedKeys() ChangedKeys {
	return make(ChangedKeys)
}

// Add records key as changed.
func (c ChangedKeys) Add(key string) {
	c[key] = struct{}{}
}

// Has reports whether key was recorded as changed.
func (c ChangedKeys) Has(key string) bool {
	_, ok := c[key]
	return ok
}
