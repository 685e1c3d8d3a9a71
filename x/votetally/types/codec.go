package types

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	bin "github.com/gagliardetto/binary"
)

// borshValueCodec adapts gagliardetto/binary's Borsh encoder/decoder to
// collections.ValueCodec, so Tally (and anything else in this package
// implementing MarshalWithEncoder/UnmarshalWithDecoder) can be stored
// through the same collections.Map machinery the rest of this codebase
// uses for protobuf-backed values.
type borshValueCodec[T any] struct {
	valueType string
}

// NewBorshValueCodec returns a collections.ValueCodec[T] backed by
// Borsh, identified in schema debugging output as valueType.
func NewBorshValueCodec[T any](valueType string) borshValueCodec[T] {
	return borshValueCodec[T]{valueType: valueType}
}

func (c borshValueCodec[T]) Encode(value T) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(value); err != nil {
		return nil, fmt.Errorf("borsh encode %s: %w", c.valueType, err)
	}
	return buf.Bytes(), nil
}

func (c borshValueCodec[T]) Decode(b []byte) (T, error) {
	var value T
	if err := bin.NewBorshDecoder(b).Decode(&value); err != nil {
		return value, ErrDecode.Wrapf("borsh decode %s: %s", c.valueType, err)
	}
	return value, nil
}

// EncodeJSON/DecodeJSON round-trip through the Borsh bytes rather than a
// native JSON shape: this codec backs internal keeper state that this
// module never exposes over a JSON query surface, so base64-wrapping
// the wire bytes is sufficient and avoids a second serialization format
// for types with unexported fields (FractionalVotingPower's *big.Rat).
func (c borshValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	bz, err := c.Encode(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(base64.StdEncoding.EncodeToString(bz))
}

func (c borshValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	var value T
	var encoded string
	if err := json.Unmarshal(b, &encoded); err != nil {
		return value, err
	}
	bz, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return value, err
	}
	return c.Decode(bz)
}

func (c borshValueCodec[T]) Stringify(value T) string {
	return fmt.Sprintf("%+v", value)
}

func (c borshValueCodec[T]) ValueType() string {
	return c.valueType
}
