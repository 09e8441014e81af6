/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"github.com/vmihailenco/msgpack/v5"
)

// Codec converts arbitrary serializable values to and from bytes. The
// conversion engine uses a Codec for the object ↔ binary-blob mapping;
// round-trips are lossless for any value the codec supports.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, out any) error
}

// Msgpack is a Codec backed by MessagePack encoding.
type Msgpack struct{}

// Encode marshals v to MessagePack bytes.
func (Msgpack) Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Decode unmarshals MessagePack bytes into out, which must be a pointer.
func (Msgpack) Decode(data []byte, out any) error {
	return msgpack.Unmarshal(data, out)
}

// Default returns the codec used when none is configured.
func Default() Codec {
	return Msgpack{}
}
