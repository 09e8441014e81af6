/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package conv

import (
	"github.com/suparena/modelstore/codec"
	"github.com/suparena/modelstore/datastore"
)

// ToObject decodes a binary blob into out using the codec. An absent
// value leaves out untouched. Valid for either blob kind.
func ToObject(c codec.Codec, v datastore.Value, out any) error {
	if v.IsNull() {
		return nil
	}
	return c.Decode(v.Bytes(), out)
}

// BlobFromObject encodes v to a large binary blob using the codec.
// A nil v yields the absent value.
func BlobFromObject(c codec.Codec, v any) (datastore.Value, error) {
	if v == nil {
		return datastore.Null(), nil
	}
	data, err := c.Encode(v)
	if err != nil {
		return datastore.Null(), err
	}
	return datastore.Blob(data), nil
}

// ShortBlobFromObject encodes v to a small binary blob using the codec.
// A nil v yields the absent value.
func ShortBlobFromObject(c codec.Codec, v any) (datastore.Value, error) {
	if v == nil {
		return datastore.Null(), nil
	}
	data, err := c.Encode(v)
	if err != nil {
		return datastore.Null(), err
	}
	return datastore.ShortBlob(data), nil
}
