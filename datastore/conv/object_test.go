/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/modelstore/codec"
	"github.com/suparena/modelstore/datastore"
)

type equipment struct {
	Slot  string
	Power int32
}

func TestObjectBlobRoundTrip(t *testing.T) {
	c := codec.Default()
	in := equipment{Slot: "head", Power: 12}

	v, err := BlobFromObject(c, in)
	require.NoError(t, err)
	assert.Equal(t, datastore.KindBlob, v.Kind())

	var out equipment
	require.NoError(t, ToObject(c, v, &out))
	assert.Equal(t, in, out)
}

func TestObjectShortBlobRoundTrip(t *testing.T) {
	c := codec.Default()
	in := equipment{Slot: "hand", Power: 3}

	v, err := ShortBlobFromObject(c, in)
	require.NoError(t, err)
	assert.Equal(t, datastore.KindShortBlob, v.Kind())

	var out equipment
	require.NoError(t, ToObject(c, v, &out))
	assert.Equal(t, in, out)
}

func TestObjectNullRule(t *testing.T) {
	c := codec.Default()

	v, err := BlobFromObject(c, nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	// Decoding absent leaves the destination untouched.
	out := equipment{Slot: "intact"}
	require.NoError(t, ToObject(c, datastore.Null(), &out))
	assert.Equal(t, "intact", out.Slot)
}
