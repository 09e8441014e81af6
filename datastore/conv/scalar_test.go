/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suparena/modelstore/datastore"
)

func TestNullScalarRule(t *testing.T) {
	null := datastore.Null()

	// Value-typed destinations get the zero value.
	assert.Equal(t, int16(0), ToInt16(null))
	assert.Equal(t, int32(0), ToInt32(null))
	assert.Equal(t, int64(0), ToInt64(null))
	assert.Equal(t, float32(0), ToFloat32(null))
	assert.Equal(t, float64(0), ToFloat64(null))
	assert.False(t, ToBool(null))
	assert.Equal(t, "", ToString(null))
	assert.Nil(t, ToBytes(null))

	// Pointer destinations get nil.
	assert.Nil(t, ToInt16Ptr(null))
	assert.Nil(t, ToInt32Ptr(null))
	assert.Nil(t, ToInt64Ptr(null))
	assert.Nil(t, ToFloat32Ptr(null))
	assert.Nil(t, ToFloat64Ptr(null))
	assert.Nil(t, ToBoolPtr(null))
	assert.Nil(t, ToStringPtr(null))
}

func TestNilPointerConvertsToAbsent(t *testing.T) {
	assert.True(t, FromInt16Ptr(nil).IsNull())
	assert.True(t, FromInt32Ptr(nil).IsNull())
	assert.True(t, FromInt64Ptr(nil).IsNull())
	assert.True(t, FromFloat32Ptr(nil).IsNull())
	assert.True(t, FromFloat64Ptr(nil).IsNull())
	assert.True(t, FromBoolPtr(nil).IsNull())
	assert.True(t, FromStringPtr(nil).IsNull())
	assert.True(t, BlobFromBytes(nil).IsNull())
	assert.True(t, ShortBlobFromBytes(nil).IsNull())
}

func TestIntScalarRoundTrip(t *testing.T) {
	assert.Equal(t, int16(-7), ToInt16(FromInt16(-7)))
	assert.Equal(t, int32(1<<20), ToInt32(FromInt32(1<<20)))
	assert.Equal(t, int64(1<<40), ToInt64(FromInt64(1<<40)))

	n := int32(99)
	p := ToInt32Ptr(FromInt32Ptr(&n))
	assert.NotNil(t, p)
	assert.Equal(t, n, *p)
}

// Narrowing silently truncates out-of-range values; these expectations
// pin the behavior.
func TestNarrowingTruncates(t *testing.T) {
	assert.Equal(t, int16(-7616), ToInt16(datastore.Int(123456)))
	assert.Equal(t, int32(-912916587), ToInt32(datastore.Int(1<<40|1<<31|1234567061)))
	assert.Equal(t, int16(0), ToInt16(datastore.Int(1<<32)))
}

// Once narrowed, converting through storage and back is exact.
func TestNarrowingIdempotentOnceNarrowed(t *testing.T) {
	wide := datastore.Int(123456789012)
	narrowed := ToInt16(wide)
	assert.Equal(t, narrowed, ToInt16(FromInt16(narrowed)))

	narrowed32 := ToInt32(wide)
	assert.Equal(t, narrowed32, ToInt32(FromInt32(narrowed32)))
}

func TestFloatConversions(t *testing.T) {
	assert.Equal(t, float64(2.25), ToFloat64(FromFloat64(2.25)))
	assert.Equal(t, float32(1.5), ToFloat32(FromFloat32(1.5)))

	// float64 → float32 narrows through the storage double.
	assert.Equal(t, float32(2.25), ToFloat32(datastore.Double(2.25)))
}

func TestBoolStringBytesConversions(t *testing.T) {
	assert.True(t, ToBool(FromBool(true)))

	assert.Equal(t, "entity", ToString(FromString("entity")))
	s := "ptr"
	assert.Equal(t, "ptr", *ToStringPtr(FromStringPtr(&s)))

	data := []byte{0xde, 0xad}
	assert.Equal(t, data, ToBytes(BlobFromBytes(data)))
	assert.Equal(t, data, ToBytes(ShortBlobFromBytes(data)))
	assert.Equal(t, datastore.KindShortBlob, ShortBlobFromBytes(data).Kind())
	assert.Equal(t, datastore.KindBlob, BlobFromBytes(data).Kind())
}
