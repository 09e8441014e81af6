/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package conv

import (
	"github.com/suparena/modelstore/datastore"
)

// Scalar conversions between storage values and Go field types.
//
// The null rule is uniform: an absent storage value converts to the zero
// value for value-typed destinations and to nil for pointer destinations;
// a nil pointer converts back to the absent value. Narrowing from the
// storage 64-bit integer to int32/int16 truncates two's-complement style
// with no overflow check.

// ToInt16 converts a storage integer to an int16, truncating.
func ToInt16(v datastore.Value) int16 {
	if v.IsNull() {
		return 0
	}
	return int16(v.Int64())
}

// ToInt16Ptr converts a storage integer to an *int16, truncating.
func ToInt16Ptr(v datastore.Value) *int16 {
	if v.IsNull() {
		return nil
	}
	n := int16(v.Int64())
	return &n
}

// ToInt32 converts a storage integer to an int32, truncating.
func ToInt32(v datastore.Value) int32 {
	if v.IsNull() {
		return 0
	}
	return int32(v.Int64())
}

// ToInt32Ptr converts a storage integer to an *int32, truncating.
func ToInt32Ptr(v datastore.Value) *int32 {
	if v.IsNull() {
		return nil
	}
	n := int32(v.Int64())
	return &n
}

// ToInt64 converts a storage integer to an int64.
func ToInt64(v datastore.Value) int64 {
	if v.IsNull() {
		return 0
	}
	return v.Int64()
}

// ToInt64Ptr converts a storage integer to an *int64.
func ToInt64Ptr(v datastore.Value) *int64 {
	if v.IsNull() {
		return nil
	}
	n := v.Int64()
	return &n
}

// FromInt16 converts an int16 to a storage integer.
func FromInt16(v int16) datastore.Value {
	return datastore.Int(int64(v))
}

// FromInt16Ptr converts an *int16 to a storage integer.
func FromInt16Ptr(v *int16) datastore.Value {
	if v == nil {
		return datastore.Null()
	}
	return datastore.Int(int64(*v))
}

// FromInt32 converts an int32 to a storage integer.
func FromInt32(v int32) datastore.Value {
	return datastore.Int(int64(v))
}

// FromInt32Ptr converts an *int32 to a storage integer.
func FromInt32Ptr(v *int32) datastore.Value {
	if v == nil {
		return datastore.Null()
	}
	return datastore.Int(int64(*v))
}

// FromInt64 converts an int64 to a storage integer.
func FromInt64(v int64) datastore.Value {
	return datastore.Int(v)
}

// FromInt64Ptr converts an *int64 to a storage integer.
func FromInt64Ptr(v *int64) datastore.Value {
	if v == nil {
		return datastore.Null()
	}
	return datastore.Int(*v)
}

// ToFloat32 converts a storage double to a float32.
func ToFloat32(v datastore.Value) float32 {
	if v.IsNull() {
		return 0
	}
	return float32(v.Float64())
}

// ToFloat32Ptr converts a storage double to a *float32.
func ToFloat32Ptr(v datastore.Value) *float32 {
	if v.IsNull() {
		return nil
	}
	f := float32(v.Float64())
	return &f
}

// ToFloat64 converts a storage double to a float64.
func ToFloat64(v datastore.Value) float64 {
	if v.IsNull() {
		return 0
	}
	return v.Float64()
}

// ToFloat64Ptr converts a storage double to a *float64.
func ToFloat64Ptr(v datastore.Value) *float64 {
	if v.IsNull() {
		return nil
	}
	f := v.Float64()
	return &f
}

// FromFloat32 converts a float32 to a storage double.
func FromFloat32(v float32) datastore.Value {
	return datastore.Double(float64(v))
}

// FromFloat32Ptr converts a *float32 to a storage double.
func FromFloat32Ptr(v *float32) datastore.Value {
	if v == nil {
		return datastore.Null()
	}
	return datastore.Double(float64(*v))
}

// FromFloat64 converts a float64 to a storage double.
func FromFloat64(v float64) datastore.Value {
	return datastore.Double(v)
}

// FromFloat64Ptr converts a *float64 to a storage double.
func FromFloat64Ptr(v *float64) datastore.Value {
	if v == nil {
		return datastore.Null()
	}
	return datastore.Double(*v)
}

// ToBool converts a storage boolean to a bool.
func ToBool(v datastore.Value) bool {
	if v.IsNull() {
		return false
	}
	return v.Boolean()
}

// ToBoolPtr converts a storage boolean to a *bool.
func ToBoolPtr(v datastore.Value) *bool {
	if v.IsNull() {
		return nil
	}
	b := v.Boolean()
	return &b
}

// FromBool converts a bool to a storage boolean.
func FromBool(v bool) datastore.Value {
	return datastore.Bool(v)
}

// FromBoolPtr converts a *bool to a storage boolean.
func FromBoolPtr(v *bool) datastore.Value {
	if v == nil {
		return datastore.Null()
	}
	return datastore.Bool(*v)
}

// ToString converts a storage text blob to a string.
func ToString(v datastore.Value) string {
	if v.IsNull() {
		return ""
	}
	return v.Text()
}

// ToStringPtr converts a storage text blob to a *string.
func ToStringPtr(v datastore.Value) *string {
	if v.IsNull() {
		return nil
	}
	s := v.Text()
	return &s
}

// FromString converts a string to a storage text blob.
func FromString(v string) datastore.Value {
	return datastore.Text(v)
}

// FromStringPtr converts a *string to a storage text blob.
func FromStringPtr(v *string) datastore.Value {
	if v == nil {
		return datastore.Null()
	}
	return datastore.Text(*v)
}

// ToBytes converts either blob kind to a byte slice. Absent yields nil.
func ToBytes(v datastore.Value) []byte {
	if v.IsNull() {
		return nil
	}
	return v.Bytes()
}

// BlobFromBytes converts a byte slice to a large binary blob.
func BlobFromBytes(v []byte) datastore.Value {
	if v == nil {
		return datastore.Null()
	}
	return datastore.Blob(v)
}

// ShortBlobFromBytes converts a byte slice to a small binary blob.
func ShortBlobFromBytes(v []byte) datastore.Value {
	if v == nil {
		return datastore.Null()
	}
	return datastore.ShortBlob(v)
}
