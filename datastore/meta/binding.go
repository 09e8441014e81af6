/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meta

import (
	"github.com/suparena/modelstore/codec"
	"github.com/suparena/modelstore/datastore"
	"github.com/suparena/modelstore/datastore/conv"
)

// Binding wires one attribute meta to an accessor pair and the
// conversion functions for the attribute's declared field type. The
// binding table of a model meta is the declarative replacement for
// generated mapping code: each binding selects its converters once, at
// construction time.
type Binding[M any] struct {
	meta   *AttributeMeta
	assign func(m *M, v datastore.Value) error
	read   func(m *M) (datastore.Value, error)
}

// Meta returns the attribute meta the binding maps.
func (b Binding[M]) Meta() *AttributeMeta {
	return b.meta
}

// Bind creates a binding with a custom accessor pair. The assign
// function receives the record value for the attribute (Null when
// absent); the read function produces the value to store.
func Bind[M any](attr *AttributeMeta, assign func(*M, datastore.Value) error, read func(*M) (datastore.Value, error)) Binding[M] {
	return Binding[M]{meta: attr, assign: assign, read: read}
}

func bindTotal[M any](attr *AttributeMeta, assign func(*M, datastore.Value), read func(*M) datastore.Value) Binding[M] {
	return Binding[M]{
		meta: attr,
		assign: func(m *M, v datastore.Value) error {
			assign(m, v)
			return nil
		},
		read: func(m *M) (datastore.Value, error) {
			return read(m), nil
		},
	}
}

// BindInt16 maps a storage integer attribute to an int16 field.
func BindInt16[M any](attr *AttributeMeta, get func(*M) int16, set func(*M, int16)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToInt16(v)) },
		func(m *M) datastore.Value { return conv.FromInt16(get(m)) })
}

// BindInt16Ptr maps a storage integer attribute to an *int16 field.
func BindInt16Ptr[M any](attr *AttributeMeta, get func(*M) *int16, set func(*M, *int16)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToInt16Ptr(v)) },
		func(m *M) datastore.Value { return conv.FromInt16Ptr(get(m)) })
}

// BindInt32 maps a storage integer attribute to an int32 field.
func BindInt32[M any](attr *AttributeMeta, get func(*M) int32, set func(*M, int32)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToInt32(v)) },
		func(m *M) datastore.Value { return conv.FromInt32(get(m)) })
}

// BindInt32Ptr maps a storage integer attribute to an *int32 field.
func BindInt32Ptr[M any](attr *AttributeMeta, get func(*M) *int32, set func(*M, *int32)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToInt32Ptr(v)) },
		func(m *M) datastore.Value { return conv.FromInt32Ptr(get(m)) })
}

// BindInt64 maps a storage integer attribute to an int64 field.
func BindInt64[M any](attr *AttributeMeta, get func(*M) int64, set func(*M, int64)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToInt64(v)) },
		func(m *M) datastore.Value { return conv.FromInt64(get(m)) })
}

// BindInt64Ptr maps a storage integer attribute to an *int64 field.
func BindInt64Ptr[M any](attr *AttributeMeta, get func(*M) *int64, set func(*M, *int64)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToInt64Ptr(v)) },
		func(m *M) datastore.Value { return conv.FromInt64Ptr(get(m)) })
}

// BindFloat32 maps a storage double attribute to a float32 field.
func BindFloat32[M any](attr *AttributeMeta, get func(*M) float32, set func(*M, float32)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToFloat32(v)) },
		func(m *M) datastore.Value { return conv.FromFloat32(get(m)) })
}

// BindFloat32Ptr maps a storage double attribute to a *float32 field.
func BindFloat32Ptr[M any](attr *AttributeMeta, get func(*M) *float32, set func(*M, *float32)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToFloat32Ptr(v)) },
		func(m *M) datastore.Value { return conv.FromFloat32Ptr(get(m)) })
}

// BindFloat64 maps a storage double attribute to a float64 field.
func BindFloat64[M any](attr *AttributeMeta, get func(*M) float64, set func(*M, float64)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToFloat64(v)) },
		func(m *M) datastore.Value { return conv.FromFloat64(get(m)) })
}

// BindFloat64Ptr maps a storage double attribute to a *float64 field.
func BindFloat64Ptr[M any](attr *AttributeMeta, get func(*M) *float64, set func(*M, *float64)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToFloat64Ptr(v)) },
		func(m *M) datastore.Value { return conv.FromFloat64Ptr(get(m)) })
}

// BindBool maps a storage boolean attribute to a bool field.
func BindBool[M any](attr *AttributeMeta, get func(*M) bool, set func(*M, bool)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToBool(v)) },
		func(m *M) datastore.Value { return conv.FromBool(get(m)) })
}

// BindBoolPtr maps a storage boolean attribute to a *bool field.
func BindBoolPtr[M any](attr *AttributeMeta, get func(*M) *bool, set func(*M, *bool)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToBoolPtr(v)) },
		func(m *M) datastore.Value { return conv.FromBoolPtr(get(m)) })
}

// BindString maps a storage text attribute to a string field.
func BindString[M any](attr *AttributeMeta, get func(*M) string, set func(*M, string)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToString(v)) },
		func(m *M) datastore.Value { return conv.FromString(get(m)) })
}

// BindStringPtr maps a storage text attribute to a *string field.
func BindStringPtr[M any](attr *AttributeMeta, get func(*M) *string, set func(*M, *string)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToStringPtr(v)) },
		func(m *M) datastore.Value { return conv.FromStringPtr(get(m)) })
}

// BindBytes maps a storage large-blob attribute to a []byte field.
func BindBytes[M any](attr *AttributeMeta, get func(*M) []byte, set func(*M, []byte)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToBytes(v)) },
		func(m *M) datastore.Value { return conv.BlobFromBytes(get(m)) })
}

// BindShortBytes maps a storage small-blob attribute to a []byte field.
func BindShortBytes[M any](attr *AttributeMeta, get func(*M) []byte, set func(*M, []byte)) Binding[M] {
	return bindTotal(attr,
		func(m *M, v datastore.Value) { set(m, conv.ToBytes(v)) },
		func(m *M) datastore.Value { return conv.ShortBlobFromBytes(get(m)) })
}

// BindObject maps a storage blob attribute to an arbitrary serializable
// field of type *V through the codec. Absent stores and loads as nil.
func BindObject[M any, V any](attr *AttributeMeta, c codec.Codec, get func(*M) *V, set func(*M, *V)) Binding[M] {
	return Binding[M]{
		meta: attr,
		assign: func(m *M, v datastore.Value) error {
			if v.IsNull() {
				set(m, nil)
				return nil
			}
			out := new(V)
			if err := conv.ToObject(c, v, out); err != nil {
				return err
			}
			set(m, out)
			return nil
		},
		read: func(m *M) (datastore.Value, error) {
			p := get(m)
			if p == nil {
				return datastore.Null(), nil
			}
			return conv.BlobFromObject(c, p)
		},
	}
}

// BindIntSlice maps a storage integer list to an ordered slice field.
func BindIntSlice[M any, E conv.SignedInteger](attr *CollectionAttributeMeta, get func(*M) []E, set func(*M, []E)) Binding[M] {
	return bindTotal(&attr.AttributeMeta,
		func(m *M, v datastore.Value) { set(m, conv.IntListToSlice[E](v)) },
		func(m *M) datastore.Value { return conv.SliceToIntList(get(m)) })
}

// BindIntPtrSlice maps a storage integer list to a pointer-element
// slice field, preserving null elements.
func BindIntPtrSlice[M any, E conv.SignedInteger](attr *CollectionAttributeMeta, get func(*M) []*E, set func(*M, []*E)) Binding[M] {
	return bindTotal(&attr.AttributeMeta,
		func(m *M, v datastore.Value) { set(m, conv.IntListToPtrSlice[E](v)) },
		func(m *M) datastore.Value { return conv.PtrSliceToIntList(get(m)) })
}

// BindIntSet maps a storage integer list to an unordered set field.
func BindIntSet[M any, E conv.SignedInteger](attr *CollectionAttributeMeta, get func(*M) map[E]struct{}, set func(*M, map[E]struct{})) Binding[M] {
	return bindTotal(&attr.AttributeMeta,
		func(m *M, v datastore.Value) { set(m, conv.IntListToSet[E](v)) },
		func(m *M) datastore.Value { return conv.SetToIntList(get(m)) })
}

// BindIntSortedSet maps a storage integer list to a unique slice field
// sorted by natural order.
func BindIntSortedSet[M any, E conv.SignedInteger](attr *CollectionAttributeMeta, get func(*M) []E, set func(*M, []E)) Binding[M] {
	return bindTotal(&attr.AttributeMeta,
		func(m *M, v datastore.Value) { set(m, conv.IntListToSortedSet[E](v)) },
		func(m *M) datastore.Value { return conv.SliceToIntList(get(m)) })
}

// BindIntOrderedSet maps a storage integer list to a unique slice field
// preserving first-seen order.
func BindIntOrderedSet[M any, E conv.SignedInteger](attr *CollectionAttributeMeta, get func(*M) []E, set func(*M, []E)) Binding[M] {
	return bindTotal(&attr.AttributeMeta,
		func(m *M, v datastore.Value) { set(m, conv.IntListToOrderedSet[E](v)) },
		func(m *M) datastore.Value { return conv.SliceToIntList(get(m)) })
}

// BindDoubleSlice maps a storage double list to an ordered slice field.
func BindDoubleSlice[M any, E conv.Float](attr *CollectionAttributeMeta, get func(*M) []E, set func(*M, []E)) Binding[M] {
	return bindTotal(&attr.AttributeMeta,
		func(m *M, v datastore.Value) { set(m, conv.DoubleListToSlice[E](v)) },
		func(m *M) datastore.Value { return conv.SliceToDoubleList(get(m)) })
}

// BindDoublePtrSlice maps a storage double list to a pointer-element
// slice field, preserving null elements.
func BindDoublePtrSlice[M any, E conv.Float](attr *CollectionAttributeMeta, get func(*M) []*E, set func(*M, []*E)) Binding[M] {
	return bindTotal(&attr.AttributeMeta,
		func(m *M, v datastore.Value) { set(m, conv.DoubleListToPtrSlice[E](v)) },
		func(m *M) datastore.Value { return conv.PtrSliceToDoubleList(get(m)) })
}

// BindDoubleSet maps a storage double list to an unordered set field.
func BindDoubleSet[M any, E conv.Float](attr *CollectionAttributeMeta, get func(*M) map[E]struct{}, set func(*M, map[E]struct{})) Binding[M] {
	return bindTotal(&attr.AttributeMeta,
		func(m *M, v datastore.Value) { set(m, conv.DoubleListToSet[E](v)) },
		func(m *M) datastore.Value { return conv.SetToDoubleList(get(m)) })
}

// BindDoubleSortedSet maps a storage double list to a unique slice
// field sorted by natural order.
func BindDoubleSortedSet[M any, E conv.Float](attr *CollectionAttributeMeta, get func(*M) []E, set func(*M, []E)) Binding[M] {
	return bindTotal(&attr.AttributeMeta,
		func(m *M, v datastore.Value) { set(m, conv.DoubleListToSortedSet[E](v)) },
		func(m *M) datastore.Value { return conv.SliceToDoubleList(get(m)) })
}

// BindDoubleOrderedSet maps a storage double list to a unique slice
// field preserving first-seen order.
func BindDoubleOrderedSet[M any, E conv.Float](attr *CollectionAttributeMeta, get func(*M) []E, set func(*M, []E)) Binding[M] {
	return bindTotal(&attr.AttributeMeta,
		func(m *M, v datastore.Value) { set(m, conv.DoubleListToOrderedSet[E](v)) },
		func(m *M) datastore.Value { return conv.SliceToDoubleList(get(m)) })
}
