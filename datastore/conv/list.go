/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package conv

import (
	"slices"

	"github.com/suparena/modelstore/datastore"
)

// SignedInteger constrains the destination element types of integer-list
// conversions.
type SignedInteger interface {
	~int16 | ~int32 | ~int64
}

// Float constrains the destination element types of double-list
// conversions.
type Float interface {
	~float32 | ~float64
}

// FromList converts a storage list to a destination collection. Each
// element is converted with elem and appended to b in source order; the
// builder decides the destination ordering and uniqueness. An absent
// list yields the destination's zero value, a present empty list yields
// a present empty collection.
func FromList[E, C any](v datastore.Value, elem func(datastore.Value) E, b Builder[E, C]) C {
	var zero C
	if v.IsNull() {
		return zero
	}
	for _, e := range v.Elements() {
		b.Append(elem(e))
	}
	return b.Result()
}

func intElem[E SignedInteger](e datastore.Value) E {
	if e.IsNull() {
		return 0
	}
	return E(e.Int64())
}

func intElemPtr[E SignedInteger](e datastore.Value) *E {
	if e.IsNull() {
		return nil
	}
	n := E(e.Int64())
	return &n
}

func doubleElem[E Float](e datastore.Value) E {
	if e.IsNull() {
		return 0
	}
	return E(e.Float64())
}

func doubleElemPtr[E Float](e datastore.Value) *E {
	if e.IsNull() {
		return nil
	}
	f := E(e.Float64())
	return &f
}

// IntListToSlice converts a storage integer list to an ordered slice,
// preserving source order. Null elements become zero, narrowing truncates.
func IntListToSlice[E SignedInteger](v datastore.Value) []E {
	return FromList(v, intElem[E], NewSlice[E]())
}

// IntListToPtrSlice converts a storage integer list to a slice of
// pointers, preserving source order and null elements.
func IntListToPtrSlice[E SignedInteger](v datastore.Value) []*E {
	return FromList(v, intElemPtr[E], NewSlice[*E]())
}

// IntListToSet converts a storage integer list to an unordered set,
// collapsing duplicates.
func IntListToSet[E SignedInteger](v datastore.Value) map[E]struct{} {
	return FromList(v, intElem[E], NewSet[E]())
}

// IntListToSortedSet converts a storage integer list to a unique slice
// sorted by natural order.
func IntListToSortedSet[E SignedInteger](v datastore.Value) []E {
	return FromList(v, intElem[E], NewSortedSet[E]())
}

// IntListToOrderedSet converts a storage integer list to a unique slice
// preserving first-seen source order.
func IntListToOrderedSet[E SignedInteger](v datastore.Value) []E {
	return FromList(v, intElem[E], NewOrderedSet[E]())
}

// DoubleListToSlice converts a storage double list to an ordered slice,
// preserving source order.
func DoubleListToSlice[E Float](v datastore.Value) []E {
	return FromList(v, doubleElem[E], NewSlice[E]())
}

// DoubleListToPtrSlice converts a storage double list to a slice of
// pointers, preserving source order and null elements.
func DoubleListToPtrSlice[E Float](v datastore.Value) []*E {
	return FromList(v, doubleElemPtr[E], NewSlice[*E]())
}

// DoubleListToSet converts a storage double list to an unordered set.
func DoubleListToSet[E Float](v datastore.Value) map[E]struct{} {
	return FromList(v, doubleElem[E], NewSet[E]())
}

// DoubleListToSortedSet converts a storage double list to a unique slice
// sorted by natural order.
func DoubleListToSortedSet[E Float](v datastore.Value) []E {
	return FromList(v, doubleElem[E], NewSortedSet[E]())
}

// DoubleListToOrderedSet converts a storage double list to a unique
// slice preserving first-seen source order.
func DoubleListToOrderedSet[E Float](v datastore.Value) []E {
	return FromList(v, doubleElem[E], NewOrderedSet[E]())
}

// SliceToIntList converts an integer slice to a storage list, widening
// each element to 64 bits. A nil slice yields the absent value.
func SliceToIntList[E SignedInteger](vs []E) datastore.Value {
	if vs == nil {
		return datastore.Null()
	}
	elems := make([]datastore.Value, len(vs))
	for i, v := range vs {
		elems[i] = datastore.Int(int64(v))
	}
	return datastore.List(elems...)
}

// PtrSliceToIntList converts a slice of integer pointers to a storage
// list, mapping nil elements to null elements.
func PtrSliceToIntList[E SignedInteger](vs []*E) datastore.Value {
	if vs == nil {
		return datastore.Null()
	}
	elems := make([]datastore.Value, len(vs))
	for i, v := range vs {
		if v == nil {
			elems[i] = datastore.Null()
		} else {
			elems[i] = datastore.Int(int64(*v))
		}
	}
	return datastore.List(elems...)
}

// SetToIntList converts an integer set to a storage list. Elements are
// emitted in natural order so the stored form is deterministic.
func SetToIntList[E SignedInteger](vs map[E]struct{}) datastore.Value {
	if vs == nil {
		return datastore.Null()
	}
	sorted := make([]E, 0, len(vs))
	for v := range vs {
		sorted = append(sorted, v)
	}
	slices.Sort(sorted)
	return SliceToIntList(sorted)
}

// SliceToDoubleList converts a float slice to a storage list. A nil
// slice yields the absent value.
func SliceToDoubleList[E Float](vs []E) datastore.Value {
	if vs == nil {
		return datastore.Null()
	}
	elems := make([]datastore.Value, len(vs))
	for i, v := range vs {
		elems[i] = datastore.Double(float64(v))
	}
	return datastore.List(elems...)
}

// PtrSliceToDoubleList converts a slice of float pointers to a storage
// list, mapping nil elements to null elements.
func PtrSliceToDoubleList[E Float](vs []*E) datastore.Value {
	if vs == nil {
		return datastore.Null()
	}
	elems := make([]datastore.Value, len(vs))
	for i, v := range vs {
		if v == nil {
			elems[i] = datastore.Null()
		} else {
			elems[i] = datastore.Double(float64(*v))
		}
	}
	return datastore.List(elems...)
}

// SetToDoubleList converts a float set to a storage list in natural
// order.
func SetToDoubleList[E Float](vs map[E]struct{}) datastore.Value {
	if vs == nil {
		return datastore.Null()
	}
	sorted := make([]E, 0, len(vs))
	for v := range vs {
		sorted = append(sorted, v)
	}
	slices.Sort(sorted)
	return SliceToDoubleList(sorted)
}
