/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"bytes"
	"sort"
)

// ValueKind identifies which storage-native kind a Value holds.
type ValueKind int

const (
	// KindNull marks an absent value.
	KindNull ValueKind = iota
	// KindInt is a 64-bit signed integer.
	KindInt
	// KindDouble is a double-precision float.
	KindDouble
	// KindBool is a boolean.
	KindBool
	// KindText is a text blob.
	KindText
	// KindShortBlob is a small binary blob.
	KindShortBlob
	// KindBlob is a large binary blob.
	KindBlob
	// KindList is an ordered sequence of scalar values.
	KindList
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindShortBlob:
		return "shortblob"
	case KindBlob:
		return "blob"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is one storage-native value: absent, a 64-bit integer, a double,
// a boolean, a text blob, a small or large binary blob, or an ordered
// sequence of scalar values. Values are immutable once constructed;
// callers must not mutate the byte or element slices they pass in.
type Value struct {
	kind ValueKind
	i    int64
	f    float64
	b    bool
	s    string
	raw  []byte
	list []Value
}

// Null returns the absent value.
func Null() Value {
	return Value{kind: KindNull}
}

// Int returns a 64-bit integer value.
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Double returns a double-precision float value.
func Double(v float64) Value {
	return Value{kind: KindDouble, f: v}
}

// Bool returns a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Text returns a text blob value.
func Text(v string) Value {
	return Value{kind: KindText, s: v}
}

// ShortBlob returns a small binary blob value.
func ShortBlob(v []byte) Value {
	return Value{kind: KindShortBlob, raw: v}
}

// Blob returns a large binary blob value.
func Blob(v []byte) Value {
	return Value{kind: KindBlob, raw: v}
}

// List returns an ordered sequence of scalar values. Elements may be
// Null; the conversion engine maps null elements per the destination
// element type.
func List(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindList, list: elems}
}

// Int64List returns a list value holding the given 64-bit integers.
func Int64List(vs []int64) Value {
	if vs == nil {
		return Null()
	}
	elems := make([]Value, len(vs))
	for i, v := range vs {
		elems[i] = Int(v)
	}
	return List(elems...)
}

// Float64List returns a list value holding the given doubles.
func Float64List(vs []float64) Value {
	if vs == nil {
		return Null()
	}
	elems := make([]Value, len(vs))
	for i, v := range vs {
		elems[i] = Double(v)
	}
	return List(elems...)
}

// Kind returns the storage-native kind of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Int64 returns the integer payload. Valid only for KindInt.
func (v Value) Int64() int64 {
	return v.i
}

// Float64 returns the double payload. Valid only for KindDouble.
func (v Value) Float64() float64 {
	return v.f
}

// Boolean returns the boolean payload. Valid only for KindBool.
func (v Value) Boolean() bool {
	return v.b
}

// Text returns the text payload. Valid only for KindText.
func (v Value) Text() string {
	return v.s
}

// Bytes returns the binary payload. Valid only for blob kinds.
func (v Value) Bytes() []byte {
	return v.raw
}

// Elements returns the element sequence. Valid only for KindList.
// The returned slice must not be mutated.
func (v Value) Elements() []Value {
	return v.list
}

// Len returns the number of elements of a list value, zero otherwise.
func (v Value) Len() int {
	return len(v.list)
}

// Equal reports whether two values hold the same kind and payload.
// Blob kinds compare byte-wise; lists compare element-for-element.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindInt:
		return v.i == o.i
	case KindDouble:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	case KindText:
		return v.s == o.s
	case KindShortBlob, KindBlob:
		return bytes.Equal(v.raw, o.raw)
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Record is one schema-less storage record: a mapping from field name to
// storage-native Value, plus a kind discriminator identifying which model
// type the record decodes to.
type Record struct {
	kind   string
	fields map[string]Value
}

// NewRecord creates an empty record of the given kind.
func NewRecord(kind string) *Record {
	return &Record{
		kind:   kind,
		fields: make(map[string]Value),
	}
}

// Kind returns the record's kind discriminator.
func (r *Record) Kind() string {
	return r.kind
}

// Get returns the value of the named field. Absent fields read as Null.
func (r *Record) Get(name string) Value {
	v, ok := r.fields[name]
	if !ok {
		return Null()
	}
	return v
}

// Has reports whether the named field is present on the record.
// A field explicitly set to Null counts as absent.
func (r *Record) Has(name string) bool {
	v, ok := r.fields[name]
	return ok && !v.IsNull()
}

// Set assigns the named field. Setting Null removes the field, so a
// round-tripped record never carries explicit null fields.
func (r *Record) Set(name string, v Value) {
	if v.IsNull() {
		delete(r.fields, name)
		return
	}
	r.fields[name] = v
}

// FieldNames returns the present field names in sorted order.
func (r *Record) FieldNames() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of present fields.
func (r *Record) Len() int {
	return len(r.fields)
}
