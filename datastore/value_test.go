/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind ValueKind
	}{
		{"Null", Null(), KindNull},
		{"Int", Int(42), KindInt},
		{"Double", Double(3.5), KindDouble},
		{"Bool", Bool(true), KindBool},
		{"Text", Text("hello"), KindText},
		{"ShortBlob", ShortBlob([]byte{1, 2}), KindShortBlob},
		{"Blob", Blob([]byte{3, 4}), KindBlob},
		{"List", List(Int(1), Int(2)), KindList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.v.Kind())
			assert.Equal(t, tt.v.Kind() == KindNull, tt.v.IsNull())
		})
	}
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Int(7).Equal(Int(7)))
	assert.False(t, Int(7).Equal(Int(8)))
	assert.False(t, Int(7).Equal(Double(7)))
	assert.True(t, Null().Equal(Null()))
	assert.True(t, Blob([]byte("ab")).Equal(Blob([]byte("ab"))))
	assert.False(t, Blob([]byte("ab")).Equal(ShortBlob([]byte("ab"))))
	assert.True(t, List(Int(1), Null()).Equal(List(Int(1), Null())))
	assert.False(t, List(Int(1)).Equal(List(Int(1), Int(2))))
}

func TestEmptyListIsNotNull(t *testing.T) {
	v := List()
	assert.Equal(t, KindList, v.Kind())
	assert.False(t, v.IsNull())
	assert.Equal(t, 0, v.Len())
}

func TestInt64ListNilYieldsNull(t *testing.T) {
	assert.True(t, Int64List(nil).IsNull())
	assert.True(t, Float64List(nil).IsNull())

	v := Int64List([]int64{})
	assert.False(t, v.IsNull())
	assert.Equal(t, 0, v.Len())
}

func TestRecordGetSet(t *testing.T) {
	r := NewRecord("players")
	assert.Equal(t, "players", r.Kind())

	// Absent fields read as Null.
	assert.True(t, r.Get("name").IsNull())
	assert.False(t, r.Has("name"))

	r.Set("name", Text("alice"))
	assert.True(t, r.Has("name"))
	assert.Equal(t, "alice", r.Get("name").Text())

	// Setting Null removes the field.
	r.Set("name", Null())
	assert.False(t, r.Has("name"))
	assert.True(t, r.Get("name").IsNull())
}

func TestRecordFieldNamesSorted(t *testing.T) {
	r := NewRecord("players")
	r.Set("z", Int(1))
	r.Set("a", Int(2))
	r.Set("m", Int(3))
	assert.Equal(t, []string{"a", "m", "z"}, r.FieldNames())
	assert.Equal(t, 3, r.Len())
}
