/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/modelstore/datastore"
)

func TestValueAttributeRoundTrip(t *testing.T) {
	values := []datastore.Value{
		datastore.Int(42),
		datastore.Int(-7),
		datastore.Double(10),
		datastore.Double(3.25),
		datastore.Bool(true),
		datastore.Text("hello"),
		datastore.Blob([]byte{0x01, 0x02}),
		datastore.List(datastore.Int(1), datastore.Null(), datastore.Text("x")),
	}
	for _, v := range values {
		got := attributeToValue(valueToAttribute(v))
		assert.True(t, v.Equal(got), "round trip changed %v", v)
	}
}

func TestIntegerValuedDoubleStaysDouble(t *testing.T) {
	// Doubles encode in exponent notation, so an integral double does
	// not decode back as an int.
	av := valueToAttribute(datastore.Double(10))
	n, ok := av.(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Contains(t, n.Value, "e")

	got := attributeToValue(av)
	assert.Equal(t, datastore.KindDouble, got.Kind())
	assert.Equal(t, 10.0, got.Float64())
}

func TestAttributeToValueUnsupportedType(t *testing.T) {
	got := attributeToValue(&types.AttributeValueMemberSS{Value: []string{"a"}})
	assert.True(t, got.IsNull())
}

func TestRecordEncodeDecode(t *testing.T) {
	rec := datastore.NewRecord("players")
	rec.Set("name", datastore.Text("alice"))
	rec.Set("level", datastore.Int(5))
	rec.Set("tags", datastore.Int64List([]int64{1, 2}))

	item := encodeRecord(rec)
	item[attrPK] = &types.AttributeValueMemberS{Value: "players#p1"}
	item[attrSK] = &types.AttributeValueMemberS{Value: "players#p1"}
	item[attrKind] = &types.AttributeValueMemberS{Value: "players"}

	back := decodeRecord("players", item)
	assert.Equal(t, "players", back.Kind())
	assert.Equal(t, []string{"level", "name", "tags"}, back.FieldNames())
	assert.True(t, back.Get("tags").Equal(datastore.Int64List([]int64{1, 2})))
}
