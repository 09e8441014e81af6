/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/modelstore/datastore"
)

// Attribute names the store manages itself; they are stripped when an
// item is decoded back into a record.
const (
	attrPK   = "PK"
	attrSK   = "SK"
	attrKind = "EntityKind"
)

// valueToAttribute converts one storage value to its DynamoDB
// attribute value. Integers and doubles both map to the N type;
// doubles are rendered in exponent notation so the two kinds stay
// distinguishable on decode.
func valueToAttribute(v datastore.Value) types.AttributeValue {
	switch v.Kind() {
	case datastore.KindNull:
		return &types.AttributeValueMemberNULL{Value: true}
	case datastore.KindInt:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(v.Int64(), 10)}
	case datastore.KindDouble:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(v.Float64(), 'e', -1, 64)}
	case datastore.KindBool:
		return &types.AttributeValueMemberBOOL{Value: v.Boolean()}
	case datastore.KindText:
		return &types.AttributeValueMemberS{Value: v.Text()}
	case datastore.KindShortBlob, datastore.KindBlob:
		return &types.AttributeValueMemberB{Value: v.Bytes()}
	case datastore.KindList:
		elems := make([]types.AttributeValue, 0, v.Len())
		for _, e := range v.Elements() {
			elems = append(elems, valueToAttribute(e))
		}
		return &types.AttributeValueMemberL{Value: elems}
	default:
		return &types.AttributeValueMemberNULL{Value: true}
	}
}

// attributeToValue converts one DynamoDB attribute value back to a
// storage value. Set and map attribute types have no storage-value
// counterpart and decode as absent.
func attributeToValue(av types.AttributeValue) datastore.Value {
	switch tv := av.(type) {
	case *types.AttributeValueMemberNULL:
		return datastore.Null()
	case *types.AttributeValueMemberN:
		if strings.ContainsAny(tv.Value, ".eE") {
			f, err := strconv.ParseFloat(tv.Value, 64)
			if err != nil {
				return datastore.Null()
			}
			return datastore.Double(f)
		}
		n, err := strconv.ParseInt(tv.Value, 10, 64)
		if err != nil {
			return datastore.Null()
		}
		return datastore.Int(n)
	case *types.AttributeValueMemberBOOL:
		return datastore.Bool(tv.Value)
	case *types.AttributeValueMemberS:
		return datastore.Text(tv.Value)
	case *types.AttributeValueMemberB:
		return datastore.Blob(tv.Value)
	case *types.AttributeValueMemberL:
		elems := make([]datastore.Value, 0, len(tv.Value))
		for _, e := range tv.Value {
			elems = append(elems, attributeToValue(e))
		}
		return datastore.List(elems...)
	default:
		return datastore.Null()
	}
}

// encodeRecord converts a record's fields to a DynamoDB item map.
// Key and kind attributes are added by the caller.
func encodeRecord(rec *datastore.Record) map[string]types.AttributeValue {
	item := make(map[string]types.AttributeValue, rec.Len())
	for _, name := range rec.FieldNames() {
		item[name] = valueToAttribute(rec.Get(name))
	}
	return item
}

// decodeRecord converts a DynamoDB item map back to a record of the
// given kind, dropping the store-managed key and kind attributes.
func decodeRecord(kind string, item map[string]types.AttributeValue) *datastore.Record {
	rec := datastore.NewRecord(kind)
	for name, av := range item {
		if name == attrPK || name == attrSK || name == attrKind {
			continue
		}
		rec.Set(name, attributeToValue(av))
	}
	return rec
}
