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
	"github.com/suparena/modelstore/datastore/meta"
)

func newAttr(t *testing.T, name string) *meta.AttributeMeta {
	t.Helper()
	a, err := meta.NewAttributeMeta(name, name)
	require.NoError(t, err)
	return a
}

func TestBuildFilterExpressionEmpty(t *testing.T) {
	expr, names, values, err := buildFilterExpression(nil)
	require.NoError(t, err)
	assert.Empty(t, expr)
	assert.Nil(t, names)
	assert.Nil(t, values)
}

func TestBuildFilterExpressionComparisons(t *testing.T) {
	q := datastore.NewQuery("players")
	q.AddFilter("level", datastore.GreaterThanOrEqual, datastore.Int(5))
	q.AddFilter("name", datastore.NotEqual, datastore.Text("bob"))

	expr, names, values, err := buildFilterExpression(q.Filters())
	require.NoError(t, err)
	assert.Equal(t, "#f0 >= :v0 AND #f1 <> :v1", expr)
	assert.Equal(t, map[string]string{"#f0": "level", "#f1": "name"}, names)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "5"}, values[":v0"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "bob"}, values[":v1"])
}

func TestBuildFilterExpressionIn(t *testing.T) {
	c, err := meta.NewInCriterion(newAttr(t, "level"), datastore.Int(5), datastore.Int(12))
	require.NoError(t, err)
	q := datastore.NewQuery("players")
	c.Apply(q)

	expr, names, values, err := buildFilterExpression(q.Filters())
	require.NoError(t, err)
	assert.Equal(t, "#f0 IN (:v0_0, :v0_1)", expr)
	assert.Equal(t, "level", names["#f0"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "5"}, values[":v0_0"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "12"}, values[":v0_1"])
}

func TestBuildFilterExpressionIsNotNull(t *testing.T) {
	c, err := meta.NewIsNotNullCriterion(newAttr(t, "tags"))
	require.NoError(t, err)
	q := datastore.NewQuery("players")
	c.Apply(q)

	expr, names, values, err := buildFilterExpression(q.Filters())
	require.NoError(t, err)
	assert.Equal(t, "attribute_exists(#f0)", expr)
	assert.Equal(t, "tags", names["#f0"])
	assert.Nil(t, values)
}

func TestBuildFilterExpressionContainsUsesEquality(t *testing.T) {
	attr, err := meta.NewCollectionAttributeMeta("tags", "Tags")
	require.NoError(t, err)
	c, err := meta.NewContainsCriterion(attr, datastore.Int(2))
	require.NoError(t, err)
	q := datastore.NewQuery("players")
	c.Apply(q)

	expr, _, values, err := buildFilterExpression(q.Filters())
	require.NoError(t, err)
	assert.Equal(t, "#f0 = :v0", expr)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "2"}, values[":v0"])
}

func TestBuildFilterExpressionRejectsEmptyIn(t *testing.T) {
	_, _, _, err := buildFilterExpression([]datastore.Filter{
		{Name: "level", Operator: datastore.In, Value: datastore.List()},
	})
	assert.Error(t, err)
}
