/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/modelstore/datastore"
	"github.com/suparena/modelstore/errors"
)

func mustAttr(t *testing.T, name, fieldName string) *AttributeMeta {
	t.Helper()
	attr, err := NewAttributeMeta(name, fieldName)
	require.NoError(t, err)
	return attr
}

func mustCollectionAttr(t *testing.T, name, fieldName string) *CollectionAttributeMeta {
	t.Helper()
	attr, err := NewCollectionAttributeMeta(name, fieldName)
	require.NoError(t, err)
	return attr
}

func TestCriterionConstructorsRejectNilAttribute(t *testing.T) {
	_, err := NewEqualCriterion(nil, datastore.Int(1))
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = NewInCriterion(nil, datastore.Int(1))
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = NewContainsCriterion(nil, datastore.Text("x"))
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = NewIsNotNullCriterion(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCriterionConstructorsRejectNullParameter(t *testing.T) {
	attr := mustAttr(t, "level", "Level")

	for name, construct := range map[string]func() (datastore.FilterCriterion, error){
		"Equal":              func() (datastore.FilterCriterion, error) { return attr.Equal(datastore.Null()) },
		"NotEqual":           func() (datastore.FilterCriterion, error) { return attr.NotEqual(datastore.Null()) },
		"LessThan":           func() (datastore.FilterCriterion, error) { return attr.LessThan(datastore.Null()) },
		"LessThanOrEqual":    func() (datastore.FilterCriterion, error) { return attr.LessThanOrEqual(datastore.Null()) },
		"GreaterThan":        func() (datastore.FilterCriterion, error) { return attr.GreaterThan(datastore.Null()) },
		"GreaterThanOrEqual": func() (datastore.FilterCriterion, error) { return attr.GreaterThanOrEqual(datastore.Null()) },
	} {
		t.Run(name, func(t *testing.T) {
			c, err := construct()
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Nil(t, c)
		})
	}
}

func TestContainsWithNullParameterFails(t *testing.T) {
	tags := mustCollectionAttr(t, "tags", "Tags")

	c, err := tags.Contains(datastore.Null())
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Nil(t, c)
}

func TestContainsAppliesEqualityOperator(t *testing.T) {
	tags := mustCollectionAttr(t, "tags", "Tags")

	c, err := tags.Contains(datastore.Text("x"))
	require.NoError(t, err)

	q := datastore.NewQuery("players")
	c.Apply(q)

	filters := q.Filters()
	require.Len(t, filters, 1)
	assert.Equal(t, "tags", filters[0].Name)
	assert.Equal(t, datastore.Equal, filters[0].Operator)
	assert.True(t, filters[0].Value.Equal(datastore.Text("x")))
}

func TestCriteriaApplyInOrder(t *testing.T) {
	level := mustAttr(t, "level", "Level")
	name := mustAttr(t, "name", "Name")
	score := mustAttr(t, "score", "Score")

	c1, err := level.GreaterThan(datastore.Int(10))
	require.NoError(t, err)
	c2, err := name.NotEqual(datastore.Text("bot"))
	require.NoError(t, err)
	c3, err := score.LessThanOrEqual(datastore.Double(99.5))
	require.NoError(t, err)

	q := datastore.NewQuery("players").WithCriteria(c1, c2, c3)

	filters := q.Filters()
	require.Len(t, filters, 3)
	assert.Equal(t, datastore.Filter{Name: "level", Operator: datastore.GreaterThan, Value: datastore.Int(10)}, filters[0])
	assert.Equal(t, datastore.Filter{Name: "name", Operator: datastore.NotEqual, Value: datastore.Text("bot")}, filters[1])
	assert.Equal(t, datastore.Filter{Name: "score", Operator: datastore.LessThanOrEqual, Value: datastore.Double(99.5)}, filters[2])
}

func TestInCriterion(t *testing.T) {
	status := mustAttr(t, "status", "Status")

	_, err := status.In()
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = status.In(datastore.Text("a"), datastore.Null())
	assert.True(t, errors.IsInvalidArgument(err))

	c, err := status.In(datastore.Text("active"), datastore.Text("idle"))
	require.NoError(t, err)

	q := datastore.NewQuery("players")
	c.Apply(q)

	filters := q.Filters()
	require.Len(t, filters, 1)
	assert.Equal(t, datastore.In, filters[0].Operator)
	assert.True(t, filters[0].Value.Equal(datastore.List(datastore.Text("active"), datastore.Text("idle"))))
}

func TestIsNotNullCriterion(t *testing.T) {
	email := mustAttr(t, "email", "Email")

	c, err := email.IsNotNull()
	require.NoError(t, err)

	q := datastore.NewQuery("players")
	c.Apply(q)

	filters := q.Filters()
	require.Len(t, filters, 1)
	assert.Equal(t, datastore.IsNotNull, filters[0].Operator)
	assert.True(t, filters[0].Value.IsNull())
}

func TestApplyDoesNotDisturbExistingTerms(t *testing.T) {
	level := mustAttr(t, "level", "Level")

	q := datastore.NewQuery("players")
	q.AddFilter("name", datastore.Equal, datastore.Text("alice"))

	c, err := level.Equal(datastore.Int(3))
	require.NoError(t, err)
	c.Apply(q)

	filters := q.Filters()
	require.Len(t, filters, 2)
	assert.Equal(t, "name", filters[0].Name)
	assert.Equal(t, "level", filters[1].Name)
}
