/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meta

import (
	"github.com/suparena/modelstore/datastore"
	"github.com/suparena/modelstore/errors"
)

// criterion is the whole filter-criterion family: one attribute meta,
// one fixed operator, one parameter. Apply contributes exactly one
// filter term; criteria are stateless beyond their fields and safe for
// concurrent use.
type criterion struct {
	op    datastore.FilterOperator
	attr  *AttributeMeta
	param datastore.Value
}

func (c *criterion) Apply(q *datastore.Query) {
	q.AddFilter(c.attr.Name(), c.op, c.param)
}

func newCriterion(op datastore.FilterOperator, attr *AttributeMeta, param datastore.Value) (datastore.FilterCriterion, error) {
	if attr == nil {
		return nil, errors.NewInvalidArgumentError("attributeMeta", "must not be nil")
	}
	return &criterion{op: op, attr: attr, param: param}, nil
}

func newParamCriterion(op datastore.FilterOperator, attr *AttributeMeta, param datastore.Value) (datastore.FilterCriterion, error) {
	if attr == nil {
		return nil, errors.NewInvalidArgumentError("attributeMeta", "must not be nil")
	}
	if param.IsNull() {
		return nil, errors.NewInvalidArgumentError("parameter", "must not be null")
	}
	return &criterion{op: op, attr: attr, param: param}, nil
}

// NewEqualCriterion creates an equality criterion.
func NewEqualCriterion(attr *AttributeMeta, param datastore.Value) (datastore.FilterCriterion, error) {
	return newParamCriterion(datastore.Equal, attr, param)
}

// NewNotEqualCriterion creates an inequality criterion.
func NewNotEqualCriterion(attr *AttributeMeta, param datastore.Value) (datastore.FilterCriterion, error) {
	return newParamCriterion(datastore.NotEqual, attr, param)
}

// NewLessThanCriterion creates an exclusive less-than criterion.
func NewLessThanCriterion(attr *AttributeMeta, param datastore.Value) (datastore.FilterCriterion, error) {
	return newParamCriterion(datastore.LessThan, attr, param)
}

// NewLessThanOrEqualCriterion creates an inclusive less-than criterion.
func NewLessThanOrEqualCriterion(attr *AttributeMeta, param datastore.Value) (datastore.FilterCriterion, error) {
	return newParamCriterion(datastore.LessThanOrEqual, attr, param)
}

// NewGreaterThanCriterion creates an exclusive greater-than criterion.
func NewGreaterThanCriterion(attr *AttributeMeta, param datastore.Value) (datastore.FilterCriterion, error) {
	return newParamCriterion(datastore.GreaterThan, attr, param)
}

// NewGreaterThanOrEqualCriterion creates an inclusive greater-than
// criterion.
func NewGreaterThanOrEqualCriterion(attr *AttributeMeta, param datastore.Value) (datastore.FilterCriterion, error) {
	return newParamCriterion(datastore.GreaterThanOrEqual, attr, param)
}

// NewInCriterion creates a criterion matching any of the candidate
// values. At least one non-null candidate is required.
func NewInCriterion(attr *AttributeMeta, params ...datastore.Value) (datastore.FilterCriterion, error) {
	if attr == nil {
		return nil, errors.NewInvalidArgumentError("attributeMeta", "must not be nil")
	}
	if len(params) == 0 {
		return nil, errors.NewInvalidArgumentError("parameter", "at least one candidate is required")
	}
	for _, p := range params {
		if p.IsNull() {
			return nil, errors.NewInvalidArgumentError("parameter", "candidates must not be null")
		}
	}
	return &criterion{op: datastore.In, attr: attr, param: datastore.List(params...)}, nil
}

// NewContainsCriterion creates a criterion asserting that a multi-valued
// attribute has at least one element equal to param. The wire operator
// is equality: the backend stores multi-valued attributes natively and
// treats an equality filter on such an attribute as an
// element-containment test.
func NewContainsCriterion(attr *CollectionAttributeMeta, param datastore.Value) (datastore.FilterCriterion, error) {
	if attr == nil {
		return nil, errors.NewInvalidArgumentError("attributeMeta", "must not be nil")
	}
	return newParamCriterion(datastore.Equal, &attr.AttributeMeta, param)
}

// NewIsNotNullCriterion creates a criterion matching records on which
// the attribute is set. It encodes no parameter.
func NewIsNotNullCriterion(attr *AttributeMeta) (datastore.FilterCriterion, error) {
	return newCriterion(datastore.IsNotNull, attr, datastore.Null())
}
