/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meta

import (
	"github.com/suparena/modelstore/datastore"
	"github.com/suparena/modelstore/errors"
)

// AttributeMeta describes one attribute of a model type: the storage
// record field key and the host-side field identifier. Attribute metas
// are immutable and owned by exactly one model meta.
type AttributeMeta struct {
	name      string
	fieldName string
}

// NewAttributeMeta creates an attribute meta. Both names are required.
func NewAttributeMeta(name, fieldName string) (*AttributeMeta, error) {
	if name == "" {
		return nil, errors.NewInvalidArgumentError("name", "must not be empty")
	}
	if fieldName == "" {
		return nil, errors.NewInvalidArgumentError("fieldName", "must not be empty")
	}
	return &AttributeMeta{name: name, fieldName: fieldName}, nil
}

// Name returns the storage record field key.
func (a *AttributeMeta) Name() string {
	return a.name
}

// FieldName returns the host-side field identifier.
func (a *AttributeMeta) FieldName() string {
	return a.fieldName
}

// Equal creates an equality criterion on this attribute.
func (a *AttributeMeta) Equal(param datastore.Value) (datastore.FilterCriterion, error) {
	return NewEqualCriterion(a, param)
}

// NotEqual creates an inequality criterion on this attribute.
func (a *AttributeMeta) NotEqual(param datastore.Value) (datastore.FilterCriterion, error) {
	return NewNotEqualCriterion(a, param)
}

// LessThan creates an exclusive lower-ordering criterion on this attribute.
func (a *AttributeMeta) LessThan(param datastore.Value) (datastore.FilterCriterion, error) {
	return NewLessThanCriterion(a, param)
}

// LessThanOrEqual creates an inclusive lower-ordering criterion on this
// attribute.
func (a *AttributeMeta) LessThanOrEqual(param datastore.Value) (datastore.FilterCriterion, error) {
	return NewLessThanOrEqualCriterion(a, param)
}

// GreaterThan creates an exclusive upper-ordering criterion on this
// attribute.
func (a *AttributeMeta) GreaterThan(param datastore.Value) (datastore.FilterCriterion, error) {
	return NewGreaterThanCriterion(a, param)
}

// GreaterThanOrEqual creates an inclusive upper-ordering criterion on
// this attribute.
func (a *AttributeMeta) GreaterThanOrEqual(param datastore.Value) (datastore.FilterCriterion, error) {
	return NewGreaterThanOrEqualCriterion(a, param)
}

// In creates a set-containment criterion matching any of the candidates.
func (a *AttributeMeta) In(params ...datastore.Value) (datastore.FilterCriterion, error) {
	return NewInCriterion(a, params...)
}

// IsNotNull creates a criterion matching records on which this attribute
// is set. It takes no parameter.
func (a *AttributeMeta) IsNotNull() (datastore.FilterCriterion, error) {
	return NewIsNotNullCriterion(a)
}

// CollectionAttributeMeta describes a multi-valued attribute. It adds
// the containment criterion to the scalar criterion set.
type CollectionAttributeMeta struct {
	AttributeMeta
}

// NewCollectionAttributeMeta creates a collection attribute meta.
func NewCollectionAttributeMeta(name, fieldName string) (*CollectionAttributeMeta, error) {
	base, err := NewAttributeMeta(name, fieldName)
	if err != nil {
		return nil, err
	}
	return &CollectionAttributeMeta{AttributeMeta: *base}, nil
}

// Contains creates a criterion asserting that this multi-valued
// attribute has at least one element equal to param.
func (a *CollectionAttributeMeta) Contains(param datastore.Value) (datastore.FilterCriterion, error) {
	return NewContainsCriterion(a, param)
}
