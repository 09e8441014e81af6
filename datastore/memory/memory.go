/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides an in-memory DataStore implementation. Unlike
// a canned test double it executes queries for real: every filter term
// is evaluated against the stored records with the backend's native
// semantics, including the equality-as-containment rule for multi-valued
// attributes.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/suparena/modelstore/datastore"
	"github.com/suparena/modelstore/datastore/meta"
	"github.com/suparena/modelstore/errors"
)

// DataStore is an in-memory implementation of datastore.DataStore[T].
type DataStore[T any] struct {
	mu      sync.RWMutex
	meta    *meta.ModelMeta[T]
	records map[string]*datastore.Record
	keyFunc func(*T) string
}

// New creates an in-memory datastore for the model type described by m.
func New[T any](m *meta.ModelMeta[T]) (*DataStore[T], error) {
	if m == nil {
		return nil, errors.NewInvalidArgumentError("meta", "must not be nil")
	}
	return &DataStore[T]{
		meta:    m,
		records: make(map[string]*datastore.Record),
	}, nil
}

// WithKeyFunc sets a function extracting the storage key from a model.
// Without one, Put assigns a generated key.
func (d *DataStore[T]) WithKeyFunc(f func(*T) string) *DataStore[T] {
	d.keyFunc = f
	return d
}

// GetOne retrieves a single model by key.
func (d *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	d.mu.RLock()
	rec, exists := d.records[key]
	d.mu.RUnlock()

	if !exists {
		return nil, errors.NewNotFoundError(d.meta.SimpleName(), key)
	}
	return d.meta.EntityToModel(rec)
}

// Put stores the model, replacing any record under the same key.
func (d *DataStore[T]) Put(ctx context.Context, model *T) error {
	rec, err := d.meta.ModelToEntity(model)
	if err != nil {
		return err
	}

	key := ""
	if d.keyFunc != nil {
		key = d.keyFunc(model)
	}
	if key == "" {
		key = uuid.NewString()
	}

	d.mu.Lock()
	d.records[key] = rec
	d.mu.Unlock()
	return nil
}

// Delete removes the record under the given key.
func (d *DataStore[T]) Delete(ctx context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.records[key]; !exists {
		return errors.NewNotFoundError(d.meta.SimpleName(), key)
	}
	delete(d.records, key)
	return nil
}

// Query evaluates the accumulated filter terms against every stored
// record of the query's kind and decodes the matches. Results are
// ordered by storage key; WithScanForward(false) reverses the order.
func (d *DataStore[T]) Query(ctx context.Context, q *datastore.Query) ([]*T, error) {
	if q == nil {
		return nil, errors.NewInvalidArgumentError("query", "must not be nil")
	}

	d.mu.RLock()
	keys := make([]string, 0, len(d.records))
	for k := range d.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if q.ScanForward() != nil && !*q.ScanForward() {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	var matched []*datastore.Record
	for _, k := range keys {
		rec := d.records[k]
		if q.Kind() != "" && rec.Kind() != q.Kind() {
			continue
		}
		if recordMatches(rec, q.Filters()) {
			matched = append(matched, rec)
			if q.Limit() != nil && int32(len(matched)) >= *q.Limit() {
				break
			}
		}
	}
	d.mu.RUnlock()

	results := make([]*T, 0, len(matched))
	for _, rec := range matched {
		model, err := d.meta.EntityToModel(rec)
		if err != nil {
			return nil, err
		}
		results = append(results, model)
	}
	return results, nil
}

// Stream emits query results on a channel.
func (d *DataStore[T]) Stream(ctx context.Context, q *datastore.Query, opts ...datastore.StreamOption) <-chan datastore.StreamResult[T] {
	options := datastore.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	ch := make(chan datastore.StreamResult[T], options.BufferSize)
	go func() {
		defer close(ch)

		results, err := d.Query(ctx, q)
		if err != nil {
			ch <- datastore.StreamResult[T]{Error: err, Meta: datastore.StreamMeta{Timestamp: time.Now()}}
			return
		}
		for i, model := range results {
			select {
			case <-ctx.Done():
				return
			case ch <- datastore.StreamResult[T]{
				Item: model,
				Meta: datastore.StreamMeta{Index: int64(i), PageNumber: 1, Timestamp: time.Now()},
			}:
			}
		}
	}()
	return ch
}

func recordMatches(rec *datastore.Record, filters []datastore.Filter) bool {
	for _, f := range filters {
		if !filterMatches(rec, f) {
			return false
		}
	}
	return true
}

func filterMatches(rec *datastore.Record, f datastore.Filter) bool {
	v := rec.Get(f.Name)

	switch f.Operator {
	case datastore.IsNotNull:
		return rec.Has(f.Name)
	case datastore.Equal:
		return valueEquals(v, f.Value)
	case datastore.NotEqual:
		return !v.IsNull() && !valueEquals(v, f.Value)
	case datastore.In:
		for _, candidate := range f.Value.Elements() {
			if valueEquals(v, candidate) {
				return true
			}
		}
		return false
	case datastore.LessThan:
		c, ok := compareValues(v, f.Value)
		return ok && c < 0
	case datastore.LessThanOrEqual:
		c, ok := compareValues(v, f.Value)
		return ok && c <= 0
	case datastore.GreaterThan:
		c, ok := compareValues(v, f.Value)
		return ok && c > 0
	case datastore.GreaterThanOrEqual:
		c, ok := compareValues(v, f.Value)
		return ok && c >= 0
	default:
		return false
	}
}

// valueEquals implements the backend's native equality: an equality test
// against a multi-valued attribute is an element-containment test.
func valueEquals(attr, param datastore.Value) bool {
	if attr.Kind() == datastore.KindList && param.Kind() != datastore.KindList {
		for _, elem := range attr.Elements() {
			if elem.Equal(param) {
				return true
			}
		}
		return false
	}
	return attr.Equal(param)
}

// compareValues orders two scalar values. Integers and doubles order
// numerically across kinds, text orders lexicographically. Absent
// values and mixed non-numeric kinds do not compare.
func compareValues(a, b datastore.Value) (int, bool) {
	if a.IsNull() || b.IsNull() {
		return 0, false
	}

	if isNumeric(a) && isNumeric(b) {
		af, bf := asFloat(a), asFloat(b)
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}

	if a.Kind() == datastore.KindText && b.Kind() == datastore.KindText {
		return strings.Compare(a.Text(), b.Text()), true
	}

	return 0, false
}

func isNumeric(v datastore.Value) bool {
	return v.Kind() == datastore.KindInt || v.Kind() == datastore.KindDouble
}

func asFloat(v datastore.Value) float64 {
	if v.Kind() == datastore.KindInt {
		return float64(v.Int64())
	}
	return v.Float64()
}
