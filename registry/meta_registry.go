/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"

	"github.com/suparena/modelstore/datastore"
	"github.com/suparena/modelstore/datastore/meta"
	"github.com/suparena/modelstore/errors"
)

// metaRegistry associates Go model types with their model metas.

var (
	metaRegistry = make(map[reflect.Type]any)
	mu           sync.RWMutex
)

// RegisterModelMeta associates the model type T with its meta. The meta
// is also registered under its record kind for query-time decoding.
func RegisterModelMeta[T any](m *meta.ModelMeta[T]) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	metaRegistry[t] = m
	mu.Unlock()

	RegisterKind(m.Kind(), func(rec *datastore.Record) (any, error) {
		return m.EntityToModel(rec)
	})
}

// GetModelMeta retrieves the registered meta for type T.
func GetModelMeta[T any]() (*meta.ModelMeta[T], error) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	m, ok := metaRegistry[t]
	if !ok {
		return nil, errors.ErrNoModelMeta
	}
	return m.(*meta.ModelMeta[T]), nil
}
