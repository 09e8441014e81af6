/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
)

// DataStore is the contract every storage backend implements for one
// model type T. Backends convert between records and models through the
// model meta they were constructed with.
type DataStore[T any] interface {
	GetOne(ctx context.Context, key string) (*T, error)

	Put(ctx context.Context, model *T) error

	Query(ctx context.Context, q *Query) ([]*T, error)

	Stream(ctx context.Context, q *Query, opts ...StreamOption) <-chan StreamResult[T]

	Delete(ctx context.Context, key string) error
}
