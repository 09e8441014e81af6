/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/modelstore/datastore"
	"github.com/suparena/modelstore/datastore/meta"
	"github.com/suparena/modelstore/errors"
)

type badge struct {
	Code string
}

var badgeMeta = func() *meta.ModelMeta[badge] {
	code, err := meta.NewAttributeMeta("code", "Code")
	if err != nil {
		panic(err)
	}
	m, err := meta.NewBuilder[badge]("registry", "Badge").
		Add(meta.BindString(code,
			func(b *badge) string { return b.Code },
			func(b *badge, v string) { b.Code = v })).
		Build()
	if err != nil {
		panic(err)
	}
	return m
}()

func init() {
	RegisterModelMeta(badgeMeta)
}

func TestGetModelMeta(t *testing.T) {
	got, err := GetModelMeta[badge]()
	require.NoError(t, err)
	assert.Same(t, badgeMeta, got)
}

func TestGetModelMetaUnregisteredType(t *testing.T) {
	type unregistered struct{}
	_, err := GetModelMeta[unregistered]()
	assert.ErrorIs(t, err, errors.ErrNoModelMeta)
}

func TestKindDecodeFunc(t *testing.T) {
	// RegisterModelMeta registered the "badges" kind as well.
	fn, err := GetDecodeFunc("badges")
	require.NoError(t, err)

	rec := datastore.NewRecord("badges")
	rec.Set("code", datastore.Text("gold"))

	decoded, err := fn(rec)
	require.NoError(t, err)
	b, ok := decoded.(*badge)
	require.True(t, ok)
	assert.Equal(t, "gold", b.Code)
}

func TestGetDecodeFuncUnknownKind(t *testing.T) {
	_, err := GetDecodeFunc("no-such-kind")
	assert.Error(t, err)
}

func TestRegisterKindPanicsOnDuplicate(t *testing.T) {
	RegisterKind("dup-kind", func(rec *datastore.Record) (any, error) { return nil, nil })
	assert.Panics(t, func() {
		RegisterKind("dup-kind", func(rec *datastore.Record) (any, error) { return nil, nil })
	})
}
