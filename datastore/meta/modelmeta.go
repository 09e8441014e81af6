/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package meta

import (
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/suparena/modelstore/datastore"
	"github.com/suparena/modelstore/errors"
)

// ModelMeta describes one model type and how to map it: identity
// metadata, the record kind its instances persist under, and the ordered
// binding table driving entity ↔ model conversion. A model meta is built
// once, typically at process start, and shared read-only for the process
// lifetime; all methods are safe for unsynchronized concurrent use after
// Build.
type ModelMeta[M any] struct {
	packageName    string
	simpleName     string
	modelClassName string
	topLevel       bool
	kind           string
	bindings       []Binding[M]
}

// PackageName returns the package the model type is declared in.
func (m *ModelMeta[M]) PackageName() string {
	return m.packageName
}

// SimpleName returns the model type's unqualified name.
func (m *ModelMeta[M]) SimpleName() string {
	return m.simpleName
}

// ModelClassName returns the model type's qualified name.
func (m *ModelMeta[M]) ModelClassName() string {
	return m.modelClassName
}

// TopLevel reports whether the model type is a top-level declaration.
func (m *ModelMeta[M]) TopLevel() bool {
	return m.topLevel
}

// Kind returns the record kind instances persist under.
func (m *ModelMeta[M]) Kind() string {
	return m.kind
}

// AttributeDescList returns the attribute metas in declaration order.
// The returned slice is a copy; the backing list cannot be mutated
// through it.
func (m *ModelMeta[M]) AttributeDescList() []*AttributeMeta {
	attrs := make([]*AttributeMeta, len(m.bindings))
	for i, b := range m.bindings {
		attrs[i] = b.meta
	}
	return attrs
}

// EntityToModel converts a storage record to a new model instance. Each
// bound attribute is read from the record by its storage name, converted
// through the binding's converter, and assigned through its accessor.
// Record fields without a binding are ignored.
func (m *ModelMeta[M]) EntityToModel(rec *datastore.Record) (*M, error) {
	if rec == nil {
		return nil, errors.NewInvalidArgumentError("record", "must not be nil")
	}
	model := new(M)
	for _, b := range m.bindings {
		if err := b.assign(model, rec.Get(b.meta.Name())); err != nil {
			return nil, err
		}
	}
	return model, nil
}

// ModelToEntity converts a model instance to a storage record, the
// exact inverse of EntityToModel. Attributes reading as absent are
// omitted from the record.
func (m *ModelMeta[M]) ModelToEntity(model *M) (*datastore.Record, error) {
	if model == nil {
		return nil, errors.NewInvalidArgumentError("model", "must not be nil")
	}
	rec := datastore.NewRecord(m.kind)
	for _, b := range m.bindings {
		v, err := b.read(model)
		if err != nil {
			return nil, err
		}
		rec.Set(b.meta.Name(), v)
	}
	return rec, nil
}

// Builder assembles a ModelMeta. Attributes are appended in declaration
// order; Build finalizes the list and validates the unique-name
// invariant.
type Builder[M any] struct {
	meta ModelMeta[M]
}

// NewBuilder starts a model meta for the type declared as
// packageName.simpleName. The record kind defaults to the pluralized
// lower-case simple name; override it with Kind.
func NewBuilder[M any](packageName, simpleName string) *Builder[M] {
	return &Builder[M]{
		meta: ModelMeta[M]{
			packageName:    packageName,
			simpleName:     simpleName,
			modelClassName: packageName + "." + simpleName,
			topLevel:       true,
			kind:           inflection.Plural(strings.ToLower(simpleName)),
		},
	}
}

// Kind overrides the record kind instances persist under.
func (b *Builder[M]) Kind(kind string) *Builder[M] {
	b.meta.kind = kind
	return b
}

// TopLevel marks whether the model type is a top-level declaration.
func (b *Builder[M]) TopLevel(topLevel bool) *Builder[M] {
	b.meta.topLevel = topLevel
	return b
}

// Add appends attribute bindings in declaration order.
func (b *Builder[M]) Add(bindings ...Binding[M]) *Builder[M] {
	b.meta.bindings = append(b.meta.bindings, bindings...)
	return b
}

// Build finalizes the model meta. It fails with an invalid-argument
// error when the model class name is absent, a binding carries no
// attribute meta, or two attributes share a storage name.
func (b *Builder[M]) Build() (*ModelMeta[M], error) {
	if b.meta.simpleName == "" {
		return nil, errors.NewInvalidArgumentError("simpleName", "model class reference is absent")
	}
	seen := make(map[string]struct{}, len(b.meta.bindings))
	for _, binding := range b.meta.bindings {
		if binding.meta == nil {
			return nil, errors.NewInvalidArgumentError("binding", "attribute meta is absent")
		}
		if binding.assign == nil || binding.read == nil {
			return nil, errors.NewInvalidArgumentError("binding", "accessor pair is absent for "+binding.meta.Name())
		}
		if _, dup := seen[binding.meta.Name()]; dup {
			return nil, errors.NewInvalidArgumentError("binding", "duplicate attribute name "+binding.meta.Name())
		}
		seen[binding.meta.Name()] = struct{}{}
	}
	built := b.meta
	built.bindings = make([]Binding[M], len(b.meta.bindings))
	copy(built.bindings, b.meta.bindings)
	return &built, nil
}
