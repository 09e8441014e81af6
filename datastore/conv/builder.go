/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package conv

import (
	"cmp"
	"slices"
)

// Builder assembles one destination collection of element type E. A list
// conversion appends each converted element in source order and takes the
// finished collection from Result; the builder decides ordering and
// uniqueness. Builders are single-use.
type Builder[E, C any] interface {
	Append(e E)
	Result() C
}

type sliceBuilder[E any] struct {
	elems []E
}

// NewSlice builds an ordered slice preserving source order.
func NewSlice[E any]() Builder[E, []E] {
	return &sliceBuilder[E]{elems: []E{}}
}

func (b *sliceBuilder[E]) Append(e E) {
	b.elems = append(b.elems, e)
}

func (b *sliceBuilder[E]) Result() []E {
	return b.elems
}

type setBuilder[E comparable] struct {
	set map[E]struct{}
}

// NewSet builds an unordered set, collapsing duplicates.
func NewSet[E comparable]() Builder[E, map[E]struct{}] {
	return &setBuilder[E]{set: make(map[E]struct{})}
}

func (b *setBuilder[E]) Append(e E) {
	b.set[e] = struct{}{}
}

func (b *setBuilder[E]) Result() map[E]struct{} {
	return b.set
}

type sortedSetBuilder[E cmp.Ordered] struct {
	elems []E
}

// NewSortedSet builds a unique slice sorted by the element type's
// natural order, regardless of source order.
func NewSortedSet[E cmp.Ordered]() Builder[E, []E] {
	return &sortedSetBuilder[E]{elems: []E{}}
}

func (b *sortedSetBuilder[E]) Append(e E) {
	b.elems = append(b.elems, e)
}

func (b *sortedSetBuilder[E]) Result() []E {
	slices.Sort(b.elems)
	return slices.Compact(b.elems)
}

type orderedSetBuilder[E comparable] struct {
	seen  map[E]struct{}
	elems []E
}

// NewOrderedSet builds a unique slice preserving first-seen source order.
func NewOrderedSet[E comparable]() Builder[E, []E] {
	return &orderedSetBuilder[E]{
		seen:  make(map[E]struct{}),
		elems: []E{},
	}
}

func (b *orderedSetBuilder[E]) Append(e E) {
	if _, dup := b.seen[e]; dup {
		return
	}
	b.seen[e] = struct{}{}
	b.elems = append(b.elems, e)
}

func (b *orderedSetBuilder[E]) Result() []E {
	return b.elems
}
