/*
Package errors provides semantic error types for ModelStore.

The package defines sentinel errors that can be checked with errors.Is,
typed errors carrying context, and helper predicates:

	meta, err := registry.GetModelMeta[Player]()
	if errors.IsInvalidArgument(err) {
	    // a constructor was handed a nil attribute meta or parameter
	}

Invalid-argument errors are construction-time only: once a criterion or
model meta is built, conversions and Apply never fail.
*/
package errors
