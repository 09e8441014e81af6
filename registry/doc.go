/*
Package registry provides process-wide lookups from Go model types and
record kinds to their model metas.

Model metas are registered once at startup:

	registry.RegisterModelMeta(playerMeta)

Backends resolve the meta for a type with GetModelMeta, and decode
heterogeneous query results by kind with GetDecodeFunc.
*/
package registry
