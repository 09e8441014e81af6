/*
Package datastore defines the storage-facing contracts of ModelStore: the
schema-less Record and its storage-native Value kinds, the Query filter
accumulator with its FilterOperator set, and the generic DataStore
interface that backends implement.

A Record maps field names to Values drawn from a closed set of kinds:
absent, 64-bit integer, double, boolean, text, small and large binary
blobs, and ordered sequences of scalars. The conversion engine in the
conv subpackage maps those kinds to the much larger set of Go field
types, and the meta subpackage drives it per model type.

A Query collects (name, operator, value) filter terms in append order.
Criteria built from attribute metas contribute one term each:

	q := datastore.NewQuery("players")
	c, _ := playerMeta.Level.GreaterThan(datastore.Int(10))
	c.Apply(q)

Applying several criteria to the same query expresses their conjunction.
*/
package datastore
