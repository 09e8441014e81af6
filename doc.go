/*
Package modelstore provides a model-mapping storage layer for Go applications,
converting typed models to and from storage-native records through declarative
attribute bindings.

The library is organized around three ideas:
  - Model metadata: each model type has a ModelMeta describing its attributes
    and how each field converts to a storage value
  - Criteria: query filters are built from attribute metas and applied to a
    query accumulator, independent of any backend
  - Backends: DynamoDB and in-memory implementations of the DataStore
    interface execute queries against the accumulated filter terms

Key Features:
  - Type-safe operations using Go generics
  - Declarative field bindings with a full scalar and collection
    conversion catalogue (slices, sets, sorted sets, insertion-ordered sets)
  - Criterion model covering equality, ordering, membership, containment
    and presence tests
  - Enhanced streaming with retry logic and progress tracking
  - Semantic error types for better error handling
  - Thread-safe storage management

Basic Usage:

	// Build a model meta with attribute bindings
	playerMeta, _ := meta.NewBuilder[Player]("game", "Player").
		Add(meta.BindString(nameAttr, getName, setName)).
		Build()

	// Create a backend store and register it
	mts := modelstore.NewMultiTypeStorage()
	playerStore, _ := ddb.New(client, cfg, playerMeta, keyFunc)
	modelstore.RegisterDataStore(mts, "players", playerStore)

	// Query with criteria
	crit, _ := nameAttr.Equal(datastore.Text("alice"))
	q := datastore.NewQuery(playerMeta.Kind()).WithCriteria(crit)
	store, _ := modelstore.GetDataStore[Player](mts, "players")
	players, err := store.Query(ctx, q)

For more information, see the documentation at https://github.com/suparena/modelstore
*/
package modelstore
