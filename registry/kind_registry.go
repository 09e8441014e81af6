package registry

import (
	"fmt"
	"sync"

	"github.com/suparena/modelstore/datastore"
)

// DecodeFunc takes one raw storage record and returns the decoded model.
type DecodeFunc func(rec *datastore.Record) (any, error)

var (
	kindRegistry = make(map[string]DecodeFunc)
	kindMu       sync.RWMutex
)

// RegisterKind registers a decode function for a record kind.
// If the kind is already registered, it panics to prevent accidental
// overrides.
func RegisterKind(kind string, fn DecodeFunc) {
	kindMu.Lock()
	defer kindMu.Unlock()
	if _, exists := kindRegistry[kind]; exists {
		panic(fmt.Sprintf("kind registry: kind %q already registered", kind))
	}
	kindRegistry[kind] = fn
}

// GetDecodeFunc returns the registered decode function for a record
// kind. If none is registered, it returns an error.
func GetDecodeFunc(kind string) (DecodeFunc, error) {
	kindMu.RLock()
	defer kindMu.RUnlock()
	fn, ok := kindRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("kind registry: no kind registered for %q", kind)
	}
	return fn, nil
}
