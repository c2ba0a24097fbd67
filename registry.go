package apppass

import (
	"fmt"
	"sync"
)

var (
	storeBackends = make(map[string]Init)
	lock          sync.RWMutex
)

// New returns a new instance of the Store backend identified by the
// supplied name. StoreConfig is a map of key value pairs used by the
// backend for authentication and namespacing.
func New(
	name string,
	storeConfig map[string]interface{},
) (Store, error) {
	lock.RLock()
	defer lock.RUnlock()

	if bInit, exists := storeBackends[name]; exists {
		return bInit(storeConfig)
	}
	return nil, ErrNotSupported
}

// Register adds a new store backend
func Register(name string, bInit Init) error {
	lock.Lock()
	defer lock.Unlock()
	if _, exists := storeBackends[name]; exists {
		return fmt.Errorf("store backend %v is already"+
			" registered", name)
	}
	storeBackends[name] = bInit
	return nil
}
