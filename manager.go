package apppass

import (
	"github.com/sirupsen/logrus"
)

// Manager implements the password operations on top of a Store. The
// store is the single source of truth; Manager holds no secret beyond
// the lifetime of one call.
type Manager struct {
	store Store
	sched *expiryScheduler
	log   *logrus.Logger
}

// NewManager returns a Manager operating on the supplied store.
func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		sched: newExpiryScheduler(),
		log:   logrus.StandardLogger(),
	}
}

// Store returns the backend the manager operates on.
func (m *Manager) Store() Store {
	return m.store
}

func (m *Manager) get(k Key) (string, error) {
	return m.store.Get(k.StorageName())
}

func (m *Manager) set(k Key, value string) error {
	return m.store.Set(k.StorageName(), value)
}

func (m *Manager) del(k Key) error {
	return m.store.Delete(k.StorageName())
}
