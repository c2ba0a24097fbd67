package apppass

import (
	"errors"
)

const (
	// ServiceName is the namespace every record lives under in the
	// backing credential store.
	ServiceName = "apppass"
)

var (
	// ErrNotFound returned when no record exists for the requested key
	ErrNotFound = errors.New("no secret found for the given key")
	// ErrExists returned when a create operation targets an application that already has a password
	ErrExists = errors.New("a password already exists for the application")
	// ErrNotSupported returned when no store backend is registered under the requested name
	ErrNotSupported = errors.New("store backend not supported")
)

// Store is the contract implemented by credential store backends. The
// namespace (service) is fixed at construction; keys are flat strings
// within it. Each call is atomic; there are no cross-key transactions.
type Store interface {
	// String representation of the backend
	String() string

	// Set associates key with value, overwriting any previous value.
	Set(key, value string) error

	// Get returns the value stored under key. Returns ErrNotFound
	// when no record exists; any other error is a backend failure.
	Get(key string) (string, error)

	// Delete removes the record stored under key. Returns ErrNotFound
	// when no record exists.
	Delete(key string) error
}

// Init constructs a Store from backend-specific configuration.
type Init func(storeConfig map[string]interface{}) (Store, error)
