package keyring

import (
	"errors"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/apppass/apppass"
)

const (
	// Name of the store backend
	Name = "keyring"
	// ServiceKey overrides the service namespace in the store config
	ServiceKey = "SERVICE"
)

type keyringStore struct {
	service string
}

// New returns a Store backed by the operating system credential store
// (Keychain, Secret Service, Credential Manager). All records live
// under one service namespace.
func New(
	storeConfig map[string]interface{},
) (apppass.Store, error) {
	service := apppass.ServiceName
	if v, exists := storeConfig[ServiceKey]; exists {
		if s, ok := v.(string); ok && s != "" {
			service = s
		}
	}
	return &keyringStore{
		service: service,
	}, nil
}

func (s *keyringStore) String() string {
	return Name
}

func (s *keyringStore) Set(key, value string) error {
	return gokeyring.Set(s.service, key, value)
}

func (s *keyringStore) Get(key string) (string, error) {
	value, err := gokeyring.Get(s.service, key)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", apppass.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *keyringStore) Delete(key string) error {
	if err := gokeyring.Delete(s.service, key); err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return apppass.ErrNotFound
		}
		return err
	}
	return nil
}

func init() {
	if err := apppass.Register(Name, New); err != nil {
		panic(err.Error())
	}
}
