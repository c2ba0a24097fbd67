package vault

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/vault/api"

	"github.com/apppass/apppass"
)

const (
	// Name of the store backend
	Name = "vault"
	// PrefixKey overrides the KV path prefix in the store config
	PrefixKey = "VAULT_PREFIX"

	defaultPrefix      = "secret/apppass/"
	vaultAddressPrefix = "http"
	valueField         = "value"
)

var (
	ErrVaultTokenNotSet    = errors.New("VAULT_TOKEN not set.")
	ErrVaultAddressNotSet  = errors.New("VAULT_ADDR not set.")
	ErrInvalidSkipVerify   = errors.New("VAULT_SKIP_VERIFY is invalid")
	ErrInvalidVaultAddress = errors.New("VAULT_ADDRESS is invalid. " +
		"Should be of the form http(s)://<ip>:<port>")
)

// These variables are helpful in testing to stub method call from packages
var (
	newVaultClient = api.NewClient
)

type vaultStore struct {
	client *api.Client
	prefix string
}

// New returns a Store backed by a HashiCorp Vault KV v1 mount.
// Address, token and TLS parameters resolve from the store config
// with environment variable fallback.
func New(
	storeConfig map[string]interface{},
) (apppass.Store, error) {
	// DefaultConfig uses the environment variables if present.
	config := api.DefaultConfig()

	if len(storeConfig) == 0 && config.Error != nil {
		return nil, config.Error
	}

	token := getVaultParam(storeConfig, api.EnvVaultToken)
	if token == "" {
		return nil, ErrVaultTokenNotSet
	}

	address := getVaultParam(storeConfig, api.EnvVaultAddress)
	if address == "" {
		return nil, ErrVaultAddressNotSet
	}
	// Vault fails if address is not in correct format
	if !strings.HasPrefix(address, vaultAddressPrefix) {
		return nil, ErrInvalidVaultAddress
	}
	config.Address = address

	if err := configureTLS(config, storeConfig); err != nil {
		return nil, err
	}

	client, err := newVaultClient(config)
	if err != nil {
		return nil, err
	}
	client.SetToken(token)

	prefix := getVaultParam(storeConfig, PrefixKey)
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &vaultStore{
		client: client,
		prefix: prefix,
	}, nil
}

func (v *vaultStore) String() string {
	return Name
}

func (v *vaultStore) Set(key, value string) error {
	_, err := v.client.Logical().Write(v.path(key), map[string]interface{}{
		valueField: value,
	})
	return err
}

func (v *vaultStore) Get(key string) (string, error) {
	secret, err := v.client.Logical().Read(v.path(key))
	if err != nil {
		return "", err
	}
	if secret == nil || secret.Data == nil {
		return "", apppass.ErrNotFound
	}
	value, ok := secret.Data[valueField].(string)
	if !ok {
		return "", apppass.ErrNotFound
	}
	return value, nil
}

func (v *vaultStore) Delete(key string) error {
	// Vault deletes are idempotent; read first so a missing record is
	// reported the way the contract requires.
	secret, err := v.client.Logical().Read(v.path(key))
	if err != nil {
		return err
	}
	if secret == nil || secret.Data == nil {
		return apppass.ErrNotFound
	}
	_, err = v.client.Logical().Delete(v.path(key))
	return err
}

func (v *vaultStore) path(key string) string {
	return v.prefix + key
}

func getVaultParam(storeConfig map[string]interface{}, name string) string {
	if tokenIntf, exists := storeConfig[name]; exists {
		tokenStr, _ := tokenIntf.(string)
		return tokenStr
	}
	return os.Getenv(name)
}

func configureTLS(config *api.Config, storeConfig map[string]interface{}) error {
	tlsConfig := api.TLSConfig{}
	skipVerify := getVaultParam(storeConfig, api.EnvVaultInsecure)
	if skipVerify != "" {
		insecure, err := strconv.ParseBool(skipVerify)
		if err != nil {
			return ErrInvalidSkipVerify
		}
		tlsConfig.Insecure = insecure
	}

	tlsConfig.CACert = getVaultParam(storeConfig, api.EnvVaultCACert)
	tlsConfig.CAPath = getVaultParam(storeConfig, api.EnvVaultCAPath)
	tlsConfig.ClientCert = getVaultParam(storeConfig, api.EnvVaultClientCert)
	tlsConfig.ClientKey = getVaultParam(storeConfig, api.EnvVaultClientKey)
	tlsConfig.TLSServerName = getVaultParam(storeConfig, api.EnvVaultTLSServerName)

	return config.ConfigureTLS(&tlsConfig)
}

func init() {
	if err := apppass.Register(Name, New); err != nil {
		panic(err.Error())
	}
}
