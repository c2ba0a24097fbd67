package keyring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apppass/apppass"
	"github.com/apppass/apppass/test"
)

// keyringAvailable probes the OS credential service; headless CI
// systems usually have none.
func keyringAvailable() bool {
	store, err := New(map[string]interface{}{ServiceKey: "apppass_test_probe"})
	if err != nil {
		return false
	}
	if err := store.Set("keyring_availability_check", "test"); err != nil {
		return false
	}
	store.Delete("keyring_availability_check")
	return true
}

func TestAll(t *testing.T) {
	if !keyringAvailable() {
		t.Skip("keyring service not available")
	}
	store, err := New(map[string]interface{}{ServiceKey: "apppass_test"})
	require.NoError(t, err)
	require.Equal(t, Name, store.String())
	test.Run(store, t)
}

func TestDefaultService(t *testing.T) {
	store, err := New(nil)
	require.NoError(t, err)
	require.Equal(t, apppass.ServiceName, store.(*keyringStore).service)
}

func TestServiceOverride(t *testing.T) {
	store, err := New(map[string]interface{}{ServiceKey: "other"})
	require.NoError(t, err)
	require.Equal(t, "other", store.(*keyringStore).service)
}
