package apppass

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewUnknownBackend(t *testing.T) {
	_, err := New("notfound", nil)
	require.Equal(t, ErrNotSupported, err)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	init := func(map[string]interface{}) (Store, error) {
		return newFakeStore(), nil
	}
	require.NoError(t, Register("fake-backend", init))
	require.Error(t, Register("fake-backend", init))

	store, err := New("fake-backend", nil)
	require.NoError(t, err)
	require.Equal(t, "fake", store.String())
}

func TestStartAutoLock(t *testing.T) {
	fired := make(chan struct{})
	timer := StartAutoLock(10*time.Millisecond, func() { close(fired) })
	defer timer.Stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("auto-lock callback never fired")
	}
}
