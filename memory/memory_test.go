package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apppass/apppass"
	"github.com/apppass/apppass/test"
)

func TestAll(t *testing.T) {
	store, err := New(nil)
	require.NoError(t, err)
	require.Equal(t, Name, store.String())
	test.Run(store, t)
}

func TestRegistered(t *testing.T) {
	store, err := apppass.New(Name, nil)
	require.NoError(t, err)
	require.Equal(t, Name, store.String())
}

func TestInstancesAreIndependent(t *testing.T) {
	a, err := New(nil)
	require.NoError(t, err)
	b, err := New(nil)
	require.NoError(t, err)

	require.NoError(t, a.Set("k", "v"))
	_, err = b.Get("k")
	require.ErrorIs(t, err, apppass.ErrNotFound)
}
