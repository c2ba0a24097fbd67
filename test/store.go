package test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apppass/apppass"
)

// Run exercises the Store contract against a backend instance. Keys
// are namespaced so the run leaves no residue in a shared backend.
func Run(store apppass.Store, t *testing.T) {
	testSetGet(store, t)
	testOverwrite(store, t)
	testDelete(store, t)
	testNotFound(store, t)
}

func testSetGet(store apppass.Store, t *testing.T) {
	key := "apppass_conformance_set_get"
	defer store.Delete(key)

	require.NoError(t, store.Set(key, "v1"), "Set should succeed")
	value, err := store.Get(key)
	require.NoError(t, err, "Get should succeed after Set")
	require.Equal(t, "v1", value)
}

func testOverwrite(store apppass.Store, t *testing.T) {
	key := "apppass_conformance_overwrite"
	defer store.Delete(key)

	require.NoError(t, store.Set(key, "v1"))
	require.NoError(t, store.Set(key, "v2"), "Set should overwrite silently")
	value, err := store.Get(key)
	require.NoError(t, err)
	require.Equal(t, "v2", value)
}

func testDelete(store apppass.Store, t *testing.T) {
	key := "apppass_conformance_delete"

	require.NoError(t, store.Set(key, "v1"))
	require.NoError(t, store.Delete(key), "Delete of an existing record should succeed")
	_, err := store.Get(key)
	require.ErrorIs(t, err, apppass.ErrNotFound, "Get after Delete should report ErrNotFound")
	require.ErrorIs(t, store.Delete(key), apppass.ErrNotFound, "second Delete should report ErrNotFound")
}

func testNotFound(store apppass.Store, t *testing.T) {
	_, err := store.Get("apppass_conformance_never_written")
	require.ErrorIs(t, err, apppass.ErrNotFound)
}
