package apppass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyStorageNames(t *testing.T) {
	require.Equal(t, "gmail", EntryKey("gmail").StorageName())
	require.Equal(t, "gmail_type", TypeKey("gmail").StorageName())
	require.Equal(t, "gmail_otp_expiry", ExpiryKey("gmail").StorageName())
	require.Equal(t, "apppass_index", IndexKey().StorageName())
	require.Equal(t, "password_length", LengthKey().StorageName())
}

func TestIndexable(t *testing.T) {
	require.True(t, indexable("gmail"))
	require.True(t, indexable("my app"))

	require.False(t, indexable(""))
	require.False(t, indexable(indexName))
	require.False(t, indexable(lengthName))
	require.False(t, indexable("anything_type"))
	require.False(t, indexable("anything_otp_expiry"))
}
