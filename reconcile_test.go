package apppass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListReturnsSortedEntriesWithMetadata(t *testing.T) {
	m, _ := newTestManager(t)

	require.NoError(t, m.CreateCustom("zulu", "z"))
	_, err := m.CreateAuto("alpha", 8)
	require.NoError(t, err)

	entries, err := m.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "alpha", entries[0].Name)
	require.Equal(t, TypeAuto, entries[0].Type)
	require.Zero(t, entries[0].OTPExpiry)
	require.Equal(t, "zulu", entries[1].Name)
	require.Equal(t, "z", entries[1].Password)
	require.Equal(t, TypeCustom, entries[1].Type)
}

func TestListSelfHealsOrphans(t *testing.T) {
	m, store := newTestManager(t)

	require.NoError(t, m.CreateCustom("real", "v"))
	// Force the index to reference a name with no backing entry.
	store.put(indexName, "orphan,real")

	entries, err := m.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "real", entries[0].Name)

	// The orphan must be gone from the persisted index afterward.
	data, ok := store.raw(indexName)
	require.True(t, ok)
	require.Equal(t, "real", data)
}

func TestListCollapsesIndexWhenAllOrphaned(t *testing.T) {
	m, store := newTestManager(t)
	store.put(indexName, "orphan")

	entries, err := m.List()
	require.NoError(t, err)
	require.Empty(t, entries)

	_, ok := store.raw(indexName)
	require.False(t, ok)
}

func TestPredicatesSkipWithoutMutating(t *testing.T) {
	m, store := newTestManager(t)

	require.NoError(t, m.CreateCustom("real", "v"))
	store.put(indexName, "orphan,real")

	require.True(t, m.HasAnyPasswords())
	require.True(t, m.HasCustomPasswords())

	// Unlike List, the predicates must not rewrite the index.
	data, ok := store.raw(indexName)
	require.True(t, ok)
	require.Equal(t, "orphan,real", data)
}

func TestPredicatesOnEmptyStore(t *testing.T) {
	m, _ := newTestManager(t)

	require.False(t, m.HasAnyPasswords())
	require.False(t, m.HasAutoPasswords())
	require.False(t, m.HasCustomPasswords())
}

func TestTypePredicateDefaultsToAuto(t *testing.T) {
	m, store := newTestManager(t)

	// A legacy entry: password and index slot, no type record.
	store.put("legacy", "v")
	store.put(indexName, "legacy")

	require.True(t, m.HasAutoPasswords())
	require.False(t, m.HasCustomPasswords())
}

func TestCleanupOrphanedIndexDeletesStaleIndex(t *testing.T) {
	m, store := newTestManager(t)
	store.put(indexName, "ghost1,ghost2")

	m.CleanupOrphanedIndex()

	_, ok := store.raw(indexName)
	require.False(t, ok)
}

func TestCleanupOrphanedIndexKeepsLiveIndex(t *testing.T) {
	m, store := newTestManager(t)

	require.NoError(t, m.CreateCustom("real", "v"))
	store.put(indexName, "ghost,real")

	m.CleanupOrphanedIndex()

	data, ok := store.raw(indexName)
	require.True(t, ok)
	require.Equal(t, "ghost,real", data, "a single live entry keeps the index untouched")
}

func TestCleanupOrphanedIndexNoIndex(t *testing.T) {
	m, _ := newTestManager(t)
	m.CleanupOrphanedIndex()
	require.False(t, m.HasAnyPasswords())
}
