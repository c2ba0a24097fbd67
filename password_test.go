package apppass

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateCustomRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)

	require.NoError(t, m.CreateCustom("svc", "p@ss"))
	got, err := m.Password("svc")
	require.NoError(t, err)
	require.Equal(t, "p@ss", got)
}

func TestCreateCustomAllowsEmptyValue(t *testing.T) {
	m, _ := newTestManager(t)

	require.NoError(t, m.CreateCustom("svc", ""))
	got, err := m.Password("svc")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestCreateAutoLengthContract(t *testing.T) {
	m, _ := newTestManager(t)

	for _, n := range []int{1, 8, 30, 128} {
		name := "app" + strings.Repeat("x", n%7)
		m.Delete(name)
		password, err := m.CreateAuto(name, n)
		require.NoError(t, err)
		require.Len(t, password, n)
		for _, c := range password {
			require.Contains(t, alphanumeric, string(c))
		}
		require.NoError(t, m.Delete(name))
	}
}

func TestCreateAutoDefaultLength(t *testing.T) {
	m, _ := newTestManager(t)

	password, err := m.CreateAuto("gmail", 0)
	require.NoError(t, err)
	require.Len(t, password, DefaultLength)
}

func TestCreateAutoUsesStoredLengthSetting(t *testing.T) {
	m, _ := newTestManager(t)

	require.NoError(t, m.SetDefaultLength(12))
	password, err := m.CreateAuto("gmail", 0)
	require.NoError(t, err)
	require.Len(t, password, 12)
}

func TestDuplicateCreateRejected(t *testing.T) {
	m, _ := newTestManager(t)

	first, err := m.CreateAuto("gmail", 0)
	require.NoError(t, err)

	_, err = m.CreateAuto("gmail", 0)
	require.ErrorIs(t, err, ErrExists)
	require.ErrorIs(t, m.CreateCustom("gmail", "x"), ErrExists)
	_, err = m.CreateMemorizable("gmail")
	require.ErrorIs(t, err, ErrExists)

	got, err := m.Password("gmail")
	require.NoError(t, err)
	require.Equal(t, first, got, "rejected creates must not clobber the stored value")
}

func TestCreateRecordsTypeAndIndex(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.CreateAuto("auto-app", 0)
	require.NoError(t, err)
	require.NoError(t, m.CreateCustom("custom-app", "v"))

	typ, ok := m.PasswordType("auto-app")
	require.True(t, ok)
	require.Equal(t, TypeAuto, typ)

	typ, ok = m.PasswordType("custom-app")
	require.True(t, ok)
	require.Equal(t, TypeCustom, typ)

	names, err := m.Index()
	require.NoError(t, err)
	require.Equal(t, []string{"auto-app", "custom-app"}, names)
}

func TestUpdateRequiresExistingEntry(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.UpdateRegenerate("ghost", 0)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, m.UpdateCustom("ghost", "v"), ErrNotFound)
}

func TestRegenerateAlwaysBecomesAuto(t *testing.T) {
	m, _ := newTestManager(t)

	require.NoError(t, m.CreateCustom("x", "v"))
	password, err := m.UpdateRegenerate("x", 12)
	require.NoError(t, err)
	require.Len(t, password, 12)
	require.NotEqual(t, "v", password)

	typ, ok := m.PasswordType("x")
	require.True(t, ok)
	require.Equal(t, TypeAuto, typ)
}

func TestUpdateCustomMarksCustom(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.CreateAuto("x", 0)
	require.NoError(t, err)
	require.NoError(t, m.UpdateCustom("x", "chosen"))

	got, err := m.Password("x")
	require.NoError(t, err)
	require.Equal(t, "chosen", got)

	typ, _ := m.PasswordType("x")
	require.Equal(t, TypeCustom, typ)
}

func TestDeleteCascadesAndIsIdempotent(t *testing.T) {
	m, store := newTestManager(t)

	_, err := m.GenerateOTP("x", DefaultOTPTTL, 10)
	require.NoError(t, err)
	require.NoError(t, m.Delete("x"))

	_, ok := store.raw("x" + typeSuffix)
	require.False(t, ok, "type record must be cascade-deleted")
	_, ok = store.raw("x" + expirySuffix)
	require.False(t, ok, "expiry record must be cascade-deleted")
	_, ok = store.raw(indexName)
	require.False(t, ok)

	// The second delete reports NotFound and must not panic or
	// resurrect anything.
	require.ErrorIs(t, m.Delete("x"), ErrNotFound)
	_, ok = store.raw("x" + typeSuffix)
	require.False(t, ok)
}

func TestDeleteNonexistent(t *testing.T) {
	m, _ := newTestManager(t)
	require.ErrorIs(t, m.Delete("ghost"), ErrNotFound)
}

func TestMemorizableShape(t *testing.T) {
	m, _ := newTestManager(t)

	password, err := m.CreateMemorizable("svc")
	require.NoError(t, err)

	parts := strings.Split(password, "-")
	require.Len(t, parts, 3)
	require.Contains(t, memorizableWords, parts[0])
	require.Contains(t, memorizableWords, parts[2])
	require.GreaterOrEqual(t, parts[1], "10")
	require.LessOrEqual(t, parts[1], "99")

	typ, _ := m.PasswordType("svc")
	require.Equal(t, TypeAuto, typ)
}

func TestExportImportRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)
	path := filepath.Join(t.TempDir(), "f.csv")

	require.NoError(t, m.CreateCustom("svc", "p@ss"))
	require.NoError(t, m.Export(path))
	require.NoError(t, m.Delete("svc"))
	require.NoError(t, m.Import(path))

	got, err := m.Password("svc")
	require.NoError(t, err)
	require.Equal(t, "p@ss", got)

	typ, ok := m.PasswordType("svc")
	require.True(t, ok)
	require.Equal(t, TypeCustom, typ, "imported passwords classify as custom")
}

func TestExportEmptyIsNotAnError(t *testing.T) {
	m, _ := newTestManager(t)
	path := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, m.Export(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestExportSkipsUnreadableEntries(t *testing.T) {
	m, store := newTestManager(t)
	path := filepath.Join(t.TempDir(), "f.csv")

	require.NoError(t, m.CreateCustom("good", "v"))
	store.put(indexName, "good,orphan")

	require.NoError(t, m.Export(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "good,v\n", string(data))
}

func TestImportSkipsMalformedLines(t *testing.T) {
	m, _ := newTestManager(t)
	path := filepath.Join(t.TempDir(), "f.csv")

	content := "svc,p1\nmalformed line\ntoo,many,fields\nother,p2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, m.Import(path))

	names, err := m.Index()
	require.NoError(t, err)
	require.Equal(t, []string{"other", "svc"}, names)
}

func TestImportOverwritesExisting(t *testing.T) {
	m, _ := newTestManager(t)
	path := filepath.Join(t.TempDir(), "f.csv")

	require.NoError(t, m.CreateCustom("svc", "old"))
	require.NoError(t, os.WriteFile(path, []byte("svc,new\n"), 0o600))
	require.NoError(t, m.Import(path))

	got, err := m.Password("svc")
	require.NoError(t, err)
	require.Equal(t, "new", got)
}

func TestImportMissingFile(t *testing.T) {
	m, _ := newTestManager(t)
	require.Error(t, m.Import(filepath.Join(t.TempDir(), "nope.csv")))
}

func TestStoreFailurePropagates(t *testing.T) {
	m, store := newTestManager(t)
	backendErr := errors.New("backend unavailable")
	store.failWith("gmail", backendErr)

	_, err := m.Password("gmail")
	require.ErrorIs(t, err, backendErr)
	require.NotErrorIs(t, err, ErrNotFound)
}
