package lookup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calparse/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "instrumentLookUp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPutResolve(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("16-4444", "CGINS-CTDBPC-04444"))

	uid, err := store.Resolve("16-4444")
	require.NoError(t, err)
	assert.Equal(t, "CGINS-CTDBPC-04444", uid)

	// 重复写入覆盖旧映射
	require.NoError(t, store.Put("16-4444", "CGINS-CTDBPC-09999"))
	uid, err = store.Resolve("16-4444")
	require.NoError(t, err)
	assert.Equal(t, "CGINS-CTDBPC-09999", uid)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestResolveNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Resolve("16-0000")
	var nf *model.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "16-0000", nf.Serial)
}

func TestOpenCreatesMissingDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "lookup.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Dir(dbPath))
	require.NoError(t, err)
}

func TestOpenReusesExisting(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "lookup.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Put("43-123", "CGINS-DOFSTA-00123"))
	require.NoError(t, store.Close())

	store2, err := Open(dbPath)
	require.NoError(t, err)
	defer store2.Close()

	uid, err := store2.Resolve("43-123")
	require.NoError(t, err)
	assert.Equal(t, "CGINS-DOFSTA-00123", uid)
}

func TestOpenBadPath(t *testing.T) {
	dir := t.TempDir()
	// 路径指向目录本身时 Ping 失败
	_, err := Open(dir + string(os.PathSeparator) + ".")
	if err != nil {
		var le *model.LookupLoadError
		assert.True(t, errors.As(err, &le))
	}
}

func TestImportCSV(t *testing.T) {
	store := openTestStore(t)

	csvPath := filepath.Join(t.TempDir(), "mapping.csv")
	content := "uid,serial\n" +
		"CGINS-CTDBPC-04444,16-4444\n" +
		"CGINS-NUTNRA-00744,744\n" +
		",no-uid\n" +
		"\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	n, err := store.ImportCSV(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	uid, err := store.Resolve("744")
	require.NoError(t, err)
	assert.Equal(t, "CGINS-NUTNRA-00744", uid)
}

func TestImportCSV_NoHeader(t *testing.T) {
	store := openTestStore(t)

	csvPath := filepath.Join(t.TempDir(), "mapping.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("16-1111,CGINS-CTDBPC-01111\n"), 0o644))

	n, err := store.ImportCSV(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	uid, err := store.Resolve("16-1111")
	require.NoError(t, err)
	assert.Equal(t, "CGINS-CTDBPC-01111", uid)
}

func TestImportCSV_MissingFile(t *testing.T) {
	store := openTestStore(t)

	_, err := store.ImportCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
