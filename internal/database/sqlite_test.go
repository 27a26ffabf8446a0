package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectSQLiteCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.db")

	db, err := ConnectSQLite(path)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	require.NoError(t, sqlDB.Ping())
}

func TestConnectRejectsEmptyTargets(t *testing.T) {
	_, err := ConnectSQLite("")
	require.Error(t, err)

	_, err = ConnectPostgres("")
	require.Error(t, err)

	_, err = ConnectRedis("")
	require.Error(t, err)

	_, err = ConnectNATS("", "test")
	require.Error(t, err)
}
