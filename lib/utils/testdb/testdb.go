package testdb

import (
	"testing"

	"broilink-backend/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New - database SQLite in-memory terpisah untuk satu test, sudah dimigrasi
func New(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := db.Open(db.DriverSqlite, dsn, false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrateDB(conn))
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}
