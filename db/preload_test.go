package db

import (
	"testing"
	"time"

	farmsstore "broilink-backend/lib/farms/store"
	usersstore "broilink-backend/lib/users/store"
	authutils "broilink-backend/lib/utils/auth-utils"
	"broilink-backend/models"
	dbmodels "broilink-backend/models/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	conn, err := Open(DriverSqlite, "file:"+uuid.NewString()+"?mode=memory&cache=shared", false)
	require.NoError(t, err)
	require.NoError(t, AutoMigrateDB(conn))

	t.Run(`admin`, func(t *testing.T) {
		require.NoError(t, SeedAdmin(conn, "admin", "admin123", "Administrator", ""))
		require.NoError(t, SeedAdmin(conn, "admin", "lain", "Administrator", ""))
		rec, err := usersstore.NewInstance(conn).FindByUsername("admin")
		require.NoError(t, err)
		require.Equal(t, models.AdminRole, rec.Role)
		require.True(t, authutils.CheckPassword(rec.Password, "admin123"))
	})
	t.Run(`fixtures`, func(t *testing.T) {
		loc := time.FixedZone("WIB", 7*60*60)
		now := time.Date(2025, 11, 20, 10, 0, 0, 0, loc)
		require.NoError(t, SeedFixtures(conn, now, loc))
		require.NoError(t, SeedFixtures(conn, now, loc))

		farms, err := farmsstore.NewInstance(conn).List(farmsstore.Filter{})
		require.NoError(t, err)
		require.Len(t, farms, 2)

		var reports int64
		require.NoError(t, conn.Model(&dbmodels.ManualReport{}).Count(&reports).Error)
		require.Equal(t, int64(6), reports)
		var readings int64
		require.NoError(t, conn.Model(&dbmodels.SensorReading{}).Count(&readings).Error)
		require.Equal(t, int64(2*84), readings)
	})
}
