package dashboardhandler

import (
	"testing"
	"time"

	"broilink-backend/lib/analytics"
	farmconfighandler "broilink-backend/lib/farm-config"
	farmshandler "broilink-backend/lib/farms"
	farmsstore "broilink-backend/lib/farms/store"
	reportshandler "broilink-backend/lib/reports"
	requestshandler "broilink-backend/lib/requests"
	requestsstore "broilink-backend/lib/requests/store"
	sensorshandler "broilink-backend/lib/sensors"
	sensorsstore "broilink-backend/lib/sensors/store"
	usershandler "broilink-backend/lib/users"
	usersstore "broilink-backend/lib/users/store"
	"broilink-backend/lib/utils/helpers"
	"broilink-backend/lib/utils/testdb"
	"broilink-backend/models"
	dbmodels "broilink-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	conn := testdb.New(t)
	loc := time.FixedZone("WIB", 7*60*60)
	users := usersstore.NewInstance(conn)
	ownerID, err := users.Create(dbmodels.User{Username: "budi", Name: "Budi", Role: models.OwnerRole})
	require.NoError(t, err)
	peternakID, err := users.Create(dbmodels.User{Username: "siti", Name: "Siti", Role: models.PeternakRole, OwnerID: helpers.StringPtr(ownerID)})
	require.NoError(t, err)
	idleID, err := users.Create(dbmodels.User{Username: "joko", Name: "Joko", Role: models.PeternakRole, OwnerID: helpers.StringPtr(ownerID)})
	require.NoError(t, err)
	farms := farmsstore.NewInstance(conn)
	dangerFarmID, err := farms.Create(dbmodels.Farm{OwnerID: ownerID, FarmName: "Kandang A", PeternakID: helpers.StringPtr(peternakID)})
	require.NoError(t, err)
	_, err = farms.Create(dbmodels.Farm{OwnerID: ownerID, FarmName: "Kandang B"})
	require.NoError(t, err)
	_, err = sensorsstore.NewInstance(conn).Create(dbmodels.SensorReading{FarmID: dangerFarmID, Temperature: 40, Humidity: 65, Ammonia: 5, RecordedAt: time.Now()})
	require.NoError(t, err)

	sensors := sensorshandler.NewInstance(conn)
	farmConfig := farmconfighandler.NewInstance(conn)
	provider := NewInstance(
		usershandler.NewInstance(conn),
		farmshandler.NewInstance(conn),
		requestshandler.NewInstance(requestsstore.NewMemoryInstance(requestsstore.FixtureRequests()...), users, 6),
		reportshandler.NewInstance(conn, loc),
		analytics.NewInstance(conn, sensors, farmConfig, loc),
	)

	t.Run(`admin`, func(t *testing.T) {
		view, err := provider.Admin()
		require.NoError(t, err)
		require.Equal(t, int64(1), view.TotalOwners)
		require.Equal(t, int64(2), view.TotalPeternak)
		require.Equal(t, int64(2), view.TotalFarms)
		require.Equal(t, int64(1), view.PendingRequests)
		require.Len(t, view.RecentRequests, 3)
	})
	t.Run(`owner`, func(t *testing.T) {
		view, err := provider.Owner(ownerID)
		require.NoError(t, err)
		require.Equal(t, 2, view.TotalFarms)
		require.Equal(t, 2, view.TotalPeternak)
		require.Equal(t, 1, view.FarmsInDanger)
		statuses := map[string]models.SensorStatus{}
		for _, farm := range view.Farms {
			statuses[farm.FarmName] = farm.Status
		}
		require.Equal(t, models.SensorStatusDanger, statuses["Kandang A"])
		require.Equal(t, models.SensorStatusNoData, statuses["Kandang B"])
	})
	t.Run(`peternak`, func(t *testing.T) {
		view, err := provider.Peternak(peternakID)
		require.NoError(t, err)
		require.Equal(t, "Kandang A", view.Farm.FarmName)
		require.Equal(t, "Siti", view.Farm.PeternakName)
		require.Len(t, view.Series, 7)

		view, err = provider.Peternak(idleID)
		require.NoError(t, err)
		require.Nil(t, view.Farm)
	})
}
