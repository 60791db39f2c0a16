package analytics

import (
	"testing"
	"time"

	farmconfighandler "broilink-backend/lib/farm-config"
	farmsstore "broilink-backend/lib/farms/store"
	reportsstore "broilink-backend/lib/reports/store"
	sensorshandler "broilink-backend/lib/sensors"
	sensorsstore "broilink-backend/lib/sensors/store"
	usersstore "broilink-backend/lib/users/store"
	"broilink-backend/lib/utils/testdb"
	"broilink-backend/models"
	dbmodels "broilink-backend/models/db"

	"github.com/stretchr/testify/require"
)

func floatPtr(value float64) *float64 {
	return &value
}

func TestSeries(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, loc)

	t.Run(`sensor buckets average, empty buckets are null`, func(t *testing.T) {
		buckets := Buckets(models.Period1Day, now, loc)
		series := SensorSeries(buckets, []dbmodels.SensorReading{
			{Temperature: 30, Humidity: 60, Ammonia: 10, RecordedAt: time.Date(2025, 11, 20, 1, 0, 0, 0, loc)},
			{Temperature: 32, Humidity: 70, Ammonia: 20, RecordedAt: time.Date(2025, 11, 20, 3, 0, 0, 0, loc)},
			{Temperature: 29, Humidity: 65, Ammonia: 5, RecordedAt: time.Date(2025, 11, 20, 9, 0, 0, 0, loc)},
		})
		require.Len(t, series, 6)
		require.Equal(t, 31.0, *series[0].Temperature)
		require.Equal(t, 65.0, *series[0].Humidity)
		require.Nil(t, series[1].Temperature)
		require.Equal(t, 29.0, *series[2].Temperature)
	})
	t.Run(`manual buckets sum and average weight`, func(t *testing.T) {
		buckets := Buckets(models.Period1Month, now, loc)
		series := ManualSeries(buckets, []dbmodels.ManualReport{
			{ReportDate: "2025-11-19", KonsumsiPakan: 100, KonsumsiAir: 200, JumlahKematian: 1, RataRataBobot: floatPtr(1.0)},
			{ReportDate: "2025-11-20", KonsumsiPakan: 110, KonsumsiAir: 210, JumlahKematian: 2, RataRataBobot: floatPtr(1.2)},
			{ReportDate: "2025-10-01", KonsumsiPakan: 999},
		}, loc)
		require.Len(t, series, 4)
		require.Nil(t, series[0].KonsumsiPakan)
		require.Equal(t, 210.0, *series[3].KonsumsiPakan)
		require.Equal(t, 410.0, *series[3].KonsumsiAir)
		require.Equal(t, 3.0, *series[3].JumlahKematian)
		require.InDelta(t, 1.1, *series[3].RataRataBobot, 0.0001)
	})
}

func TestAnalyticsHandler(t *testing.T) {
	conn := testdb.New(t)
	loc := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, loc)

	ownerID, err := usersstore.NewInstance(conn).Create(dbmodels.User{Username: "budi", Name: "Budi", Role: models.OwnerRole})
	require.NoError(t, err)
	farm := dbmodels.Farm{OwnerID: ownerID, FarmName: "Kandang A", InitialPopulation: 1000}
	farm.ID, err = farmsstore.NewInstance(conn).Create(farm)
	require.NoError(t, err)

	reports := reportsstore.NewInstance(conn)
	_, err = reports.Create(dbmodels.ManualReport{FarmID: farm.ID, ReportDate: "2025-11-19", KonsumsiPakan: 100, KonsumsiAir: 200, JumlahKematian: 4, RataRataBobot: floatPtr(1.1)})
	require.NoError(t, err)
	_, err = reports.Create(dbmodels.ManualReport{FarmID: farm.ID, ReportDate: "2025-11-20", KonsumsiPakan: 110, KonsumsiAir: 210, JumlahKematian: 6})
	require.NoError(t, err)
	sensors := sensorsstore.NewInstance(conn)
	_, err = sensors.Create(dbmodels.SensorReading{FarmID: farm.ID, Temperature: 30, Humidity: 65, Ammonia: 10, RecordedAt: time.Date(2025, 11, 20, 8, 0, 0, 0, loc)})
	require.NoError(t, err)
	_, err = sensors.Create(dbmodels.SensorReading{FarmID: farm.ID, Temperature: 36, Humidity: 65, Ammonia: 10, RecordedAt: time.Date(2025, 11, 20, 10, 0, 0, 0, loc)})
	require.NoError(t, err)

	provider := NewInstance(conn, sensorshandler.NewInstance(conn), farmconfighandler.NewInstance(conn), loc).(impl)
	provider.now = func() time.Time { return now }

	t.Run(`monitoring`, func(t *testing.T) {
		view, err := provider.Monitoring(farm, models.Period1Day)
		require.NoError(t, err)
		require.Equal(t, models.SensorStatusDanger, view.Status)
		require.Equal(t, 36.0, view.Current.Temperature)
		require.Equal(t, "1 Hari Terakhir", view.PeriodLabel)
		require.Equal(t, 33.0, *view.Series[2].Temperature)
	})
	t.Run(`analytics`, func(t *testing.T) {
		view, err := provider.Analytics(farm, models.Period1Week)
		require.NoError(t, err)
		require.Equal(t, 210.0, view.TotalPakan)
		require.Equal(t, 10, view.TotalKematian)
		require.Equal(t, 1.1, *view.BobotTerakhir)
		require.Equal(t, 1.0, *view.Mortalitas)
		require.Len(t, view.Series, 7)
		require.Nil(t, view.Series[0].KonsumsiPakan)
		require.Equal(t, 110.0, *view.Series[6].KonsumsiPakan)
	})
	t.Run(`daily rows`, func(t *testing.T) {
		rows, err := provider.DailyRows(farm, models.Period1Week)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Nil(t, rows[0].Temperature)
		require.Equal(t, 33.0, *rows[1].Temperature)
	})
}
