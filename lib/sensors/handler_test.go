package sensorshandler

import (
	"encoding/json"
	"testing"
	"time"

	farmsstore "broilink-backend/lib/farms/store"
	usersstore "broilink-backend/lib/users/store"
	"broilink-backend/lib/utils/testdb"
	"broilink-backend/models"
	monitoringapimodels "broilink-backend/models/api/monitoring"
	dbmodels "broilink-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	thresholds := models.BaselineFarmConfig
	cases := []struct {
		name    string
		reading dbmodels.SensorReading
		status  models.SensorStatus
	}{
		{"normal", dbmodels.SensorReading{Temperature: 30, Humidity: 65, Ammonia: 10}, models.SensorStatusNormal},
		{"suhu waspada", dbmodels.SensorReading{Temperature: 33, Humidity: 65, Ammonia: 10}, models.SensorStatusWarning},
		{"suhu bahaya", dbmodels.SensorReading{Temperature: 36, Humidity: 65, Ammonia: 10}, models.SensorStatusDanger},
		{"kelembapan rendah kritis", dbmodels.SensorReading{Temperature: 30, Humidity: 45, Ammonia: 10}, models.SensorStatusDanger},
		{"amonia waspada", dbmodels.SensorReading{Temperature: 30, Humidity: 65, Ammonia: 25}, models.SensorStatusWarning},
		{"amonia bahaya mengalahkan waspada", dbmodels.SensorReading{Temperature: 33, Humidity: 65, Ammonia: 31}, models.SensorStatusDanger},
		{"batas normal inklusif", dbmodels.SensorReading{Temperature: 32, Humidity: 60, Ammonia: 20}, models.SensorStatusNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, details := Evaluate(tc.reading, thresholds)
			require.Equal(t, tc.status, status)
			require.Len(t, details, 3)
		})
	}
	require.Equal(t, models.SensorStatusNoData, StatusOf(nil))
}

func TestIngest(t *testing.T) {
	conn := testdb.New(t)
	ownerID, err := usersstore.NewInstance(conn).Create(dbmodels.User{Username: "budi", Name: "Budi", Role: models.OwnerRole})
	require.NoError(t, err)
	farmID, err := farmsstore.NewInstance(conn).Create(dbmodels.Farm{OwnerID: ownerID, FarmName: "Kandang A"})
	require.NoError(t, err)
	provider := NewInstance(conn)

	current, err := provider.Current(farmID, nil)
	require.NoError(t, err)
	require.Nil(t, current)

	data := monitoringapimodels.ReadingData{}
	require.NoError(t, json.Unmarshal([]byte(`{"farm_id":"`+farmID+`","temperature":"34","humidity":65,"ammonia":5,"recorded_at":"2025-11-20T10:00:00Z"}`), &data))
	require.NoError(t, data.Validate())
	_, err = provider.Ingest(data)
	require.NoError(t, err)

	current, err = provider.Current(farmID, models.BaselineFarmConfig)
	require.NoError(t, err)
	require.Equal(t, models.SensorStatusWarning, current.Status)
	require.Equal(t, models.SensorStatusWarning, current.Details[ParamSuhu])

	list, err := provider.ListRange(farmID, time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, list, 1)

	data.FarmID = "missing"
	_, err = provider.Ingest(data)
	require.ErrorIs(t, err, models.ErrNotFound)
}
