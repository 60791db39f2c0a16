package farmconfighandler

import (
	"testing"

	farmsstore "broilink-backend/lib/farms/store"
	usersstore "broilink-backend/lib/users/store"
	"broilink-backend/lib/utils/testdb"
	"broilink-backend/models"
	apimodels "broilink-backend/models/api"
	farmconfigapimodels "broilink-backend/models/api/farmconfig"
	dbmodels "broilink-backend/models/db"

	"github.com/stretchr/testify/require"
)

func configData(values map[string]float64) farmconfigapimodels.FarmConfigData {
	data := farmconfigapimodels.FarmConfigData{}
	for key, value := range values {
		data[key] = apimodels.NewNumber(value)
	}
	return data
}

func TestFarmConfigHandler(t *testing.T) {
	conn := testdb.New(t)
	ownerID, err := usersstore.NewInstance(conn).Create(dbmodels.User{Username: "budi", Name: "Budi", Role: models.OwnerRole})
	require.NoError(t, err)
	farmID, err := farmsstore.NewInstance(conn).Create(dbmodels.Farm{OwnerID: ownerID, FarmName: "Kandang A"})
	require.NoError(t, err)
	provider := NewInstance(conn)

	t.Run(`baseline before first save`, func(t *testing.T) {
		view, err := provider.Get(farmID)
		require.NoError(t, err)
		require.True(t, view.IsBaseline)
		require.False(t, view.HasDefault)
		require.Equal(t, models.BaselineFarmConfig, view.Values)

		_, err = provider.Reset(farmID)
		require.ErrorIs(t, err, models.ErrConflict)
		require.Equal(t, noDefaultMsg, err.Error())
	})
	first := models.CopyFarmConfig(models.BaselineFarmConfig)
	first[models.ConfigSuhuNormalMax] = 31
	first[models.ConfigLuasKandang] = 150
	t.Run(`first save captures default`, func(t *testing.T) {
		view, err := provider.Save(farmID, configData(first))
		require.NoError(t, err)
		require.True(t, view.HasDefault)
		require.False(t, view.IsBaseline)
		require.Equal(t, 31.0, view.Values[models.ConfigSuhuNormalMax])

		farm, err := farmsstore.NewInstance(conn).GetByID(farmID)
		require.NoError(t, err)
		require.Equal(t, 150.0, farm.FarmArea)
	})
	t.Run(`later saves keep the default`, func(t *testing.T) {
		second := models.CopyFarmConfig(first)
		second[models.ConfigSuhuNormalMax] = 33
		second[models.ConfigSuhuKritisTinggi] = 36
		view, err := provider.Save(farmID, configData(second))
		require.NoError(t, err)
		require.Equal(t, 33.0, view.Values[models.ConfigSuhuNormalMax])

		thresholds, err := provider.Thresholds(farmID)
		require.NoError(t, err)
		require.Equal(t, 36.0, thresholds[models.ConfigSuhuKritisTinggi])

		view, err = provider.Reset(farmID)
		require.NoError(t, err)
		require.Equal(t, first, view.Values)
	})
	t.Run(`unknown farm`, func(t *testing.T) {
		_, err := provider.Get("missing")
		require.ErrorIs(t, err, models.ErrNotFound)
		_, err = provider.Save("missing", configData(first))
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}
