package farmshandler

import (
	"testing"

	farmsstore "broilink-backend/lib/farms/store"
	usersstore "broilink-backend/lib/users/store"
	"broilink-backend/lib/utils/helpers"
	"broilink-backend/lib/utils/testdb"
	"broilink-backend/models"
	apimodels "broilink-backend/models/api"
	farmsapimodels "broilink-backend/models/api/farms"
	dbmodels "broilink-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestFarmsHandler(t *testing.T) {
	conn := testdb.New(t)
	users := usersstore.NewInstance(conn)
	ownerID, err := users.Create(dbmodels.User{Username: "budi", Name: "Budi", Role: models.OwnerRole})
	require.NoError(t, err)
	otherOwnerID, err := users.Create(dbmodels.User{Username: "andi", Name: "Andi", Role: models.OwnerRole})
	require.NoError(t, err)
	peternakID, err := users.Create(dbmodels.User{Username: "siti", Name: "Siti", Role: models.PeternakRole, OwnerID: helpers.StringPtr(ownerID)})
	require.NoError(t, err)

	provider := NewInstance(conn)
	farmID, err := provider.Create(farmsapimodels.FarmData{
		FarmName:          "Kandang A",
		OwnerID:           ownerID,
		InitialPopulation: apimodels.NewNumber(1000),
		FarmArea:          apimodels.NewNumber(150),
	})
	require.NoError(t, err)
	secondFarmID, err := provider.Create(farmsapimodels.FarmData{FarmName: "Kandang B", OwnerID: ownerID})
	require.NoError(t, err)

	t.Run(`create validates owner`, func(t *testing.T) {
		_, err := provider.Create(farmsapimodels.FarmData{FarmName: "X", OwnerID: peternakID})
		require.ErrorIs(t, err, models.ErrValidation)
	})
	t.Run(`assign peternak`, func(t *testing.T) {
		require.NoError(t, provider.AssignPeternak(farmID, farmsapimodels.AssignPeternakData{PeternakID: peternakID}))
		farm, err := provider.AssignedFarm(peternakID)
		require.NoError(t, err)
		require.Equal(t, farmID, farm.ID)

		// pindah ke kandang lain melepas kandang lama
		require.NoError(t, provider.AssignPeternak(secondFarmID, farmsapimodels.AssignPeternakData{PeternakID: peternakID}))
		farm, err = provider.AssignedFarm(peternakID)
		require.NoError(t, err)
		require.Equal(t, secondFarmID, farm.ID)
		view, err := provider.Get(farmID)
		require.NoError(t, err)
		require.Empty(t, view.PeternakID)

		err = provider.AssignPeternak("missing", farmsapimodels.AssignPeternakData{PeternakID: peternakID})
		require.ErrorIs(t, err, models.ErrNotFound)
	})
	t.Run(`peternak of another owner is rejected`, func(t *testing.T) {
		otherFarmID, err := provider.Create(farmsapimodels.FarmData{FarmName: "Kandang C", OwnerID: otherOwnerID})
		require.NoError(t, err)
		err = provider.AssignPeternak(otherFarmID, farmsapimodels.AssignPeternakData{PeternakID: peternakID})
		require.ErrorIs(t, err, models.ErrValidation)
	})
	t.Run(`access by role`, func(t *testing.T) {
		_, err := provider.GetForUser(secondFarmID, ownerID, models.OwnerRole)
		require.NoError(t, err)
		_, err = provider.GetForUser(secondFarmID, otherOwnerID, models.OwnerRole)
		require.ErrorIs(t, err, models.ErrForbidden)
		_, err = provider.GetForUser(secondFarmID, peternakID, models.PeternakRole)
		require.NoError(t, err)
		_, err = provider.GetForUser(farmID, peternakID, models.PeternakRole)
		require.ErrorIs(t, err, models.ErrForbidden)
		_, err = provider.GetForUser(farmID, "admin", models.AdminRole)
		require.NoError(t, err)
		_, err = provider.GetForUser("missing", ownerID, models.OwnerRole)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
	t.Run(`update and delete`, func(t *testing.T) {
		err := provider.Update(farmID, farmsapimodels.FarmData{FarmName: "Kandang A1", OwnerID: ownerID, FarmArea: apimodels.NewNumber(200)})
		require.NoError(t, err)
		view, err := provider.Get(farmID)
		require.NoError(t, err)
		require.Equal(t, "Kandang A1", view.FarmName)
		require.Equal(t, 200.0, view.FarmArea)
		require.Equal(t, "Budi", view.OwnerName)

		require.NoError(t, provider.Delete(farmID))
		_, err = provider.Get(farmID)
		require.ErrorIs(t, err, models.ErrNotFound)
		require.ErrorIs(t, provider.Delete(farmID), models.ErrNotFound)

		list, err := provider.List(farmsstore.Filter{OwnerID: ownerID})
		require.NoError(t, err)
		require.Len(t, list, 1)
	})
}
