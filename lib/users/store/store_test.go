package usersstore_test

import (
	"testing"

	usersstore "broilink-backend/lib/users/store"
	"broilink-backend/lib/utils/testdb"
	"broilink-backend/models"
	dbmodels "broilink-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestListPaging(t *testing.T) {
	store := usersstore.NewInstance(testdb.New(t))
	for _, username := range []string{"budi", "andi", "rina"} {
		_, err := store.Create(dbmodels.User{Username: username, Name: username, Role: models.OwnerRole})
		require.NoError(t, err)
	}
	_, err := store.Create(dbmodels.User{Username: "admin", Name: "admin", Role: models.AdminRole})
	require.NoError(t, err)

	list, total, err := store.List(usersstore.Filter{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, list, 1)

	for _, page := range []int{3, 2305843009213693953} {
		list, total, err = store.List(usersstore.Filter{Page: page, Limit: 2})
		require.NoError(t, err)
		require.Equal(t, int64(3), total)
		require.Empty(t, list, page)
	}
}
