package requestshandler

import (
	"testing"
	"time"

	requestsstore "broilink-backend/lib/requests/store"
	usersstore "broilink-backend/lib/users/store"
	"broilink-backend/lib/utils/testdb"
	"broilink-backend/models"
	apimodels "broilink-backend/models/api"
	requestsapimodels "broilink-backend/models/api/requests"
	dbmodels "broilink-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestRequestsHandler(t *testing.T) {
	conn := testdb.New(t)
	users := usersstore.NewInstance(conn)
	ownerID, err := users.Create(dbmodels.User{
		Username:    "budi",
		Name:        "Budi Santoso",
		PhoneNumber: "+6281234567890",
		Role:        models.OwnerRole,
	})
	require.NoError(t, err)

	t.Run(`farm request flow on db store`, func(t *testing.T) {
		provider := NewInstance(requestsstore.NewInstance(conn), users, 6)
		before := time.Now()
		data := requestsapimodels.FarmRequestData{FarmName: "Kandang D", FarmArea: apimodels.NewNumber(150)}
		require.NoError(t, data.Validate())
		view, err := provider.CreateForUser(ownerID, data.ToCreate())
		require.NoError(t, err)
		require.Equal(t, models.RequestTypeAddFarm, view.RequestType)
		require.Equal(t, models.RequestStatusPending, view.Status)
		require.Equal(t, "amber", view.StatusColor)
		require.Equal(t, "Budi Santoso", view.Requester.Name)
		require.Equal(t, models.OwnerRole, view.Requester.Role)

		detail, err := provider.Get(view.ID)
		require.NoError(t, err)
		require.Contains(t, detail.Detail, "Kandang D")
		require.Contains(t, string(detail.Payload), `"farm_name":"Kandang D"`)
		created, err := time.Parse(time.RFC3339, detail.CreatedAt)
		require.NoError(t, err)
		require.False(t, created.Before(before.Truncate(time.Second)))
		require.Len(t, detail.StatusOptions, 4)

		own, err := provider.ListOwn(ownerID)
		require.NoError(t, err)
		require.Len(t, own, 1)

		detail, err = provider.UpdateStatus(view.ID, requestsapimodels.StatusUpdateData{Status: "Selesai"}, "admin-1")
		require.NoError(t, err)
		require.Equal(t, models.RequestStatusDone, detail.Status)
		require.Len(t, detail.StatusHistory, 1)
		require.Equal(t, models.RequestStatusPending, detail.StatusHistory[0].FromStatus)

		// transisi bebas: selesai -> menunggu diperbolehkan
		detail, err = provider.UpdateStatus(view.ID, requestsapimodels.StatusUpdateData{Status: "menunggu"}, "admin-1")
		require.NoError(t, err)
		require.Equal(t, models.RequestStatusPending, detail.Status)

		_, err = provider.UpdateStatus(view.ID, requestsapimodels.StatusUpdateData{Status: "batal"}, "admin-1")
		require.ErrorIs(t, err, models.ErrValidation)
		_, err = provider.UpdateStatus("missing", requestsapimodels.StatusUpdateData{Status: "selesai"}, "admin-1")
		require.ErrorIs(t, err, models.ErrNotFound)
	})
	t.Run(`guest request`, func(t *testing.T) {
		provider := NewInstance(requestsstore.NewMemoryInstance(), users, 6)
		data := requestsapimodels.Normalize(requestsapimodels.RawRequestPayload{
			Name:           "Rudi",
			Whatsapp:       "0812 1111 2222",
			Type:           "Masalah login",
			RequestContent: "Tidak bisa masuk",
		})
		require.NoError(t, data.ValidateGuest())
		view, err := provider.CreateGuest(data)
		require.NoError(t, err)
		require.Equal(t, models.GuestRole, view.Requester.Role)
		require.Equal(t, "081211112222", view.Requester.Phone)
		require.Empty(t, view.Requester.ID)
	})
	t.Run(`paging and sorting on fixtures`, func(t *testing.T) {
		provider := NewInstance(requestsstore.NewMemoryInstance(requestsstore.FixtureRequests()...), users, 2)
		newest, err := provider.List(requestsapimodels.ListFilter{})
		require.NoError(t, err)
		require.Equal(t, "newest", newest.Sort)
		require.Equal(t, 3, newest.TotalPages)
		require.Equal(t, int64(5), newest.Total)
		require.Equal(t, "Budi Santoso", newest.Requests[0].Requester.Name)

		oldest, err := provider.List(requestsapimodels.ListFilter{Sort: "oldest", Page: 3})
		require.NoError(t, err)
		require.Len(t, oldest.Requests, 1)
		require.Equal(t, "Budi Santoso", oldest.Requests[0].Requester.Name)

		beyond, err := provider.List(requestsapimodels.ListFilter{Page: 9})
		require.NoError(t, err)
		require.Empty(t, beyond.Requests)

		pending, err := provider.CountPending()
		require.NoError(t, err)
		require.Equal(t, int64(1), pending)

		recent, err := provider.Recent(3)
		require.NoError(t, err)
		require.Len(t, recent, 3)
	})
	t.Run(`unknown stored status renders gray`, func(t *testing.T) {
		view := ToView(dbmodels.Request{Status: "arsip"})
		require.Equal(t, models.RequestStatusDefaultColor, view.StatusColor)
	})
}

func TestListPagingOnBothStores(t *testing.T) {
	stores := map[string]func(t *testing.T) requestsstore.Provider{
		"memory": func(t *testing.T) requestsstore.Provider {
			return requestsstore.NewMemoryInstance(requestsstore.FixtureRequests()...)
		},
		"db": func(t *testing.T) requestsstore.Provider {
			store := requestsstore.NewInstance(testdb.New(t))
			for _, rec := range requestsstore.FixtureRequests() {
				_, err := store.Create(rec)
				require.NoError(t, err)
			}
			return store
		},
	}
	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			provider := NewInstance(newStore(t), nil, 2)

			newest, err := provider.List(requestsapimodels.ListFilter{})
			require.NoError(t, err)
			require.Equal(t, int64(5), newest.Total)
			require.Equal(t, 3, newest.TotalPages)
			require.Len(t, newest.Requests, 2)
			require.Equal(t, "Budi Santoso", newest.Requests[0].Requester.Name)
			require.Equal(t, "Siti Aminah", newest.Requests[1].Requester.Name)

			oldest, err := provider.List(requestsapimodels.ListFilter{Sort: "oldest"})
			require.NoError(t, err)
			require.Equal(t, "Rudi Hartono", oldest.Requests[0].Requester.Name)
			require.Equal(t, "Dewi Lestari", oldest.Requests[1].Requester.Name)

			last, err := provider.List(requestsapimodels.ListFilter{Sort: "oldest", Page: 3})
			require.NoError(t, err)
			require.Len(t, last.Requests, 1)
			require.Equal(t, "Budi Santoso", last.Requests[0].Requester.Name)

			for _, page := range []int{4, 9, 2305843009213693953} {
				beyond, err := provider.List(requestsapimodels.ListFilter{Page: page})
				require.NoError(t, err, page)
				require.Empty(t, beyond.Requests, page)
				require.Equal(t, int64(5), beyond.Total)
			}
		})
	}
}
