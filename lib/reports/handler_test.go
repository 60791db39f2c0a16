package reportshandler

import (
	"encoding/json"
	"testing"
	"time"

	farmsstore "broilink-backend/lib/farms/store"
	usersstore "broilink-backend/lib/users/store"
	"broilink-backend/lib/utils/helpers"
	"broilink-backend/lib/utils/testdb"
	"broilink-backend/models"
	reportsapimodels "broilink-backend/models/api/reports"
	dbmodels "broilink-backend/models/db"

	"github.com/stretchr/testify/require"
)

func reportData(t *testing.T, body string) reportsapimodels.ManualReportData {
	data := reportsapimodels.ManualReportData{}
	require.NoError(t, json.Unmarshal([]byte(body), &data))
	require.NoError(t, data.Validate())
	return data
}

func TestReportsHandler(t *testing.T) {
	conn := testdb.New(t)
	users := usersstore.NewInstance(conn)
	ownerID, err := users.Create(dbmodels.User{Username: "budi", Name: "Budi", Role: models.OwnerRole})
	require.NoError(t, err)
	peternakID, err := users.Create(dbmodels.User{Username: "siti", Name: "Siti", Role: models.PeternakRole, OwnerID: helpers.StringPtr(ownerID)})
	require.NoError(t, err)
	idleID, err := users.Create(dbmodels.User{Username: "joko", Name: "Joko", Role: models.PeternakRole, OwnerID: helpers.StringPtr(ownerID)})
	require.NoError(t, err)
	farmID, err := farmsstore.NewInstance(conn).Create(dbmodels.Farm{OwnerID: ownerID, FarmName: "Kandang A", PeternakID: helpers.StringPtr(peternakID)})
	require.NoError(t, err)

	loc := time.FixedZone("WIB", 7*60*60)
	// 20 Nov 2025 23:30 WIB = 16:30 UTC, hari laporan tetap tanggal 20 di WIB
	now := time.Date(2025, 11, 20, 16, 30, 0, 0, time.UTC)
	provider := NewInstance(conn, loc).(impl)
	provider.now = func() time.Time { return now }

	var reportID string
	t.Run(`create today's report`, func(t *testing.T) {
		view, err := provider.Create(peternakID, reportData(t, `{"konsumsi_pakan":"120.5","konsumsi_air":300,"jumlah_kematian":"2"}`))
		require.NoError(t, err)
		require.Equal(t, "2025-11-20", view.ReportDate)
		require.Equal(t, farmID, view.FarmID)
		require.Equal(t, 120.5, view.KonsumsiPakan)
		require.Nil(t, view.RataRataBobot)
		require.Equal(t, 2, view.JumlahKematian)
		reportID = view.ID
	})
	t.Run(`second report on the same day`, func(t *testing.T) {
		_, err := provider.Create(peternakID, reportData(t, `{"konsumsi_pakan":1,"konsumsi_air":1,"jumlah_kematian":0}`))
		require.ErrorIs(t, err, models.ErrConflict)
	})
	t.Run(`report date must be today`, func(t *testing.T) {
		_, err := provider.Create(peternakID, reportData(t, `{"report_date":"2025-11-19","konsumsi_pakan":1,"konsumsi_air":1,"jumlah_kematian":0}`))
		require.ErrorIs(t, err, models.ErrValidation)
	})
	t.Run(`peternak without farm`, func(t *testing.T) {
		_, err := provider.Create(idleID, reportData(t, `{"konsumsi_pakan":1,"konsumsi_air":1,"jumlah_kematian":0}`))
		require.ErrorIs(t, err, models.ErrConflict)
	})
	t.Run(`update same day`, func(t *testing.T) {
		view, err := provider.Update(peternakID, reportID, reportData(t, `{"konsumsi_pakan":130,"konsumsi_air":310,"rata_rata_bobot":1.2,"jumlah_kematian":3}`))
		require.NoError(t, err)
		require.Equal(t, 130.0, view.KonsumsiPakan)
		require.Equal(t, 1.2, *view.RataRataBobot)

		_, err = provider.Update(idleID, reportID, reportData(t, `{"konsumsi_pakan":1,"konsumsi_air":1,"jumlah_kematian":0}`))
		require.ErrorIs(t, err, models.ErrConflict)

		tomorrow := provider
		tomorrow.now = func() time.Time { return now.Add(24 * time.Hour) }
		_, err = tomorrow.Update(peternakID, reportID, reportData(t, `{"konsumsi_pakan":1,"konsumsi_air":1,"jumlah_kematian":0}`))
		require.ErrorIs(t, err, models.ErrValidation)
	})
	t.Run(`list, date lookup and summary`, func(t *testing.T) {
		list, err := provider.List(peternakID, reportsapimodels.ReportListFilter{})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Kandang A", list[0].FarmName)

		view, err := provider.GetByDate(peternakID, "2025-11-20")
		require.NoError(t, err)
		require.Equal(t, reportID, view.ID)
		_, err = provider.GetByDate(peternakID, "2025-11-18")
		require.ErrorIs(t, err, models.ErrNotFound)
		_, err = provider.GetByDate(peternakID, "20-11-2025")
		require.ErrorIs(t, err, models.ErrValidation)

		summary, err := provider.Summary(farmID, 7)
		require.NoError(t, err)
		require.Equal(t, "2025-11-14", summary.DateFrom)
		require.True(t, summary.SudahLaporHari)
		require.Equal(t, 130.0, summary.TotalPakan)
		require.Equal(t, 3, summary.TotalKematian)

		recent, err := provider.Recent([]string{farmID}, 5)
		require.NoError(t, err)
		require.Len(t, recent, 1)
	})
}
