package exporthandler

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"broilink-backend/lib/analytics"
	"broilink-backend/models"
	monitoringapimodels "broilink-backend/models/api/monitoring"
	dbmodels "broilink-backend/models/db"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type analyticsStub struct {
	analytics.Provider
	rows []analytics.DailyRow
}

func (s analyticsStub) DailyRows(farm dbmodels.Farm, period models.Period) ([]analytics.DailyRow, error) {
	return s.rows, nil
}

func (s analyticsStub) CurrentReading(farmID string) (*monitoringapimodels.ReadingView, error) {
	return nil, nil
}

func floatPtr(value float64) *float64 {
	return &value
}

func TestExport(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2025, 11, 20, 14, 5, 9, 0, loc)
	stub := analyticsStub{rows: []analytics.DailyRow{
		{Report: dbmodels.ManualReport{ReportDate: "2025-11-19", KonsumsiPakan: 120.5, KonsumsiAir: 300, JumlahKematian: 2}},
		{
			Report:      dbmodels.ManualReport{ReportDate: "2025-11-20", KonsumsiPakan: 125, KonsumsiAir: 310, JumlahKematian: 1, RataRataBobot: floatPtr(1.25)},
			Temperature: floatPtr(30.5),
			Humidity:    floatPtr(65),
			Ammonia:     floatPtr(12),
		},
	}}
	provider := NewInstance(stub, loc).(impl)
	provider.now = func() time.Time { return now }
	farm := dbmodels.Farm{FarmName: "Kandang D"}

	t.Run(`file name`, func(t *testing.T) {
		require.Equal(t, "laporan_kandang_d_20251120-140509.csv", FileName("Kandang D", now, FormatCSV))
		require.Equal(t, "laporan_kandang_20251120-140509.pdf", FileName("  ", now, FormatPDF))
		require.Equal(t, FormatXLSX, NormalizeFormat("Excel"))
		require.Equal(t, FormatCSV, NormalizeFormat(""))
	})
	t.Run(`csv`, func(t *testing.T) {
		file, err := provider.Export(farm, models.Period1Week, "csv")
		require.NoError(t, err)
		require.Equal(t, ContentTypeCSV, file.ContentType)
		require.Equal(t, "laporan_kandang_d_20251120-140509.csv", file.Name)
		records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(file.Body), "\uFEFF"))).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		require.Equal(t, Headers, records[0])
		require.Equal(t, []string{"2025-11-19", "120.5", "300", "", "2", "", "", ""}, records[1])
		require.Equal(t, "1.25", records[2][3])
		require.Equal(t, "30.5", records[2][5])
	})
	t.Run(`xlsx`, func(t *testing.T) {
		file, err := provider.Export(farm, models.Period1Week, "xlsx")
		require.NoError(t, err)
		require.Equal(t, ContentTypeXLSX, file.ContentType)
		f, err := excelize.OpenReader(strings.NewReader(string(file.Body)))
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows(sheetNameForTest)
		require.NoError(t, err)
		require.Equal(t, "Kandang: Kandang D", rows[1][0])
		require.Equal(t, Headers[0], rows[4][0])
		require.Equal(t, "2025-11-19", rows[5][0])
	})
	t.Run(`pdf`, func(t *testing.T) {
		file, err := provider.Export(farm, models.Period1Week, "pdf")
		require.NoError(t, err)
		require.Equal(t, ContentTypePDF, file.ContentType)
		require.True(t, strings.HasPrefix(string(file.Body), "%PDF"))
	})
}

const sheetNameForTest = "Laporan"
