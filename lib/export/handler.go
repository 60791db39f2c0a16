package exporthandler

import (
	"strings"
	"time"
	"unicode"

	"broilink-backend/config"
	"broilink-backend/lib/analytics"
	csvexport "broilink-backend/lib/export/csv"
	pdfexport "broilink-backend/lib/export/pdf"
	xlsexport "broilink-backend/lib/export/xls"
	"broilink-backend/lib/metrics"
	initchecker "broilink-backend/lib/utils/init-checker"
	"broilink-backend/models"
	exportapimodels "broilink-backend/models/api/export"
	dbmodels "broilink-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"

	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

var Headers = []string{
	"Tanggal",
	"Konsumsi Pakan (kg)",
	"Konsumsi Air (L)",
	"Rata-rata Bobot (kg)",
	"Jumlah Kematian (ekor)",
	"Suhu Rata-rata (°C)",
	"Kelembapan Rata-rata (%)",
	"Amonia Rata-rata (ppm)",
}

type Provider interface {
	Export(farm dbmodels.Farm, period models.Period, format string) (*exportapimodels.File, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"analyticsProvider", analytics.Instance,
	)
	Instance = NewInstance(analytics.Instance, config.Conf.Location())
}

func NewInstance(analyticsProvider analytics.Provider, loc *time.Location) Provider {
	return impl{
		analytics: analyticsProvider,
		loc:       loc,
		now:       time.Now,
	}
}

type impl struct {
	analytics analytics.Provider
	loc       *time.Location
	now       func() time.Time
}

func NormalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "xlsx", "excel", "xls":
		return FormatXLSX
	case "pdf":
		return FormatPDF
	default:
		return FormatCSV
	}
}

func (i impl) Export(farm dbmodels.Farm, period models.Period, format string) (*exportapimodels.File, error) {
	format = NormalizeFormat(format)
	rows, err := i.analytics.DailyRows(farm, period)
	if err != nil {
		return nil, err
	}
	now := i.now().In(i.loc)
	table := BuildTable(farm, period, rows, now)
	result := &exportapimodels.File{
		Name: FileName(farm.FarmName, now, format),
	}
	switch format {
	case FormatXLSX:
		result.ContentType = ContentTypeXLSX
		result.Body, err = xlsexport.Export(table)
	case FormatPDF:
		result.ContentType = ContentTypePDF
		result.Body, err = pdfexport.Export(table)
	default:
		result.ContentType = ContentTypeCSV
		result.Body, err = csvexport.Export(table)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "kesalahan membuat file %s", format)
	}
	metrics.Exports.WithLabelValues(format).Inc()
	log.WithFields(log.Fields{"farm_id": farm.ID, "format": format, "rows": len(rows)}).Info("laporan diekspor")
	return result, nil
}

func BuildTable(farm dbmodels.Farm, period models.Period, rows []analytics.DailyRow, now time.Time) exportapimodels.Table {
	table := exportapimodels.Table{
		Title:       "Laporan Kandang Broilink",
		FarmName:    farm.FarmName,
		PeriodLabel: period.ToHuman(),
		GeneratedAt: now,
		Headers:     Headers,
		Rows:        make([][]interface{}, 0, len(rows)),
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []interface{}{
			row.Report.ReportDate,
			row.Report.KonsumsiPakan,
			row.Report.KonsumsiAir,
			optional(row.Report.RataRataBobot),
			row.Report.JumlahKematian,
			optional(row.Temperature),
			optional(row.Humidity),
			optional(row.Ammonia),
		})
	}
	return table
}

// FileName: laporan_<kandang>_<yyyymmdd-hhmmss>.<ext>
func FileName(farmName string, now time.Time, format string) string {
	return "laporan_" + slug(farmName) + "_" + now.Format("20060102-150405") + "." + format
}

func slug(value string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore && b.Len() > 0 {
			b.WriteRune('_')
			underscore = true
		}
	}
	result := strings.TrimSuffix(b.String(), "_")
	if result == "" {
		return "kandang"
	}
	return result
}

func optional(value *float64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
