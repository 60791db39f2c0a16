package reportsapimodels

import (
	"time"

	apimodels "broilink-backend/models/api"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

// ManualReportData - laporan harian peternak. Angka boleh dikirim sebagai number atau string.
type ManualReportData struct {
	ReportDate     string           `json:"report_date"` // YYYY-MM-DD, opsional
	KonsumsiPakan  apimodels.Number `json:"konsumsi_pakan"`
	KonsumsiAir    apimodels.Number `json:"konsumsi_air"`
	RataRataBobot  apimodels.Number `json:"rata_rata_bobot"`
	JumlahKematian apimodels.Number `json:"jumlah_kematian"`
}

func (r ManualReportData) Validate() error {
	if r.ReportDate != "" {
		if _, err := time.Parse(DateLayout, r.ReportDate); err != nil {
			return errors.New("format tanggal laporan harus YYYY-MM-DD")
		}
	}
	if err := r.KonsumsiPakan.CheckRequired("konsumsi pakan"); err != nil {
		return err
	}
	if err := r.KonsumsiAir.CheckRequired("konsumsi air"); err != nil {
		return err
	}
	if err := r.RataRataBobot.CheckOptional("rata-rata bobot"); err != nil {
		return err
	}
	return r.JumlahKematian.CheckInteger("jumlah kematian")
}

type ReportListFilter struct {
	Days int `query:"days"`
}

func (r ReportListFilter) GetDays() int {
	if r.Days <= 0 {
		return 7
	}
	if r.Days > 180 {
		return 180
	}
	return r.Days
}

type ManualReportView struct {
	ID             string   `json:"id"`
	FarmID         string   `json:"farm_id"`
	FarmName       string   `json:"farm_name,omitempty"`
	ReportDate     string   `json:"report_date"`
	KonsumsiPakan  float64  `json:"konsumsi_pakan"`
	KonsumsiAir    float64  `json:"konsumsi_air"`
	RataRataBobot  *float64 `json:"rata_rata_bobot"`
	JumlahKematian int      `json:"jumlah_kematian"`
	CreatedAt      string   `json:"created_at"`
}

type WeeklySummary struct {
	DateFrom       string   `json:"date_from"`
	DateTo         string   `json:"date_to"`
	TotalPakan     float64  `json:"total_pakan"`
	TotalAir       float64  `json:"total_air"`
	RataRataBobot  *float64 `json:"rata_rata_bobot"`
	TotalKematian  int      `json:"total_kematian"`
	JumlahLaporan  int      `json:"jumlah_laporan"`
	SudahLaporHari bool     `json:"sudah_lapor_hari_ini"`
}
