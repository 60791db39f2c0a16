package monitoringapimodels

import (
	"time"

	"broilink-backend/models"
	apimodels "broilink-backend/models/api"

	"github.com/pkg/errors"
)

type PeriodFilter struct {
	Period string `query:"period"`
}

func (r PeriodFilter) Validate() error {
	if _, ok := models.ParsePeriod(r.Period); !ok {
		return errors.New("periode tidak dikenal, gunakan 1day, 1week, 1month atau 6months")
	}
	return nil
}

func (r PeriodFilter) GetPeriod() models.Period {
	period, _ := models.ParsePeriod(r.Period)
	return period
}

type ExportFilter struct {
	PeriodFilter
	Format string `query:"format"` // csv | xlsx | pdf
}

func (r ExportFilter) Validate() error {
	switch r.Format {
	case "", "csv", "xlsx", "excel", "pdf":
	default:
		return errors.New("format ekspor tidak dikenal, gunakan csv, xlsx atau pdf")
	}
	return r.PeriodFilter.Validate()
}

// ReadingData - data dari perangkat IoT
type ReadingData struct {
	FarmID      string           `json:"farm_id"`
	Temperature apimodels.Number `json:"temperature"`
	Humidity    apimodels.Number `json:"humidity"`
	Ammonia     apimodels.Number `json:"ammonia"`
	RecordedAt  *time.Time       `json:"recorded_at"`
}

func (r ReadingData) Validate() error {
	if r.FarmID == "" {
		return errors.New("farm_id wajib diisi")
	}
	if err := r.Temperature.CheckRequired("suhu"); err != nil {
		return err
	}
	if err := r.Humidity.CheckRequired("kelembapan"); err != nil {
		return err
	}
	return r.Ammonia.CheckRequired("amonia")
}

type ReadingView struct {
	Temperature float64             `json:"temperature"`
	Humidity    float64             `json:"humidity"`
	Ammonia     float64             `json:"ammonia"`
	RecordedAt  string              `json:"recorded_at"`
	Status      models.SensorStatus `json:"status"`
	// status per parameter: suhu/kelembapan/amonia
	Details map[string]models.SensorStatus `json:"details"`
}

// SensorPoint - nilai nil berarti tidak ada data pada bucket tersebut
type SensorPoint struct {
	Label       string   `json:"label"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Ammonia     *float64 `json:"ammonia"`
}

type ManualPoint struct {
	Label          string   `json:"label"`
	KonsumsiPakan  *float64 `json:"konsumsi_pakan"`
	KonsumsiAir    *float64 `json:"konsumsi_air"`
	RataRataBobot  *float64 `json:"rata_rata_bobot"`
	JumlahKematian *float64 `json:"jumlah_kematian"`
}

type MonitoringView struct {
	FarmID      string              `json:"farm_id"`
	FarmName    string              `json:"farm_name"`
	Period      models.Period       `json:"period"`
	PeriodLabel string              `json:"period_label"`
	Current     *ReadingView        `json:"current"`
	Status      models.SensorStatus `json:"status"`
	Series      []SensorPoint       `json:"series"`
}

type AnalyticsView struct {
	FarmID      string        `json:"farm_id"`
	FarmName    string        `json:"farm_name"`
	Period      models.Period `json:"period"`
	PeriodLabel string        `json:"period_label"`
	Series      []ManualPoint `json:"series"`
	// ringkasan periode
	TotalPakan    float64  `json:"total_pakan"`
	TotalAir      float64  `json:"total_air"`
	TotalKematian int      `json:"total_kematian"`
	BobotTerakhir *float64 `json:"bobot_terakhir"`
	Mortalitas    *float64 `json:"mortalitas_persen"` // terhadap populasi awal
}
