package sensorshandler

import (
	"time"

	"broilink-backend/db"
	farmsstore "broilink-backend/lib/farms/store"
	"broilink-backend/lib/metrics"
	sensorsstore "broilink-backend/lib/sensors/store"
	"broilink-backend/lib/utils/helpers"
	"broilink-backend/models"
	monitoringapimodels "broilink-backend/models/api/monitoring"
	dbmodels "broilink-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	ParamSuhu       = "suhu"
	ParamKelembapan = "kelembapan"
	ParamAmonia     = "amonia"
)

type Provider interface {
	Ingest(data monitoringapimodels.ReadingData) (id string, err error)
	// Current - data terakhir beserta status menurut ambang kandang; nil bila belum ada data
	Current(farmID string, thresholds map[string]float64) (*monitoringapimodels.ReadingView, error)
	ListRange(farmID string, from, to time.Time) ([]dbmodels.SensorReading, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		sensorStore: sensorsstore.NewInstance(DB),
		farmStore:   farmsstore.NewInstance(DB),
		now:         time.Now,
	}
}

type impl struct {
	sensorStore sensorsstore.Provider
	farmStore   farmsstore.Provider
	now         func() time.Time
}

func (i impl) Ingest(data monitoringapimodels.ReadingData) (string, error) {
	farm, err := i.farmStore.GetByID(data.FarmID)
	if err != nil {
		return "", err
	}
	if farm == nil {
		return "", models.NotFoundError("Kandang tidak ditemukan")
	}
	recordedAt := i.now()
	if data.RecordedAt != nil && !data.RecordedAt.IsZero() {
		recordedAt = *data.RecordedAt
	}
	id, err := i.sensorStore.Create(dbmodels.SensorReading{
		FarmID:      data.FarmID,
		Temperature: data.Temperature.Float(),
		Humidity:    data.Humidity.Float(),
		Ammonia:     data.Ammonia.Float(),
		RecordedAt:  recordedAt,
	})
	if err != nil {
		return "", err
	}
	metrics.SensorReadings.Inc()
	log.WithFields(log.Fields{"farm_id": data.FarmID, "reading_id": id}).Debug("data sensor diterima")
	return id, nil
}

func (i impl) Current(farmID string, thresholds map[string]float64) (*monitoringapimodels.ReadingView, error) {
	rec, err := i.sensorStore.GetLatest(farmID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := ToView(*rec, thresholds)
	return &view, nil
}

func (i impl) ListRange(farmID string, from, to time.Time) ([]dbmodels.SensorReading, error) {
	return i.sensorStore.ListRange(farmID, from, to)
}

func ToView(rec dbmodels.SensorReading, thresholds map[string]float64) monitoringapimodels.ReadingView {
	status, details := Evaluate(rec, thresholds)
	return monitoringapimodels.ReadingView{
		Temperature: rec.Temperature,
		Humidity:    rec.Humidity,
		Ammonia:     rec.Ammonia,
		RecordedAt:  helpers.FormatTime(rec.RecordedAt),
		Status:      status,
		Details:     details,
	}
}

// Evaluate: di luar batas kritis = Bahaya, di luar rentang normal = Waspada
func Evaluate(rec dbmodels.SensorReading, thresholds map[string]float64) (models.SensorStatus, map[string]models.SensorStatus) {
	details := map[string]models.SensorStatus{
		ParamSuhu: band(rec.Temperature, thresholds,
			models.ConfigSuhuKritisRendah, models.ConfigSuhuNormalMin, models.ConfigSuhuNormalMax, models.ConfigSuhuKritisTinggi),
		ParamKelembapan: band(rec.Humidity, thresholds,
			models.ConfigKelembapanKritisRendah, models.ConfigKelembapanNormalMin, models.ConfigKelembapanNormalMax, models.ConfigKelembapanKritisTinggi),
		ParamAmonia: upperBound(rec.Ammonia, thresholds, models.ConfigAmoniaMax, models.ConfigAmoniaKritis),
	}
	status := models.SensorStatusNormal
	for _, detail := range details {
		status = status.Worse(detail)
	}
	return status, details
}

// StatusOf - status kandang dari data terakhir; nil berarti belum ada data
func StatusOf(view *monitoringapimodels.ReadingView) models.SensorStatus {
	if view == nil {
		return models.SensorStatusNoData
	}
	return view.Status
}

func threshold(thresholds map[string]float64, key string) float64 {
	if value, ok := thresholds[key]; ok {
		return value
	}
	return models.BaselineFarmConfig[key]
}

func band(value float64, thresholds map[string]float64, criticalLow, normalMin, normalMax, criticalHigh string) models.SensorStatus {
	switch {
	case value < threshold(thresholds, criticalLow) || value > threshold(thresholds, criticalHigh):
		return models.SensorStatusDanger
	case value < threshold(thresholds, normalMin) || value > threshold(thresholds, normalMax):
		return models.SensorStatusWarning
	}
	return models.SensorStatusNormal
}

func upperBound(value float64, thresholds map[string]float64, warning, critical string) models.SensorStatus {
	switch {
	case value > threshold(thresholds, critical):
		return models.SensorStatusDanger
	case value > threshold(thresholds, warning):
		return models.SensorStatusWarning
	}
	return models.SensorStatusNormal
}
