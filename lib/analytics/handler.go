package analytics

import (
	"time"

	"broilink-backend/config"
	"broilink-backend/db"
	farmconfighandler "broilink-backend/lib/farm-config"
	reportsstore "broilink-backend/lib/reports/store"
	sensorshandler "broilink-backend/lib/sensors"
	initchecker "broilink-backend/lib/utils/init-checker"
	"broilink-backend/models"
	monitoringapimodels "broilink-backend/models/api/monitoring"
	reportsapimodels "broilink-backend/models/api/reports"
	dbmodels "broilink-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Monitoring(farm dbmodels.Farm, period models.Period) (*monitoringapimodels.MonitoringView, error)
	Analytics(farm dbmodels.Farm, period models.Period) (*monitoringapimodels.AnalyticsView, error)
	// DailyRows - satu baris per laporan harian dalam periode, untuk ekspor
	DailyRows(farm dbmodels.Farm, period models.Period) ([]DailyRow, error)
	// CurrentReading - data sensor terakhir dengan status menurut ambang kandang
	CurrentReading(farmID string) (*monitoringapimodels.ReadingView, error)
}

type DailyRow struct {
	Report      dbmodels.ManualReport
	Temperature *float64
	Humidity    *float64
	Ammonia     *float64
}

var Instance Provider

func NewHandler() {
	instance := NewInstance(db.DB, sensorshandler.Instance, farmconfighandler.Instance, config.Conf.Location())
	initchecker.CheckInit(
		"sensorsProvider", sensorshandler.Instance,
		"farmConfigProvider", farmconfighandler.Instance,
	)
	Instance = instance
}

func NewInstance(DB *gorm.DB, sensors sensorshandler.Provider, farmConfig farmconfighandler.Provider, loc *time.Location) Provider {
	return impl{
		sensors:     sensors,
		farmConfig:  farmConfig,
		reportStore: reportsstore.NewInstance(DB),
		loc:         loc,
		now:         time.Now,
	}
}

type impl struct {
	sensors     sensorshandler.Provider
	farmConfig  farmconfighandler.Provider
	reportStore reportsstore.Provider
	loc         *time.Location
	now         func() time.Time
}

func (i impl) CurrentReading(farmID string) (*monitoringapimodels.ReadingView, error) {
	thresholds, err := i.farmConfig.Thresholds(farmID)
	if err != nil {
		return nil, err
	}
	return i.sensors.Current(farmID, thresholds)
}

func (i impl) Monitoring(farm dbmodels.Farm, period models.Period) (*monitoringapimodels.MonitoringView, error) {
	current, err := i.CurrentReading(farm.ID)
	if err != nil {
		return nil, err
	}
	buckets := Buckets(period, i.now(), i.loc)
	from, to := Range(buckets)
	readings, err := i.sensors.ListRange(farm.ID, from, to)
	if err != nil {
		return nil, err
	}
	return &monitoringapimodels.MonitoringView{
		FarmID:      farm.ID,
		FarmName:    farm.FarmName,
		Period:      period,
		PeriodLabel: period.ToHuman(),
		Current:     current,
		Status:      sensorshandler.StatusOf(current),
		Series:      SensorSeries(buckets, readings),
	}, nil
}

func (i impl) Analytics(farm dbmodels.Farm, period models.Period) (*monitoringapimodels.AnalyticsView, error) {
	buckets := Buckets(period, i.now(), i.loc)
	reports, err := i.reports(farm.ID, buckets)
	if err != nil {
		return nil, err
	}
	view := &monitoringapimodels.AnalyticsView{
		FarmID:      farm.ID,
		FarmName:    farm.FarmName,
		Period:      period,
		PeriodLabel: period.ToHuman(),
		Series:      ManualSeries(buckets, reports, i.loc),
	}
	for _, rec := range reports {
		view.TotalPakan += rec.KonsumsiPakan
		view.TotalAir += rec.KonsumsiAir
		view.TotalKematian += rec.JumlahKematian
		if rec.RataRataBobot != nil {
			bobot := *rec.RataRataBobot
			view.BobotTerakhir = &bobot
		}
	}
	if farm.InitialPopulation > 0 {
		mortality := float64(view.TotalKematian) / float64(farm.InitialPopulation) * 100
		view.Mortalitas = &mortality
	}
	return view, nil
}

func (i impl) DailyRows(farm dbmodels.Farm, period models.Period) ([]DailyRow, error) {
	buckets := Buckets(period, i.now(), i.loc)
	reports, err := i.reports(farm.ID, buckets)
	if err != nil {
		return nil, err
	}
	from, to := Range(buckets)
	readings, err := i.sensors.ListRange(farm.ID, from, to)
	if err != nil {
		return nil, err
	}
	byDay := map[string][]dbmodels.SensorReading{}
	for _, reading := range readings {
		day := reading.RecordedAt.In(i.loc).Format(reportsapimodels.DateLayout)
		byDay[day] = append(byDay[day], reading)
	}
	result := make([]DailyRow, 0, len(reports))
	for _, rec := range reports {
		row := DailyRow{Report: rec}
		if dayReadings := byDay[rec.ReportDate]; len(dayReadings) > 0 {
			point := averageReadings(dayReadings)
			row.Temperature, row.Humidity, row.Ammonia = point.Temperature, point.Humidity, point.Ammonia
		}
		result = append(result, row)
	}
	return result, nil
}

func (i impl) reports(farmID string, buckets []Bucket) ([]dbmodels.ManualReport, error) {
	from, to := Range(buckets)
	// laporan memakai tanggal, batas akhir inklusif
	return i.reportStore.ListRange([]string{farmID},
		from.Format(reportsapimodels.DateLayout),
		to.Add(-time.Nanosecond).Format(reportsapimodels.DateLayout))
}

func SensorSeries(buckets []Bucket, readings []dbmodels.SensorReading) []monitoringapimodels.SensorPoint {
	grouped := make([][]dbmodels.SensorReading, len(buckets))
	for _, reading := range readings {
		if idx := BucketIndex(buckets, reading.RecordedAt); idx >= 0 {
			grouped[idx] = append(grouped[idx], reading)
		}
	}
	result := make([]monitoringapimodels.SensorPoint, 0, len(buckets))
	for idx, bucket := range buckets {
		point := averageReadings(grouped[idx])
		point.Label = bucket.Label
		result = append(result, point)
	}
	return result
}

func ManualSeries(buckets []Bucket, reports []dbmodels.ManualReport, loc *time.Location) []monitoringapimodels.ManualPoint {
	grouped := make([][]dbmodels.ManualReport, len(buckets))
	for _, rec := range reports {
		day, err := time.ParseInLocation(reportsapimodels.DateLayout, rec.ReportDate, loc)
		if err != nil {
			continue
		}
		if idx := BucketIndex(buckets, day); idx >= 0 {
			grouped[idx] = append(grouped[idx], rec)
		}
	}
	result := make([]monitoringapimodels.ManualPoint, 0, len(buckets))
	for idx, bucket := range buckets {
		point := monitoringapimodels.ManualPoint{Label: bucket.Label}
		if len(grouped[idx]) > 0 {
			var pakan, air, kematian, bobotSum float64
			var bobotCount int
			for _, rec := range grouped[idx] {
				pakan += rec.KonsumsiPakan
				air += rec.KonsumsiAir
				kematian += float64(rec.JumlahKematian)
				if rec.RataRataBobot != nil {
					bobotSum += *rec.RataRataBobot
					bobotCount++
				}
			}
			point.KonsumsiPakan, point.KonsumsiAir, point.JumlahKematian = &pakan, &air, &kematian
			if bobotCount > 0 {
				bobot := bobotSum / float64(bobotCount)
				point.RataRataBobot = &bobot
			}
		}
		result = append(result, point)
	}
	return result
}

func averageReadings(readings []dbmodels.SensorReading) monitoringapimodels.SensorPoint {
	point := monitoringapimodels.SensorPoint{}
	if len(readings) == 0 {
		return point
	}
	var temperature, humidity, ammonia float64
	for _, reading := range readings {
		temperature += reading.Temperature
		humidity += reading.Humidity
		ammonia += reading.Ammonia
	}
	count := float64(len(readings))
	temperature, humidity, ammonia = temperature/count, humidity/count, ammonia/count
	point.Temperature, point.Humidity, point.Ammonia = &temperature, &humidity, &ammonia
	return point
}
