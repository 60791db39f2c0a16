package reportshandler

import (
	"time"

	"broilink-backend/config"
	"broilink-backend/db"
	farmsstore "broilink-backend/lib/farms/store"
	"broilink-backend/lib/metrics"
	reportsstore "broilink-backend/lib/reports/store"
	"broilink-backend/lib/utils/helpers"
	"broilink-backend/models"
	reportsapimodels "broilink-backend/models/api/reports"
	dbmodels "broilink-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	noFarmMsg        = "Anda belum ditugaskan ke kandang manapun"
	duplicateMsg     = "Laporan hari ini sudah dikirim, silakan ubah laporan yang ada"
	notTodayMsg      = "Laporan hanya dapat diisi untuk hari ini"
	editNotTodayMsg  = "Hanya laporan hari ini yang dapat diubah"
	reportMissingMsg = "Laporan tidak ditemukan"
)

type Provider interface {
	Create(peternakID string, data reportsapimodels.ManualReportData) (*reportsapimodels.ManualReportView, error)
	Update(peternakID, id string, data reportsapimodels.ManualReportData) (*reportsapimodels.ManualReportView, error)
	List(peternakID string, filter reportsapimodels.ReportListFilter) ([]reportsapimodels.ManualReportView, error)
	GetByDate(peternakID, date string) (*reportsapimodels.ManualReportView, error)
	Summary(farmID string, days int) (*reportsapimodels.WeeklySummary, error)
	Recent(farmIDs []string, limit int) ([]reportsapimodels.ManualReportView, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, config.Conf.Location())
}

func NewInstance(DB *gorm.DB, loc *time.Location) Provider {
	return impl{
		db:          DB,
		reportStore: reportsstore.NewInstance(DB),
		farmStore:   farmsstore.NewInstance(DB),
		loc:         loc,
		now:         time.Now,
	}
}

type impl struct {
	db          *gorm.DB
	reportStore reportsstore.Provider
	farmStore   farmsstore.Provider
	loc         *time.Location
	now         func() time.Time
}

func (i impl) today() string {
	return i.now().In(i.loc).Format(reportsapimodels.DateLayout)
}

func (i impl) Create(peternakID string, data reportsapimodels.ManualReportData) (view *reportsapimodels.ManualReportView, err error) {
	logger := log.WithField("peternak_id", peternakID)
	today := i.today()
	if data.ReportDate != "" && data.ReportDate != today {
		return nil, models.ValidationError(notTodayMsg)
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		farm, err := assignedFarm(farmsstore.NewInstance(tx), peternakID)
		if err != nil {
			return err
		}
		reportStore := reportsstore.NewInstance(tx)
		exist, err := reportStore.GetByDate(farm.ID, today)
		if err != nil {
			return err
		}
		if exist != nil {
			return models.ConflictError(duplicateMsg)
		}
		rec := dbmodels.ManualReport{
			FarmID:         farm.ID,
			PeternakID:     peternakID,
			ReportDate:     today,
			KonsumsiPakan:  data.KonsumsiPakan.Float(),
			KonsumsiAir:    data.KonsumsiAir.Float(),
			RataRataBobot:  data.RataRataBobot.Ptr(),
			JumlahKematian: int(data.JumlahKematian.Float()),
		}
		rec.ID, err = reportStore.Create(rec)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.ConflictError(duplicateMsg)
			}
			return err
		}
		result := ToView(rec)
		result.FarmName = farm.FarmName
		view = &result
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ManualReports.WithLabelValues(metrics.ReportCreated).Inc()
	logger.WithFields(log.Fields{"farm_id": view.FarmID, "report_date": today}).Info("laporan harian disimpan")
	return view, nil
}

func (i impl) Update(peternakID, id string, data reportsapimodels.ManualReportData) (view *reportsapimodels.ManualReportView, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		farm, err := assignedFarm(farmsstore.NewInstance(tx), peternakID)
		if err != nil {
			return err
		}
		reportStore := reportsstore.NewInstance(tx)
		rec, err := reportStore.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NotFoundError(reportMissingMsg)
		}
		if rec.FarmID != farm.ID {
			return models.ForbiddenError("Laporan ini bukan milik kandang Anda")
		}
		if rec.ReportDate != i.today() || (data.ReportDate != "" && data.ReportDate != rec.ReportDate) {
			return models.ValidationError(editNotTodayMsg)
		}
		rec.KonsumsiPakan = data.KonsumsiPakan.Float()
		rec.KonsumsiAir = data.KonsumsiAir.Float()
		rec.RataRataBobot = data.RataRataBobot.Ptr()
		rec.JumlahKematian = int(data.JumlahKematian.Float())
		err = reportStore.Update(id, map[string]interface{}{
			"konsumsi_pakan":  rec.KonsumsiPakan,
			"konsumsi_air":    rec.KonsumsiAir,
			"rata_rata_bobot": rec.RataRataBobot,
			"jumlah_kematian": rec.JumlahKematian,
		})
		if err != nil {
			return err
		}
		result := ToView(*rec)
		result.FarmName = farm.FarmName
		view = &result
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ManualReports.WithLabelValues(metrics.ReportUpdated).Inc()
	log.WithFields(log.Fields{"peternak_id": peternakID, "report_id": id}).Info("laporan harian diubah")
	return view, nil
}

func (i impl) List(peternakID string, filter reportsapimodels.ReportListFilter) ([]reportsapimodels.ManualReportView, error) {
	farm, err := assignedFarm(i.farmStore, peternakID)
	if err != nil {
		return nil, err
	}
	to := i.now().In(i.loc)
	from := to.AddDate(0, 0, -(filter.GetDays() - 1))
	list, err := i.reportStore.ListRange([]string{farm.ID}, from.Format(reportsapimodels.DateLayout), to.Format(reportsapimodels.DateLayout))
	if err != nil {
		return nil, err
	}
	result := make([]reportsapimodels.ManualReportView, 0, len(list))
	// terbaru di atas
	for idx := len(list) - 1; idx >= 0; idx-- {
		view := ToView(list[idx])
		view.FarmName = farm.FarmName
		result = append(result, view)
	}
	return result, nil
}

func (i impl) GetByDate(peternakID, date string) (*reportsapimodels.ManualReportView, error) {
	if _, err := time.Parse(reportsapimodels.DateLayout, date); err != nil {
		return nil, models.ValidationError("format tanggal harus YYYY-MM-DD")
	}
	farm, err := assignedFarm(i.farmStore, peternakID)
	if err != nil {
		return nil, err
	}
	rec, err := i.reportStore.GetByDate(farm.ID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NotFoundError(reportMissingMsg)
	}
	view := ToView(*rec)
	view.FarmName = farm.FarmName
	return &view, nil
}

func (i impl) Summary(farmID string, days int) (*reportsapimodels.WeeklySummary, error) {
	if days <= 0 {
		days = 7
	}
	to := i.now().In(i.loc)
	from := to.AddDate(0, 0, -(days - 1))
	result := &reportsapimodels.WeeklySummary{
		DateFrom: from.Format(reportsapimodels.DateLayout),
		DateTo:   to.Format(reportsapimodels.DateLayout),
	}
	list, err := i.reportStore.ListRange([]string{farmID}, result.DateFrom, result.DateTo)
	if err != nil {
		return nil, err
	}
	var bobotSum float64
	var bobotCount int
	for _, rec := range list {
		result.TotalPakan += rec.KonsumsiPakan
		result.TotalAir += rec.KonsumsiAir
		result.TotalKematian += rec.JumlahKematian
		if rec.RataRataBobot != nil {
			bobotSum += *rec.RataRataBobot
			bobotCount++
		}
		if rec.ReportDate == result.DateTo {
			result.SudahLaporHari = true
		}
	}
	result.JumlahLaporan = len(list)
	if bobotCount > 0 {
		avg := bobotSum / float64(bobotCount)
		result.RataRataBobot = &avg
	}
	return result, nil
}

func (i impl) Recent(farmIDs []string, limit int) ([]reportsapimodels.ManualReportView, error) {
	list, err := i.reportStore.ListRecent(farmIDs, limit)
	if err != nil {
		return nil, err
	}
	result := make([]reportsapimodels.ManualReportView, 0, len(list))
	for _, rec := range list {
		result = append(result, ToView(rec))
	}
	return result, nil
}

func assignedFarm(farmStore farmsstore.Provider, peternakID string) (*dbmodels.Farm, error) {
	list, err := farmStore.List(farmsstore.Filter{PeternakID: peternakID})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, models.ConflictError(noFarmMsg)
	}
	return &list[0], nil
}

func ToView(rec dbmodels.ManualReport) reportsapimodels.ManualReportView {
	return reportsapimodels.ManualReportView{
		ID:             rec.ID,
		FarmID:         rec.FarmID,
		ReportDate:     rec.ReportDate,
		KonsumsiPakan:  rec.KonsumsiPakan,
		KonsumsiAir:    rec.KonsumsiAir,
		RataRataBobot:  rec.RataRataBobot,
		JumlahKematian: rec.JumlahKematian,
		CreatedAt:      helpers.FormatTime(rec.CreatedAt),
	}
}
