package reportsstore

import (
	dbmodels "broilink-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ManualReport) (string, error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.ManualReport, error)
	GetByDate(farmID, reportDate string) (*dbmodels.ManualReport, error)
	// ListRange - dateFrom/dateTo inklusif, format YYYY-MM-DD
	ListRange(farmIDs []string, dateFrom, dateTo string) ([]dbmodels.ManualReport, error)
	ListRecent(farmIDs []string, limit int) ([]dbmodels.ManualReport, error)
	DeleteByFarm(farmID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ManualReport) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.ManualReport{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.ManualReport, error) {
	rec := dbmodels.ManualReport{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByDate(farmID, reportDate string) (*dbmodels.ManualReport, error) {
	rec := dbmodels.ManualReport{}
	err := i.db.
		Where("farm_id = ?", farmID).
		Where("report_date = ?", reportDate).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListRange(farmIDs []string, dateFrom, dateTo string) (list []dbmodels.ManualReport, err error) {
	list = []dbmodels.ManualReport{}
	if len(farmIDs) == 0 {
		return list, nil
	}
	err = i.db.
		Where("farm_id in (?)", farmIDs).
		Where("report_date >= ?", dateFrom).
		Where("report_date <= ?", dateTo).
		Order("report_date").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListRecent(farmIDs []string, limit int) (list []dbmodels.ManualReport, err error) {
	list = []dbmodels.ManualReport{}
	if len(farmIDs) == 0 {
		return list, nil
	}
	tx := i.db.
		Where("farm_id in (?)", farmIDs).
		Order("report_date desc").
		Order("created_at desc")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err = tx.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteByFarm(farmID string) error {
	return i.db.
		Where("farm_id = ?", farmID).
		Delete(&dbmodels.ManualReport{}).
		Error
}
