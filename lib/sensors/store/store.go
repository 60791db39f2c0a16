package sensorsstore

import (
	"time"

	dbmodels "broilink-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.SensorReading) (string, error)
	GetLatest(farmID string) (*dbmodels.SensorReading, error)
	ListRange(farmID string, from, to time.Time) ([]dbmodels.SensorReading, error)
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

// Create - RecordedAt selalu disimpan dalam UTC
func (i impl) Create(rec dbmodels.SensorReading) (string, error) {
	rec.RecordedAt = rec.RecordedAt.UTC()
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetLatest(farmID string) (*dbmodels.SensorReading, error) {
	rec := dbmodels.SensorReading{}
	err := i.db.
		Where("farm_id = ?", farmID).
		Order("recorded_at desc").
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

// ListRange - rentang [from, to)
func (i impl) ListRange(farmID string, from, to time.Time) (list []dbmodels.SensorReading, err error) {
	list = []dbmodels.SensorReading{}
	err = i.db.
		Where("farm_id = ?", farmID).
		Where("recorded_at >= ?", from.UTC()).
		Where("recorded_at < ?", to.UTC()).
		Order("recorded_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteByFarm(farmID string) error {
	return i.db.
		Where("farm_id = ?", farmID).
		Delete(&dbmodels.SensorReading{}).
		Error
}
