package farmconfigstore

import (
	dbmodels "broilink-backend/models/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	GetValues(farmID string) (map[string]float64, error)
	SaveValues(farmID string, values map[string]float64) error
	GetDefault(farmID string) (map[string]float64, error)
	HasDefault(farmID string) (bool, error)
	// SaveDefault tidak menimpa snapshot yang sudah ada
	SaveDefault(farmID string, values map[string]float64) error
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

func (i impl) GetValues(farmID string) (map[string]float64, error) {
	list := []dbmodels.FarmConfigValue{}
	err := i.db.
		Where("farm_id = ?", farmID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]float64, len(list))
	for _, rec := range list {
		result[rec.ParamKey] = rec.Value
	}
	return result, nil
}

func (i impl) SaveValues(farmID string, values map[string]float64) error {
	if len(values) == 0 {
		return nil
	}
	list := make([]dbmodels.FarmConfigValue, 0, len(values))
	for key, value := range values {
		list = append(list, dbmodels.FarmConfigValue{
			FarmID:   farmID,
			ParamKey: key,
			Value:    value,
		})
	}
	return i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "farm_id"}, {Name: "param_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&list).
		Error
}

func (i impl) GetDefault(farmID string) (map[string]float64, error) {
	list := []dbmodels.FarmConfigDefault{}
	err := i.db.
		Where("farm_id = ?", farmID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]float64, len(list))
	for _, rec := range list {
		result[rec.ParamKey] = rec.Value
	}
	return result, nil
}

func (i impl) HasDefault(farmID string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.FarmConfigDefault{}).
		Where("farm_id = ?", farmID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) SaveDefault(farmID string, values map[string]float64) error {
	if len(values) == 0 {
		return nil
	}
	list := make([]dbmodels.FarmConfigDefault, 0, len(values))
	for key, value := range values {
		list = append(list, dbmodels.FarmConfigDefault{
			FarmID:   farmID,
			ParamKey: key,
			Value:    value,
		})
	}
	return i.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&list).
		Error
}

func (i impl) DeleteByFarm(farmID string) error {
	if err := i.db.Where("farm_id = ?", farmID).Delete(&dbmodels.FarmConfigValue{}).Error; err != nil {
		return err
	}
	return i.db.Where("farm_id = ?", farmID).Delete(&dbmodels.FarmConfigDefault{}).Error
}
