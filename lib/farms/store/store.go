package farmsstore

import (
	"strings"

	"broilink-backend/models"
	dbmodels "broilink-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Filter struct {
	OwnerID    string
	PeternakID string
	Search     string
}

type Provider interface {
	Create(rec dbmodels.Farm) (string, error)
	Update(farmID string, updMap map[string]interface{}) error
	Delete(farmID string) error
	GetByID(farmID string) (*dbmodels.Farm, error)
	List(filter Filter) ([]dbmodels.Farm, error)
	ClearPeternak(peternakID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Farm) (string, error) {
	err := i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(farmID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Farm{}).
		Where("id = ?", farmID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NotFoundError("kandang tidak ditemukan")
	}
	return nil
}

func (i impl) Delete(farmID string) error {
	return i.db.
		Where("id = ?", farmID).
		Delete(&dbmodels.Farm{}).
		Error
}

func (i impl) GetByID(farmID string) (*dbmodels.Farm, error) {
	rec := dbmodels.Farm{}
	err := i.db.
		Where("id = ?", farmID).
		Preload(clause.Associations).
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

func (i impl) List(filter Filter) (list []dbmodels.Farm, err error) {
	list = []dbmodels.Farm{}
	tx := i.db.Model(dbmodels.Farm{})
	if filter.OwnerID != "" {
		tx = tx.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.PeternakID != "" {
		tx = tx.Where("peternak_id = ?", filter.PeternakID)
	}
	if filter.Search != "" {
		tx = tx.Where("LOWER(farm_name) like ?", "%"+strings.ToLower(strings.TrimSpace(filter.Search))+"%")
	}
	err = tx.
		Preload(clause.Associations).
		Order("farm_name").
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ClearPeternak melepas peternak dari semua kandang (dipakai saat akun dihapus)
func (i impl) ClearPeternak(peternakID string) error {
	return i.db.
		Model(&dbmodels.Farm{}).
		Where("peternak_id = ?", peternakID).
		Update("peternak_id", nil).
		Error
}
