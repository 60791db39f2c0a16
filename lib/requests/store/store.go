package requestsstore

import (
	"strings"
	"time"

	"broilink-backend/lib/utils/helpers"
	"broilink-backend/models"
	dbmodels "broilink-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// ParseSort - nilai tidak dikenal dianggap newest
func ParseSort(value string) SortOrder {
	if SortOrder(strings.ToLower(strings.TrimSpace(value))) == SortOldest {
		return SortOldest
	}
	return SortNewest
}

type ListFilter struct {
	Sort        SortOrder
	Page        int
	Limit       int
	RequesterID string
	Status      models.RequestStatus
}

// Provider - penyimpanan permintaan. Ada dua implementasi: gorm (db) dan in-memory (fixture).
type Provider interface {
	Create(rec dbmodels.Request) (id string, err error)
	GetByID(id string) (*dbmodels.Request, error)
	List(filter ListFilter) (list []dbmodels.Request, rowCount int64, err error)
	CountByStatus(status models.RequestStatus) (int64, error)
	// UpdateStatus mengganti status dan mencatat riwayat dalam satu operasi
	UpdateStatus(id string, status models.RequestStatus, changedBy string, changedAt time.Time) (prev models.RequestStatus, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Request) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Request, error) {
	rec := dbmodels.Request{}
	err := i.db.
		Where("id = ?", id).
		Preload("StatusLogs", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("changed_at").Order("id")
		}).
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

func (i impl) List(filter ListFilter) (list []dbmodels.Request, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Request{})
	if filter.RequesterID != "" {
		tx = tx.Where("requester_id = ?", filter.RequesterID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	if filter.Sort == SortOldest {
		tx = tx.Order("created_at asc").Order("id asc")
	} else {
		tx = tx.Order("created_at desc").Order("id desc")
	}
	if filter.Limit > 0 {
		offset, ok := helpers.PageOffset(filter.Page, filter.Limit, rowCount)
		if !ok {
			return []dbmodels.Request{}, rowCount, nil
		}
		tx = tx.Offset(offset).Limit(filter.Limit)
	}
	list = []dbmodels.Request{}
	if err = tx.Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) CountByStatus(status models.RequestStatus) (count int64, err error) {
	err = i.db.Model(dbmodels.Request{}).
		Where("status = ?", status).
		Count(&count).
		Error
	return count, err
}

func (i impl) UpdateStatus(id string, status models.RequestStatus, changedBy string, changedAt time.Time) (prev models.RequestStatus, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		rec := dbmodels.Request{}
		err := tx.Where("id = ?", id).First(&rec).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NotFoundError("permintaan tidak ditemukan")
			}
			return err
		}
		prev = rec.Status
		err = tx.Model(&dbmodels.Request{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     status,
				"updated_at": changedAt,
			}).
			Error
		if err != nil {
			return err
		}
		logRec := dbmodels.RequestStatusLog{
			RequestID:  id,
			FromStatus: prev,
			ToStatus:   status,
			ChangedBy:  changedBy,
			ChangedAt:  changedAt,
		}
		return tx.Create(&logRec).Error
	})
	return prev, err
}
