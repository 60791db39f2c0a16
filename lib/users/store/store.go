package usersstore

import (
	"strings"

	"broilink-backend/lib/utils/helpers"
	"broilink-backend/models"
	dbmodels "broilink-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Filter struct {
	Search  string
	Role    models.UserRole
	OwnerID string
	Page    int
	Limit   int
}

type Provider interface {
	Create(rec dbmodels.User) (string, error)
	Update(userID string, updMap map[string]interface{}) error
	Delete(userID string) error
	GetByID(userID string) (rec *dbmodels.User, err error)
	FindByUsername(username string) (rec *dbmodels.User, err error)
	ExistByUsername(username string) (bool, error)
	List(filter Filter) (list []dbmodels.User, rowCount int64, err error)
	CountByRole(role models.UserRole) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (string, error) {
	err := i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", userID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NotFoundError("pengguna tidak ditemukan")
	}
	return nil
}

func (i impl) Delete(userID string) error {
	return i.db.
		Where("id = ?", userID).
		Delete(&dbmodels.User{}).
		Error
}

func (i impl) GetByID(userID string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("id = ?", userID).
		Preload("Owner").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) FindByUsername(username string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("LOWER(username) = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ExistByUsername(username string) (bool, error) {
	rec, err := i.FindByUsername(username)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}

func (i impl) List(filter Filter) (list []dbmodels.User, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.User{})
	if filter.Role != "" {
		tx = tx.Where("role = ?", filter.Role)
	} else {
		tx = tx.Where("role <> ?", models.AdminRole)
	}
	if filter.OwnerID != "" {
		tx = tx.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(filter.Search)) + "%"
		tx = tx.Where("(LOWER(name) like ? or LOWER(username) like ? or LOWER(email) like ?)", search, search, search)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	if filter.Limit > 0 {
		offset, ok := helpers.PageOffset(filter.Page, filter.Limit, rowCount)
		if !ok {
			return []dbmodels.User{}, rowCount, nil
		}
		tx = tx.Offset(offset).Limit(filter.Limit)
	}
	list = []dbmodels.User{}
	err = tx.
		Preload("Owner").
		Order("created_at desc").
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) CountByRole(role models.UserRole) (count int64, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("role = ?", role).
		Count(&count).
		Error
	return count, err
}
