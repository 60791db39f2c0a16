package usershandler

import (
	"strings"
	"time"

	"broilink-backend/db"
	farmsstore "broilink-backend/lib/farms/store"
	usersstore "broilink-backend/lib/users/store"
	authutils "broilink-backend/lib/utils/auth-utils"
	"broilink-backend/lib/utils/helpers"
	"broilink-backend/models"
	apimodels "broilink-backend/models/api"
	usersapimodels "broilink-backend/models/api/users"
	dbmodels "broilink-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultPageSize = 10

type Provider interface {
	Create(data usersapimodels.UserCreateData) (id string, err error)
	Update(id string, data usersapimodels.UserEditData) error
	Delete(id string) error
	Get(id string) (*usersapimodels.UserView, error)
	List(filter usersapimodels.UserFilter) (*usersapimodels.UserListResponse, error)
	Owners() ([]usersapimodels.ShortUserView, error)
	Peternaks(ownerID string) ([]usersapimodels.ShortUserView, error)
	CountByRole(role models.UserRole) (int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		db:        DB,
		userStore: usersstore.NewInstance(DB),
	}
}

type impl struct {
	db        *gorm.DB
	userStore usersstore.Provider
}

func (i impl) Create(data usersapimodels.UserCreateData) (id string, err error) {
	logger := log.WithField("username", data.Username)
	err = i.db.Transaction(func(tx *gorm.DB) error {
		userStore := usersstore.NewInstance(tx)
		exist, err := userStore.ExistByUsername(data.Username)
		if err != nil {
			return err
		}
		if exist {
			return models.ConflictError("Username sudah digunakan")
		}
		rec := dbmodels.User{
			Username:    strings.TrimSpace(data.Username),
			Name:        strings.TrimSpace(data.Name),
			Email:       strings.TrimSpace(data.Email),
			PhoneNumber: usersapimodels.NormalizePhone(data.PhoneNumber),
			Role:        data.Role,
			Status:      models.UserActiveStatus,
		}
		if data.Status != "" {
			rec.Status = models.UserStatus(data.Status)
		}
		if data.Role == models.PeternakRole {
			if err = checkOwner(userStore, data.OwnerID); err != nil {
				return err
			}
			rec.OwnerID = helpers.StringPtr(data.OwnerID)
		}
		if rec.Password, err = authutils.HashPassword(data.Password); err != nil {
			return err
		}
		if id, err = userStore.Create(rec); err != nil {
			return err
		}
		if data.Role == models.OwnerRole && strings.TrimSpace(data.FarmName) != "" {
			_, err = farmsstore.NewInstance(tx).Create(dbmodels.Farm{
				OwnerID:  id,
				FarmName: strings.TrimSpace(data.FarmName),
				Location: strings.TrimSpace(data.Location),
				FarmArea: data.FarmArea.Float(),
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	logger.WithField("user_id", id).Info("pengguna dibuat")
	return id, nil
}

func (i impl) Update(id string, data usersapimodels.UserEditData) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		userStore := usersstore.NewInstance(tx)
		rec, err := userStore.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NotFoundError("Pengguna tidak ditemukan")
		}
		if rec.Role == models.AdminRole {
			return models.ForbiddenError("Akun admin tidak dapat diubah")
		}
		updMap := map[string]interface{}{
			"name":         strings.TrimSpace(data.Name),
			"email":        strings.TrimSpace(data.Email),
			"phone_number": usersapimodels.NormalizePhone(data.PhoneNumber),
		}
		if data.Status != "" {
			updMap["status"] = data.Status
		}
		if rec.Role == models.PeternakRole && data.OwnerID != "" && helpers.StringValue(rec.OwnerID) != data.OwnerID {
			if err = checkOwner(userStore, data.OwnerID); err != nil {
				return err
			}
			updMap["owner_id"] = data.OwnerID
			// kandang milik owner lama tidak lagi dikelola peternak ini
			if err = farmsstore.NewInstance(tx).ClearPeternak(id); err != nil {
				return err
			}
		}
		if data.Password != "" {
			hash, err := authutils.HashPassword(data.Password)
			if err != nil {
				return err
			}
			updMap["password"] = hash
		}
		return userStore.Update(id, updMap)
	})
}

func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		userStore := usersstore.NewInstance(tx)
		farmStore := farmsstore.NewInstance(tx)
		rec, err := userStore.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NotFoundError("Pengguna tidak ditemukan")
		}
		switch rec.Role {
		case models.AdminRole:
			return models.ForbiddenError("Akun admin tidak dapat dihapus")
		case models.OwnerRole:
			farms, err := farmStore.List(farmsstore.Filter{OwnerID: id})
			if err != nil {
				return err
			}
			if len(farms) > 0 {
				return models.ConflictError("Owner masih memiliki kandang, hapus kandang terlebih dahulu")
			}
			_, peternakCount, err := userStore.List(usersstore.Filter{OwnerID: id, Role: models.PeternakRole})
			if err != nil {
				return err
			}
			if peternakCount > 0 {
				return models.ConflictError("Owner masih memiliki peternak, hapus peternak terlebih dahulu")
			}
		case models.PeternakRole:
			if err = farmStore.ClearPeternak(id); err != nil {
				return err
			}
		}
		return userStore.Delete(id)
	})
}

func (i impl) Get(id string) (*usersapimodels.UserView, error) {
	rec, err := i.userStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NotFoundError("Pengguna tidak ditemukan")
	}
	view := ToView(*rec, time.Now())
	return &view, nil
}

func (i impl) List(filter usersapimodels.UserFilter) (*usersapimodels.UserListResponse, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	list, rowCount, err := i.userStore.List(usersstore.Filter{
		Search: filter.Search,
		Role:   models.UserRole(filter.Role),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	ownerCount, err := i.userStore.CountByRole(models.OwnerRole)
	if err != nil {
		return nil, err
	}
	peternakCount, err := i.userStore.CountByRole(models.PeternakRole)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	result := &usersapimodels.UserListResponse{
		Users: make([]usersapimodels.UserView, 0, len(list)),
		Stats: usersapimodels.UserStats{
			Total:    ownerCount + peternakCount,
			Owner:    ownerCount,
			Peternak: peternakCount,
		},
		Page:       page,
		TotalPages: apimodels.TotalPages(rowCount, limit),
		Total:      rowCount,
	}
	for _, rec := range list {
		result.Users = append(result.Users, ToView(rec, now))
	}
	return result, nil
}

func (i impl) Owners() ([]usersapimodels.ShortUserView, error) {
	list, _, err := i.userStore.List(usersstore.Filter{Role: models.OwnerRole})
	if err != nil {
		return nil, err
	}
	return toShortViews(list), nil
}

func (i impl) Peternaks(ownerID string) ([]usersapimodels.ShortUserView, error) {
	list, _, err := i.userStore.List(usersstore.Filter{Role: models.PeternakRole, OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	return toShortViews(list), nil
}

func (i impl) CountByRole(role models.UserRole) (int64, error) {
	return i.userStore.CountByRole(role)
}

func checkOwner(userStore usersstore.Provider, ownerID string) error {
	owner, err := userStore.GetByID(ownerID)
	if err != nil {
		return err
	}
	if owner == nil || owner.Role != models.OwnerRole {
		return models.ValidationError("Owner tidak ditemukan")
	}
	return nil
}

func ToView(rec dbmodels.User, now time.Time) usersapimodels.UserView {
	status := "nonaktif"
	if rec.IsRecentlyActive(now) {
		status = "aktif"
	}
	view := usersapimodels.UserView{
		ID:          rec.ID,
		Username:    rec.Username,
		Name:        rec.Name,
		Email:       rec.Email,
		PhoneNumber: rec.PhoneNumber,
		Role:        rec.Role,
		Status:      status,
		IsActive:    rec.IsActive(),
		OwnerID:     helpers.StringValue(rec.OwnerID),
		LastLogin:   helpers.FormatTimePtr(rec.LastLogin),
		DateJoined:  helpers.FormatTime(rec.CreatedAt),
	}
	if rec.Owner != nil {
		view.OwnerName = rec.Owner.Name
	}
	return view
}

func toShortViews(list []dbmodels.User) []usersapimodels.ShortUserView {
	result := make([]usersapimodels.ShortUserView, 0, len(list))
	for _, rec := range list {
		result = append(result, usersapimodels.ShortUserView{ID: rec.ID, Name: rec.Name})
	}
	return result
}
