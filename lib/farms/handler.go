package farmshandler

import (
	"strings"

	"broilink-backend/db"
	farmconfigstore "broilink-backend/lib/farm-config/store"
	farmsstore "broilink-backend/lib/farms/store"
	reportsstore "broilink-backend/lib/reports/store"
	sensorsstore "broilink-backend/lib/sensors/store"
	usersstore "broilink-backend/lib/users/store"
	"broilink-backend/lib/utils/helpers"
	"broilink-backend/models"
	farmsapimodels "broilink-backend/models/api/farms"
	dbmodels "broilink-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data farmsapimodels.FarmData) (id string, err error)
	Update(id string, data farmsapimodels.FarmData) error
	Delete(id string) error
	Get(id string) (*farmsapimodels.FarmView, error)
	List(filter farmsstore.Filter) ([]farmsapimodels.FarmView, error)
	AssignPeternak(id string, data farmsapimodels.AssignPeternakData) error
	// GetForUser - kandang yang boleh dilihat pengguna: admin semua, owner miliknya, peternak yang ditugaskan
	GetForUser(farmID, userID string, role models.UserRole) (*dbmodels.Farm, error)
	// AssignedFarm - kandang peternak; nil bila belum ditugaskan
	AssignedFarm(peternakID string) (*dbmodels.Farm, error)
	OwnedFarms(ownerID string) ([]dbmodels.Farm, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		db:        DB,
		farmStore: farmsstore.NewInstance(DB),
	}
}

type impl struct {
	db        *gorm.DB
	farmStore farmsstore.Provider
}

func (i impl) Create(data farmsapimodels.FarmData) (id string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		userStore := usersstore.NewInstance(tx)
		if err := checkRole(userStore, data.OwnerID, models.OwnerRole, "Owner tidak ditemukan"); err != nil {
			return err
		}
		if data.PeternakID != "" {
			if err := checkPeternak(userStore, data.PeternakID, data.OwnerID); err != nil {
				return err
			}
			if err := farmsstore.NewInstance(tx).ClearPeternak(data.PeternakID); err != nil {
				return err
			}
		}
		id, err = farmsstore.NewInstance(tx).Create(dbmodels.Farm{
			OwnerID:           data.OwnerID,
			PeternakID:        helpers.StringPtr(data.PeternakID),
			FarmName:          strings.TrimSpace(data.FarmName),
			Location:          strings.TrimSpace(data.Location),
			InitialPopulation: int(data.InitialPopulation.Float()),
			InitialWeight:     data.InitialWeight.Float(),
			FarmArea:          data.FarmArea.Float(),
		})
		return err
	})
	if err != nil {
		return "", err
	}
	log.WithField("farm_id", id).Info("kandang dibuat")
	return id, nil
}

func (i impl) Update(id string, data farmsapimodels.FarmData) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		farmStore := farmsstore.NewInstance(tx)
		userStore := usersstore.NewInstance(tx)
		rec, err := farmStore.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NotFoundError("Kandang tidak ditemukan")
		}
		if err = checkRole(userStore, data.OwnerID, models.OwnerRole, "Owner tidak ditemukan"); err != nil {
			return err
		}
		updMap := map[string]interface{}{
			"owner_id":           data.OwnerID,
			"farm_name":          strings.TrimSpace(data.FarmName),
			"location":           strings.TrimSpace(data.Location),
			"initial_population": int(data.InitialPopulation.Float()),
			"initial_weight":     data.InitialWeight.Float(),
			"farm_area":          data.FarmArea.Float(),
		}
		switch {
		case data.PeternakID != "" && data.PeternakID != helpers.StringValue(rec.PeternakID):
			if err = checkPeternak(userStore, data.PeternakID, data.OwnerID); err != nil {
				return err
			}
			if err = farmStore.ClearPeternak(data.PeternakID); err != nil {
				return err
			}
			updMap["peternak_id"] = data.PeternakID
		case data.PeternakID == "" && rec.OwnerID != data.OwnerID:
			// peternak owner lama tidak ikut pindah
			updMap["peternak_id"] = nil
		}
		return farmStore.Update(id, updMap)
	})
}

func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		farmStore := farmsstore.NewInstance(tx)
		rec, err := farmStore.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NotFoundError("Kandang tidak ditemukan")
		}
		if err = farmconfigstore.NewInstance(tx).DeleteByFarm(id); err != nil {
			return err
		}
		if err = reportsstore.NewInstance(tx).DeleteByFarm(id); err != nil {
			return err
		}
		if err = sensorsstore.NewInstance(tx).DeleteByFarm(id); err != nil {
			return err
		}
		return farmStore.Delete(id)
	})
}

func (i impl) Get(id string) (*farmsapimodels.FarmView, error) {
	rec, err := i.farmStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NotFoundError("Kandang tidak ditemukan")
	}
	view := ToView(*rec)
	return &view, nil
}

func (i impl) List(filter farmsstore.Filter) ([]farmsapimodels.FarmView, error) {
	list, err := i.farmStore.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]farmsapimodels.FarmView, 0, len(list))
	for _, rec := range list {
		result = append(result, ToView(rec))
	}
	return result, nil
}

func (i impl) AssignPeternak(id string, data farmsapimodels.AssignPeternakData) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		farmStore := farmsstore.NewInstance(tx)
		rec, err := farmStore.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return models.NotFoundError("Kandang tidak ditemukan")
		}
		if data.PeternakID == "" {
			return farmStore.Update(id, map[string]interface{}{"peternak_id": nil})
		}
		if err = checkPeternak(usersstore.NewInstance(tx), data.PeternakID, rec.OwnerID); err != nil {
			return err
		}
		// satu peternak mengelola satu kandang
		if err = farmStore.ClearPeternak(data.PeternakID); err != nil {
			return err
		}
		return farmStore.Update(id, map[string]interface{}{"peternak_id": data.PeternakID})
	})
}

func (i impl) GetForUser(farmID, userID string, role models.UserRole) (*dbmodels.Farm, error) {
	rec, err := i.farmStore.GetByID(farmID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NotFoundError("Kandang tidak ditemukan")
	}
	switch role {
	case models.AdminRole:
		return rec, nil
	case models.OwnerRole:
		if rec.OwnerID == userID {
			return rec, nil
		}
	case models.PeternakRole:
		if helpers.StringValue(rec.PeternakID) == userID {
			return rec, nil
		}
	}
	return nil, models.ForbiddenError("Anda tidak memiliki akses ke kandang ini")
}

func (i impl) AssignedFarm(peternakID string) (*dbmodels.Farm, error) {
	list, err := i.farmStore.List(farmsstore.Filter{PeternakID: peternakID})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (i impl) OwnedFarms(ownerID string) ([]dbmodels.Farm, error) {
	return i.farmStore.List(farmsstore.Filter{OwnerID: ownerID})
}

func checkRole(userStore usersstore.Provider, userID string, role models.UserRole, notFoundMsg string) error {
	rec, err := userStore.GetByID(userID)
	if err != nil {
		return err
	}
	if rec == nil || rec.Role != role {
		return models.ValidationError(notFoundMsg)
	}
	return nil
}

func checkPeternak(userStore usersstore.Provider, peternakID, ownerID string) error {
	rec, err := userStore.GetByID(peternakID)
	if err != nil {
		return err
	}
	if rec == nil || rec.Role != models.PeternakRole {
		return models.ValidationError("Peternak tidak ditemukan")
	}
	if helpers.StringValue(rec.OwnerID) != ownerID {
		return models.ValidationError("Peternak bukan milik owner kandang ini")
	}
	return nil
}

func ToView(rec dbmodels.Farm) farmsapimodels.FarmView {
	view := farmsapimodels.FarmView{
		ID:                rec.ID,
		FarmName:          rec.FarmName,
		Location:          rec.Location,
		OwnerID:           rec.OwnerID,
		PeternakID:        helpers.StringValue(rec.PeternakID),
		InitialPopulation: rec.InitialPopulation,
		InitialWeight:     rec.InitialWeight,
		FarmArea:          rec.FarmArea,
		CreatedAt:         helpers.FormatTime(rec.CreatedAt),
	}
	if rec.Owner != nil {
		view.OwnerName = rec.Owner.Name
	}
	if rec.Peternak != nil {
		view.PeternakName = rec.Peternak.Name
	}
	return view
}
