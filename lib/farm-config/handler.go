package farmconfighandler

import (
	"broilink-backend/db"
	farmconfigstore "broilink-backend/lib/farm-config/store"
	farmsstore "broilink-backend/lib/farms/store"
	"broilink-backend/lib/utils/helpers"
	"broilink-backend/models"
	farmconfigapimodels "broilink-backend/models/api/farmconfig"
	dbmodels "broilink-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const noDefaultMsg = "Belum ada konfigurasi default yang disimpan"

type Provider interface {
	Get(farmID string) (*farmconfigapimodels.FarmConfigView, error)
	// Save menyimpan 17 parameter; penyimpanan pertama sekaligus menjadi default kandang
	Save(farmID string, data farmconfigapimodels.FarmConfigData) (*farmconfigapimodels.FarmConfigView, error)
	Reset(farmID string) (*farmconfigapimodels.FarmConfigView, error)
	// Thresholds - nilai efektif (tersimpan atau baseline) untuk menentukan status kandang
	Thresholds(farmID string) (map[string]float64, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	return impl{
		db:          DB,
		configStore: farmconfigstore.NewInstance(DB),
		farmStore:   farmsstore.NewInstance(DB),
	}
}

type impl struct {
	db          *gorm.DB
	configStore farmconfigstore.Provider
	farmStore   farmsstore.Provider
}

func (i impl) Get(farmID string) (*farmconfigapimodels.FarmConfigView, error) {
	farm, err := i.getFarm(i.farmStore, farmID)
	if err != nil {
		return nil, err
	}
	return i.view(i.configStore, *farm)
}

func (i impl) Save(farmID string, data farmconfigapimodels.FarmConfigData) (view *farmconfigapimodels.FarmConfigView, err error) {
	logger := log.WithField("farm_id", farmID)
	values := data.Values()
	err = i.db.Transaction(func(tx *gorm.DB) error {
		farmStore := farmsstore.NewInstance(tx)
		configStore := farmconfigstore.NewInstance(tx)
		farm, err := i.getFarm(farmStore, farmID)
		if err != nil {
			return err
		}
		if err = configStore.SaveValues(farmID, values); err != nil {
			return err
		}
		hasDefault, err := configStore.HasDefault(farmID)
		if err != nil {
			return err
		}
		if !hasDefault {
			if err = configStore.SaveDefault(farmID, values); err != nil {
				return err
			}
			logger.Info("konfigurasi default kandang disimpan")
		}
		if err = syncFarmFields(farmStore, farmID, values); err != nil {
			return err
		}
		view, err = i.view(configStore, *farm)
		return err
	})
	if err != nil {
		return nil, err
	}
	logger.Info("konfigurasi kandang disimpan")
	return view, nil
}

func (i impl) Reset(farmID string) (view *farmconfigapimodels.FarmConfigView, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		farmStore := farmsstore.NewInstance(tx)
		configStore := farmconfigstore.NewInstance(tx)
		farm, err := i.getFarm(farmStore, farmID)
		if err != nil {
			return err
		}
		defaults, err := configStore.GetDefault(farmID)
		if err != nil {
			return err
		}
		if len(defaults) == 0 {
			return models.ConflictError(noDefaultMsg)
		}
		if err = configStore.SaveValues(farmID, defaults); err != nil {
			return err
		}
		if err = syncFarmFields(farmStore, farmID, defaults); err != nil {
			return err
		}
		view, err = i.view(configStore, *farm)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.WithField("farm_id", farmID).Info("konfigurasi kandang dikembalikan ke default")
	return view, nil
}

func (i impl) Thresholds(farmID string) (map[string]float64, error) {
	values, _, err := effectiveValues(i.configStore, farmID)
	return values, err
}

func (i impl) getFarm(farmStore farmsstore.Provider, farmID string) (*dbmodels.Farm, error) {
	farm, err := farmStore.GetByID(farmID)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, models.NotFoundError("Kandang tidak ditemukan")
	}
	return farm, nil
}

func (i impl) view(configStore farmconfigstore.Provider, farm dbmodels.Farm) (*farmconfigapimodels.FarmConfigView, error) {
	values, baseline, err := effectiveValues(configStore, farm.ID)
	if err != nil {
		return nil, err
	}
	hasDefault, err := configStore.HasDefault(farm.ID)
	if err != nil {
		return nil, err
	}
	return &farmconfigapimodels.FarmConfigView{
		FarmID:     farm.ID,
		FarmName:   farm.FarmName,
		PeternakID: helpers.StringValue(farm.PeternakID),
		Values:     values,
		HasDefault: hasDefault,
		IsBaseline: baseline,
	}, nil
}

// effectiveValues: nilai tersimpan, kunci yang belum ada diisi baseline
func effectiveValues(configStore farmconfigstore.Provider, farmID string) (map[string]float64, bool, error) {
	stored, err := configStore.GetValues(farmID)
	if err != nil {
		return nil, false, err
	}
	values := models.CopyFarmConfig(models.BaselineFarmConfig)
	for key, value := range stored {
		values[key] = value
	}
	return values, len(stored) == 0, nil
}

func syncFarmFields(farmStore farmsstore.Provider, farmID string, values map[string]float64) error {
	updMap := map[string]interface{}{}
	if value, ok := values[models.ConfigPopulasiAwal]; ok {
		updMap["initial_population"] = int(value)
	}
	if value, ok := values[models.ConfigBobotAwal]; ok {
		updMap["initial_weight"] = value
	}
	if value, ok := values[models.ConfigLuasKandang]; ok {
		updMap["farm_area"] = value
	}
	return farmStore.Update(farmID, updMap)
}
