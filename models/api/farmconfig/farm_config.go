package farmconfigapimodels

import (
	"broilink-backend/models"
	apimodels "broilink-backend/models/api"

	"github.com/pkg/errors"
)

// FarmConfigData - objek datar berisi 17 parameter; kunci lain (mis. peternak_id) diabaikan
type FarmConfigData map[string]apimodels.Number

func (r FarmConfigData) Validate() error {
	for _, key := range models.FarmConfigKeys {
		if err := r[key].CheckRequired(models.FarmConfigKeyToHuman(key)); err != nil {
			return err
		}
	}
	v := r.Values()
	if err := checkBand(v, models.ConfigSuhuKritisRendah, models.ConfigSuhuNormalMin, models.ConfigSuhuNormalMax, models.ConfigSuhuKritisTinggi); err != nil {
		return err
	}
	if err := checkBand(v, models.ConfigKelembapanKritisRendah, models.ConfigKelembapanNormalMin, models.ConfigKelembapanNormalMax, models.ConfigKelembapanKritisTinggi); err != nil {
		return err
	}
	if v[models.ConfigAmoniaMax] > v[models.ConfigAmoniaKritis] {
		return errors.Errorf("%s tidak boleh melebihi %s",
			models.FarmConfigKeyToHuman(models.ConfigAmoniaMax), models.FarmConfigKeyToHuman(models.ConfigAmoniaKritis))
	}
	return nil
}

// checkBand: kritis rendah <= normal min <= normal max <= kritis tinggi
func checkBand(v map[string]float64, keys ...string) error {
	for idx := 1; idx < len(keys); idx++ {
		if v[keys[idx-1]] > v[keys[idx]] {
			return errors.Errorf("%s tidak boleh melebihi %s",
				models.FarmConfigKeyToHuman(keys[idx-1]), models.FarmConfigKeyToHuman(keys[idx]))
		}
	}
	return nil
}

func (r FarmConfigData) Values() map[string]float64 {
	result := make(map[string]float64, len(models.FarmConfigKeys))
	for _, key := range models.FarmConfigKeys {
		if value, ok := r[key]; ok {
			result[key] = value.Float()
		}
	}
	return result
}

type FarmConfigView struct {
	FarmID     string             `json:"farm_id"`
	FarmName   string             `json:"farm_name"`
	PeternakID string             `json:"peternak_id,omitempty"`
	Values     map[string]float64 `json:"values"`
	HasDefault bool               `json:"has_default"` // tombol reset aktif hanya jika true
	IsBaseline bool               `json:"is_baseline"` // belum pernah disimpan
}
