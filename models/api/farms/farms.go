package farmsapimodels

import (
	"strings"

	apimodels "broilink-backend/models/api"

	"github.com/pkg/errors"
)

type FarmData struct {
	FarmName          string           `json:"farm_name"`
	Location          string           `json:"location"`
	OwnerID           string           `json:"owner_id"`
	PeternakID        string           `json:"peternak_id"`
	InitialPopulation apimodels.Number `json:"initial_population"`
	InitialWeight     apimodels.Number `json:"initial_weight"`
	FarmArea          apimodels.Number `json:"farm_area"`
}

func (r FarmData) Validate() error {
	if strings.TrimSpace(r.FarmName) == "" {
		return errors.New("nama kandang wajib diisi")
	}
	if r.OwnerID == "" {
		return errors.New("owner wajib dipilih")
	}
	if r.InitialPopulation.IsSet() {
		if err := r.InitialPopulation.CheckInteger("populasi awal"); err != nil {
			return err
		}
	}
	if err := r.InitialWeight.CheckOptional("bobot awal"); err != nil {
		return err
	}
	return r.FarmArea.CheckOptional("luas kandang")
}

type AssignPeternakData struct {
	PeternakID string `json:"peternak_id"` // kosong = lepas peternak
}

func (r AssignPeternakData) Validate() error {
	return nil
}

type FarmView struct {
	ID                string  `json:"id"`
	FarmName          string  `json:"farm_name"`
	Location          string  `json:"location"`
	OwnerID           string  `json:"owner_id"`
	OwnerName         string  `json:"owner_name"`
	PeternakID        string  `json:"peternak_id,omitempty"`
	PeternakName      string  `json:"peternak_name,omitempty"`
	InitialPopulation int     `json:"initial_population"`
	InitialWeight     float64 `json:"initial_weight"`
	FarmArea          float64 `json:"farm_area"`
	CreatedAt         string  `json:"created_at"`
}
