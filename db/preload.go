package db

import (
	"math"
	"time"

	"broilink-backend/config"
	farmsstore "broilink-backend/lib/farms/store"
	reportsstore "broilink-backend/lib/reports/store"
	sensorsstore "broilink-backend/lib/sensors/store"
	usersstore "broilink-backend/lib/users/store"
	authutils "broilink-backend/lib/utils/auth-utils"
	"broilink-backend/models"
	dbmodels "broilink-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitPreload() {
	addAdmin()
	if config.Conf.IsFixtureMode() {
		if err := SeedFixtures(DB, time.Now(), config.Conf.Location()); err != nil {
			log.WithError(err).Error("kesalahan mengisi data fixture")
		}
	}
}

func addAdmin() {
	admin := config.Conf.Admin
	password := admin.Password
	if password == "" {
		if !config.Conf.IsFixtureMode() {
			log.Warn("admin tidak ditambahkan, ADMIN_PASSWORD belum diatur")
			return
		}
		password = "admin123"
	}
	if err := SeedAdmin(DB, admin.Username, password, admin.Name, admin.Email); err != nil {
		log.WithError(err).Error("kesalahan menambahkan admin")
	}
}

// SeedAdmin - tidak melakukan apa pun bila username sudah ada
func SeedAdmin(tx *gorm.DB, username, password, name, email string) error {
	userStore := usersstore.NewInstance(tx)
	existedRec, err := userStore.FindByUsername(username)
	if err != nil {
		return err
	}
	if existedRec != nil {
		return nil
	}
	hash, err := authutils.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = userStore.Create(dbmodels.User{
		Username: username,
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.AdminRole,
		Status:   models.UserActiveStatus,
	})
	if err != nil {
		return errors.Wrap(err, "kesalahan menyimpan admin")
	}
	log.WithField("username", username).Info("admin ditambahkan")
	return nil
}

// SeedFixtures - owner, peternak, dua kandang, data sensor 7 hari dan laporan harian 6 hari terakhir
func SeedFixtures(DB *gorm.DB, now time.Time, loc *time.Location) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		userStore := usersstore.NewInstance(tx)
		existed, err := userStore.FindByUsername("budi")
		if err != nil {
			return err
		}
		if existed != nil {
			return nil
		}
		hash, err := authutils.HashPassword("rahasia123")
		if err != nil {
			return err
		}
		ownerID, err := userStore.Create(dbmodels.User{
			Username:    "budi",
			Name:        "Budi Santoso",
			Email:       "budi@broilink.id",
			PhoneNumber: "+6281234567890",
			Password:    hash,
			Role:        models.OwnerRole,
			Status:      models.UserActiveStatus,
		})
		if err != nil {
			return err
		}
		peternakID, err := userStore.Create(dbmodels.User{
			Username:    "siti",
			Name:        "Siti Aminah",
			PhoneNumber: "+6281398765432",
			Password:    hash,
			Role:        models.PeternakRole,
			Status:      models.UserActiveStatus,
			OwnerID:     &ownerID,
		})
		if err != nil {
			return err
		}

		farmStore := farmsstore.NewInstance(tx)
		farmA, err := farmStore.Create(dbmodels.Farm{
			OwnerID:           ownerID,
			PeternakID:        &peternakID,
			FarmName:          "Kandang A",
			Location:          "Bogor",
			InitialPopulation: 5000,
			InitialWeight:     0.04,
			FarmArea:          500,
		})
		if err != nil {
			return err
		}
		farmB, err := farmStore.Create(dbmodels.Farm{
			OwnerID:           ownerID,
			FarmName:          "Kandang B",
			Location:          "Sukabumi",
			InitialPopulation: 3000,
			InitialWeight:     0.04,
			FarmArea:          300,
		})
		if err != nil {
			return err
		}

		sensorStore := sensorsstore.NewInstance(tx)
		start := now.Add(-7 * 24 * time.Hour).Truncate(time.Hour)
		for step := 0; start.Add(time.Duration(step) * time.Hour).Before(now); step += 2 {
			at := start.Add(time.Duration(step) * time.Hour)
			wave := math.Sin(float64(step) / 12 * math.Pi)
			for idx, farmID := range []string{farmA, farmB} {
				shift := float64(idx) * 2
				_, err = sensorStore.Create(dbmodels.SensorReading{
					FarmID:      farmID,
					Temperature: round1(29 + 2*wave + shift),
					Humidity:    round1(65 + 8*wave),
					Ammonia:     round1(10 + 4*wave + shift*3),
					RecordedAt:  at,
				})
				if err != nil {
					return err
				}
			}
		}

		reportStore := reportsstore.NewInstance(tx)
		today := now.In(loc)
		for day := 6; day >= 1; day-- {
			date := today.AddDate(0, 0, -day)
			weight := round1(0.9 + 0.05*float64(7-day))
			_, err = reportStore.Create(dbmodels.ManualReport{
				FarmID:         farmA,
				PeternakID:     peternakID,
				ReportDate:     date.Format("2006-01-02"),
				KonsumsiPakan:  round1(110 + 3*float64(7-day)),
				KonsumsiAir:    round1(260 + 6*float64(7-day)),
				RataRataBobot:  &weight,
				JumlahKematian: day % 3,
			})
			if err != nil {
				return err
			}
		}
		log.Info("data fixture ditambahkan")
		return nil
	})
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
