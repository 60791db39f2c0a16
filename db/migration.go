package db

import (
	dbmodels "broilink-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func AutoMigrateDB(tx *gorm.DB) error {
	log.Info("Menjalankan migrasi")
	if err := tx.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "kesalahan membuat struktur User")
	}
	if err := tx.AutoMigrate(&dbmodels.Farm{}); err != nil {
		return errors.Wrap(err, "kesalahan membuat struktur Farm")
	}
	if err := tx.AutoMigrate(&dbmodels.FarmConfigValue{}, &dbmodels.FarmConfigDefault{}); err != nil {
		return errors.Wrap(err, "kesalahan membuat struktur FarmConfig")
	}
	if err := tx.AutoMigrate(&dbmodels.Request{}, &dbmodels.RequestStatusLog{}); err != nil {
		return errors.Wrap(err, "kesalahan membuat struktur Request")
	}
	if err := tx.AutoMigrate(&dbmodels.ManualReport{}); err != nil {
		return errors.Wrap(err, "kesalahan membuat struktur ManualReport")
	}
	if err := tx.AutoMigrate(&dbmodels.SensorReading{}); err != nil {
		return errors.Wrap(err, "kesalahan membuat struktur SensorReading")
	}
	log.Info("Migrasi berhasil")
	return nil
}
