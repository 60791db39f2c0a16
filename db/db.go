package db

import (
	"fmt"
	"strings"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

var DB *gorm.DB

func PostgresDSN(host, port, database, user, pass string) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
}

func Connect(driver, dsn string, debugMode bool, migrate bool) (err error) {
	if DB == nil {
		db, err := Open(driver, dsn, debugMode)
		if err != nil {
			return err
		}
		DB = db
		if migrate {
			if err = AutoMigrateDB(DB); err != nil {
				return err
			}
		}
		log.WithField("driver", driver).Info("Layanan berhasil terhubung ke DB")
	}
	return nil
}

// Open membuka koneksi tanpa menyentuh variabel global DB
func Open(driver, dsn string, debugMode bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSqlite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, errors.Errorf("driver DB tidak dikenal: %v", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gorm_logrus.New(),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "Kesalahan koneksi ke DB")
	}
	if driver == DriverSqlite && strings.Contains(dsn, "memory") {
		// setiap koneksi sqlite in-memory adalah database terpisah
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "Kesalahan koneksi ke DB")
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if debugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		db = db.Debug()
	}
	return db, nil
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}
	return nil
}
