package initializers

import (
	"broilink-backend/config"
	"broilink-backend/db"

	log "github.com/sirupsen/logrus"
)

func InitDBConnection() {
	driver := config.Conf.Database.Driver
	dsn := config.Conf.Database.SqlitePath
	if config.Conf.IsFixtureMode() && driver == db.DriverPostgres {
		log.Info("mode fixture, memakai SQLite in-memory")
		driver = db.DriverSqlite
	}
	if driver == db.DriverPostgres {
		dsn = db.PostgresDSN(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
			config.Conf.Database.User, config.Conf.Database.Password)
	}
	err := db.Connect(driver, dsn, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}

	db.InitPreload()
}
