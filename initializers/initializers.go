package initializers

import (
	"context"
	"time"

	"broilink-backend/config"
	"broilink-backend/fiberlog"
	"broilink-backend/lib/analytics"
	authhandler "broilink-backend/lib/auth"
	dashboardhandler "broilink-backend/lib/dashboard"
	exporthandler "broilink-backend/lib/export"
	farmconfighandler "broilink-backend/lib/farm-config"
	farmshandler "broilink-backend/lib/farms"
	"broilink-backend/lib/otp"
	profilehandler "broilink-backend/lib/profile"
	"broilink-backend/lib/rbac"
	reportshandler "broilink-backend/lib/reports"
	requestshandler "broilink-backend/lib/requests"
	sensorshandler "broilink-backend/lib/sensors"
	"broilink-backend/lib/session"
	"broilink-backend/lib/smtp"
	usershandler "broilink-backend/lib/users"
	"broilink-backend/lib/utils/kvstore"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)
	InitDBConnection()
	InitKVStore(ctx)
	InitSmtp()
	InitFileStorage(ctx)
	InitHandlers()
}

// InitHandlers - urutan penting: handler yang dipakai handler lain dibuat lebih dulu
func InitHandlers() {
	rbac.NewHandler()
	session.NewHandler(kvstore.Instance)
	otp.NewHandler(kvstore.Instance, smtp.Instance, otp.Config{
		TTL:            time.Second * time.Duration(config.Conf.Otp.TTLInSec),
		MaxAttempts:    config.Conf.Otp.MaxAttempts,
		ResendCooldown: time.Second * time.Duration(config.Conf.Otp.ResendCooldownInSec),
		LogCode:        *config.Conf.Otp.LogCode,
	})
	authhandler.NewHandler()
	usershandler.NewHandler()
	farmshandler.NewHandler()
	farmconfighandler.NewHandler()
	requestshandler.NewHandler()
	reportshandler.NewHandler()
	sensorshandler.NewHandler()
	profilehandler.NewHandler()
	analytics.NewHandler()
	exporthandler.NewHandler()
	dashboardhandler.NewHandler()
}
