package config

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/gotify/configor"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

const (
	DataSourceDB      = "db"
	DataSourceFixture = "fixture"
)

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"8080"  env:"APP_PORT"`
		Timezone    string `default:"Asia/Jakarta" env:"APP_TIMEZONE"`
		DataSource  string `default:"db" env:"APP_DATA_SOURCE"` // db | fixture
		SwaggerFile string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
		BodyLimitMb int    `default:"10" env:"APP_BODY_LIMIT_MB"`
		CorsOrigins string `default:"*" env:"APP_CORS_ORIGINS"`
		LogLevel    string `default:"info" env:"APP_LOG_LEVEL"`
		// webhook untuk ringkasan respons 5xx, kosong = nonaktif
		ErrNotifyUrl string `default:"" env:"APP_ERR_NOTIFY_URL"`
	}
	Database struct {
		Driver         string `default:"postgres" env:"DB_DRIVER"` // postgres | sqlite
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"broilink" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		SqlitePath     string `default:"file::memory:?cache=shared" env:"DB_SQLITE_PATH"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Admin struct {
		Username string `default:"admin" env:"ADMIN_USERNAME"`
		Password string `default:"" env:"ADMIN_PASSWORD"`
		Name     string `default:"Administrator" env:"ADMIN_NAME"`
		Email    string `default:"" env:"ADMIN_EMAIL"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec int64  `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
	}
	Redis struct {
		Addr     string `default:"" env:"REDIS_ADDR"`
		Password string `default:"" env:"REDIS_PASSWORD"`
		DB       int    `default:"0" env:"REDIS_DB"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"no-reply@broilink.id" env:"SMTP_FROM"`
		// domain gateway email→SMS/WhatsApp, alamat penerima: <nomor>@<domain>
		SmsGatewayDomain string `default:"" env:"SMTP_SMS_GATEWAY_DOMAIN"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"broilink" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Otp struct {
		TTLInSec            int   `default:"300" env:"OTP_TTL_IN_SEC"`
		MaxAttempts         int   `default:"5" env:"OTP_MAX_ATTEMPTS"`
		ResendCooldownInSec int   `default:"60" env:"OTP_RESEND_COOLDOWN_IN_SEC"`
		LogCode             *bool `default:"false" env:"OTP_LOG_CODE"` // hanya untuk pengembangan
	}
	Requests struct {
		PageSize int `default:"6" env:"REQUESTS_PAGE_SIZE"`
	}
	Iot struct {
		DeviceKey string `default:"" env:"IOT_DEVICE_KEY"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	if conf.Auth.JWTSecret == "" {
		log.Warn("JWT_SECRET tidak diatur, memakai secret acak (token tidak berlaku setelah restart)")
		conf.Auth.JWTSecret = randomSecret()
	}
	Conf = conf
}

// Location zona waktu untuk menentukan "hari ini" pada laporan harian
func (c *Configuration) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

func (c *Configuration) IsFixtureMode() bool {
	return c.App.DataSource == DataSourceFixture
}

func (c *Configuration) JWTTTL() time.Duration {
	return time.Second * time.Duration(c.Auth.JWTExpireInSec)
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
