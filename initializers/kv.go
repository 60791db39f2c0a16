package initializers

import (
	"context"
	"time"

	"broilink-backend/config"
	"broilink-backend/lib/utils/kvstore"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// InitKVStore - sesi dan OTP di Redis; tanpa REDIS_ADDR disimpan di memori proses
func InitKVStore(ctx context.Context) {
	if config.Conf.Redis.Addr == "" {
		log.Warn("REDIS_ADDR tidak diatur, sesi dan OTP disimpan di memori")
		kvstore.Instance = kvstore.NewMemory()
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		panic("koneksi Redis gagal: " + err.Error())
	}
	kvstore.Instance = kvstore.NewRedis(client)
	log.WithField("addr", config.Conf.Redis.Addr).Info("Redis terhubung")
}
