package middleware

import (
	"crypto/subtle"

	apimodels "broilink-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

const DeviceKeyHeader = "X-Device-Key"

// DeviceKeyRequired - kunci kosong di konfigurasi menolak semua perangkat
func DeviceKeyRequired(key string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		given := ctx.Get(DeviceKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(given), []byte(key)) != 1 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("kunci perangkat tidak valid"))
		}
		return ctx.Next()
	}
}
