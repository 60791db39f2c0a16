package apiv1

import (
	"broilink-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouterConfig struct {
	JWTSecret string
	DeviceKey string
}

// InitRouters - rute publik didaftarkan sebelum grup yang membutuhkan sesi
func InitRouters(app *fiber.App, cfg RouterConfig) {
	api := app.Group("/api")
	InitPublicApiRouters(api, cfg.DeviceKey)

	protected := []fiber.Handler{
		middleware.AuthorizationRequired(cfg.JWTSecret),
		middleware.SessionRequired(),
		middleware.RbacMiddleware(),
	}
	InitAuthApiRouters(api, protected)
	InitAdminApiRouters(api.Group("/admin", protected...))
	InitOwnerApiRouters(api.Group("/owner", protected...))
	InitPeternakApiRouters(api.Group("/peternak", protected...))
}
