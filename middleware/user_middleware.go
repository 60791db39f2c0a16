package middleware

import (
	authhandler "broilink-backend/lib/auth"
	authutils "broilink-backend/lib/utils/auth-utils"
	"broilink-backend/models"
	apimodels "broilink-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func GetUserID(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(ctx, "sub")
}

func GetSessionID(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(ctx, "jti")
}

func GetRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(authutils.GetStringClaim(ctx, "role"))
}

// SessionRequired - token harus punya sesi aktif di server, setelah logout token ditolak
func SessionRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := authhandler.Instance.ValidateSession(ctx.UserContext(), GetSessionID(ctx), GetUserID(ctx))
		if err != nil {
			log.WithError(err).WithField("user_id", GetUserID(ctx)).Debug("sesi ditolak")
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(SessionExpiredMessage))
		}
		return ctx.Next()
	}
}

func RoleRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role := GetRole(ctx)
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operasi tidak diizinkan"))
	}
}
