package middleware

import (
	"broilink-backend/lib/rbac"
	apimodels "broilink-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		role := GetRole(ctx)
		if userID == "" || role == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("RBAC_FORBIDDEN"))
		}
		if !rbac.Instance.IsAllowed(ctx.Method(), ctx.Path(), userID, role) {
			log.WithFields(log.Fields{
				"user_id": userID,
				"role":    role,
				"method":  ctx.Method(),
				"path":    ctx.Path(),
			}).Info("akses ditolak rbac")
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("RBAC_FORBIDDEN"))
		}
		return ctx.Next()
	}
}
