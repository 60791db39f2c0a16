package authutils

import (
	"time"

	"broilink-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func GetToken(secret string, ttl time.Duration, userID, name, sessionID string, role models.UserRole) (tokenString string, expiresAt time.Time, err error) {
	now := time.Now()
	expiresAt = now.Add(ttl)
	claims := jwt.MapClaims{
		"name": name,
		"sub":  userID,
		"role": string(role),
		"jti":  sessionID,
		"exp":  expiresAt.Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(secret))
	return tokenString, expiresAt, err
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetStringClaim(ctx *fiber.Ctx, key string) string {
	if value, ok := GetClaims(ctx)[key].(string); ok {
		return value
	}
	return ""
}
