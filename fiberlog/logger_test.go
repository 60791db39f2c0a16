package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	out := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.JSONFormatter{})

	app := fiber.New()
	app.Use(New(Config{
		Logger:    logger,
		Tags:      []string{TagStatus, TagMethod, TagPath, TagBody},
		SkipPaths: []string{"/metrics"},
	}))
	app.Post("/api/login", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "fail"})
	})
	app.Get("/metrics", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodPost, "/api/login", strings.NewReader(`{"username":"budi","password":"rahasia1"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	_, err := app.Test(req)
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "warning", entry["level"])
	require.Equal(t, float64(fiber.StatusUnauthorized), entry[TagStatus])
	require.Equal(t, "/api/login", entry[TagPath])
	require.Contains(t, entry[TagBody], `"password":"***"`)
	require.NotContains(t, entry[TagBody], "rahasia1")
}

func TestLevelOf(t *testing.T) {
	require.Equal(t, logrus.InfoLevel, levelOf(fiber.StatusOK, nil))
	require.Equal(t, logrus.WarnLevel, levelOf(fiber.StatusNotFound, nil))
	require.Equal(t, logrus.ErrorLevel, levelOf(fiber.StatusInternalServerError, nil))
	require.Equal(t, logrus.ErrorLevel, levelOf(fiber.StatusOK, fiber.ErrBadGateway))
}
