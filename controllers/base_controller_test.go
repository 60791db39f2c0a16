package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"broilink-backend/models"
	apimodels "broilink-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSendError(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{models.ValidationError("jenis permintaan wajib diisi"), fiber.StatusBadRequest, "jenis permintaan wajib diisi"},
		{errors.Wrap(models.NotFoundError("Kandang tidak ditemukan"), "farm"), fiber.StatusNotFound, "Kandang tidak ditemukan"},
		{models.ForbiddenError("akses ditolak"), fiber.StatusForbidden, "akses ditolak"},
		{models.ConflictError("Laporan hari ini sudah ada"), fiber.StatusConflict, "Laporan hari ini sudah ada"},
		{models.UnauthorizedError("Username atau Password salah"), fiber.StatusUnauthorized, "Username atau Password salah"},
		{errors.New("pq: connection refused"), fiber.StatusInternalServerError, ServerErrorMessage},
	}
	for _, tc := range cases {
		app := fiber.New()
		c := BaseAPIController{}
		app.Get("/", func(ctx *fiber.Ctx) error {
			return c.SendError(ctx, c.GetLogger(ctx), tc.err, "kesalahan")
		})
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		require.Equal(t, tc.status, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		result := apimodels.Response{}
		require.NoError(t, json.Unmarshal(body, &result))
		require.Equal(t, "fail", result.Status)
		require.Equal(t, tc.message, result.Message)
	}
}
