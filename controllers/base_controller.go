package controllers

import (
	"strings"

	"broilink-backend/models"
	apimodels "broilink-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const ServerErrorMessage = "Terjadi kesalahan pada server"

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("kesalahan membaca permintaan")
		return errors.New("tidak dapat membaca data dari permintaan")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParam(ctx, "id")
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value := strings.TrimSpace(ctx.Params(name))
	if value == "" {
		return "", errors.Errorf("parameter %s tidak diisi", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	fields := log.Fields{
		"method": ctx.Method(),
		"path":   ctx.Path(),
	}
	if requestID := ctx.GetRespHeader(fiber.HeaderXRequestID); requestID != "" {
		fields["request_id"] = requestID
	}
	return log.WithFields(fields)
}

// SendError - pesan HumanError dikirim ke pengguna, kesalahan lain hanya dicatat
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, logMsg string) error {
	status := StatusOf(err)
	if status == fiber.StatusInternalServerError {
		logger.WithError(err).Error(logMsg)
		return ctx.Status(status).JSON(apimodels.NewError(ServerErrorMessage))
	}
	logger.WithError(err).Info(logMsg)
	message := err.Error()
	var human models.HumanError
	if errors.As(err, &human) {
		message = human.Message()
	}
	return ctx.Status(status).JSON(apimodels.NewError(message))
}

func (c *BaseAPIController) BadRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
}

func StatusOf(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
