package apiv1

import (
	"broilink-backend/controllers"
	requestshandler "broilink-backend/lib/requests"
	sensorshandler "broilink-backend/lib/sensors"
	"broilink-backend/middleware"
	apimodels "broilink-backend/models/api"
	monitoringapimodels "broilink-backend/models/api/monitoring"
	requestsapimodels "broilink-backend/models/api/requests"

	"github.com/gofiber/fiber/v2"
)

type publicApiController struct {
	controllers.BaseAPIController
}

func InitPublicApiRouters(router fiber.Router, deviceKey string) {
	controller := publicApiController{}
	router.Post("requests/submit", controller.submitRequest)
	router.Post("iot/readings", middleware.DeviceKeyRequired(deviceKey), controller.ingestReading)
}

// @Summary Permintaan dari tamu
// @Tags Publik
// @Description Pengajuan tanpa akun. Field alias: type/request_type, detail/request_content, phone/whatsapp/phone_number, name/user.name
// @Param	body				body		requestsapimodels.RawRequestPayload	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestsapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/requests/submit [post]
func (c *publicApiController) submitRequest(ctx *fiber.Ctx) error {
	var payload requestsapimodels.RawRequestPayload
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	data := requestsapimodels.Normalize(payload)
	if err := data.ValidateGuest(); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := requestshandler.Instance.CreateGuest(data)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan membuat permintaan tamu")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Permintaan berhasil dikirim", resp))
}

// @Summary Data sensor
// @Tags IoT
// @Description Data suhu, kelembapan dan amonia dari perangkat kandang
// @Param   X-Device-Key		header		string	true	"Device key"
// @Param	body				body		monitoringapimodels.ReadingData	true	"request body"
// @Success 201 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/iot/readings [post]
func (c *publicApiController) ingestReading(ctx *fiber.Ctx) error {
	var payload monitoringapimodels.ReadingData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	id, err := sensorshandler.Instance.Ingest(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("farm_id", payload.FarmID), err, "kesalahan menyimpan data sensor")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}
