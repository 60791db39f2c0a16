package apiv1

import (
	"fmt"

	"broilink-backend/controllers"
	"broilink-backend/lib/analytics"
	dashboardhandler "broilink-backend/lib/dashboard"
	exporthandler "broilink-backend/lib/export"
	farmshandler "broilink-backend/lib/farms"
	profilehandler "broilink-backend/lib/profile"
	requestshandler "broilink-backend/lib/requests"
	"broilink-backend/middleware"
	apimodels "broilink-backend/models/api"
	monitoringapimodels "broilink-backend/models/api/monitoring"
	profileapimodels "broilink-backend/models/api/profile"
	requestsapimodels "broilink-backend/models/api/requests"
	dbmodels "broilink-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

type ownerApiController struct {
	controllers.BaseAPIController
}

func InitOwnerApiRouters(router fiber.Router) {
	controller := ownerApiController{}
	router.Get("dashboard", controller.dashboard)
	router.Get("monitoring/:farmId", controller.monitoring)
	router.Get("analytics/:farmId", controller.analytics)
	router.Get("export/:farmId", controller.export)
	router.Post("request-farm", controller.requestFarm)
	router.Post("request-peternak", controller.requestPeternak)
	router.Post("requests", controller.requestCreate)
	router.Get("requests", controller.requestList)
	router.Get("profile", controller.profileGet)
	router.Put("profile", controller.profileUpdate)
}

// farm - kandang dari path yang boleh diakses pengguna
func (c *ownerApiController) farm(ctx *fiber.Ctx) (*dbmodels.Farm, error) {
	farmID, err := c.GetParam(ctx, "farmId")
	if err != nil {
		return nil, err
	}
	return farmshandler.Instance.GetForUser(farmID, middleware.GetUserID(ctx), middleware.GetRole(ctx))
}

func (c *ownerApiController) periodFilter(ctx *fiber.Ctx) (monitoringapimodels.PeriodFilter, error) {
	var filter monitoringapimodels.PeriodFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return filter, err
	}
	return filter, filter.Validate()
}

// @Summary Dashboard owner
// @Tags Owner
// @Description Kandang milik owner dengan data sensor terakhir dan statusnya
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.OwnerDashboard}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/owner/dashboard [get]
func (c *ownerApiController) dashboard(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.Owner(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat dashboard owner")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Monitoring kandang
// @Tags Owner
// @Description Data sensor terakhir, status dan grafik per periode
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   farmId          	path    string  				    	true         "farm ID"
// @Param   period		query		string	false	"1day | 1week | 1month | 6months"
// @Success 200 {object} apimodels.Response{data=monitoringapimodels.MonitoringView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/owner/monitoring/{farmId} [get]
func (c *ownerApiController) monitoring(ctx *fiber.Ctx) error {
	filter, err := c.periodFilter(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	farm, err := c.farm(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat kandang")
	}
	resp, err := analytics.Instance.Monitoring(*farm, filter.GetPeriod())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("farm_id", farm.ID), err, "kesalahan memuat monitoring")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Analisis kandang
// @Tags Owner
// @Description Grafik data manual (pakan, minum, bobot, kematian) per periode
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   farmId          	path    string  				    	true         "farm ID"
// @Param   period		query		string	false	"1day | 1week | 1month | 6months"
// @Success 200 {object} apimodels.Response{data=monitoringapimodels.AnalyticsView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/owner/analytics/{farmId} [get]
func (c *ownerApiController) analytics(ctx *fiber.Ctx) error {
	filter, err := c.periodFilter(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	farm, err := c.farm(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat kandang")
	}
	resp, err := analytics.Instance.Analytics(*farm, filter.GetPeriod())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("farm_id", farm.ID), err, "kesalahan memuat analisis")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Ekspor laporan
// @Tags Owner
// @Description Laporan harian kandang dalam format CSV, Excel atau PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   farmId          	path    string  				    	true         "farm ID"
// @Param   format		query		string	false	"csv | xlsx | pdf"
// @Param   period		query		string	false	"1day | 1week | 1month | 6months"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/owner/export/{farmId} [get]
func (c *ownerApiController) export(ctx *fiber.Ctx) error {
	var filter monitoringapimodels.ExportFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	farm, err := c.farm(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat kandang")
	}
	file, err := exporthandler.Instance.Export(*farm, filter.GetPeriod(), filter.Format)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("farm_id", farm.ID), err, "kesalahan ekspor laporan")
	}
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	return ctx.Status(fiber.StatusOK).Send(file.Body)
}

// @Summary Permintaan tambah kandang
// @Tags Owner
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestsapimodels.FarmRequestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestsapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/owner/request-farm [post]
func (c *ownerApiController) requestFarm(ctx *fiber.Ctx) error {
	var payload requestsapimodels.FarmRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	payload = payload.Normalize()
	if err := payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := requestshandler.Instance.CreateForUser(middleware.GetUserID(ctx), payload.ToCreate())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan membuat permintaan kandang")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Permintaan berhasil dikirim", resp))
}

// @Summary Permintaan tambah peternak
// @Tags Owner
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestsapimodels.PeternakRequestData	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestsapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/owner/request-peternak [post]
func (c *ownerApiController) requestPeternak(ctx *fiber.Ctx) error {
	var payload requestsapimodels.PeternakRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	payload = payload.Normalize()
	if err := payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := requestshandler.Instance.CreateForUser(middleware.GetUserID(ctx), payload.ToCreate())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan membuat permintaan peternak")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Permintaan berhasil dikirim", resp))
}

// @Summary Permintaan lainnya
// @Tags Owner
// @Description Field alias: type/request_type, detail/request_content
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestsapimodels.RawRequestPayload	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestsapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/owner/requests [post]
func (c *ownerApiController) requestCreate(ctx *fiber.Ctx) error {
	return createUserRequest(ctx, &c.BaseAPIController)
}

// @Summary Permintaan saya
// @Tags Owner
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]requestsapimodels.RequestView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/owner/requests [get]
func (c *ownerApiController) requestList(ctx *fiber.Ctx) error {
	resp, err := requestshandler.Instance.ListOwn(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat permintaan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Profil owner
// @Tags Owner
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/owner/profile [get]
func (c *ownerApiController) profileGet(ctx *fiber.Ctx) error {
	return getProfile(ctx, &c.BaseAPIController)
}

// @Summary Ubah profil owner
// @Tags Owner
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.ProfileEditData	true	"request body"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileUpdateResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/owner/profile [put]
func (c *ownerApiController) profileUpdate(ctx *fiber.Ctx) error {
	return updateProfile(ctx, &c.BaseAPIController)
}

func createUserRequest(ctx *fiber.Ctx, c *controllers.BaseAPIController) error {
	var payload requestsapimodels.RawRequestPayload
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	data := requestsapimodels.Normalize(payload)
	if err := data.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := requestshandler.Instance.CreateForUser(middleware.GetUserID(ctx), data)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan membuat permintaan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Permintaan berhasil dikirim", resp))
}

func getProfile(ctx *fiber.Ctx, c *controllers.BaseAPIController) error {
	resp, err := profilehandler.Instance.Get(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat profil")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// updateProfile - 202 bila perubahan nomor menunggu OTP
func updateProfile(ctx *fiber.Ctx, c *controllers.BaseAPIController) error {
	var payload profileapimodels.ProfileEditData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := profilehandler.Instance.Update(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan mengubah profil")
	}
	if resp.OtpRequired {
		return ctx.Status(fiber.StatusAccepted).JSON(apimodels.NewMessage("Kode OTP dikirim ke nomor lama", resp))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Profil berhasil diperbarui", resp))
}
