package apiv1

import (
	"io"

	"broilink-backend/controllers"
	dashboardhandler "broilink-backend/lib/dashboard"
	profilehandler "broilink-backend/lib/profile"
	reportshandler "broilink-backend/lib/reports"
	"broilink-backend/middleware"
	apimodels "broilink-backend/models/api"
	profileapimodels "broilink-backend/models/api/profile"
	reportsapimodels "broilink-backend/models/api/reports"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type peternakApiController struct {
	controllers.BaseAPIController
}

func InitPeternakApiRouters(router fiber.Router) {
	controller := peternakApiController{}
	router.Get("dashboard", controller.dashboard)
	router.Route("reports", func(reports fiber.Router) {
		reports.Post("", controller.reportCreate)
		reports.Get("", controller.reportList)
		reports.Get("date/:date", controller.reportByDate)
		reports.Put(":id", controller.reportUpdate)
	})
	router.Post("manual-data", controller.reportCreate)
	router.Post("requests", controller.requestCreate)
	router.Route("profile", func(profile fiber.Router) {
		profile.Get("", controller.profileGet)
		profile.Put("", controller.profileUpdate)
		profile.Post("photo", controller.photoUpload)
		profile.Get("photo", controller.photoGet)
	})
	router.Post("otp/send", controller.otpSend)
	router.Post("otp/verify", controller.otpVerify)
}

// @Summary Dashboard peternak
// @Tags Peternak
// @Description Kandang yang ditugaskan, data sensor terakhir dan ringkasan 7 hari
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.PeternakDashboard}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/peternak/dashboard [get]
func (c *peternakApiController) dashboard(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.Peternak(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat dashboard peternak")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Laporan harian
// @Tags Peternak
// @Description Satu laporan per kandang per hari, tanggal harus hari ini
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reportsapimodels.ManualReportData	true	"request body"
// @Success 200 {object} apimodels.Response{data=reportsapimodels.ManualReportView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/peternak/reports [post]
func (c *peternakApiController) reportCreate(ctx *fiber.Ctx) error {
	var payload reportsapimodels.ManualReportData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := reportshandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan menyimpan laporan harian")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Laporan berhasil disimpan", resp))
}

// @Summary Daftar laporan harian
// @Tags Peternak
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   days		query		int	false	"jumlah hari terakhir, default 7"
// @Success 200 {object} apimodels.Response{data=[]reportsapimodels.ManualReportView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/peternak/reports [get]
func (c *peternakApiController) reportList(ctx *fiber.Ctx) error {
	var filter reportsapimodels.ReportListFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := reportshandler.Instance.List(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat laporan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Laporan pada tanggal
// @Tags Peternak
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   date          		path    string  				    	true         "YYYY-MM-DD"
// @Success 200 {object} apimodels.Response{data=reportsapimodels.ManualReportView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/peternak/reports/date/{date} [get]
func (c *peternakApiController) reportByDate(ctx *fiber.Ctx) error {
	date, err := c.GetParam(ctx, "date")
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := reportshandler.Instance.GetByDate(middleware.GetUserID(ctx), date)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat laporan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Ubah laporan harian
// @Tags Peternak
// @Description Hanya laporan hari ini yang dapat diubah
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "report ID"
// @Param	body body	 reportsapimodels.ManualReportData	true	"request body"
// @Success 200 {object} apimodels.Response{data=reportsapimodels.ManualReportView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/peternak/reports/{id} [put]
func (c *peternakApiController) reportUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	var payload reportsapimodels.ManualReportData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := reportshandler.Instance.Update(middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan mengubah laporan harian")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Laporan berhasil diperbarui", resp))
}

// @Summary Permintaan peternak
// @Tags Peternak
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestsapimodels.RawRequestPayload	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestsapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/peternak/requests [post]
func (c *peternakApiController) requestCreate(ctx *fiber.Ctx) error {
	return createUserRequest(ctx, &c.BaseAPIController)
}

// @Summary Profil peternak
// @Tags Peternak
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/peternak/profile [get]
func (c *peternakApiController) profileGet(ctx *fiber.Ctx) error {
	return getProfile(ctx, &c.BaseAPIController)
}

// @Summary Ubah profil peternak
// @Tags Peternak
// @Description Nama tidak dapat diubah. Nomor baru disimpan setelah OTP ke nomor lama diverifikasi (202).
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.ProfileEditData	true	"request body"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileUpdateResult}
// @Success 202 {object} apimodels.Response{data=profileapimodels.ProfileUpdateResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/peternak/profile [put]
func (c *peternakApiController) profileUpdate(ctx *fiber.Ctx) error {
	return updateProfile(ctx, &c.BaseAPIController)
}

// @Summary Kirim ulang OTP
// @Tags Peternak
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.OtpSendData	true	"request body"
// @Success 200 {object} apimodels.Response{data=profileapimodels.OtpSendResult}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/peternak/otp/send [post]
func (c *peternakApiController) otpSend(ctx *fiber.Ctx) error {
	var payload profileapimodels.OtpSendData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := profilehandler.Instance.OtpSend(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan mengirim OTP")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Kode OTP dikirim", resp))
}

// @Summary Verifikasi OTP
// @Tags Peternak
// @Description Kode 6 digit yang benar menyimpan nomor telepon baru
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.OtpVerifyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/peternak/otp/verify [post]
func (c *peternakApiController) otpVerify(ctx *fiber.Ctx) error {
	var payload profileapimodels.OtpVerifyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := profilehandler.Instance.OtpVerify(ctx.UserContext(), middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan verifikasi OTP")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Nomor telepon berhasil diperbarui", resp))
}

// @Summary Unggah foto profil
// @Tags Peternak
// @Description JPG atau PNG, maksimal 2 MB
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   photo		formData	file	true	"foto"
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/peternak/profile/photo [post]
func (c *peternakApiController) photoUpload(ctx *fiber.Ctx) error {
	header, err := ctx.FormFile("photo")
	if err != nil {
		return c.BadRequest(ctx, errors.New("file foto wajib diunggah"))
	}
	if header.Size > profilehandler.MaxPhotoSize {
		return c.BadRequest(ctx, errors.New("ukuran foto maksimal 2 MB"))
	}
	file, err := header.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan membaca foto")
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan membaca foto")
	}
	contentType := header.Header.Get(fiber.HeaderContentType)
	resp, err := profilehandler.Instance.UploadPhoto(ctx.UserContext(), middleware.GetUserID(ctx), body, contentType)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan menyimpan foto profil")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Foto profil diperbarui", resp))
}

// @Summary Foto profil
// @Tags Peternak
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/peternak/profile/photo [get]
func (c *peternakApiController) photoGet(ctx *fiber.Ctx) error {
	obj, err := profilehandler.Instance.GetPhoto(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat foto profil")
	}
	ctx.Set(fiber.HeaderContentType, obj.ContentType)
	return ctx.Status(fiber.StatusOK).Send(obj.Body)
}
