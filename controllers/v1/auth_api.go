package apiv1

import (
	"broilink-backend/controllers"
	authhandler "broilink-backend/lib/auth"
	"broilink-backend/middleware"
	apimodels "broilink-backend/models/api"
	authapimodels "broilink-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(router fiber.Router, protected []fiber.Handler) {
	controller := authApiController{}
	router.Post("login", controller.login)
	router.Get("me", append(protected, controller.me)...)
	router.Post("logout", append(protected, controller.logout)...)
}

// @Summary Login
// @Tags Autentikasi
// @Description Login dengan username dan password, token dipakai sebagai Bearer
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.LoginResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := authhandler.Instance.Login(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan login")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Pengguna saat ini
// @Tags Autentikasi
// @Description Data pengguna dan hak akses peran
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.MeResponse}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Me(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat pengguna")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Logout
// @Tags Autentikasi
// @Description Menghapus sesi, token tidak dapat dipakai lagi
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/logout [post]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	if err := authhandler.Instance.Logout(ctx.UserContext(), middleware.GetSessionID(ctx)); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan logout")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Berhasil logout", nil))
}
