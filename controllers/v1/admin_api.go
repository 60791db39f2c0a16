package apiv1

import (
	"broilink-backend/controllers"
	dashboardhandler "broilink-backend/lib/dashboard"
	farmconfighandler "broilink-backend/lib/farm-config"
	farmshandler "broilink-backend/lib/farms"
	farmsstore "broilink-backend/lib/farms/store"
	requestshandler "broilink-backend/lib/requests"
	usershandler "broilink-backend/lib/users"
	"broilink-backend/middleware"
	apimodels "broilink-backend/models/api"
	farmconfigapimodels "broilink-backend/models/api/farmconfig"
	farmsapimodels "broilink-backend/models/api/farms"
	requestsapimodels "broilink-backend/models/api/requests"
	usersapimodels "broilink-backend/models/api/users"

	"github.com/gofiber/fiber/v2"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(router fiber.Router) {
	controller := adminApiController{}
	router.Get("dashboard", controller.dashboard)
	router.Get("owners", controller.owners)
	router.Get("peternaks/:ownerId", controller.peternaks)
	router.Route("users", func(users fiber.Router) {
		users.Get("", controller.userList)
		users.Post("", controller.userCreate)
		users.Get(":id", controller.userGet)
		users.Put(":id", controller.userUpdate)
		users.Delete(":id", controller.userDelete)
	})
	router.Route("farms", func(farms fiber.Router) {
		farms.Get("", controller.farmList)
		farms.Post("", controller.farmCreate)
		farms.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.farmUpdate)
			idRoute.Delete("", controller.farmDelete)
			idRoute.Put("assign-peternak", controller.farmAssign)
			idRoute.Get("config", controller.configGet)
			idRoute.Put("config", controller.configSave)
			idRoute.Post("config/reset", controller.configReset)
		})
	})
	router.Route("requests", func(requests fiber.Router) {
		requests.Get("", controller.requestList)
		requests.Get(":id", controller.requestGet)
		requests.Put(":id/status", controller.requestStatus)
	})
}

// @Summary Dashboard admin
// @Tags Admin
// @Description Jumlah owner, peternak, permintaan menunggu dan 3 permintaan terbaru
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.AdminDashboard}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/dashboard [get]
func (c *adminApiController) dashboard(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.Admin()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat dashboard admin")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Daftar owner
// @Tags Admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]usersapimodels.ShortUserView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/owners [get]
func (c *adminApiController) owners(ctx *fiber.Ctx) error {
	resp, err := usershandler.Instance.Owners()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat daftar owner")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Peternak milik owner
// @Tags Admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   ownerId          	path    string  				    	true         "owner ID"
// @Success 200 {object} apimodels.Response{data=[]usersapimodels.ShortUserView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/peternaks/{ownerId} [get]
func (c *adminApiController) peternaks(ctx *fiber.Ctx) error {
	ownerID, err := c.GetParam(ctx, "ownerId")
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := usershandler.Instance.Peternaks(ownerID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat daftar peternak")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Daftar pengguna
// @Tags Admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search		query		string	false	"cari nama, username, email"
// @Param   role		query		string	false	"Owner | Peternak"
// @Param   page		query		int	false	"halaman"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserListResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/users [get]
func (c *adminApiController) userList(ctx *fiber.Ctx) error {
	var filter usersapimodels.UserFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := usershandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat daftar pengguna")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Tambah pengguna
// @Tags Admin
// @Description Owner dengan farm_name sekaligus membuat kandang; Peternak wajib owner_id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 usersapimodels.UserCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/users [post]
func (c *adminApiController) userCreate(ctx *fiber.Ctx) error {
	var payload usersapimodels.UserCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	id, err := usershandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan membuat pengguna")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Pengguna berhasil ditambahkan", id))
}

// @Summary Data pengguna
// @Tags Admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/users/{id} [get]
func (c *adminApiController) userGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := usershandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat pengguna")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Ubah pengguna
// @Tags Admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Param	body body	 usersapimodels.UserEditData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/users/{id} [put]
func (c *adminApiController) userUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	var payload usersapimodels.UserEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err = usershandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan mengubah pengguna")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Pengguna berhasil diperbarui", nil))
}

// @Summary Hapus pengguna
// @Tags Admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/users/{id} [delete]
func (c *adminApiController) userDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	if err = usershandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan menghapus pengguna")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Pengguna berhasil dihapus", nil))
}

// @Summary Daftar kandang
// @Tags Admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search		query		string	false	"cari nama kandang"
// @Param   owner_id		query		string	false	"filter owner"
// @Success 200 {object} apimodels.Response{data=[]farmsapimodels.FarmView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/farms [get]
func (c *adminApiController) farmList(ctx *fiber.Ctx) error {
	filter := farmsstore.Filter{
		OwnerID: ctx.Query("owner_id"),
		Search:  ctx.Query("search"),
	}
	resp, err := farmshandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat daftar kandang")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Tambah kandang
// @Tags Admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 farmsapimodels.FarmData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/farms [post]
func (c *adminApiController) farmCreate(ctx *fiber.Ctx) error {
	var payload farmsapimodels.FarmData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	id, err := farmshandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan membuat kandang")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Kandang berhasil ditambahkan", id))
}

// @Summary Ubah kandang
// @Tags Admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "farm ID"
// @Param	body body	 farmsapimodels.FarmData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/farms/{id} [put]
func (c *adminApiController) farmUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	var payload farmsapimodels.FarmData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err = farmshandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan mengubah kandang")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Kandang berhasil diperbarui", nil))
}

// @Summary Hapus kandang
// @Tags Admin
// @Description Menghapus kandang beserta konfigurasi, laporan dan data sensornya
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "farm ID"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/farms/{id} [delete]
func (c *adminApiController) farmDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	if err = farmshandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan menghapus kandang")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Kandang berhasil dihapus", nil))
}

// @Summary Tugaskan peternak
// @Tags Admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "farm ID"
// @Param	body body	 farmsapimodels.AssignPeternakData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/farms/{id}/assign-peternak [put]
func (c *adminApiController) farmAssign(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	var payload farmsapimodels.AssignPeternakData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err = farmshandler.Instance.AssignPeternak(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan menugaskan peternak")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Peternak berhasil ditugaskan", nil))
}

// @Summary Konfigurasi kandang
// @Tags Admin
// @Description 17 parameter ambang; kandang tanpa konfigurasi memakai nilai bawaan
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "farm ID"
// @Success 200 {object} apimodels.Response{data=farmconfigapimodels.FarmConfigView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/farms/{id}/config [get]
func (c *adminApiController) configGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := farmconfighandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat konfigurasi kandang")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Simpan konfigurasi kandang
// @Tags Admin
// @Description Penyimpanan pertama menjadi konfigurasi default kandang
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "farm ID"
// @Param	body body	 farmconfigapimodels.FarmConfigData	true	"request body"
// @Success 200 {object} apimodels.Response{data=farmconfigapimodels.FarmConfigView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/farms/{id}/config [put]
func (c *adminApiController) configSave(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	var payload farmconfigapimodels.FarmConfigData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := farmconfighandler.Instance.Save(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan menyimpan konfigurasi kandang")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Konfigurasi berhasil disimpan", resp))
}

// @Summary Kembalikan konfigurasi default
// @Tags Admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "farm ID"
// @Success 200 {object} apimodels.Response{data=farmconfigapimodels.FarmConfigView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/farms/{id}/config/reset [post]
func (c *adminApiController) configReset(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := farmconfighandler.Instance.Reset(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan reset konfigurasi kandang")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Konfigurasi dikembalikan ke default", resp))
}

// @Summary Riwayat permintaan
// @Tags Admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   sort		query		string	false	"newest | oldest"
// @Param   page		query		int	false	"halaman"
// @Success 200 {object} apimodels.Response{data=requestsapimodels.RequestListResponse}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/requests [get]
func (c *adminApiController) requestList(ctx *fiber.Ctx) error {
	var filter requestsapimodels.ListFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := requestshandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat riwayat permintaan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Detail permintaan
// @Tags Admin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=requestsapimodels.RequestDetailView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/requests/{id} [get]
func (c *adminApiController) requestGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := requestshandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kesalahan memuat permintaan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Ubah status permintaan
// @Tags Admin
// @Description Status: menunggu, diproses, selesai, ditolak. Perpindahan antar status bebas.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "request ID"
// @Param	body body	 requestsapimodels.StatusUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestsapimodels.RequestDetailView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/admin/requests/{id}/status [put]
func (c *adminApiController) requestStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.BadRequest(ctx, err)
	}
	var payload requestsapimodels.StatusUpdateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.BadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.BadRequest(ctx, err)
	}
	resp, err := requestshandler.Instance.UpdateStatus(id, payload, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("request_id", id), err, "kesalahan mengubah status permintaan")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Status permintaan diperbarui", resp))
}
