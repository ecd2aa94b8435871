package apiv1

import (
	"workforce-backend/controllers"
	"workforce-backend/lib/attendance"
	"workforce-backend/middleware"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"
	attendanceapimodels "workforce-backend/models/api/attendance"

	"github.com/gofiber/fiber/v2"
)

type attendanceApiController struct {
	controllers.BaseAPIController
}

func InitAttendanceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("attendance", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Route("records", func(recordRouter fiber.Router) {
			recordRouter.Get("", middleware.PermissionRequired(models.PermAttendanceView), controller.listRecords)
			recordRouter.Put("", middleware.PermissionRequired(models.PermAttendanceEdit), controller.saveRecord)
			recordRouter.Delete(":id", middleware.PermissionRequired(models.PermAttendanceEdit), controller.deleteRecord)
		})
		router.Route("periods", func(periodRouter fiber.Router) {
			periodRouter.Get("", middleware.PermissionRequired(models.PermAttendanceView), controller.listPeriods)
			periodRouter.Route(":id", func(idRouter fiber.Router) {
				idRouter.Get("", middleware.PermissionRequired(models.PermAttendanceView), controller.getPeriod)
				idRouter.Put("submit", middleware.PermissionRequired(models.PermAttendanceSubmit), controller.submit)
				idRouter.Put("approve", middleware.PermissionRequired(models.PermAttendanceApprove), controller.approve)
				idRouter.Put("lock", middleware.PermissionRequired(models.PermAttendanceApprove), controller.lock)
			})
		})
	})
}

// @Summary Записи табеля
// @Tags Табель
// @Description Записи табеля с фильтром по объекту, работнику и месяцу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   worksite_id			query		string	false	"объект"
// @Param   employee_id			query		string	false	"работник"
// @Param   period_month		query		string	false	"месяц YYYY-MM"
// @Success 200 {object} apimodels.Response{data=[]attendanceapimodels.RecordView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/records [get]
func (c *attendanceApiController) listRecords(ctx *fiber.Ctx) error {
	var filter attendanceapimodels.RecordFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := attendance.Instance.ListRecords(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Сохранить запись табеля
// @Tags Табель
// @Description Создать или перезаписать запись табеля, период создается при первой записи
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		attendanceapimodels.RecordData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/records [put]
func (c *attendanceApiController) saveRecord(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.RecordData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := attendance.Instance.SaveRecord(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Удалить запись табеля
// @Tags Табель
// @Description Удалить запись табеля открытого периода
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID записи"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/records/{id} [delete]
func (c *attendanceApiController) deleteRecord(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = attendance.Instance.DeleteRecord(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Периоды табеля
// @Tags Табель
// @Description Периоды табеля с фильтром по объекту, месяцу и статусу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   worksite_id			query		string	false	"объект"
// @Param   period_month		query		string	false	"месяц YYYY-MM"
// @Param   status				query		string	false	"статус периода"
// @Success 200 {object} apimodels.Response{data=[]attendanceapimodels.PeriodView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/periods [get]
func (c *attendanceApiController) listPeriods(ctx *fiber.Ctx) error {
	var filter attendanceapimodels.PeriodFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := attendance.Instance.ListPeriods(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Период табеля
// @Tags Табель
// @Description Период табеля по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID периода"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.PeriodView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/periods/{id} [get]
func (c *attendanceApiController) getPeriod(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := attendance.Instance.GetPeriod(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Сдать период
// @Tags Табель
// @Description Перевести период из OPEN в SUBMITTED
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID периода"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/periods/{id}/submit [put]
func (c *attendanceApiController) submit(ctx *fiber.Ctx) error {
	return c.transition(ctx, attendance.Instance.Submit)
}

// @Summary Утвердить период
// @Tags Табель
// @Description Перевести период из SUBMITTED в APPROVED
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID периода"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/periods/{id}/approve [put]
func (c *attendanceApiController) approve(ctx *fiber.Ctx) error {
	return c.transition(ctx, attendance.Instance.Approve)
}

// @Summary Заблокировать период
// @Tags Табель
// @Description Перевести период из APPROVED в LOCKED
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID периода"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/attendance/periods/{id}/lock [put]
func (c *attendanceApiController) lock(ctx *fiber.Ctx) error {
	return c.transition(ctx, attendance.Instance.Lock)
}

func (c *attendanceApiController) transition(ctx *fiber.Ctx, op func(actorID, periodID string) error) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = op(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
