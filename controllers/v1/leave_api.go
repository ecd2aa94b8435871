package apiv1

import (
	"workforce-backend/controllers"
	"workforce-backend/lib/leave"
	"workforce-backend/middleware"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"
	leaveapimodels "workforce-backend/models/api/leave"

	"github.com/gofiber/fiber/v2"
)

type leaveApiController struct {
	controllers.BaseAPIController
}

func InitLeaveApiRouters(app *fiber.App) {
	controller := leaveApiController{}
	app.Route("leaves", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermLeaveView), controller.list)
		router.Post("", middleware.PermissionRequired(models.PermLeaveManage), controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", middleware.PermissionRequired(models.PermLeaveView), controller.get)
			idRouter.Put("approve", middleware.PermissionRequired(models.PermLeaveApprove), controller.approve)
			idRouter.Put("reject", middleware.PermissionRequired(models.PermLeaveApprove), controller.reject)
		})
	})
}

// @Summary Список заявок на отпуск
// @Tags Отпуска
// @Description Заявки на отпуск с фильтром по работнику и статусу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id			query		string	false	"работник"
// @Param   status				query		string	false	"статус заявки"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.LeaveView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves [get]
func (c *leaveApiController) list(ctx *fiber.Ctx) error {
	var filter leaveapimodels.LeaveFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := leave.Instance.List(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создать заявку на отпуск
// @Tags Отпуска
// @Description Создать заявку на отпуск, пересечение с одобренным отпуском не допускается
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		leaveapimodels.LeaveData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves [post]
func (c *leaveApiController) create(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := leave.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Заявка на отпуск
// @Tags Отпуска
// @Description Заявка на отпуск по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID заявки"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/{id} [get]
func (c *leaveApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := leave.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Одобрить заявку
// @Tags Отпуска
// @Description Одобрить заявку на отпуск
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID заявки"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/{id}/approve [put]
func (c *leaveApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = leave.Instance.Approve(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отклонить заявку
// @Tags Отпуска
// @Description Отклонить заявку на отпуск с комментарием
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID заявки"
// @Param	body				body		leaveapimodels.RejectRequest	false	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/{id}/reject [put]
func (c *leaveApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload leaveapimodels.RejectRequest
	_ = ctx.BodyParser(&payload)
	if err = leave.Instance.Reject(middleware.GetUserID(ctx), id, payload.Comment); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
