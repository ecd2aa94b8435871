package apiv1

import (
	"workforce-backend/controllers"
	"workforce-backend/lib/transfer"
	"workforce-backend/middleware"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"
	transferapimodels "workforce-backend/models/api/transfer"

	"github.com/gofiber/fiber/v2"
)

type transferApiController struct {
	controllers.BaseAPIController
}

func InitTransferApiRouters(app *fiber.App) {
	controller := transferApiController{}
	app.Route("transfers", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermTransferView), controller.list)
		router.Post("", middleware.PermissionRequired(models.PermTransferManage), controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", middleware.PermissionRequired(models.PermTransferView), controller.get)
			idRouter.Put("approve", middleware.PermissionRequired(models.PermTransferApprove), controller.approve)
			idRouter.Put("reject", middleware.PermissionRequired(models.PermTransferApprove), controller.reject)
		})
	})
}

// @Summary Список переводов
// @Tags Переводы
// @Description Переводы работников между объектами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id			query		string	false	"работник"
// @Param   worksite_id			query		string	false	"объект, исходный или целевой"
// @Param   status				query		string	false	"статус перевода"
// @Success 200 {object} apimodels.Response{data=[]transferapimodels.TransferView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/transfers [get]
func (c *transferApiController) list(ctx *fiber.Ctx) error {
	var filter transferapimodels.TransferFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := transfer.Instance.List(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создать перевод
// @Tags Переводы
// @Description Создать заявку на перевод работника на другой объект
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		transferapimodels.TransferData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/transfers [post]
func (c *transferApiController) create(ctx *fiber.Ctx) error {
	var payload transferapimodels.TransferData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := transfer.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Карточка перевода
// @Tags Переводы
// @Description Перевод по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID перевода"
// @Success 200 {object} apimodels.Response{data=transferapimodels.TransferView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/transfers/{id} [get]
func (c *transferApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := transfer.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Одобрить перевод
// @Tags Переводы
// @Description Одобрить перевод, занятость работника переносится на целевой объект
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID перевода"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/transfers/{id}/approve [put]
func (c *transferApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = transfer.Instance.Approve(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отклонить перевод
// @Tags Переводы
// @Description Отклонить перевод с указанием причины
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID перевода"
// @Param	body				body		transferapimodels.RejectRequest	false	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/transfers/{id}/reject [put]
func (c *transferApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload transferapimodels.RejectRequest
	_ = ctx.BodyParser(&payload)
	if err = transfer.Instance.Reject(middleware.GetUserID(ctx), id, payload.Reason); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
