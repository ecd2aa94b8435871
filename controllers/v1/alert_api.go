package apiv1

import (
	"workforce-backend/controllers"
	"workforce-backend/lib/compliance"
	"workforce-backend/middleware"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"
	documentapimodels "workforce-backend/models/api/document"

	"github.com/gofiber/fiber/v2"
)

type alertApiController struct {
	controllers.BaseAPIController
}

func InitAlertApiRouters(app *fiber.App) {
	controller := alertApiController{}
	app.Route("alerts", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermAlertView), controller.list)
		router.Put(":id/read", middleware.PermissionRequired(models.PermAlertView), controller.markRead)
		router.Put(":id/dismiss", middleware.PermissionRequired(models.PermAlertManage), controller.dismiss)
		router.Route("rules", func(ruleRouter fiber.Router) {
			ruleRouter.Get("", middleware.PermissionRequired(models.PermAlertManage), controller.listRules)
			ruleRouter.Post("", middleware.PermissionRequired(models.PermAlertManage), controller.createRule)
			ruleRouter.Put(":id", middleware.PermissionRequired(models.PermAlertManage), controller.updateRule)
		})
	})
}

// @Summary Список уведомлений
// @Tags Уведомления
// @Description Уведомления об истекающих документах и сроках
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id			query		string	false	"работник"
// @Param   severity			query		string	false	"важность"
// @Param   only_open			query		bool	false	"без отклоненных"
// @Success 200 {object} apimodels.Response{data=[]documentapimodels.AlertView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/alerts [get]
func (c *alertApiController) list(ctx *fiber.Ctx) error {
	var filter documentapimodels.AlertFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := compliance.Instance.ListAlerts(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Отметить прочитанным
// @Tags Уведомления
// @Description Отметить уведомление прочитанным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID уведомления"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/alerts/{id}/read [put]
func (c *alertApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = compliance.Instance.MarkAlertRead(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отклонить уведомление
// @Tags Уведомления
// @Description Отклонить уведомление, оно перестает показываться в открытых
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID уведомления"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/alerts/{id}/dismiss [put]
func (c *alertApiController) dismiss(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = compliance.Instance.DismissAlert(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Правила уведомлений
// @Tags Уведомления
// @Description Правила формирования уведомлений по срокам
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]documentapimodels.AlertRuleView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/alerts/rules [get]
func (c *alertApiController) listRules(ctx *fiber.Ctx) error {
	list, err := compliance.Instance.ListRules()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создать правило
// @Tags Уведомления
// @Description Создать правило уведомлений
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		documentapimodels.AlertRuleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/alerts/rules [post]
func (c *alertApiController) createRule(ctx *fiber.Ctx) error {
	var payload documentapimodels.AlertRuleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := compliance.Instance.SaveRule(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Изменить правило
// @Tags Уведомления
// @Description Изменить правило уведомлений
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID правила"
// @Param	body				body		documentapimodels.AlertRuleData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/alerts/rules/{id} [put]
func (c *alertApiController) updateRule(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload documentapimodels.AlertRuleData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = compliance.Instance.UpdateRule(middleware.GetUserID(ctx), id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
