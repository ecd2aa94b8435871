package apiv1

import (
	"workforce-backend/controllers"
	"workforce-backend/lib/audit"
	"workforce-backend/lib/audit/store"
	"workforce-backend/middleware"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type auditApiController struct {
	controllers.BaseAPIController
}

func InitAuditApiRouters(app *fiber.App) {
	controller := auditApiController{}
	app.Route("audit", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.PermissionRequired(models.PermAuditView))
		router.Get("", controller.list)
	})
}

// @Summary Журнал аудита
// @Tags Аудит
// @Description Журнал действий пользователей, новые записи первыми
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   actor_id			query		string	false	"пользователь"
// @Param   entity_type			query		string	false	"тип сущности"
// @Param   entity_id			query		string	false	"ID сущности"
// @Param   action				query		string	false	"действие"
// @Param   page				query		int		false	"страница"
// @Param   limit				query		int		false	"записей на странице"
// @Success 200 {object} apimodels.ListResponse{data=[]dbmodels.AuditLog}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/audit [get]
func (c *auditApiController) list(ctx *fiber.Ctx) error {
	filter := store.Filter{
		ActorID:    ctx.Query("actor_id"),
		EntityType: ctx.Query("entity_type"),
		EntityID:   ctx.Query("entity_id"),
		Action:     ctx.Query("action"),
	}
	var pageRequest apimodels.PageRequest
	if err := c.QueryParser(ctx, &pageRequest); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := pageRequest.GetPage()
	list, count, err := audit.Instance.List(filter, page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, count, page, limit))
}
