package apiv1

import (
	"workforce-backend/controllers"
	"workforce-backend/lib/report"
	"workforce-backend/middleware"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"
	reportapimodels "workforce-backend/models/api/report"

	"github.com/gofiber/fiber/v2"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("reports", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("export", middleware.PermissionRequired(models.PermReportExport), controller.export)
	})
}

// @Summary Выгрузка отчета
// @Tags Отчеты
// @Description Выгрузка отчета в Excel, заголовки на выбранном языке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		reportapimodels.ExportRequest	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/export [post]
func (c *reportApiController) export(ctx *fiber.Ctx) error {
	var payload reportapimodels.ExportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, fileName, err := report.Instance.Export(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
