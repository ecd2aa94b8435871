package apiv1

import (
	"workforce-backend/controllers"
	"workforce-backend/lib/asset"
	"workforce-backend/middleware"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"
	assetapimodels "workforce-backend/models/api/asset"

	"github.com/gofiber/fiber/v2"
)

type assetApiController struct {
	controllers.BaseAPIController
}

func InitAssetApiRouters(app *fiber.App) {
	controller := assetApiController{}
	app.Route("assets", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermAssetView), controller.list)
		router.Post("", middleware.PermissionRequired(models.PermAssetManage), controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", middleware.PermissionRequired(models.PermAssetView), controller.get)
			idRouter.Get("history", middleware.PermissionRequired(models.PermAssetView), controller.history)
			idRouter.Put("retire", middleware.PermissionRequired(models.PermAssetManage), controller.retire)
			idRouter.Post("assign", middleware.PermissionRequired(models.PermAssetManage), controller.assign)
			idRouter.Put("return", middleware.PermissionRequired(models.PermAssetManage), controller.returnAsset)
		})
	})
}

// @Summary Список имущества
// @Tags Имущество
// @Description Учет имущества с фильтром по категории, объекту и статусу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   category_id			query		string	false	"категория"
// @Param   worksite_id			query		string	false	"объект"
// @Param   status				query		string	false	"статус"
// @Success 200 {object} apimodels.Response{data=[]assetapimodels.AssetView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assets [get]
func (c *assetApiController) list(ctx *fiber.Ctx) error {
	var filter assetapimodels.AssetFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := asset.Instance.List(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Завести имущество
// @Tags Имущество
// @Description Завести единицу имущества с инвентарным номером
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		assetapimodels.AssetData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assets [post]
func (c *assetApiController) create(ctx *fiber.Ctx) error {
	var payload assetapimodels.AssetData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := asset.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Карточка имущества
// @Tags Имущество
// @Description Единица имущества с текущей выдачей
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID имущества"
// @Success 200 {object} apimodels.Response{data=assetapimodels.AssetView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assets/{id} [get]
func (c *assetApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := asset.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary История выдач
// @Tags Имущество
// @Description История выдач единицы имущества
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID имущества"
// @Success 200 {object} apimodels.Response{data=[]assetapimodels.AssignmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assets/{id}/history [get]
func (c *assetApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := asset.Instance.History(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Списать имущество
// @Tags Имущество
// @Description Списать имущество, выданное не списывается
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID имущества"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assets/{id}/retire [put]
func (c *assetApiController) retire(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = asset.Instance.Retire(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выдать имущество
// @Tags Имущество
// @Description Выдать имущество работнику, по единице допускается одна незакрытая выдача
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID имущества"
// @Param	body				body		assetapimodels.AssignRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assets/{id}/assign [post]
func (c *assetApiController) assign(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assetapimodels.AssignRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	assignmentID, err := asset.Instance.Assign(middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(assignmentID))
}

// @Summary Принять имущество
// @Tags Имущество
// @Description Закрыть выдачу, имущество возвращается в доступные
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID имущества"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assets/{id}/return [put]
func (c *assetApiController) returnAsset(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = asset.Instance.Return(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
