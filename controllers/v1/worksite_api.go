package apiv1

import (
	"workforce-backend/controllers"
	"workforce-backend/lib/worksite"
	"workforce-backend/middleware"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"
	worksiteapimodels "workforce-backend/models/api/worksite"

	"github.com/gofiber/fiber/v2"
)

type worksiteApiController struct {
	controllers.BaseAPIController
}

func InitWorksiteApiRouters(app *fiber.App) {
	controller := worksiteApiController{}
	app.Route("worksites", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermWorksiteView), controller.list)
		router.Post("", middleware.PermissionRequired(models.PermWorksiteManage), controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", middleware.PermissionRequired(models.PermWorksiteView), controller.get)
			idRouter.Put("", middleware.PermissionRequired(models.PermWorksiteManage), controller.update)
			idRouter.Delete("", middleware.PermissionRequired(models.PermWorksiteManage), controller.delete)
		})
	})
}

// @Summary Список объектов
// @Tags Объекты
// @Description Список объектов строительства
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   active_only			query		bool	false	"только активные"
// @Success 200 {object} apimodels.Response{data=[]worksiteapimodels.WorksiteView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/worksites [get]
func (c *worksiteApiController) list(ctx *fiber.Ctx) error {
	list, err := worksite.Instance.List(ctx.QueryBool("active_only"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создать объект
// @Tags Объекты
// @Description Создать объект строительства
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		worksiteapimodels.WorksiteData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/worksites [post]
func (c *worksiteApiController) create(ctx *fiber.Ctx) error {
	var payload worksiteapimodels.WorksiteData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := worksite.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Карточка объекта
// @Tags Объекты
// @Description Карточка объекта строительства
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID объекта"
// @Success 200 {object} apimodels.Response{data=worksiteapimodels.WorksiteView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/worksites/{id} [get]
func (c *worksiteApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := worksite.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Изменить объект
// @Tags Объекты
// @Description Изменить объект строительства
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID объекта"
// @Param	body				body		worksiteapimodels.WorksitePatch	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/worksites/{id} [put]
func (c *worksiteApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload worksiteapimodels.WorksitePatch
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = worksite.Instance.Update(middleware.GetUserID(ctx), id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удалить объект
// @Tags Объекты
// @Description Объект без ссылок удаляется, иначе деактивируется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID объекта"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/worksites/{id} [delete]
func (c *worksiteApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = worksite.Instance.RetireOrDelete(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
