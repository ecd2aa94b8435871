package apiv1

import (
	"workforce-backend/controllers"
	"workforce-backend/lib/dicts"
	"workforce-backend/middleware"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"
	dictapimodels "workforce-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type dictApiController struct {
	controllers.BaseAPIController
}

func InitDictApiRouters(app *fiber.App) {
	controller := dictApiController{}
	app.Route("dicts/:kind", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Post("", middleware.PermissionRequired(models.PermDictManage), controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", middleware.PermissionRequired(models.PermDictManage), controller.update)
			idRouter.Delete("", middleware.PermissionRequired(models.PermDictManage), controller.delete)
		})
	})
}

func (c *dictApiController) getKind(ctx *fiber.Ctx) (dicts.Kind, error) {
	value, err := c.GetIDByKey(ctx, "kind")
	if err != nil {
		return "", err
	}
	kind, exist := dicts.ParseKind(value)
	if !exist {
		return "", errors.Errorf("неизвестный справочник %s", value)
	}
	return kind, nil
}

// @Summary Список записей справочника
// @Tags Справочники
// @Description Список записей справочника указанного вида
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind				path		string	true	"вид справочника"
// @Param   active_only			query		bool	false	"только активные"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.DictView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/{kind} [get]
func (c *dictApiController) list(ctx *fiber.Ctx) error {
	kind, err := c.getKind(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := dicts.Instance.List(kind, ctx.QueryBool("active_only"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создать запись справочника
// @Tags Справочники
// @Description Создать запись справочника указанного вида
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind				path		string	true	"вид справочника"
// @Param	body				body		dictapimodels.DictData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/{kind} [post]
func (c *dictApiController) create(ctx *fiber.Ctx) error {
	kind, err := c.getKind(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.DictData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := dicts.Instance.Create(middleware.GetUserID(ctx), kind, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Запись справочника
// @Tags Справочники
// @Description Запись справочника по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind				path		string	true	"вид справочника"
// @Param   id					path		string	true	"ID записи"
// @Success 200 {object} apimodels.Response{data=dictapimodels.DictView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/{kind}/{id} [get]
func (c *dictApiController) get(ctx *fiber.Ctx) error {
	kind, err := c.getKind(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := dicts.Instance.Get(kind, id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Изменить запись справочника
// @Tags Справочники
// @Description Изменить запись справочника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind				path		string	true	"вид справочника"
// @Param   id					path		string	true	"ID записи"
// @Param	body				body		dictapimodels.DictData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/{kind}/{id} [put]
func (c *dictApiController) update(ctx *fiber.Ctx) error {
	kind, err := c.getKind(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.DictData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = dicts.Instance.Update(middleware.GetUserID(ctx), kind, id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удалить запись справочника
// @Tags Справочники
// @Description Запись без ссылок удаляется, иначе деактивируется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind				path		string	true	"вид справочника"
// @Param   id					path		string	true	"ID записи"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/{kind}/{id} [delete]
func (c *dictApiController) delete(ctx *fiber.Ctx) error {
	kind, err := c.getKind(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = dicts.Instance.RetireOrDelete(middleware.GetUserID(ctx), kind, id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
