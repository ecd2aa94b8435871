package apiv1

import (
	"workforce-backend/controllers"
	"workforce-backend/lib/users"
	"workforce-backend/middleware"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"
	usersapimodels "workforce-backend/models/api/users"

	"github.com/gofiber/fiber/v2"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.PermissionRequired(models.PermUserManage))
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.deactivate)
			idRouter.Post("roles", controller.assignRole)
			idRouter.Delete("roles/:roleId", controller.revokeRole)
		})
	})
	app.Route("roles", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), middleware.PermissionRequired(models.PermUserManage))
		router.Get("", controller.listRoles)
		router.Post("", controller.createRole)
		router.Delete(":id", controller.deleteRole)
	})
}

// @Summary Список пользователей
// @Tags Пользователи
// @Description Список пользователей с фильтром и пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search				query		string	false	"поиск по имени или email"
// @Param   status				query		string	false	"статус пользователя"
// @Param   page				query		int		false	"страница"
// @Param   limit				query		int		false	"записей на странице"
// @Success 200 {object} apimodels.ListResponse{data=[]usersapimodels.UserView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	var filter usersapimodels.UserFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, count, err := users.Instance.List(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, count, page, limit))
}

// @Summary Создать пользователя
// @Tags Пользователи
// @Description Создать пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		usersapimodels.UserData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	var payload usersapimodels.UserData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := users.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Карточка пользователя
// @Tags Пользователи
// @Description Карточка пользователя с ролями
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID пользователя"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := users.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Изменить пользователя
// @Tags Пользователи
// @Description Частичное изменение пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID пользователя"
// @Param	body				body		usersapimodels.UserPatch	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [put]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload usersapimodels.UserPatch
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = users.Instance.Update(middleware.GetUserID(ctx), id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Деактивировать пользователя
// @Tags Пользователи
// @Description Деактивировать пользователя, вход блокируется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID пользователя"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [delete]
func (c *userApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = users.Instance.Deactivate(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Назначить роль
// @Tags Пользователи
// @Description Назначить пользователю роль, для ролей уровня объекта указывается объект
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID пользователя"
// @Param	body				body		usersapimodels.AssignRoleRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id}/roles [post]
func (c *userApiController) assignRole(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload usersapimodels.AssignRoleRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = users.Instance.AssignRole(middleware.GetUserID(ctx), id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отозвать роль
// @Tags Пользователи
// @Description Отозвать роль у пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID пользователя"
// @Param   roleId				path		string	true	"ID роли"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id}/roles/{roleId} [delete]
func (c *userApiController) revokeRole(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	roleID, err := c.GetIDByKey(ctx, "roleId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = users.Instance.RevokeRole(middleware.GetUserID(ctx), id, roleID); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список ролей
// @Tags Пользователи
// @Description Список ролей с правами
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]usersapimodels.RoleView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles [get]
func (c *userApiController) listRoles(ctx *fiber.Ctx) error {
	list, err := users.Instance.ListRoles()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создать роль
// @Tags Пользователи
// @Description Создать роль с набором прав
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		usersapimodels.RoleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles [post]
func (c *userApiController) createRole(ctx *fiber.Ctx) error {
	var payload usersapimodels.RoleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := users.Instance.CreateRole(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Удалить роль
// @Tags Пользователи
// @Description Удалить роль без назначений
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID роли"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/{id} [delete]
func (c *userApiController) deleteRole(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = users.Instance.DeleteRole(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
