package apiv1

import (
	"workforce-backend/controllers"
	"workforce-backend/lib/employee"
	"workforce-backend/middleware"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"
	employeeapimodels "workforce-backend/models/api/employee"

	"github.com/gofiber/fiber/v2"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermEmployeeView), controller.list)
		router.Post("", middleware.PermissionRequired(models.PermEmployeeCreate), controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", middleware.PermissionRequired(models.PermEmployeeView), controller.get)
			idRouter.Put("", middleware.PermissionRequired(models.PermEmployeeUpdate), controller.update)
			idRouter.Put("identity", middleware.PermissionRequired(models.PermEmployeeUpdate), controller.setIdentity)
			idRouter.Put("work-status", middleware.PermissionRequired(models.PermEmployeeUpdate), controller.setWorkStatus)
			idRouter.Put("employment", middleware.PermissionRequired(models.PermEmployeeUpdate), controller.setEmployment)
			idRouter.Put("salary-profile", middleware.PermissionRequired(models.PermEmployeeUpdate), controller.setSalaryProfile)
		})
	})
}

// @Summary Список работников
// @Tags Работники
// @Description Список работников с фильтром и пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search				query		string	false	"поиск по ФИО или табельному номеру"
// @Param   status				query		string	false	"статус работника"
// @Param   worksite_id			query		string	false	"объект"
// @Param   page				query		int		false	"страница"
// @Param   limit				query		int		false	"записей на странице"
// @Success 200 {object} apimodels.ListResponse{data=[]employeeapimodels.EmployeeView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	var filter employeeapimodels.EmployeeFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, total, err := employee.Instance.List(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, total, page, limit))
}

// @Summary Создать работника
// @Tags Работники
// @Description Создать работника, табельный номер назначается автоматически
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeapimodels.EmployeeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := employee.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Карточка работника
// @Tags Работники
// @Description Карточка работника с документами, статусом и условиями оплаты
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID работника"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := employee.Instance.Get(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Изменить работника
// @Tags Работники
// @Description Частичное изменение основных данных работника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID работника"
// @Param	body				body		employeeapimodels.EmployeePatch	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.EmployeePatch
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = employee.Instance.Update(middleware.GetUserID(ctx), id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удостоверение личности
// @Tags Работники
// @Description Сохранить данные удостоверения личности работника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID работника"
// @Param	body				body		employeeapimodels.IdentityData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/identity [put]
func (c *employeeApiController) setIdentity(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.IdentityData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = employee.Instance.SetIdentity(middleware.GetUserID(ctx), id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Правовой статус
// @Tags Работники
// @Description Сохранить правовой статус работника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID работника"
// @Param	body				body		employeeapimodels.WorkStatusData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/work-status [put]
func (c *employeeApiController) setWorkStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.WorkStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = employee.Instance.SetWorkStatus(middleware.GetUserID(ctx), id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Занятость
// @Tags Работники
// @Description Сохранить занятость работника на объекте
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID работника"
// @Param	body				body		employeeapimodels.EmploymentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/employment [put]
func (c *employeeApiController) setEmployment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.EmploymentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = employee.Instance.SetEmployment(middleware.GetUserID(ctx), id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Условия оплаты
// @Tags Работники
// @Description Сохранить условия оплаты работника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID работника"
// @Param	body				body		employeeapimodels.SalaryProfileData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/salary-profile [put]
func (c *employeeApiController) setSalaryProfile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.SalaryProfileData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = employee.Instance.SetSalaryProfile(middleware.GetUserID(ctx), id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
