package apiv1

import (
	"workforce-backend/controllers"
	"workforce-backend/lib/payroll"
	"workforce-backend/middleware"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"
	payrollapimodels "workforce-backend/models/api/payroll"

	"github.com/gofiber/fiber/v2"
)

type payrollApiController struct {
	controllers.BaseAPIController
}

func InitPayrollApiRouters(app *fiber.App) {
	controller := payrollApiController{}
	app.Route("payroll", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Route("runs", func(runRouter fiber.Router) {
			runRouter.Get("", middleware.PermissionRequired(models.PermPayrollView), controller.listRuns)
			runRouter.Post("", middleware.PermissionRequired(models.PermPayrollCalculate), controller.createRun)
			runRouter.Route(":id", func(idRouter fiber.Router) {
				idRouter.Get("", middleware.PermissionRequired(models.PermPayrollView), controller.getRun)
				idRouter.Put("calculate", middleware.PermissionRequired(models.PermPayrollCalculate), controller.calculate)
				idRouter.Put("approve", middleware.PermissionRequired(models.PermPayrollApprove), controller.approve)
				idRouter.Put("paid", middleware.PermissionRequired(models.PermPayrollApprove), controller.markPaid)
				idRouter.Put("lock", middleware.PermissionRequired(models.PermPayrollLock), controller.lock)
			})
		})
		router.Route("items", func(itemRouter fiber.Router) {
			itemRouter.Put(":id/adjustment", middleware.PermissionRequired(models.PermPayrollCalculate), controller.setAdjustment)
		})
		router.Route("earnings", func(earningRouter fiber.Router) {
			earningRouter.Get("", middleware.PermissionRequired(models.PermPayrollView), controller.listEarnings)
			earningRouter.Post("", middleware.PermissionRequired(models.PermPayrollCalculate), controller.addEarning)
			earningRouter.Put(":id/approve", middleware.PermissionRequired(models.PermPayrollApprove), controller.approveEarning)
		})
		router.Route("deductions", func(deductionRouter fiber.Router) {
			deductionRouter.Post("", middleware.PermissionRequired(models.PermPayrollCalculate), controller.addDeduction)
			deductionRouter.Put(":id/approve", middleware.PermissionRequired(models.PermPayrollApprove), controller.approveDeduction)
		})
	})
}

// @Summary Список ведомостей
// @Tags Зарплата
// @Description Список расчетных ведомостей
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   worksite_id			query		string	false	"объект"
// @Param   period_month		query		string	false	"месяц YYYY-MM"
// @Param   status				query		string	false	"статус ведомости"
// @Success 200 {object} apimodels.Response{data=[]payrollapimodels.RunView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/runs [get]
func (c *payrollApiController) listRuns(ctx *fiber.Ctx) error {
	var filter payrollapimodels.RunFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := payroll.Instance.ListRuns(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создать ведомость
// @Tags Зарплата
// @Description Создать расчетную ведомость за месяц по объекту
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		payrollapimodels.RunData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/runs [post]
func (c *payrollApiController) createRun(ctx *fiber.Ctx) error {
	var payload payrollapimodels.RunData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := payroll.Instance.CreateRun(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Ведомость
// @Tags Зарплата
// @Description Ведомость со строками расчета по работникам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID ведомости"
// @Success 200 {object} apimodels.Response{data=payrollapimodels.RunView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/runs/{id} [get]
func (c *payrollApiController) getRun(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := payroll.Instance.GetRun(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Рассчитать ведомость
// @Tags Зарплата
// @Description Пересчитать ведомость из табеля, прежние строки заменяются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID ведомости"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/runs/{id}/calculate [put]
func (c *payrollApiController) calculate(ctx *fiber.Ctx) error {
	return c.runOp(ctx, payroll.Instance.Calculate)
}

// @Summary Утвердить ведомость
// @Tags Зарплата
// @Description Утвердить рассчитанную ведомость
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID ведомости"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/runs/{id}/approve [put]
func (c *payrollApiController) approve(ctx *fiber.Ctx) error {
	return c.runOp(ctx, payroll.Instance.Approve)
}

// @Summary Отметить выплату
// @Tags Зарплата
// @Description Отметить утвержденную ведомость выплаченной
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID ведомости"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/runs/{id}/paid [put]
func (c *payrollApiController) markPaid(ctx *fiber.Ctx) error {
	return c.runOp(ctx, payroll.Instance.MarkPaid)
}

// @Summary Заблокировать ведомость
// @Tags Зарплата
// @Description Заблокировать ведомость от изменений
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID ведомости"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/runs/{id}/lock [put]
func (c *payrollApiController) lock(ctx *fiber.Ctx) error {
	return c.runOp(ctx, payroll.Instance.Lock)
}

func (c *payrollApiController) runOp(ctx *fiber.Ctx, op func(actorID, runID string) error) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = op(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Начисления и удержания работника
// @Tags Зарплата
// @Description Разовые начисления и удержания работника за месяц
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id			query		string	true	"работник"
// @Param   period_month		query		string	true	"месяц YYYY-MM"
// @Success 200 {object} apimodels.Response{data=[]payrollapimodels.EarningView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/earnings [get]
func (c *payrollApiController) listEarnings(ctx *fiber.Ctx) error {
	list, err := payroll.Instance.ListEarnings(ctx.Query("employee_id"), ctx.Query("period_month"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Добавить начисление
// @Tags Зарплата
// @Description Добавить разовое начисление работнику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		payrollapimodels.EarningData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/earnings [post]
func (c *payrollApiController) addEarning(ctx *fiber.Ctx) error {
	return c.addAdjustment(ctx, payroll.Instance.AddEarning)
}

// @Summary Добавить удержание
// @Tags Зарплата
// @Description Добавить разовое удержание работнику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		payrollapimodels.EarningData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/deductions [post]
func (c *payrollApiController) addDeduction(ctx *fiber.Ctx) error {
	return c.addAdjustment(ctx, payroll.Instance.AddDeduction)
}

func (c *payrollApiController) addAdjustment(ctx *fiber.Ctx, op func(actorID string, request payrollapimodels.EarningData) (string, error)) error {
	var payload payrollapimodels.EarningData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := op(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Утвердить начисление
// @Tags Зарплата
// @Description Утвердить разовое начисление, в расчет попадают только утвержденные
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID начисления"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/earnings/{id}/approve [put]
func (c *payrollApiController) approveEarning(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payroll.Instance.ApproveEarning(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Утвердить удержание
// @Tags Зарплата
// @Description Утвердить разовое удержание, в расчет попадают только утвержденные
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID удержания"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/deductions/{id}/approve [put]
func (c *payrollApiController) approveDeduction(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payroll.Instance.ApproveDeduction(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Корректировка строки ведомости
// @Tags Зарплата
// @Description Задать ручную корректировку строки ведомости, сумма может быть отрицательной
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID строки ведомости"
// @Param	body				body		payrollapimodels.AdjustmentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll/items/{id}/adjustment [put]
func (c *payrollApiController) setAdjustment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload payrollapimodels.AdjustmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payroll.Instance.SetAdjustment(middleware.GetUserID(ctx), id, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
