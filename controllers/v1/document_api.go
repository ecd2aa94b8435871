package apiv1

import (
	"io"
	"workforce-backend/controllers"
	"workforce-backend/lib/compliance"
	"workforce-backend/middleware"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"
	documentapimodels "workforce-backend/models/api/document"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type documentApiController struct {
	controllers.BaseAPIController
}

const uploadLimit = 20 * 1024 * 1024

func InitDocumentApiRouters(app *fiber.App) {
	controller := documentApiController{}
	app.Route("documents", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.PermissionRequired(models.PermDocumentView), controller.list)
		router.Post("", middleware.PermissionRequired(models.PermDocumentUpload), controller.create)
		router.Get("files/:fileId", middleware.PermissionRequired(models.PermDocumentView), controller.downloadFile)
		router.Get("compliance/:employeeId", middleware.PermissionRequired(models.PermDocumentView), controller.summary)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", middleware.PermissionRequired(models.PermDocumentView), controller.get)
			idRouter.Put("", middleware.PermissionRequired(models.PermDocumentUpload), controller.update)
			idRouter.Delete("", middleware.PermissionRequired(models.PermDocumentUpload), controller.delete)
			idRouter.Put("verify", middleware.PermissionRequired(models.PermDocumentVerify), controller.verify)
			idRouter.Post("upload", middleware.PermissionRequired(models.PermDocumentUpload), middleware.WithBodyLimit(uploadLimit), controller.uploadFile)
		})
	})
}

// @Summary Список документов
// @Tags Документы
// @Description Документы работников с расчетным статусом действия
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id			query		string	false	"работник"
// @Param   status				query		string	false	"статус документа"
// @Success 200 {object} apimodels.Response{data=[]documentapimodels.DocumentView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents [get]
func (c *documentApiController) list(ctx *fiber.Ctx) error {
	var filter documentapimodels.DocumentFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := compliance.Instance.ListDocuments(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создать документ
// @Tags Документы
// @Description Завести документ работника, на пару работник-вид допускается один документ
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		documentapimodels.DocumentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents [post]
func (c *documentApiController) create(ctx *fiber.Ctx) error {
	var payload documentapimodels.DocumentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := compliance.Instance.CreateDocument(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Карточка документа
// @Tags Документы
// @Description Документ с файлами и расчетным статусом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID документа"
// @Success 200 {object} apimodels.Response{data=documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id} [get]
func (c *documentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := compliance.Instance.GetDocument(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Изменить документ
// @Tags Документы
// @Description Изменить документ, смена срока действия снимает отметку проверки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID документа"
// @Param	body				body		documentapimodels.DocumentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id} [put]
func (c *documentApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload documentapimodels.DocumentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = compliance.Instance.UpdateDocument(middleware.GetUserID(ctx), id, payload); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удалить документ
// @Tags Документы
// @Description Удалить документ вместе с файлами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID документа"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id} [delete]
func (c *documentApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = compliance.Instance.DeleteDocument(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Подтвердить документ
// @Tags Документы
// @Description Отметить документ проверенным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID документа"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id}/verify [put]
func (c *documentApiController) verify(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = compliance.Instance.VerifyDocument(middleware.GetUserID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Загрузить файл документа
// @Tags Документы
// @Description Загрузить скан документа, повторная загрузка того же содержимого версию не создает
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ID документа"
// @Param   file				formData	file	true	"file to upload"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id}/upload [post]
func (c *documentApiController) uploadFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Ошибка при получении файла документа")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("Ошибка при загрузке файла документа")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	contentType := file.Header.Get(fiber.HeaderContentType)
	fileID, err := compliance.Instance.UploadFile(ctx.UserContext(), middleware.GetUserID(ctx), id, file.Filename, contentType, fileBody)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Скачать файл документа
// @Tags Документы
// @Description Скачать файл документа по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   fileId				path		string	true	"ID файла"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/files/{fileId} [get]
func (c *documentApiController) downloadFile(ctx *fiber.Ctx) error {
	fileID, err := c.GetIDByKey(ctx, "fileId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	content, fileName, contentType, err := compliance.Instance.DownloadFile(ctx.UserContext(), fileID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(content)
}

// @Summary Комплектность документов
// @Tags Документы
// @Description Сводка комплектности документов работника относительно требований его правового статуса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employeeId			path		string	true	"ID работника"
// @Success 200 {object} apimodels.Response{data=documentapimodels.ComplianceView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/compliance/{employeeId} [get]
func (c *documentApiController) summary(ctx *fiber.Ctx) error {
	employeeID, err := c.GetIDByKey(ctx, "employeeId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := compliance.Instance.Summary(employeeID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
