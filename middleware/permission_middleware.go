package middleware

import (
	"workforce-backend/lib/rbac"
	"workforce-backend/models"
	apimodels "workforce-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// PermissionRequired пропускает запрос только при наличии права у пользователя.
// Проверка идет по объединению прав всех ролей, SUPER_ADMIN проходит всегда
func PermissionRequired(code models.PermissionCode) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		if userID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("пользователь не аутентифицирован"))
		}
		allowed, err := rbac.Instance.Check(userID, code)
		if err != nil {
			log.WithError(err).
				WithField("user_id", userID).
				WithField("permission", code).
				Error("ошибка проверки прав")
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("ошибка проверки прав"))
		}
		if !allowed {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("недостаточно прав для операции"))
		}
		return ctx.Next()
	}
}
