package apiv1

import (
	"time"
	"workforce-backend/config"
	"workforce-backend/controllers"
	authhandler "workforce-backend/lib/auth"
	"workforce-backend/middleware"
	apimodels "workforce-backend/models/api"
	authapimodels "workforce-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

const refreshCookieName = "refresh_token"

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("refresh-token", controller.refreshToken)
		router.Use(middleware.AuthorizationRequired()).Get("me", controller.me)
	})
}

// @Summary Аутентификация пользователя
// @Tags Аутентификация
// @Description Аутентификация пользователя
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	c.setRefreshCookie(ctx, resp.RefreshToken)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновить JWT
// @Tags Аутентификация
// @Description Обновить JWT по refresh токену из тела запроса или cookie
// @Param	body				body		authapimodels.JWTRefreshRequest	false	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh-token [post]
func (c *authApiController) refreshToken(ctx *fiber.Ctx) error {
	var payload authapimodels.JWTRefreshRequest
	_ = ctx.BodyParser(&payload)
	if payload.RefreshToken == "" {
		payload.RefreshToken = ctx.Cookies(refreshCookieName)
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.RefreshToken(payload.RefreshToken)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	c.setRefreshCookie(ctx, resp.RefreshToken)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Информация о текущем пользователе
// @Tags Аутентификация
// @Description Информация о текущем пользователе с ролями и правами
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.UserInfo}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Me(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func (c *authApiController) setRefreshCookie(ctx *fiber.Ctx, refreshToken string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Expires:  time.Now().Add(time.Duration(config.Conf.Auth.JWTRefreshExpireInSec) * time.Second),
		HTTPOnly: true,
		Secure:   *config.Conf.Auth.SecureCookie,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/api/v1/auth",
	})
}
