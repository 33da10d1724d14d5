package auth

import (
	"context"
	"fmt"
	"net/http"

	"conecta-joven/internal/api"
	"conecta-joven/internal/database"
	"conecta-joven/internal/handler"
	"conecta-joven/internal/middleware"
	"conecta-joven/internal/service"
	"conecta-joven/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoginFormHandler 未登入時的導向目的地
// @Summary     登入頁
// @Description 告知前端需要登入
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      /auth/login [get]
func LoginFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "login required"})
	}
}

// LoginHandler 使用 Email/Password 驗證並設定 session cookie
// @Summary     登入使用者
// @Description 驗證帳密後建立 session，cookie 名稱為 cj_session
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email    formData string true "電子郵件"
// @Param       password formData string true "密碼"
// @Success     200      {object} api.SessionResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     401      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, sessions *service.SessionStore, wp worker.Pool, cookieSecure bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, "email and password are required")
		}

		ctx := c.Request().Context()
		sess, err := login(ctx, db, req.Email, req.Password)
		if err != nil {
			return handler.RespondError(c, err)
		}

		token, err := sessions.Create(ctx, *sess)
		if err != nil {
			return handler.RespondError(c, fmt.Errorf("create session: %w", err))
		}
		middleware.SetSessionCookie(c, token, sessions.TTL(), cookieSecure)

		// 最後登入時間交給背景 worker，失敗只記錄
		log := zerolog.Ctx(ctx).With().Int("user_id", sess.UserID).Logger()
		userID := sess.UserID
		wp.Submit(func() {
			taskCtx, cancel := context.WithTimeout(log.WithContext(context.Background()), recordLoginTimeout)
			defer cancel()
			if err := recordLogin(taskCtx, db, userID); err != nil {
				log.Warn().Err(err).Msg("record login")
			}
		})

		return c.JSON(http.StatusOK, api.SessionResponse{
			Notice:  api.Success(fmt.Sprintf("Welcome, %s!", sess.Name)),
			Session: *sess,
		})
	}
}
