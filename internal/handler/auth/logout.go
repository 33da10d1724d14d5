package auth

import (
	"errors"
	"net/http"

	"conecta-joven/internal/api"
	"conecta-joven/internal/middleware"
	"conecta-joven/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LogoutHandler 刪除 session 並清除 cookie，未登入時同樣成功
// @Summary     登出
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.Notice
// @Router      /auth/logout [get]
// @Router      /auth/logout [post]
func LogoutHandler(sessions *service.SessionStore, cookieSecure bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
			if err := sessions.Destroy(c.Request().Context(), cookie.Value); err != nil && !errors.Is(err, service.ErrSessionInvalid) {
				zerolog.Ctx(c.Request().Context()).Warn().Err(err).Msg("destroy session")
			}
		}
		middleware.ClearSessionCookie(c, cookieSecure)
		return c.JSON(http.StatusOK, api.Info("session closed"))
	}
}
