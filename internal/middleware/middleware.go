package middleware

import (
	"context"
	"errors"
	"net/http"

	"conecta-joven/internal/api"
	"conecta-joven/internal/model"
	"conecta-joven/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	ContextSessionKey = "session"
	SessionCookieName = "cj_session"
	LoginPath         = "/api/auth/login"
)

// SessionLoader 由 service.SessionStore 實作
type SessionLoader interface {
	Load(ctx context.Context, token string) (*model.Session, error)
}

// SessionFrom 取出 RequireAuth 放入的 session
func SessionFrom(c echo.Context) (*model.Session, bool) {
	sess, ok := c.Get(ContextSessionKey).(*model.Session)
	return sess, ok && sess != nil
}

// RequireAuth 驗證 session cookie；無效時清除 cookie 並導向登入頁
func RequireAuth(sessions SessionLoader, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return redirectToLogin(c, secure)
			}

			sess, err := sessions.Load(c.Request().Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, service.ErrSessionInvalid) {
					zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("load session")
				}
				return redirectToLogin(c, secure)
			}

			c.Set(ContextSessionKey, sess)
			return next(c)
		}
	}
}

func redirectToLogin(c echo.Context, secure bool) error {
	ClearSessionCookie(c, secure)
	return c.Redirect(http.StatusSeeOther, LoginPath)
}

// RequireAdmin 非管理員一律 403，不論是否已登入
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := SessionFrom(c)
		if !ok || !sess.IsAdmin {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "admin privileges required", Level: api.LevelWarning})
		}
		return next(c)
	}
}
