package handler

import (
	"errors"
	"net/http"

	"conecta-joven/internal/api"
	"conecta-joven/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RespondError 把 service 的錯誤分類轉成 HTTP 狀態碼與提示等級；
// 未分類的錯誤只記錄在 log，回應固定訊息
func RespondError(c echo.Context, err error) error {
	msg := err.Error()
	var se *service.Error
	if errors.As(err, &se) {
		msg = se.Message
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msg, Level: api.LevelWarning})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, api.ErrorResponse{Message: msg, Level: api.LevelDanger})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: msg, Level: api.LevelDanger})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: msg, Level: api.LevelInfo})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: msg, Level: api.LevelWarning})
	}

	zerolog.Ctx(c.Request().Context()).Error().Err(err).
		Str("path", c.Path()).
		Msg("request failed")
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error", Level: api.LevelDanger})
}

// BadRequest 回應表單格式或欄位錯誤
func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msg, Level: api.LevelWarning})
}

// NotFound 回應找不到的資源
func NotFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: msg, Level: api.LevelInfo})
}
