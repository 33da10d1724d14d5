package auth

import (
	"errors"
	"net/http"

	"conecta-joven/internal/api"
	"conecta-joven/internal/database"
	"conecta-joven/internal/handler"
	"conecta-joven/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立學生帳號
// @Summary     註冊
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name     formData string true "姓名"
// @Param       email    formData string true "電子郵件"
// @Param       password formData string true "密碼"
// @Success     201      {object} api.RegisterResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     409      {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, "name, email and password are required")
		}

		id, err := register(c.Request().Context(), db, req.Name, req.Email, req.Password)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, api.RegisterResponse{
			Notice: api.Success("account created, you can now log in"),
			UserID: id,
		})
	}
}

// RegisterMentorHandler 導師預先登記；重複登記不視為錯誤
// @Summary     導師預先登記
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name  formData string true "姓名"
// @Param       email formData string true "電子郵件"
// @Success     200   {object} api.MentorPreregResponse
// @Failure     400   {object} api.ErrorResponse
// @Router      /auth/register-mentor [post]
func RegisterMentorHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.MentorPreregRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, "name and email are required")
		}

		m, err := preRegisterMentor(c.Request().Context(), db, req.Name, req.Email)
		if errors.Is(err, service.ErrConflict) {
			var se *service.Error
			msg := "that email has already been pre-registered"
			if errors.As(err, &se) {
				msg = se.Message
			}
			return c.JSON(http.StatusOK, api.MentorPreregResponse{Success: false, Notice: api.Info(msg)})
		}
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.MentorPreregResponse{
			Success: true,
			Notice:  api.Success("thanks for signing up as a mentor, we will contact you"),
			Prereg:  m,
		})
	}
}
