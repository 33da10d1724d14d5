package advisors

import (
	"net/http"

	"conecta-joven/internal/api"
	"conecta-joven/internal/catalog"
	"conecta-joven/internal/database"
	"conecta-joven/internal/handler"
	"conecta-joven/internal/middleware"
	"conecta-joven/internal/service"

	"github.com/labstack/echo/v4"
)

// 供測試覆寫
var (
	schedule            = service.Schedule
	lookupByDNI         = service.LookupByDNI
	listAllAppointments = service.ListAllAppointments
)

// RosterHandler 顧問名冊；管理員另外取得所有預約
// @Summary     顧問名冊
// @Tags        advisors
// @Produce     json
// @Success     200 {object} api.AdvisorsResponse
// @Router      /advisors [get]
func RosterHandler(db database.DB, cat *catalog.Catalog, meetLink string) echo.HandlerFunc {
	return func(c echo.Context) error {
		resp := api.AdvisorsResponse{MeetLink: meetLink, Advisors: cat.Advisors}
		if sess, ok := middleware.SessionFrom(c); ok && sess.IsAdmin {
			list, err := listAllAppointments(c.Request().Context(), db, *sess)
			if err != nil {
				return handler.RespondError(c, err)
			}
			resp.Appointments = list
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// ScheduleHandler 預約諮詢，不檢查時段是否重複
// @Summary     預約諮詢
// @Tags        advisors
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       dni     formData string true "DNI"
// @Param       name    formData string true "姓名"
// @Param       advisor formData string true "顧問"
// @Param       date    formData string true "日期 YYYY-MM-DD"
// @Param       time    formData string true "時間 HH:MM"
// @Success     201 {object} api.AppointmentResponse
// @Failure     400 {object} api.ErrorResponse
// @Router      /advisors/schedule [post]
func ScheduleHandler(db database.DB, meetLink string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ScheduleRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, "all fields are required to schedule")
		}

		a, err := schedule(c.Request().Context(), db, service.AppointmentInput{
			DNI:     req.DNI,
			Name:    req.Name,
			Advisor: req.Advisor,
			Date:    req.Date,
			Time:    req.Time,
		})
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, api.AppointmentResponse{
			Notice:      api.Success("appointment scheduled"),
			Appointment: *a,
			MeetLink:    meetLink,
		})
	}
}

// LookupHandler 依 DNI 查詢最早的一筆預約
// @Summary     查詢預約
// @Tags        advisors
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       dni_lookup formData string true "DNI"
// @Success     200 {object} api.LookupResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /advisors/lookup [post]
func LookupHandler(db database.DB, meetLink string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LookupRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, "enter a DNI to look up")
		}

		a, err := lookupByDNI(c.Request().Context(), db, req.DNI)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.LookupResponse{Appointment: *a, MeetLink: meetLink})
	}
}

// AppointmentsHandler 管理員查看所有預約
// @Summary     所有預約
// @Tags        advisors
// @Produce     json
// @Success     200 {object} api.AppointmentsResponse
// @Failure     403 {object} api.ErrorResponse
// @Router      /appointments [get]
func AppointmentsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := middleware.SessionFrom(c)
		if !ok {
			return handler.RespondError(c, service.ErrForbidden)
		}
		list, err := listAllAppointments(c.Request().Context(), db, *sess)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.AppointmentsResponse{Appointments: list})
	}
}
