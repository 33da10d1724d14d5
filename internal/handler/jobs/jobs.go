package jobs

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"conecta-joven/internal/api"
	"conecta-joven/internal/database"
	"conecta-joven/internal/handler"
	"conecta-joven/internal/middleware"
	"conecta-joven/internal/service"

	"github.com/labstack/echo/v4"
)

// 供測試覆寫
var (
	listJobs           = service.ListJobs
	createJob          = service.CreateJob
	deleteJob          = service.DeleteJob
	applicationHistory = service.ApplicationHistory
)

// ListHandler 列出職缺，q 會比對標題與公司（不分大小寫）
// @Summary     職缺列表
// @Tags        jobs
// @Produce     json
// @Param       q   query    string false "搜尋字串"
// @Success     200 {object} api.JobsResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /jobs [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		q := strings.TrimSpace(c.QueryParam("q"))
		jobs, err := listJobs(c.Request().Context(), db, q)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.JobsResponse{Query: q, Jobs: jobs})
	}
}

// CreateHandler 管理員新增職缺
// @Summary     新增職缺
// @Tags        jobs
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       title       formData string true  "職稱"
// @Param       company     formData string true  "公司"
// @Param       link        formData string true  "連結"
// @Param       description formData string false "說明"
// @Success     201 {object} api.JobResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Router      /jobs [post]
func CreateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := middleware.SessionFrom(c)
		if !ok {
			return handler.RespondError(c, service.ErrForbidden)
		}

		var req api.CreateJobRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, "title, company and link are required")
		}

		job, err := createJob(c.Request().Context(), db, service.JobInput{
			Title:       req.Title,
			Company:     req.Company,
			Link:        req.Link,
			Description: req.Description,
		}, *sess)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, api.JobResponse{Notice: api.Success("job posting added"), Job: *job})
	}
}

// DeleteHandler 管理員刪除職缺，id 不存在時同樣回傳成功
// @Summary     刪除職缺
// @Tags        jobs
// @Produce     json
// @Param       id  path     int true "職缺 ID"
// @Success     200 {object} api.Notice
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /jobs/{id} [delete]
// @Router      /jobs/{id}/delete [post]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := middleware.SessionFrom(c)
		if !ok {
			return handler.RespondError(c, service.ErrForbidden)
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return handler.NotFound(c, "job not found")
		}
		if err := deleteJob(c.Request().Context(), db, id, *sess); err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.Info("job posting deleted"))
	}
}

// HistoryHandler 使用者的申請紀錄；管理員沒有紀錄可看
// @Summary     申請紀錄
// @Tags        jobs
// @Produce     json
// @Success     200 {object} api.HistoryResponse
// @Failure     403 {object} api.ErrorResponse
// @Router      /jobs/history [get]
func HistoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := middleware.SessionFrom(c)
		if !ok {
			return handler.RespondError(c, service.ErrForbidden)
		}
		history, err := applicationHistory(c.Request().Context(), db, *sess)
		if errors.Is(err, service.ErrForbidden) {
			var se *service.Error
			msg := "application history is only available to users"
			if errors.As(err, &se) {
				msg = se.Message
			}
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: msg, Level: api.LevelInfo})
		}
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, api.HistoryResponse{Applications: history})
	}
}
