package router

import (
	"conecta-joven/internal/cache"
	"conecta-joven/internal/catalog"
	"conecta-joven/internal/config"
	"conecta-joven/internal/database"
	"conecta-joven/internal/handler"
	"conecta-joven/internal/handler/advisors"
	"conecta-joven/internal/handler/auth"
	"conecta-joven/internal/handler/jobs"
	"conecta-joven/internal/handler/portal"
	"conecta-joven/internal/middleware"
	"conecta-joven/internal/service"
	"conecta-joven/internal/worker"

	"github.com/labstack/echo/v4"
)

// Deps 為路由需要的共用元件
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Sessions *service.SessionStore
	Workers  worker.Pool
	Catalog  *catalog.Catalog
	Config   *config.Config
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	cfg := d.Config
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 登入、註冊、登出不需 session
	api.GET("/auth/login", auth.LoginFormHandler())
	api.POST("/auth/login", auth.LoginHandler(d.DB, d.Sessions, d.Workers, cfg.CookieSecure))
	api.POST("/auth/register", auth.RegisterHandler(d.DB))
	api.POST("/auth/register-mentor", auth.RegisterMentorHandler(d.DB))
	logout := auth.LogoutHandler(d.Sessions, cfg.CookieSecure)
	api.GET("/auth/logout", logout)
	api.POST("/auth/logout", logout)

	// 以下需登入
	requireAuth := middleware.RequireAuth(d.Sessions, cfg.CookieSecure)
	api.GET("/home", portal.HomeHandler(d.Catalog, cfg.AppName, cfg.MeetLink), requireAuth)
	api.GET("/courses", portal.CoursesHandler(d.Catalog), requireAuth)
	api.GET("/download/*", portal.DownloadHandler(cfg.CoursesDir), requireAuth)

	api.GET("/jobs", jobs.ListHandler(d.DB), requireAuth)
	api.GET("/jobs/history", jobs.HistoryHandler(d.DB), requireAuth)

	api.GET("/advisors", advisors.RosterHandler(d.DB, d.Catalog, cfg.MeetLink), requireAuth)
	api.POST("/advisors/schedule", advisors.ScheduleHandler(d.DB, cfg.MeetLink), requireAuth)
	api.POST("/advisors/lookup", advisors.LookupHandler(d.DB, cfg.MeetLink), requireAuth)

	// 管理員專屬
	api.POST("/jobs", jobs.CreateHandler(d.DB), requireAuth, middleware.RequireAdmin)
	api.POST("/jobs/:id/delete", jobs.DeleteHandler(d.DB), requireAuth, middleware.RequireAdmin)
	api.DELETE("/jobs/:id", jobs.DeleteHandler(d.DB), requireAuth, middleware.RequireAdmin)
	api.GET("/appointments", advisors.AppointmentsHandler(d.DB), requireAuth, middleware.RequireAdmin)
}
