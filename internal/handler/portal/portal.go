package portal

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"conecta-joven/internal/api"
	"conecta-joven/internal/catalog"
	"conecta-joven/internal/handler"
	"conecta-joven/internal/middleware"

	"github.com/labstack/echo/v4"
)

// 供測試覆寫
var (
	timeNow = time.Now
	osStat  = os.Stat
)

// HomeHandler 首頁資料：站名、會議連結、年份、目前使用者與首頁連結
// @Summary     首頁
// @Tags        portal
// @Produce     json
// @Success     200 {object} api.HomeResponse
// @Router      /home [get]
func HomeHandler(cat *catalog.Catalog, appName, meetLink string) echo.HandlerFunc {
	return func(c echo.Context) error {
		resp := api.HomeResponse{
			AppName:   appName,
			MeetLink:  meetLink,
			Year:      timeNow().Year(),
			News:      cat.News,
			JobBoards: cat.JobBoards,
		}
		if sess, ok := middleware.SessionFrom(c); ok {
			resp.Session = *sess
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// CoursesHandler 課程分類
// @Summary     課程目錄
// @Tags        portal
// @Produce     json
// @Success     200 {object} api.CoursesResponse
// @Router      /courses [get]
func CoursesHandler(cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.CoursesResponse{Categories: cat.Categories})
	}
}

// DownloadHandler 以附件形式下載課程檔案，只接受目錄內的單一檔名
// @Summary     下載課程檔案
// @Tags        portal
// @Produce     octet-stream
// @Param       filename path string true "檔名"
// @Success     200
// @Failure     404 {object} api.ErrorResponse
// @Router      /download/{filename} [get]
func DownloadHandler(dir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		// 路徑含需保留的編碼時 echo 以 RawPath 比對，參數仍是編碼狀態
		name, ok := cleanName(c.Param("*"), c.Request().URL.RawPath != "")
		if !ok {
			return handler.NotFound(c, "file not found")
		}
		path := filepath.Join(dir, name)
		info, err := osStat(path)
		if err != nil || info.IsDir() {
			return handler.NotFound(c, "file not found")
		}
		return c.Attachment(path, name)
	}
}

// cleanName 必要時還原一次 URL 編碼，並拒絕任何可能離開目錄的名稱
func cleanName(raw string, escaped bool) (string, bool) {
	name := raw
	if escaped {
		var err error
		if name, err = url.PathUnescape(raw); err != nil {
			return "", false
		}
	}
	if name == "" || name == "." || name == ".." {
		return "", false
	}
	if strings.ContainsAny(name, `/\`) || !filepath.IsLocal(name) {
		return "", false
	}
	return name, true
}
