package logger

import (
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// 供測試覆寫
var output io.Writer = os.Stdout

// New 依等級建立 logger；pretty 時輸出人類可讀格式
func New(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	w := output
	if pretty {
		w = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Middleware 把 logger 放進每個請求的 context，並記錄每筆請求
func Middleware(log zerolog.Logger) echo.MiddlewareFunc {
	requestLogger := middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := log.Info()
			status := v.Status
			if v.Error != nil {
				ev = log.Error().Err(v.Error)
				// 錯誤尚未交給 echo 的 error handler，狀態碼需自行推算
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(v.Error, &he) {
					status = he.Code
				}
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		logged := requestLogger(next)
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(log.WithContext(req.Context())))
			return logged(c)
		}
	}
}
