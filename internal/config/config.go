package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string `mapstructure:"ENV"`
	HTTPAddr string `mapstructure:"HTTP_ADDR"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// MigrateDown 為 true 時只退回所有 migration 後結束，不啟動服務
	MigrateDown bool `mapstructure:"MIGRATE_DOWN"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	SessionSecret string        `mapstructure:"SESSION_SECRET"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
	CookieSecure  bool          `mapstructure:"COOKIE_SECURE"`

	WorkerCount int    `mapstructure:"WORKER_COUNT"`
	CoursesDir  string `mapstructure:"COURSES_DIR"`
	AppName     string `mapstructure:"APP_NAME"`
	MeetLink    string `mapstructure:"MEET_LINK"`
	AdminEmail  string `mapstructure:"ADMIN_EMAIL"`
	// AdminPassword 正式環境必填，其他環境未設定時使用 defaultAdminPassword
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	SeedDemo      bool   `mapstructure:"SEED_DEMO"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogPretty bool   `mapstructure:"LOG_PRETTY"`
}

var defaults = map[string]any{
	"ENV":            "local",
	"HTTP_ADDR":      ":8080",
	"DATABASE_URL":   "",
	"MIGRATE_DOWN":   false,
	"REDIS_ADDR":     "",
	"REDIS_DB":       0,
	"REDIS_PASSWORD": "",
	"SESSION_SECRET": "",
	"SESSION_TTL":    "24h",
	"COOKIE_SECURE":  false,
	"WORKER_COUNT":   1,
	"COURSES_DIR":    "static/courses",
	"APP_NAME":       "Conecta Joven",
	"MEET_LINK":      "https://meet.google.com/gny-hczd-zep",
	"ADMIN_EMAIL":    "admin@conectajoven.pe",
	"ADMIN_PASSWORD": "",
	"SEED_DEMO":      true,
	"LOG_LEVEL":      "info",
	"LOG_PRETTY":     false,
}

const defaultAdminPassword = "admin123"

// 供測試覆寫
var loadDotenv = func() error { return godotenv.Load() }

// Load 讀取 .env（若存在）與環境變數，缺少必要設定時回傳錯誤
func Load() (*Config, error) {
	// .env 不存在時忽略
	_ = loadDotenv()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.AdminEmail = strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if cfg.AdminPassword == "" && !cfg.IsProduction() {
		cfg.AdminPassword = defaultAdminPassword
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.DatabaseURL == "":
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	case c.RedisAddr == "":
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	case c.SessionSecret == "":
		return fmt.Errorf("環境變數 SESSION_SECRET 未設定")
	case c.AdminPassword == "":
		return fmt.Errorf("正式環境必須設定 ADMIN_PASSWORD")
	case c.RedisDB < 0:
		return fmt.Errorf("無效的 REDIS_DB: %d", c.RedisDB)
	case c.WorkerCount <= 0:
		return fmt.Errorf("無效的 WORKER_COUNT: %d", c.WorkerCount)
	case c.SessionTTL <= 0:
		return fmt.Errorf("無效的 SESSION_TTL: %s", c.SessionTTL)
	}
	return nil
}

// IsProduction 供 cookie 與 echo debug 設定判斷
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}
