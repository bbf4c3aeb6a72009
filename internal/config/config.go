// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"login-gate/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Config 服務設定，啟動時載入一次後唯讀
type Config struct {
	AdminName       string        `envconfig:"ADMIN_NAME"`
	AdminPassword   string        `envconfig:"ADMIN_PASSWORD"`
	Port            string        `envconfig:"PORT" default:"2000" validate:"required,numeric"`
	PublicDir       string        `envconfig:"PUBLIC_DIR"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`
}

// ErrInvalidPort PORT 不在 1-65535
var ErrInvalidPort = errors.New("PORT must be between 1 and 65535")

// 測試可覆寫
var (
	loadDotenv = godotenv.Load
	validate   = validator.New()
)

// Load 先讀取 .env（不存在只警告），再解析環境變數並驗證
// files 為空時讀取目前目錄的 .env
func Load(logger *zap.Logger, files ...string) (*Config, error) {
	if err := loadDotenv(files...); err != nil {
		logger.Warn("no .env file found, using system environment variables", zap.Error(err))
	} else {
		logger.Debug("environment variables loaded from .env file")
	}

	// 空值視同未設定，讓 default 生效
	unsetEmpty("PORT", "LOG_LEVEL", "SHUTDOWN_TIMEOUT")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("解析環境變數失敗: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.AdminName == "" {
		logger.Warn("ADMIN_NAME environment variable not set")
	}
	if cfg.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD environment variable not set")
	}
	logger.Info("config loaded",
		zap.String("admin_name", cfg.AdminName),
		zap.String("admin_password", mask(cfg.AdminPassword)),
		zap.String("port", cfg.Port),
		zap.String("public_dir", cfg.PublicDir),
		zap.String("log_level", cfg.LogLevel),
		zap.Duration("shutdown_timeout", cfg.ShutdownTimeout),
	)
	return &cfg, nil
}

// Validate 驗證欄位格式
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("無效的設定: %w", err)
	}
	p, err := strconv.Atoi(c.Port)
	if err != nil || p < 1 || p > 65535 {
		return ErrInvalidPort
	}
	return nil
}

// Reference 建立 gate 使用的參考帳密
func (c *Config) Reference() model.ReferenceCredentials {
	return model.ReferenceCredentials{
		Identity: c.AdminName,
		Secret:   c.AdminPassword,
	}
}

// Addr 監聽位址
func (c *Config) Addr() string {
	return ":" + c.Port
}

func unsetEmpty(keys ...string) {
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok && v == "" {
			_ = os.Unsetenv(k)
		}
	}
}

func mask(v string) string {
	if v == "" {
		return ""
	}
	return "****"
}
