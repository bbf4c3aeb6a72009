// File: internal/router/router.go
package router

import (
	"fmt"
	"io/fs"

	"login-gate/internal/handler"
	"login-gate/internal/handler/auth"
	"login-gate/internal/service"
	"login-gate/internal/web"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Deps 路由所需的依賴
type Deps struct {
	Gate   service.Evaluator
	Assets fs.FS
	Logger *zap.Logger
}

// Setup 註冊所有路由
func Setup(e *echo.Echo, deps Deps) error {
	public, err := web.Public(deps.Assets)
	if err != nil {
		return fmt.Errorf("建立靜態檔案目錄失敗: %w", err)
	}

	// 靜態檔案原樣提供
	e.StaticFS("/", public)

	// 登入頁面與登入表單
	e.GET("/", handler.LoginPageHandler(deps.Assets))
	e.POST("/login", auth.LoginHandler(deps.Gate, deps.Assets, deps.Logger))
	return nil
}
