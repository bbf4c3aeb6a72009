// File: internal/handler/login_page.go
package handler

import (
	"io/fs"

	"login-gate/internal/web"

	"github.com/labstack/echo/v4"
)

// LoginPageHandler 回傳登入表單頁面
func LoginPageHandler(pages fs.FS) echo.HandlerFunc {
	return func(c echo.Context) error {
		return echo.StaticFileHandler(web.LoginPage, pages)(c)
	}
}
