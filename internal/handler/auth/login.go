// File: internal/handler/auth/login.go
package auth

import (
	"fmt"
	"io/fs"
	"net/http"

	"login-gate/internal/dto"
	"login-gate/internal/service"
	"login-gate/internal/web"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LoginHandler 比對 nome/senha 與管理員帳密，回傳管理員或一般使用者頁面
func LoginHandler(gate service.Evaluator, pages fs.FS, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的表單資料: %v", err)})
		}

		attempt := req.Attempt()
		outcome := gate.Evaluate(attempt)

		// 密碼不寫入日誌
		logger.Info("login attempt",
			zap.Stringer("outcome", outcome),
			zap.Bool("has_identity", attempt.HasIdentity()),
			zap.String("remote_ip", c.RealIP()),
		)

		if outcome == service.Privileged {
			return echo.StaticFileHandler(web.AdminPage, pages)(c)
		}
		return echo.StaticFileHandler(web.UserPage, pages)(c)
	}
}
