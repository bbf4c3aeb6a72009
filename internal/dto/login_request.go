// File: internal/dto/login_request.go
package dto

import "login-gate/internal/model"

// LoginRequest 登入表單；欄位缺少時綁定為空字串
type LoginRequest struct {
	Nome  string `form:"nome" example:"admin"`
	Senha string `form:"senha" example:"s3cret"`
}

// Attempt 轉為 LoginAttempt，不修剪空白
func (r LoginRequest) Attempt() model.LoginAttempt {
	return model.LoginAttempt{Identity: r.Nome, Secret: r.Senha}
}
