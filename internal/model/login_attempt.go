// File: internal/model/login_attempt.go
package model

// LoginAttempt 單次登入嘗試，每個請求建立一次，不保存
type LoginAttempt struct {
	Identity string
	Secret   string
}

// HasIdentity 回報是否有送出帳號
func (a LoginAttempt) HasIdentity() bool {
	return a.Identity != ""
}
