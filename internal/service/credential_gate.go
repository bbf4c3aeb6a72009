// File: internal/service/credential_gate.go
package service

import (
	"crypto/subtle"

	"login-gate/internal/model"
)

// Outcome 登入判定結果
type Outcome int

const (
	// Standard 一般使用者頁面
	Standard Outcome = iota
	// Privileged 管理員頁面
	Privileged
)

func (o Outcome) String() string {
	if o == Privileged {
		return "privileged"
	}
	return "standard"
}

// Evaluator 讓 handler 可替換判定實作
type Evaluator interface {
	Evaluate(attempt model.LoginAttempt) Outcome
}

// CredentialGate 比對登入嘗試與參考帳密
// 建立後唯讀，可供多個請求同時使用
type CredentialGate struct {
	ref model.ReferenceCredentials
}

// NewCredentialGate 以注入的參考帳密建立 gate
func NewCredentialGate(ref model.ReferenceCredentials) *CredentialGate {
	return &CredentialGate{ref: ref}
}

// Evaluate 帳號與密碼皆完全相同（區分大小寫、不修剪空白）才回傳 Privileged
// 空字串視為未填寫，一律不符
func (g *CredentialGate) Evaluate(attempt model.LoginAttempt) Outcome {
	if attempt.Identity == "" || attempt.Secret == "" {
		return Standard
	}
	idOK := equal(attempt.Identity, g.ref.Identity)
	secretOK := equal(attempt.Secret, g.ref.Secret)
	if idOK && secretOK {
		return Privileged
	}
	return Standard
}

// Configured 參考帳密是否皆已設定
func (g *CredentialGate) Configured() bool {
	return g.ref.Identity != "" && g.ref.Secret != ""
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
