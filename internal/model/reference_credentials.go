// File: internal/model/reference_credentials.go
package model

// ReferenceCredentials 啟動時由環境變數載入的管理員帳密，之後不再變更
type ReferenceCredentials struct {
	Identity string
	Secret   string
}
