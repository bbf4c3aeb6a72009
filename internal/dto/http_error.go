// File: internal/dto/http_error.go
package dto

// HTTPError 表單無法解析時回傳的錯誤
type HTTPError struct {
	Message string `json:"message"`
}
