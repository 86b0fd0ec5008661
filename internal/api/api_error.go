// File: internal/api/api_error.go
package api

import "net/http"

// APIError 為可預期的業務錯誤，由全域錯誤處理轉成
// {"message": ..., <payload>} 並使用 StatusCode 回應
type APIError struct {
	Message    string
	StatusCode int
	Payload    map[string]any
}

func NewAPIError(message string, statusCode int, payload map[string]any) *APIError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &APIError{Message: message, StatusCode: statusCode, Payload: payload}
}

func (e *APIError) Error() string {
	return e.Message
}

// ToMap payload 內的 message 會被覆蓋
func (e *APIError) ToMap() map[string]any {
	m := make(map[string]any, len(e.Payload)+1)
	for k, v := range e.Payload {
		m[k] = v
	}
	m["message"] = e.Message
	return m
}
