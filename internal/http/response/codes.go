package response

import "net/http"

// 错误类别直接使用 HTTP 状态码
const (
	CodeBadRequest      = http.StatusBadRequest
	CodeUnauthorized    = http.StatusUnauthorized
	CodeNotFound        = http.StatusNotFound
	CodeConflict        = http.StatusConflict
	CodeUnprocessable   = http.StatusUnprocessableEntity
	CodeTooManyRequests = http.StatusTooManyRequests
	CodeInternal        = http.StatusInternalServerError
)
