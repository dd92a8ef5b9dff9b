package response

// AppError 携带 HTTP 状态码与对外 detail 的错误，Err 为仅记录日志的原始原因
type AppError struct {
	Code   int
	Detail string
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail + ": " + e.Err.Error()
	}
	return e.Detail
}

func (e *AppError) Unwrap() error { return e.Err }

// Internal 是否为服务端错误
func (e *AppError) Internal() bool { return e.Code >= CodeInternal }

// WrapError 包装错误
func WrapError(code int, detail string, err error) *AppError {
	return &AppError{Code: code, Detail: detail, Err: err}
}
