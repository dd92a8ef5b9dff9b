package adminclient

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNetwork 请求未到达后端或未收到响应
var ErrNetwork = errors.New("网络错误")

// APIError 后端返回非 2xx，Detail 为后端 detail 原文
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("请求失败 (HTTP %d)", e.StatusCode)
}

// NotFound 是否为 404
func (e *APIError) NotFound() bool {
	return e.StatusCode == 404
}

// Unauthorized 是否为 401，通常意味着需要重新登录
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == 401
}

// ValidationError 发送前的本地表单校验失败，字段名使用 json 名
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "表单校验失败: " + strings.Join(parts, "; ")
}

// Message 给操作员展示的提示文案
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNetwork) {
		return ErrNetwork.Error()
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}

// IsUnauthorized 判断是否需要重新登录
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}
