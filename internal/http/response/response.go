package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page 分页列表结构
type Page struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
}

// ErrorBody 错误响应体，detail 由控制台原样展示
type ErrorBody struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

// MessageBody 仅含提示消息的响应
type MessageBody struct {
	Message string `json:"message"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 成功并返回提示消息
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageBody{Message: msg})
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, items interface{}, total int64, page, size int) {
	c.JSON(http.StatusOK, Page{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
	})
}

// Error 错误响应，HTTP 状态码即错误类别
func Error(c *gin.Context, statusCode int, detail string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{
		Detail:    detail,
		RequestID: requestID(c),
	})
}

// NotFound 404响应
func NotFound(c *gin.Context, detail string) {
	Error(c, CodeNotFound, detail)
}

// Unauthorized 401响应
func Unauthorized(c *gin.Context, detail string) {
	Error(c, CodeUnauthorized, detail)
}

// BadRequest 400响应
func BadRequest(c *gin.Context, detail string) {
	Error(c, CodeBadRequest, detail)
}

func requestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
