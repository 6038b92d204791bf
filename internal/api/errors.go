package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误码定义
const (
	// 通用错误码
	ErrCodeInvalidRequest     = "ERR_INVALID_REQUEST"
	ErrCodeInvalidID          = "ERR_INVALID_ID"
	ErrCodeNotFound           = "ERR_NOT_FOUND"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"

	// 资源错误码
	ErrCodeItemNotFound = "ERR_ITEM_NOT_FOUND"
	ErrCodeTagNotFound  = "ERR_TAG_NOT_FOUND"

	// 业务逻辑错误码
	ErrCodeMissingField = "ERR_MISSING_FIELD"
	ErrCodeTagNameTaken = "ERR_TAG_NAME_TAKEN"
)

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails 返回带详情的错误响应
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// 常用错误响应快捷函数

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

// Conflict 409 与现有资源冲突
func Conflict(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusConflict, code, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// ServiceUnavailable 503 服务不可用
func ServiceUnavailable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

// MissingField 缺少必填字段
func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, field+" is required", gin.H{"field": field})
}

// InvalidPayload 无效的请求体
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}

// InvalidID 路径中的 id 不是正整数
func InvalidID(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidID, "invalid "+resource+" id")
}

func itemNotFound(c *gin.Context) {
	NotFound(c, ErrCodeItemNotFound, "item not found")
}

func tagNotFound(c *gin.Context) {
	NotFound(c, ErrCodeTagNotFound, "tag not found")
}
