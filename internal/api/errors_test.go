package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		status         int
		code           string
		message        string
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{
			name:           "BadRequest",
			status:         http.StatusBadRequest,
			code:           ErrCodeInvalidRequest,
			message:        "无效的请求",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrCodeInvalidRequest,
			expectedMsg:    "无效的请求",
		},
		{
			name:           "NotFound",
			status:         http.StatusNotFound,
			code:           ErrCodeItemNotFound,
			message:        "物品不存在",
			expectedStatus: http.StatusNotFound,
			expectedCode:   ErrCodeItemNotFound,
			expectedMsg:    "物品不存在",
		},
		{
			name:           "InternalError",
			status:         http.StatusInternalServerError,
			code:           ErrCodeInternalError,
			message:        "服务器内部错误",
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrCodeInternalError,
			expectedMsg:    "服务器内部错误",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponse(c, tt.status, tt.code, tt.message)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var response APIError
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}

			if response.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, response.Code)
			}

			if response.Message != tt.expectedMsg {
				t.Errorf("expected message %s, got %s", tt.expectedMsg, response.Message)
			}
		})
	}
}

func TestErrorResponseWithDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	details := map[string]string{"field": "name"}
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, "缺少必填字段", details)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var response APIError
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if response.Code != ErrCodeMissingField {
		t.Errorf("expected code %s, got %s", ErrCodeMissingField, response.Code)
	}

	if response.Details == nil {
		t.Error("expected details to be set")
	}
}

func TestShortcutFunctions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		call           func(c *gin.Context)
		expectedStatus int
		expectedCode   string
	}{
		{"BadRequest", func(c *gin.Context) { BadRequest(c, ErrCodeInvalidRequest, "测试错误") }, http.StatusBadRequest, ErrCodeInvalidRequest},
		{"NotFound", func(c *gin.Context) { NotFound(c, ErrCodeTagNotFound, "资源不存在") }, http.StatusNotFound, ErrCodeTagNotFound},
		{"Conflict", func(c *gin.Context) { Conflict(c, ErrCodeTagNameTaken, "名称已存在") }, http.StatusConflict, ErrCodeTagNameTaken},
		{"InternalError", func(c *gin.Context) { InternalError(c, "服务器错误") }, http.StatusInternalServerError, ErrCodeInternalError},
		{"ServiceUnavailable", func(c *gin.Context) { ServiceUnavailable(c, "服务不可用") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"MissingField", func(c *gin.Context) { MissingField(c, "name") }, http.StatusBadRequest, ErrCodeMissingField},
		{"InvalidPayload", InvalidPayload, http.StatusBadRequest, ErrCodeInvalidRequest},
		{"InvalidID", func(c *gin.Context) { InvalidID(c, "item") }, http.StatusBadRequest, ErrCodeInvalidID},
		{"ItemNotFound", itemNotFound, http.StatusNotFound, ErrCodeItemNotFound},
		{"TagNotFound", tagNotFound, http.StatusNotFound, ErrCodeTagNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.call(c)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var response APIError
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if response.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, response.Code)
			}
		})
	}
}
