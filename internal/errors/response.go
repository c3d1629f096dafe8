package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 標準錯誤回應結構
type ErrorResponse struct {
	Error   string `json:"error"`   // 錯誤代碼（供前端對應）
	Message string `json:"message"` // 使用者訊息（繁體中文）
}

// RespondWithError 錯誤回應輔助函數
// statusCode: HTTP 狀態碼
// errorCode: 錯誤代碼常數（見 codes.go）
// message: 顯示給使用者的訊息
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// 常用錯誤回應的簡寫

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "請先登入"
	}
	RespondWithError(c, http.StatusUnauthorized, AuthUnauthorized, message)
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "伺服器發生錯誤，請稍後再試"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}
