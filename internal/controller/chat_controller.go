package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/masterdu/masterdu-backend/internal/errors"
	"github.com/masterdu/masterdu-backend/internal/middleware"
	"github.com/masterdu/masterdu-backend/internal/service"
)

type ChatController struct {
	chatService service.ChatService
}

func NewChatController(chatService service.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat answers one visitor message. Failures never surface as HTTP
// errors; the service substitutes a friendly fallback reply.
// POST /api/chat
func (ctrl *ChatController) Chat(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid chat request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "請輸入訊息")
		return
	}

	reply := ctrl.chatService.Reply(c.Request.Context(), req.Message)

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
