package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/masterdu/masterdu-backend/internal/errors"
	"github.com/masterdu/masterdu-backend/internal/middleware"
	"github.com/masterdu/masterdu-backend/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles CMS admin login
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "請輸入用戶名及密碼")
		return
	}

	token, err := ctrl.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "用戶名或密碼錯誤")
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"username": req.Username,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": req.Username,
	})
}

// Me returns the authenticated admin identity
// GET /api/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": username,
		"role":     c.GetString(middleware.RoleKey),
	})
}
