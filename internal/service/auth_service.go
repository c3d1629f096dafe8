package service

import (
	"errors"

	"github.com/masterdu/masterdu-backend/config"
	"github.com/masterdu/masterdu-backend/pkg/logger"
	"github.com/masterdu/masterdu-backend/pkg/util"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService verifies the single configured admin credential and
// issues session tokens for the CMS.
type AuthService interface {
	Login(username, password string) (string, error)
}

type authService struct {
	username     string
	passwordHash string
	jwtConfig    config.JWTConfig
}

func NewAuthService(admin config.AdminConfig, jwtCfg config.JWTConfig) (AuthService, error) {
	// The configured password is hashed once at startup so the
	// plaintext never sits in the service struct.
	hash, err := util.HashPassword(admin.Password)
	if err != nil {
		return nil, err
	}
	return &authService{
		username:     admin.Username,
		passwordHash: hash,
		jwtConfig:    jwtCfg,
	}, nil
}

func (s *authService) Login(username, password string) (string, error) {
	logger.Info("Admin login attempt", map[string]interface{}{
		"username": username,
	})

	if username != s.username || !util.VerifyPassword(s.passwordHash, password) {
		logger.Warn("Admin login failed: invalid credentials", map[string]interface{}{
			"username": username,
		})
		return "", ErrInvalidCredentials
	}

	token, err := util.GenerateToken(username, "admin", s.jwtConfig.Secret, s.jwtConfig.TokenExpiry)
	if err != nil {
		logger.Error("Failed to generate admin token", err, map[string]interface{}{
			"username": username,
		})
		return "", err
	}

	logger.Info("Admin logged in successfully", map[string]interface{}{
		"username": username,
	})
	return token, nil
}
