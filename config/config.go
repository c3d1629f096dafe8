package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Admin   AdminConfig
	JWT     JWTConfig
	CORS    CORSConfig
	Gemini  GeminiConfig
	Contact ContactConfig
	S3      S3Config
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

// StoreConfig locates the flat-file collections and uploaded images.
type StoreConfig struct {
	DataDir   string
	UploadDir string
	// Driver selects the image storage backend: "local" or "s3".
	Driver string
}

type AdminConfig struct {
	Username string
	Password string
}

type JWTConfig struct {
	Secret      string
	TokenExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// ContactConfig holds the external checkout and payment handoff targets.
type ContactConfig struct {
	WhatsAppNumber string
	FPSNumber      string
	PayMeLink      string
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	BaseURL         string // CloudFront or S3 direct URL
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "3002"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Store: StoreConfig{
			DataDir:   getEnv("DATA_DIR", "./public"),
			UploadDir: getEnv("UPLOAD_DIR", "./public/images"),
			Driver:    getEnv("STORAGE_DRIVER", "local"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-secret-key"),
			TokenExpiry: parseDuration(getEnv("JWT_TOKEN_EXPIRY", "12h")),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3001")),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Contact: ContactConfig{
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "85212345678"),
			FPSNumber:      getEnv("FPS_NUMBER", "1234 5678"),
			PayMeLink:      getEnv("PAYME_LINK", "https://payme.hsbc.com/xxxxx"),
		},
		S3: S3Config{
			Region:          getEnv("AWS_REGION", "ap-east-1"),
			Bucket:          getEnv("AWS_S3_BUCKET", "masterdu-uploads"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			BaseURL:         getEnv("AWS_S3_BASE_URL", ""),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default 12h", s)
		return 12 * time.Hour
	}
	return duration
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
