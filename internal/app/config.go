package app

import (
	"github.com/skinsage/skinsage-backend/internal/pkg/logger"
	"github.com/skinsage/skinsage-backend/internal/utils"
)

type Config struct {
	HTTPAddr       string
	AllowedOrigins string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		HTTPAddr:       utils.GetEnv("HTTP_ADDR", ":8080", log),
		AllowedOrigins: utils.GetEnv("CORS_ALLOWED_ORIGINS", "", log),
	}
}
