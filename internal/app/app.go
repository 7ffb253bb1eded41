package app

import (
	"os"

	"hr-assistant/internal/assistant"
	"hr-assistant/internal/middleware"
	"hr-assistant/internal/session"
	"hr-assistant/internal/shared/connection"

	"github.com/gin-gonic/gin"
)

// BuildApp connects infrastructure and registers the chat routes on the
// HTTP surface.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	svc := buildAssistant(gormDB, sqlDB, session.NewRedisStore(redisClient))
	handler := assistant.NewHandler(svc)

	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		assistant.RegisterRoutes(api, handler)
	}

	return nil
}
