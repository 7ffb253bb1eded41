package main

import (
	"context"

	"hr-assistant/internal/app"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunChat(context.Background()); err != nil {
		logger.Fatal("run chat failed", zap.Error(err))
	}
}
