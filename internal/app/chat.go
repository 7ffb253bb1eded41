package app

import (
	"context"
	"os"

	"hr-assistant/internal/assistant"
	"hr-assistant/internal/session"
	"hr-assistant/internal/shared/connection"
)

// RunChat drives one console session against the same core the HTTP
// surface uses. Session state stays in memory: the process is the
// session.
func RunChat(ctx context.Context) error {
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
	defer sqlDB.Close()

	svc := buildAssistant(gormDB, sqlDB, session.NewMemoryStore())
	return assistant.RunREPL(ctx, svc, os.Stdin, os.Stdout)
}
