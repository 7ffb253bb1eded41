package app

import (
	"database/sql"
	"os"
	"time"

	"hr-assistant/internal/assistant"
	"hr-assistant/internal/feedback"
	"hr-assistant/internal/intent"
	"hr-assistant/internal/leave"
	"hr-assistant/internal/messaging/kafka"
	"hr-assistant/internal/oracle"
	"hr-assistant/internal/policy"
	"hr-assistant/internal/session"

	"gorm.io/gorm"
)

const oracleTimeout = 30 * time.Second

func newOracleClient() *oracle.Client {
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return oracle.NewClient(baseURL, os.Getenv("LLM_API_KEY"), model, oracleTimeout)
}

// buildAssistant wires the orchestrator core shared by the CLI and the
// HTTP surface. sqlDB may be nil to disable outbox event publication.
func buildAssistant(gormDB *gorm.DB, sqlDB *sql.DB, sessions session.Store) assistant.Service {
	client := newOracleClient()
	llm := oracle.NewLLM(client)

	var outbox kafka.OutboxRepository
	if sqlDB != nil {
		outbox = kafka.NewOutboxRepository(sqlDB)
	}

	return assistant.NewService(assistant.Deps{
		Router:       intent.NewRouter(llm),
		Machine:      leave.NewMachine(llm),
		Classifier:   feedback.NewClassifier(llm),
		Policy:       policy.NewService(policy.NewVectorRetriever(gormDB, client), llm),
		Sessions:     sessions,
		LeaveSink:    leave.NewLedgerSink(gormDB),
		FeedbackSink: feedback.NewLedgerSink(gormDB),
		Outbox:       outbox,
	})
}
