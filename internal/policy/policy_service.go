// Package policy answers questions about company rules over a document
// corpus. Retrieval and answer composition are external collaborators;
// this package only wires them with safe fallbacks.
package policy

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	fallbackNoContext = "I don't have information about that policy. Please contact HR directly."
	fallbackError     = "I encountered an error processing your policy question. Please try again."
)

//go:generate mockgen -source=policy_service.go -destination=mock/policy_service_mock.go -package=mock

// Retriever returns the concatenated context passages relevant to a
// question, or "" when nothing matches.
type Retriever interface {
	Retrieve(ctx context.Context, question string) (string, error)
}

// Answerer composes an answer from a question plus retrieved context.
type Answerer interface {
	AnswerWithContext(ctx context.Context, question, retrieved string) (string, error)
}

// Service answers one policy question per call. It never returns an
// error to the turn loop: failures degrade to a fallback answer.
type Service interface {
	Answer(ctx context.Context, question string) string
}

type service struct {
	retriever Retriever
	answerer  Answerer
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(retriever Retriever, answerer Answerer, logger ...*zap.Logger) Service {
	l := zap.L().Named("policy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("policy.service")
	}
	return &service{
		retriever: retriever,
		answerer:  answerer,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Answer(ctx context.Context, question string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return fallbackNoContext
	}

	// Identical concurrent questions share one retrieval.
	retrieved, err, _ := s.sf.Do(question, func() (any, error) {
		return s.retriever.Retrieve(ctx, question)
	})
	if err != nil {
		s.logger.Warn("policy retrieval failed", zap.Error(err))
		return fallbackError
	}

	passages, _ := retrieved.(string)
	if strings.TrimSpace(passages) == "" {
		return fallbackNoContext
	}

	answer, err := s.answerer.AnswerWithContext(ctx, question, passages)
	if err != nil {
		s.logger.Warn("policy answer composition failed", zap.Error(err))
		return fallbackError
	}
	return answer
}
