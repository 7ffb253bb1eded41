// Package feedback captures one-shot feedback utterances. Classification
// is best-effort: when the oracle misbehaves the utterance is still
// recorded, just unclassified.
package feedback

import (
	"context"
	"strings"

	"hr-assistant/internal/oracle"

	"go.uber.org/zap"
)

const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"

	defaultActionItems = "No specific action required"
)

// Record is the normalized feedback row: single strings only, sentiment
// always one of the three labels.
type Record struct {
	Feedback    string
	Sentiment   string
	ActionItems string
}

//go:generate mockgen -source=feedback_adapter.go -destination=mock/feedback_adapter_mock.go -package=mock

// Classifier turns one utterance into a Record. It never fails: the
// worst case is a defaulted record built from the raw utterance.
type Classifier interface {
	Classify(ctx context.Context, utterance string) Record
}

type classifier struct {
	oracle oracle.FeedbackClassifier
	logger *zap.Logger
}

func NewClassifier(o oracle.FeedbackClassifier, logger ...*zap.Logger) Classifier {
	l := zap.L().Named("feedback.classifier")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feedback.classifier")
	}
	return &classifier{oracle: o, logger: l}
}

func (c *classifier) Classify(ctx context.Context, utterance string) Record {
	extraction, err := c.oracle.ClassifyFeedback(ctx, utterance)
	if err != nil {
		c.logger.Warn("feedback classification failed, recording unclassified", zap.Error(err))
		return defaultRecord(utterance)
	}
	return normalize(utterance, extraction)
}

func normalize(utterance string, e oracle.FeedbackExtraction) Record {
	rec := Record{
		Feedback:    e.Feedback.Join(" "),
		Sentiment:   normalizeSentiment(e.Sentiment),
		ActionItems: e.ActionItems.Join("; "),
	}
	if strings.TrimSpace(rec.Feedback) == "" {
		rec.Feedback = utterance
	}
	if strings.TrimSpace(rec.ActionItems) == "" {
		rec.ActionItems = defaultActionItems
	}
	return rec
}

func normalizeSentiment(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive":
		return SentimentPositive
	case "negative":
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func defaultRecord(utterance string) Record {
	return Record{
		Feedback:    utterance,
		Sentiment:   SentimentNeutral,
		ActionItems: defaultActionItems,
	}
}
