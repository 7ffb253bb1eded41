package feedback

import (
	"context"
	"net/http"
	"time"

	"hr-assistant/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	maxFeedbackLen    = 1000
	maxActionItemsLen = 500
)

// Entry is one appended row in the feedback ledger.
type Entry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Feedback    string    `gorm:"type:varchar(1000);not null"`
	Sentiment   string    `gorm:"type:varchar(10);not null"`
	ActionItems string    `gorm:"type:varchar(500);not null"`

	CreatedAt time.Time
}

//go:generate mockgen -source=feedback_sink.go -destination=mock/feedback_sink_mock.go -package=mock

type Sink interface {
	Append(ctx context.Context, rec Record) error
}

type ledgerSink struct {
	db *gorm.DB
}

func NewLedgerSink(db *gorm.DB) Sink {
	return &ledgerSink{db: db}
}

func (s *ledgerSink) Append(ctx context.Context, rec Record) error {
	row := Entry{
		ID:          uuid.New(),
		Feedback:    truncate(rec.Feedback, maxFeedbackLen),
		Sentiment:   rec.Sentiment,
		ActionItems: truncate(rec.ActionItems, maxActionItemsLen),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return apperror.Wrap(
			err,
			apperror.CodeServiceUnavailable,
			"failed to record feedback",
			http.StatusServiceUnavailable,
		)
	}
	return nil
}

// truncate cuts to limit characters, never mid-rune.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
