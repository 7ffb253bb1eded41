package leave

import (
	"context"
	"time"

	leaveerrors "hr-assistant/internal/leave/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusPending is the only status this surface writes; approval happens
// in a downstream system.
const StatusPending = "Pending"

// Submission is one appended row in the leave ledger.
type Submission struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID     string    `gorm:"type:varchar(30);not null;index:idx_leave_submissions_employee"`
	EmployeeName   string    `gorm:"type:varchar(120);not null"`
	LeaveType      string    `gorm:"type:varchar(30);not null"`
	StartDate      time.Time `gorm:"type:date;not null"`
	EndDate        time.Time `gorm:"type:date;not null"`
	NumberOfDays   int       `gorm:"type:int;not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	SubmissionDate time.Time `gorm:"type:date;not null"`
	ApprovedBy     string    `gorm:"type:varchar(120)"`
	Comments       string    `gorm:"type:text"`

	CreatedAt time.Time
}

//go:generate mockgen -source=leave_sink.go -destination=mock/leave_sink_mock.go -package=mock

// Sink is the append-only persistence target for finalized records.
// Append failing must leave the caller free to retry with the same record.
type Sink interface {
	Append(ctx context.Context, rec Record, submittedAt time.Time) error
}

type ledgerSink struct {
	db *gorm.DB
}

func NewLedgerSink(db *gorm.DB) Sink {
	return &ledgerSink{db: db}
}

func (s *ledgerSink) Append(ctx context.Context, rec Record, submittedAt time.Time) error {
	if rec.NumberOfDays < 1 {
		return leaveerrors.ErrInvalidDayCount
	}
	if rec.EndDate.Before(rec.StartDate) {
		return leaveerrors.ErrInvalidDateRange
	}

	row := Submission{
		ID:             uuid.New(),
		EmployeeID:     rec.EmployeeID,
		EmployeeName:   rec.EmployeeName,
		LeaveType:      rec.LeaveType,
		StartDate:      rec.StartDate.Time(),
		EndDate:        rec.EndDate.Time(),
		NumberOfDays:   rec.NumberOfDays,
		Status:         StatusPending,
		SubmissionDate: submittedAt,
		ApprovedBy:     "",
		Comments:       rec.Comments,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return leaveerrors.WrapSubmissionFailed(err)
	}
	return nil
}
