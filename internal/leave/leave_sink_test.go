package leave_test

import (
	"context"
	"testing"
	"time"

	"hr-assistant/internal/dates"
	"hr-assistant/internal/leave"
	leaveerrors "hr-assistant/internal/leave/errors"

	"github.com/stretchr/testify/assert"
)

func TestLedgerSink_RejectsNonPositiveDayCount(t *testing.T) {
	sink := leave.NewLedgerSink(nil)

	err := sink.Append(context.Background(), leave.Record{
		EmployeeID:   "482",
		EmployeeName: "John Doe",
		LeaveType:    leave.TypeSick,
		StartDate:    dates.New(2026, time.January, 8),
		EndDate:      dates.New(2026, time.January, 8),
		NumberOfDays: 0,
	}, time.Now())

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDayCount)
}

func TestLedgerSink_RejectsInvertedDateRange(t *testing.T) {
	sink := leave.NewLedgerSink(nil)

	err := sink.Append(context.Background(), leave.Record{
		EmployeeID:   "482",
		EmployeeName: "John Doe",
		LeaveType:    leave.TypeSick,
		StartDate:    dates.New(2026, time.January, 10),
		EndDate:      dates.New(2026, time.January, 8),
		NumberOfDays: 3,
	}, time.Now())

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
}
