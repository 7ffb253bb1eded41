package leave_test

import (
	"testing"
	"time"

	"hr-assistant/internal/dates"
	"hr-assistant/internal/leave"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func datePtr(d dates.Date) *dates.Date { return &d }

func fullDraft() leave.Draft {
	return leave.Draft{
		EmployeeID:   strPtr("482"),
		EmployeeName: strPtr("John Doe"),
		LeaveType:    strPtr(leave.TypeSick),
		StartDate:    datePtr(dates.New(2026, time.January, 8)),
		EndDate:      datePtr(dates.New(2026, time.January, 10)),
		NumberOfDays: intPtr(3),
		Comments:     strPtr("doctor visit"),
	}
}

func TestDraftMerge(t *testing.T) {
	t.Run("null candidate preserves every existing value", func(t *testing.T) {
		d := fullDraft()
		merged := d.Merge(leave.Draft{})
		assert.Equal(t, d, merged)
	})

	t.Run("non-null candidate overwrites regardless of prior value", func(t *testing.T) {
		d := fullDraft()
		merged := d.Merge(leave.Draft{
			EmployeeID: strPtr("999"),
			LeaveType:  strPtr(leave.TypeCasual),
		})
		assert.Equal(t, "999", *merged.EmployeeID)
		assert.Equal(t, leave.TypeCasual, *merged.LeaveType)
		// Untouched slots survive.
		assert.Equal(t, "John Doe", *merged.EmployeeName)
		assert.Equal(t, 3, *merged.NumberOfDays)
	})

	t.Run("fills empty draft", func(t *testing.T) {
		merged := leave.Draft{}.Merge(fullDraft())
		assert.Equal(t, fullDraft(), merged)
	})
}

func TestDraftMissing(t *testing.T) {
	t.Run("empty draft lists all fields in stable order", func(t *testing.T) {
		assert.Equal(t, []string{
			leave.FieldEmployeeID,
			leave.FieldEmployeeName,
			leave.FieldLeaveType,
			leave.FieldStartDate,
			leave.FieldEndOrDays,
		}, leave.Draft{}.Missing())
	})

	t.Run("either end date or day count satisfies the last slot", func(t *testing.T) {
		d := leave.Draft{NumberOfDays: intPtr(2)}
		assert.NotContains(t, d.Missing(), leave.FieldEndOrDays)

		d = leave.Draft{EndDate: datePtr(dates.New(2026, time.January, 9))}
		assert.NotContains(t, d.Missing(), leave.FieldEndOrDays)
	})

	t.Run("whitespace-only values count as missing", func(t *testing.T) {
		d := leave.Draft{EmployeeID: strPtr("  ")}
		assert.Contains(t, d.Missing(), leave.FieldEmployeeID)
	})

	t.Run("complete draft has no missing fields", func(t *testing.T) {
		assert.Empty(t, fullDraft().Missing())
		assert.True(t, fullDraft().Complete())
	})
}

func TestDraftResolveDates(t *testing.T) {
	d := leave.Draft{
		StartDate:    datePtr(dates.New(2026, time.January, 8)),
		NumberOfDays: intPtr(3),
	}
	resolved := d.ResolveDates()
	assert.Equal(t, "2026-01-10", resolved.EndDate.String())
	assert.Equal(t, 3, *resolved.NumberOfDays)
}

func TestDraftFinalize(t *testing.T) {
	d := fullDraft()
	d.LeaveType = strPtr("  SICK ")
	rec := d.Finalize()

	assert.Equal(t, "482", rec.EmployeeID)
	assert.Equal(t, "John Doe", rec.EmployeeName)
	assert.Equal(t, leave.TypeSick, rec.LeaveType)
	assert.Equal(t, 3, rec.NumberOfDays)
	assert.Equal(t, "doctor visit", rec.Comments)

	t.Run("comments default to empty", func(t *testing.T) {
		d := fullDraft()
		d.Comments = nil
		assert.Equal(t, "", d.Finalize().Comments)
	})
}

func TestDraftIsEmpty(t *testing.T) {
	assert.True(t, leave.Draft{}.IsEmpty())
	assert.False(t, leave.Draft{EmployeeID: strPtr("482")}.IsEmpty())
}
