package leave

import (
	"context"
	"fmt"
	"strings"

	"hr-assistant/internal/dates"
	"hr-assistant/internal/oracle"

	"go.uber.org/zap"
)

const retryPrompt = "Sorry, I didn't catch that. Could you repeat?"

// Turn is the outcome of advancing the draft by one utterance. Record is
// non-nil only when the draft completed on this turn; Reply is what the
// user should see next.
type Turn struct {
	Draft  Draft
	Record *Record
	Reply  string
}

//go:generate mockgen -source=leave_machine.go -destination=mock/leave_machine_mock.go -package=mock

// Machine is the slot-filling state machine over a leave draft. It owns
// no state of its own: the caller passes the session's draft in and
// stores the returned one, so sessions never share mutable state.
type Machine interface {
	Advance(ctx context.Context, utterance string, draft Draft, today dates.Date) Turn
}

type machine struct {
	extractor oracle.LeaveExtractor
	logger    *zap.Logger
}

func NewMachine(extractor oracle.LeaveExtractor, logger ...*zap.Logger) Machine {
	l := zap.L().Named("leave.machine")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.machine")
	}
	return &machine{extractor: extractor, logger: l}
}

func (m *machine) Advance(ctx context.Context, utterance string, draft Draft, today dates.Date) Turn {
	m.logger.Debug("advance leave draft",
		zap.String("today", today.String()),
		zap.Strings("missing_before", draft.Missing()),
	)

	extraction, err := m.extractor.ExtractLeave(ctx, utterance, toExtraction(draft), today.String())
	if err != nil {
		// Oracle failure is a no-op on the draft: no partial merge.
		m.logger.Warn("leave extraction failed, draft unchanged", zap.Error(err))
		return Turn{Draft: draft, Reply: retryPrompt}
	}

	candidate := m.fromExtraction(extraction, today)
	merged := draft.Merge(candidate).ResolveDates()

	if !merged.Complete() {
		missing := merged.Missing()
		m.logger.Debug("leave draft still collecting", zap.Strings("missing", missing))
		return Turn{Draft: merged, Reply: clarifyingPrompt(missing)}
	}

	rec := merged.Finalize()
	m.logger.Info("leave draft complete",
		zap.String("employee_id", rec.EmployeeID),
		zap.String("leave_type", rec.LeaveType),
		zap.String("start_date", rec.StartDate.String()),
		zap.String("end_date", rec.EndDate.String()),
		zap.Int("number_of_days", rec.NumberOfDays),
	)
	return Turn{Draft: merged, Record: &rec}
}

// toExtraction maps the draft into the oracle's wire shape so the model
// sees exactly the state it must preserve.
func toExtraction(d Draft) oracle.LeaveExtraction {
	var e oracle.LeaveExtraction
	if d.EmployeeID != nil {
		v := oracle.FlexString(*d.EmployeeID)
		e.EmployeeID = &v
	}
	if d.EmployeeName != nil {
		v := oracle.FlexString(*d.EmployeeName)
		e.EmployeeName = &v
	}
	if d.LeaveType != nil {
		v := oracle.FlexString(*d.LeaveType)
		e.LeaveType = &v
	}
	if d.StartDate != nil {
		v := oracle.FlexString(d.StartDate.String())
		e.StartDate = &v
	}
	if d.EndDate != nil {
		v := oracle.FlexString(d.EndDate.String())
		e.EndDate = &v
	}
	if d.NumberOfDays != nil {
		v := oracle.FlexInt(*d.NumberOfDays)
		e.NumberOfDays = &v
	}
	if d.Comments != nil {
		v := oracle.FlexString(*d.Comments)
		e.Comments = &v
	}
	return e
}

// fromExtraction builds the candidate draft. Date strings the oracle
// failed to normalize are resolved against today; anything unparseable is
// treated as missing rather than corrupting the slot.
func (m *machine) fromExtraction(e oracle.LeaveExtraction, today dates.Date) Draft {
	var d Draft
	if e.EmployeeID != nil && e.EmployeeID.String() != "" {
		v := e.EmployeeID.String()
		d.EmployeeID = &v
	}
	if e.EmployeeName != nil && e.EmployeeName.String() != "" {
		v := e.EmployeeName.String()
		d.EmployeeName = &v
	}
	if e.LeaveType != nil && e.LeaveType.String() != "" {
		v := strings.ToLower(e.LeaveType.String())
		d.LeaveType = &v
	}
	if e.StartDate != nil {
		if day, err := dates.ResolveExpression(e.StartDate.String(), today); err == nil {
			d.StartDate = &day
		} else {
			m.logger.Warn("dropping unparseable start date", zap.String("value", e.StartDate.String()))
		}
	}
	if e.EndDate != nil {
		if day, err := dates.ResolveExpression(e.EndDate.String(), today); err == nil {
			d.EndDate = &day
		} else {
			m.logger.Warn("dropping unparseable end date", zap.String("value", e.EndDate.String()))
		}
	}
	if e.NumberOfDays != nil && e.NumberOfDays.Int() > 0 {
		v := e.NumberOfDays.Int()
		d.NumberOfDays = &v
	}
	if e.Comments != nil && e.Comments.String() != "" {
		v := e.Comments.String()
		d.Comments = &v
	}
	return d
}

// clarifyingPrompt names the missing fields in their stable order so the
// user always sees the same minimal ask for the same draft state.
func clarifyingPrompt(missing []string) string {
	switch len(missing) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Almost there! I just need your %s.", missing[0])
	case 5:
		return "I can help you apply for leave! Could you tell me your employee id and name to get started?"
	default:
		return fmt.Sprintf("Thanks! I still need your %s and %s.",
			strings.Join(missing[:len(missing)-1], ", "), missing[len(missing)-1])
	}
}
