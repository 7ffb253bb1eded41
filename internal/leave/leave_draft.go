package leave

import (
	"strings"

	"hr-assistant/internal/dates"
)

const (
	TypeSick     = "sick"
	TypeCasual   = "casual"
	TypeVacation = "vacation"
)

// Missing-field labels, in the order clarifying prompts list them.
const (
	FieldEmployeeID   = "employee id"
	FieldEmployeeName = "name"
	FieldLeaveType    = "leave type"
	FieldStartDate    = "start date"
	FieldEndOrDays    = "end date or day count"
)

// Draft is the per-session leave application slot set. A nil field is an
// unfilled slot; once filled, only a new non-null extraction may change it.
type Draft struct {
	EmployeeID   *string     `json:"employee_id"`
	EmployeeName *string     `json:"employee_name"`
	LeaveType    *string     `json:"leave_type"`
	StartDate    *dates.Date `json:"start_date"`
	EndDate      *dates.Date `json:"end_date"`
	NumberOfDays *int        `json:"number_of_days"`
	Comments     *string     `json:"comments"`
}

// Record is the immutable finalized application, produced exactly once
// per completed draft.
type Record struct {
	EmployeeID   string
	EmployeeName string
	LeaveType    string
	StartDate    dates.Date
	EndDate      dates.Date
	NumberOfDays int
	Comments     string
}

// Merge overlays a candidate extraction onto the draft: a non-null
// candidate field always wins, a null candidate field never erases.
func (d Draft) Merge(candidate Draft) Draft {
	if candidate.EmployeeID != nil {
		d.EmployeeID = candidate.EmployeeID
	}
	if candidate.EmployeeName != nil {
		d.EmployeeName = candidate.EmployeeName
	}
	if candidate.LeaveType != nil {
		d.LeaveType = candidate.LeaveType
	}
	if candidate.StartDate != nil {
		d.StartDate = candidate.StartDate
	}
	if candidate.EndDate != nil {
		d.EndDate = candidate.EndDate
	}
	if candidate.NumberOfDays != nil {
		d.NumberOfDays = candidate.NumberOfDays
	}
	if candidate.Comments != nil {
		d.Comments = candidate.Comments
	}
	return d
}

// ResolveDates completes end date / day count from whatever pair of the
// date triple is known.
func (d Draft) ResolveDates() Draft {
	d.StartDate, d.EndDate, d.NumberOfDays = dates.ResolveTriple(d.StartDate, d.EndDate, d.NumberOfDays)
	return d
}

// Missing lists the unfilled required fields in stable prompt order: id,
// name, type, start date, then end-date-or-day-count.
func (d Draft) Missing() []string {
	var missing []string
	if strPtrEmpty(d.EmployeeID) {
		missing = append(missing, FieldEmployeeID)
	}
	if strPtrEmpty(d.EmployeeName) {
		missing = append(missing, FieldEmployeeName)
	}
	if strPtrEmpty(d.LeaveType) {
		missing = append(missing, FieldLeaveType)
	}
	if d.StartDate == nil {
		missing = append(missing, FieldStartDate)
	}
	if d.EndDate == nil && d.NumberOfDays == nil {
		missing = append(missing, FieldEndOrDays)
	}
	return missing
}

// Complete reports whether all six required fields are filled. Comments
// stay optional.
func (d Draft) Complete() bool {
	return len(d.Missing()) == 0 && d.EndDate != nil && d.NumberOfDays != nil
}

// Finalize coerces the completed draft into a Record. Callers must check
// Complete first.
func (d Draft) Finalize() Record {
	rec := Record{
		EmployeeID:   strings.TrimSpace(*d.EmployeeID),
		EmployeeName: strings.TrimSpace(*d.EmployeeName),
		LeaveType:    strings.ToLower(strings.TrimSpace(*d.LeaveType)),
		StartDate:    *d.StartDate,
		EndDate:      *d.EndDate,
		NumberOfDays: *d.NumberOfDays,
	}
	if d.Comments != nil {
		rec.Comments = *d.Comments
	}
	return rec
}

// IsEmpty reports whether no slot has been filled yet.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

func strPtrEmpty(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
