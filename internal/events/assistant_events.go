package events

import "time"

const (
	LeaveSubmittedTopic   = "hr.assistant.leave.v1"
	FeedbackRecordedTopic = "hr.assistant.feedback.v1"
)

type LeaveSubmittedEvent struct {
	EventType    string    `json:"event_type"`
	SessionID    string    `json:"session_id"`
	EmployeeID   string    `json:"employee_id"`
	LeaveType    string    `json:"leave_type"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	NumberOfDays int       `json:"number_of_days"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type FeedbackRecordedEvent struct {
	EventType  string    `json:"event_type"`
	SessionID  string    `json:"session_id"`
	Sentiment  string    `json:"sentiment"`
	OccurredAt time.Time `json:"occurred_at"`
}
