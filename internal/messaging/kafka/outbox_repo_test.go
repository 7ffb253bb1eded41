package kafka_test

import (
	"context"
	"testing"
	"time"

	"hr-assistant/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func pendingEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:        "11111111-1111-1111-1111-111111111111",
		SessionID: "s1",
		EventType: "leave.submitted",
		Topic:     "hr.assistant.leave.v1",
		Payload:   []byte(`{"employee_id":"482"}`),
		Status:    kafka.OutboxStatusPending,
	}
}

func TestOutboxCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	event := pendingEvent()

	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(event.ID, event.SessionID, event.EventType, event.Topic, event.Payload, event.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxCreate_RejectsInvalidEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	cases := []struct {
		name  string
		event kafka.OutboxEvent
	}{
		{"missing id", kafka.OutboxEvent{Topic: "t", Payload: []byte("x"), Status: kafka.OutboxStatusPending}},
		{"missing topic", kafka.OutboxEvent{ID: "1", Payload: []byte("x"), Status: kafka.OutboxStatusPending}},
		{"missing payload", kafka.OutboxEvent{ID: "1", Topic: "t", Status: kafka.OutboxStatusPending}},
		{"bad status", kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte("x"), Status: "done"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, repo.Create(context.Background(), tc.event))
		})
	}

	// No statements must have reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	retryAt := time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "session_id", "event_type", "topic", "payload", "status", "retry_count", "coalesce",
	}).AddRow(
		"11111111-1111-1111-1111-111111111111", "s1", "leave.submitted",
		"hr.assistant.leave.v1", []byte(`{}`), kafka.OutboxStatusPending, 0, retryAt,
	)

	mock.ExpectQuery("SELECT(.|\n)*FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 50)

	assert.NoError(t, err)
	if assert.Len(t, events, 1) {
		assert.Equal(t, "leave.submitted", events[0].EventType)
		assert.Equal(t, "hr.assistant.leave.v1", events[0].Topic)
		assert.Equal(t, retryAt, events[0].NextRetryAt)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxMarkSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("event-1", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), "event-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxMarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("event-1", kafka.OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), "event-1", "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
