// Package assistant is the session orchestrator: it routes each
// utterance, dispatches to the owning workflow, persists finalized
// records and maintains the per-session active flow. A turn never fails
// out of the loop; every failure degrades to a reply inviting retry.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hr-assistant/internal/dates"
	"hr-assistant/internal/events"
	"hr-assistant/internal/feedback"
	"hr-assistant/internal/intent"
	"hr-assistant/internal/leave"
	"hr-assistant/internal/messaging/kafka"
	"hr-assistant/internal/policy"
	"hr-assistant/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgCannotUnderstand = "I couldn't understand your request. I can help with leave applications, policy questions, or feedback."
	msgTryAgain         = "Something went wrong on my side. Please try again."
	msgFeedbackThanks   = "Thank you for your feedback! It has been recorded."
	msgFeedbackFailed   = "Sorry, I couldn't record your feedback. Please try again later."
	msgSubmitFailed     = "I couldn't submit your leave request just now. Your details are saved, please try again."
)

//go:generate mockgen -source=assistant_service.go -destination=mock/assistant_service_mock.go -package=mock

type Service interface {
	HandleUtterance(ctx context.Context, sessionID, utterance string) (string, error)
}

type service struct {
	router       intent.Router
	machine      leave.Machine
	classifier   feedback.Classifier
	policy       policy.Service
	sessions     session.Store
	leaveSink    leave.Sink
	feedbackSink feedback.Sink
	outbox       kafka.OutboxRepository // nil disables event publication
	now          func() time.Time
	logger       *zap.Logger
}

type Deps struct {
	Router       intent.Router
	Machine      leave.Machine
	Classifier   feedback.Classifier
	Policy       policy.Service
	Sessions     session.Store
	LeaveSink    leave.Sink
	FeedbackSink feedback.Sink
	Outbox       kafka.OutboxRepository
	Now          func() time.Time
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("assistant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assistant.service")
	}
	now := deps.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &service{
		router:       deps.Router,
		machine:      deps.Machine,
		classifier:   deps.Classifier,
		policy:       deps.Policy,
		sessions:     deps.Sessions,
		leaveSink:    deps.LeaveSink,
		feedbackSink: deps.FeedbackSink,
		outbox:       deps.Outbox,
		now:          now,
		logger:       l,
	}
}

func (s *service) HandleUtterance(ctx context.Context, sessionID, utterance string) (string, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return msgCannotUnderstand, nil
	}

	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		s.logger.Error("load session failed", zap.String("session_id", sessionID), zap.Error(err))
		return msgTryAgain, nil
	}

	flow := s.router.Route(ctx, utterance, state.ActiveFlow)
	s.logger.Debug("utterance routed",
		zap.String("session_id", sessionID),
		zap.String("flow", string(flow)),
		zap.String("active_flow", string(state.ActiveFlow)),
	)

	switch flow {
	case intent.FlowPolicy:
		// Policy turns are stateless; an interrupted leave draft is kept
		// but the flow is no longer active.
		state.ActiveFlow = intent.FlowUnknown
		s.save(ctx, sessionID, state)
		return s.policy.Answer(ctx, utterance), nil

	case intent.FlowFeedback:
		state.ActiveFlow = intent.FlowUnknown
		s.save(ctx, sessionID, state)
		return s.handleFeedback(ctx, sessionID, utterance), nil

	case intent.FlowLeave:
		return s.handleLeave(ctx, sessionID, utterance, state)

	default:
		state.ActiveFlow = intent.FlowUnknown
		s.save(ctx, sessionID, state)
		return msgCannotUnderstand, nil
	}
}

func (s *service) handleFeedback(ctx context.Context, sessionID, utterance string) string {
	rec := s.classifier.Classify(ctx, utterance)
	if err := s.feedbackSink.Append(ctx, rec); err != nil {
		s.logger.Error("feedback sink append failed", zap.String("session_id", sessionID), zap.Error(err))
		return msgFeedbackFailed
	}

	s.publish(ctx, events.FeedbackRecordedTopic, "feedback.recorded", sessionID, events.FeedbackRecordedEvent{
		EventType:  "feedback.recorded",
		SessionID:  sessionID,
		Sentiment:  rec.Sentiment,
		OccurredAt: s.now(),
	})
	return msgFeedbackThanks
}

func (s *service) handleLeave(ctx context.Context, sessionID, utterance string, state session.State) (string, error) {
	today := dates.Of(s.now())
	turn := s.machine.Advance(ctx, utterance, state.Draft, today)

	if turn.Record == nil {
		state.Draft = turn.Draft
		state.ActiveFlow = intent.FlowLeave
		s.save(ctx, sessionID, state)
		return turn.Reply, nil
	}

	if err := s.leaveSink.Append(ctx, *turn.Record, s.now()); err != nil {
		// Sink failure keeps the completed draft so the user never
		// re-enters data; the flow stays active for the retry.
		s.logger.Error("leave sink append failed", zap.String("session_id", sessionID), zap.Error(err))
		state.Draft = turn.Draft
		state.ActiveFlow = intent.FlowLeave
		s.save(ctx, sessionID, state)
		return msgSubmitFailed, nil
	}

	rec := *turn.Record
	s.publish(ctx, events.LeaveSubmittedTopic, "leave.submitted", sessionID, events.LeaveSubmittedEvent{
		EventType:    "leave.submitted",
		SessionID:    sessionID,
		EmployeeID:   rec.EmployeeID,
		LeaveType:    rec.LeaveType,
		StartDate:    rec.StartDate.String(),
		EndDate:      rec.EndDate.String(),
		NumberOfDays: rec.NumberOfDays,
		OccurredAt:   s.now(),
	})

	state.Draft = leave.Draft{}
	state.ActiveFlow = intent.FlowUnknown
	s.save(ctx, sessionID, state)

	return submissionConfirmation(rec), nil
}

// publish enqueues one event on the outbox, best-effort: a broken outbox
// never fails the turn that produced the record.
func (s *service) publish(ctx context.Context, topic, eventType, sessionID string, event any) {
	if s.outbox == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal outbox event failed", zap.String("event_type", eventType), zap.Error(err))
		return
	}

	err = s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		EventType: eventType,
		Topic:     topic,
		Payload:   payload,
		Status:    kafka.OutboxStatusPending,
	})
	if err != nil {
		s.logger.Error("enqueue outbox event failed", zap.String("event_type", eventType), zap.Error(err))
	}
}

func (s *service) save(ctx context.Context, sessionID string, state session.State) {
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		s.logger.Error("save session failed", zap.String("session_id", sessionID), zap.Error(err))
	}
}

func submissionConfirmation(rec leave.Record) string {
	return fmt.Sprintf(
		"Leave submitted successfully!\n  Days: %d\n  Period: %s to %s\n  Status: Pending approval",
		rec.NumberOfDays, rec.StartDate, rec.EndDate,
	)
}
