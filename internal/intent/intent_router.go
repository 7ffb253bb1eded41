// Package intent decides, turn by turn, which workflow an utterance
// belongs to. The router only classifies; the orchestrator owns the
// active-flow state the classification is biased by.
package intent

import (
	"context"
	"strings"

	"hr-assistant/internal/oracle"

	"go.uber.org/zap"
)

type Flow string

const (
	FlowPolicy   Flow = "POLICY"
	FlowLeave    Flow = "LEAVE"
	FlowFeedback Flow = "FEEDBACK"

	// FlowUnknown means the router could not classify; the caller must
	// ask the user to clarify rather than guess.
	FlowUnknown Flow = ""
)

var validFlows = []Flow{FlowPolicy, FlowLeave, FlowFeedback}

//go:generate mockgen -source=intent_router.go -destination=mock/intent_router_mock.go -package=mock

type Router interface {
	Route(ctx context.Context, utterance string, active Flow) Flow
}

type router struct {
	classifier oracle.IntentClassifier
	logger     *zap.Logger
}

func NewRouter(classifier oracle.IntentClassifier, logger ...*zap.Logger) Router {
	l := zap.L().Named("intent.router")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("intent.router")
	}
	return &router{classifier: classifier, logger: l}
}

func (r *router) Route(ctx context.Context, utterance string, active Flow) Flow {
	if strings.TrimSpace(utterance) == "" {
		return FlowUnknown
	}

	label, err := r.classifier.ClassifyIntent(ctx, utterance, string(active))
	if err != nil {
		r.logger.Warn("intent classification failed", zap.Error(err))
		return FlowUnknown
	}

	flow := salvageFlow(label)
	r.logger.Debug("intent classified",
		zap.String("label", label),
		zap.String("flow", string(flow)),
		zap.String("active", string(active)),
	)
	return flow
}

// salvageFlow accepts an exact label, then falls back to finding one
// inside a noisy token ("INTENT: LEAVE."), then gives up.
func salvageFlow(label string) Flow {
	token := Flow(strings.ToUpper(strings.TrimSpace(label)))
	for _, valid := range validFlows {
		if token == valid {
			return valid
		}
	}
	for _, valid := range validFlows {
		if strings.Contains(string(token), string(valid)) {
			return valid
		}
	}
	return FlowUnknown
}
