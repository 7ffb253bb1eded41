package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// LLM implements the oracle interfaces on top of an OpenAI-compatible
// chat completion endpoint.
type LLM struct {
	client *Client
	logger *zap.Logger
}

func NewLLM(client *Client, logger ...*zap.Logger) *LLM {
	l := zap.L().Named("oracle.llm")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("oracle.llm")
	}
	return &LLM{client: client, logger: l}
}

func (o *LLM) ExtractLeave(ctx context.Context, utterance string, current LeaveExtraction, today string) (LeaveExtraction, error) {
	state, err := json.Marshal(current)
	if err != nil {
		return LeaveExtraction{}, fmt.Errorf("marshal current state: %w", err)
	}

	temp := 0.3
	resp, err := o.client.CreateChatCompletion(ctx, &ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: leaveSystemPrompt(today)},
			{Role: "user", Content: fmt.Sprintf("Current State: %s\n\nNew Message: %s", state, utterance)},
		},
		Temperature:    &temp,
		ResponseFormat: map[string]any{"type": "json_object"},
	})
	if err != nil {
		o.logger.Warn("leave extraction call failed", zap.Error(err))
		return LeaveExtraction{}, err
	}

	content, err := firstMessageContent(resp)
	if err != nil {
		return LeaveExtraction{}, err
	}

	var extraction LeaveExtraction
	if err := json.Unmarshal([]byte(content), &extraction); err != nil {
		o.logger.Warn("leave extraction unparseable", zap.Error(err))
		return LeaveExtraction{}, fmt.Errorf("unparseable leave extraction: %w", err)
	}
	return extraction, nil
}

func (o *LLM) ClassifyFeedback(ctx context.Context, utterance string) (FeedbackExtraction, error) {
	temp := 0.0
	resp, err := o.client.CreateChatCompletion(ctx, &ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: feedbackSystemPrompt},
			{Role: "user", Content: utterance},
		},
		Temperature:    &temp,
		ResponseFormat: map[string]any{"type": "json_object"},
	})
	if err != nil {
		o.logger.Warn("feedback classification call failed", zap.Error(err))
		return FeedbackExtraction{}, err
	}

	content, err := firstMessageContent(resp)
	if err != nil {
		return FeedbackExtraction{}, err
	}

	var extraction FeedbackExtraction
	if err := json.Unmarshal([]byte(content), &extraction); err != nil {
		o.logger.Warn("feedback classification unparseable", zap.Error(err))
		return FeedbackExtraction{}, fmt.Errorf("unparseable feedback classification: %w", err)
	}
	return extraction, nil
}

func (o *LLM) ClassifyIntent(ctx context.Context, utterance, activeFlow string) (string, error) {
	system := intentSystemPrompt
	if activeFlow != "" {
		system += fmt.Sprintf("\n\nCONTEXT: User is currently in the middle of a %s flow.", activeFlow)
	}

	temp := 0.0
	maxTokens := 10
	resp, err := o.client.CreateChatCompletion(ctx, &ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: utterance},
		},
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		o.logger.Warn("intent classification call failed", zap.Error(err))
		return "", err
	}

	content, err := firstMessageContent(resp)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(strings.TrimSpace(content)), nil
}

// AnswerWithContext composes a policy answer from retrieved context.
func (o *LLM) AnswerWithContext(ctx context.Context, question, retrieved string) (string, error) {
	temp := 0.0
	resp, err := o.client.CreateChatCompletion(ctx, &ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: policyAnswerPrompt},
			{Role: "user", Content: fmt.Sprintf("Context:\n%s\n\nQuestion:\n%s", retrieved, question)},
		},
		Temperature: &temp,
	})
	if err != nil {
		return "", err
	}
	return firstMessageContent(resp)
}

func firstMessageContent(resp *ChatCompletionResponse) (string, error) {
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0].Message == nil {
		return "", fmt.Errorf("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
