package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"richmondtech/config"
	"richmondtech/internal/domain"
	"richmondtech/internal/metric"
)

const unansweredText = "I'm not sure how to answer that. Try asking about upcoming events, " +
	"topics like python or cloud, venues, companies, or the community overview."

type askService struct {
	data           domain.DataService
	model          domain.ModelClient
	tools          []domain.Tool
	mode           string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewAskService wires the end-to-end question flow. mode is one of the
// config.AskMode values and decides when the model is consulted.
func NewAskService(
	data domain.DataService,
	model domain.ModelClient,
	mode string,
	logger *slog.Logger,
	timeout time.Duration,
) domain.AskService {
	return &askService{
		data:           data,
		model:          model,
		tools:          instrumentTools(BuildToolRegistry(data)),
		mode:           mode,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *askService) Ask(ctx context.Context, question string, extra map[string]any) (*domain.Answer, error) {
	metric.QuestionsReceived.Inc()
	started := time.Now()

	question = strings.TrimSpace(question)
	if question == "" {
		metric.AskOutcomes.WithLabelValues("invalid_input").Inc()
		return nil, fmt.Errorf("%w: question is required", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	answer, err := s.resolve(ctx, question, started)
	if err != nil {
		metric.AskOutcomes.WithLabelValues(outcomeLabel(err)).Inc()
		s.logger.Error("ask failed", "question", question, "error", err)
		return nil, err
	}

	answer.RequestID = uuid.NewString()
	answer.Timestamp = time.Now().UTC().Format(time.RFC3339)
	for k, v := range extra {
		answer.Metadata[k] = v
	}
	s.logger.Info("ask answered",
		"request_id", answer.RequestID,
		"mode", answer.Metadata["mode"],
		"tools", answer.ToolsUsed,
		"elapsed_ms", answer.Metadata["elapsed_ms"])
	return answer, nil
}

func (s *askService) resolve(ctx context.Context, question string, started time.Time) (*domain.Answer, error) {
	now := time.Now()

	if s.mode != config.AskModeAlways {
		bundle, err := s.data.ClassifyAndAnswer(ctx, question, now)
		if err != nil {
			return nil, err
		}
		if bundle.Intent != domain.IntentUnclassified {
			metric.AskOutcomes.WithLabelValues("local").Inc()
			return &domain.Answer{
				Answer:    bundle.Answer,
				ToolsUsed: bundle.ToolsUsed,
				Metadata: map[string]any{
					"mode":       "local",
					"intent":     string(bundle.Intent),
					"elapsed_ms": time.Since(started).Milliseconds(),
				},
			}, nil
		}
	}

	if s.mode != config.AskModeLocal && s.model.Enabled() {
		result, err := s.model.Answer(ctx, question, s.tools)
		if err != nil {
			return nil, err
		}
		metric.AskOutcomes.WithLabelValues("model").Inc()
		return &domain.Answer{
			Answer:    result.Text,
			ToolsUsed: result.ToolsUsed,
			Metadata: map[string]any{
				"mode":          "model",
				"model":         result.Model,
				"input_tokens":  result.InputTokens,
				"output_tokens": result.OutputTokens,
				"elapsed_ms":    time.Since(started).Milliseconds(),
			},
		}, nil
	}

	// No local match and no model to fall back to. Still a well-formed
	// answer, not a failure.
	metric.AskOutcomes.WithLabelValues("unanswered").Inc()
	return &domain.Answer{
		Answer:    unansweredText,
		ToolsUsed: []string{},
		Metadata: map[string]any{
			"mode":       "local",
			"intent":     string(domain.IntentUnclassified),
			"elapsed_ms": time.Since(started).Milliseconds(),
		},
	}, nil
}

func instrumentTools(tools []domain.Tool) []domain.Tool {
	out := make([]domain.Tool, len(tools))
	for i, t := range tools {
		name, invoke := t.Def.Name, t.Invoke
		out[i] = domain.Tool{
			Def: t.Def,
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				metric.ToolInvocations.WithLabelValues(name).Inc()
				return invoke(ctx, args)
			},
		}
	}
	return out
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, domain.ErrModelService):
		return "model_error"
	}
	return "internal"
}
