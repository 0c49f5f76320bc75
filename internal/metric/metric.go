package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuestionsReceived counts every question accepted by the ask
	// endpoint, before validation.
	QuestionsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rvaq_questions_received_total",
		Help: "Number of questions received",
	})

	// AskOutcomes counts finished asks by outcome: local, model,
	// unanswered, or one of the error kinds.
	AskOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rvaq_ask_outcomes_total",
		Help: "Number of finished asks by outcome",
	}, []string{"outcome"})

	// ToolInvocations counts data service tool calls made on behalf of
	// the model.
	ToolInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rvaq_tool_invocations_total",
		Help: "Number of model-requested tool invocations by tool name",
	}, []string{"tool"})

	// SeedRuns counts admin reseeds.
	SeedRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rvaq_seed_runs_total",
		Help: "Number of admin seed runs",
	})
)
