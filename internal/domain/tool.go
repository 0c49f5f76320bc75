package domain

import "context"

// ToolParam describes one argument of a callable tool.
type ToolParam struct {
	Name        string
	Type        string // "string" or "integer"
	Description string
	Required    bool
}

// ToolDef is the schema description the model receives for one callable
// data service operation.
type ToolDef struct {
	Name        string
	Description string
	Params      []ToolParam
}

// ToolFunc executes one tool call with the model-supplied arguments.
type ToolFunc func(ctx context.Context, args map[string]any) (any, error)

// Tool pairs a schema description with its typed implementation. This is
// the only surface the model integration sees; vendor request/response
// shapes stay inside the adapter.
type Tool struct {
	Def    ToolDef
	Invoke ToolFunc
}

// ModelResult is the final output of one model-assisted exchange.
type ModelResult struct {
	Text         string
	ToolsUsed    []string
	Model        string
	InputTokens  int
	OutputTokens int
}

// ModelClient is the hosted language-model integration. Answer submits a
// question plus callable tools, dispatches any requested tool calls, and
// returns the model's final text. Implementations must honor ctx
// cancellation on every network call.
type ModelClient interface {
	Enabled() bool
	Name() string
	Answer(ctx context.Context, question string, tools []Tool) (*ModelResult, error)
}
