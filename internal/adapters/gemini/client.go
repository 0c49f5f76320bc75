package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"richmondtech/internal/domain"
)

// maxToolRounds bounds the model's tool-call loop so a misbehaving
// model cannot spin forever.
const maxToolRounds = 8

const systemInstruction = "You are a helpful assistant answering questions about the " +
	"tech community in Richmond, Virginia. Use the provided tools to look up venues, " +
	"companies, meetup groups, and events. Answer concisely and only from tool results."

// Client is the Gemini-backed model integration.
type Client struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// New creates a Gemini client. An empty apiKey is a configuration
// error; use NewDisabled when no model is configured.
func New(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{client: c, model: model, logger: logger}, nil
}

func (c *Client) Enabled() bool { return true }

func (c *Client) Name() string { return c.model }

// Answer runs the question through the model with the given tools,
// dispatching requested tool calls until the model produces text or the
// round limit is hit.
func (c *Client) Answer(ctx context.Context, question string, tools []domain.Tool) (*domain.ModelResult, error) {
	byName := make(map[string]domain.Tool, len(tools))
	for _, t := range tools {
		byName[t.Def.Name] = t
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Tools:             []*genai.Tool{{FunctionDeclarations: declarations(tools)}},
	}
	contents := []*genai.Content{
		genai.NewContentFromText(question, genai.RoleUser),
	}

	result := &domain.ModelResult{Model: c.model, ToolsUsed: []string{}}
	for round := 0; round <= maxToolRounds; round++ {
		resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
		if err != nil {
			return nil, c.mapErr(err)
		}
		if resp.UsageMetadata != nil {
			result.InputTokens += int(resp.UsageMetadata.PromptTokenCount)
			result.OutputTokens += int(resp.UsageMetadata.CandidatesTokenCount)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return nil, fmt.Errorf("%w: model returned no candidates", domain.ErrModelService)
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			text := resp.Text()
			if text == "" {
				return nil, fmt.Errorf("%w: model returned an empty answer", domain.ErrModelService)
			}
			result.Text = text
			return result, nil
		}

		contents = append(contents, resp.Candidates[0].Content)
		parts := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			out := c.dispatch(ctx, byName, call)
			result.ToolsUsed = append(result.ToolsUsed, call.Name)
			parts = append(parts, genai.NewPartFromFunctionResponse(call.Name, out))
		}
		contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))
	}
	return nil, fmt.Errorf("%w: tool-call round limit reached", domain.ErrModelService)
}

func (c *Client) dispatch(ctx context.Context, byName map[string]domain.Tool, call *genai.FunctionCall) map[string]any {
	tool, ok := byName[call.Name]
	if !ok {
		c.logger.Warn("model requested unknown tool", "tool", call.Name)
		return map[string]any{"error": "unknown tool: " + call.Name}
	}
	c.logger.Debug("dispatching tool call", "tool", call.Name, "args", call.Args)

	out, err := tool.Invoke(ctx, call.Args)
	if err != nil {
		// Tool failures go back to the model as data; only transport
		// failures abort the exchange.
		return map[string]any{"error": err.Error()}
	}
	return toResponseMap(out)
}

// toResponseMap coerces a tool result into the object shape the
// function-response part requires.
func toResponseMap(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]any{"error": "unserializable tool result"}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		var anyVal any
		_ = json.Unmarshal(raw, &anyVal)
		return map[string]any{"result": anyVal}
	}
	return m
}

func declarations(tools []domain.Tool) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		decl := &genai.FunctionDeclaration{
			Name:        t.Def.Name,
			Description: t.Def.Description,
		}
		if len(t.Def.Params) > 0 {
			props := make(map[string]*genai.Schema, len(t.Def.Params))
			var required []string
			for _, p := range t.Def.Params {
				props[p.Name] = &genai.Schema{
					Type:        schemaType(p.Type),
					Description: p.Description,
				}
				if p.Required {
					required = append(required, p.Name)
				}
			}
			decl.Parameters = &genai.Schema{
				Type:       genai.TypeObject,
				Properties: props,
				Required:   required,
			}
		}
		decls = append(decls, decl)
	}
	return decls
}

func schemaType(t string) genai.Type {
	if t == "integer" {
		return genai.TypeInteger
	}
	return genai.TypeString
}

func (c *Client) mapErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("gemini: %w: %v", domain.ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("gemini: %w: %v", domain.ErrModelService, err)
}
