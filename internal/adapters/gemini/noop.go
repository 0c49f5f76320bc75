package gemini

import (
	"context"
	"fmt"

	"richmondtech/internal/domain"
)

type noopClient struct{}

// NewDisabled returns a model client stand-in for deployments with no
// model configured. Enabled() reports false; callers should skip the
// model-assisted path.
func NewDisabled() domain.ModelClient {
	return noopClient{}
}

func (noopClient) Enabled() bool { return false }

func (noopClient) Name() string { return "" }

func (noopClient) Answer(context.Context, string, []domain.Tool) (*domain.ModelResult, error) {
	return nil, fmt.Errorf("%w: no model configured", domain.ErrModelService)
}
