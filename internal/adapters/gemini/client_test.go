package gemini

import (
	"context"
	"testing"

	"google.golang.org/genai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"richmondtech/internal/domain"
)

func TestDeclarations(t *testing.T) {
	tools := []domain.Tool{
		{Def: domain.ToolDef{Name: "no_args", Description: "takes nothing"}},
		{Def: domain.ToolDef{
			Name: "search",
			Params: []domain.ToolParam{
				{Name: "topic", Type: "string", Required: true},
				{Name: "limit", Type: "integer"},
			},
		}},
	}

	decls := declarations(tools)
	require.Len(t, decls, 2)

	assert.Nil(t, decls[0].Parameters, "parameterless tools carry no schema")

	params := decls[1].Parameters
	require.NotNil(t, params)
	assert.Equal(t, genai.TypeObject, params.Type)
	assert.Equal(t, genai.TypeString, params.Properties["topic"].Type)
	assert.Equal(t, genai.TypeInteger, params.Properties["limit"].Type)
	assert.Equal(t, []string{"topic"}, params.Required)
}

func TestToResponseMap(t *testing.T) {
	t.Run("object passes through", func(t *testing.T) {
		got := toResponseMap(map[string]any{"name": "x"})
		assert.Equal(t, "x", got["name"])
	})
	t.Run("struct becomes object", func(t *testing.T) {
		got := toResponseMap(struct {
			ID string `json:"id"`
		}{ID: "event_01"})
		assert.Equal(t, "event_01", got["id"])
	})
	t.Run("non-object is wrapped", func(t *testing.T) {
		got := toResponseMap([]string{"a", "b"})
		assert.Contains(t, got, "result")
	})
}

func TestNoopClient(t *testing.T) {
	c := NewDisabled()
	assert.False(t, c.Enabled())
	assert.Empty(t, c.Name())

	_, err := c.Answer(context.Background(), "anything", nil)
	require.ErrorIs(t, err, domain.ErrModelService)
}

func TestMapErr(t *testing.T) {
	c := &Client{}
	assert.ErrorIs(t, c.mapErr(context.DeadlineExceeded), domain.ErrTimeout)
	assert.ErrorIs(t, c.mapErr(context.Canceled), context.Canceled)
	assert.ErrorIs(t, c.mapErr(assertableErr{}), domain.ErrModelService)
}

type assertableErr struct{}

func (assertableErr) Error() string { return "quota exceeded" }
