package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"richmondtech/config"
	"richmondtech/internal/domain"
)

// fakeDataService records calls; only ClassifyAndAnswer is scripted.
type fakeDataService struct {
	bundle      *domain.AnswerBundle
	classifyErr error
	calls       int
}

func (f *fakeDataService) NextUpcomingEvent(context.Context, time.Time) (*domain.Event, error) {
	f.calls++
	return nil, nil
}
func (f *fakeDataService) SearchEventsByTopic(context.Context, string, int) ([]*domain.Event, error) {
	f.calls++
	return nil, nil
}
func (f *fakeDataService) VenueInfo(context.Context, string) (*domain.Venue, []*domain.Event, error) {
	f.calls++
	return nil, nil, nil
}
func (f *fakeDataService) CompanySummaries(context.Context) ([]*domain.Company, error) {
	f.calls++
	return nil, nil
}
func (f *fakeDataService) MeetupGroups(context.Context, string) ([]*domain.MeetupGroup, error) {
	f.calls++
	return nil, nil
}
func (f *fakeDataService) EventsBetween(context.Context, time.Time, time.Time) ([]*domain.Event, error) {
	f.calls++
	return nil, nil
}
func (f *fakeDataService) EventsBySpeaker(context.Context, string) ([]*domain.Event, error) {
	f.calls++
	return nil, nil
}
func (f *fakeDataService) CommunitySummaryReport(context.Context, time.Time) (*domain.CommunitySummary, error) {
	f.calls++
	return nil, nil
}
func (f *fakeDataService) ClassifyAndAnswer(_ context.Context, question string, _ time.Time) (*domain.AnswerBundle, error) {
	f.calls++
	if f.classifyErr != nil {
		return nil, f.classifyErr
	}
	return f.bundle, nil
}

type fakeModel struct {
	enabled bool
	result  *domain.ModelResult
	err     error
	calls   int
}

func (f *fakeModel) Enabled() bool { return f.enabled }
func (f *fakeModel) Name() string  { return "fake-model" }
func (f *fakeModel) Answer(context.Context, string, []domain.Tool) (*domain.ModelResult, error) {
	f.calls++
	return f.result, f.err
}

func localBundle() *domain.AnswerBundle {
	return &domain.AnswerBundle{
		Answer:    "The next event is X.",
		Intent:    domain.IntentNextEvent,
		ToolsUsed: []string{"get_next_upcoming_event"},
	}
}

func unclassifiedBundle() *domain.AnswerBundle {
	return &domain.AnswerBundle{Intent: domain.IntentUnclassified, ToolsUsed: []string{}}
}

func TestAsk_EmptyQuestion(t *testing.T) {
	data := &fakeDataService{}
	model := &fakeModel{enabled: true}
	svc := NewAskService(data, model, config.AskModeAuto, testLogger, 5*time.Second)

	_, err := svc.Ask(context.Background(), "   ", nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, data.calls, "validation failure must not reach the data service")
	assert.Zero(t, model.calls, "validation failure must not reach the model")
}

func TestAsk_LocalResolution(t *testing.T) {
	data := &fakeDataService{bundle: localBundle()}
	model := &fakeModel{enabled: true}
	svc := NewAskService(data, model, config.AskModeAuto, testLogger, 5*time.Second)

	answer, err := svc.Ask(context.Background(), "next meetup?", nil)
	require.NoError(t, err)
	assert.Equal(t, "The next event is X.", answer.Answer)
	assert.Equal(t, "local", answer.Metadata["mode"])
	assert.NotEmpty(t, answer.RequestID)
	assert.NotEmpty(t, answer.Timestamp)
	assert.Zero(t, model.calls, "local hit must not consult the model")
}

func TestAsk_ModelFallbackOnMiss(t *testing.T) {
	data := &fakeDataService{bundle: unclassifiedBundle()}
	model := &fakeModel{enabled: true, result: &domain.ModelResult{
		Text:         "Model says hi.",
		ToolsUsed:    []string{"get_company_summaries"},
		Model:        "fake-model",
		InputTokens:  12,
		OutputTokens: 7,
	}}
	svc := NewAskService(data, model, config.AskModeAuto, testLogger, 5*time.Second)

	answer, err := svc.Ask(context.Background(), "something odd", nil)
	require.NoError(t, err)
	assert.Equal(t, "Model says hi.", answer.Answer)
	assert.Equal(t, "model", answer.Metadata["mode"])
	assert.Equal(t, 12, answer.Metadata["input_tokens"])
	assert.Equal(t, 1, model.calls)
}

func TestAsk_AlwaysModeSkipsClassifier(t *testing.T) {
	data := &fakeDataService{bundle: localBundle()}
	model := &fakeModel{enabled: true, result: &domain.ModelResult{Text: "From the model."}}
	svc := NewAskService(data, model, config.AskModeAlways, testLogger, 5*time.Second)

	answer, err := svc.Ask(context.Background(), "next meetup?", nil)
	require.NoError(t, err)
	assert.Equal(t, "From the model.", answer.Answer)
	assert.Zero(t, data.calls, "always mode goes straight to the model")
}

func TestAsk_LocalModeNeverCallsModel(t *testing.T) {
	data := &fakeDataService{bundle: unclassifiedBundle()}
	model := &fakeModel{enabled: true, result: &domain.ModelResult{Text: "nope"}}
	svc := NewAskService(data, model, config.AskModeLocal, testLogger, 5*time.Second)

	answer, err := svc.Ask(context.Background(), "something odd", nil)
	require.NoError(t, err)
	assert.Zero(t, model.calls)
	assert.NotEmpty(t, answer.Answer, "unresolved questions still get a well-formed reply")
}

func TestAsk_UnresolvedWithoutModel(t *testing.T) {
	data := &fakeDataService{bundle: unclassifiedBundle()}
	svc := NewAskService(data, &fakeModel{enabled: false}, config.AskModeAuto, testLogger, 5*time.Second)

	answer, err := svc.Ask(context.Background(), "something odd", nil)
	require.NoError(t, err)
	assert.Contains(t, answer.Answer, "not sure")
	assert.Empty(t, answer.ToolsUsed)
}

func TestAsk_StoreFailureIsAnErrorResult(t *testing.T) {
	data := &fakeDataService{classifyErr: domain.ErrStoreUnavailable}
	svc := NewAskService(data, &fakeModel{enabled: true}, config.AskModeAuto, testLogger, 5*time.Second)

	_, err := svc.Ask(context.Background(), "next meetup?", nil)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable, "no partial answers on store failure")
}

func TestAsk_ModelFailurePropagates(t *testing.T) {
	data := &fakeDataService{bundle: unclassifiedBundle()}
	model := &fakeModel{enabled: true, err: domain.ErrModelService}
	svc := NewAskService(data, model, config.AskModeAuto, testLogger, 5*time.Second)

	_, err := svc.Ask(context.Background(), "something odd", nil)
	require.ErrorIs(t, err, domain.ErrModelService)
}

func TestAsk_ExtraMetadataMergedIn(t *testing.T) {
	data := &fakeDataService{bundle: localBundle()}
	svc := NewAskService(data, &fakeModel{}, config.AskModeAuto, testLogger, 5*time.Second)

	answer, err := svc.Ask(context.Background(), "next meetup?", map[string]any{"channel": "cli"})
	require.NoError(t, err)
	assert.Equal(t, "cli", answer.Metadata["channel"])
}

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, "timeout", outcomeLabel(context.DeadlineExceeded))
	assert.Equal(t, "internal", outcomeLabel(errors.New("boom")))
	assert.Equal(t, "store_unavailable", outcomeLabel(domain.ErrStoreUnavailable))
}
