package domain

import (
	"context"
	"time"
)

// Intent is the canned query shape the local classifier resolved a
// question to.
type Intent string

const (
	IntentNextEvent        Intent = "next_event"
	IntentTopicSearch      Intent = "topic_search"
	IntentVenueInfo        Intent = "venue_info"
	IntentCompanies        Intent = "companies"
	IntentMeetupGroups     Intent = "meetup_groups"
	IntentSpeaker          Intent = "speaker"
	IntentDateRange        Intent = "date_range"
	IntentCommunitySummary Intent = "community_summary"

	// IntentUnclassified signals no local rule matched; the caller should
	// fall back to the model-assisted path. It is a state, not an error.
	IntentUnclassified Intent = "unclassified"
)

// AnswerBundle is the result of local classification plus execution of
// the matched query shape.
type AnswerBundle struct {
	Answer    string   `json:"answer"`
	Intent    Intent   `json:"intent"`
	ToolsUsed []string `json:"tools_used"`
	Data      any      `json:"data,omitempty"`
}

// Answer is the packaged response for one question.
type Answer struct {
	Answer    string         `json:"answer"`
	ToolsUsed []string       `json:"tools_used"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	RequestID string         `json:"request_id"`
	Timestamp string         `json:"timestamp"`
}

// CommunitySummary aggregates the seeded community data.
type CommunitySummary struct {
	TotalVenues         int            `json:"total_venues"`
	TotalCompanies      int            `json:"total_companies"`
	TotalMeetupGroups   int            `json:"total_meetup_groups"`
	TotalUpcomingEvents int            `json:"total_upcoming_events"`
	TotalMembers        int            `json:"total_community_members"`
	TotalTechEmployees  int            `json:"total_tech_employees"`
	PopularTechnologies []string       `json:"popular_technologies"`
	LargestMeetups      []*MeetupGroup `json:"largest_meetups"`
	MajorEmployers      []*Company     `json:"major_employers"`
	UpcomingHighlights  []*Event       `json:"upcoming_highlights"`
}

// DataService translates application-level questions into record store
// operations. Implementations hold no cached state across calls.
type DataService interface {
	NextUpcomingEvent(ctx context.Context, now time.Time) (*Event, error)
	SearchEventsByTopic(ctx context.Context, topic string, limit int) ([]*Event, error)
	VenueInfo(ctx context.Context, nameOrID string) (*Venue, []*Event, error)
	CompanySummaries(ctx context.Context) ([]*Company, error)
	MeetupGroups(ctx context.Context, category string) ([]*MeetupGroup, error)
	EventsBetween(ctx context.Context, start, end time.Time) ([]*Event, error)
	EventsBySpeaker(ctx context.Context, name string) ([]*Event, error)
	CommunitySummaryReport(ctx context.Context, now time.Time) (*CommunitySummary, error)
	ClassifyAndAnswer(ctx context.Context, question string, now time.Time) (*AnswerBundle, error)
}

// AskService orchestrates one end-to-end answer for a single question.
type AskService interface {
	Ask(ctx context.Context, question string, extra map[string]any) (*Answer, error)
}

// Seeder writes the fixed demo dataset. Idempotent per record ID.
type Seeder interface {
	Seed(ctx context.Context) (itemsWritten int, err error)
}

// Pinger reports reachability of the record store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health is the component health report.
type Health struct {
	Status     string            `json:"status"` // "ok" or "degraded"
	Components map[string]string `json:"components"`
}

// HealthService checks component reachability.
type HealthService interface {
	Check(ctx context.Context) *Health
}
