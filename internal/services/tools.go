package services

import (
	"context"
	"fmt"
	"time"

	"richmondtech/internal/domain"
)

const defaultSearchLimit = 5

// BuildToolRegistry exposes the data service operations as callable,
// schema-described tools for the model-assisted path. Tool results are
// plain structs; the model adapter handles serialization.
func BuildToolRegistry(data domain.DataService) []domain.Tool {
	return []domain.Tool{
		{
			Def: domain.ToolDef{
				Name:        "get_next_upcoming_event",
				Description: "Get the next upcoming tech event in Richmond, VA.",
			},
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				event, err := data.NextUpcomingEvent(ctx, time.Now())
				if err != nil {
					return nil, err
				}
				if event == nil {
					return map[string]any{"message": "no upcoming events"}, nil
				}
				return event, nil
			},
		},
		{
			Def: domain.ToolDef{
				Name:        "search_events_by_topic",
				Description: "Search tech events by topic keyword (e.g. python, cloud, security).",
				Params: []domain.ToolParam{
					{Name: "topic", Type: "string", Description: "Topic keyword to search for", Required: true},
					{Name: "limit", Type: "integer", Description: "Maximum number of events to return"},
				},
			},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				topic, err := stringArg(args, "topic")
				if err != nil {
					return nil, err
				}
				limit := intArg(args, "limit", defaultSearchLimit)
				return data.SearchEventsByTopic(ctx, topic, limit)
			},
		},
		{
			Def: domain.ToolDef{
				Name:        "get_venue_info",
				Description: "Get details and upcoming events for a venue, by name or ID.",
				Params: []domain.ToolParam{
					{Name: "name", Type: "string", Description: "Venue name or ID", Required: true},
				},
			},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				name, err := stringArg(args, "name")
				if err != nil {
					return nil, err
				}
				venue, upcoming, err := data.VenueInfo(ctx, name)
				if err != nil {
					return nil, err
				}
				return map[string]any{"venue": venue, "upcoming_events": upcoming}, nil
			},
		},
		{
			Def: domain.ToolDef{
				Name:        "get_company_summaries",
				Description: "List Richmond tech companies, largest employers first.",
			},
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return data.CompanySummaries(ctx)
			},
		},
		{
			Def: domain.ToolDef{
				Name:        "get_meetup_groups",
				Description: "List meetup groups, optionally filtered by category.",
				Params: []domain.ToolParam{
					{Name: "category", Type: "string", Description: "Category filter (e.g. cloud, data)"},
				},
			},
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				category, _ := args["category"].(string)
				return data.MeetupGroups(ctx, category)
			},
		},
		{
			Def: domain.ToolDef{
				Name:        "get_community_summary",
				Description: "Get aggregate stats about the Richmond tech community.",
			},
			Invoke: func(ctx context.Context, _ map[string]any) (any, error) {
				return data.CommunitySummaryReport(ctx, time.Now())
			},
		},
	}
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: tool argument %q is required", domain.ErrInvalidInput, name)
	}
	return v, nil
}

func intArg(args map[string]any, name string, fallback int) int {
	switch v := args[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}
