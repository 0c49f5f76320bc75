package domain

import (
	"context"
	"time"
)

// Event represents a single scheduled meetup session
type Event struct {
	ID               string    `json:"id"`
	MeetupID         string    `json:"meetup_id"`
	MeetupName       string    `json:"meetup_name,omitempty"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	VenueID          string    `json:"venue_id"`
	VenueName        string    `json:"venue_name,omitempty"`
	Speaker          string    `json:"speaker,omitempty"`
	SpeakerBio       string    `json:"speaker_bio,omitempty"`
	SpeakerCompanyID string    `json:"speaker_company_id,omitempty"`
	Capacity         int       `json:"capacity,omitempty"`
	Registered       int       `json:"registered,omitempty"`
	Tags             []string  `json:"tags"`
	Cost             string    `json:"cost,omitempty"`
}

// EventRepository defines the interface for event storage.
// QueryByDateRange returns events with start >= start and start < end,
// ordered by ascending start time.
type EventRepository interface {
	Put(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	QueryByDateRange(ctx context.Context, start, end time.Time) ([]*Event, error)
	ScanAll(ctx context.Context) ([]*Event, error)
}
