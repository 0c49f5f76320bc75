package domain

import "context"

// MeetupGroup represents a recurring community group
type MeetupGroup struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Description      string   `json:"description,omitempty"`
	Organizer        string   `json:"organizer,omitempty"`
	OrganizerCompany string   `json:"organizer_company,omitempty"`
	MemberCount      int      `json:"member_count"`
	MeetingFrequency string   `json:"meeting_frequency,omitempty"`
	TypicalVenueID   string   `json:"typical_venue_id,omitempty"`
	FocusAreas       []string `json:"focus_areas"`
}

// MeetupGroupRepository defines the interface for meetup group storage
type MeetupGroupRepository interface {
	Put(ctx context.Context, group *MeetupGroup) error
	GetByID(ctx context.Context, id string) (*MeetupGroup, error)
	List(ctx context.Context) ([]*MeetupGroup, error)
}
