package domain

import "context"

// Contact holds venue contact details.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// Venue represents a place that hosts tech events
type Venue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Contact     Contact  `json:"contact"`
	Description string   `json:"description,omitempty"`
}

// VenueRepository defines the interface for venue storage
type VenueRepository interface {
	Put(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context) ([]*Venue, error)
}
