package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"richmondtech/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type memVenueRepo struct {
	items  map[string]*domain.Venue
	putErr error
}

func (m *memVenueRepo) Put(_ context.Context, v *domain.Venue) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.items[v.ID] = v
	return nil
}
func (m *memVenueRepo) GetByID(context.Context, string) (*domain.Venue, error) {
	return nil, domain.ErrNotFound
}
func (m *memVenueRepo) List(context.Context) ([]*domain.Venue, error) { return nil, nil }

type memCompanyRepo struct {
	items  map[string]*domain.Company
	putErr error
}

func (m *memCompanyRepo) Put(_ context.Context, c *domain.Company) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.items[c.ID] = c
	return nil
}
func (m *memCompanyRepo) GetByID(context.Context, string) (*domain.Company, error) {
	return nil, domain.ErrNotFound
}
func (m *memCompanyRepo) List(context.Context) ([]*domain.Company, error) { return nil, nil }

type memGroupRepo struct {
	items map[string]*domain.MeetupGroup
}

func (m *memGroupRepo) Put(_ context.Context, g *domain.MeetupGroup) error {
	m.items[g.ID] = g
	return nil
}
func (m *memGroupRepo) GetByID(context.Context, string) (*domain.MeetupGroup, error) {
	return nil, domain.ErrNotFound
}
func (m *memGroupRepo) List(context.Context) ([]*domain.MeetupGroup, error) { return nil, nil }

type memEventRepo struct {
	items map[string]*domain.Event
}

func (m *memEventRepo) Put(_ context.Context, e *domain.Event) error {
	m.items[e.ID] = e
	return nil
}
func (m *memEventRepo) GetByID(context.Context, string) (*domain.Event, error) {
	return nil, domain.ErrNotFound
}
func (m *memEventRepo) QueryByDateRange(context.Context, time.Time, time.Time) ([]*domain.Event, error) {
	return nil, nil
}
func (m *memEventRepo) ScanAll(context.Context) ([]*domain.Event, error) { return nil, nil }

func newMemRepos() (*memVenueRepo, *memCompanyRepo, *memGroupRepo, *memEventRepo) {
	return &memVenueRepo{items: map[string]*domain.Venue{}},
		&memCompanyRepo{items: map[string]*domain.Company{}},
		&memGroupRepo{items: map[string]*domain.MeetupGroup{}},
		&memEventRepo{items: map[string]*domain.Event{}}
}

func TestSeeder_WritesAllRecords(t *testing.T) {
	venues, companies, groups, events := newMemRepos()
	s := NewSeeder(venues, companies, groups, events, testLogger)

	written, err := s.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 27, written)
	assert.Len(t, venues.items, 5)
	assert.Len(t, companies.items, 5)
	assert.Len(t, groups.items, 5)
	assert.Len(t, events.items, 12)
}

func TestSeeder_Idempotent(t *testing.T) {
	venues, companies, groups, events := newMemRepos()
	s := NewSeeder(venues, companies, groups, events, testLogger)

	_, err := s.Seed(context.Background())
	require.NoError(t, err)
	written, err := s.Seed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 27, written)
	total := len(venues.items) + len(companies.items) + len(groups.items) + len(events.items)
	assert.Equal(t, 27, total, "reseeding must overwrite by ID, never duplicate")
}

func TestSeeder_AbortsOnFirstFailure(t *testing.T) {
	venues, companies, groups, events := newMemRepos()
	companies.putErr = errors.New("table missing")
	s := NewSeeder(venues, companies, groups, events, testLogger)

	written, err := s.Seed(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed company")
	assert.Equal(t, 5, written, "venues alone were written before the failure")
	assert.Empty(t, groups.items)
	assert.Empty(t, events.items)
}
