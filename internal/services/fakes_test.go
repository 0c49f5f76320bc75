package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"richmondtech/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeVenueRepo and friends are in-memory repository doubles. An err
// field, when set, is returned from every call.

type fakeVenueRepo struct {
	venues []*domain.Venue
	err    error
}

func (f *fakeVenueRepo) Put(_ context.Context, v *domain.Venue) error {
	f.venues = append(f.venues, v)
	return f.err
}

func (f *fakeVenueRepo) GetByID(_ context.Context, id string) (*domain.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, v := range f.venues {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeVenueRepo) List(context.Context) ([]*domain.Venue, error) {
	return f.venues, f.err
}

type fakeCompanyRepo struct {
	companies []*domain.Company
	err       error
}

func (f *fakeCompanyRepo) Put(_ context.Context, c *domain.Company) error {
	f.companies = append(f.companies, c)
	return f.err
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*domain.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCompanyRepo) List(context.Context) ([]*domain.Company, error) {
	return f.companies, f.err
}

type fakeGroupRepo struct {
	groups []*domain.MeetupGroup
	err    error
}

func (f *fakeGroupRepo) Put(_ context.Context, g *domain.MeetupGroup) error {
	f.groups = append(f.groups, g)
	return f.err
}

func (f *fakeGroupRepo) GetByID(_ context.Context, id string) (*domain.MeetupGroup, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, g := range f.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGroupRepo) List(context.Context) ([]*domain.MeetupGroup, error) {
	return f.groups, f.err
}

type fakeEventRepo struct {
	events []*domain.Event
	err    error
}

func (f *fakeEventRepo) Put(_ context.Context, e *domain.Event) error {
	f.events = append(f.events, e)
	return f.err
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) QueryByDateRange(_ context.Context, start, end time.Time) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, e := range f.events {
		if !e.StartTime.Before(start) && e.StartTime.Before(end) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeEventRepo) ScanAll(context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Event, len(f.events))
	copy(out, f.events)
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

// event builds a minimal test event.
func event(id, title string, start time.Time, tags ...string) *domain.Event {
	return &domain.Event{
		ID:        id,
		Title:     title,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Tags:      tags,
	}
}

func newTestDataService(
	venues *fakeVenueRepo,
	companies *fakeCompanyRepo,
	groups *fakeGroupRepo,
	events *fakeEventRepo,
) domain.DataService {
	return NewDataService(venues, companies, groups, events, 5*time.Second)
}
