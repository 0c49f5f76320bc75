package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"richmondtech/internal/domain"
)

const (
	upcomingWindowDays = 90
	venueEventsLimit   = 5
)

type dataService struct {
	venueRepo      domain.VenueRepository
	companyRepo    domain.CompanyRepository
	groupRepo      domain.MeetupGroupRepository
	eventRepo      domain.EventRepository
	classifier     *classifier
	contextTimeout time.Duration
}

// NewDataService builds the query layer over the record store. Each call
// re-reads the store; nothing is cached across calls.
func NewDataService(
	venueRepo domain.VenueRepository,
	companyRepo domain.CompanyRepository,
	groupRepo domain.MeetupGroupRepository,
	eventRepo domain.EventRepository,
	timeout time.Duration,
) domain.DataService {
	return &dataService{
		venueRepo:      venueRepo,
		companyRepo:    companyRepo,
		groupRepo:      groupRepo,
		eventRepo:      eventRepo,
		classifier:     newClassifier(),
		contextTimeout: timeout,
	}
}

func (s *dataService) NextUpcomingEvent(ctx context.Context, now time.Time) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.QueryByDateRange(ctx, now, now.AddDate(0, 0, upcomingWindowDays))
	if err != nil {
		return nil, fmt.Errorf("query upcoming events: %w", err)
	}
	if len(events) == 0 {
		// Empty result state, not an error.
		return nil, nil
	}
	return events[0], nil
}

func (s *dataService) SearchEventsByTopic(ctx context.Context, topic string, limit int) ([]*domain.Event, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" || limit <= 0 {
		return []*domain.Event{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list meetup groups: %w", err)
	}
	groupTags := make(map[string][]string, len(groups))
	for _, g := range groups {
		groupTags[g.ID] = g.FocusAreas
	}

	needle := strings.ToLower(topic)
	matched := make([]*domain.Event, 0)
	for _, e := range events {
		if eventMatchesTopic(e, groupTags[e.MeetupID], needle) {
			matched = append(matched, e)
		}
	}
	// ScanAll returns ascending start time; ties keep scan order.
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func eventMatchesTopic(e *domain.Event, groupTags []string, needle string) bool {
	var b strings.Builder
	b.WriteString(e.Title)
	b.WriteByte(' ')
	b.WriteString(e.Description)
	b.WriteByte(' ')
	b.WriteString(e.MeetupName)
	for _, t := range e.Tags {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	for _, t := range groupTags {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	return strings.Contains(strings.ToLower(b.String()), needle)
}

// VenueInfo resolves a venue by exact ID, then exact case-insensitive
// name, then case-insensitive substring (first match in ascending name
// order). It also returns the venue's next few upcoming events.
func (s *dataService) VenueInfo(ctx context.Context, nameOrID string) (*domain.Venue, []*domain.Event, error) {
	nameOrID = strings.TrimSpace(nameOrID)
	if nameOrID == "" {
		return nil, nil, fmt.Errorf("%w: venue name is required", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venue, err := s.venueRepo.GetByID(ctx, nameOrID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, fmt.Errorf("get venue: %w", err)
	}
	if venue == nil {
		venue, err = s.venueByName(ctx, nameOrID)
		if err != nil {
			return nil, nil, err
		}
	}

	now := time.Now()
	upcoming, err := s.eventRepo.QueryByDateRange(ctx, now, now.AddDate(0, 0, upcomingWindowDays))
	if err != nil {
		return nil, nil, fmt.Errorf("query venue events: %w", err)
	}
	atVenue := make([]*domain.Event, 0, venueEventsLimit)
	for _, e := range upcoming {
		if e.VenueID == venue.ID {
			atVenue = append(atVenue, e)
			if len(atVenue) == venueEventsLimit {
				break
			}
		}
	}
	return venue, atVenue, nil
}

func (s *dataService) venueByName(ctx context.Context, name string) (*domain.Venue, error) {
	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	sort.Slice(venues, func(i, j int) bool { return venues[i].Name < venues[j].Name })

	needle := strings.ToLower(name)
	var partial *domain.Venue
	for _, v := range venues {
		lower := strings.ToLower(v.Name)
		if lower == needle {
			return v, nil
		}
		if partial == nil && strings.Contains(lower, needle) {
			partial = v
		}
	}
	if partial != nil {
		return partial, nil
	}
	return nil, domain.ErrNotFound
}

func (s *dataService) CompanySummaries(ctx context.Context) ([]*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	sort.SliceStable(companies, func(i, j int) bool {
		if companies[i].EmployeeCount != companies[j].EmployeeCount {
			return companies[i].EmployeeCount > companies[j].EmployeeCount
		}
		return companies[i].Name < companies[j].Name
	})
	return companies, nil
}

func (s *dataService) MeetupGroups(ctx context.Context, category string) ([]*domain.MeetupGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list meetup groups: %w", err)
	}
	if category = strings.TrimSpace(category); category != "" {
		filtered := groups[:0]
		for _, g := range groups {
			if strings.EqualFold(g.Category, category) {
				filtered = append(filtered, g)
			}
		}
		groups = filtered
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].MemberCount > groups[j].MemberCount
	})
	return groups, nil
}

func (s *dataService) EventsBetween(ctx context.Context, start, end time.Time) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.QueryByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return events, nil
}

func (s *dataService) EventsBySpeaker(ctx context.Context, name string) ([]*domain.Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []*domain.Event{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan events: %w", err)
	}
	needle := strings.ToLower(name)
	matched := make([]*domain.Event, 0)
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Speaker), needle) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (s *dataService) CommunitySummaryReport(ctx context.Context, now time.Time) (*domain.CommunitySummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	companies, err := s.CompanySummaries(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.MeetupGroups(ctx, "")
	if err != nil {
		return nil, err
	}
	upcoming, err := s.eventRepo.QueryByDateRange(ctx, now, now.AddDate(0, 0, 30))
	if err != nil {
		return nil, fmt.Errorf("query upcoming events: %w", err)
	}

	totalMembers := 0
	for _, g := range groups {
		totalMembers += g.MemberCount
	}
	totalEmployees := 0
	for _, c := range companies {
		totalEmployees += c.EmployeeCount
	}

	summary := &domain.CommunitySummary{
		TotalVenues:         len(venues),
		TotalCompanies:      len(companies),
		TotalMeetupGroups:   len(groups),
		TotalUpcomingEvents: len(upcoming),
		TotalMembers:        totalMembers,
		TotalTechEmployees:  totalEmployees,
		PopularTechnologies: popularTags(upcoming, 10),
		LargestMeetups:      head(groups, 3),
		MajorEmployers:      head(companies, 3),
		UpcomingHighlights:  head(upcoming, 5),
	}
	return summary, nil
}

func popularTags(events []*domain.Event, limit int) []string {
	counts := make(map[string]int)
	for _, e := range events {
		for _, t := range e.Tags {
			counts[t]++
		}
	}
	tags := make([]string, 0, len(counts))
	for t := range counts {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	return head(tags, limit)
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
