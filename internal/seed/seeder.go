package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"richmondtech/internal/domain"
)

type seeder struct {
	venues    domain.VenueRepository
	companies domain.CompanyRepository
	groups    domain.MeetupGroupRepository
	events    domain.EventRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewSeeder returns a Seeder that writes the fixed demo dataset through
// the given repositories. Re-running overwrites records by identifier.
func NewSeeder(
	venues domain.VenueRepository,
	companies domain.CompanyRepository,
	groups domain.MeetupGroupRepository,
	events domain.EventRepository,
	logger *slog.Logger,
) domain.Seeder {
	return &seeder{
		venues:    venues,
		companies: companies,
		groups:    groups,
		events:    events,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *seeder) Seed(ctx context.Context) (int, error) {
	data := Generate(s.now())
	written := 0

	for _, v := range data.Venues {
		if err := s.venues.Put(ctx, v); err != nil {
			return written, fmt.Errorf("seed venue %s: %w", v.ID, err)
		}
		written++
	}
	for _, c := range data.Companies {
		if err := s.companies.Put(ctx, c); err != nil {
			return written, fmt.Errorf("seed company %s: %w", c.ID, err)
		}
		written++
	}
	for _, g := range data.Groups {
		if err := s.groups.Put(ctx, g); err != nil {
			return written, fmt.Errorf("seed meetup group %s: %w", g.ID, err)
		}
		written++
	}
	for _, e := range data.Events {
		if err := s.events.Put(ctx, e); err != nil {
			return written, fmt.Errorf("seed event %s: %w", e.ID, err)
		}
		written++
	}

	s.logger.Info("seed completed",
		"venues", len(data.Venues),
		"companies", len(data.Companies),
		"meetup_groups", len(data.Groups),
		"events", len(data.Events),
	)
	return written, nil
}
