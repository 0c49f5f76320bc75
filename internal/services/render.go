package services

import (
	"fmt"
	"strings"
	"time"

	"richmondtech/internal/domain"
)

const eventTimeLayout = "Monday, January 2 at 3:04 PM"

func renderEvent(e *domain.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The next event is %q by %s on %s", e.Title, e.MeetupName, e.StartTime.Format(eventTimeLayout))
	if e.VenueName != "" {
		fmt.Fprintf(&b, " at %s", e.VenueName)
	}
	b.WriteByte('.')
	if e.Speaker != "" {
		fmt.Fprintf(&b, " %s is speaking.", e.Speaker)
	}
	if e.Cost != "" {
		fmt.Fprintf(&b, " Cost: %s.", e.Cost)
	}
	return b.String()
}

func renderEventLine(e *domain.Event) string {
	line := fmt.Sprintf("- %s (%s, %s)", e.Title, e.MeetupName, e.StartTime.Format(eventTimeLayout))
	if e.VenueName != "" {
		line += " at " + e.VenueName
	}
	return line
}

func renderTopicEvents(topic string, events []*domain.Event) string {
	if len(events) == 0 {
		return fmt.Sprintf("I couldn't find any upcoming events about %s.", topic)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d event(s) about %s:\n", len(events), topic)
	for _, e := range events {
		b.WriteString(renderEventLine(e))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderRangeEvents(start, end time.Time, events []*domain.Event) string {
	window := fmt.Sprintf("between %s and %s", start.Format("January 2"), end.Format("January 2"))
	if len(events) == 0 {
		return "No events scheduled " + window + "."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d event(s) %s:\n", len(events), window)
	for _, e := range events {
		b.WriteString(renderEventLine(e))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderSpeakerEvents(name string, events []*domain.Event) string {
	if len(events) == 0 {
		return fmt.Sprintf("No events found with %s as a speaker.", name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s is speaking at %d event(s):\n", name, len(events))
	for _, e := range events {
		b.WriteString(renderEventLine(e))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderVenue(v *domain.Venue, upcoming []*domain.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is a %s at %s (capacity %d).", v.Name, v.Type, v.Address, v.Capacity)
	if v.Description != "" {
		b.WriteByte(' ')
		b.WriteString(v.Description)
	}
	if len(v.Amenities) > 0 {
		fmt.Fprintf(&b, " Amenities: %s.", strings.Join(v.Amenities, ", "))
	}
	if len(upcoming) > 0 {
		b.WriteString("\nUpcoming events here:\n")
		for _, e := range upcoming {
			b.WriteString(renderEventLine(e))
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCompanies(companies []*domain.Company) string {
	if len(companies) == 0 {
		return "No tech companies on file."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d tech companies in the Richmond area:\n", len(companies))
	for _, c := range companies {
		fmt.Fprintf(&b, "- %s (%s, ~%d employees)", c.Name, c.Industry, c.EmployeeCount)
		if len(c.TechStack) > 0 {
			fmt.Fprintf(&b, " using %s", strings.Join(c.TechStack, ", "))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderGroups(groups []*domain.MeetupGroup) string {
	if len(groups) == 0 {
		return "No meetup groups on file."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d meetup group(s):\n", len(groups))
	for _, g := range groups {
		fmt.Fprintf(&b, "- %s (%s, %d members", g.Name, g.Category, g.MemberCount)
		if g.MeetingFrequency != "" {
			fmt.Fprintf(&b, ", meets %s", strings.ToLower(g.MeetingFrequency))
		}
		b.WriteString(")\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderSummary(s *domain.CommunitySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"Richmond's tech community: %d meetup groups with %d members, %d tech employers with about %d employees, %d venues, and %d events in the next month.",
		s.TotalMeetupGroups, s.TotalMembers, s.TotalCompanies, s.TotalTechEmployees, s.TotalVenues, s.TotalUpcomingEvents)
	if len(s.PopularTechnologies) > 0 {
		fmt.Fprintf(&b, " Hot topics: %s.", strings.Join(s.PopularTechnologies, ", "))
	}
	if len(s.LargestMeetups) > 0 {
		names := make([]string, 0, len(s.LargestMeetups))
		for _, g := range s.LargestMeetups {
			names = append(names, g.Name)
		}
		fmt.Fprintf(&b, " Largest groups: %s.", strings.Join(names, ", "))
	}
	return b.String()
}
