package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"richmondtech/internal/domain"
)

// ruleArgs carries whatever a matched rule extracted from the question.
type ruleArgs struct {
	Topic    string
	Venue    string
	Speaker  string
	Category string
	Start    time.Time
	End      time.Time
}

// rule pairs a predicate with the intent it resolves to. Rules are
// evaluated in slice order; the first match wins.
type rule struct {
	intent domain.Intent
	match  func(c *classifier, q string, now time.Time) (ruleArgs, bool)
}

type classifier struct {
	rules []rule
	dates *when.Parser
}

// Substring matching would turn "said" into an "ai" hit, so tech
// keywords match on word boundaries. "javascript" precedes "java".
var techKeywords = []string{
	"python", "javascript", "typescript", "java", "react", "aws",
	"cloud", "kubernetes", "docker", "devops", "serverless",
	"machine learning", "data science", "ai", "security",
	"cybersecurity", "golang",
}

var venueNames = []string{
	"startup virginia", "common house", "vcu engineering",
	"capital one cafe", "libbie mill",
}

// Two capitalized words of three+ letters; short sentence openers like
// "Is" stay out of the running.
var speakerNameRe = regexp.MustCompile(`\b([A-Z][a-z]{2,} [A-Z][a-z]{2,})\b`)

func newClassifier() *classifier {
	parser := when.New(nil)
	parser.Add(en.All...)
	parser.Add(common.All...)

	c := &classifier{dates: parser}
	c.rules = []rule{
		{domain.IntentDateRange, (*classifier).matchDateRange},
		{domain.IntentNextEvent, (*classifier).matchNextEvent},
		{domain.IntentTopicSearch, (*classifier).matchTopic},
		{domain.IntentVenueInfo, (*classifier).matchVenue},
		{domain.IntentSpeaker, (*classifier).matchSpeaker},
		{domain.IntentMeetupGroups, (*classifier).matchGroups},
		{domain.IntentCompanies, (*classifier).matchCompanies},
		{domain.IntentCommunitySummary, (*classifier).matchSummary},
	}
	return c
}

// classify runs the rule list in order against the lowercased question.
// The original (unfolded) question is kept for name extraction.
func (c *classifier) classify(question string, now time.Time) (domain.Intent, ruleArgs) {
	q := foldQuestion(question)
	for _, r := range c.rules {
		if args, ok := r.match(c, q, now); ok {
			if r.intent == domain.IntentSpeaker && args.Speaker == "" {
				if m := speakerNameRe.FindString(question); m != "" {
					args.Speaker = m
				}
			}
			return r.intent, args
		}
	}
	return domain.IntentUnclassified, ruleArgs{}
}

// foldQuestion lowercases and collapses punctuation so keyword checks
// can rely on space-delimited word boundaries.
func foldQuestion(q string) string {
	var b strings.Builder
	b.Grow(len(q) + 2)
	b.WriteByte(' ')
	for _, r := range strings.ToLower(q) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(' ')
	return b.String()
}

func hasWord(q, word string) bool {
	return strings.Contains(q, " "+word+" ")
}

func hasAnyWord(q string, words ...string) bool {
	for _, w := range words {
		if hasWord(q, w) {
			return true
		}
	}
	return false
}

var datePhrases = []struct {
	phrase string
	span   func(day time.Time) (time.Time, time.Time)
}{
	{"today", func(d time.Time) (time.Time, time.Time) { return d, d.AddDate(0, 0, 1) }},
	{"tonight", func(d time.Time) (time.Time, time.Time) { return d, d.AddDate(0, 0, 1) }},
	{"tomorrow", func(d time.Time) (time.Time, time.Time) { return d.AddDate(0, 0, 1), d.AddDate(0, 0, 2) }},
	{"this week", func(d time.Time) (time.Time, time.Time) { return d, d.AddDate(0, 0, 7) }},
	{"next week", func(d time.Time) (time.Time, time.Time) { return d.AddDate(0, 0, 7), d.AddDate(0, 0, 14) }},
	{"this weekend", weekendSpan},
	{"this month", func(d time.Time) (time.Time, time.Time) { return d, d.AddDate(0, 1, 0) }},
}

func weekendSpan(day time.Time) (time.Time, time.Time) {
	daysUntilSat := (int(time.Saturday) - int(day.Weekday()) + 7) % 7
	sat := day.AddDate(0, 0, daysUntilSat)
	return sat, sat.AddDate(0, 0, 2)
}

func (c *classifier) matchDateRange(q string, now time.Time) (ruleArgs, bool) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, p := range datePhrases {
		if hasWord(q, p.phrase) {
			start, end := p.span(day)
			return ruleArgs{Start: start, End: end}, true
		}
	}
	// Explicit dates ("on september 4th", "on friday") via the parser.
	if hasWord(q, "on") {
		if res, err := c.dates.Parse(q, now); err == nil && res != nil {
			d := time.Date(res.Time.Year(), res.Time.Month(), res.Time.Day(), 0, 0, 0, 0, now.Location())
			return ruleArgs{Start: d, End: d.AddDate(0, 0, 1)}, true
		}
	}
	return ruleArgs{}, false
}

func (c *classifier) matchNextEvent(q string, _ time.Time) (ruleArgs, bool) {
	if hasAnyWord(q, "next", "upcoming", "when") && hasAnyWord(q, "meetup", "event", "meetups", "events") {
		return ruleArgs{}, true
	}
	return ruleArgs{}, false
}

func (c *classifier) matchTopic(q string, _ time.Time) (ruleArgs, bool) {
	for _, kw := range techKeywords {
		padded := " " + kw + " "
		if strings.Contains(q, padded) {
			return ruleArgs{Topic: kw}, true
		}
	}
	return ruleArgs{}, false
}

func (c *classifier) matchVenue(q string, _ time.Time) (ruleArgs, bool) {
	for _, name := range venueNames {
		if strings.Contains(q, " "+name+" ") {
			return ruleArgs{Venue: name}, true
		}
	}
	// Generic venue word with a trailing name ("the venue Common House").
	if hasAnyWord(q, "venue", "located", "address") {
		if _, after, ok := strings.Cut(q, " at "); ok {
			if name := strings.TrimSpace(after); name != "" {
				return ruleArgs{Venue: name}, true
			}
		}
	}
	return ruleArgs{}, false
}

func (c *classifier) matchSpeaker(q string, _ time.Time) (ruleArgs, bool) {
	if !hasAnyWord(q, "speaker", "speaking", "presenting", "presenter") {
		return ruleArgs{}, false
	}
	// Name extraction happens on the unfolded question in classify.
	return ruleArgs{}, true
}

func (c *classifier) matchGroups(q string, _ time.Time) (ruleArgs, bool) {
	if hasAnyWord(q, "group", "groups") {
		args := ruleArgs{}
		for _, cat := range []string{"cloud", "programming", "web", "data", "security"} {
			if hasWord(q, cat) {
				args.Category = cat
				break
			}
		}
		return args, true
	}
	return ruleArgs{}, false
}

func (c *classifier) matchCompanies(q string, _ time.Time) (ruleArgs, bool) {
	if hasAnyWord(q, "company", "companies", "employer", "employers", "work", "jobs", "hiring") {
		return ruleArgs{}, true
	}
	return ruleArgs{}, false
}

func (c *classifier) matchSummary(q string, _ time.Time) (ruleArgs, bool) {
	if hasAnyWord(q, "overview", "summary", "community", "scene", "stats") {
		return ruleArgs{}, true
	}
	return ruleArgs{}, false
}

// ClassifyAndAnswer resolves a question to one of the canned query
// shapes and executes it. An unmatched question yields an Unclassified
// bundle, not an error.
func (s *dataService) ClassifyAndAnswer(ctx context.Context, question string, now time.Time) (*domain.AnswerBundle, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is empty", domain.ErrInvalidInput)
	}

	intent, args := s.classifier.classify(question, now)
	switch intent {
	case domain.IntentNextEvent:
		event, err := s.NextUpcomingEvent(ctx, now)
		if err != nil {
			return nil, err
		}
		if event == nil {
			return bundle(intent, "There are no upcoming events on the calendar right now.", []string{"get_next_upcoming_event"}, nil), nil
		}
		return bundle(intent, renderEvent(event), []string{"get_next_upcoming_event"}, event), nil

	case domain.IntentTopicSearch:
		events, err := s.SearchEventsByTopic(ctx, args.Topic, 5)
		if err != nil {
			return nil, err
		}
		return bundle(intent, renderTopicEvents(args.Topic, events), []string{"search_events_by_topic"}, events), nil

	case domain.IntentVenueInfo:
		venue, upcoming, err := s.VenueInfo(ctx, args.Venue)
		if err != nil {
			return nil, err
		}
		return bundle(intent, renderVenue(venue, upcoming), []string{"get_venue_info"}, venue), nil

	case domain.IntentCompanies:
		companies, err := s.CompanySummaries(ctx)
		if err != nil {
			return nil, err
		}
		return bundle(intent, renderCompanies(companies), []string{"get_company_summaries"}, companies), nil

	case domain.IntentMeetupGroups:
		groups, err := s.MeetupGroups(ctx, args.Category)
		if err != nil {
			return nil, err
		}
		return bundle(intent, renderGroups(groups), []string{"get_meetup_groups"}, groups), nil

	case domain.IntentSpeaker:
		if args.Speaker == "" {
			return bundle(domain.IntentUnclassified, "", nil, nil), nil
		}
		events, err := s.EventsBySpeaker(ctx, args.Speaker)
		if err != nil {
			return nil, err
		}
		return bundle(intent, renderSpeakerEvents(args.Speaker, events), []string{"get_events_by_speaker"}, events), nil

	case domain.IntentDateRange:
		events, err := s.EventsBetween(ctx, args.Start, args.End)
		if err != nil {
			return nil, err
		}
		return bundle(intent, renderRangeEvents(args.Start, args.End, events), []string{"get_events_between"}, events), nil

	case domain.IntentCommunitySummary:
		summary, err := s.CommunitySummaryReport(ctx, now)
		if err != nil {
			return nil, err
		}
		return bundle(intent, renderSummary(summary), []string{"get_community_summary"}, summary), nil
	}

	return bundle(domain.IntentUnclassified, "", nil, nil), nil
}

func bundle(intent domain.Intent, answer string, tools []string, data any) *domain.AnswerBundle {
	if tools == nil {
		tools = []string{}
	}
	return &domain.AnswerBundle{Answer: answer, Intent: intent, ToolsUsed: tools, Data: data}
}
