package seed

import (
	"fmt"
	"time"

	"richmondtech/internal/domain"
)

// Dataset is the complete fixed demo dataset.
type Dataset struct {
	Venues    []*domain.Venue
	Groups    []*domain.MeetupGroup
	Events    []*domain.Event
	Companies []*domain.Company
}

// Count returns the total number of records in the dataset.
func (d *Dataset) Count() int {
	return len(d.Venues) + len(d.Companies) + len(d.Groups) + len(d.Events)
}

// Generate builds the fixed Richmond tech community dataset. Venue,
// company, and group records are constant; event start times are the
// twelve Thursdays at 18:30 local time following now, cycling through
// the five session templates.
func Generate(now time.Time) *Dataset {
	venues := venueFixtures()
	groups := groupFixtures()
	companies := companyFixtures()
	events := eventFixtures(now, venues, groups)
	return &Dataset{
		Venues:    venues,
		Companies: companies,
		Groups:    groups,
		Events:    events,
	}
}

func venueFixtures() []*domain.Venue {
	return []*domain.Venue{
		{
			ID:        "venue_startup_va",
			Name:      "Startup Virginia",
			Address:   "1717 E Cary St, Richmond, VA 23223",
			Type:      "coworking_space",
			Capacity:  150,
			Amenities: []string{"wifi", "parking", "kitchen", "presentation_screen"},
			Contact: domain.Contact{
				Phone:   "(804) 644-2476",
				Email:   "info@startupvirginia.org",
				Website: "https://startupvirginia.org",
			},
			Description: "Richmond's premier startup incubator and coworking space",
		},
		{
			ID:        "venue_common_house",
			Name:      "Common House",
			Address:   "305 W Broad St, Richmond, VA 23220",
			Type:      "event_space",
			Capacity:  200,
			Amenities: []string{"wifi", "valet_parking", "catering", "av_equipment"},
			Contact: domain.Contact{
				Phone:   "(804) 612-1900",
				Email:   "events@commonhouserichmond.com",
				Website: "https://commonhouserichmond.com",
			},
			Description: "Upscale event venue in downtown Richmond",
		},
		{
			ID:        "venue_vcu_engineering",
			Name:      "VCU School of Engineering",
			Address:   "401 W Main St, Richmond, VA 23284",
			Type:      "university",
			Capacity:  300,
			Amenities: []string{"wifi", "parking", "presentation_equipment", "recording"},
			Contact: domain.Contact{
				Phone:   "(804) 828-3565",
				Email:   "engineering@vcu.edu",
				Website: "https://egr.vcu.edu",
			},
			Description: "VCU's engineering school with modern tech facilities",
		},
		{
			ID:        "venue_capital_one_cafe",
			Name:      "Capital One Café",
			Address:   "11800 W Broad St, Richmond, VA 23233",
			Type:      "cafe",
			Capacity:  50,
			Amenities: []string{"wifi", "coffee", "casual_seating"},
			Contact: domain.Contact{
				Phone:   "(804) 360-3780",
				Website: "https://www.capitalone.com/local/richmond",
			},
			Description: "Modern café space for casual tech meetups",
		},
		{
			ID:        "venue_libbie_mill",
			Name:      "Libbie Mill Library",
			Address:   "2100 Libbie Lake E St, Richmond, VA 23230",
			Type:      "library",
			Capacity:  80,
			Amenities: []string{"wifi", "parking", "quiet_spaces", "group_rooms"},
			Contact: domain.Contact{
				Phone:   "(804) 501-5136",
				Website: "https://henrico.lib.va.us",
			},
			Description: "Modern library with excellent tech facilities",
		},
	}
}

func companyFixtures() []*domain.Company {
	return []*domain.Company{
		{
			ID:            "company_carmax",
			Name:          "CarMax",
			Industry:      "automotive_tech",
			Size:          "large",
			EmployeeCount: 25000,
			Headquarters:  "12800 Tuckahoe Creek Pkwy, Richmond, VA 23238",
			TechStack:     []string{"Java", "Python", "React", "AWS", "Kubernetes"},
			Description:   "Fortune 500 used car retailer with major tech operations",
			Founded:       1993,
			Website:       "https://careers.carmax.com",
		},
		{
			ID:            "company_capital_one",
			Name:          "Capital One",
			Industry:      "fintech",
			Size:          "large",
			EmployeeCount: 50000,
			Headquarters:  "15000 Capital One Dr, Richmond, VA 23238",
			TechStack:     []string{"Java", "Python", "Go", "AWS", "Machine Learning"},
			Description:   "Major financial services company with significant tech presence",
			Founded:       1994,
			Website:       "https://www.capitalonecareers.com",
		},
		{
			ID:            "company_flying_pig_labs",
			Name:          "Flying Pig Labs",
			Industry:      "software_development",
			Size:          "small",
			EmployeeCount: 15,
			Headquarters:  "Richmond, VA",
			TechStack:     []string{"Ruby on Rails", "JavaScript", "React", "PostgreSQL"},
			Description:   "Boutique software development consultancy",
			Founded:       2010,
			Website:       "https://flyingpiglabs.com",
		},
		{
			ID:            "company_dominion_energy",
			Name:          "Dominion Energy",
			Industry:      "energy_tech",
			Size:          "large",
			EmployeeCount: 16000,
			Headquarters:  "120 Tredegar St, Richmond, VA 23219",
			TechStack:     []string{"C#", ".NET", "SQL Server", "Azure", "IoT"},
			Description:   "Utility company with growing technology division",
			Founded:       1983,
			Website:       "https://careers.dominionenergy.com",
		},
		{
			ID:            "company_willow_tree",
			Name:          "WillowTree",
			Industry:      "mobile_development",
			Size:          "medium",
			EmployeeCount: 300,
			Headquarters:  "107 S West St, Charlottesville, VA 22902",
			TechStack:     []string{"Swift", "Kotlin", "React Native", "Node.js", "AWS"},
			Description:   "Leading mobile app development company with Richmond presence",
			Founded:       2007,
			Website:       "https://willowtreeapps.com",
		},
	}
}

func groupFixtures() []*domain.MeetupGroup {
	return []*domain.MeetupGroup{
		{
			ID:               "meetup_rva_cloud_wranglers",
			Name:             "RVA Cloud Wranglers",
			Category:         "cloud_computing",
			Description:      "Richmond's premier cloud computing meetup focusing on AWS, Azure, and GCP",
			Organizer:        "Sarah Chen",
			OrganizerCompany: "Capital One",
			MemberCount:      450,
			MeetingFrequency: "monthly",
			TypicalVenueID:   "venue_startup_va",
			FocusAreas:       []string{"AWS", "Azure", "DevOps", "Serverless", "Containers"},
		},
		{
			ID:               "meetup_richmond_python",
			Name:             "Richmond Python User Group",
			Category:         "programming_language",
			Description:      "Python enthusiasts in the Richmond area sharing knowledge and projects",
			Organizer:        "Michael Rodriguez",
			OrganizerCompany: "CarMax",
			MemberCount:      320,
			MeetingFrequency: "monthly",
			TypicalVenueID:   "venue_vcu_engineering",
			FocusAreas:       []string{"Python", "Data Science", "Web Development", "Machine Learning"},
		},
		{
			ID:               "meetup_rva_js",
			Name:             "RVA.js",
			Category:         "programming_language",
			Description:      "JavaScript developers building the future of web applications",
			Organizer:        "Jessica Park",
			OrganizerCompany: "WillowTree",
			MemberCount:      280,
			MeetingFrequency: "monthly",
			TypicalVenueID:   "venue_common_house",
			FocusAreas:       []string{"JavaScript", "React", "Node.js", "TypeScript", "Full-stack"},
		},
		{
			ID:               "meetup_richmond_data_science",
			Name:             "Richmond Data Science Meetup",
			Category:         "data_science",
			Description:      "Data scientists, analysts, and ML engineers sharing insights and techniques",
			Organizer:        "Dr. Amanda Johnson",
			OrganizerCompany: "VCU",
			MemberCount:      190,
			MeetingFrequency: "monthly",
			TypicalVenueID:   "venue_vcu_engineering",
			FocusAreas:       []string{"Machine Learning", "Statistics", "Python", "R", "Data Visualization"},
		},
		{
			ID:               "meetup_rva_cybersecurity",
			Name:             "RVA Cybersecurity Guild",
			Category:         "cybersecurity",
			Description:      "Information security professionals protecting Richmond's digital infrastructure",
			Organizer:        "David Kim",
			OrganizerCompany: "Dominion Energy",
			MemberCount:      220,
			MeetingFrequency: "monthly",
			TypicalVenueID:   "venue_startup_va",
			FocusAreas:       []string{"Network Security", "Ethical Hacking", "Compliance", "Incident Response"},
		},
	}
}

type eventTemplate struct {
	meetupID         string
	title            string
	description      string
	speaker          string
	speakerBio       string
	speakerCompanyID string
	durationHours    int
	tags             []string
}

func eventTemplates() []eventTemplate {
	return []eventTemplate{
		{
			meetupID:         "meetup_rva_cloud_wranglers",
			title:            "Serverless Architecture Best Practices",
			description:      "Learn how to build scalable serverless applications on AWS Lambda",
			speaker:          "Alex Thompson",
			speakerBio:       "Senior Cloud Architect at Capital One",
			speakerCompanyID: "company_capital_one",
			durationHours:    2,
			tags:             []string{"AWS", "Lambda", "Serverless", "Architecture"},
		},
		{
			meetupID:         "meetup_richmond_python",
			title:            "Building Machine Learning Pipelines with Python",
			description:      "End-to-end ML pipeline development using scikit-learn and pandas",
			speaker:          "Dr. Maria Santos",
			speakerBio:       "Lead Data Scientist at CarMax",
			speakerCompanyID: "company_carmax",
			durationHours:    3,
			tags:             []string{"Python", "Machine Learning", "Data Science", "MLOps"},
		},
		{
			meetupID:         "meetup_rva_js",
			title:            "Modern React Patterns and Performance",
			description:      "Advanced React techniques for building high-performance web apps",
			speaker:          "Jordan Liu",
			speakerBio:       "Senior Frontend Engineer at WillowTree",
			speakerCompanyID: "company_willow_tree",
			durationHours:    2,
			tags:             []string{"React", "JavaScript", "Performance", "Frontend"},
		},
		{
			meetupID:      "meetup_richmond_data_science",
			title:         "Deep Learning for Computer Vision",
			description:   "Practical applications of CNNs and transfer learning",
			speaker:       "Dr. Rachel Green",
			speakerBio:    "Assistant Professor at VCU Engineering",
			durationHours: 3,
			tags:          []string{"Deep Learning", "Computer Vision", "TensorFlow", "AI"},
		},
		{
			meetupID:         "meetup_rva_cybersecurity",
			title:            "Zero Trust Security Architecture",
			description:      "Implementing zero trust principles in enterprise environments",
			speaker:          "Marcus Johnson",
			speakerBio:       "CISO at Dominion Energy",
			speakerCompanyID: "company_dominion_energy",
			durationHours:    2,
			tags:             []string{"Security", "Zero Trust", "Enterprise", "Architecture"},
		},
	}
}

// eventFixtures builds twelve events on the Thursdays following now,
// cycling through the templates so every group appears at least twice.
func eventFixtures(now time.Time, venues []*domain.Venue, groups []*domain.MeetupGroup) []*domain.Event {
	venueByID := make(map[string]*domain.Venue, len(venues))
	for _, v := range venues {
		venueByID[v.ID] = v
	}
	groupByID := make(map[string]*domain.MeetupGroup, len(groups))
	for _, g := range groups {
		groupByID[g.ID] = g
	}

	templates := eventTemplates()
	first := nextThursday(now)

	events := make([]*domain.Event, 0, 12)
	for week := 0; week < 12; week++ {
		tpl := templates[week%len(templates)]
		group := groupByID[tpl.meetupID]
		venue := venueByID[group.TypicalVenueID]

		start := first.AddDate(0, 0, 7*week)
		registered := group.MemberCount * 15 / 100
		if max := venue.Capacity - 20; registered > max {
			registered = max
		}

		events = append(events, &domain.Event{
			ID:               fmt.Sprintf("event_%02d", week+1),
			MeetupID:         group.ID,
			MeetupName:       group.Name,
			Title:            tpl.title,
			Description:      tpl.description,
			StartTime:        start,
			EndTime:          start.Add(time.Duration(tpl.durationHours) * time.Hour),
			VenueID:          venue.ID,
			VenueName:        venue.Name,
			Speaker:          tpl.speaker,
			SpeakerBio:       tpl.speakerBio,
			SpeakerCompanyID: tpl.speakerCompanyID,
			Capacity:         venue.Capacity,
			Registered:       registered,
			Tags:             tpl.tags,
			Cost:             "Free",
		})
	}
	return events
}

// nextThursday returns the first Thursday strictly after now, at 18:30
// in now's location.
func nextThursday(now time.Time) time.Time {
	days := (int(time.Thursday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	d := now.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 18, 30, 0, 0, now.Location())
}
