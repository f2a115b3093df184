package store

import (
	"time"

	"github.com/eventmatch-ai/event-advisor/internal/model"
)

// SampleEvents is the development seed set, inserted when the table is empty.
func SampleEvents() []model.Event {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return []model.Event{
		{
			ID:          "687bbf5995aa2580f6dec88e",
			Name:        "Latitude 59",
			Description: "Startup InnovaTech is an AI company building natural language processing solutions for the financial sector, focused on automated market analysis and fraud detection.",
			Location:    "Tallinn",
			StartDate:   date(2025, time.May, 21),
			EndDate:     date(2025, time.May, 23),
			Website:     "https://latitude59.ee/",
			Longitude:   24.7453688,
			Latitude:    59.4372155,
		},
		{
			ID:          "a1b2c3d4e5f6g7h8i9j0k1l2",
			Name:        "Slush",
			Description: "CryptoLedger Solutions builds blockchain solutions for supply chain management, focused on traceability and transparency of agricultural products from farm to consumer.",
			Location:    "Helsinki",
			StartDate:   date(2025, time.November, 30),
			EndDate:     date(2025, time.December, 1),
			Website:     "https://www.slush.org/",
			Longitude:   24.9384,
			Latitude:    60.1699,
		},
		{
			ID:          "m3n4o5p6q7r8s9t0u1v2w3x4",
			Name:        "Web Summit",
			Description: "CloudConnect Global is a SaaS platform that streamlines remote collaboration for distributed teams, integrating communication, project management and document sharing tools.",
			Location:    "Lisbon",
			StartDate:   date(2025, time.November, 11),
			EndDate:     date(2025, time.November, 14),
			Website:     "https://websummit.com/",
			Longitude:   -9.1393,
			Latitude:    38.7223,
		},
		{
			ID:          "y5z6a7b8c9d0e1f2g3h4i5j6",
			Name:        "Mobile World Congress",
			Description: "NextGen IoT develops hardware and software for next-generation 5G networks and IoT solutions, focused on smart cities and urban energy optimization.",
			Location:    "Barcelona",
			StartDate:   date(2026, time.February, 24),
			EndDate:     date(2026, time.February, 27),
			Website:     "https://www.mwcbarcelona.com/",
			Longitude:   2.154007,
			Latitude:    41.390205,
		},
		{
			ID:          "z7x8c9v0b1n2m3l4k5j6h7g8",
			Name:        "TechCrunch Disrupt",
			Description: "BioMed Innovations is a biotech startup using AI to accelerate drug discovery and personalize medical treatments, with a focus on rare diseases.",
			Location:    "San Francisco",
			StartDate:   date(2025, time.September, 15),
			EndDate:     date(2025, time.September, 17),
			Website:     "https://techcrunch.com/events/disrupt/",
			Longitude:   -122.4194,
			Latitude:    37.7749,
		},
	}
}
