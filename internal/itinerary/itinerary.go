// Package itinerary holds the static itinerary, document, and refund views
// of the dashboard. The records are typed demo data; nothing generates them
// from live bookings.
package itinerary

type EventType string

const (
	EventFlight    EventType = "flight"
	EventHotel     EventType = "hotel"
	EventTransport EventType = "transport"
	EventActivity  EventType = "activity"
	EventDining    EventType = "dining"
)

type EventStatus string

const (
	EventConfirmed  EventStatus = "confirmed"
	EventPending    EventStatus = "pending"
	EventSuggestion EventStatus = "suggestion"
)

type Event struct {
	ID       string      `json:"id"`
	Time     string      `json:"time"`
	EndTime  string      `json:"endTime,omitempty"`
	Type     EventType   `json:"type"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Status   EventStatus `json:"status"`
	Location string      `json:"location,omitempty"`
}

type Day struct {
	Date   string  `json:"date"`
	Title  string  `json:"title"`
	Events []Event `json:"events"`
}

type Itinerary struct {
	Trip string `json:"trip"`
	Days []Day  `json:"days"`
}

// Demo returns the sample Tokyo itinerary shown before any trip has real
// bookings attached.
func Demo() Itinerary {
	return Itinerary{
		Trip: "Barcelona → Tokyo",
		Days: []Day{
			{
				Date:  "2026-02-15",
				Title: "Day 1 - Arrival",
				Events: []Event{
					{ID: "ev-1", Time: "08:30", Type: EventFlight, Title: "Flight Madrid → Tokyo", Subtitle: "Iberia IB7945 · Terminal 4", Status: EventConfirmed},
					{ID: "ev-2", Time: "21:30", Type: EventTransport, Title: "Narita Express downtown", Subtitle: "Platform 1 → Shinjuku Station", Status: EventConfirmed},
					{ID: "ev-3", Time: "23:00", Type: EventHotel, Title: "Check-in Park Hyatt Tokyo", Subtitle: "Room 4521 · City view", Status: EventConfirmed},
				},
			},
			{
				Date:  "2026-02-16",
				Title: "Day 2 - Exploring",
				Events: []Event{
					{ID: "ev-4", Time: "09:00", Type: EventActivity, Title: "Breakfast at Tsukiji Market", Subtitle: "Reservation for 2", Status: EventConfirmed},
					{ID: "ev-5", Time: "11:00", Type: EventActivity, Title: "Senso-ji Temple", Subtitle: "Asakusa · Free entry", Status: EventPending},
					{ID: "ev-6", Time: "14:00", Type: EventDining, Title: "Lunch at Ramen Street", Subtitle: "Tokyo Station", Status: EventSuggestion},
					{ID: "ev-7", Time: "16:00", Type: EventActivity, Title: "Shibuya Crossing & Harajuku", Subtitle: "Shopping and culture", Status: EventSuggestion},
					{ID: "ev-8", Time: "20:00", Type: EventDining, Title: "Kaiseki dinner", Subtitle: "Narisawa · 2 Michelin stars", Status: EventConfirmed},
				},
			},
			{
				Date:  "2026-02-17",
				Title: "Day 3 - Mount Fuji",
				Events: []Event{
					{ID: "ev-9", Time: "07:00", Type: EventTransport, Title: "Shinkansen to Hakone", Subtitle: "Bullet train · 1h 30min", Status: EventConfirmed},
					{ID: "ev-10", Time: "09:00", Type: EventActivity, Title: "Mount Fuji excursion", Subtitle: "Guided tour", Status: EventConfirmed},
				},
			},
		},
	}
}
