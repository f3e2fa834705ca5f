package state

import (
	"log/slog"

	"github.com/google/uuid"
)

const tripsRecordName = "trips"

type TripStatus string

const (
	TripPlanning  TripStatus = "planning"
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
)

type Trip struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Destination string     `json:"destination"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Status      TripStatus `json:"status"`
	Progress    int        `json:"progress"`
	TotalCost   float64    `json:"totalCost"`
	Savings     float64    `json:"savings"`
}

// TripPatch is a partial update; nil fields keep their current value.
type TripPatch struct {
	Name        *string     `json:"name,omitempty"`
	Destination *string     `json:"destination,omitempty"`
	StartDate   *string     `json:"startDate,omitempty"`
	EndDate     *string     `json:"endDate,omitempty"`
	Status      *TripStatus `json:"status,omitempty"`
	Progress    *int        `json:"progress,omitempty"`
	TotalCost   *float64    `json:"totalCost,omitempty"`
	Savings     *float64    `json:"savings,omitempty"`
}

type tripsRecord struct {
	Trips    []Trip `json:"trips"`
	ActiveID string `json:"activeId,omitempty"`
}

// Trips is the user's trip list plus one active-trip pointer. An empty store
// seeds demo trips so the dashboard has content on first run.
type Trips struct {
	files *Files
	log   *slog.Logger
	data  tripsRecord
}

func LoadTrips(files *Files, log *slog.Logger) *Trips {
	t := &Trips{files: files, log: log}
	loaded, err := files.Load(tripsRecordName, &t.data)
	if err != nil {
		log.Warn("loading trips failed, starting from seed data", slog.Any("err", err))
	}
	if !loaded || len(t.data.Trips) == 0 {
		// Persist the seed right away so the IDs shown on first run stay
		// addressable in later invocations.
		t.data.Trips = seedTrips()
		t.save()
	}
	return t
}

func (t *Trips) All() []Trip {
	return append([]Trip(nil), t.data.Trips...)
}

func (t *Trips) Get(id string) (Trip, bool) {
	for _, trip := range t.data.Trips {
		if trip.ID == id {
			return trip, true
		}
	}
	return Trip{}, false
}

func (t *Trips) Add(trip Trip) Trip {
	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	if trip.Status == "" {
		trip.Status = TripPlanning
	}
	t.data.Trips = append(t.data.Trips, trip)
	t.save()
	return trip
}

func (t *Trips) Update(id string, patch TripPatch) (Trip, bool) {
	for i := range t.data.Trips {
		if t.data.Trips[i].ID != id {
			continue
		}
		trip := &t.data.Trips[i]
		if patch.Name != nil {
			trip.Name = *patch.Name
		}
		if patch.Destination != nil {
			trip.Destination = *patch.Destination
		}
		if patch.StartDate != nil {
			trip.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			trip.EndDate = *patch.EndDate
		}
		if patch.Status != nil {
			trip.Status = *patch.Status
		}
		if patch.Progress != nil {
			trip.Progress = *patch.Progress
		}
		if patch.TotalCost != nil {
			trip.TotalCost = *patch.TotalCost
		}
		if patch.Savings != nil {
			trip.Savings = *patch.Savings
		}
		t.save()
		return *trip, true
	}
	return Trip{}, false
}

// Remove deletes a trip and clears the active pointer when it referenced the
// removed trip.
func (t *Trips) Remove(id string) bool {
	for i := range t.data.Trips {
		if t.data.Trips[i].ID == id {
			t.data.Trips = append(t.data.Trips[:i], t.data.Trips[i+1:]...)
			if t.data.ActiveID == id {
				t.data.ActiveID = ""
			}
			t.save()
			return true
		}
	}
	return false
}

func (t *Trips) Activate(id string) bool {
	if _, ok := t.Get(id); !ok {
		return false
	}
	t.data.ActiveID = id
	t.save()
	return true
}

func (t *Trips) Active() (Trip, bool) {
	if t.data.ActiveID == "" {
		return Trip{}, false
	}
	return t.Get(t.data.ActiveID)
}

func (t *Trips) save() {
	if err := t.files.Save(tripsRecordName, t.data); err != nil {
		t.log.Warn("persisting trips failed, keeping in-memory state", slog.Any("err", err))
	}
}

func seedTrips() []Trip {
	return []Trip{
		{
			ID:          uuid.NewString(),
			Name:        "Cherry Blossom Getaway",
			Destination: "Barcelona → Tokyo",
			StartDate:   "2026-02-15",
			EndDate:     "2026-02-28",
			Status:      TripActive,
			Progress:    85,
			TotalCost:   1450,
			Savings:     320,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Spring in Manhattan",
			Destination: "Madrid → New York",
			StartDate:   "2026-03-10",
			EndDate:     "2026-03-20",
			Status:      TripPlanning,
			Progress:    45,
			TotalCost:   890,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Island Escape",
			Destination: "Lisbon → Bali",
			StartDate:   "2026-04-05",
			EndDate:     "2026-04-20",
			Status:      TripPlanning,
			Progress:    20,
			TotalCost:   2100,
			Savings:     450,
		},
	}
}
