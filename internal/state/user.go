package state

import "log/slog"

const userRecordName = "user"

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MemberSince  string `json:"memberSince"`
	TravelerType string `json:"travelerType"`
}

type FlightPreferences struct {
	SeatType   string   `json:"seatType"`
	Class      string   `json:"class"`
	Airlines   []string `json:"airlines"`
	MaxLayover string   `json:"maxLayover"`
	DirectOnly bool     `json:"directOnly"`
}

type StayPreferences struct {
	Type      string   `json:"type"`
	Amenities []string `json:"amenities"`
	Location  string   `json:"location"`
	Budget    string   `json:"budget"`
}

type GeneralPreferences struct {
	Currency      string `json:"currency"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
}

type Preferences struct {
	Flights FlightPreferences  `json:"flights"`
	Stays   StayPreferences    `json:"stays"`
	General GeneralPreferences `json:"general"`
}

type userRecord struct {
	User        *User        `json:"user"`
	Preferences *Preferences `json:"preferences"`
}

// Profile is the persisted user record plus preferences, seeded with a demo
// traveler on first run.
type Profile struct {
	files *Files
	log   *slog.Logger
	data  userRecord
}

func LoadProfile(files *Files, log *slog.Logger) *Profile {
	p := &Profile{files: files, log: log}
	loaded, err := files.Load(userRecordName, &p.data)
	if err != nil {
		log.Warn("loading user profile failed, starting from seed data", slog.Any("err", err))
	}
	if !loaded || p.data.User == nil {
		p.data = seedUser()
	}
	return p
}

func (p *Profile) User() (User, bool) {
	if p.data.User == nil {
		return User{}, false
	}
	return *p.data.User, true
}

func (p *Profile) Preferences() (Preferences, bool) {
	if p.data.Preferences == nil {
		return Preferences{}, false
	}
	return *p.data.Preferences, true
}

func (p *Profile) SetPreferences(prefs Preferences) {
	p.data.Preferences = &prefs
	p.save()
}

// Reset restores the seed profile.
func (p *Profile) Reset() {
	p.data = seedUser()
	p.save()
}

// Logout clears the user and preferences.
func (p *Profile) Logout() {
	p.data = userRecord{}
	p.save()
}

func (p *Profile) save() {
	if err := p.files.Save(userRecordName, p.data); err != nil {
		p.log.Warn("persisting user profile failed, keeping in-memory state", slog.Any("err", err))
	}
}

func seedUser() userRecord {
	return userRecord{
		User: &User{
			ID:           "1",
			Name:         "Iker Fernández",
			Email:        "iker@example.com",
			MemberSince:  "January 2024",
			TravelerType: "Explorer",
		},
		Preferences: &Preferences{
			Flights: FlightPreferences{
				SeatType:   "aisle",
				Class:      "Economy / Economy Plus",
				Airlines:   []string{"Iberia", "Vueling", "Air Europa"},
				MaxLayover: "3 hours",
			},
			Stays: StayPreferences{
				Type:      "4-star or boutique hotel",
				Amenities: []string{"wifi", "breakfast", "gym"},
				Location:  "City center",
				Budget:    "€100-200/night",
			},
			General: GeneralPreferences{
				Currency:      "EUR",
				Language:      "English",
				Notifications: true,
			},
		},
	}
}
