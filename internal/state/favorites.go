package state

import "log/slog"

const favoritesRecordName = "favorites"

type OfferKind string

const (
	KindFlight OfferKind = "flight"
	KindStay   OfferKind = "stay"
)

type favoritesRecord struct {
	FlightIDs []string `json:"flightIds"`
	StayIDs   []string `json:"stayIds"`
}

// Favorites holds the per-kind sets of offer IDs the user has marked.
// Mutations persist best-effort: a failed write is logged and the in-memory
// change stands.
type Favorites struct {
	files *Files
	log   *slog.Logger
	data  favoritesRecord
}

func LoadFavorites(files *Files, log *slog.Logger) *Favorites {
	f := &Favorites{files: files, log: log}
	if _, err := files.Load(favoritesRecordName, &f.data); err != nil {
		log.Warn("loading favorites failed, starting empty", slog.Any("err", err))
	}
	return f
}

func (f *Favorites) Add(kind OfferKind, id string) {
	if f.Contains(kind, id) {
		return
	}
	switch kind {
	case KindFlight:
		f.data.FlightIDs = append(f.data.FlightIDs, id)
	case KindStay:
		f.data.StayIDs = append(f.data.StayIDs, id)
	default:
		return
	}
	f.save()
}

func (f *Favorites) Remove(kind OfferKind, id string) {
	switch kind {
	case KindFlight:
		f.data.FlightIDs = without(f.data.FlightIDs, id)
	case KindStay:
		f.data.StayIDs = without(f.data.StayIDs, id)
	default:
		return
	}
	f.save()
}

// Toggle adds the ID when absent and removes it when present, returning the
// new membership state.
func (f *Favorites) Toggle(kind OfferKind, id string) bool {
	if f.Contains(kind, id) {
		f.Remove(kind, id)
		return false
	}
	f.Add(kind, id)
	return true
}

func (f *Favorites) Contains(kind OfferKind, id string) bool {
	switch kind {
	case KindFlight:
		return contains(f.data.FlightIDs, id)
	case KindStay:
		return contains(f.data.StayIDs, id)
	}
	return false
}

func (f *Favorites) FlightIDs() []string { return append([]string(nil), f.data.FlightIDs...) }
func (f *Favorites) StayIDs() []string   { return append([]string(nil), f.data.StayIDs...) }

func (f *Favorites) save() {
	if err := f.files.Save(favoritesRecordName, f.data); err != nil {
		f.log.Warn("persisting favorites failed, keeping in-memory state", slog.Any("err", err))
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
