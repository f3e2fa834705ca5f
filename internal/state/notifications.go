package state

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const notificationsRecordName = "notifications"

type NotificationType string

const (
	NotifyDeal    NotificationType = "deal"
	NotifyBooking NotificationType = "booking"
	NotifyAlert   NotificationType = "alert"
	NotifyAI      NotificationType = "ai"
	NotifyFlight  NotificationType = "flight"
	NotifyRefund  NotificationType = "refund"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
	Read      bool             `json:"read"`
	ActionURL string           `json:"actionUrl,omitempty"`
}

type notificationsRecord struct {
	Items  []Notification `json:"notifications"`
	Unread int            `json:"unreadCount"`
}

// Notifications keeps a newest-first list with an unread counter that every
// mutation keeps in sync.
type Notifications struct {
	files *Files
	log   *slog.Logger
	data  notificationsRecord
}

func LoadNotifications(files *Files, log *slog.Logger) *Notifications {
	n := &Notifications{files: files, log: log}
	loaded, err := files.Load(notificationsRecordName, &n.data)
	if err != nil {
		log.Warn("loading notifications failed, starting from seed data", slog.Any("err", err))
	}
	if !loaded || len(n.data.Items) == 0 {
		// Persist the seed right away so the IDs shown on first run stay
		// addressable in later invocations.
		n.data.Items = seedNotifications()
		n.data.Unread = countUnread(n.data.Items)
		n.save()
	}
	return n
}

func (n *Notifications) All() []Notification {
	return append([]Notification(nil), n.data.Items...)
}

func (n *Notifications) UnreadCount() int { return n.data.Unread }

func (n *Notifications) Add(kind NotificationType, title, message string) Notification {
	item := Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	n.data.Items = append([]Notification{item}, n.data.Items...)
	n.data.Unread++
	n.save()
	return item
}

func (n *Notifications) MarkRead(id string) bool {
	for i := range n.data.Items {
		if n.data.Items[i].ID == id {
			if !n.data.Items[i].Read {
				n.data.Items[i].Read = true
				n.data.Unread = decrement(n.data.Unread)
			}
			n.save()
			return true
		}
	}
	return false
}

func (n *Notifications) MarkAllRead() {
	for i := range n.data.Items {
		n.data.Items[i].Read = true
	}
	n.data.Unread = 0
	n.save()
}

func (n *Notifications) Remove(id string) bool {
	for i := range n.data.Items {
		if n.data.Items[i].ID == id {
			if !n.data.Items[i].Read {
				n.data.Unread = decrement(n.data.Unread)
			}
			n.data.Items = append(n.data.Items[:i], n.data.Items[i+1:]...)
			n.save()
			return true
		}
	}
	return false
}

func (n *Notifications) ClearAll() {
	n.data.Items = nil
	n.data.Unread = 0
	n.save()
}

func (n *Notifications) save() {
	if err := n.files.Save(notificationsRecordName, n.data); err != nil {
		n.log.Warn("persisting notifications failed, keeping in-memory state", slog.Any("err", err))
	}
}

func countUnread(items []Notification) int {
	count := 0
	for _, item := range items {
		if !item.Read {
			count++
		}
	}
	return count
}

func decrement(v int) int {
	if v <= 0 {
		return 0
	}
	return v - 1
}

func seedNotifications() []Notification {
	now := time.Now().UTC()
	return []Notification{
		{
			ID:        uuid.NewString(),
			Type:      NotifyDeal,
			Title:     "Price drop detected",
			Message:   "The Madrid → Paris flight dropped €45. Now from €89.",
			CreatedAt: now.Add(-5 * time.Minute),
		},
		{
			ID:        uuid.NewString(),
			Type:      NotifyBooking,
			Title:     "Booking confirmed",
			Message:   "Your reservation at Hotel Arts Barcelona is confirmed for Feb 15.",
			CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Type:      NotifyAlert,
			Title:     "Document expiring",
			Message:   "Your ESTA for the USA expires in 30 days. Renew it before your trip.",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Type:      NotifyAI,
			Title:     "New AI recommendation",
			Message:   "Based on your preferences, 3 offers may interest you.",
			CreatedAt: now.Add(-3 * time.Hour),
			Read:      true,
		},
		{
			ID:        uuid.NewString(),
			Type:      NotifyFlight,
			Title:     "Your flight leaves in 24h",
			Message:   "Flight IB3456 Madrid → Paris. Online check-in is open.",
			CreatedAt: now.Add(-24 * time.Hour),
			Read:      true,
		},
		{
			ID:        uuid.NewString(),
			Type:      NotifyRefund,
			Title:     "Refund processed",
			Message:   "You received €400 for the Dec 15 flight delay.",
			CreatedAt: now.Add(-48 * time.Hour),
			Read:      true,
		},
	}
}
