package itinerary

type RefundStatus string

const (
	RefundPending     RefundStatus = "pending"
	RefundNegotiating RefundStatus = "negotiating"
	RefundApproved    RefundStatus = "approved"
	RefundDenied      RefundStatus = "denied"
	RefundPaid        RefundStatus = "paid"
)

type RefundStep struct {
	Date   string `json:"date"`
	Action string `json:"action"`
	Status string `json:"status"`
}

type RefundClaim struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Route       string       `json:"route"`
	Date        string       `json:"date"`
	Delay       string       `json:"delay,omitempty"`
	Status      RefundStatus `json:"status"`
	Amount      float64      `json:"amount"`
	Regulation  string       `json:"regulation"`
	Probability int          `json:"probability,omitempty"`
	Timeline    []RefundStep `json:"timeline"`
}

func DemoRefunds() []RefundClaim {
	return []RefundClaim{
		{
			ID:         "rf-1",
			Type:       "flight",
			Title:      "Delayed flight",
			Route:      "Madrid → Paris",
			Date:       "2025-12-15",
			Delay:      "4h 30min",
			Status:     RefundApproved,
			Amount:     400,
			Regulation: "EU261/2004",
			Timeline: []RefundStep{
				{Date: "2025-12-15", Action: "Delay detected automatically", Status: "done"},
				{Date: "2025-12-16", Action: "Claim filed with the airline", Status: "done"},
				{Date: "2026-01-08", Action: "Airline accepted the claim", Status: "done"},
				{Date: "2026-01-12", Action: "Compensation paid", Status: "done"},
			},
		},
		{
			ID:          "rf-2",
			Type:        "flight",
			Title:       "Cancelled flight",
			Route:       "Barcelona → Berlin",
			Date:        "2026-01-20",
			Delay:       "Cancelled",
			Status:      RefundNegotiating,
			Amount:      250,
			Regulation:  "EU261/2004",
			Probability: 85,
			Timeline: []RefundStep{
				{Date: "2026-01-20", Action: "Cancellation detected", Status: "done"},
				{Date: "2026-01-21", Action: "Claim filed with the airline", Status: "done"},
				{Date: "2026-02-02", Action: "Negotiating compensation", Status: "current"},
			},
		},
		{
			ID:         "rf-3",
			Type:       "hotel",
			Title:      "Overbooked hotel",
			Route:      "Lisbon",
			Date:       "2026-02-01",
			Delay:      "No room on arrival",
			Status:     RefundPending,
			Amount:     180,
			Regulation: "Booking contract",
			Timeline: []RefundStep{
				{Date: "2026-02-01", Action: "Incident reported", Status: "done"},
				{Date: "2026-02-03", Action: "Claim under review", Status: "current"},
			},
		},
	}
}
