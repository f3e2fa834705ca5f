package itinerary

type PassportStatus string

const (
	PassportValid        PassportStatus = "valid"
	PassportExpiringSoon PassportStatus = "expiring_soon"
	PassportExpired      PassportStatus = "expired"
)

type Passport struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Number  string         `json:"number"`
	Country string         `json:"country"`
	Expiry  string         `json:"expiry"`
	Status  PassportStatus `json:"status"`
}

type VisaStatus string

const (
	VisaNotRequired VisaStatus = "not_required"
	VisaPending     VisaStatus = "pending"
	VisaApproved    VisaStatus = "approved"
	VisaDenied      VisaStatus = "denied"
	VisaExpired     VisaStatus = "expired"
)

type Visa struct {
	ID      string     `json:"id"`
	Country string     `json:"country"`
	Type    string     `json:"type"`
	Status  VisaStatus `json:"status"`
	Note    string     `json:"note"`
}

type Insurance struct {
	ID       string   `json:"id"`
	Provider string   `json:"provider"`
	Type     string   `json:"type"`
	Coverage string   `json:"coverage"`
	Status   string   `json:"status"`
	Includes []string `json:"includes"`
}

type Documents struct {
	Passports []Passport  `json:"passports"`
	Visas     []Visa      `json:"visas"`
	Insurance []Insurance `json:"insurance"`
}

func DemoDocuments() Documents {
	return Documents{
		Passports: []Passport{
			{ID: "pp-1", Name: "Iker Fernández", Number: "AAB123456", Country: "Spain", Expiry: "2030-03-15", Status: PassportValid},
		},
		Visas: []Visa{
			{ID: "visa-1", Country: "Japan", Type: "Tourist (90 days)", Status: VisaNotRequired, Note: "No visa required for stays under 90 days"},
			{ID: "visa-2", Country: "United States", Type: "ESTA", Status: VisaPending, Note: "Application in progress · 48h remaining"},
			{ID: "visa-3", Country: "Australia", Type: "eVisitor", Status: VisaApproved, Note: "Approved until Mar 15, 2027"},
		},
		Insurance: []Insurance{
			{
				ID:       "ins-1",
				Provider: "IATI Seguros",
				Type:     "Premium",
				Coverage: "€500,000",
				Status:   "active",
				Includes: []string{"medical", "cancellation", "baggage", "delays"},
			},
		},
	}
}
