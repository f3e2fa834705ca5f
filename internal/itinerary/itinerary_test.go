package itinerary

import (
	"bytes"
	"testing"
)

func TestDemo_Shape(t *testing.T) {
	it := Demo()

	if it.Trip == "" {
		t.Fatal("demo itinerary has no trip label")
	}
	if len(it.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(it.Days))
	}

	seen := map[string]bool{}
	for _, day := range it.Days {
		if day.Date == "" || day.Title == "" {
			t.Errorf("day %q missing date or title", day.Date)
		}
		if len(day.Events) == 0 {
			t.Errorf("day %s has no events", day.Date)
		}
		for _, ev := range day.Events {
			if seen[ev.ID] {
				t.Errorf("duplicate event id %s", ev.ID)
			}
			seen[ev.ID] = true
			if ev.Status == "" {
				t.Errorf("event %s has no status", ev.ID)
			}
		}
	}
}

func TestDemoDocuments_Shape(t *testing.T) {
	docs := DemoDocuments()

	if len(docs.Passports) == 0 || len(docs.Visas) == 0 || len(docs.Insurance) == 0 {
		t.Fatal("demo documents should cover passports, visas, and insurance")
	}
}

func TestDemoRefunds_Shape(t *testing.T) {
	claims := DemoRefunds()

	if len(claims) != 3 {
		t.Fatalf("expected 3 claims, got %d", len(claims))
	}
	for _, c := range claims {
		if c.Status == "" {
			t.Errorf("claim %s has no status", c.ID)
		}
		if len(c.Timeline) == 0 {
			t.Errorf("claim %s has no timeline", c.ID)
		}
	}
}

func TestPDFBytes(t *testing.T) {
	data, err := PDFBytes(Demo(), "Test Traveler")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF")
	}
	if len(data) < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", len(data))
	}
}

func TestPDFBytes_EmptyTravelerGetsPlaceholder(t *testing.T) {
	data, err := PDFBytes(Demo(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty PDF")
	}
}
