package planner

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestGenerate_KeralaScenario(t *testing.T) {
	itin := generateAt(testNow, "kerala", 5, []string{"cultural"})

	if !strings.Contains(itin.Destination, "Kerala") {
		t.Errorf("expected destination to contain Kerala, got %q", itin.Destination)
	}
	if len(itin.Days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(itin.Days))
	}
	if itin.Days[0].Title != "Arrival in Kochi" {
		t.Errorf("expected day 1 title 'Arrival in Kochi', got %q", itin.Days[0].Title)
	}
	if itin.TripName != "Kerala Backwaters & Hills Adventure" {
		t.Errorf("unexpected trip name %q", itin.TripName)
	}
}

func TestGenerate_DayNumbersGapless(t *testing.T) {
	itin := generateAt(testNow, "kerala", 7, nil)
	for i, day := range itin.Days {
		if day.DayNumber != i+1 {
			t.Errorf("day %d has day_number %d", i, day.DayNumber)
		}
	}
}

func TestGenerate_CapsAtSevenDays(t *testing.T) {
	itin := generateAt(testNow, "kerala", 14, nil)
	if len(itin.Days) != 7 {
		t.Errorf("expected 7 days for a 14-day request, got %d", len(itin.Days))
	}
	// The stated trip length is still the requested one.
	if itin.EndDate != testNow.AddDate(0, 0, 30+13).Format("2006-01-02") {
		t.Errorf("expected end date 13 days after start, got %s", itin.EndDate)
	}
}

func TestGenerate_PlanningHorizon(t *testing.T) {
	itin := generateAt(testNow, "goa", 3, nil)
	wantStart := "2024-07-01" // June 1 + 30 days
	if itin.StartDate != wantStart {
		t.Errorf("expected start date %s, got %s", wantStart, itin.StartDate)
	}
	if itin.EndDate != "2024-07-03" {
		t.Errorf("expected end date 2024-07-03, got %s", itin.EndDate)
	}
	if itin.Dates != "Jul 1 - Jul 3, 2024" {
		t.Errorf("unexpected display dates %q", itin.Dates)
	}
	if itin.Days[1].Date != "2024-07-02" {
		t.Errorf("expected day 2 on 2024-07-02, got %s", itin.Days[1].Date)
	}
}

func TestGenerate_ActivityIDs(t *testing.T) {
	itin := generateAt(testNow, "kerala", 3, nil)
	for _, day := range itin.Days {
		for i, event := range day.Events {
			want := fmt.Sprintf("activity-%d-%d", day.DayNumber, i+1)
			if event.ID != want {
				t.Errorf("expected event id %s, got %s", want, event.ID)
			}
		}
	}
}

func TestGenerate_GenericDayFallback(t *testing.T) {
	// kerala has curated templates for days 1-5 only
	itin := generateAt(testNow, "kerala", 7, nil)
	day6 := itin.Days[5]
	if len(day6.Events) != 4 {
		t.Fatalf("expected 4 generic activities, got %d", len(day6.Events))
	}
	titles := []string{"Morning Discovery", "Local Cuisine", "Afternoon Adventure", "Evening Relaxation"}
	for i, want := range titles {
		if day6.Events[i].Title != want {
			t.Errorf("expected activity %d title %q, got %q", i+1, want, day6.Events[i].Title)
		}
	}
}

func TestGenerate_UnknownDestinationFallback(t *testing.T) {
	itin := generateAt(testNow, "atlantis", 3, nil)
	if itin.TripName != "Amazing Journey" {
		t.Errorf("expected fallback trip name, got %q", itin.TripName)
	}
	if itin.Destination != "atlantis" {
		t.Errorf("expected raw identifier as destination, got %q", itin.Destination)
	}
	if len(itin.Days) != 3 {
		t.Errorf("expected 3 days, got %d", len(itin.Days))
	}
}

func TestGenerate_InterestsDoNotChangeContent(t *testing.T) {
	plain := generateAt(testNow, "kerala", 3, nil)
	tagged := generateAt(testNow, "kerala", 3, []string{"food", "nightlife"})
	if len(plain.Days) != len(tagged.Days) {
		t.Fatalf("day counts differ: %d vs %d", len(plain.Days), len(tagged.Days))
	}
	for i := range plain.Days {
		if plain.Days[i].Title != tagged.Days[i].Title {
			t.Errorf("day %d titles differ: %q vs %q", i+1, plain.Days[i].Title, tagged.Days[i].Title)
		}
	}
}
