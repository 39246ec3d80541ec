package planner

import (
	"strings"
	"testing"
)

func TestCompose_NoDestination(t *testing.T) {
	resp := Compose(Extract("plan something fun"), nil)
	if resp.ChatResponse != clarifyText {
		t.Errorf("expected the clarifying question, got %q", resp.ChatResponse)
	}
	if resp.ItineraryData != nil {
		t.Errorf("expected no itinerary, got %+v", resp.ItineraryData)
	}
}

func TestCompose_WithDestinationAndInterests(t *testing.T) {
	ext := Extract("I want a 5 day trip to kerala with cultural experiences")
	itin := generateAt(testNow, ext.Destinations[0], ext.DurationDays, ext.Interests)
	resp := Compose(ext, &itin)

	if resp.ItineraryData == nil {
		t.Fatal("expected an itinerary to be attached")
	}
	if !strings.Contains(resp.ChatResponse, "5-day") {
		t.Errorf("expected reply to reference the duration, got %q", resp.ChatResponse)
	}
	if !strings.Contains(resp.ChatResponse, "Kerala, India") {
		t.Errorf("expected reply to reference the destination, got %q", resp.ChatResponse)
	}
	if !strings.Contains(resp.ChatResponse, "cultural") {
		t.Errorf("expected reply to reference the interests, got %q", resp.ChatResponse)
	}
}

func TestCompose_NoInterestsClauseWhenNoneFound(t *testing.T) {
	ext := Extract("3 days in goa")
	itin := generateAt(testNow, ext.Destinations[0], ext.DurationDays, ext.Interests)
	resp := Compose(ext, &itin)
	if strings.Contains(resp.ChatResponse, "focus on") {
		t.Errorf("expected no interests clause, got %q", resp.ChatResponse)
	}
}

func TestPlan_UsesFirstDestinationOnly(t *testing.T) {
	resp := Plan("4 days covering paris and kerala")
	if resp.ItineraryData == nil {
		t.Fatal("expected an itinerary")
	}
	// kerala precedes paris in the gazetteer
	if !strings.Contains(resp.ItineraryData.Destination, "Kerala") {
		t.Errorf("expected the first recognized destination, got %q", resp.ItineraryData.Destination)
	}
	if len(resp.ItineraryData.Days) != 4 {
		t.Errorf("expected 4 days, got %d", len(resp.ItineraryData.Days))
	}
}

func TestPlan_ClarifiesWhenNothingRecognized(t *testing.T) {
	resp := Plan("plan something fun")
	if resp.ChatResponse != clarifyText {
		t.Errorf("expected the clarifying question, got %q", resp.ChatResponse)
	}
	if resp.ItineraryData != nil {
		t.Error("expected no itinerary")
	}
}
