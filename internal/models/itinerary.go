package models

// EventKind discriminates the variant of an itinerary Event.
type EventKind string

// Event kinds
const (
	EventFlight     EventKind = "flight"
	EventHotel      EventKind = "hotel"
	EventAttraction EventKind = "attraction"
)

// Event represents a single scheduled item within a day. Kind determines
// which of the variant fields are meaningful; an absent field means
// "unknown", so variant fields are omitted from JSON when empty.
type Event struct {
	Kind        EventKind `json:"type"`
	ID          string    `json:"id"`
	Time        string    `json:"time"` // display label, not a sortable timestamp
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`

	// flight
	FlightNumber string `json:"flight_number,omitempty"`
	From         string `json:"from,omitempty"`
	To           string `json:"to,omitempty"`

	// hotel
	HotelName string `json:"hotel_name,omitempty"`
	Address   string `json:"address,omitempty"`

	// attraction
	Location string `json:"location,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// ItineraryDay is one day of a trip. DayNumber is 1-based and strictly
// increasing with no gaps; Events are in intended chronological order.
type ItineraryDay struct {
	DayNumber int     `json:"day_number"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Title     string  `json:"title"`
	Events    []Event `json:"events"`
}

// Itinerary is a structured multi-day travel plan. Calendar dates travel as
// ISO strings; Dates is the human-readable range shown in the trip header.
type Itinerary struct {
	ID          string         `json:"id"`
	TripName    string         `json:"trip_name"`
	StartDate   string         `json:"start_date"` // YYYY-MM-DD
	EndDate     string         `json:"end_date"`   // YYYY-MM-DD
	Dates       string         `json:"dates"`      // e.g. "Jan 15 - Jan 20, 2024"
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Days        []ItineraryDay `json:"days"`
}
