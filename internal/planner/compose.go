package planner

import (
	"fmt"
	"strings"

	"TRAVELMATE_BACK-END/internal/dto"
	"TRAVELMATE_BACK-END/internal/models"
)

// clarifyText is the single "I don't understand" branch: asked once per
// message, with no slot-filling state carried across turns.
const clarifyText = "I'd love to help you plan your trip! Could you tell me where you'd like to go, " +
	"how many days you have, and what kind of experiences you enjoy?"

// Compose turns an extraction and an optional generated itinerary into the
// wire response. When no destination was recognized it returns the fixed
// clarifying question with no itinerary attached.
func Compose(ext Extraction, itin *models.Itinerary) dto.ApiResponse {
	if len(ext.Destinations) == 0 || itin == nil {
		return dto.ApiResponse{ChatResponse: clarifyText}
	}

	reply := fmt.Sprintf("Great choice! I've put together a %d-day itinerary for %s",
		ext.DurationDays, itin.Destination)
	if len(ext.Interests) > 0 {
		reply += fmt.Sprintf(" with a focus on %s experiences", strings.Join(ext.Interests, ", "))
	}
	reply += ". Take a look at the day-by-day plan and tell me what you'd like to adjust!"

	return dto.ApiResponse{ChatResponse: reply, ItineraryData: itin}
}

// Plan runs the full extract → generate → compose pipeline for one message.
// Only the first recognized destination is used; any others are ignored.
func Plan(message string) dto.ApiResponse {
	ext := Extract(message)
	if len(ext.Destinations) == 0 {
		return Compose(ext, nil)
	}
	itin := Generate(ext.Destinations[0], ext.DurationDays, ext.Interests)
	return Compose(ext, &itin)
}
