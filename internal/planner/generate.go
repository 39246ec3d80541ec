package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"TRAVELMATE_BACK-END/internal/models"
)

const (
	// planningHorizonDays is how far in the future generated trips start.
	planningHorizonDays = 30
	// maxItineraryDays caps how many concrete days are synthesized,
	// independent of the requested trip length.
	maxItineraryDays = 7
)

// Generate deterministically builds a multi-day itinerary for a recognized
// destination. Interests are accepted as an extraction signal but do not
// vary day content; they only shape the composed reply.
func Generate(destinationID string, durationDays int, interests []string) models.Itinerary {
	return generateAt(time.Now(), destinationID, durationDays, interests)
}

func generateAt(now time.Time, destinationID string, durationDays int, _ []string) models.Itinerary {
	if durationDays < 1 {
		durationDays = defaultDurationDays
	}

	info, ok := destinations[destinationID]
	if !ok {
		info = fallbackDestination(destinationID)
	}

	start := now.AddDate(0, 0, planningHorizonDays)
	end := start.AddDate(0, 0, durationDays-1)

	numDays := durationDays
	if numDays > maxItineraryDays {
		numDays = maxItineraryDays
	}

	days := make([]models.ItineraryDay, 0, numDays)
	for n := 1; n <= numDays; n++ {
		tpl, ok := dayPlans[destinationID][n]
		if !ok {
			tpl = genericDay(info.Destination)
		}

		events := make([]models.Event, 0, len(tpl.Events))
		for i, et := range tpl.Events {
			ev := et.event()
			ev.ID = fmt.Sprintf("activity-%d-%d", n, i+1)
			events = append(events, ev)
		}

		days = append(days, models.ItineraryDay{
			DayNumber: n,
			Date:      start.AddDate(0, 0, n-1).Format("2006-01-02"),
			Title:     tpl.Title,
			Events:    events,
		})
	}

	return models.Itinerary{
		ID:          uuid.NewString(),
		TripName:    info.TripName,
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		Dates:       formatDateRange(start, end),
		Origin:      info.Origin,
		Destination: info.Destination,
		Days:        days,
	}
}

// formatDateRange renders the trip-header display string, e.g.
// "Jan 15 - Jan 20, 2024".
func formatDateRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s, %d", start.Format("Jan 2"), end.Format("Jan 2"), end.Year())
}
