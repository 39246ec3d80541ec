package planner

import "TRAVELMATE_BACK-END/internal/models"

// gazetteer lists every place name the extractor recognizes. Matching is
// case-insensitive substring; results keep this declaration order.
var gazetteer = []string{
	"kerala",
	"goa",
	"rajasthan",
	"paris",
	"tokyo",
	"bali",
	"london",
	"rome",
	"new york",
	"switzerland",
	"thailand",
	"dubai",
	"singapore",
	"maldives",
}

// interestCategories and interestKeywords map free text to interest tags.
// A category is selected when any of its keywords appears in the input.
var interestCategories = []string{
	"cultural",
	"adventure",
	"relaxation",
	"food",
	"nature",
	"nightlife",
	"romantic",
}

var interestKeywords = map[string][]string{
	"cultural":   {"cultural", "culture", "history", "historical", "museum", "heritage", "temple", "art"},
	"adventure":  {"adventure", "hiking", "trek", "rafting", "safari", "diving", "thrill"},
	"relaxation": {"relax", "spa", "beach", "unwind", "peaceful", "resort"},
	"food":       {"food", "cuisine", "culinary", "restaurant", "street food", "foodie"},
	"nature":     {"nature", "wildlife", "mountain", "backwater", "forest", "scenery", "lake"},
	"nightlife":  {"nightlife", "party", "club", "bar"},
	"romantic":   {"romantic", "honeymoon", "anniversary", "couple"},
}

// destinationInfo is the display metadata for a recognized destination.
type destinationInfo struct {
	TripName    string
	Destination string
	Origin      string
}

// fallbackDestination is returned for identifiers missing from the table.
func fallbackDestination(id string) destinationInfo {
	return destinationInfo{TripName: "Amazing Journey", Destination: id}
}

var destinations = map[string]destinationInfo{
	"kerala":      {TripName: "Kerala Backwaters & Hills Adventure", Destination: "Kerala, India", Origin: "Kochi"},
	"goa":         {TripName: "Goa Sun & Sand Escape", Destination: "Goa, India", Origin: "Panaji"},
	"rajasthan":   {TripName: "Royal Rajasthan Heritage Trail", Destination: "Rajasthan, India", Origin: "Jaipur"},
	"paris":       {TripName: "Paris City of Light Getaway", Destination: "Paris, France", Origin: "Paris"},
	"tokyo":       {TripName: "Tokyo Modern & Traditional Blend", Destination: "Tokyo, Japan", Origin: "Tokyo"},
	"bali":        {TripName: "Bali Island Paradise Retreat", Destination: "Bali, Indonesia", Origin: "Denpasar"},
	"london":      {TripName: "London Royal Capital Tour", Destination: "London, United Kingdom", Origin: "London"},
	"rome":        {TripName: "Rome Ancient Wonders Journey", Destination: "Rome, Italy", Origin: "Rome"},
	"new york":    {TripName: "New York City Lights Experience", Destination: "New York, USA", Origin: "New York"},
	"switzerland": {TripName: "Swiss Alps Scenic Adventure", Destination: "Switzerland", Origin: "Zurich"},
	"thailand":    {TripName: "Thailand Temples & Beaches Tour", Destination: "Thailand", Origin: "Bangkok"},
	"dubai":       {TripName: "Dubai Desert & Skyline Escape", Destination: "Dubai, UAE", Origin: "Dubai"},
	"singapore":   {TripName: "Singapore Garden City Discovery", Destination: "Singapore", Origin: "Singapore"},
	"maldives":    {TripName: "Maldives Overwater Bliss", Destination: "Maldives", Origin: "Malé"},
}

// eventTemplate is the static half of a generated Event; ids are assigned
// per generated day.
type eventTemplate struct {
	Kind        models.EventKind
	Time        string
	Title       string
	Description string

	FlightNumber string
	From         string
	To           string

	HotelName string
	Address   string

	Location string
	Duration string
}

func (t eventTemplate) event() models.Event {
	return models.Event{
		Kind:         t.Kind,
		Time:         t.Time,
		Title:        t.Title,
		Description:  t.Description,
		FlightNumber: t.FlightNumber,
		From:         t.From,
		To:           t.To,
		HotelName:    t.HotelName,
		Address:      t.Address,
		Location:     t.Location,
		Duration:     t.Duration,
	}
}

// dayTemplate is one day's worth of planned content.
type dayTemplate struct {
	Title  string
	Events []eventTemplate
}

// genericDay is the fallback content for destination/day combinations
// without a specific template.
func genericDay(location string) dayTemplate {
	return dayTemplate{
		Title: "Exploring " + location,
		Events: []eventTemplate{
			{Kind: models.EventAttraction, Time: "9:00 AM", Title: "Morning Discovery", Description: "Start the day exploring local highlights at your own pace", Location: location, Duration: "3 hours"},
			{Kind: models.EventAttraction, Time: "12:30 PM", Title: "Local Cuisine", Description: "Lunch at a well-loved local spot", Location: location, Duration: "1.5 hours"},
			{Kind: models.EventAttraction, Time: "2:30 PM", Title: "Afternoon Adventure", Description: "Guided activity showcasing the area's character", Location: location, Duration: "3 hours"},
			{Kind: models.EventAttraction, Time: "7:00 PM", Title: "Evening Relaxation", Description: "Unwind with dinner and an easy evening stroll", Location: location, Duration: "2 hours"},
		},
	}
}

// dayPlans holds the curated per-destination, per-day-number templates.
// Day numbers without an entry fall back to genericDay.
var dayPlans = map[string]map[int]dayTemplate{
	"kerala": {
		1: {
			Title: "Arrival in Kochi",
			Events: []eventTemplate{
				{Kind: models.EventFlight, Time: "10:30 AM", Title: "Arrival in Kochi", Description: "Flight from Mumbai to Kochi International Airport", FlightNumber: "AI 681", From: "Mumbai (BOM)", To: "Kochi (COK)"},
				{Kind: models.EventHotel, Time: "2:00 PM", Title: "Check-in at Hotel", Description: "Luxury waterfront hotel with traditional Kerala architecture", HotelName: "Taj Malabar Resort & Spa", Address: "Willingdon Island, Kochi"},
				{Kind: models.EventAttraction, Time: "4:00 PM", Title: "Fort Kochi Walking Tour", Description: "Explore the historic Portuguese and Dutch colonial architecture", Location: "Fort Kochi", Duration: "2 hours"},
			},
		},
		2: {
			Title: "Backwaters of Alleppey",
			Events: []eventTemplate{
				{Kind: models.EventAttraction, Time: "8:00 AM", Title: "Backwater Cruise", Description: "Traditional houseboat cruise through Kerala's famous backwaters", Location: "Alleppey Backwaters", Duration: "Full day"},
				{Kind: models.EventAttraction, Time: "1:00 PM", Title: "Traditional Kerala Lunch", Description: "Authentic meal served on banana leaf aboard the houseboat", Location: "Houseboat", Duration: "1 hour"},
			},
		},
		3: {
			Title: "Munnar Tea Country",
			Events: []eventTemplate{
				{Kind: models.EventAttraction, Time: "9:00 AM", Title: "Munnar Hill Station", Description: "Drive to the picturesque tea plantations of Munnar", Location: "Munnar", Duration: "3 hours drive"},
				{Kind: models.EventHotel, Time: "1:00 PM", Title: "Check-in Mountain Resort", Description: "Eco-friendly resort surrounded by tea gardens", HotelName: "Tea Valley Resort", Address: "Munnar Hills, Kerala"},
				{Kind: models.EventAttraction, Time: "3:30 PM", Title: "Tea Plantation Visit", Description: "Learn about tea processing and enjoy fresh mountain air", Location: "Kolukkumalai Tea Estate", Duration: "2 hours"},
			},
		},
		4: {
			Title: "Misty Mountains of Munnar",
			Events: []eventTemplate{
				{Kind: models.EventAttraction, Time: "6:00 AM", Title: "Sunrise at Echo Point", Description: "Watch the spectacular sunrise over the Western Ghats", Location: "Echo Point, Munnar", Duration: "2 hours"},
				{Kind: models.EventAttraction, Time: "11:00 AM", Title: "Eravikulam National Park", Description: "Wildlife sanctuary home to the endangered Nilgiri Tahr", Location: "Eravikulam National Park", Duration: "3 hours"},
				{Kind: models.EventAttraction, Time: "4:00 PM", Title: "Spice Garden Tour", Description: "Explore aromatic spice plantations and learn about cultivation", Location: "Munnar Spice Gardens", Duration: "1.5 hours"},
			},
		},
		5: {
			Title: "Back to Kochi",
			Events: []eventTemplate{
				{Kind: models.EventAttraction, Time: "10:00 AM", Title: "Return to Kochi", Description: "Scenic drive back to Kochi with stops at viewpoints", Location: "Munnar to Kochi", Duration: "4 hours"},
				{Kind: models.EventAttraction, Time: "3:00 PM", Title: "Kerala Kathakali Performance", Description: "Traditional dance performance showcasing Kerala's cultural heritage", Location: "Kerala Kathakali Centre, Kochi", Duration: "1 hour"},
				{Kind: models.EventAttraction, Time: "6:00 PM", Title: "Sunset at Marine Drive", Description: "Relaxing evening walk along Kochi's waterfront promenade", Location: "Marine Drive, Kochi", Duration: "1 hour"},
			},
		},
	},
	"paris": {
		1: {
			Title: "Bienvenue à Paris",
			Events: []eventTemplate{
				{Kind: models.EventFlight, Time: "11:00 AM", Title: "Arrival at Charles de Gaulle", Description: "Land at CDG and transfer into the city center", FlightNumber: "AF 217", To: "Paris (CDG)"},
				{Kind: models.EventHotel, Time: "2:30 PM", Title: "Check-in Near the Marais", Description: "Boutique hotel within walking distance of the old town", HotelName: "Hôtel du Petit Moulin", Address: "29-31 Rue de Poitou, Paris"},
				{Kind: models.EventAttraction, Time: "5:00 PM", Title: "Seine Riverside Walk", Description: "Evening stroll past Notre-Dame and the booksellers' stalls", Location: "Quais de la Seine", Duration: "2 hours"},
			},
		},
		2: {
			Title: "Museums & Monuments",
			Events: []eventTemplate{
				{Kind: models.EventAttraction, Time: "9:00 AM", Title: "Louvre Museum", Description: "Guided highlights tour of the world's largest art museum", Location: "Musée du Louvre", Duration: "3 hours"},
				{Kind: models.EventAttraction, Time: "2:00 PM", Title: "Jardin des Tuileries", Description: "Leisurely walk through the formal gardens toward Place de la Concorde", Location: "Tuileries Garden", Duration: "1.5 hours"},
				{Kind: models.EventAttraction, Time: "7:30 PM", Title: "Eiffel Tower at Dusk", Description: "Watch the tower sparkle from the Trocadéro terrace", Location: "Trocadéro", Duration: "2 hours"},
			},
		},
	},
	"tokyo": {
		1: {
			Title: "Landing in Tokyo",
			Events: []eventTemplate{
				{Kind: models.EventFlight, Time: "3:40 PM", Title: "Arrival at Haneda", Description: "Land at Haneda and ride the monorail into the city", FlightNumber: "NH 106", To: "Tokyo (HND)"},
				{Kind: models.EventHotel, Time: "6:00 PM", Title: "Check-in in Shinjuku", Description: "High-rise hotel above the neon of west Shinjuku", HotelName: "Park Hyatt Tokyo", Address: "3-7-1-2 Nishi-Shinjuku, Tokyo"},
				{Kind: models.EventAttraction, Time: "8:00 PM", Title: "Omoide Yokocho Dinner", Description: "Yakitori under the lanterns of Memory Lane", Location: "Omoide Yokocho, Shinjuku", Duration: "1.5 hours"},
			},
		},
	},
}
