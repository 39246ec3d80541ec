package planner

import (
	"regexp"
	"strconv"
	"strings"
)

// defaultDurationDays is assumed when the message names no trip length.
const defaultDurationDays = 3

// durationPattern matches the first "<n> day(s)" / "<n> week(s)" mention.
var durationPattern = regexp.MustCompile(`(?i)(\d+)[\s-]*(day|week)s?`)

// Extraction is the structured travel intent derived from a chat message.
type Extraction struct {
	Destinations []string
	DurationDays int
	Interests    []string
}

// Extract parses raw user text into recognized destinations, a trip duration
// and interest tags. It is a pure function of the input: destinations are
// matched case-insensitively against the gazetteer and returned in gazetteer
// order, the first duration mention wins (weeks are converted to days), and
// an interest category is selected when any of its keywords appears.
func Extract(text string) Extraction {
	lower := strings.ToLower(text)

	var dests []string
	for _, place := range gazetteer {
		if strings.Contains(lower, place) {
			dests = append(dests, place)
		}
	}

	days := defaultDurationDays
	if m := durationPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			if strings.EqualFold(m[2], "week") {
				n *= 7
			}
			days = n
		}
	}

	var interests []string
	for _, category := range interestCategories {
		for _, keyword := range interestKeywords[category] {
			if strings.Contains(lower, keyword) {
				interests = append(interests, category)
				break
			}
		}
	}

	return Extraction{
		Destinations: dests,
		DurationDays: days,
		Interests:    interests,
	}
}
