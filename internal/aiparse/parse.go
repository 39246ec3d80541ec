// Package aiparse extracts display text and embedded itinerary data from
// AI-backend reply payloads. Backend versions disagree on the envelope
// shape, so every probe is independent and best-effort: whatever fragments
// are found are kept, and every failure path degrades to a fallback value
// instead of surfacing an error.
package aiparse

import (
	"encoding/json"
	"regexp"
	"strings"

	"TRAVELMATE_BACK-END/internal/models"
)

// Fallback texts, mirrored from the reference client.
const (
	emptyPayloadText = "I'm ready to help you plan your trip! What destination are you interested in?"
	noTextFoundText  = "I'm working on your travel plans. What specific aspects of your trip would you like me to help with?"
	recoveryText     = "I'm here to help you plan your trip! What destination are you thinking about?"
)

// jsonBlobPattern finds the first greedy brace-delimited run; it is not a
// balanced-brace scanner, malformed candidates are rejected by the JSON
// parser instead.
var jsonBlobPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// Result is the parsed outcome of one backend payload.
type Result struct {
	Text      string
	Itinerary *models.Itinerary
}

// Parse extracts human-readable text and an optional itinerary from an
// arbitrary decoded JSON payload. It never panics: any unexpected shape is
// converted to a safe fallback.
func Parse(payload any) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Text: recoveryText}
		}
	}()

	if payload == nil {
		return Result{Text: emptyPayloadText}
	}

	// Normalize to a sequence of events.
	events, ok := payload.([]any)
	if !ok {
		events = []any{payload}
	}

	var fragments []string
	var itin *models.Itinerary
	for _, raw := range events {
		event, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		fragments = append(fragments, textFragments(event)...)
		if itin == nil {
			itin = sniffItinerary(event)
		}
	}

	text := strings.Join(fragments, "\n\n")
	if text == "" {
		text = noTextFoundText
	}
	return Result{Text: text, Itinerary: itin}
}

// ParseRaw decodes a raw JSON body and parses it. Undecodable bodies are
// treated the same as payloads with no recognizable content.
func ParseRaw(body []byte) Result {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return Result{Text: noTextFoundText}
	}
	return Parse(payload)
}

// textFragments runs every extraction probe against one event, appending
// each textual fragment found in encounter order. The probes are
// non-exclusive: an event may contribute through several shapes.
func textFragments(event map[string]any) []string {
	var out []string

	// content.parts[].text
	if content, ok := event["content"].(map[string]any); ok {
		out = append(out, partTexts(content["parts"])...)
	}

	// candidates[].content, either a direct string or a parts sequence
	if candidates, ok := event["candidates"].([]any); ok {
		for _, c := range candidates {
			candidate, ok := c.(map[string]any)
			if !ok {
				continue
			}
			switch content := candidate["content"].(type) {
			case string:
				if s := strings.TrimSpace(content); s != "" {
					out = append(out, s)
				}
			case map[string]any:
				out = append(out, partTexts(content["parts"])...)
			}
		}
	}

	// candidates.content on a non-array candidates object
	if candidates, ok := event["candidates"].(map[string]any); ok {
		if s, ok := candidates["content"].(string); ok {
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, t)
			}
		}
	}

	// text directly on the event
	if s, ok := event["text"].(string); ok {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}

	// parts[].text directly on the event
	out = append(out, partTexts(event["parts"])...)

	return out
}

func partTexts(v any) []string {
	parts, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, p := range parts {
		part, ok := p.(map[string]any)
		if !ok {
			continue
		}
		if s, ok := part["text"].(string); ok {
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// sniffItinerary looks for an embedded itinerary JSON blob in an event's
// content or text string. A blob is accepted only when it parses and
// carries both trip_name and days; anything else means "no itinerary here".
func sniffItinerary(event map[string]any) *models.Itinerary {
	var haystack string
	if s, ok := event["content"].(string); ok {
		haystack = s
	} else if s, ok := event["text"].(string); ok {
		haystack = s
	}
	if haystack == "" {
		return nil
	}

	blob := jsonBlobPattern.FindString(haystack)
	if blob == "" {
		return nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &probe); err != nil {
		return nil
	}
	if _, ok := probe["trip_name"]; !ok {
		return nil
	}
	if _, ok := probe["days"]; !ok {
		return nil
	}

	var itin models.Itinerary
	if err := json.Unmarshal([]byte(blob), &itin); err != nil {
		return nil
	}
	return &itin
}
